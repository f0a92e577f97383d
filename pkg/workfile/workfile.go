// Package workfile reads workflow definition files from an export directory.
package workfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/seedflow/seedflow/pkg/models"
)

// Suffix is the naming pattern definition files must match.
const Suffix = "-workflow.json"

// ParseError indicates a definition file could not be read or decoded. It is
// recovered per file: the batch continues past it.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse workflow file %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// IsParseError checks if an error indicates an unreadable definition file.
func IsParseError(err error) bool {
	var parseErr *ParseError

	return errors.As(err, &parseErr)
}

// Discover returns the paths of all definition files directly under dir,
// sorted in ascending lexicographic order by file name. A missing or empty
// directory yields an empty slice, not an error; callers decide whether that
// is fatal.
func Discover(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to list workflow files in %s: %w", dir, err)
	}

	files := make([]string, 0, len(entries))

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), Suffix) {
			continue
		}

		files = append(files, filepath.Join(dir, entry.Name()))
	}

	sort.Strings(files)

	return files, nil
}

// Load reads one definition file and decodes it into a workflow with
// defaults applied. Unrecognized top-level fields are ignored.
func Load(path string) (*models.Workflow, error) {
	body, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	var workflow models.Workflow

	err = json.Unmarshal(body, &workflow)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	workflow.ApplyDefaults()

	return &workflow, nil
}
