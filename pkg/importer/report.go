package importer

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/fatih/color"
)

const rule = "═════════════════════════════════════════════════"

var (
	okMark   = color.New(color.FgGreen).Sprint("✅")
	failMark = color.New(color.FgRed).Sprint("❌")
	headline = color.New(color.FgCyan, color.Bold).SprintFunc()
)

// Reporter writes the operator-facing progress lines. Diagnostics for
// machines go through slog; this output is for the person running the
// import.
type Reporter struct {
	out io.Writer
}

// NewReporter creates a reporter writing to out.
func NewReporter(out io.Writer) *Reporter {
	return &Reporter{out: out}
}

func (r *Reporter) Banner() {
	fmt.Fprintln(r.out, rule)
	fmt.Fprintln(r.out, headline("    Workflow Database Import"))
	fmt.Fprintln(r.out, rule)
	fmt.Fprintln(r.out)
}

func (r *Reporter) Found(count int) {
	fmt.Fprintf(r.out, "Found %d workflow(s)\n\n", count)
}

func (r *Reporter) NoFiles(dir string) {
	fmt.Fprintf(r.out, "%s No workflow files found in %s/\n", failMark, dir)
}

func (r *Reporter) UsingDatabase(path string) {
	fmt.Fprintf(r.out, "Using database: %s\n\n", path)
}

func (r *Reporter) DatabaseMissing(path string) {
	fmt.Fprintf(r.out, "%s Workflow database not found: %s\n", failMark, path)
	fmt.Fprintf(r.out, "   Start n8n first: n8n start\n")
}

func (r *Reporter) Imported(name string, id int64) {
	fmt.Fprintf(r.out, "%s Imported: %s (ID: %d)\n", okMark, name, id)
}

func (r *Reporter) Parsed(name string) {
	fmt.Fprintf(r.out, "%s Parsed: %s (dry run, not imported)\n", okMark, name)
}

func (r *Reporter) FileFailed(path string, err error) {
	fmt.Fprintf(r.out, "%s Failed to process %s: %v\n", failMark, filepath.Base(path), err)
}

func (r *Reporter) Summary(imported int) {
	fmt.Fprintf(r.out, "\n%s\n", rule)
	fmt.Fprintf(r.out, "%s Import complete: %d workflow(s) imported\n", okMark, imported)
	fmt.Fprintf(r.out, "%s\n\n", rule)
}

func (r *Reporter) NextSteps() {
	fmt.Fprintln(r.out, "Next steps:")
	fmt.Fprintln(r.out, "1. Restart n8n: Ctrl+C to stop, then run 'n8n start'")
	fmt.Fprintln(r.out, "2. Open http://localhost:5678")
	fmt.Fprintln(r.out, "3. Check the Workflows section to see your imported workflows")
	fmt.Fprintln(r.out, "4. Activate them and start using!")
	fmt.Fprintln(r.out)
}
