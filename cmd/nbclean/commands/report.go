package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/jmylchreest/nbclean/internal/batch"
)

var banner = strings.Repeat("=", 70)

// textReport renders the human-readable console report.
// Quiet mode discards it entirely.
type textReport struct {
	w io.Writer
}

func newTextReport(w io.Writer, quiet bool) *textReport {
	if quiet {
		w = io.Discard
	}
	return &textReport{w: w}
}

// Header prints the banner.
func (r *textReport) Header(dryRun bool) {
	fmt.Fprintln(r.w, banner)
	if dryRun {
		fmt.Fprintln(r.w, "Cleaning Google Colab Notebooks (dry run)")
	} else {
		fmt.Fprintln(r.w, "Cleaning Google Colab Notebooks")
	}
	fmt.Fprintln(r.w, banner)
}

// Result prints the outcome of one path.
func (r *textReport) Result(res batch.FileResult) {
	switch res.Status {
	case batch.StatusMissing:
		fmt.Fprintf(r.w, "\n[X] %s: File not found\n", res.Path)
	case batch.StatusSkipped:
		fmt.Fprintf(r.w, "\n[!] %s: Skipping (%s)\n", res.Path, res.Reason)
	case batch.StatusCleaned:
		fmt.Fprintf(r.w, "\n[*] Processing: %s\n", res.Path)
		fmt.Fprintln(r.w, "    [OK] Cleaned successfully!")
		for _, change := range res.Changes {
			fmt.Fprintf(r.w, "         - %s\n", change)
		}
	case batch.StatusUnchanged:
		fmt.Fprintf(r.w, "\n[*] Processing: %s\n", res.Path)
		fmt.Fprintln(r.w, "    [OK] Already clean (no changes needed)")
	case batch.StatusFailed:
		fmt.Fprintf(r.w, "\n[*] Processing: %s\n", res.Path)
		fmt.Fprintln(r.w, "    [ERROR] Failed:")
		for _, e := range res.Errors {
			fmt.Fprintf(r.w, "            - %s\n", e)
		}
	}
}

// Footer prints the totals. A nil summary prints nothing.
func (r *textReport) Footer(s *batch.Summary) {
	if s == nil {
		return
	}

	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, banner)
	fmt.Fprintf(r.w, "Results: %d/%d notebooks processed successfully\n", s.Succeeded, s.Total)
	if in, out := s.Bytes(); in > out {
		verb := "Saved"
		if s.DryRun {
			verb = "Would save"
		}
		fmt.Fprintf(r.w, "%s %s (%s -> %s)\n", verb,
			humanize.Bytes(uint64(in-out)), humanize.Bytes(uint64(in)), humanize.Bytes(uint64(out)))
	}
	fmt.Fprintln(r.w, banner)

	if s.AllSucceeded() {
		fmt.Fprintln(r.w, "\n[SUCCESS] All notebooks are now compatible with Jupyter/VS Code/Cursor!")
	} else {
		fmt.Fprintf(r.w, "\n[WARNING] %d notebook(s) had errors.\n", s.Total-s.Succeeded)
	}
}
