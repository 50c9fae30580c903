package batch

import "github.com/jmylchreest/nbclean/pkg/cleaner"

// Status is the outcome of processing one path.
type Status string

const (
	// StatusCleaned means at least one rule fired and the notebook was rewritten.
	StatusCleaned Status = "cleaned"
	// StatusUnchanged means the notebook was already clean.
	StatusUnchanged Status = "unchanged"
	// StatusSkipped means the path was ignored (wrong extension, too large).
	StatusSkipped Status = "skipped"
	// StatusMissing means the path does not exist.
	StatusMissing Status = "missing"
	// StatusFailed means reading, cleaning or writing the notebook failed.
	StatusFailed Status = "failed"
)

// FileResult is the outcome for a single path.
type FileResult struct {
	Path   string `json:"path" yaml:"path"`
	Status Status `json:"status" yaml:"status"`

	// Changes lists what the cleaner removed, in rule order.
	Changes []string `json:"changes,omitempty" yaml:"changes,omitempty"`

	// Errors holds the failure description for StatusFailed.
	Errors []string `json:"errors,omitempty" yaml:"errors,omitempty"`

	// Reason explains why a path was skipped.
	Reason string `json:"reason,omitempty" yaml:"reason,omitempty"`

	InputBytes  int  `json:"input_bytes,omitempty" yaml:"input_bytes,omitempty"`
	OutputBytes int  `json:"output_bytes,omitempty" yaml:"output_bytes,omitempty"`
	Written     bool `json:"written" yaml:"written"`

	// Stats is set once the notebook has been parsed and cleaned.
	Stats *cleaner.Stats `json:"stats,omitempty" yaml:"stats,omitempty"`
}

// Succeeded reports whether the notebook was processed without error.
func (r FileResult) Succeeded() bool {
	return r.Status == StatusCleaned || r.Status == StatusUnchanged
}

// Summary aggregates the results of a batch run.
type Summary struct {
	Results   []FileResult `json:"results" yaml:"results"`
	Succeeded int          `json:"succeeded" yaml:"succeeded"`
	Total     int          `json:"total" yaml:"total"`
	DryRun    bool         `json:"dry_run" yaml:"dry_run"`
}

// Count returns the number of results with the given status.
func (s *Summary) Count(status Status) int {
	n := 0
	for _, r := range s.Results {
		if r.Status == status {
			n++
		}
	}
	return n
}

// Failed returns the number of paths that could not be processed: failures
// and missing files. Skipped paths are not failures.
func (s *Summary) Failed() int {
	return s.Count(StatusFailed) + s.Count(StatusMissing)
}

// AllSucceeded reports whether every path was processed successfully.
func (s *Summary) AllSucceeded() bool {
	return s.Succeeded == s.Total
}

// Bytes returns the total input and output size of the cleaned notebooks.
func (s *Summary) Bytes() (in, out int) {
	for _, r := range s.Results {
		if r.Status == StatusCleaned {
			in += r.InputBytes
			out += r.OutputBytes
		}
	}
	return in, out
}

func (s *Summary) add(r FileResult) {
	s.Results = append(s.Results, r)
	if r.Succeeded() {
		s.Succeeded++
	}
}
