// Package cleaner removes interactive-widget and Colab metadata from Jupyter
// notebooks so they open in viewers other than the one that produced them.
//
// A Cleaner runs a fixed chain of rules over a parsed notebook:
//
//  1. metadata.widgets is deleted.
//  2. widget-view representations are stripped from cell outputs; outputs
//     left with nothing else to show are dropped.
//  3. problematic keys (toc_visible) are deleted from metadata.colab.
//
// Each rule that fires contributes one line to the change log. Cleaning is
// idempotent: a cleaned notebook produces an empty change log.
package cleaner

import (
	"time"

	"github.com/jmylchreest/nbclean/pkg/notebook"
)

// Result contains the outcome of a cleaning operation.
type Result struct {
	// Changes describes what was removed, in rule order. Empty means the
	// document was already clean.
	Changes []string `json:"changes"`

	// Stats contains metrics about what was done.
	Stats *Stats `json:"stats"`
}

// Changed reports whether any rule fired.
func (r *Result) Changed() bool {
	return len(r.Changes) > 0
}

// Cleaner applies the configured rules to notebook documents.
// It holds no per-document state and may be reused.
type Cleaner struct {
	config *Config
	chain  *Chain
}

// New creates a new Cleaner with the given configuration.
// If config is nil, DefaultConfig() is used.
func New(config *Config) *Cleaner {
	if config == nil {
		config = DefaultConfig()
	}
	return &Cleaner{
		config: config,
		chain:  NewChain(config.rules()...),
	}
}

// Name returns the cleaner name for logging.
func (c *Cleaner) Name() string {
	return c.chain.Name()
}

// Clean mutates doc in place. On error the document may be partially
// modified and should be discarded.
func (c *Cleaner) Clean(doc *notebook.Value) (*Result, error) {
	start := time.Now()
	result := &Result{Stats: NewStats()}

	root, ok := doc.AsObject()
	if !ok {
		return nil, kindMismatch("", notebook.KindObject, doc)
	}

	changes, err := c.chain.Apply(root, result.Stats)
	if err != nil {
		return nil, err
	}
	result.Changes = changes
	result.Stats.CleanDuration = time.Since(start)
	result.Stats.TotalDuration = result.Stats.CleanDuration
	return result, nil
}

// CleanBytes parses data, cleans it and serializes the result.
// The returned bytes are nil whenever err is non-nil; a *notebook.ParseError
// means data was not valid JSON and a *ProcessingError means it did not
// have the shape of a notebook.
func (c *Cleaner) CleanBytes(data []byte) (*Result, []byte, error) {
	start := time.Now()

	doc, err := notebook.Parse(data)
	if err != nil {
		return nil, nil, err
	}
	parseDuration := time.Since(start)

	result, err := c.Clean(doc)
	if err != nil {
		return nil, nil, err
	}

	marshalStart := time.Now()
	out, err := notebook.Marshal(doc)
	if err != nil {
		return nil, nil, err
	}

	result.Stats.ParseDuration = parseDuration
	result.Stats.MarshalDuration = time.Since(marshalStart)
	result.Stats.InputBytes = len(data)
	result.Stats.OutputBytes = len(out)
	result.Stats.TotalDuration = time.Since(start)
	return result, out, nil
}

var defaultCleaner = New(nil)

// Clean runs every rule with the default configuration and returns the
// change log.
func Clean(doc *notebook.Value) ([]string, error) {
	result, err := defaultCleaner.Clean(doc)
	if err != nil {
		return nil, err
	}
	return result.Changes, nil
}
