package cleaner

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Stats captures metrics about what the cleaner did to one document.
// Reports encode the durations as fractional milliseconds.
type Stats struct {
	// Size metrics, only set by CleanBytes
	InputBytes  int
	OutputBytes int

	// Traversal counts
	CellsVisited     int
	OutputsInspected int

	// Widget outputs removed outright vs. kept with other representations
	WidgetOutputsDropped int
	WidgetOutputsTrimmed int

	// RulesFired lists the names of rules that changed the document, in order.
	RulesFired []string

	// Timing
	ParseDuration   time.Duration
	CleanDuration   time.Duration
	MarshalDuration time.Duration
	TotalDuration   time.Duration
}

// statsReport is the encoded form of Stats.
type statsReport struct {
	InputBytes           int      `json:"input_bytes" yaml:"input_bytes"`
	OutputBytes          int      `json:"output_bytes" yaml:"output_bytes"`
	CellsVisited         int      `json:"cells_visited" yaml:"cells_visited"`
	OutputsInspected     int      `json:"outputs_inspected" yaml:"outputs_inspected"`
	WidgetOutputsDropped int      `json:"widget_outputs_dropped" yaml:"widget_outputs_dropped"`
	WidgetOutputsTrimmed int      `json:"widget_outputs_trimmed" yaml:"widget_outputs_trimmed"`
	RulesFired           []string `json:"rules_fired" yaml:"rules_fired"`
	ParseMs              float64  `json:"parse_duration_ms" yaml:"parse_duration_ms"`
	CleanMs              float64  `json:"clean_duration_ms" yaml:"clean_duration_ms"`
	MarshalMs            float64  `json:"marshal_duration_ms" yaml:"marshal_duration_ms"`
	TotalMs              float64  `json:"total_duration_ms" yaml:"total_duration_ms"`
}

func milliseconds(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

func (s *Stats) report() statsReport {
	rules := s.RulesFired
	if rules == nil {
		rules = []string{}
	}
	return statsReport{
		InputBytes:           s.InputBytes,
		OutputBytes:          s.OutputBytes,
		CellsVisited:         s.CellsVisited,
		OutputsInspected:     s.OutputsInspected,
		WidgetOutputsDropped: s.WidgetOutputsDropped,
		WidgetOutputsTrimmed: s.WidgetOutputsTrimmed,
		RulesFired:           rules,
		ParseMs:              milliseconds(s.ParseDuration),
		CleanMs:              milliseconds(s.CleanDuration),
		MarshalMs:            milliseconds(s.MarshalDuration),
		TotalMs:              milliseconds(s.TotalDuration),
	}
}

// MarshalJSON implements json.Marshaler.
func (s *Stats) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.report())
}

// MarshalYAML implements yaml.Marshaler.
func (s *Stats) MarshalYAML() (any, error) {
	return s.report(), nil
}

// NewStats creates a new Stats instance.
func NewStats() *Stats {
	return &Stats{
		RulesFired: make([]string, 0),
	}
}

// WidgetReferences returns the number of widget-view representations removed.
func (s *Stats) WidgetReferences() int {
	return s.WidgetOutputsDropped + s.WidgetOutputsTrimmed
}

// SizeDelta returns how many bytes the document grew (positive) or shrank.
func (s *Stats) SizeDelta() int {
	return s.OutputBytes - s.InputBytes
}

// String returns a human-readable summary of the stats.
func (s *Stats) String() string {
	var sb strings.Builder

	if s.InputBytes > 0 {
		sb.WriteString(fmt.Sprintf("Size: %d -> %d bytes\n", s.InputBytes, s.OutputBytes))
	}

	sb.WriteString(fmt.Sprintf("Cells: %d visited, %d outputs inspected\n",
		s.CellsVisited, s.OutputsInspected))

	if s.WidgetReferences() > 0 {
		sb.WriteString(fmt.Sprintf("Widget outputs: %d dropped, %d trimmed\n",
			s.WidgetOutputsDropped, s.WidgetOutputsTrimmed))
	}

	if len(s.RulesFired) > 0 {
		sb.WriteString("Rules fired: ")
		sb.WriteString(strings.Join(s.RulesFired, ", "))
		sb.WriteString("\n")
	}

	sb.WriteString(fmt.Sprintf("Timing: parse=%v, clean=%v, marshal=%v, total=%v\n",
		s.ParseDuration.Round(time.Microsecond),
		s.CleanDuration.Round(time.Microsecond),
		s.MarshalDuration.Round(time.Microsecond),
		s.TotalDuration.Round(time.Microsecond)))

	return sb.String()
}
