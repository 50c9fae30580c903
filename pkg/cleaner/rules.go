package cleaner

import (
	"fmt"
	"strings"

	"github.com/jmylchreest/nbclean/pkg/notebook"
)

// WidgetViewMIMEType is the output representation emitted by ipywidgets.
// Viewers without a widget manager render it as an error or nothing at all.
const WidgetViewMIMEType = "application/vnd.jupyter.widget-view+json"

// Rule is a single cleanup step applied to the notebook root object.
type Rule interface {
	// Apply mutates root and returns a description of what changed, or an
	// empty string when the rule did not fire.
	Apply(root *notebook.Object, stats *Stats) (string, error)

	// Name returns the rule name for logging/debugging.
	Name() string
}

// WidgetMetadataRule removes metadata.widgets, the saved widget state.
type WidgetMetadataRule struct{}

// Name returns the rule name.
func (WidgetMetadataRule) Name() string { return "widget-metadata" }

// Apply deletes metadata.widgets when present.
func (WidgetMetadataRule) Apply(root *notebook.Object, _ *Stats) (string, error) {
	metadata, ok, err := objectMember(root, "metadata", "")
	if err != nil || !ok {
		return "", err
	}
	if !metadata.Delete("widgets") {
		return "", nil
	}
	return "Removed 'widgets' from metadata", nil
}

// WidgetOutputsRule strips widget-view representations from cell outputs.
// An output left with no other representation is dropped entirely.
type WidgetOutputsRule struct{}

// Name returns the rule name.
func (WidgetOutputsRule) Name() string { return "widget-outputs" }

// Apply rebuilds the outputs of every cell and reports how many widget
// references were removed.
func (r WidgetOutputsRule) Apply(root *notebook.Object, stats *Stats) (string, error) {
	cells, ok, err := arrayMember(root, "cells", "")
	if err != nil || !ok {
		return "", err
	}

	removed := 0
	for i, cellValue := range cells.Values() {
		path := indexPath("cells", i)
		cell, ok := cellValue.AsObject()
		if !ok {
			return "", kindMismatch(path, notebook.KindObject, cellValue)
		}
		stats.CellsVisited++

		n, err := r.cleanCell(cell, path, stats)
		if err != nil {
			return "", err
		}
		removed += n
	}

	if removed == 0 {
		return "", nil
	}
	return fmt.Sprintf("Removed %d widget output reference(s)", removed), nil
}

// cleanCell replaces cell.outputs with a filtered array and returns the
// number of widget references found in it.
func (WidgetOutputsRule) cleanCell(cell *notebook.Object, cellPath string, stats *Stats) (int, error) {
	outputs, ok, err := arrayMember(cell, "outputs", cellPath)
	if err != nil || !ok {
		return 0, err
	}
	outputsPath := joinPath(cellPath, "outputs")

	found := 0
	var firstErr error
	kept := outputs.Filter(func(i int, outputValue *notebook.Value) bool {
		if firstErr != nil {
			return true
		}
		hadWidget, keep, err := cleanOutput(outputValue, indexPath(outputsPath, i), stats)
		if err != nil {
			firstErr = err
			return true
		}
		if hadWidget {
			found++
		}
		return keep
	})
	if firstErr != nil {
		return 0, firstErr
	}

	cell.Set("outputs", notebook.ArrayValue(kept))
	return found, nil
}

// cleanOutput strips the widget view from one output. keep is false when
// nothing else is left to display.
func cleanOutput(outputValue *notebook.Value, path string, stats *Stats) (hadWidget, keep bool, err error) {
	output, ok := outputValue.AsObject()
	if !ok {
		return false, false, kindMismatch(path, notebook.KindObject, outputValue)
	}
	stats.OutputsInspected++

	data, ok, err := objectMember(output, "data", path)
	if err != nil {
		return false, false, err
	}
	if !ok || !data.Delete(WidgetViewMIMEType) {
		return false, true, nil
	}

	metadata, ok, err := objectMember(output, "metadata", path)
	if err != nil {
		return true, false, err
	}
	if ok {
		metadata.Delete(WidgetViewMIMEType)
	}

	if data.Len() == 0 {
		stats.WidgetOutputsDropped++
		return true, false, nil
	}
	stats.WidgetOutputsTrimmed++
	return true, true, nil
}

// ColabMetadataRule removes Colab-specific keys from metadata.colab.
// The rest of the Colab metadata (notebook name, provenance) is kept.
type ColabMetadataRule struct {
	Keys []string
}

// Name returns the rule name.
func (ColabMetadataRule) Name() string { return "colab-metadata" }

// Apply deletes each configured key present in metadata.colab.
func (r ColabMetadataRule) Apply(root *notebook.Object, _ *Stats) (string, error) {
	metadata, ok, err := objectMember(root, "metadata", "")
	if err != nil || !ok {
		return "", err
	}
	colab, ok, err := objectMember(metadata, "colab", "metadata")
	if err != nil || !ok {
		return "", err
	}

	var removed []string
	for _, key := range r.Keys {
		if colab.Delete(key) {
			removed = append(removed, key)
		}
	}
	if len(removed) == 0 {
		return "", nil
	}
	return "Cleaned Colab metadata: " + strings.Join(removed, ", "), nil
}
