// compare_rules.go - Compare what each cleaning rule does to a notebook
//
// Usage: go run scripts/compare_rules.go <notebook.ipynb>
//
// Example:
//   go run scripts/compare_rules.go pkg/cleaner/testdata/colab_widgets.ipynb

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/jmylchreest/nbclean/pkg/cleaner"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run scripts/compare_rules.go <notebook.ipynb>")
		fmt.Println()
		fmt.Println("Examples:")
		fmt.Println("  go run scripts/compare_rules.go pkg/cleaner/testdata/colab_widgets.ipynb")
		os.Exit(1)
	}

	path := os.Args[1]
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading notebook: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Input size: %s\n\n", humanize.Bytes(uint64(len(data))))

	methods := []struct {
		title  string
		config *cleaner.Config
	}{
		{"widget metadata only", &cleaner.Config{StripWidgetMetadata: true}},
		{"widget outputs only", &cleaner.Config{StripWidgetOutputs: true}},
		{"colab metadata only", &cleaner.Config{StripColabKeys: true, ColabKeys: cleaner.DefaultColabKeys}},
		{"all rules (default)", cleaner.DefaultConfig()},
	}

	for i, m := range methods {
		fmt.Println(strings.Repeat("=", 61))
		fmt.Printf("METHOD %d: %s\n", i+1, m.title)
		fmt.Println(strings.Repeat("=", 61))

		result, out, err := cleaner.New(m.config).CleanBytes(data)
		if err != nil {
			fmt.Printf("Error: %v\n\n", err)
			continue
		}

		if !result.Changed() {
			fmt.Println("No changes")
		}
		for _, change := range result.Changes {
			fmt.Printf("  - %s\n", change)
		}
		fmt.Printf("Output size: %s\n", humanize.Bytes(uint64(len(out))))
		fmt.Printf("Stats: %s\n\n", result.Stats)
	}
}
