package cleaner

import (
	"strings"

	"github.com/jmylchreest/nbclean/internal/logger"
	"github.com/jmylchreest/nbclean/pkg/notebook"
)

// Chain applies multiple rules in sequence.
// The change log lists descriptions in rule order.
type Chain struct {
	rules []Rule
}

// NewChain creates a chain that applies rules in the order provided.
//
// Example:
//
//	chain := cleaner.NewChain(
//	    cleaner.WidgetMetadataRule{},
//	    cleaner.ColabMetadataRule{Keys: []string{"toc_visible"}},
//	)
func NewChain(rules ...Rule) *Chain {
	return &Chain{
		rules: rules,
	}
}

// Apply runs every rule against root. The first error stops the chain.
func (c *Chain) Apply(root *notebook.Object, stats *Stats) ([]string, error) {
	changes := make([]string, 0, len(c.rules))
	for _, rule := range c.rules {
		change, err := rule.Apply(root, stats)
		if err != nil {
			return nil, err
		}
		if change == "" {
			logger.Debug("rule did not fire", "rule", rule.Name())
			continue
		}
		logger.Debug("rule fired", "rule", rule.Name(), "change", change)
		stats.RulesFired = append(stats.RulesFired, rule.Name())
		changes = append(changes, change)
	}
	return changes, nil
}

// Len returns the number of rules in the chain.
func (c *Chain) Len() int {
	return len(c.rules)
}

// Name returns the names of all chained rules.
func (c *Chain) Name() string {
	names := make([]string, len(c.rules))
	for i, rule := range c.rules {
		names[i] = rule.Name()
	}
	return "chain(" + strings.Join(names, "->") + ")"
}
