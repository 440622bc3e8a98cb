// Package matching filters positions by board pattern and material balance.
package matching

import (
	"fmt"
	"strings"

	"github.com/lgbarn/fenkit-go/internal/position"
)

// PositionFilter is the interface for all position matching implementations.
type PositionFilter interface {
	// Match returns true if the position meets the filter's criteria.
	Match(pos *position.Position) bool

	// Name returns a descriptive name for this filter.
	Name() string
}

// MatchMode specifies how multiple filters are combined.
type MatchMode int

const (
	// MatchAll requires all filters to match (AND logic).
	MatchAll MatchMode = iota

	// MatchAny requires at least one filter to match (OR logic).
	MatchAny
)

// CompositeMatcher combines multiple PositionFilters with AND or OR logic.
type CompositeMatcher struct {
	filters []PositionFilter
	mode    MatchMode
}

// NewCompositeMatcher creates a new CompositeMatcher with the given mode and filters.
func NewCompositeMatcher(mode MatchMode, filters ...PositionFilter) *CompositeMatcher {
	return &CompositeMatcher{
		filters: filters,
		mode:    mode,
	}
}

// Match implements PositionFilter.
func (c *CompositeMatcher) Match(pos *position.Position) bool {
	if len(c.filters) == 0 {
		// AND over nothing is vacuously true; OR over nothing has no way to succeed.
		return c.mode == MatchAll
	}

	switch c.mode {
	case MatchAll:
		for _, f := range c.filters {
			if !f.Match(pos) {
				return false
			}
		}
		return true
	case MatchAny:
		for _, f := range c.filters {
			if f.Match(pos) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// Name implements PositionFilter.
func (c *CompositeMatcher) Name() string {
	if len(c.filters) == 0 {
		return "CompositeMatcher(empty)"
	}

	names := make([]string, len(c.filters))
	for i, f := range c.filters {
		names[i] = f.Name()
	}

	modeStr := "AND"
	if c.mode == MatchAny {
		modeStr = "OR"
	}

	return fmt.Sprintf("CompositeMatcher(%s: %s)", modeStr, strings.Join(names, ", "))
}

// Add adds a filter to the composite.
func (c *CompositeMatcher) Add(f PositionFilter) {
	c.filters = append(c.filters, f)
}

// Len returns the number of filters in the composite.
func (c *CompositeMatcher) Len() int {
	return len(c.filters)
}

// Mode returns the match mode (MatchAll or MatchAny).
func (c *CompositeMatcher) Mode() MatchMode {
	return c.mode
}
