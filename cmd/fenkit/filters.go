// filters.go - Position filter construction
package main

import (
	"strings"

	"github.com/lgbarn/fenkit-go/internal/config"
	"github.com/lgbarn/fenkit-go/internal/errors"
	"github.com/lgbarn/fenkit-go/internal/matching"
)

// fenFieldCount distinguishes a full FEN from a bare placement pattern.
const fenFieldCount = 6

// buildFilter turns the filter settings into one matcher: patterns are
// alternatives, material is an extra requirement. It returns nil when no
// criterion is set.
func buildFilter(cfg *config.FilterConfig) (matching.PositionFilter, error) {
	if !cfg.Active() {
		return nil, nil
	}

	filter := matching.NewCompositeMatcher(matching.MatchAll)

	if len(cfg.Patterns) > 0 {
		pm := matching.NewPositionMatcher()
		for _, pattern := range cfg.Patterns {
			if err := addPattern(pm, pattern, cfg.IncludeInvert); err != nil {
				return nil, errors.Wrapf(err, "position filter %q", pattern)
			}
		}
		filter.Add(pm)
	}

	if cfg.Material != "" {
		mm, err := matching.NewMaterialMatcher(cfg.Material, cfg.MaterialExact)
		if err != nil {
			return nil, err
		}
		filter.Add(mm)
	}

	return filter, nil
}

// addPattern adds a full FEN as an exact position and anything else as a
// placement pattern.
func addPattern(pm *matching.PositionMatcher, pattern string, invert bool) error {
	if len(strings.Fields(pattern)) == fenFieldCount {
		return pm.AddFEN(pattern, pattern)
	}
	return pm.AddPattern(pattern, pattern, invert)
}

// stringList is a repeatable string flag.
type stringList []string

func (s *stringList) String() string {
	return strings.Join(*s, ", ")
}

func (s *stringList) Set(value string) error {
	*s = append(*s, value)
	return nil
}
