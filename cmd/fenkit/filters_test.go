package main

import (
	"testing"

	"github.com/lgbarn/fenkit-go/internal/config"
	"github.com/lgbarn/fenkit-go/internal/errors"
	"github.com/lgbarn/fenkit-go/internal/position"
	"github.com/lgbarn/fenkit-go/internal/testutil"
)

func TestBuildFilterInactive(t *testing.T) {
	filter, err := buildFilter(config.NewFilterConfig())
	testutil.AssertNoError(t, err)
	testutil.AssertNil(t, filter)
}

func TestBuildFilterPatternsAreAlternatives(t *testing.T) {
	cfg := config.NewFilterConfig()
	cfg.Patterns = []string{testutil.KingsOnlyFEN, "*/*/*/*/4P3"}

	filter, err := buildFilter(cfg)
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, filter.Match(testutil.MustPosition(t, testutil.KingsOnlyFEN)), "exact FEN")
	testutil.AssertTrue(t, filter.Match(testutil.MustPosition(t, testutil.AfterE4FEN)), "pattern")
	testutil.AssertFalse(t, filter.Match(position.New()), "neither")
	testutil.AssertEqual(t, filter.Name(), "CompositeMatcher(AND: PositionMatcher(2 patterns))")
}

func TestBuildFilterInvert(t *testing.T) {
	cfg := config.NewFilterConfig()
	cfg.Patterns = []string{"rnbqkbnr/pppp1ppp/8/4p3/8/8/PPPPPPPP/RNBQKBNR"}
	cfg.IncludeInvert = true

	filter, err := buildFilter(cfg)
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, filter.Match(testutil.MustPosition(t, testutil.AfterE4FEN)))
}

func TestBuildFilterErrors(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*config.FilterConfig)
		want   error
	}{
		{"bad FEN", func(c *config.FilterConfig) { c.Patterns = []string{"8/8/8/8/8/8/8/8 x - - 0 1"} }, errors.ErrInvalidFEN},
		{"bad pattern", func(c *config.FilterConfig) { c.Patterns = []string{"8/8/8/8/8/8/8/8/8"} }, errors.ErrInvalidPattern},
		{"bad material", func(c *config.FilterConfig) { c.Material = "QZ" }, errors.ErrInvalidPattern},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.NewFilterConfig()
			tt.modify(cfg)
			_, err := buildFilter(cfg)
			testutil.AssertErrorIs(t, err, tt.want)
		})
	}
}

func TestStringList(t *testing.T) {
	var s stringList
	testutil.AssertNoError(t, s.Set("a"))
	testutil.AssertNoError(t, s.Set("b c"))
	testutil.AssertEqual(t, []string(s), []string{"a", "b c"})
	testutil.AssertEqual(t, s.String(), "a, b c")
}
