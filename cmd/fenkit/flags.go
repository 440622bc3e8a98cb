// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"

	"github.com/lgbarn/fenkit-go/internal/chess"
	"github.com/lgbarn/fenkit-go/internal/config"
)

// Colour modes for -color.
const (
	colourAuto   = "auto"
	colourAlways = "always"
	colourNever  = "never"
)

var (
	// Input options
	fenString = flag.String("fen", "", "Process this single FEN record instead of input files")
	moveList  = flag.String("m", "", "Moves to apply to every position, e.g. \"e2e4 e7e5\"")

	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	appendOutput = flag.Bool("a", false, "Append to output file instead of overwrite")
	outputFormat = flag.String("f", "fen", "Output format: fen, board, json")
	colourMode   = flag.String("color", colourAuto, "Colour board diagrams: auto, always, never")
	noLabels     = flag.Bool("nolabels", false, "Omit coordinates and status from board diagrams")
	indentJSON   = flag.Bool("indent", false, "Pretty-print JSON output")

	// Duplicate detection
	suppressDuplicates = flag.Bool("D", false, "Suppress duplicate positions")
	duplicateFile      = flag.String("d", "", "Write duplicate positions to this file")
	duplicateCapacity  = flag.Int("duplicate-capacity", 0, "Maximum remembered positions (0 = unlimited)")

	// Position filters
	invertFilter       = flag.Bool("invert", false, "Also match colour-inverted -Tf patterns")
	negateMatch        = flag.Bool("n", false, "Output positions that DON'T match the filters")
	materialMatch      = flag.String("z", "", "Material balance to match (e.g., 'QR:qrr')")
	materialMatchExact = flag.String("y", "", "Exact material balance to match")

	// Validation
	crossCheck = flag.Bool("X", false, "Cross-check every position against an independent chess library")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	appendLog = flag.String("L", "", "Append diagnostics to log file")

	// Other options
	quiet   = flag.Bool("q", false, "Quiet mode (errors only)")
	verbose = flag.Bool("v", false, "Verbose mode (running commentary)")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")

	// Performance options
	workers = flag.Int("j", 0, "Number of worker threads (0 = auto-detect based on CPU cores)")
)

// fenFilters collects every -Tf argument.
var fenFilters stringList

func init() {
	flag.Var(&fenFilters, "Tf", "Filter by FEN or placement pattern (repeatable)")
}

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	if err := applyOutputFlags(cfg); err != nil {
		return err
	}
	if err := applyMoveFlags(cfg); err != nil {
		return err
	}
	applyDuplicateFlags(cfg)
	applyFilterFlags(cfg)

	cfg.CrossCheck = *crossCheck
	cfg.Workers = *workers

	switch {
	case *quiet:
		cfg.Verbosity = config.Quiet
	case *verbose:
		cfg.Verbosity = config.Verbose
	}
	return nil
}

// applyOutputFlags configures the output format and diagram options.
func applyOutputFlags(cfg *config.Config) error {
	format, err := config.ParseOutputFormat(*outputFormat)
	if err != nil {
		return err
	}
	cfg.Output.Format = format
	cfg.Output.Labels = !*noLabels
	cfg.Output.Indent = *indentJSON

	colour, err := resolveColour(*colourMode, *outputFile == "" && stdoutIsTerminal())
	if err != nil {
		return err
	}
	cfg.Output.Colour = colour
	return nil
}

// resolveColour maps a -color mode to a decision. Auto colours only a
// terminal.
func resolveColour(mode string, terminal bool) (bool, error) {
	switch mode {
	case colourAuto:
		return terminal, nil
	case colourAlways:
		return true, nil
	case colourNever:
		return false, nil
	default:
		return false, fmt.Errorf("unknown colour mode %q (want %s, %s or %s)", mode, colourAuto, colourAlways, colourNever)
	}
}

// applyMoveFlags parses the -m move list.
func applyMoveFlags(cfg *config.Config) error {
	if *moveList == "" {
		return nil
	}
	moves, err := chess.ParseMoves(*moveList)
	if err != nil {
		return err
	}
	cfg.Moves = moves
	return nil
}

// applyDuplicateFlags configures duplicate detection settings.
func applyDuplicateFlags(cfg *config.Config) {
	cfg.Duplicate.Suppress = *suppressDuplicates
	cfg.Duplicate.MaxCapacity = *duplicateCapacity
}

// applyFilterFlags configures position filters. -y wins over -z.
func applyFilterFlags(cfg *config.Config) {
	cfg.Filter.Patterns = append(cfg.Filter.Patterns, fenFilters...)
	cfg.Filter.IncludeInvert = *invertFilter
	cfg.Filter.Negate = *negateMatch
	switch {
	case *materialMatchExact != "":
		cfg.Filter.Material = *materialMatchExact
		cfg.Filter.MaterialExact = true
	case *materialMatch != "":
		cfg.Filter.Material = *materialMatch
	}
}
