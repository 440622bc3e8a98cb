// fenkit reads, rewrites and renders chess positions in Forsyth-Edwards Notation.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"golang.org/x/term"

	"github.com/lgbarn/fenkit-go/internal/config"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("fenkit-go version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)
	setupDuplicateFile(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger := cfg.Logger()

	processor, err := NewProcessor(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	stats, err := processor.Run(ctx, collectInputs())
	closeFile(cfg.OutputFile)
	closeFile(cfg.Duplicate.DuplicateFile)

	if err != nil {
		logger.Error("processing stopped", "error", err)
	}
	reportStatistics(logger, stats)
	closeFile(cfg.LogFile)

	if err != nil || stats.Failed > 0 {
		os.Exit(1)
	}
}

// collectInputs returns the -fen record, the named files, or stdin.
func collectInputs() []Input {
	if *fenString != "" {
		return []Input{readerInput("-fen", strings.NewReader(*fenString))}
	}

	args := flag.Args()
	if len(args) == 0 {
		return []Input{readerInput("-", os.Stdin)}
	}
	inputs := make([]Input, 0, len(args))
	for _, name := range args {
		if name == "-" {
			inputs = append(inputs, readerInput("-", os.Stdin))
			continue
		}
		inputs = append(inputs, fileInput(name))
	}
	return inputs
}

// stdoutIsTerminal reports whether standard output is an interactive terminal.
func stdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd())) //nolint:gosec // G115: file descriptors fit in int
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}

	if *appendLog != "" {
		file, err := os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *appendLog, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}

	var file *os.File
	var err error

	if *appendOutput {
		file, err = os.OpenFile(*outputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created output files
	} else {
		file, err = os.Create(*outputFile)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
}

// setupDuplicateFile configures the duplicate output file.
func setupDuplicateFile(cfg *config.Config) {
	if *duplicateFile == "" {
		return
	}

	file, err := os.Create(*duplicateFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating duplicate file %s: %v\n", *duplicateFile, err)
		os.Exit(1)
	}
	cfg.Duplicate.DuplicateFile = file
}

// closeFile closes w if it is a file we opened.
func closeFile(w io.Writer) {
	if f, ok := w.(*os.File); ok && f != os.Stdout && f != os.Stderr {
		f.Close() //nolint:errcheck,gosec // G104: cleanup on exit
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: fenkit [options] [input-files...]\n\n")
	fmt.Fprintf(os.Stderr, "Reads FEN records, one per line, and writes them back out.\n")
	fmt.Fprintf(os.Stderr, "Blank lines and lines starting with # are skipped; \"-\" reads stdin.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nOutput formats (-f):\n")
	fmt.Fprintf(os.Stderr, "  fen    Canonical FEN, one record per line (default)\n")
	fmt.Fprintf(os.Stderr, "  board  8x8 diagram with coordinates and status line\n")
	fmt.Fprintf(os.Stderr, "  json   One JSON object per position\n")
	fmt.Fprintf(os.Stderr, "\nPosition filters (-Tf):\n")
	fmt.Fprintf(os.Stderr, "  A full six-field FEN matches that position, clocks ignored.\n")
	fmt.Fprintf(os.Stderr, "  A placement pattern may use ? (any) ! (occupied) _ (empty)\n")
	fmt.Fprintf(os.Stderr, "  A (white piece) a (black piece) and * (any run of squares).\n")
	fmt.Fprintf(os.Stderr, "\nExit status is 1 if any record was rejected.\n")
}
