package config

import "io"

// DuplicateConfig holds settings for duplicate position detection.
type DuplicateConfig struct {
	// Suppress drops positions already seen earlier in the run.
	Suppress bool

	// MaxCapacity caps remembered positions; 0 means unlimited.
	MaxCapacity int

	// DuplicateFile, when set, receives the suppressed records.
	DuplicateFile io.Writer
}

// NewDuplicateConfig creates a DuplicateConfig with default values.
func NewDuplicateConfig() *DuplicateConfig {
	return &DuplicateConfig{}
}
