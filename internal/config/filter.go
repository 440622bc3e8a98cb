package config

// FilterConfig holds position selection criteria.
type FilterConfig struct {
	// Patterns are full FENs or placement patterns with wildcards; a
	// position matching any of them passes.
	Patterns []string

	// IncludeInvert also matches the colour-inverted form of each pattern.
	IncludeInvert bool

	// Material is a balance like "QR:qrr"; MaterialExact forbids extra pieces.
	Material      string
	MaterialExact bool

	// Negate keeps the positions that do NOT match.
	Negate bool
}

// NewFilterConfig creates a FilterConfig with default values.
func NewFilterConfig() *FilterConfig {
	return &FilterConfig{}
}

// Active reports whether any criterion is set.
func (f *FilterConfig) Active() bool {
	return len(f.Patterns) > 0 || f.Material != ""
}
