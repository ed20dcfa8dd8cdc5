package engine

import "go.uber.org/zap"

// ============================================================================
// ENGINE OPTIONS: Functional options for Score(), Compare(), AnalyzeBrand()
// ============================================================================

// Option configures engine behavior via functional options pattern.
type Option func(*config)

type config struct {
	NameDimension  string // dimension key holding the record identity
	BrandDimension string // dimension key holding the manufacturer
	DisplayUnit    string // unit shown next to prices, e.g. "CHF"
	Logger         *zap.Logger
}

// WithNameDimension sets the dimension used as record identity.
func WithNameDimension(key string) Option {
	return func(c *config) {
		c.NameDimension = key
	}
}

// WithBrandDimension sets the dimension holding the brand.
func WithBrandDimension(key string) Option {
	return func(c *config) {
		c.BrandDimension = key
	}
}

// WithDisplayUnit sets the currency label attached to results.
func WithDisplayUnit(unit string) Option {
	return func(c *config) {
		c.DisplayUnit = unit
	}
}

// WithLogger routes engine diagnostics to logger. Nil keeps the no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.Logger = logger
		}
	}
}

// applyOptions creates a config from functional options.
func applyOptions(opts []Option) *config {
	cfg := &config{
		NameDimension:  DimProductName,
		BrandDimension: DimBrand,
		DisplayUnit:    "CHF",
		Logger:         zap.NewNop(),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
