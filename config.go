package approx

import (
	"fmt"

	"github.com/coregx/approx/myers"
)

// Config controls compilation limits and prefilter behavior.
//
// Example:
//
//	config := approx.DefaultConfig()
//	config.MinPieceLen = 3 // Demand more selective prefilter pieces
//	p, err := approx.CompileWithConfig("needle", config)
type Config struct {
	// MaxBlocks caps the number of 64-row column words a pattern may occupy
	// (i.e. patterns up to MaxBlocks*64 symbols). Longer patterns fail to
	// compile rather than silently truncating.
	// Default: 1024
	MaxBlocks int

	// EnablePrefilter enables Aho-Corasick piece prefiltering.
	// When false, every search scans the full text.
	// Default: true
	EnablePrefilter bool

	// MinPieceLen is the minimum pattern piece length for the prefilter to
	// be used. Shorter pieces occur too often to filter anything out.
	// Default: 2
	MinPieceLen int

	// MaxCoverage is the fraction of the text that candidate windows may
	// cover before the prefilter result is discarded in favor of a plain
	// full scan.
	// Default: 0.5
	MaxCoverage float64
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxBlocks:       1024,
		EnablePrefilter: true,
		MinPieceLen:     2,
		MaxCoverage:     0.5,
	}
}

// Validate checks if the configuration is valid.
// Returns an error if any parameter is out of range.
//
// Valid ranges:
//   - MaxBlocks: per myers.Config
//   - MinPieceLen: >= 1
//   - MaxCoverage: 0 < MaxCoverage <= 1
func (c Config) Validate() error {
	if err := (myers.Config{MaxBlocks: c.MaxBlocks}).Validate(); err != nil {
		return err
	}
	if c.MinPieceLen < 1 {
		return fmt.Errorf("%w: MinPieceLen must be >= 1, got %d",
			myers.ErrInvalidConfig, c.MinPieceLen)
	}
	if c.MaxCoverage <= 0 || c.MaxCoverage > 1 {
		return fmt.Errorf("%w: MaxCoverage must be in (0, 1], got %v",
			myers.ErrInvalidConfig, c.MaxCoverage)
	}
	return nil
}
