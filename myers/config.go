package myers

import "fmt"

// Config controls engine compilation limits.
//
// Example:
//
//	config := myers.DefaultConfig()
//	config.MaxBlocks = 16 // Reject patterns longer than 1024 symbols
//	engine, err := myers.Compile(pattern, config)
type Config struct {
	// MaxBlocks caps the number of 64-row column words a pattern may occupy.
	// Compiling a pattern longer than MaxBlocks*64 symbols fails with a
	// *LimitError rather than silently truncating.
	// Default: 1024 (patterns up to 65536 symbols)
	MaxBlocks int
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxBlocks: 1024,
	}
}

// Validate checks if the configuration is valid.
// Returns an error if any parameter is out of range.
//
// Valid ranges:
//   - MaxBlocks: 1 to 1,048,576
func (c Config) Validate() error {
	const maxBlocksCeiling = 1 << 20
	if c.MaxBlocks < 1 || c.MaxBlocks > maxBlocksCeiling {
		return fmt.Errorf("%w: MaxBlocks must be 1..%d, got %d",
			ErrInvalidConfig, maxBlocksCeiling, c.MaxBlocks)
	}
	return nil
}
