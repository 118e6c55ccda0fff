package config

import (
	"fmt"

	"github.com/yourusername/winrescue/internal/types"
)

// Validate checks the configuration for errors
func (c *Config) Validate() error {
	if _, ok := types.ParseStrategy(c.Strategy); !ok {
		return fmt.Errorf("unknown strategy %q (expected origin or preserve-size)", c.Strategy)
	}

	switch c.EnumerationFailure {
	case "", FailFatal, FailWarn:
	default:
		return fmt.Errorf("unknown enumerationFailure %q (expected fatal or warn)", c.EnumerationFailure)
	}

	if c.Limit < 0 {
		return fmt.Errorf("limit must be >= 0, got %d", c.Limit)
	}

	return nil
}
