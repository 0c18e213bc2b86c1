package gridworld

import (
	"errors"
	"fmt"
)

// Default configuration values
const (
	DefaultGridSize      int     = 32
	DefaultRho           float64 = 0.3
	DefaultStochasticity float64 = 0.1
	DefaultDiscount      float64 = 1.0
	DefaultSeed          uint64  = 42

	// MinGridSize is the smallest grid with distinct goal and start rows
	MinGridSize int = 2
)

var (
	// ErrInvalidConfiguration is returned when a GridWorld is configured
	// with parameters outside their legal ranges
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrInvalidAction is returned when Step is given an action outside
	// of {0, 1, 2, 3}
	ErrInvalidAction = errors.New("invalid action")
)

// Config holds the parameters fixed when a GridWorld is configured.
//
// GridSize is the number of rows and columns of the board. Rho is the
// probability that an interior cell holds an obstacle. Stochasticity
// is the probability that the chosen action is replaced by a uniformly
// random one. ImageObservation selects the image encoding over the
// one-hot encoding of the agent's position.
type Config struct {
	GridSize         int
	Rho              float64
	Stochasticity    float64
	ImageObservation bool
	Discount         float64
}

// DefaultConfig returns the default GridWorld configuration: a 32 x 32
// grid, obstacle density 0.3, stochasticity 0.1, one-hot observations
// and no discounting
func DefaultConfig() Config {
	return Config{
		GridSize:         DefaultGridSize,
		Rho:              DefaultRho,
		Stochasticity:    DefaultStochasticity,
		ImageObservation: false,
		Discount:         DefaultDiscount,
	}
}

// Validate returns an error wrapping ErrInvalidConfiguration if any
// parameter is out of range
func (c Config) Validate() error {
	if c.GridSize < MinGridSize {
		return fmt.Errorf("validate: grid size %d < %d: %w", c.GridSize,
			MinGridSize, ErrInvalidConfiguration)
	}
	if !unit(c.Rho) {
		return fmt.Errorf("validate: rho %v ∉ [0, 1]: %w", c.Rho,
			ErrInvalidConfiguration)
	}
	if !unit(c.Stochasticity) {
		return fmt.Errorf("validate: stochasticity %v ∉ [0, 1]: %w",
			c.Stochasticity, ErrInvalidConfiguration)
	}
	if !unit(c.Discount) {
		return fmt.Errorf("validate: discount %v ∉ [0, 1]: %w",
			c.Discount, ErrInvalidConfiguration)
	}
	return nil
}

// unit returns whether x is in [0, 1]. NaN is not.
func unit(x float64) bool {
	return x >= 0 && x <= 1
}
