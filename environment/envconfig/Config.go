// Package envconfig provides configuration structs for configuring
// grid navigation environments. Environment configurations in this
// package are JSON serializable and can be loaded from the process
// environment or from .env files.
package envconfig

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	env "github.com/samuelfneumann/gridnav/environment"
	"github.com/samuelfneumann/gridnav/environment/gridworld"
	"github.com/samuelfneumann/gridnav/environment/wrappers"
	ts "github.com/samuelfneumann/gridnav/timestep"
)

// Environment variables read by Load
const (
	GridSizeVar         = "GRIDNAV_GRID_SIZE"
	RhoVar              = "GRIDNAV_RHO"
	StochasticityVar    = "GRIDNAV_STOCHASTICITY"
	ImageObservationVar = "GRIDNAV_IMAGE_OBSERVATION"
	DiscountVar         = "GRIDNAV_DISCOUNT"
	EpisodeCutoffVar    = "GRIDNAV_EPISODE_CUTOFF"
	SeedVar             = "GRIDNAV_SEED"
)

// Config implements a specific configuration of a grid navigation
// environment. An EpisodeCutoff of 0 disables episode truncation.
type Config struct {
	GridSize         int
	Rho              float64
	Stochasticity    float64
	ImageObservation bool
	Discount         float64
	EpisodeCutoff    uint
	Seed             uint64
}

// Default returns the default environment configuration, which
// truncates episodes after 200 steps
func Default() Config {
	c := gridworld.DefaultConfig()
	return Config{
		GridSize:         c.GridSize,
		Rho:              c.Rho,
		Stochasticity:    c.Stochasticity,
		ImageObservation: c.ImageObservation,
		Discount:         c.Discount,
		EpisodeCutoff:    uint(wrappers.DefaultEpisodeCutoff),
		Seed:             gridworld.DefaultSeed,
	}
}

// GridWorld returns the gridworld configuration described by the Config
func (c Config) GridWorld() gridworld.Config {
	return gridworld.Config{
		GridSize:         c.GridSize,
		Rho:              c.Rho,
		Stochasticity:    c.Stochasticity,
		ImageObservation: c.ImageObservation,
		Discount:         c.Discount,
	}
}

// Create returns the environment described by the Config as well as
// the first timestep of the environment. If EpisodeCutoff is positive,
// the environment is wrapped in a wrappers.TimeLimit.
func (c Config) Create() (env.Environment, ts.TimeStep, error) {
	g, step, err := gridworld.New(c.GridWorld(), c.Seed)
	if err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("create: %w", err)
	}

	if c.EpisodeCutoff == 0 {
		return g, step, nil
	}

	limited, err := wrappers.NewTimeLimit(g, int(c.EpisodeCutoff))
	if err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("create: %w", err)
	}
	return limited, step, nil
}

// Load returns the default Config overridden by any GRIDNAV_*
// variables set in the process environment or in the given .env files.
// Variables already set in the process environment take precedence.
// With no files, Load reads ./.env if it exists.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil {
		if len(files) > 0 || !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load: %v", err)
		}
	}

	c := Default()
	var err error

	if c.GridSize, err = lookupInt(GridSizeVar, c.GridSize); err != nil {
		return Config{}, err
	}
	if c.Rho, err = lookupFloat(RhoVar, c.Rho); err != nil {
		return Config{}, err
	}
	if c.Stochasticity, err = lookupFloat(StochasticityVar,
		c.Stochasticity); err != nil {
		return Config{}, err
	}
	if c.Discount, err = lookupFloat(DiscountVar, c.Discount); err != nil {
		return Config{}, err
	}

	if v, ok := lookup(ImageObservationVar); ok {
		if c.ImageObservation, err = strconv.ParseBool(v); err != nil {
			return Config{}, fmt.Errorf("load: %v: %v", ImageObservationVar,
				err)
		}
	}
	if v, ok := lookup(EpisodeCutoffVar); ok {
		cutoff, err := strconv.ParseUint(v, 10, 0)
		if err != nil {
			return Config{}, fmt.Errorf("load: %v: %v", EpisodeCutoffVar, err)
		}
		c.EpisodeCutoff = uint(cutoff)
	}
	if v, ok := lookup(SeedVar); ok {
		if c.Seed, err = strconv.ParseUint(v, 10, 64); err != nil {
			return Config{}, fmt.Errorf("load: %v: %v", SeedVar, err)
		}
	}

	return c, nil
}

// lookup returns the value of a non-empty environment variable
func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	return v, ok && v != ""
}

func lookupInt(key string, def int) (int, error) {
	v, ok := lookup(key)
	if !ok {
		return def, nil
	}

	i, err := strconv.Atoi(v)
	if err != nil {
		return def, fmt.Errorf("load: %v: %v", key, err)
	}
	return i, nil
}

func lookupFloat(key string, def float64) (float64, error) {
	v, ok := lookup(key)
	if !ok {
		return def, nil
	}

	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def, fmt.Errorf("load: %v: %v", key, err)
	}
	return f, nil
}
