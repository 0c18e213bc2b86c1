// Package experiment implements functionality for running an experiment
package experiment

import (
	"context"
	"fmt"

	"github.com/samuelfneumann/gridnav/agent"
	"github.com/samuelfneumann/gridnav/environment/envconfig"
	"github.com/samuelfneumann/gridnav/experiment/trackers"
	ts "github.com/samuelfneumann/gridnav/timestep"
)

// Experiment outlines structs that can run experiments. Experiments
// send each environment TimeStep to Trackers, which cache summary data
// of each episode in RAM to be later saved to disk by Save. Run runs
// episodes until the maximum timestep limit is reached, and RunEpisode
// runs a single episode.
type Experiment interface {
	Run(ctx context.Context) error

	// RunEpisode returns whether the timestep limit has been reached
	RunEpisode(ctx context.Context) (bool, error)

	// Save all tracked data to disk
	Save()

	// Register adds a new Tracker to the (possibly already running)
	// experiment
	Register(t trackers.Tracker)

	// track sends the current timestep to each Tracker
	track(ts.TimeStep)
}

// Type is a kind of experiment
type Type string

const (
	OnlineExp Type = "OnlineExperiment"
)

// Config represents a configuration of an experiment. The agent
// configuration is not serialized.
type Config struct {
	Type
	MaxSteps  uint
	EnvConf   envconfig.Config
	AgentConf agent.Config `json:"-"`
}

// CreateExp creates the experiment described by the Config. The agent
// is seeded with seed, the environment with the seed of EnvConf.
func (c Config) CreateExp(seed uint64, t ...trackers.Tracker) (Experiment,
	error) {
	if c.AgentConf == nil {
		return nil, fmt.Errorf("createExp: no agent configuration")
	}
	if err := c.AgentConf.Validate(); err != nil {
		return nil, fmt.Errorf("createExp: %v", err)
	}

	env, _, err := c.EnvConf.Create()
	if err != nil {
		return nil, fmt.Errorf("createExp: could not create environment: %w",
			err)
	}

	a, err := c.AgentConf.CreateAgent(env, seed)
	if err != nil {
		return nil, fmt.Errorf("createExp: could not create agent: %v", err)
	}

	switch c.Type {
	case OnlineExp:
		return NewOnline(env, a, c.MaxSteps, t...), nil
	}

	return nil, fmt.Errorf("createExp: no such experiment type %v", c.Type)
}
