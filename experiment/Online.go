package experiment

import (
	"context"
	"fmt"

	"github.com/samuelfneumann/gridnav/agent"
	env "github.com/samuelfneumann/gridnav/environment"
	"github.com/samuelfneumann/gridnav/experiment/trackers"
	"github.com/samuelfneumann/gridnav/telemetry"
	ts "github.com/samuelfneumann/gridnav/timestep"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Online is an Experiment that runs an agent online only. No offline
// evaluation is performed.
//
// Each episode is traced as a span carrying the episode's return,
// constraint cost, length and end type.
type Online struct {
	env.Environment
	agent.Agent
	maxSteps     uint
	currentSteps uint
	episodes     int
	trackers     []trackers.Tracker
	tracer       trace.Tracer
}

// NewOnline creates and returns a new online experiment on a given
// environment with a given agent. The steps parameter determines how
// many timesteps the experiment is run for, and the t parameter
// determines what data is saved. Episodes are not traced until
// SetTracer is called.
func NewOnline(e env.Environment, a agent.Agent, steps uint,
	t ...trackers.Tracker) *Online {
	return &Online{
		Environment: e,
		Agent:       a,
		maxSteps:    steps,
		trackers:    t,
		tracer:      telemetry.NoopTracer(),
	}
}

// SetTracer sets the tracer used to trace episodes
func (o *Online) SetTracer(t trace.Tracer) {
	o.tracer = t
}

// Register registers a Tracker with the experiment so that data
// generated during the experiment can be tracked and saved
func (o *Online) Register(t trackers.Tracker) {
	o.trackers = append(o.trackers, t)
}

// Steps returns the number of timesteps run so far
func (o *Online) Steps() uint {
	return o.currentSteps
}

// Episodes returns the number of episodes started so far
func (o *Online) Episodes() int {
	return o.episodes
}

// RunEpisode runs a single episode of the experiment. The episode ends
// when the environment returns a last TimeStep or the timestep limit
// of the experiment is reached, whichever comes first.
func (o *Online) RunEpisode(ctx context.Context) (bool, error) {
	o.episodes++
	ctx, span := o.tracer.Start(ctx, "experiment.episode",
		trace.WithAttributes(attribute.Int("episode", o.episodes)))
	defer span.End()

	done, err := o.runEpisode(ctx, span)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return done, err
}

func (o *Online) runEpisode(ctx context.Context, span trace.Span) (bool,
	error) {
	step, err := o.Environment.Reset()
	if err != nil {
		return true, fmt.Errorf("runEpisode: could not reset: %w", err)
	}
	if err := o.Agent.ObserveFirst(step); err != nil {
		return true, fmt.Errorf("runEpisode: %w", err)
	}
	o.track(step)

	var episodeReturn, episodeCost float64
	for !step.Last() && o.currentSteps < o.maxSteps {
		if err := ctx.Err(); err != nil {
			return true, fmt.Errorf("runEpisode: %w", err)
		}
		o.currentSteps++

		action := o.Agent.SelectAction(step)
		step, _, err = o.Environment.Step(action)
		if err != nil {
			return true, fmt.Errorf("runEpisode: could not step: %w", err)
		}
		episodeReturn += step.Reward
		episodeCost += step.ConstraintCost

		o.track(step)

		if err := o.Agent.Observe(action, step); err != nil {
			return true, fmt.Errorf("runEpisode: %w", err)
		}
		if err := o.Agent.Step(); err != nil {
			return true, fmt.Errorf("runEpisode: %w", err)
		}
	}
	o.Agent.EndEpisode()

	span.SetAttributes(
		attribute.Int("episode.length", step.Number),
		attribute.Float64("episode.return", episodeReturn),
		attribute.Float64("episode.constraint_cost", episodeCost),
		attribute.Bool("episode.finished", step.Last()),
		attribute.String("episode.end", step.EndType().String()),
	)

	return o.currentSteps >= o.maxSteps, nil
}

// Run runs the entire experiment for all timesteps
func (o *Online) Run(ctx context.Context) error {
	for done := false; !done; {
		var err error
		if done, err = o.RunEpisode(ctx); err != nil {
			return fmt.Errorf("run: %w", err)
		}
	}
	return nil
}

// Save saves the data cached by the Trackers to disk
func (o *Online) Save() {
	for _, t := range o.trackers {
		t.Save()
	}
}

// track sends t to each Tracker
func (o *Online) track(t ts.TimeStep) {
	for _, tracker := range o.trackers {
		tracker.Track(t)
	}
}
