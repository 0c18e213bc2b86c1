package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/samuelfneumann/gridnav/agent/random"
	"github.com/samuelfneumann/gridnav/display"
	env "github.com/samuelfneumann/gridnav/environment"
	"github.com/samuelfneumann/gridnav/environment/envconfig"
	"github.com/samuelfneumann/gridnav/environment/gridworld"
	"github.com/samuelfneumann/gridnav/environment/wrappers"
	"github.com/samuelfneumann/gridnav/examples"
	"github.com/samuelfneumann/gridnav/experiment"
	"github.com/samuelfneumann/gridnav/experiment/trackers"
	"github.com/samuelfneumann/gridnav/telemetry"
	"gonum.org/v1/gonum/stat"
)

var (
	envFile = flag.String("env", "", "`.env` file to read GRIDNAV_* "+
		"variables from (default ./.env if present)")
	steps   = flag.Uint("steps", 10_000, "number of timesteps to run")
	seed    = flag.Uint64("seed", 192382, "seed of the random agent")
	budget  = flag.Float64("budget", 10, "constraint cost budget per episode")
	dataDir = flag.String("data", ".", "directory to save tracked data to")
	png     = flag.String("png", "gridworld.png", "file to render the "+
		"grid to, empty to skip")
	show    = flag.Bool("display", false, "watch one episode on the terminal")
	delay   = flag.Duration("delay", 100*time.Millisecond, "delay between "+
		"displayed steps")
	example = flag.Bool("example", false, "run the fixed grid example and exit")
)

func main() {
	flag.Parse()
	ctx := context.Background()

	if *example {
		if err := examples.Gridworld(os.Stdout, *seed, *steps); err != nil {
			log.Fatal(err)
		}
		return
	}

	var files []string
	if *envFile != "" {
		files = append(files, *envFile)
	}
	conf, err := envconfig.Load(files...)
	if err != nil {
		log.Fatalf("could not load configuration: %v", err)
	}

	tracer := telemetry.NoopTracer()
	if telemetry.Enabled() {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			log.Fatalf("could not set up telemetry: %v", err)
		}
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("could not shut down telemetry: %v", err)
			}
		}()
		tracer = telemetry.Tracer("experiment")
	}

	// Create the environment
	e, _, err := conf.Create()
	if err != nil {
		log.Fatalf("could not create environment: %v", err)
	}
	g := unwrap(e)
	log.Println(g)
	log.Printf("\n%v", g.Grid())

	if *png != "" {
		if err := g.SavePNG(*png); err != nil {
			log.Fatalf("could not render grid: %v", err)
		}
		log.Printf("rendered grid to %v", *png)
	}

	if *show {
		if err := watch(e, *seed, *budget, *delay); err != nil {
			log.Fatalf("could not display episode: %v", err)
		}
	}

	// Experiment
	a, err := random.Config{}.CreateAgent(e, *seed)
	if err != nil {
		log.Fatalf("could not create agent: %v", err)
	}

	ret := trackers.NewReturn(filepath.Join(*dataDir, "return.bin"))
	length := trackers.NewEpisodeLength(filepath.Join(*dataDir, "length.bin"))
	cost := trackers.NewConstraintCost(filepath.Join(*dataDir, "cost.bin"))

	exp := experiment.NewOnline(e, a, *steps, ret, length, cost)
	exp.SetTracer(tracer)
	if err := exp.Run(ctx); err != nil {
		log.Fatalf("could not run experiment: %v", err)
	}
	exp.Save()

	episodes := len(ret.Data())
	if episodes == 0 {
		log.Printf("no episodes finished in %d steps", exp.Steps())
		return
	}

	violations := 0
	for _, c := range cost.Data() {
		if c > *budget {
			violations++
		}
	}
	log.Printf("%d episodes in %d steps", episodes, exp.Steps())
	log.Printf("mean return: %.2f  mean length: %.2f  mean cost: %.2f",
		stat.Mean(ret.Data(), nil), stat.Mean(length.Data(), nil),
		stat.Mean(cost.Data(), nil))
	log.Printf("episodes over budget %v: %d/%d", *budget, violations,
		episodes)
}

// watch runs one episode of a uniform random agent on e, drawing every
// step on the terminal
func watch(e env.Environment, seed uint64, budget float64,
	delay time.Duration) error {
	term, err := display.Open()
	if err != nil {
		return err
	}
	defer term.Close()

	e, err = limited(e)
	if err != nil {
		return err
	}
	c, err := wrappers.NewCumulativeCost(e, budget)
	if err != nil {
		return err
	}
	a, err := random.NewUniform(c.ActionSpec(), seed)
	if err != nil {
		return err
	}

	g := unwrap(e)
	step, err := c.Reset()
	if err != nil {
		return err
	}
	for {
		if err := term.Draw(g, step); err != nil {
			return err
		}
		if step.Last() {
			break
		}
		time.Sleep(delay)

		if step, _, err = c.Step(a.SelectAction(step)); err != nil {
			return err
		}
	}
	time.Sleep(delay)

	log.Printf("watched episode: %d steps, constraint cost %v/%v, "+
		"violated: %v", step.Number, c.Total(), c.Budget(), c.Violated())
	return nil
}

// limited returns e wrapped in a TimeLimit of DefaultEpisodeCutoff
// steps, or e itself if its episodes are already limited
func limited(e env.Environment) (env.Environment, error) {
	if isLimited(e) {
		return e, nil
	}
	t, err := wrappers.NewTimeLimit(e, wrappers.DefaultEpisodeCutoff)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func isLimited(e env.Environment) bool {
	switch e := e.(type) {
	case *wrappers.TimeLimit:
		return true
	case *wrappers.CumulativeCost:
		return isLimited(e.Environment)
	}
	return false
}

// unwrap returns the GridWorld wrapped by e
func unwrap(e env.Environment) *gridworld.GridWorld {
	switch e := e.(type) {
	case *gridworld.GridWorld:
		return e
	case *wrappers.TimeLimit:
		return unwrap(e.Environment)
	case *wrappers.CumulativeCost:
		return unwrap(e.Environment)
	}
	log.Fatalf("unwrap: no GridWorld in %T", e)
	return nil
}
