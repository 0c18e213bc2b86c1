// Package trackers implements Trackers, which track and save summary
// data of the episodes in an experiment
package trackers

import (
	"encoding/gob"
	"log"
	"os"

	"github.com/samuelfneumann/gridnav/environment"
	ts "github.com/samuelfneumann/gridnav/timestep"
)

// Tracker keeps track of experiment data and saves the data after the
// experiment has finished
type Tracker interface {
	Track(t ts.TimeStep)
	Save()
}

// registeredTracker tracks the most recent TimeStep of a registered
// Environment instead of the TimeStep passed to Track. This is useful
// when an experiment is run on an Environment wrapper but the data of
// the wrapped Environment should be tracked, for example episodes of a
// GridWorld which only end when the goal is reached, ignoring the
// truncation of a TimeLimit wrapper.
type registeredTracker struct {
	Tracker
	env environment.Environment
}

// Register returns a Tracker which calls t.Track with the most recent
// TimeStep of e, ignoring the argument to its own Track method.
func Register(t Tracker, e environment.Environment) Tracker {
	return &registeredTracker{t, e}
}

// Track calls Track on the embedded Tracker using the most recent
// TimeStep of the registered Environment
func (r *registeredTracker) Track(ts.TimeStep) {
	r.Tracker.Track(r.env.CurrentTimeStep())
}

// LoadData loads and returns the data saved by a Tracker
func LoadData(filename string) []float64 {
	file, err := os.Open(filename)
	if err != nil {
		log.Fatalf("could not open data file: %v", err)
	}
	defer file.Close()

	dec := gob.NewDecoder(file)
	var data []float64
	if err := dec.Decode(&data); err != nil {
		log.Fatalf("could not decode data: %v", err)
	}

	return data
}

// save gob encodes data to filename
func save(filename string, data []float64) {
	file, err := os.Create(filename)
	if err != nil {
		log.Fatalf("could not open save file: %v", err)
	}
	defer file.Close()

	en := gob.NewEncoder(file)
	if err := en.Encode(data); err != nil {
		log.Fatalf("could not encode data: %v", err)
	}
}
