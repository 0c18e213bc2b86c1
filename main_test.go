package main

import (
	"testing"

	"github.com/samuelfneumann/gridnav/environment/gridworld"
	"github.com/samuelfneumann/gridnav/environment/wrappers"
)

func TestLimited(t *testing.T) {
	g, _, err := gridworld.New(gridworld.DefaultConfig(), 0)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	e, err := limited(g)
	if err != nil {
		t.Fatalf("limited: %v", err)
	}
	tl, ok := e.(*wrappers.TimeLimit)
	if !ok {
		t.Fatalf("limited: expected *wrappers.TimeLimit, got %T", e)
	}
	if tl.Cutoff() != wrappers.DefaultEpisodeCutoff {
		t.Errorf("limited: expected cutoff %d, got %d",
			wrappers.DefaultEpisodeCutoff, tl.Cutoff())
	}
	if unwrap(e) != g {
		t.Error("limited: expected the GridWorld to be wrapped")
	}

	// Episodes that are already limited keep their cutoff
	short, err := wrappers.NewTimeLimit(g, 10)
	if err != nil {
		t.Fatal(err)
	}
	c, err := wrappers.NewCumulativeCost(short, 5)
	if err != nil {
		t.Fatal(err)
	}
	if e, _ := limited(short); e != short {
		t.Errorf("limited: expected %v unchanged, got %v", short, e)
	}
	if e, _ := limited(c); e != c {
		t.Errorf("limited: expected %v unchanged, got %v", c, e)
	}
}
