package trackers

import (
	"path/filepath"
	"testing"

	ts "github.com/samuelfneumann/gridnav/timestep"
)

// episode returns the TimeSteps of an episode with the given rewards
// and costs, the first TimeStep carrying neither
func episode(rewards, costs []float64) []ts.TimeStep {
	steps := []ts.TimeStep{ts.New(ts.First, 0, 1, nil, 0)}
	for i := range rewards {
		t := ts.Mid
		if i == len(rewards)-1 {
			t = ts.Last
		}
		step := ts.New(t, rewards[i], 1, nil, i+1)
		step.ConstraintCost = costs[i]
		steps = append(steps, step)
	}
	return steps
}

func track(t Tracker, episodes ...[]ts.TimeStep) {
	for _, e := range episodes {
		for _, step := range e {
			t.Track(step)
		}
	}
}

func equal(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestTrackers(t *testing.T) {
	dir := t.TempDir()
	ret := NewReturn(filepath.Join(dir, "return.bin"))
	length := NewEpisodeLength(filepath.Join(dir, "length.bin"))
	cost := NewConstraintCost(filepath.Join(dir, "cost.bin"))

	first := episode([]float64{-1, -1, 1000}, []float64{1, 0, 0})
	second := episode([]float64{-1, -1, -1, -1}, []float64{1, 1, 0, 1})
	unfinished := episode([]float64{-1, -1}, []float64{1, 1})
	unfinished = unfinished[:len(unfinished)-1]

	for _, tracker := range []Tracker{ret, length, cost} {
		track(tracker, first, second, unfinished)
		tracker.Save()
	}

	cases := []struct {
		name string
		data []float64
		file string
		want []float64
	}{
		{"return", ret.Data(), "return.bin", []float64{998, -4}},
		{"episodeLength", length.Data(), "length.bin", []float64{3, 4}},
		{"constraintCost", cost.Data(), "cost.bin", []float64{1, 3}},
	}
	for _, tc := range cases {
		if !equal(tc.data, tc.want) {
			t.Errorf("%v: expected %v, got %v", tc.name, tc.want, tc.data)
		}
		if saved := LoadData(filepath.Join(dir, tc.file)); !equal(saved,
			tc.want) {
			t.Errorf("%v: expected saved data %v, got %v", tc.name, tc.want,
				saved)
		}
	}
}

func TestReturnNonSequential(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("track: expected panic for non-sequential timesteps")
		}
	}()

	r := NewReturn("")
	r.Track(ts.New(ts.First, 0, 1, nil, 0))
	r.Track(ts.New(ts.Mid, -1, 1, nil, 2))
}

func TestReturnRestart(t *testing.T) {
	r := NewReturn("")

	abandoned := episode([]float64{-1, -1}, []float64{1, 1})
	track(r, abandoned[:2], episode([]float64{1000}, []float64{0}))

	if want := []float64{1000}; !equal(r.Data(), want) {
		t.Errorf("return: expected %v, got %v", want, r.Data())
	}
}

func TestConstraintCostRestart(t *testing.T) {
	c := NewConstraintCost("")

	// An episode abandoned before its last step is discarded when the
	// next episode starts
	abandoned := episode([]float64{-1, -1}, []float64{1, 1})
	track(c, abandoned[:2], episode([]float64{1000}, []float64{0}))

	if want := []float64{0}; !equal(c.Data(), want) {
		t.Errorf("constraintCost: expected %v, got %v", want, c.Data())
	}
}
