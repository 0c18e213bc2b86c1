package environment

import (
	"testing"

	ts "github.com/samuelfneumann/gridnav/timestep"
	"gonum.org/v1/gonum/mat"
)

func TestStepLimit(t *testing.T) {
	limit := NewStepLimit(5)
	obs := mat.NewVecDense(1, nil)

	for i := 1; i <= 5; i++ {
		step := ts.New(ts.Mid, -1, 1, obs, i)
		ended := limit.End(&step)

		if i < 5 && (ended || step.Last()) {
			t.Errorf("end: episode should not end at step %v", i)
		}
		if i == 5 {
			if !ended || !step.Last() {
				t.Errorf("end: episode should end at step %v", i)
			}
			if step.EndType() != ts.Timeout {
				t.Errorf("end: expected end type %v, got %v", ts.Timeout,
					step.EndType())
			}
		}
	}
}
