package timestep

import (
	"strings"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestStepTypes(t *testing.T) {
	obs := mat.NewVecDense(1, nil)
	types := []StepType{First, Mid, Last}

	for _, stepType := range types {
		step := New(stepType, -1, 0.99, obs, 3)

		if step.First() != (stepType == First) {
			t.Errorf("first: expected %v for %v", stepType == First, stepType)
		}
		if step.Mid() != (stepType == Mid) {
			t.Errorf("mid: expected %v for %v", stepType == Mid, stepType)
		}
		if step.Last() != (stepType == Last) {
			t.Errorf("last: expected %v for %v", stepType == Last, stepType)
		}
	}
}

func TestSetEnd(t *testing.T) {
	step := New(Mid, -1, 1, mat.NewVecDense(1, nil), 1)
	if step.EndType() != Unset {
		t.Errorf("endType: expected %v, got %v", Unset, step.EndType())
	}

	step.SetEnd(Timeout)
	if step.EndType() != Timeout {
		t.Errorf("endType: expected %v, got %v", Timeout, step.EndType())
	}
}

func TestString(t *testing.T) {
	step := New(Last, 1000, 1, mat.NewVecDense(1, nil), 7)
	step.ConstraintCost = 1

	str := step.String()
	for _, want := range []string{"Last", "1000.00", "Constraint Cost: 1.00",
		"Step Number:  7"} {
		if !strings.Contains(str, want) {
			t.Errorf("string: %q does not contain %q", str, want)
		}
	}
}
