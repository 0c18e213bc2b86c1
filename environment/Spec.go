package environment

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// SpecType is the quantity a Spec describes
type SpecType int

const (
	// Action specs bound each dimension of the actions an Environment
	// accepts. GridWorld actions are a single index into its moves.
	Action SpecType = iota

	// Observation specs bound each element of an observation vector,
	// either a one-hot position or a flattened RGB image
	Observation

	// Discount specs hold the constant discount as both bounds
	Discount

	// Reward specs are 1-dimensional and bound the reward of a single
	// step. The Navigate Task bounds it by its timestep penalty and
	// goal reward.
	Reward
)

func (s SpecType) String() string {
	switch s {
	case Action:
		return "Action"
	case Observation:
		return "Observation"
	case Discount:
		return "Discount"
	case Reward:
		return "Reward"
	}
	return fmt.Sprintf("SpecType(%d)", int(s))
}

// Cardinality tells whether the values of a Spec are discrete or
// continuous
type Cardinality string

const (
	Continuous Cardinality = "Continuous"
	Discrete   Cardinality = "Discrete"
)

// Spec describes the shape and elementwise bounds of one quantity of an
// Environment. Bounds are inclusive.
type Spec struct {
	Shape      *mat.VecDense
	Type       SpecType
	LowerBound *mat.VecDense
	UpperBound *mat.VecDense
	Cardinality
}

// NewSpec returns a Spec of type t. Both bounds must have the same
// length as shape, otherwise NewSpec panics.
func NewSpec(shape *mat.VecDense, t SpecType, lowerBound,
	upperBound *mat.VecDense, cardinality Cardinality) Spec {
	for _, bound := range []struct {
		name string
		vec  *mat.VecDense
	}{{"lower", lowerBound}, {"upper", upperBound}} {
		if shape.Len() != bound.vec.Len() {
			panic(fmt.Sprintf("newSpec: %v spec of length %d has %v bound "+
				"of length %d", t, shape.Len(), bound.name, bound.vec.Len()))
		}
	}
	return Spec{shape, t, lowerBound, upperBound, cardinality}
}

// Contains returns whether v has the length of the Spec and each of its
// elements lies within the bounds of the Spec
func (s Spec) Contains(v mat.Vector) bool {
	if v.Len() != s.Shape.Len() {
		return false
	}
	for i := 0; i < v.Len(); i++ {
		if v.AtVec(i) < s.LowerBound.AtVec(i) ||
			v.AtVec(i) > s.UpperBound.AtVec(i) {
			return false
		}
	}
	return true
}
