// Package matutils implements utility function for working with mat.Matrix
// structs
package matutils

import "gonum.org/v1/gonum/mat"

// VecOnes returns a vector of 1.0's
func VecOnes(length int) *mat.VecDense {
	ones := make([]float64, length)
	for i := range ones {
		ones[i] = 1.0
	}
	return mat.NewVecDense(length, ones)
}

// VecOneHot returns a vector of 0.0's with a single 1.0 at index i.
// VecOneHot panics if i is out of range.
func VecOneHot(length, i int) *mat.VecDense {
	v := mat.NewVecDense(length, nil)
	v.SetVec(i, 1.0)
	return v
}
