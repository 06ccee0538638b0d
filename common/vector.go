package common

import (
	"gonum.org/v1/gonum/blas/blas64"
)

// NewVec creates new blas vector
func NewVec(data []float64) blas64.Vector {
	if data == nil {
		data = make([]float64, 0)
	}
	return blas64.Vector{
		N:    len(data),
		Inc:  1,
		Data: data,
	}
}

// L2 calculates l2-distance between two vectors
func L2(a, b blas64.Vector) float64 {
	res := NewVec(make([]float64, b.N))
	blas64.Copy(b, res)
	blas64.Axpy(-1.0, a, res)
	return blas64.Nrm2(res)
}

// IsZeroVector returns true if every element of the vector is zero
func IsZeroVector(v blas64.Vector) bool {
	return blas64.Asum(v) == 0.0
}
