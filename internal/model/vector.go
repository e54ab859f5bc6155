package model

import "github.com/grd/stat"

// Vector holds one value per simulation lane. Lane i of every vector in a run
// belongs to the same independent Monte-Carlo path; lanes never interact.
// All vectors share the same length, fixed when the market is constructed,
// so the element-wise helpers below assume equal-length operands.
type Vector []float64

// Zeros returns a vector of n lanes, all zero.
func Zeros(n int) Vector {
	return make(Vector, n)
}

// Ones returns a vector of n lanes, all one.
func Ones(n int) Vector {
	v := make(Vector, n)
	for i := range v {
		v[i] = 1
	}
	return v
}

// Clone returns an independent copy of v.
func (v Vector) Clone() Vector {
	out := make(Vector, len(v))
	copy(out, v)
	return out
}

// Add adds o to v lane-by-lane, in place.
func (v Vector) Add(o Vector) {
	for i := range v {
		v[i] += o[i]
	}
}

// Sub subtracts o from v lane-by-lane, in place.
func (v Vector) Sub(o Vector) {
	for i := range v {
		v[i] -= o[i]
	}
}

// AddScalar adds s to every lane of v, in place.
func (v Vector) AddScalar(s float64) {
	for i := range v {
		v[i] += s
	}
}

// Mul returns the lane-wise product a*b.
func Mul(a, b Vector) Vector {
	out := make(Vector, len(a))
	for i := range a {
		out[i] = a[i] * b[i]
	}
	return out
}

// Div returns the lane-wise quotient a/b.
func Div(a, b Vector) Vector {
	out := make(Vector, len(a))
	for i := range a {
		out[i] = a[i] / b[i]
	}
	return out
}

// Min returns the lane-wise minimum of a and b.
func Min(a, b Vector) Vector {
	out := make(Vector, len(a))
	for i := range a {
		if a[i] < b[i] {
			out[i] = a[i]
		} else {
			out[i] = b[i]
		}
	}
	return out
}

// Mean returns the arithmetic mean across lanes (0 for an empty vector).
func (v Vector) Mean() float64 {
	if len(v) == 0 {
		return 0
	}
	return stat.Mean(stat.Float64Slice(v))
}

// Std returns the sample standard deviation across lanes.
func (v Vector) Std() float64 {
	if len(v) < 2 {
		return 0
	}
	return stat.Sd(stat.Float64Slice(v))
}
