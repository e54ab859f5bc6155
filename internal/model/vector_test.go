package model

import (
	"math"
	"testing"
)

func TestOnesZeros(t *testing.T) {
	ones := Ones(3)
	zeros := Zeros(3)
	for i := 0; i < 3; i++ {
		if ones[i] != 1 {
			t.Fatalf("Ones[%d] = %v, want 1", i, ones[i])
		}
		if zeros[i] != 0 {
			t.Fatalf("Zeros[%d] = %v, want 0", i, zeros[i])
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	v := Vector{1, 2, 3}
	c := v.Clone()
	c[0] = 99
	if v[0] != 1 {
		t.Fatalf("Clone shares backing array with original")
	}
}

func TestElementwiseOps(t *testing.T) {
	a := Vector{4, 9, 2}
	b := Vector{2, 3, 5}

	if got := Mul(a, b); got[0] != 8 || got[1] != 27 || got[2] != 10 {
		t.Fatalf("Mul = %v", got)
	}
	if got := Div(a, b); got[0] != 2 || got[1] != 3 || got[2] != 0.4 {
		t.Fatalf("Div = %v", got)
	}
	if got := Min(a, b); got[0] != 2 || got[1] != 3 || got[2] != 2 {
		t.Fatalf("Min = %v", got)
	}

	v := Vector{1, 2, 3}
	v.Add(Vector{1, 1, 1})
	if v[0] != 2 || v[2] != 4 {
		t.Fatalf("Add = %v", v)
	}
	v.Sub(Vector{2, 2, 2})
	if v[0] != 0 || v[2] != 2 {
		t.Fatalf("Sub = %v", v)
	}
	v.AddScalar(10)
	if v[0] != 10 || v[1] != 11 || v[2] != 12 {
		t.Fatalf("AddScalar = %v", v)
	}
}

func TestMeanStd(t *testing.T) {
	v := Vector{2, 4, 4, 4, 5, 5, 7, 9}
	if got := v.Mean(); got != 5 {
		t.Fatalf("Mean = %v, want 5", got)
	}
	// Sample standard deviation of the set above.
	want := math.Sqrt(32.0 / 7.0)
	if got := v.Std(); math.Abs(got-want) > 1e-12 {
		t.Fatalf("Std = %v, want %v", got, want)
	}

	if got := Zeros(0).Mean(); got != 0 {
		t.Fatalf("Mean of empty = %v, want 0", got)
	}
	if got := (Vector{1}).Std(); got != 0 {
		t.Fatalf("Std of single lane = %v, want 0", got)
	}
}
