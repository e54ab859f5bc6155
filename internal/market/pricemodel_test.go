package market

import (
	"math"
	"testing"

	"github.com/demmerichs/trading-strategies/internal/model"
)

func TestIdentityModelLeavesPriceUnchanged(t *testing.T) {
	v := model.Vector{1, 2.5, 0.75}
	got := IdentityModel{}.Next(v, 0)
	for i := range v {
		if got[i] != v[i] {
			t.Fatalf("Next[%d] = %v, want %v", i, got[i], v[i])
		}
	}
	got[0] = 99
	if v[0] != 1 {
		t.Fatalf("Next must not alias the input vector")
	}
}

func TestGeometricModelTickParams(t *testing.T) {
	m, err := NewGeometricModel(0.11, 0.15, 10000, 1)
	if err != nil {
		t.Fatalf("NewGeometricModel: %v", err)
	}

	// Exact compounding: (1+g)^10000 == 1.11.
	if got := math.Pow(1+m.TickGrowth(), 10000); math.Abs(got-1.11) > 1e-9 {
		t.Fatalf("compounded tick growth = %v, want 1.11", got)
	}
	// Square-root-of-time scaling.
	if got := m.TickVolatility(); math.Abs(got-0.15/100) > 1e-15 {
		t.Fatalf("tick volatility = %v, want %v", got, 0.15/100)
	}
}

func TestGeometricModelDeterministicForSeed(t *testing.T) {
	a, err := NewGeometricModel(0.05, 0.2, 100, 42)
	if err != nil {
		t.Fatalf("NewGeometricModel: %v", err)
	}
	b, err := NewGeometricModel(0.05, 0.2, 100, 42)
	if err != nil {
		t.Fatalf("NewGeometricModel: %v", err)
	}

	va := model.Ones(8)
	vb := model.Ones(8)
	for tick := 0; tick < 50; tick++ {
		va = a.Next(va, tick)
		vb = b.Next(vb, tick)
	}
	for i := range va {
		if va[i] != vb[i] {
			t.Fatalf("lane %d diverged for identical seeds: %v vs %v", i, va[i], vb[i])
		}
	}
}

func TestGeometricModelLanesAreIndependent(t *testing.T) {
	m, err := NewGeometricModel(0.05, 0.2, 100, 7)
	if err != nil {
		t.Fatalf("NewGeometricModel: %v", err)
	}
	v := m.Next(model.Ones(16), 0)
	first := v[0]
	for i := 1; i < len(v); i++ {
		if v[i] != first {
			return
		}
	}
	t.Fatalf("all lanes drew the same return: %v", first)
}

func TestGeometricModelRejectsBadParams(t *testing.T) {
	if _, err := NewGeometricModel(0.1, 0.1, 0, 1); err == nil {
		t.Fatalf("expected error for ticksPerYear=0")
	}
	if _, err := NewGeometricModel(-1, 0.1, 100, 1); err == nil {
		t.Fatalf("expected error for annualGrowth=-1")
	}
	if _, err := NewGeometricModel(0.1, -0.1, 100, 1); err == nil {
		t.Fatalf("expected error for negative volatility")
	}
}
