package testutil

import "testing"

func TestRamp(t *testing.T) {
	got := Ramp(4, 0.5, -1)
	RequireSliceNearlyEqual(t, got, []float64{-1, -0.5, 0, 0.5}, 0)

	if len(Ramp(0, 1, 1)) != 0 {
		t.Fatal("Ramp(0) should be empty")
	}
}

func TestConstant(t *testing.T) {
	RequireSliceNearlyEqual(t, Constant(2.5, 3), []float64{2.5, 2.5, 2.5}, 0)
}

func TestDeterministicNoise(t *testing.T) {
	a := DeterministicNoise(42, 1.0, 64)
	b := DeterministicNoise(42, 1.0, 64)
	if len(a) != 64 {
		t.Fatalf("len = %d, want 64", len(a))
	}
	RequireSliceNearlyEqual(t, a, b, 0)

	for i, v := range a {
		if v < -1 || v >= 1 {
			t.Fatalf("a[%d] = %v out of range", i, v)
		}
	}
}

func TestDeterministicNoiseDifferentSeeds(t *testing.T) {
	a := DeterministicNoise(1, 1.0, 16)
	b := DeterministicNoise(2, 1.0, 16)

	d, err := MaxAbsDiff(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if d == 0 {
		t.Fatal("different seeds produced identical noise")
	}
}
