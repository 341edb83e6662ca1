package series

import (
	"errors"
	"math"
	"testing"
)

func linspace(lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = lo + (hi-lo)*float64(i)/float64(n-1)
	}
	return out
}

func TestSplineReproducesLinearExactly(t *testing.T) {
	oldX := linspace(0, 10, 50)
	oldY := make([]float64, len(oldX))
	for i, x := range oldX {
		oldY[i] = 2*x + 1
	}

	newX := linspace(0.3, 9.7, 17)
	newY, err := Spline(newX, oldX, oldY, false)
	if err != nil {
		t.Fatalf("Spline: %v", err)
	}
	for i, x := range newX {
		want := 2*x + 1
		if math.Abs(newY[i]-want) > 1e-10 {
			t.Errorf("at x=%g: got %g, want %g", x, newY[i], want)
		}
	}
}

func TestSplineRoundTrip(t *testing.T) {
	// Resample a smooth signal onto a sparser grid, fit again, and come
	// back: the round trip must reproduce the dense-grid spline values.
	dense := linspace(0, 4*math.Pi, 400)
	y := make([]float64, len(dense))
	for i, x := range dense {
		y[i] = math.Sin(x)
	}

	sparse := linspace(0, 4*math.Pi, 120)
	ySparse, err := Spline(sparse, dense, y, false)
	if err != nil {
		t.Fatalf("down-sampling: %v", err)
	}
	yBack, err := Spline(dense, sparse, ySparse, false)
	if err != nil {
		t.Fatalf("up-sampling: %v", err)
	}
	for i := range dense {
		if math.Abs(yBack[i]-y[i]) > 1e-5 {
			t.Fatalf("round trip drifted at x=%g: got %g, want %g",
				dense[i], yBack[i], y[i])
		}
	}
}

func TestSplineExtrapolationGuard(t *testing.T) {
	oldX := linspace(0, 1, 10)
	oldY := make([]float64, len(oldX))
	for i := range oldY {
		oldY[i] = 1 + oldX[i]
	}

	_, err := Spline([]float64{-0.5, 0.5}, oldX, oldY, false)
	if !errors.Is(err, ErrExtrapolation) {
		t.Fatalf("expected ErrExtrapolation, got %v", err)
	}
	_, err = Spline([]float64{0.5, 1.5}, oldX, oldY, false)
	if !errors.Is(err, ErrExtrapolation) {
		t.Fatalf("expected ErrExtrapolation above the domain, got %v", err)
	}
}

func TestSplineExtrapolatesToZero(t *testing.T) {
	oldX := linspace(0, 1, 10)
	oldY := make([]float64, len(oldX))
	for i := range oldY {
		oldY[i] = 5 // constant, nowhere near zero
	}

	newY, err := Spline([]float64{-2, 0.5, 3}, oldX, oldY, true)
	if err != nil {
		t.Fatalf("Spline: %v", err)
	}
	if newY[0] != 0 || newY[2] != 0 {
		t.Errorf("outside-domain values must be exactly zero, got %v", newY)
	}
	if math.Abs(newY[1]-5) > 1e-10 {
		t.Errorf("inside-domain value: got %g, want 5", newY[1])
	}
}

func TestSplineInputValidation(t *testing.T) {
	tests := []struct {
		name string
		oldX []float64
		oldY []float64
		want error
	}{
		{"length mismatch", []float64{0, 1, 2}, []float64{0, 1}, ErrLengthMismatch},
		{"too few points", []float64{0}, []float64{0}, ErrTooFewPoints},
		{"not increasing", []float64{0, 2, 1}, []float64{0, 1, 2}, ErrNotIncreasing},
		{"duplicate abscissa", []float64{0, 1, 1}, []float64{0, 1, 2}, ErrNotIncreasing},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Spline([]float64{0.5}, tc.oldX, tc.oldY, false)
			if !errors.Is(err, tc.want) {
				t.Errorf("got %v, want %v", err, tc.want)
			}
		})
	}
}

func TestOrbitalFrequency(t *testing.T) {
	// A linear phase ramp is reproduced exactly, derivative included.
	ts := linspace(0, 10, 100)
	phase := make([]float64, len(ts))
	for i, x := range ts {
		phase[i] = 0.5 + 0.25*x
	}

	omega, err := OrbitalFrequency(ts, phase)
	if err != nil {
		t.Fatalf("OrbitalFrequency: %v", err)
	}
	for i := range omega {
		if math.Abs(omega[i]-0.25) > 1e-8 {
			t.Fatalf("at t=%g: got omega=%g, want 0.25", ts[i], omega[i])
		}
	}
}

func TestOrbitalFrequencyRejectsBadInput(t *testing.T) {
	if _, err := OrbitalFrequency([]float64{0, 1}, []float64{0}); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("length mismatch: got %v", err)
	}
	if _, err := OrbitalFrequency([]float64{1, 0}, []float64{0, 1}); !errors.Is(err, ErrNotIncreasing) {
		t.Errorf("decreasing time base: got %v", err)
	}
}
