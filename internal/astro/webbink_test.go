package astro

import (
	"errors"
	"math"
	"testing"
)

func TestRadiusKnownValues(t *testing.T) {
	tests := []struct {
		mass float64
		want float64
	}{
		{0.6, 8.7379180668e8},
		{0.7, 7.8628204512e8},
		{1.0, 5.6417032154e8},
		{1.2, 4.1709303934e8},
		{1.35, 2.7232583533e8},
	}

	for _, tt := range tests {
		got, err := Radius(tt.mass)
		if err != nil {
			t.Fatalf("Radius(%g): %v", tt.mass, err)
		}
		if math.Abs(got-tt.want)/tt.want > 1e-9 {
			t.Errorf("Radius(%g) = %e, want %e", tt.mass, got, tt.want)
		}
	}
}

func TestRadiusShrinksWithMass(t *testing.T) {
	prev := math.Inf(1)
	for _, m := range []float64{0.4, 0.6, 0.8, 1.0, 1.2, 1.4} {
		r, err := Radius(m)
		if err != nil {
			t.Fatalf("Radius(%g): %v", m, err)
		}
		if r >= prev {
			t.Errorf("Radius(%g) = %e, expected smaller than %e", m, r, prev)
		}
		prev = r
	}
}

func TestRadiusMassRange(t *testing.T) {
	for _, m := range []float64{0, -1, ChandrasekharMass, 2.0} {
		if _, err := Radius(m); !errors.Is(err, ErrMassRange) {
			t.Errorf("Radius(%g): expected ErrMassRange, got %v", m, err)
		}
	}
}

func TestLogG(t *testing.T) {
	got, err := LogG(1.0)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(got-8.6223353573) > 1e-6 {
		t.Errorf("LogG(1.0) = %f, want 8.6223", got)
	}
}
