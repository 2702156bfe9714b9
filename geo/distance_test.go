package geo

import (
	"math"
	"testing"
)

func TestDistanceMeters(t *testing.T) {
	tests := []struct {
		name      string
		lat1      float64
		lng1      float64
		lat2      float64
		lng2      float64
		expected  float64
		tolerance float64
	}{
		{
			name:      "identical points",
			lat1:      26.1885, lng1: 91.7535,
			lat2:      26.1885, lng2: 91.7535,
			expected:  0,
			tolerance: 0.001,
		},
		{
			name: "one degree of latitude",
			lat1: 0, lng1: 0,
			lat2: 1, lng2: 0,
			expected:  111194.9, // pi * R / 180
			tolerance: 1,
		},
		{
			name: "high court to panbazar",
			lat1: 26.1885, lng1: 91.7535,
			lat2: 26.1834, lng2: 91.7475,
			expected:  820, // ~0.82km along the route
			tolerance: 20,
		},
		{
			name: "antipodal points",
			lat1: 0, lng1: 0,
			lat2: 0, lng2: 180,
			expected:  math.Pi * 6371000,
			tolerance: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DistanceMeters(tt.lat1, tt.lng1, tt.lat2, tt.lng2)
			if math.Abs(got-tt.expected) > tt.tolerance {
				t.Errorf("expected %.1f ± %.1f, got %.1f", tt.expected, tt.tolerance, got)
			}
		})
	}
}

func TestDistanceMetersSymmetric(t *testing.T) {
	d1 := DistanceMeters(26.1885, 91.7535, 26.1385, 91.6405)
	d2 := DistanceMeters(26.1385, 91.6405, 26.1885, 91.7535)
	if math.Abs(d1-d2) > 1e-6 {
		t.Errorf("distance not symmetric: %f vs %f", d1, d2)
	}
}

func TestFormatDistance(t *testing.T) {
	tests := []struct {
		name     string
		meters   float64
		expected string
	}{
		{name: "zero", meters: 0, expected: "0m"},
		{name: "rounds to whole meters", meters: 42.7, expected: "43m"},
		{name: "just under a kilometer", meters: 999.4, expected: "999m"},
		{name: "exactly one kilometer", meters: 1000, expected: "1.0km"},
		{name: "kilometers one decimal", meters: 2547, expected: "2.5km"},
		{name: "long distance", meters: 14802.7, expected: "14.8km"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatDistance(tt.meters); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}
