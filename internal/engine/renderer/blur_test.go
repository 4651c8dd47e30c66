package renderer

import (
	gomath "math"
	"testing"
)

func TestGaussianKernelNormalized(t *testing.T) {
	for _, radius := range []int{1, 4, 12, MaxBlurRadius} {
		k := GaussianKernel(radius, float32(radius)/2)
		if len(k) != radius+1 {
			t.Fatalf("radius %d: %d weights", radius, len(k))
		}

		sum := float64(k[0])
		for _, w := range k[1:] {
			sum += 2 * float64(w)
		}
		if gomath.Abs(sum-1) > 1e-5 {
			t.Errorf("radius %d: weights sum to %f", radius, sum)
		}

		for i := 1; i < len(k); i++ {
			if k[i] > k[i-1] {
				t.Errorf("radius %d: weight %d rises (%f > %f)", radius, i, k[i], k[i-1])
			}
		}
	}
}

func TestGaussianKernelEdgeCases(t *testing.T) {
	tests := []struct {
		name   string
		radius int
		sigma  float32
		want   int
	}{
		{"zero sigma", 10, 0, 1},
		{"zero radius", 0, 5, 1},
		{"negative radius", -3, 5, 1},
		{"clamped radius", 100, 20, MaxBlurRadius + 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k := GaussianKernel(tt.radius, tt.sigma)
			if len(k) != tt.want {
				t.Errorf("len = %d, want %d", len(k), tt.want)
			}
			if tt.want == 1 && k[0] != 1 {
				t.Errorf("identity kernel = %v", k)
			}
		})
	}
}
