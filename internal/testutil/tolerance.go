// Package testutil holds comparison and fixture helpers shared by tests.
package testutil

import (
	"math/rand/v2"

	"github.com/chewxy/math32"
)

// Near reports whether a and b differ by at most eps.
func Near(a, b, eps float32) bool {
	return math32.Abs(a-b) <= eps
}

// NearRel compares with a tolerance relative to the larger magnitude, falling
// back to an absolute eps around zero.
func NearRel(a, b, eps float32) bool {
	scale := math32.Abs(a)
	if bb := math32.Abs(b); bb > scale {
		scale = bb
	}
	if scale < 1 {
		scale = 1
	}
	return math32.Abs(a-b) <= eps*scale
}

// AllNear compares two equally long slices element-wise.
func AllNear(a, b []float32, eps float32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Near(a[i], b[i], eps) {
			return false
		}
	}
	return true
}

// Rand returns a deterministic generator for reproducible fixtures.
func Rand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Fill writes uniform values in [min, max) into dst.
func Fill(r *rand.Rand, dst []float32, min, max float32) {
	for i := range dst {
		dst[i] = min + r.Float32()*(max-min)
	}
}
