// pkg/math/core.go
// Copyright(c) 2024-2026 ar-project contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

import (
	gomath "math"

	"golang.org/x/exp/constraints"
)

// A few utility functions for evaluating transcendentals and the like
// follow; since render-space geometry is float32, it's handy to be able to
// call these directly rather than with all of the casts that are required
// when using the math package.

func Sqrt(a float32) float32 {
	return float32(gomath.Sqrt(float64(a)))
}

func Abs[V constraints.Integer | constraints.Float](x V) V {
	if x < 0 {
		return -x
	}
	return x
}

func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

func Sqr[V constraints.Integer | constraints.Float](v V) V { return v * v }

func Clamp[T constraints.Ordered](x T, low T, high T) T {
	if x < low {
		return low
	} else if x > high {
		return high
	}
	return x
}

// Lerp interpolates x of the way between a and b. x==0 corresponds to a,
// x==1 corresponds to b, etc.
func Lerp[T constraints.Float](x, a, b T) T {
	return (1-x)*a + x*b
}

///////////////////////////////////////////////////////////////////////////
// Easing curves

// An easing curve remaps linear animation progress in [0,1] to eased
// progress in [0,1]. All of the curves here are monotonic and map 0 to 0
// and 1 to 1, which camera flights depend on for exact arrival.

// EaseLinear passes progress through unchanged.
func EaseLinear(t float32) float32 {
	return t
}

// SmoothStep is the classic 3t^2-2t^3 ease-in-ease-out curve.
func SmoothStep(t float32) float32 {
	t = Clamp(t, 0, 1)
	return t * t * (3 - 2*t)
}

// SmootherStep is Perlin's 6t^5-15t^4+10t^3 variant of SmoothStep; it has
// zero second derivatives at the endpoints.
func SmootherStep(t float32) float32 {
	t = Clamp(t, 0, 1)
	return t * t * t * (t*(t*6-15) + 10)
}

// EasingNamed maps a configuration-friendly name to an easing curve;
// unknown names (including the empty string) give SmoothStep, the default
// ease-in-ease-out pacing for camera flights.
func EasingNamed(name string) func(float32) float32 {
	switch name {
	case "linear":
		return EaseLinear
	case "smootherstep":
		return SmootherStep
	default:
		return SmoothStep
	}
}
