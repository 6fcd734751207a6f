// Package color implements the HDR/LDR color algebra: unbounded
// high-dynamic-range accumulation and clamped low-dynamic-range output.
package color

import "github.com/seui-engine/raytracing-csg-renderer/internal/scalar"

// HDR is an unbounded, non-negative-component high dynamic range color.
// Construction clamps negative channels to 0 (HDR colors accumulate
// light; they never go negative).
type HDR struct {
	R, G, B scalar.S
}

// NewHDR builds an HDR color, clamping negative inputs to 0.
func NewHDR(r, g, b scalar.S) HDR {
	return HDR{clampNonNeg(r), clampNonNeg(g), clampNonNeg(b)}
}

func clampNonNeg(v scalar.S) scalar.S {
	if v < 0 {
		return 0
	}
	return v
}

// Add is closed under HDR + HDR.
func (c HDR) Add(o HDR) HDR { return HDR{c.R + o.R, c.G + o.G, c.B + o.B} }

// Mul is closed under HDR ⊙ HDR (componentwise).
func (c HDR) Mul(o HDR) HDR { return HDR{c.R * o.R, c.G * o.G, c.B * o.B} }

// Scale multiplies every channel by a scalar.
func (c HDR) Scale(s scalar.S) HDR { return HDR{c.R * s, c.G * s, c.B * s} }

// Div divides every channel by a scalar; division by (near) zero
// returns black rather than propagating Inf/NaN into the accumulator.
func (c HDR) Div(s scalar.S) HDR {
	if scalar.Abs(s) < scalar.Epsilon {
		return HDR{}
	}
	return HDR{c.R / s, c.G / s, c.B / s}
}

// MulLDR folds an LDR reflectance into an HDR radiance: LDR × HDR = HDR.
func (c HDR) MulLDR(l LDR) HDR { return HDR{c.R * l.R, c.G * l.G, c.B * l.B} }

// LDR is a display-range color; construction clamps every channel to
// [0,1].
type LDR struct {
	R, G, B scalar.S
}

// NewLDR builds an LDR color, clamping each channel to [0,1].
func NewLDR(r, g, b scalar.S) LDR {
	return LDR{scalar.Clamp(r, 0, 1), scalar.Clamp(g, 0, 1), scalar.Clamp(b, 0, 1)}
}

// ToHDR promotes an LDR color into the HDR algebra (e.g. for ambient ×
// albedo).
func (l LDR) ToHDR() HDR { return HDR{l.R, l.G, l.B} }

// Mix linearly interpolates between two LDR colors: t=0 -> a, t=1 -> b.
func (a LDR) Mix(b LDR, t scalar.S) LDR {
	t = scalar.Clamp(t, 0, 1)
	return NewLDR(
		a.R+(b.R-a.R)*t,
		a.G+(b.G-a.G)*t,
		a.B+(b.B-a.B)*t,
	)
}

// Black is the zero HDR color.
var Black = HDR{}
