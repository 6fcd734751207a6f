// Package roots implements closed-form polynomial solvers: linear,
// quadratic (discriminant), cubic (Cardano), and quartic (Ferrari
// resolvent). Every solver returns real roots only, sorted ascending,
// with NaNs filtered out explicitly rather than relying on ordered
// comparison against NaN. A degenerate leading coefficient falls
// through to the next lower degree; an unsolvable or NaN-producing
// case yields an empty slice rather than an error.
package roots

import (
	"sort"

	"github.com/seui-engine/raytracing-csg-renderer/internal/scalar"
)

type S = scalar.S

// Linear solves a·t + b = 0.
func Linear(a, b S) []S {
	if scalar.Abs(a) < scalar.Epsilon {
		return nil
	}
	t := -b / a
	if scalar.IsNaN(t) || scalar.IsInf(t, 0) {
		return nil
	}
	return []S{t}
}

// Quadratic solves a·t² + b·t + c = 0 via the discriminant. Falls
// through to Linear if a is (near) zero.
func Quadratic(a, b, c S) []S {
	if scalar.Abs(a) < scalar.Epsilon {
		return Linear(b, c)
	}
	d := b*b - 4*a*c
	if d < 0 {
		return nil
	}
	sq := scalar.Sqrt(d)
	t1 := (-b - sq) / (2 * a)
	t2 := (-b + sq) / (2 * a)
	return filterSort([]S{t1, t2})
}

// Cubic solves a·t³ + b·t² + c·t + d = 0 via Cardano's method. Falls
// through to Quadratic if a is (near) zero.
func Cubic(a, b, c, d S) []S {
	if scalar.Abs(a) < scalar.Epsilon {
		return Quadratic(b, c, d)
	}

	// Normalize to t³ + a1 t² + a2 t + a3 = 0.
	a1 := b / a
	a2 := c / a
	a3 := d / a

	q := (3*a2 - a1*a1) / 9
	r := (9*a1*a2 - 27*a3 - 2*a1*a1*a1) / 54
	disc := q*q*q + r*r

	var out []S
	if disc > 0 {
		sq := scalar.Sqrt(disc)
		s := cbrtSigned(r + sq)
		t := cbrtSigned(r - sq)
		root := s + t - a1/3
		if !scalar.IsNaN(root) {
			out = append(out, root)
		}
		return filterSort(out)
	}

	// Three real roots (disc <= 0): trigonometric form.
	negQ3 := -(q * q * q)
	if negQ3 < 0 {
		negQ3 = 0
	}
	denom := scalar.Sqrt(negQ3)
	if denom < scalar.Epsilon {
		// q is (near) zero: triple root at -a1/3.
		out = append(out, -a1/3)
		return filterSort(out)
	}
	arg := scalar.Clamp(r/denom, -1, 1)
	theta := scalar.Acos(arg)
	if scalar.IsNaN(theta) {
		return nil
	}
	for _, k := range []S{0, -1, 1} {
		root := 2*scalar.Sqrt(-q)*scalar.Cos((theta+2*k*scalar.Pi())/3) - a1/3
		if !scalar.IsNaN(root) {
			out = append(out, root)
		}
	}
	return filterSort(out)
}

// cbrtSigned returns the real cube root of v, including for negative v
// (math.Cbrt already handles the sign correctly; named to document the
// Cardano usage explicitly).
func cbrtSigned(v S) S { return scalar.Cbrt(v) }

// Quartic solves a·t⁴ + b·t³ + c·t² + d·t + e = 0 via Ferrari's method.
// Falls through to Cubic if a is (near) zero.
func Quartic(a, b, c, d, e S) []S {
	if scalar.Abs(a) < scalar.Epsilon {
		return Cubic(b, c, d, e)
	}

	// Normalize to t⁴ + A t³ + B t² + C t + D = 0.
	A := b / a
	B := c / a
	C := d / a
	D := e / a

	// Depress: t = y - A/4.
	shift := A / 4
	Asq := A * A
	p := B - 3*Asq/8
	q := Asq*A/8 - A*B/2 + C
	r := -3*Asq*Asq/256 + Asq*B/16 - A*C/4 + D

	var ys []S
	if scalar.Abs(q) < scalar.Epsilon {
		// Biquadratic: y⁴ + p y² + r = 0.
		for _, y2 := range Quadratic(1, p, r) {
			if y2 < 0 {
				continue
			}
			if y2 == 0 {
				ys = append(ys, 0)
				continue
			}
			sy := scalar.Sqrt(y2)
			ys = append(ys, sy, -sy)
		}
	} else {
		// Resolvent cubic: z³ - (p/2) z² - r z + (p r - q²/4)/2 = 0.
		zs := Cubic(1, -p/2, -r, (p*r-q*q/4)/2)
		if len(zs) == 0 {
			return nil
		}
		z := zs[len(zs)-1]
		u2 := 2*z - p
		if u2 < 0 {
			u2 = 0
		}
		u := scalar.Sqrt(u2)
		var v S
		if scalar.Abs(u) < scalar.Epsilon {
			v = 0
		} else {
			v = q / (2 * u)
		}
		ys = append(ys, Quadratic(1, u, z-v)...)
		ys = append(ys, Quadratic(1, -u, z+v)...)
	}

	out := make([]S, 0, len(ys))
	for _, y := range ys {
		t := y - shift
		if !scalar.IsNaN(t) && !scalar.IsInf(t, 0) {
			out = append(out, t)
		}
	}
	return filterSort(out)
}

// filterSort drops NaN/Inf roots and returns the rest sorted ascending.
func filterSort(in []S) []S {
	out := in[:0]
	for _, v := range in {
		if scalar.IsNaN(v) || scalar.IsInf(v, 0) {
			continue
		}
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
