package primitive

import (
	"github.com/seui-engine/raytracing-csg-renderer/internal/geom"
	"github.com/seui-engine/raytracing-csg-renderer/internal/scalar"
	"github.com/seui-engine/raytracing-csg-renderer/internal/vecmath"
)

// Term is one monomial coeff*x^I*y^J*z^K of a degree-2/3/4 implicit
// surface polynomial.
type Term struct {
	I, J, K int
	Coeff   scalar.S
}

// ImplicitSurface is the shared representation behind Quadric, Cubic,
// and Quartic: a polynomial in (x,y,z) plus the scene-declared
// reference interior point used to resolve solid-vs-empty interior.
type ImplicitSurface struct {
	Degree   int
	Terms    []Term
	Interior vecmath.Position
	Material Material
}

// evalAt evaluates the polynomial at a point.
func (s ImplicitSurface) evalAt(p vecmath.Position) scalar.S {
	var v scalar.S
	for _, t := range s.Terms {
		v += t.Coeff * power(p.X(), t.I) * power(p.Y(), t.J) * power(p.Z(), t.K)
	}
	return v
}

func power(base scalar.S, exp int) scalar.S {
	v := scalar.S(1)
	for i := 0; i < exp; i++ {
		v *= base
	}
	return v
}

// gradientAt computes the gradient of the polynomial at p, via the
// mechanical per-monomial partial derivative, normalized into a
// Direction.
func (s ImplicitSurface) gradientAt(p vecmath.Position) vecmath.Direction {
	var gx, gy, gz scalar.S
	for _, t := range s.Terms {
		if t.I > 0 {
			gx += t.Coeff * scalar.S(t.I) * power(p.X(), t.I-1) * power(p.Y(), t.J) * power(p.Z(), t.K)
		}
		if t.J > 0 {
			gy += t.Coeff * power(p.X(), t.I) * scalar.S(t.J) * power(p.Y(), t.J-1) * power(p.Z(), t.K)
		}
		if t.K > 0 {
			gz += t.Coeff * power(p.X(), t.I) * power(p.Y(), t.J) * scalar.S(t.K) * power(p.Z(), t.K-1)
		}
	}
	return vecmath.NewDirection(gx, gy, gz)
}

// binomialExpand returns the coefficients (indexed by power of t, 0..n)
// of (o + t*d)^n, i.e. coefficient of t^a is C(n,a) * o^(n-a) * d^a.
func binomialExpand(n int, o, d scalar.S) []scalar.S {
	out := make([]scalar.S, n+1)
	for a := 0; a <= n; a++ {
		out[a] = choose(n, a) * power(o, n-a) * power(d, a)
	}
	return out
}

func choose(n, k int) scalar.S {
	if k < 0 || k > n {
		return 0
	}
	result := scalar.S(1)
	for i := 0; i < k; i++ {
		result = result * scalar.S(n-i) / scalar.S(i+1)
	}
	return result
}

// convolve multiplies two polynomials represented as coefficient
// slices indexed by ascending power.
func convolve(a, b []scalar.S) []scalar.S {
	out := make([]scalar.S, len(a)+len(b)-1)
	for i, av := range a {
		if av == 0 {
			continue
		}
		for j, bv := range b {
			out[i+j] += av * bv
		}
	}
	return out
}

// substituteRay derives the coefficients of t^0..t^degree obtained by
// substituting (o + t*d) into the polynomial: every monomial
// contributes to every t^k coefficient consistent with multinomial
// expansion.
func substituteRay(terms []Term, degree int, o, d [3]scalar.S) []scalar.S {
	coeffs := make([]scalar.S, degree+1)
	for _, term := range terms {
		xExp := binomialExpand(term.I, o[0], d[0])
		yExp := binomialExpand(term.J, o[1], d[1])
		zExp := binomialExpand(term.K, o[2], d[2])
		xy := convolve(xExp, yExp)
		xyz := convolve(xy, zExp)
		for p, v := range xyz {
			coeffs[p] += term.Coeff * v
		}
	}
	return coeffs
}

// solver computes the real roots of a degree-N polynomial expressed as
// coefficients coeffs[0..N] of t^0..t^N (ascending), unfiltered by
// sign, sorted ascending.
type solver func(coeffs []scalar.S) []scalar.S

// span is the shared intersection/interior-test/normal-orientation
// procedure for Quadric/Cubic/Quartic.
func (s ImplicitSurface) span(ray geom.Ray, solve solver) geom.Span {
	o := [3]scalar.S{ray.Origin.X(), ray.Origin.Y(), ray.Origin.Z()}
	d := [3]scalar.S{ray.Direction.X(), ray.Direction.Y(), ray.Direction.Z()}

	coeffs := substituteRay(s.Terms, s.Degree, o, d)
	allRoots := solve(coeffs)

	var ts []scalar.S
	for _, t := range allRoots {
		if t >= 0 {
			ts = append(ts, t)
		}
	}

	inside := s.isInside(ray.Origin, solve)

	isFront := inside
	var crossings geom.Span
	for _, t := range ts {
		isFront = !isFront
		p := ray.At(t)
		grad := s.gradientAt(p)
		n := geom.EnhanceNormal(ray.Direction, grad, isFront)
		crossings = append(crossings, geom.Hit{
			Distance:    t,
			Normal:      n,
			Albedo:      s.Material.Albedo,
			IsFrontFace: isFront,
			Roughness:   s.Material.Roughness,
			Metallic:    s.Material.Metallic,
		})
	}

	var result geom.Span
	if inside {
		result = append(result, geom.Hit{
			Distance: 0, Normal: ray.Direction.Neg(), Albedo: s.Material.Albedo,
			IsFrontFace: true, Roughness: s.Material.Roughness, Metallic: s.Material.Metallic,
		})
	}
	result = append(result, crossings...)
	if isFront {
		result = append(result, geom.Hit{
			Distance: scalar.Inf(), Normal: ray.Direction, Albedo: s.Material.Albedo,
			IsFrontFace: false, Roughness: s.Material.Roughness, Metallic: s.Material.Metallic,
		})
	}
	return result
}

// isInside is the auxiliary-ray interior test: cast from the declared
// interior point towards the query point and count real non-negative
// roots closer than the query point.
func (s ImplicitSurface) isInside(p vecmath.Position, solve solver) bool {
	toP := p.Sub(s.Interior)
	dist := toP.Length()
	if dist < scalar.Epsilon {
		return true
	}
	dir := toP.ToDirection()
	auxO := [3]scalar.S{s.Interior.X(), s.Interior.Y(), s.Interior.Z()}
	auxD := [3]scalar.S{dir.X(), dir.Y(), dir.Z()}
	coeffs := substituteRay(s.Terms, s.Degree, auxO, auxD)
	auxRoots := solve(coeffs)

	count := 0
	for _, t := range auxRoots {
		if t >= 0 && t < dist {
			count++
		}
	}
	return count%2 == 0
}
