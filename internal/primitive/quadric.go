package primitive

import (
	"github.com/seui-engine/raytracing-csg-renderer/internal/geom"
	"github.com/seui-engine/raytracing-csg-renderer/internal/roots"
	"github.com/seui-engine/raytracing-csg-renderer/internal/scalar"
	"github.com/seui-engine/raytracing-csg-renderer/internal/vecmath"
)

// Quadric is a general degree-2 implicit surface (ellipsoids,
// paraboloids, hyperboloids, cylinders, cones, ...),
// specified as an arbitrary list of monomial terms rather than a
// single closed form, so the scene format can describe any quadric.
type Quadric struct {
	Surface ImplicitSurface
}

// NewQuadric builds a Quadric from its monomial terms (each with
// I+J+K <= 2) plus the reference interior point used to resolve
// solid-vs-empty.
func NewQuadric(terms []Term, interior vecmath.Position, material Material) Quadric {
	return Quadric{Surface: ImplicitSurface{Degree: 2, Terms: terms, Interior: interior, Material: material}}
}

func quadraticSolver(coeffs []scalar.S) []scalar.S {
	return roots.Quadratic(coeffs[2], coeffs[1], coeffs[0])
}

// Span solves the ray-surface intersection for a degree-2 surface.
func (q Quadric) Span(ray geom.Ray) geom.Span {
	return q.Surface.span(ray, quadraticSolver)
}
