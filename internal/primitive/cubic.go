package primitive

import (
	"github.com/seui-engine/raytracing-csg-renderer/internal/geom"
	"github.com/seui-engine/raytracing-csg-renderer/internal/roots"
	"github.com/seui-engine/raytracing-csg-renderer/internal/scalar"
	"github.com/seui-engine/raytracing-csg-renderer/internal/vecmath"
)

// Cubic is a general degree-3 implicit surface, specified as an
// arbitrary list of monomial terms (each with I+J+K <= 3).
type Cubic struct {
	Surface ImplicitSurface
}

func NewCubic(terms []Term, interior vecmath.Position, material Material) Cubic {
	return Cubic{Surface: ImplicitSurface{Degree: 3, Terms: terms, Interior: interior, Material: material}}
}

func cubicSolver(coeffs []scalar.S) []scalar.S {
	return roots.Cubic(coeffs[3], coeffs[2], coeffs[1], coeffs[0])
}

// Span solves the ray-surface intersection for a degree-3 surface.
func (c Cubic) Span(ray geom.Ray) geom.Span {
	return c.Surface.span(ray, cubicSolver)
}
