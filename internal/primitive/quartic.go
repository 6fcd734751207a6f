package primitive

import (
	"github.com/seui-engine/raytracing-csg-renderer/internal/geom"
	"github.com/seui-engine/raytracing-csg-renderer/internal/roots"
	"github.com/seui-engine/raytracing-csg-renderer/internal/scalar"
	"github.com/seui-engine/raytracing-csg-renderer/internal/vecmath"
)

// Quartic is a general degree-4 implicit surface (tori, blobs,
// Steiner/Roman-type surfaces, ...), specified as an arbitrary list of
// monomial terms (each with I+J+K <= 4).
type Quartic struct {
	Surface ImplicitSurface
}

func NewQuartic(terms []Term, interior vecmath.Position, material Material) Quartic {
	return Quartic{Surface: ImplicitSurface{Degree: 4, Terms: terms, Interior: interior, Material: material}}
}

func quarticSolver(coeffs []scalar.S) []scalar.S {
	return roots.Quartic(coeffs[4], coeffs[3], coeffs[2], coeffs[1], coeffs[0])
}

// Span solves the ray-surface intersection for a degree-4 surface.
func (q Quartic) Span(ray geom.Ray) geom.Span {
	return q.Surface.span(ray, quarticSolver)
}
