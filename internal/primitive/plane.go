package primitive

import (
	"github.com/seui-engine/raytracing-csg-renderer/internal/geom"
	"github.com/seui-engine/raytracing-csg-renderer/internal/scalar"
	"github.com/seui-engine/raytracing-csg-renderer/internal/vecmath"
)

// Plane is an oriented half-space intersector. The solid is the
// half-space ⟨n, x - point⟩ <= 0.
type Plane struct {
	Point    vecmath.Position
	Normal   vecmath.Direction
	Material Material
}

func (p Plane) hit(t scalar.S, n vecmath.Direction, front bool) geom.Hit {
	return geom.Hit{
		Distance:    t,
		Normal:      n,
		Albedo:      p.Material.Albedo,
		IsFrontFace: front,
		Roughness:   p.Material.Roughness,
		Metallic:    p.Material.Metallic,
	}
}

// Span intersects the ray against the plane's half-space.
func (p Plane) Span(ray geom.Ray) geom.Span {
	denom := p.Normal.Dot(ray.Direction)
	if scalar.Abs(denom) < scalar.Epsilon {
		return nil
	}
	toPlane := p.Point.Sub(ray.Origin)
	t := p.Normal.DotMove(toPlane) / denom

	switch {
	case denom < 0 && t >= 0:
		return geom.Span{
			p.hit(t, p.Normal, true),
			p.hit(scalar.Inf(), ray.Direction, false),
		}
	case denom < 0 && t < 0:
		return geom.Span{
			p.hit(0, ray.Direction.Neg(), true),
			p.hit(scalar.Inf(), ray.Direction, false),
		}
	case denom > 0 && t >= 0:
		return geom.Span{
			p.hit(0, ray.Direction.Neg(), true),
			p.hit(t, p.Normal, false),
		}
	default: // denom > 0 && t < 0
		return nil
	}
}
