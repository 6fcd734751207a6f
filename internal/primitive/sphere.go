package primitive

import (
	"github.com/seui-engine/raytracing-csg-renderer/internal/color"
	"github.com/seui-engine/raytracing-csg-renderer/internal/geom"
	"github.com/seui-engine/raytracing-csg-renderer/internal/roots"
	"github.com/seui-engine/raytracing-csg-renderer/internal/scalar"
	"github.com/seui-engine/raytracing-csg-renderer/internal/texture"
	"github.com/seui-engine/raytracing-csg-renderer/internal/vecmath"
)

// Sphere is an analytic sphere intersector.
type Sphere struct {
	Center   vecmath.Position
	Radius   scalar.S
	Material Material

	// Texture optionally overrides Material.Albedo per-hit via the
	// canonical equirectangular UV mapping.
	Texture *texture.Sampler
}

func (s Sphere) normalAt(p vecmath.Position) vecmath.Direction {
	return p.Sub(s.Center).ToDirection()
}

func (s Sphere) albedoAt(normal vecmath.Direction) color.LDR {
	if s.Texture == nil {
		return s.Material.Albedo
	}
	u, v := texture.DirectionToUV(normal)
	return s.Texture.Sample(u, v)
}

func (s Sphere) hitAt(t scalar.S, p vecmath.Position, isFront bool) geom.Hit {
	n := s.normalAt(p)
	return geom.Hit{
		Distance:    t,
		Normal:      n,
		Albedo:      s.albedoAt(n),
		IsFrontFace: isFront,
		Roughness:   s.Material.Roughness,
		Metallic:    s.Material.Metallic,
	}
}

// Span solves the ray-centered-sphere quadratic.
func (s Sphere) Span(ray geom.Ray) geom.Span {
	o := ray.Origin.Sub(s.Center) // origin - center
	a := scalar.S(1)              // |d|^2, d is unit
	b := 2 * ray.Direction.DotMove(o)
	c := o.Dot(o) - s.Radius*s.Radius

	ts := roots.Quadratic(a, b, c)
	if len(ts) != 2 {
		return nil
	}
	t1, t2 := ts[0], ts[1]
	if t2 < 0 {
		return nil
	}
	if t1 < 0 {
		// Ray starts inside: synthetic entry at distance 0.
		exit := s.hitAt(t2, ray.At(t2), false)
		return geom.Span{
			{Distance: 0, Normal: ray.Direction.Neg(), Albedo: exit.Albedo, IsFrontFace: true, Roughness: exit.Roughness, Metallic: exit.Metallic},
			exit,
		}
	}
	return geom.Span{
		s.hitAt(t1, ray.At(t1), true),
		s.hitAt(t2, ray.At(t2), false),
	}
}
