package primitive

import (
	"github.com/seui-engine/raytracing-csg-renderer/internal/geom"
	"github.com/seui-engine/raytracing-csg-renderer/internal/scalar"
	"github.com/seui-engine/raytracing-csg-renderer/internal/vecmath"
)

// Cube is an axis-aligned box intersector, solved by the slab method.
type Cube struct {
	Center   vecmath.Position
	HalfSize vecmath.Size
	Material Material
}

var cubeAxisNormals = [3][2]vecmath.Direction{
	{vecmath.NewDirection(-1, 0, 0), vecmath.NewDirection(1, 0, 0)},
	{vecmath.NewDirection(0, -1, 0), vecmath.NewDirection(0, 1, 0)},
	{vecmath.NewDirection(0, 0, -1), vecmath.NewDirection(0, 0, 1)},
}

func (c Cube) hit(t scalar.S, n vecmath.Direction, front bool) geom.Hit {
	return geom.Hit{
		Distance:    t,
		Normal:      n,
		Albedo:      c.Material.Albedo,
		IsFrontFace: front,
		Roughness:   c.Material.Roughness,
		Metallic:    c.Material.Metallic,
	}
}

// Span intersects the ray against the box using the slab method.
func (c Cube) Span(ray geom.Ray) geom.Span {
	mins := [3]scalar.S{
		c.Center.X() - c.HalfSize.X(),
		c.Center.Y() - c.HalfSize.Y(),
		c.Center.Z() - c.HalfSize.Z(),
	}
	maxs := [3]scalar.S{
		c.Center.X() + c.HalfSize.X(),
		c.Center.Y() + c.HalfSize.Y(),
		c.Center.Z() + c.HalfSize.Z(),
	}
	o := [3]scalar.S{ray.Origin.X(), ray.Origin.Y(), ray.Origin.Z()}
	d := [3]scalar.S{ray.Direction.X(), ray.Direction.Y(), ray.Direction.Z()}

	tMin := scalar.NegInf()
	tMax := scalar.Inf()
	var nearNormal, farNormal vecmath.Direction

	for axis := 0; axis < 3; axis++ {
		if scalar.Abs(d[axis]) < scalar.Epsilon {
			// Axis-parallel ray: contained iff the origin lies within
			// this slab; otherwise the ray never enters the box.
			if o[axis] < mins[axis] || o[axis] > maxs[axis] {
				return nil
			}
			continue
		}
		invD := 1 / d[axis]
		t1 := (mins[axis] - o[axis]) * invD
		t2 := (maxs[axis] - o[axis]) * invD
		n1, n2 := cubeAxisNormals[axis][0], cubeAxisNormals[axis][1]
		if t1 > t2 {
			t1, t2 = t2, t1
			n1, n2 = n2, n1
		}
		if t1 > tMin {
			tMin, nearNormal = t1, n1
		}
		if t2 < tMax {
			tMax, farNormal = t2, n2
		}
	}

	if tMin > tMax || tMax < 0 {
		return nil
	}

	startT := tMin
	frontNormal := nearNormal
	if tMin < 0 {
		startT = 0
		frontNormal = ray.Direction.Neg()
	}
	return geom.Span{
		c.hit(startT, frontNormal, true),
		c.hit(tMax, farNormal, false),
	}
}
