// Package geom implements the Ray/Hit/span-sequence data model and
// the CSG composer built on top of it.
package geom

import (
	"github.com/seui-engine/raytracing-csg-renderer/internal/color"
	"github.com/seui-engine/raytracing-csg-renderer/internal/scalar"
	"github.com/seui-engine/raytracing-csg-renderer/internal/vecmath"
)

// Ray is a world-space ray; Direction is already unit.
type Ray struct {
	Origin    vecmath.Position
	Direction vecmath.Direction
}

// At evaluates the ray at parameter t.
func (r Ray) At(t scalar.S) vecmath.Position {
	return r.Origin.Add(r.Direction.Scale(t))
}

// Hit is a single ray/surface intersection.
type Hit struct {
	Distance    scalar.S
	Normal      vecmath.Direction
	Albedo      color.LDR
	IsFrontFace bool
	Roughness   scalar.S
	Metallic    scalar.S
}

// EnhanceNormal corrects surface-normal orientation: a normal derived
// from a polynomial gradient does not always point the way front/back
// orientation expects, so it is flipped when it disagrees. Keep if
// (⟨d, n_face⟩ < 0) == is_front; else negate.
func EnhanceNormal(rayDir vecmath.Direction, normal vecmath.Direction, isFront bool) vecmath.Direction {
	facingRay := rayDir.Dot(normal) < 0
	if facingRay == isFront {
		return normal
	}
	return normal.Neg()
}
