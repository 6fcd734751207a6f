package scene

import (
	"github.com/seui-engine/raytracing-csg-renderer/internal/color"
	"github.com/seui-engine/raytracing-csg-renderer/internal/scalar"
	"github.com/seui-engine/raytracing-csg-renderer/internal/vecmath"
)

// Light is the closed set of light kinds: given the surface point
// being shaded, it returns the incoming radiance color,
// the unit direction from the surface towards the light, and the
// distance to the light (+Inf for directional).
type Light interface {
	Sample(p vecmath.Position) (c color.HDR, dir vecmath.Direction, dist scalar.S)
}

// nearZeroLightDistance is the threshold below which a point light's
// inverse-square falloff is skipped to avoid a near-singular result.
const nearZeroLightDistance = 1e-3

// PointLight radiates uniformly from a world-space position, falling
// off as 1/dist^2 beyond nearZeroLightDistance.
type PointLight struct {
	Position vecmath.Position
	Color    color.HDR
}

func (l PointLight) Sample(p vecmath.Position) (color.HDR, vecmath.Direction, scalar.S) {
	toLight := l.Position.Sub(p)
	dist, dir := toLight.LengthAndDirection()
	if dist < nearZeroLightDistance {
		return l.Color, dir, dist
	}
	return l.Color.Scale(1 / (dist * dist)), dir, dist
}

// DirectionalLight radiates uniformly from an infinitely distant
// source; shadow occlusion from any hit in its direction shadows the
// surface.
type DirectionalLight struct {
	Direction vecmath.Direction // direction the light travels
	Color     color.HDR
}

func (l DirectionalLight) Sample(p vecmath.Position) (color.HDR, vecmath.Direction, scalar.S) {
	return l.Color, l.Direction.Neg(), scalar.Inf()
}
