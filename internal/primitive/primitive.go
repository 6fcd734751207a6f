// Package primitive implements the closed set of primitive
// intersectors: Sphere, Plane, Cube, Quadric, Cubic, Quartic, plus the
// CSG node wrappers that compose them. Polymorphism is a closed Go
// interface implemented by a fixed set of structs, not open
// inheritance.
package primitive

import (
	"github.com/seui-engine/raytracing-csg-renderer/internal/color"
	"github.com/seui-engine/raytracing-csg-renderer/internal/geom"
	"github.com/seui-engine/raytracing-csg-renderer/internal/scalar"
)

// Primitive is the single operation every scene solid exposes: given a
// ray, return its span sequence.
type Primitive interface {
	Span(ray geom.Ray) geom.Span
}

// Material carries the per-surface shading inputs of a Hit. Albedo is
// the base reflectance; Sphere may override it per-hit via a texture
// sampler.
type Material struct {
	Albedo    color.LDR
	Roughness scalar.S // clamped to [0,1] at construction
	Metallic  scalar.S // clamped to [0,1] at construction
}

// NewMaterial clamps Roughness/Metallic into [0,1].
func NewMaterial(albedo color.LDR, roughness, metallic scalar.S) Material {
	return Material{
		Albedo:    albedo,
		Roughness: scalar.Clamp(roughness, 0, 1),
		Metallic:  scalar.Clamp(metallic, 0, 1),
	}
}
