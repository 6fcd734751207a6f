package scene

import (
	"github.com/seui-engine/raytracing-csg-renderer/internal/color"
	"github.com/seui-engine/raytracing-csg-renderer/internal/geom"
	"github.com/seui-engine/raytracing-csg-renderer/internal/primitive"
	"github.com/seui-engine/raytracing-csg-renderer/internal/scalar"
	"github.com/seui-engine/raytracing-csg-renderer/internal/vecmath"
)

// SkyFunc computes the background radiance for a primary ray that
// misses every object, as a function of its direction.
type SkyFunc func(dir vecmath.Direction) color.HDR

// ConstantSky returns a SkyFunc that ignores direction entirely, the
// common case of a flat sky color.
func ConstantSky(c color.HDR) SkyFunc {
	return func(vecmath.Direction) color.HDR { return c }
}

// Scene is the read-only structure workers borrow during rendering: a
// camera, the top-level object list, the light list, sky, and ambient
// term.
type Scene struct {
	Camera  Camera
	Objects []primitive.Primitive
	Lights  []Light
	Sky     SkyFunc
	Ambient color.HDR
}

// ClosestHit requests each top-level object's span sequence, takes its
// first (nearest) hit, and keeps the overall minimum. There is no
// acceleration structure.
func (s Scene) ClosestHit(ray geom.Ray) (geom.Hit, bool) {
	var best geom.Hit
	found := false
	for _, obj := range s.Objects {
		span := obj.Span(ray)
		if len(span) == 0 {
			continue
		}
		h := span[0]
		if !found || h.Distance < best.Distance {
			best = h
			found = true
		}
	}
	return best, found
}

// AnyHitCloserThan is the shadow-ray test: an occluder exists whose
// distance is strictly less than maxDist (or any occluder at all when
// maxDist is +Inf).
func (s Scene) AnyHitCloserThan(ray geom.Ray, maxDist scalar.S) bool {
	h, ok := s.ClosestHit(ray)
	if !ok {
		return false
	}
	if scalar.IsInf(maxDist, 1) {
		return true
	}
	return h.Distance < maxDist
}
