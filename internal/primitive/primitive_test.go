package primitive

import (
	"testing"

	"github.com/seui-engine/raytracing-csg-renderer/internal/color"
	"github.com/seui-engine/raytracing-csg-renderer/internal/geom"
	"github.com/seui-engine/raytracing-csg-renderer/internal/scalar"
	"github.com/seui-engine/raytracing-csg-renderer/internal/vecmath"
)

func testMaterial() Material {
	return NewMaterial(color.NewLDR(0.8, 0.8, 0.8), 0.5, 0)
}

// TestSphereAgreesWithAnalyticGeometry checks the front hit distance
// against the closed-form sphere formula: <c-o,d> - sqrt(r^2-h^2).
func TestSphereAgreesWithAnalyticGeometry(t *testing.T) {
	s := Sphere{Center: vecmath.NewPosition(0, 10, 2), Radius: 3, Material: testMaterial()}
	ray := geom.Ray{Origin: vecmath.NewPosition(0, 0, 0), Direction: vecmath.NewDirection(0, 1, 0)}

	got := s.Span(ray)
	if len(got) != 2 {
		t.Fatalf("expected 2 hits, got %d", len(got))
	}

	toCenter := s.Center.Sub(ray.Origin)
	proj := ray.Direction.DotMove(toCenter)
	h2 := toCenter.Dot(toCenter) - proj*proj
	want := proj - scalar.Sqrt(s.Radius*s.Radius-h2)

	if diff := got[0].Distance - want; diff > 1e-4 || diff < -1e-4 {
		t.Fatalf("front hit distance = %v, want %v", got[0].Distance, want)
	}
}

// TestSphereTangentRayAcceptsOrRejectsConsistently checks the boundary
// behavior for h=r: never an odd number of hits.
func TestSphereTangentRayAcceptsOrRejectsConsistently(t *testing.T) {
	s := Sphere{Center: vecmath.NewPosition(0, 10, 1), Radius: 1, Material: testMaterial()}
	ray := geom.Ray{Origin: vecmath.NewPosition(0, 0, 0), Direction: vecmath.NewDirection(0, 1, 0)}
	got := s.Span(ray)
	if len(got)%2 != 0 {
		t.Fatalf("expected an even number of hits for a tangent ray, got %d", len(got))
	}
}

func TestSphereNormalOrientationMatchesFrontFace(t *testing.T) {
	s := Sphere{Center: vecmath.NewPosition(0, 5, 0), Radius: 1, Material: testMaterial()}
	ray := geom.Ray{Origin: vecmath.NewPosition(0, 0, 0), Direction: vecmath.NewDirection(0, 1, 0)}
	got := s.Span(ray)
	for _, h := range got {
		facing := h.Normal.Dot(ray.Direction) <= 0
		if facing != h.IsFrontFace {
			t.Fatalf("hit %+v: <normal,dir><=0 (%v) should equal IsFrontFace (%v)", h, facing, h.IsFrontFace)
		}
	}
}

func TestPlaneParallelRayMisses(t *testing.T) {
	p := Plane{Point: vecmath.NewPosition(0, 5, 0), Normal: vecmath.NewDirection(0, 1, 0), Material: testMaterial()}
	ray := geom.Ray{Origin: vecmath.NewPosition(0, 0, 0), Direction: vecmath.NewDirection(1, 0, 0)}
	if got := p.Span(ray); got != nil {
		t.Fatalf("expected nil span for a parallel ray, got %+v", got)
	}
}

func TestPlaneFrontHitFacesRay(t *testing.T) {
	p := Plane{Point: vecmath.NewPosition(0, 5, 0), Normal: vecmath.NewDirection(0, -1, 0), Material: testMaterial()}
	ray := geom.Ray{Origin: vecmath.NewPosition(0, 0, 0), Direction: vecmath.NewDirection(0, 1, 0)}
	got := p.Span(ray)
	if len(got) != 2 || got[0].Distance != 5 {
		t.Fatalf("expected front hit at distance 5, got %+v", got)
	}
	if !got[0].IsFrontFace {
		t.Fatalf("expected first hit to be front-facing")
	}
}

// TestCubeHitMatchesWorkedExample checks a unit cube hit by a ray along +Y
// against precomputed entry/exit distances and normals.
func TestCubeHitMatchesWorkedExample(t *testing.T) {
	c := Cube{Center: vecmath.NewPosition(0, 0, 0), HalfSize: vecmath.NewSize(1, 1, 1), Material: testMaterial()}
	ray := geom.Ray{Origin: vecmath.NewPosition(0, -10, 0), Direction: vecmath.NewDirection(0, 1, 0)}
	got := c.Span(ray)
	if len(got) != 2 {
		t.Fatalf("expected 2 hits, got %d", len(got))
	}
	if got[0].Distance != 9 || got[1].Distance != 11 {
		t.Fatalf("expected distances 9,11, got %v,%v", got[0].Distance, got[1].Distance)
	}
	if got[0].Normal.Y() != -1 || got[1].Normal.Y() != 1 {
		t.Fatalf("unexpected normals: %+v %+v", got[0].Normal, got[1].Normal)
	}
}

func TestCubeMissReturnsNil(t *testing.T) {
	c := Cube{Center: vecmath.NewPosition(0, 0, 0), HalfSize: vecmath.NewSize(1, 1, 1), Material: testMaterial()}
	ray := geom.Ray{Origin: vecmath.NewPosition(5, -10, 5), Direction: vecmath.NewDirection(0, 1, 0)}
	if got := c.Span(ray); got != nil {
		t.Fatalf("expected a miss, got %+v", got)
	}
}
