package scene

import (
	"testing"

	"github.com/seui-engine/raytracing-csg-renderer/internal/color"
	"github.com/seui-engine/raytracing-csg-renderer/internal/geom"
	"github.com/seui-engine/raytracing-csg-renderer/internal/primitive"
	"github.com/seui-engine/raytracing-csg-renderer/internal/vecmath"
)

func TestClosestHitPicksNearerObject(t *testing.T) {
	m := primitive.NewMaterial(color.NewLDR(1, 0, 0), 0.5, 0)
	near := primitive.Sphere{Center: vecmath.NewPosition(0, 5, 0), Radius: 1, Material: m}
	far := primitive.Sphere{Center: vecmath.NewPosition(0, 10, 0), Radius: 1, Material: m}
	s := Scene{Objects: []primitive.Primitive{far, near}}

	ray := geom.Ray{Origin: vecmath.NewPosition(0, 0, 0), Direction: vecmath.NewDirection(0, 1, 0)}
	hit, ok := s.ClosestHit(ray)
	if !ok {
		t.Fatal("expected a hit")
	}
	if diff := hit.Distance - 4; diff > 1e-6 || diff < -1e-6 {
		t.Fatalf("expected distance 4 (near sphere), got %v", hit.Distance)
	}
}

func TestClosestHitNoObjectsMisses(t *testing.T) {
	s := Scene{}
	ray := geom.Ray{Origin: vecmath.NewPosition(0, 0, 0), Direction: vecmath.NewDirection(0, 1, 0)}
	if _, ok := s.ClosestHit(ray); ok {
		t.Fatal("expected no hit on empty scene")
	}
}

func TestCameraRayCenterPixelMatchesForward(t *testing.T) {
	cam := NewCamera(vecmath.NewPosition(0, -3, 0), vecmath.NewDirection(0, 1, 0), 60, FOVY, 1, 1)
	r := cam.Ray(0.5, 0.5)
	if r.Direction.X() > 1e-9 || r.Direction.X() < -1e-9 {
		t.Fatalf("expected center ray to equal forward, got %+v", r.Direction)
	}
	if diff := r.Direction.Y() - 1; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("expected center ray Y=1, got %v", r.Direction.Y())
	}
}
