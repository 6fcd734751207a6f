// Package scene implements the scene-graph container, camera, and
// light model: the read-only structure workers borrow during the
// parallel render phase.
package scene

import (
	"github.com/seui-engine/raytracing-csg-renderer/internal/geom"
	"github.com/seui-engine/raytracing-csg-renderer/internal/scalar"
	"github.com/seui-engine/raytracing-csg-renderer/internal/vecmath"
)

// FOVMode selects how Camera derives its vertical/horizontal field of
// view from a single FOV angle.
type FOVMode int

const (
	FOVX FOVMode = iota
	FOVY
	FOVCover
	FOVContain
)

var zUp = vecmath.NewDirection(0, 0, 1)

// Camera is a perspective camera.
type Camera struct {
	Position vecmath.Position
	forward  vecmath.Direction
	right    vecmath.Direction
	up       vecmath.Direction
	tanX     scalar.S
	tanY     scalar.S
}

// NewCamera builds a Camera. fovDegrees is the FOV angle in degrees;
// modeAspect is the aspect used by Cover/Contain (ignored otherwise);
// screenAspect is the render target's width/height.
func NewCamera(position vecmath.Position, forward vecmath.Direction, fovDegrees scalar.S, mode FOVMode, modeAspect, screenAspect scalar.S) Camera {
	right := forward.Cross(zUp)
	up := right.Cross(forward)

	fovRad := fovDegrees * scalar.Pi() / 180
	base := scalar.Tan(fovRad / 2)

	var tanX, tanY scalar.S
	switch mode {
	case FOVY:
		tanY = base
		tanX = base * screenAspect
	case FOVCover:
		tanX0 := base
		tanY0 := base / modeAspect
		s := scalar.Max(screenAspect/modeAspect, 1)
		tanX, tanY = tanX0*s, tanY0*s
	case FOVContain:
		tanX0 := base
		tanY0 := base / modeAspect
		s := scalar.Min(screenAspect/modeAspect, 1)
		tanX, tanY = tanX0*s, tanY0*s
	default: // FOVX
		tanX = base
		tanY = base / screenAspect
	}

	return Camera{Position: position, forward: forward, right: right, up: up, tanX: tanX, tanY: tanY}
}

// Ray maps image-space NDC (x,y) in [0,1]^2 to a world-space ray.
func (c Camera) Ray(x, y scalar.S) geom.Ray {
	rightMove := c.right.Scale((2*x - 1) * c.tanX)
	upMove := c.up.Scale((1 - 2*y) * c.tanY)
	forwardMove := c.forward.Scale(1)
	dir := forwardMove.Add(rightMove).Add(upMove).ToDirection()
	return geom.Ray{Origin: c.Position, Direction: dir}
}
