package sceneio

import (
	"fmt"

	rtcolor "github.com/seui-engine/raytracing-csg-renderer/internal/color"
	"github.com/seui-engine/raytracing-csg-renderer/internal/primitive"
	"github.com/seui-engine/raytracing-csg-renderer/internal/scalar"
	"github.com/seui-engine/raytracing-csg-renderer/internal/scene"
	"github.com/seui-engine/raytracing-csg-renderer/internal/texture"
	"github.com/seui-engine/raytracing-csg-renderer/internal/vecmath"
)

func vecPosition(v Vec3) vecmath.Position { return vecmath.NewPosition(v.X, v.Y, v.Z) }
func vecDirection(v Vec3) vecmath.Direction { return vecmath.NewDirection(v.X, v.Y, v.Z) }
func vecSize(v Vec3) vecmath.Size         { return vecmath.NewSize(v.X, v.Y, v.Z) }
func vecColor(v Vec3) rtcolor.LDR         { return rtcolor.NewLDR(v.X, v.Y, v.Z) }
func vecHDR(v Vec3) rtcolor.HDR           { return rtcolor.NewHDR(v.X, v.Y, v.Z) }

// Build translates a decoded Document into a scene.Scene, given the
// render target's width/height (needed to resolve the camera's aspect
// ratio) and a texture cache for sphere albedo images.
func Build(doc Document, width, height int, textures *texture.Cache) (scene.Scene, error) {
	aspect := scalar.S(width) / scalar.S(height)

	cam, err := buildCamera(doc.Camera, aspect)
	if err != nil {
		return scene.Scene{}, wrapInput("camera", err)
	}

	objects := make([]primitive.Primitive, 0, len(doc.Objects))
	for i, nodeDoc := range doc.Objects {
		p, err := buildNode(nodeDoc, textures)
		if err != nil {
			return scene.Scene{}, wrapInput(fmt.Sprintf("objects[%d]", i), err)
		}
		objects = append(objects, p)
	}

	lights := make([]scene.Light, 0, len(doc.Lights))
	for i, lightDoc := range doc.Lights {
		l, err := buildLight(lightDoc)
		if err != nil {
			return scene.Scene{}, wrapInput(fmt.Sprintf("lights[%d]", i), err)
		}
		lights = append(lights, l)
	}

	return scene.Scene{
		Camera:  cam,
		Objects: objects,
		Lights:  lights,
		Sky:     scene.ConstantSky(vecHDR(doc.SkyColor)),
		Ambient: vecHDR(doc.AmbientLight),
	}, nil
}

func buildCamera(d CameraDoc, aspect scalar.S) (scene.Camera, error) {
	var mode scene.FOVMode
	switch d.Mode {
	case "", "x":
		mode = scene.FOVX
	case "y":
		mode = scene.FOVY
	case "cover":
		mode = scene.FOVCover
	case "contain":
		mode = scene.FOVContain
	default:
		return scene.Camera{}, fmt.Errorf("camera: unknown fov mode %q", d.Mode)
	}
	modeAspect := d.ModeAspect
	if modeAspect == 0 {
		modeAspect = aspect
	}
	return scene.NewCamera(vecPosition(d.Position), vecDirection(d.Forward), d.Fov, mode, modeAspect, aspect), nil
}

func buildMaterial(n NodeDoc) primitive.Material {
	return primitive.NewMaterial(vecColor(n.Albedo), n.Roughness, n.Metallic)
}

func buildTerms(docs []TermDoc) []primitive.Term {
	terms := make([]primitive.Term, len(docs))
	for i, t := range docs {
		terms[i] = primitive.Term{I: t.I, J: t.J, K: t.K, Coeff: t.Coeff}
	}
	return terms
}

func buildNode(n NodeDoc, textures *texture.Cache) (primitive.Primitive, error) {
	switch n.Type {
	case "sphere":
		s := primitive.Sphere{Center: vecPosition(n.Center), Radius: n.Radius, Material: buildMaterial(n)}
		if n.Texture != "" {
			if textures == nil {
				return nil, fmt.Errorf("sphere: texture %q requested but no texture cache configured", n.Texture)
			}
			img, err := textures.Get(n.Texture)
			if err != nil {
				return nil, err
			}
			s.Texture = &texture.Sampler{Image: img, Mode: texture.Bilinear}
		}
		return s, nil
	case "plane":
		return primitive.Plane{Point: vecPosition(n.Point), Normal: vecDirection(n.Normal), Material: buildMaterial(n)}, nil
	case "cube":
		return primitive.Cube{Center: vecPosition(n.Center), HalfSize: vecSize(n.HalfSize), Material: buildMaterial(n)}, nil
	case "quadric", "quadratic":
		return primitive.NewQuadric(buildTerms(n.Terms), vecPosition(n.Interior), buildMaterial(n)), nil
	case "cubic":
		return primitive.NewCubic(buildTerms(n.Terms), vecPosition(n.Interior), buildMaterial(n)), nil
	case "quartic":
		return primitive.NewQuartic(buildTerms(n.Terms), vecPosition(n.Interior), buildMaterial(n)), nil
	case "union", "intersection", "difference":
		if n.Left == nil || n.Right == nil {
			return nil, fmt.Errorf("%s: requires left and right operands", n.Type)
		}
		left, err := buildNode(*n.Left, textures)
		if err != nil {
			return nil, wrapInput("left", err)
		}
		right, err := buildNode(*n.Right, textures)
		if err != nil {
			return nil, wrapInput("right", err)
		}
		switch n.Type {
		case "union":
			return primitive.Union(left, right), nil
		case "intersection":
			return primitive.Intersection(left, right), nil
		default:
			return primitive.Difference(left, right), nil
		}
	default:
		return nil, fmt.Errorf("unknown object type %q", n.Type)
	}
}

func buildLight(d LightDoc) (scene.Light, error) {
	switch d.Type {
	case "point":
		return scene.PointLight{Position: vecPosition(d.Position), Color: vecHDR(d.Color)}, nil
	case "directional":
		return scene.DirectionalLight{Direction: vecDirection(d.Direction), Color: vecHDR(d.Color)}, nil
	default:
		return nil, fmt.Errorf("unknown light type %q", d.Type)
	}
}
