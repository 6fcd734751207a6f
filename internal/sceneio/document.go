// Package sceneio implements the declarative scene document: a
// format-agnostic wire representation decoded from json/yaml/toml
// (plus the json-superset aliases jsonc/json5/hjson), then translated
// into an internal/scene.Scene.
package sceneio

import (
	"encoding/json"
	"fmt"

	"github.com/seui-engine/raytracing-csg-renderer/internal/rterr"
	"github.com/seui-engine/raytracing-csg-renderer/internal/scalar"
)

// Vec3 accepts either {x,y,z}/{r,g,b} or [x,y,z]/[r,g,b] on the wire.
type Vec3 struct {
	X, Y, Z scalar.S
}

type vec3Object struct {
	X *scalar.S `json:"x" yaml:"x" toml:"x"`
	Y *scalar.S `json:"y" yaml:"y" toml:"y"`
	Z *scalar.S `json:"z" yaml:"z" toml:"z"`
	R *scalar.S `json:"r" yaml:"r" toml:"r"`
	G *scalar.S `json:"g" yaml:"g" toml:"g"`
	B *scalar.S `json:"b" yaml:"b" toml:"b"`
}

// UnmarshalJSON accepts both the object and array wire forms.
func (v *Vec3) UnmarshalJSON(data []byte) error {
	var arr [3]scalar.S
	if err := json.Unmarshal(data, &arr); err == nil {
		v.X, v.Y, v.Z = arr[0], arr[1], arr[2]
		return nil
	}
	var obj vec3Object
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("vec3: expected [x,y,z]/[r,g,b] array or {x,y,z}/{r,g,b} object: %w", err)
	}
	v.X, v.Y, v.Z = obj.components()
	return nil
}

// UnmarshalYAML mirrors UnmarshalJSON for yaml.v3's decode-into-any
// callback style.
func (v *Vec3) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var arr [3]scalar.S
	if err := unmarshal(&arr); err == nil {
		v.X, v.Y, v.Z = arr[0], arr[1], arr[2]
		return nil
	}
	var obj vec3Object
	if err := unmarshal(&obj); err != nil {
		return fmt.Errorf("vec3: expected [x,y,z]/[r,g,b] array or {x,y,z}/{r,g,b} object: %w", err)
	}
	v.X, v.Y, v.Z = obj.components()
	return nil
}

func (o vec3Object) components() (x, y, z scalar.S) {
	if o.X != nil || o.Y != nil || o.Z != nil {
		return deref(o.X), deref(o.Y), deref(o.Z)
	}
	return deref(o.R), deref(o.G), deref(o.B)
}

func deref(p *scalar.S) scalar.S {
	if p == nil {
		return 0
	}
	return *p
}

// UnmarshalTOML implements github.com/BurntSushi/toml's Unmarshaler,
// since toml.Decode hands struct fields a generic Go value rather than
// raw bytes (unlike encoding/json's []byte callback).
func (v *Vec3) UnmarshalTOML(data interface{}) error {
	switch val := data.(type) {
	case []interface{}:
		if len(val) != 3 {
			return fmt.Errorf("vec3: expected 3 elements, got %d", len(val))
		}
		v.X, v.Y, v.Z = toScalar(val[0]), toScalar(val[1]), toScalar(val[2])
		return nil
	case map[string]interface{}:
		if x, ok := val["x"]; ok {
			v.X, v.Y, v.Z = toScalar(x), toScalar(val["y"]), toScalar(val["z"])
			return nil
		}
		if r, ok := val["r"]; ok {
			v.X, v.Y, v.Z = toScalar(r), toScalar(val["g"]), toScalar(val["b"])
			return nil
		}
		return fmt.Errorf("vec3: object form requires x/y/z or r/g/b keys")
	default:
		return fmt.Errorf("vec3: unsupported TOML value %T", data)
	}
}

func toScalar(v interface{}) scalar.S {
	switch n := v.(type) {
	case int64:
		return scalar.S(n)
	case float64:
		return scalar.S(n)
	default:
		return 0
	}
}

// Document is the top-level scene wire format.
type Document struct {
	Camera       CameraDoc   `json:"camera" yaml:"camera" toml:"camera"`
	Objects      []NodeDoc   `json:"objects" yaml:"objects" toml:"objects"`
	Lights       []LightDoc  `json:"lights" yaml:"lights" toml:"lights"`
	SkyColor     Vec3        `json:"skyColor" yaml:"skyColor" toml:"skyColor"`
	AmbientLight Vec3        `json:"ambientLight" yaml:"ambientLight" toml:"ambientLight"`
}

// CameraDoc is the wire form of a perspective camera.
type CameraDoc struct {
	Type       string  `json:"type" yaml:"type" toml:"type"`
	Position   Vec3    `json:"position" yaml:"position" toml:"position"`
	Forward    Vec3    `json:"forward" yaml:"forward" toml:"forward"`
	Fov        scalar.S `json:"fov" yaml:"fov" toml:"fov"`
	Mode       string  `json:"mode" yaml:"mode" toml:"mode"`
	ModeAspect scalar.S `json:"modeAspect" yaml:"modeAspect" toml:"modeAspect"`
}

// NodeDoc is the wire form of an object: primitives and CSG combinators
// share one shape, tagged by Type.
type NodeDoc struct {
	Type string `json:"type" yaml:"type" toml:"type"`

	// Primitive fields.
	Center    Vec3     `json:"center" yaml:"center" toml:"center"`
	Point     Vec3     `json:"point" yaml:"point" toml:"point"`
	Normal    Vec3     `json:"normal" yaml:"normal" toml:"normal"`
	HalfSize  Vec3     `json:"halfSize" yaml:"halfSize" toml:"halfSize"`
	Radius    scalar.S `json:"radius" yaml:"radius" toml:"radius"`
	Albedo    Vec3     `json:"albedo" yaml:"albedo" toml:"albedo"`
	Roughness scalar.S `json:"roughness" yaml:"roughness" toml:"roughness"`
	Metallic  scalar.S `json:"metallic" yaml:"metallic" toml:"metallic"`
	Texture   string   `json:"texture" yaml:"texture" toml:"texture"`

	// Quadric/Cubic/Quartic fields.
	Terms    []TermDoc `json:"terms" yaml:"terms" toml:"terms"`
	Interior Vec3      `json:"interior" yaml:"interior" toml:"interior"`

	// CSG combinator fields.
	Left  *NodeDoc `json:"left" yaml:"left" toml:"left"`
	Right *NodeDoc `json:"right" yaml:"right" toml:"right"`
}

// TermDoc is one monomial coeff*x^i*y^j*z^k of an implicit surface.
type TermDoc struct {
	I     int      `json:"i" yaml:"i" toml:"i"`
	J     int      `json:"j" yaml:"j" toml:"j"`
	K     int      `json:"k" yaml:"k" toml:"k"`
	Coeff scalar.S `json:"coeff" yaml:"coeff" toml:"coeff"`
}

// LightDoc is the wire form of a point or directional light.
type LightDoc struct {
	Type      string `json:"type" yaml:"type" toml:"type"`
	Position  Vec3   `json:"position" yaml:"position" toml:"position"`
	Direction Vec3   `json:"direction" yaml:"direction" toml:"direction"`
	Color     Vec3   `json:"color" yaml:"color" toml:"color"`
}

// wrapInput tags a decode/validation failure with its scene-document
// location as an InputError.
func wrapInput(location string, err error) error {
	if err == nil {
		return nil
	}
	return rterr.NewInputError(location, err)
}
