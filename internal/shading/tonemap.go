package shading

import (
	"github.com/seui-engine/raytracing-csg-renderer/internal/color"
	"github.com/seui-engine/raytracing-csg-renderer/internal/scalar"
)

// Default exposure/gamma constants.
const (
	DefaultExposure scalar.S = 1.0
	DefaultGamma    scalar.S = 2.2
)

// ToneMap applies an exponential exposure curve followed by gamma
// correction, channel by channel, clamping the result into LDR range.
func ToneMap(c color.HDR, exposure, gamma scalar.S) color.LDR {
	apply := func(v scalar.S) scalar.S {
		exposed := 1 - scalar.Exp(-v*exposure)
		return scalar.Pow(exposed, 1/gamma)
	}
	return color.NewLDR(apply(c.R), apply(c.G), apply(c.B))
}
