// Package noise supplements the texture sampler with a procedural
// Image backend, so a Sphere's albedo can be assigned a procedural
// pattern with no backing file, using go-perlin for the underlying
// noise field.
package noise

import (
	"math"

	perlin "github.com/aquilax/go-perlin"

	"github.com/seui-engine/raytracing-csg-renderer/internal/color"
	"github.com/seui-engine/raytracing-csg-renderer/internal/scalar"
)

// Pattern selects one of the procedural textures below.
type Pattern int

const (
	Marble Pattern = iota
	Wood
	Clouds
)

// Image is a procedural texture.Image backend. Width/Height report a
// nominal resolution so UV->texel math in the sampler behaves the same
// as a file-backed texture; Get evaluates noise directly in UV space
// rather than caching a rasterized buffer.
type Image struct {
	p         *perlin.Perlin
	pattern   Pattern
	frequency scalar.S
	nominalW  int
	nominalH  int
	lowColor  color.LDR
	highColor color.LDR
}

// New builds a procedural Image. The underlying go-perlin generator is
// built with fixed alpha=2, beta=2 and n=3 (its weight, harmonic
// scaling and octave count); seed fixes the permutation table so
// renders stay deterministic across runs.
func New(pattern Pattern, frequency scalar.S, seed int64, low, high color.LDR) *Image {
	return &Image{
		p:         perlin.NewPerlin(2, 2, 3, seed),
		pattern:   pattern,
		frequency: frequency,
		nominalW:  512,
		nominalH:  512,
		lowColor:  low,
		highColor: high,
	}
}

func (img *Image) Width() int  { return img.nominalW }
func (img *Image) Height() int { return img.nominalH }

// Get evaluates the procedural pattern at the texel (x,y), mapped back
// into the noise field's coordinate space.
func (img *Image) Get(x, y int) (r, g, b scalar.S) {
	u := scalar.S(x) / scalar.S(img.nominalW)
	v := scalar.S(y) / scalar.S(img.nominalH)
	t := img.value(u, v)
	mixed := img.lowColor.Mix(img.highColor, t)
	return mixed.R, mixed.G, mixed.B
}

func (img *Image) value(u, v scalar.S) scalar.S {
	fx := float64(u) * float64(img.frequency)
	fy := float64(v) * float64(img.frequency)
	switch img.pattern {
	case Wood:
		dist := math.Sqrt(fx*fx + fy*fy)
		n := img.p.Noise2D(fx*0.3, fy*0.3)
		grain := math.Sin(dist + n*2)
		return scalar.Clamp(scalar.S((grain+1)/2), 0, 1)
	case Clouds:
		n := img.p.Noise2D(fx, fy)
		return scalar.Clamp(scalar.S((n+1)/2), 0, 1)
	default: // Marble
		n := img.p.Noise2D(fx*0.5, fy*0.5)
		marble := math.Sin(fx + n*4)
		return scalar.Clamp(scalar.S((marble+1)/2), 0, 1)
	}
}
