// Package texture implements the Image/ImageCache abstraction and UV
// sampler. The renderer depends only on the Image interface;
// format-specific decoding lives behind ImageLoader implementations in
// loaders.go.
package texture

import (
	"math"

	"github.com/seui-engine/raytracing-csg-renderer/internal/color"
	"github.com/seui-engine/raytracing-csg-renderer/internal/scalar"
	"github.com/seui-engine/raytracing-csg-renderer/internal/vecmath"
)

// Image is the injected texture provider: width, height, and a
// per-texel fetch returning linear [0,1]^3 color.
type Image interface {
	Width() int
	Height() int
	Get(x, y int) (r, g, b scalar.S)
}

// Mode selects the sampling filter.
type Mode int

const (
	Nearest Mode = iota
	Bilinear
)

// Sampler binds an Image to a sampling Mode.
type Sampler struct {
	Image Image
	Mode  Mode
}

// DirectionToUV computes the canonical equirectangular UV mapping from
// a unit direction.
func DirectionToUV(dir vecmath.Direction) (u, v scalar.S) {
	theta := scalar.Atan2(dir.X(), dir.Y())
	phi := scalar.Acos(scalar.Clamp(dir.Z(), -1, 1))
	u = (theta + scalar.Pi()) / (2 * scalar.Pi())
	v = phi / scalar.Pi()
	return u, v
}

// Sample fetches the color at UV coordinates using the sampler's mode.
func (s Sampler) Sample(u, v scalar.S) color.LDR {
	switch s.Mode {
	case Bilinear:
		return s.sampleBilinear(u, v)
	default:
		return s.sampleNearest(u, v)
	}
}

func wrap(i, n int) int {
	if n <= 0 {
		return 0
	}
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

func (s Sampler) sampleNearest(u, v scalar.S) color.LDR {
	w, h := s.Image.Width(), s.Image.Height()
	x := wrap(int(math.Round(float64(u)*float64(w))), w)
	y := wrap(int(math.Round(float64(v)*float64(h))), h)
	r, g, b := s.Image.Get(x, y)
	return color.NewLDR(r, g, b)
}

func (s Sampler) sampleBilinear(u, v scalar.S) color.LDR {
	w, h := s.Image.Width(), s.Image.Height()
	fx := float64(u) * float64(w)
	fy := float64(v) * float64(h)
	x0 := int(math.Floor(fx))
	y0 := int(math.Floor(fy))
	dx := scalar.S(fx - math.Floor(fx))
	dy := scalar.S(fy - math.Floor(fy))

	x0w, x1w := wrap(x0, w), wrap(x0+1, w)
	y0w, y1w := wrap(y0, h), wrap(y0+1, h)

	r00, g00, b00 := s.Image.Get(x0w, y0w)
	r10, g10, b10 := s.Image.Get(x1w, y0w)
	r01, g01, b01 := s.Image.Get(x0w, y1w)
	r11, g11, b11 := s.Image.Get(x1w, y1w)

	lerp := func(a, b, t scalar.S) scalar.S { return a + (b-a)*t }
	top := func(a00, a10 scalar.S) scalar.S { return lerp(a00, a10, dx) }
	bot := func(a01, a11 scalar.S) scalar.S { return lerp(a01, a11, dx) }
	blend := func(a00, a10, a01, a11 scalar.S) scalar.S {
		return lerp(top(a00, a10), bot(a01, a11), dy)
	}

	return color.NewLDR(
		blend(r00, r10, r01, r11),
		blend(g00, g10, g01, g11),
		blend(b00, b10, b01, b11),
	)
}
