// Package render implements the parallel row-major render driver and
// PNG output, claiming row work from a github.com/alitto/pond/v2 pool
// and joining via sync.WaitGroup.
package render

import (
	"image"
	"image/color"
	"runtime"
	"sync"

	"github.com/alitto/pond/v2"

	rtcolor "github.com/seui-engine/raytracing-csg-renderer/internal/color"
	"github.com/seui-engine/raytracing-csg-renderer/internal/geom"
	"github.com/seui-engine/raytracing-csg-renderer/internal/scalar"
	"github.com/seui-engine/raytracing-csg-renderer/internal/scene"
	"github.com/seui-engine/raytracing-csg-renderer/internal/shading"
)

// Mode selects the render driver's output channel: shaded, or one of
// the normal/depth debug flags.
type Mode int

const (
	ModeShaded Mode = iota
	ModeNormal
	ModeDepth
)

// Options configures a render pass.
type Options struct {
	Width          int
	Height         int
	SuperSampling  int // samples per axis per pixel; 0 or 1 means no supersampling
	Workers        int // worker-pool size; 0 or less uses runtime.NumCPU()
	Mode           Mode
	Exposure       scalar.S
	Gamma          scalar.S
}

// Render evaluates sc across a Width x Height grid and returns a
// ready-to-encode RGBA image. Rows are claimed from a shared pond
// worker pool and written independently into pre-sized row slices;
// there is no cross-row sharing or locking on the hot path.
func Render(sc scene.Scene, opts Options) *image.RGBA {
	w, h := opts.Width, opts.Height
	s := opts.SuperSampling
	if s < 1 {
		s = 1
	}
	exposure := opts.Exposure
	if exposure == 0 {
		exposure = shading.DefaultExposure
	}
	gamma := opts.Gamma
	if gamma == 0 {
		gamma = shading.DefaultGamma
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	pool := pond.NewPool(workers)
	defer pool.StopAndWait()

	var wg sync.WaitGroup
	for row := 0; row < h; row++ {
		row := row
		wg.Add(1)
		pool.Submit(func() {
			defer wg.Done()
			renderRow(sc, img, row, w, h, s, opts.Mode, exposure, gamma)
		})
	}
	wg.Wait()

	return img
}

func renderRow(sc scene.Scene, img *image.RGBA, row, w, h, s int, mode Mode, exposure, gamma scalar.S) {
	samples := s * s
	for col := 0; col < w; col++ {
		var accum rtcolor.HDR
		for sy := 0; sy < s; sy++ {
			for sx := 0; sx < s; sx++ {
				x := (scalar.S(col) + scalar.S(sx)/scalar.S(s)) / scalar.S(maxInt(w-1, 1))
				y := (scalar.S(row) + scalar.S(sy)/scalar.S(s)) / scalar.S(maxInt(h-1, 1))
				ray := sc.Camera.Ray(x, y)
				accum = accum.Add(samplePixel(sc, ray, mode))
			}
		}
		averaged := accum.Div(scalar.S(samples))
		ldr := shading.ToneMap(averaged, exposure, gamma)
		img.Set(col, row, color.NRGBA{
			R: quantize(ldr.R),
			G: quantize(ldr.G),
			B: quantize(ldr.B),
			A: 255,
		})
	}
}

func quantize(v scalar.S) uint8 {
	q := int(v*255 + 0.5)
	if q < 0 {
		q = 0
	}
	if q > 255 {
		q = 255
	}
	return uint8(q)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// samplePixel shades a single primary ray. In ModeNormal/ModeDepth it
// bypasses shading entirely and returns the requested debug channel
// instead.
func samplePixel(sc scene.Scene, ray geom.Ray, mode Mode) rtcolor.HDR {
	hit, ok := sc.ClosestHit(ray)
	if !ok {
		if mode != ModeShaded || sc.Sky == nil {
			return rtcolor.Black
		}
		return sc.Sky(ray.Direction)
	}

	switch mode {
	case ModeNormal:
		n := hit.Normal
		return rtcolor.NewHDR((n.X()+1)/2, (n.Y()+1)/2, (n.Z()+1)/2)
	case ModeDepth:
		d := 1 / scalar.Sqrt(scalar.Max(hit.Distance, scalar.Epsilon))
		return rtcolor.NewHDR(d, d, d)
	}

	return shadeHit(sc, ray, hit)
}

func shadeHit(sc scene.Scene, ray geom.Ray, hit geom.Hit) rtcolor.HDR {
	out := sc.Ambient.MulLDR(hit.Albedo)

	view := ray.Direction.Neg()
	surface := ray.At(hit.Distance)
	biased := surface.Add(hit.Normal.Scale(1e-3))

	for _, light := range sc.Lights {
		lColor, lDir, lDist := light.Sample(surface)

		shadowRay := geom.Ray{Origin: biased, Direction: lDir}
		if sc.AnyHitCloserThan(shadowRay, lDist) {
			continue
		}

		out = out.Add(shading.BRDF(view, lDir, hit.Normal, hit.Roughness, hit.Metallic, hit.Albedo, lColor))
	}

	return out
}
