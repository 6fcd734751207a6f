package shading

import (
	"testing"

	"github.com/seui-engine/raytracing-csg-renderer/internal/color"
	"github.com/seui-engine/raytracing-csg-renderer/internal/vecmath"
)

func unitDir(x, y, z float64) vecmath.Direction { return vecmath.NewDirection(x, y, z) }

func TestToneMapCyanSkyMatchesSpecExample(t *testing.T) {
	// 0.4 -> 1-e^-0.4 = 0.329680 -> ^(1/2.2) = 0.603881 -> quantized 154.
	got := ToneMap(color.HDR{R: 0.4, G: 0.6, B: 0.9}, DefaultExposure, DefaultGamma)
	quantized := int(got.R*255 + 0.5)
	if quantized != 154 {
		t.Fatalf("expected red channel to quantize to 154, got %d (value %v)", quantized, got.R)
	}
}

func TestToneMapIsMonotoneNonDecreasing(t *testing.T) {
	prev := ToneMap(color.HDR{R: 0}, DefaultExposure, DefaultGamma).R
	for i := 1; i <= 50; i++ {
		v := scalarOf(i)
		cur := ToneMap(color.HDR{R: v}, DefaultExposure, DefaultGamma).R
		if cur < prev {
			t.Fatalf("tone map not monotone at step %d: prev=%v cur=%v", i, prev, cur)
		}
		prev = cur
	}
}

func scalarOf(i int) float64 { return float64(i) * 0.2 }

func TestBRDFZeroWhenLightBehindSurface(t *testing.T) {
	view := unitDir(0, 0, 1)
	light := unitDir(0, 0, -1) // light coming from behind the surface relative to normal
	normal := unitDir(0, 0, 1)
	out := BRDF(view, light, normal, 0.5, 0, color.NewLDR(1, 1, 1), color.HDR{R: 1, G: 1, B: 1})
	if out.R != 0 || out.G != 0 || out.B != 0 {
		t.Fatalf("expected zero contribution for N.L<=0, got %+v", out)
	}
}
