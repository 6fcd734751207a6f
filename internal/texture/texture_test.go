package texture

import (
	"errors"
	"testing"

	"github.com/seui-engine/raytracing-csg-renderer/internal/scalar"
	"github.com/seui-engine/raytracing-csg-renderer/internal/vecmath"
)

// solidImage is a constant-color test double for Image.
type solidImage struct {
	w, h int
	r, g, b scalar.S
}

func (s solidImage) Width() int  { return s.w }
func (s solidImage) Height() int { return s.h }
func (s solidImage) Get(x, y int) (r, g, b scalar.S) { return s.r, s.g, s.b }

func TestSamplerNearestReturnsImageColor(t *testing.T) {
	img := solidImage{w: 4, h: 4, r: 0.2, g: 0.4, b: 0.6}
	s := Sampler{Image: img, Mode: Nearest}
	c := s.Sample(0.5, 0.5)
	if c.R != 0.2 || c.G != 0.4 || c.B != 0.6 {
		t.Fatalf("unexpected sample: %+v", c)
	}
}

func TestSamplerBilinearOnConstantImageMatchesSource(t *testing.T) {
	img := solidImage{w: 8, h: 8, r: 0.1, g: 0.2, b: 0.3}
	s := Sampler{Image: img, Mode: Bilinear}
	c := s.Sample(0.13, 0.77)
	if c.R != 0.1 || c.G != 0.2 || c.B != 0.3 {
		t.Fatalf("bilinear blend of a constant image should equal the constant, got %+v", c)
	}
}

func TestWrapHandlesNegativeAndOverflow(t *testing.T) {
	if got := wrap(-1, 4); got != 3 {
		t.Fatalf("wrap(-1,4) = %d, want 3", got)
	}
	if got := wrap(4, 4); got != 0 {
		t.Fatalf("wrap(4,4) = %d, want 0", got)
	}
	if got := wrap(0, 4); got != 0 {
		t.Fatalf("wrap(0,4) = %d, want 0", got)
	}
}

func TestDirectionToUVRoundTripsForwardDirection(t *testing.T) {
	u, v := DirectionToUV(vecmath.NewDirection(0, 1, 0))
	if u < 0 || u > 1 || v < 0 || v > 1 {
		t.Fatalf("expected u,v in [0,1], got %v,%v", u, v)
	}
}

type failingLoader struct{ err error }

func (f failingLoader) Load(path string) (Image, error) { return nil, f.err }

func TestCacheGetWrapsLoaderError(t *testing.T) {
	wantErr := errors.New("boom")
	c := NewCache(failingLoader{err: wantErr})
	if _, err := c.Get("missing.png"); err == nil {
		t.Fatal("expected an error from a failing loader")
	}
}

type countingLoader struct {
	calls int
	img   Image
}

func (c *countingLoader) Load(path string) (Image, error) {
	c.calls++
	return c.img, nil
}

func TestCacheGetMemoizesByPath(t *testing.T) {
	loader := &countingLoader{img: solidImage{w: 1, h: 1}}
	c := NewCache(loader)

	if _, err := c.Get("a.png"); err != nil {
		t.Fatalf("first get: %v", err)
	}
	if _, err := c.Get("a.png"); err != nil {
		t.Fatalf("second get: %v", err)
	}
	if loader.calls != 1 {
		t.Fatalf("expected 1 decode call for a repeated path, got %d", loader.calls)
	}

	distinct, refs := c.Stats()
	if distinct != 1 || refs != 2 {
		t.Fatalf("expected 1 distinct image with 2 references, got distinct=%d refs=%d", distinct, refs)
	}
}

func TestCacheGetDistinctPathsDecodeSeparately(t *testing.T) {
	loader := &countingLoader{img: solidImage{w: 1, h: 1}}
	c := NewCache(loader)

	if _, err := c.Get("a.png"); err != nil {
		t.Fatalf("get a: %v", err)
	}
	if _, err := c.Get("b.png"); err != nil {
		t.Fatalf("get b: %v", err)
	}
	if loader.calls != 2 {
		t.Fatalf("expected 2 decode calls for 2 distinct paths, got %d", loader.calls)
	}
}
