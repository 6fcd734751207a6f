package texture

import (
	"fmt"
	"image"
	stdcolor "image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/seui-engine/raytracing-csg-renderer/internal/scalar"
)

// stdImage adapts the standard library's image.Image into texture.Image,
// converting samples to linear [0,1]^3 on fetch.
type stdImage struct {
	img image.Image
	w, h int
	minX, minY int
}

func newStdImage(img image.Image) *stdImage {
	b := img.Bounds()
	return &stdImage{img: img, w: b.Dx(), h: b.Dy(), minX: b.Min.X, minY: b.Min.Y}
}

func (s *stdImage) Width() int  { return s.w }
func (s *stdImage) Height() int { return s.h }

func (s *stdImage) Get(x, y int) (r, g, b scalar.S) {
	c := stdcolor.NRGBAModel.Convert(s.img.At(s.minX+x, s.minY+y)).(stdcolor.NRGBA)
	return scalar.S(c.R) / 255, scalar.S(c.G) / 255, scalar.S(c.B) / 255
}

// FileLoader decodes textures by file extension, dispatching to the
// format-specific decoder and wrapping the result in stdImage, which
// converts each texel to NRGBA when it is fetched.
type FileLoader struct{}

// Load reads and decodes path, selecting a decoder by file extension.
func (FileLoader) Load(path string) (Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		img, err := png.Decode(f)
		if err != nil {
			return nil, fmt.Errorf("decode png %s: %w", path, err)
		}
		return newStdImage(img), nil
	case ".tga":
		img, err := tga.Decode(f)
		if err != nil {
			return nil, fmt.Errorf("decode tga %s: %w", path, err)
		}
		return newStdImage(img), nil
	case ".webp":
		img, err := nativewebp.Decode(f)
		if err != nil {
			return nil, fmt.Errorf("decode webp %s: %w", path, err)
		}
		return newStdImage(img), nil
	case ".bmp":
		img, err := bmp.Decode(f)
		if err != nil {
			return nil, fmt.Errorf("decode bmp %s: %w", path, err)
		}
		return newStdImage(img), nil
	case ".tif", ".tiff":
		img, err := tiff.Decode(f)
		if err != nil {
			return nil, fmt.Errorf("decode tiff %s: %w", path, err)
		}
		return newStdImage(img), nil
	default:
		return nil, fmt.Errorf("unsupported texture format %q", filepath.Ext(path))
	}
}
