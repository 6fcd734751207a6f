package render

import (
	"image"
	"image/png"
	"os"

	"github.com/seui-engine/raytracing-csg-renderer/internal/rterr"
)

// SavePNG encodes img as an 8-bit RGB PNG at path. Encoding uses the
// standard library: none of the image libraries already in play here
// (nativewebp, tga, x/image/bmp, x/image/tiff) cover PNG encoding, only
// decoding.
func SavePNG(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return rterr.NewIOError(path, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return rterr.NewIOError(path, err)
	}
	return nil
}
