package ninepatch

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// SupportedExtensions lists the raster formats offered by the open dialog.
var SupportedExtensions = []string{".png", ".jpg", ".jpeg", ".bmp"}

// Load reads and decodes the image at path. PNG, JPEG, GIF, BMP and TIFF are accepted;
// JPEG EXIF orientation is applied. Any failure wraps ErrDecode.
func Load(path string) (image.Image, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open image %q: %w", ErrDecode, path, err)
	}
	b := img.Bounds()
	if b.Dx() < 1 || b.Dy() < 1 {
		return nil, fmt.Errorf("%w: image %q has no pixels", ErrDecode, path)
	}
	return img, nil
}
