package assets

import (
	"bytes"
	_ "embed"
	"fmt"
	"image"
	"image/png"
)

// IconPNG contains the raw PNG bytes of the window icon. The icon is itself a
// nine-patch image, so it doubles as a reference file for the export format.
//
//go:embed icon.9.png
var IconPNG []byte

// IconImage decodes the embedded icon.
func IconImage() (image.Image, error) {
	if len(IconPNG) == 0 {
		return nil, fmt.Errorf("embedded icon.9.png is empty")
	}
	img, err := png.Decode(bytes.NewReader(IconPNG))
	if err != nil {
		return nil, err
	}
	return img, nil
}
