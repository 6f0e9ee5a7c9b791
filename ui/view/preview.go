package view

import (
	"fmt"
	"image"

	"github.com/soocke/ninepatch-go/ui/images"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// Preview displays the rendered image in a label. The previous Tk photo is deleted
// whenever a new one is shown so redraws do not accumulate image data.
// A frame that fails to encode is skipped and the current photo stays on screen.
type Preview interface {
	Show(img image.Image) error
	Reset() error
}

type preview struct {
	label *LabelWidget
	photo *Img
	maxW  int
	maxH  int
}

const (
	placeholderW = 500
	placeholderH = 500
)

// NewPreview creates the preview label at row spanning all columns. Images larger than
// maxW x maxH are downscaled for display; 0 disables the limit.
func NewPreview(row, maxW, maxH int) Preview {
	var label *LabelWidget
	var photo *Img
	if data, err := placeholderPNG(); err == nil {
		photo = NewPhoto(Data(data))
		label = Label(Image(photo), Borderwidth(1), Relief("sunken"))
	} else {
		label = Label(Width(placeholderW/8), Height(placeholderH/16), Borderwidth(1), Relief("sunken"))
	}
	Grid(label, Row(row), Column(0), Columnspan(4), Padx("0.4m"), Pady("0.4m"))
	return &preview{label: label, photo: photo, maxW: maxW, maxH: maxH}
}

func (v *preview) Show(img image.Image) error {
	if v.label == nil || img == nil {
		return nil
	}
	data, err := images.EncodePNG(images.ScaleToFit(img, v.maxW, v.maxH))
	if err != nil {
		return fmt.Errorf("encode preview: %w", err)
	}
	v.replace(data)
	return nil
}

func (v *preview) Reset() error {
	if v.label == nil {
		return nil
	}
	data, err := placeholderPNG()
	if err != nil {
		return fmt.Errorf("encode placeholder: %w", err)
	}
	v.replace(data)
	return nil
}

func (v *preview) replace(pngBytes []byte) {
	if v.photo != nil {
		v.photo.Delete()
	}
	v.photo = NewPhoto(Data(pngBytes))
	v.label.Configure(Image(v.photo))
}

// placeholderPNG is the grey surface shown before any image is loaded.
func placeholderPNG() ([]byte, error) {
	img := image.NewGray(image.Rect(0, 0, placeholderW, placeholderH))
	for i := range img.Pix {
		img.Pix[i] = 0x80
	}
	return images.EncodePNG(img)
}
