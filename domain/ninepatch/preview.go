package ninepatch

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// PreviewStyle controls how guide lines are drawn over the preview.
type PreviewStyle struct {
	Color        color.Color
	StretchWidth int // top and left guides
	PaddingWidth int // bottom and right guides
}

// DefaultPreviewStyle draws 7px stretch guides and 3px padding guides in red.
func DefaultPreviewStyle() PreviewStyle {
	return PreviewStyle{
		Color:        color.NRGBA{R: 0xff, A: 0xff},
		StretchWidth: 7,
		PaddingWidth: 3,
	}
}

// Preview returns a copy of src with guide lines for the stretch region along the top and
// left edges and for the padding region along the bottom and right edges. src is never
// modified. A nil src yields nil.
func Preview(src image.Image, rs Regions, style PreviewStyle) *image.NRGBA {
	if src == nil {
		return nil
	}
	if style.Color == nil {
		style.Color = DefaultPreviewStyle().Color
	}
	c := color.NRGBAModel.Convert(style.Color).(color.NRGBA)
	dst := imaging.Clone(src)
	w, h := dst.Bounds().Dx(), dst.Bounds().Dy()

	s := rs.Stretch
	hline(dst, s.X1, s.X2, 0, style.StretchWidth, c)
	vline(dst, s.Y1, s.Y2, 0, style.StretchWidth, c)

	p := rs.Padding
	hline(dst, p.X1, p.X2, h-1, style.PaddingWidth, c)
	vline(dst, p.Y1, p.Y2, w-1, style.PaddingWidth, c)
	return dst
}
