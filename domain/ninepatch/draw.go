package ninepatch

import (
	"image"
	"image/color"
)

// hline draws a horizontal segment between x columns a and b (inclusive, either order)
// centred on row y with the given width. Pixels outside dst are skipped.
func hline(dst *image.NRGBA, a, b, y, width int, c color.NRGBA) {
	if a > b {
		a, b = b, a
	}
	y0, y1 := span(y, width)
	fill(dst, image.Rect(a, y0, b+1, y1+1), c)
}

// vline draws a vertical segment between y rows a and b (inclusive, either order)
// centred on column x with the given width.
func vline(dst *image.NRGBA, a, b, x, width int, c color.NRGBA) {
	if a > b {
		a, b = b, a
	}
	x0, x1 := span(x, width)
	fill(dst, image.Rect(x0, a, x1+1, b+1), c)
}

// span returns the inclusive range covered by a line of width w centred on p.
func span(p, w int) (int, int) {
	if w < 1 {
		w = 1
	}
	lo := p - (w-1)/2
	return lo, lo + w - 1
}

func fill(dst *image.NRGBA, r image.Rectangle, c color.NRGBA) {
	r = r.Intersect(dst.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			dst.SetNRGBA(x, y, c)
		}
	}
}
