package ninepatch

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/disintegration/imaging"
	"github.com/natefinch/atomic"
)

// Extension is the file suffix nine-patch aware renderers look for.
const Extension = ".9.png"

var markColor = color.NRGBA{A: 0xff}

// Result describes a completed export.
type Result struct {
	Path  string      // absolute output path
	Size  image.Point // dimensions of the written image
	Bytes int64       // encoded file size
}

// Compose builds the nine-patch image: src padded by a transparent 1px border, with 1px
// black marks for the stretch region on the top and left borders and for the padding
// region on the bottom and right borders. Region coordinates are shifted by +1 to account
// for the border.
func Compose(src image.Image, rs Regions) (*image.NRGBA, error) {
	if src == nil {
		return nil, ErrNoImageLoaded
	}
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	dst := imaging.New(w+2, h+2, color.NRGBA{})
	dst = imaging.Paste(dst, src, image.Pt(1, 1))

	s := rs.Stretch
	hline(dst, s.X1+1, s.X2+1, 0, 1, markColor)
	vline(dst, s.Y1+1, s.Y2+1, 0, 1, markColor)

	p := rs.Padding
	hline(dst, p.X1+1, p.X2+1, h+1, 1, markColor)
	vline(dst, p.Y1+1, p.Y2+1, w+1, 1, markColor)
	return dst, nil
}

// Encode writes img as PNG. Output is deterministic for identical input.
func Encode(w io.Writer, img image.Image) error {
	return imgio.PNGEncoder()(w, img)
}

// Export composes the nine-patch image and writes it to path. The file is written to a
// temporary sibling and swapped into place, so a failed export leaves no partial file.
func Export(path string, src image.Image, rs Regions) (Result, error) {
	img, err := Compose(src, rs)
	if err != nil {
		return Result{}, err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return Result{}, fmt.Errorf("%w: resolve %q: %w", ErrWrite, path, err)
	}
	var buf bytes.Buffer
	if err := Encode(&buf, img); err != nil {
		return Result{}, fmt.Errorf("%w: encode png: %w", ErrWrite, err)
	}
	if err := writeFile(abs, buf.Bytes()); err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return Result{Path: abs, Size: img.Bounds().Size(), Bytes: int64(buf.Len())}, nil
}

// writeFile replaces path atomically. New files are made world-readable; an existing
// file keeps its mode.
func writeFile(path string, data []byte) error {
	_, statErr := os.Stat(path)
	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return err
	}
	if os.IsNotExist(statErr) {
		return os.Chmod(path, 0o644)
	}
	return nil
}

// NinePatchName returns path with the .9.png suffix applied: "a" and "a.png" become
// "a.9.png"; names already ending in .9.png are returned unchanged. Empty stays empty.
func NinePatchName(path string) string {
	if path == "" {
		return ""
	}
	lower := strings.ToLower(path)
	switch {
	case strings.HasSuffix(lower, Extension):
		return path
	case strings.HasSuffix(lower, ".png"):
		return path[:len(path)-len(".png")] + Extension
	default:
		return path + Extension
	}
}
