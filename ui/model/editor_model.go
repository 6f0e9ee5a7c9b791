package model

import (
	"image"

	"github.com/soocke/ninepatch-go/domain/ninepatch"
)

// EditorModel is the editing session: the loaded source image and the eight region values.
// The zero value has no image loaded and is usable. Only the UI thread mutates it.
type EditorModel struct {
	img     image.Image
	path    string
	regions ninepatch.Regions
}

// NewEditorModel returns an empty model.
func NewEditorModel() *EditorModel { return &EditorModel{} }

// Load replaces the source image and resets all region values to zero.
func (m *EditorModel) Load(img image.Image, path string) {
	if m == nil || img == nil {
		return
	}
	m.img = img
	m.path = path
	m.regions = ninepatch.Regions{}
}

// Loaded reports whether a source image is present.
func (m *EditorModel) Loaded() bool { return m != nil && m.img != nil }

// Image returns the source image or nil.
func (m *EditorModel) Image() image.Image {
	if m == nil {
		return nil
	}
	return m.img
}

// Path returns the file the source image was loaded from.
func (m *EditorModel) Path() string {
	if m == nil {
		return ""
	}
	return m.path
}

// Size returns the source image dimensions (zero when nothing is loaded).
func (m *EditorModel) Size() image.Point {
	if !m.Loaded() {
		return image.Point{}
	}
	return m.img.Bounds().Size()
}

// Regions returns a copy of the current region values.
func (m *EditorModel) Regions() ninepatch.Regions {
	if m == nil {
		return ninepatch.Regions{}
	}
	return m.regions
}

// Max returns the slider upper bound for coordinate c.
func (m *EditorModel) Max(c ninepatch.Coord) int {
	return ninepatch.Bounds(m.Size(), c.Axis())
}

// SetRegionValue clamps v to the slider bounds and stores it. It returns the stored value
// and whether anything changed. Without a loaded image it does nothing.
func (m *EditorModel) SetRegionValue(kind ninepatch.RegionKind, c ninepatch.Coord, v int) (int, bool) {
	if !m.Loaded() {
		return 0, false
	}
	v = ninepatch.Clamp(m.Size(), c, v)
	if m.regions.Get(kind, c) == v {
		return v, false
	}
	m.regions.Set(kind, c, v)
	return v, true
}
