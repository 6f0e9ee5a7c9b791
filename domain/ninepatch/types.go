package ninepatch

import (
	"errors"
	"image"
)

var (
	// ErrNoImageLoaded is returned when an export is attempted before any image was loaded.
	ErrNoImageLoaded = errors.New("no image loaded")
	// ErrDecode wraps failures to read or decode a source image.
	ErrDecode = errors.New("decode failure")
	// ErrWrite wraps failures to write an exported nine-patch file.
	ErrWrite = errors.New("write failure")
)

// RegionKind selects one of the two regions encoded in a nine-patch border.
type RegionKind int

const (
	Stretch RegionKind = iota
	Padding
)

func (k RegionKind) String() string {
	switch k {
	case Stretch:
		return "stretch"
	case Padding:
		return "padding"
	default:
		return "unknown"
	}
}

// Axis is the image axis a coordinate lives on.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

// Coord names one of the four scalar values of a Region.
type Coord int

const (
	X1 Coord = iota
	Y1
	X2
	Y2
)

// Axis reports whether c is a horizontal or vertical coordinate.
func (c Coord) Axis() Axis {
	if c == X1 || c == X2 {
		return AxisX
	}
	return AxisY
}

func (c Coord) String() string {
	switch c {
	case X1:
		return "x1"
	case Y1:
		return "y1"
	case X2:
		return "x2"
	case Y2:
		return "y2"
	default:
		return "?"
	}
}

// Region holds a span on each axis in source image pixels.
// X1 may exceed X2 (and Y1 may exceed Y2); no ordering is enforced.
type Region struct {
	X1, Y1, X2, Y2 int
}

// Get returns the value of coordinate c.
func (r Region) Get(c Coord) int {
	switch c {
	case X1:
		return r.X1
	case Y1:
		return r.Y1
	case X2:
		return r.X2
	case Y2:
		return r.Y2
	}
	return 0
}

// With returns a copy of r with coordinate c set to v.
func (r Region) With(c Coord, v int) Region {
	switch c {
	case X1:
		r.X1 = v
	case Y1:
		r.Y1 = v
	case X2:
		r.X2 = v
	case Y2:
		r.Y2 = v
	}
	return r
}

// Regions groups the stretch and padding regions. The zero value is the baseline.
type Regions struct {
	Stretch Region
	Padding Region
}

// Get returns one scalar of the region selected by kind.
func (rs Regions) Get(kind RegionKind, c Coord) int {
	if kind == Padding {
		return rs.Padding.Get(c)
	}
	return rs.Stretch.Get(c)
}

// Set stores one scalar of the region selected by kind.
func (rs *Regions) Set(kind RegionKind, c Coord, v int) {
	if kind == Padding {
		rs.Padding = rs.Padding.With(c, v)
		return
	}
	rs.Stretch = rs.Stretch.With(c, v)
}

// SliderCount is the number of scalar controls (four per region).
const SliderCount = 8

// SliderCoord maps a control index in [0, SliderCount) to its region and coordinate:
// 0..3 are stretch x1,y1,x2,y2 and 4..7 are padding x1,y1,x2,y2. Even indices are x values.
func SliderCoord(i int) (RegionKind, Coord, bool) {
	if i < 0 || i >= SliderCount {
		return Stretch, X1, false
	}
	kind := Stretch
	if i >= 4 {
		kind = Padding
	}
	return kind, Coord(i % 4), true
}

// SliderIndex is the inverse of SliderCoord.
func SliderIndex(kind RegionKind, c Coord) int {
	i := int(c)
	if kind == Padding {
		i += 4
	}
	return i
}

// Bounds returns the largest valid value on axis for an image of the given size
// (width-1 or height-1), never below zero.
func Bounds(size image.Point, axis Axis) int {
	n := size.X
	if axis == AxisY {
		n = size.Y
	}
	if n < 1 {
		return 0
	}
	return n - 1
}

// Clamp limits v to [0, Bounds(size, c.Axis())].
func Clamp(size image.Point, c Coord, v int) int {
	max := Bounds(size, c.Axis())
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}
