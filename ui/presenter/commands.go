package presenter

import "github.com/soocke/ninepatch-go/domain/ninepatch"

// Command is a typed user intent translated from a toolkit event.
type Command interface{ command() }

// LoadImage replaces the source image with the file at Path.
type LoadImage struct{ Path string }

// SetRegionValue updates one of the eight region scalars.
type SetRegionValue struct {
	Kind  ninepatch.RegionKind
	Coord ninepatch.Coord
	Value int
}

// Export writes the nine-patch image to Path.
type Export struct{ Path string }

func (LoadImage) command()      {}
func (SetRegionValue) command() {}
func (Export) command()         {}
