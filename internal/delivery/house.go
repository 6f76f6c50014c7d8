package delivery

import (
	"github.com/google/uuid"

	"chosenoffset.com/paperboy/internal/core/geom"
)

// DefaultHouseSize is the footprint used when a map does not give one.
var DefaultHouseSize = geom.Point{X: 45, Y: 60}

// House is a potential delivery target. Active is only ever set by the
// Scheduler.
type House struct {
	ID     uuid.UUID
	Pos    geom.Point
	Size   geom.Point
	Active bool
}

// NewHouses creates one inactive house per position with the given footprint.
func NewHouses(positions []geom.Point, size geom.Point) []House {
	houses := make([]House, len(positions))
	for i, p := range positions {
		houses[i] = House{
			ID:   uuid.New(),
			Pos:  p,
			Size: size,
		}
	}
	return houses
}

// Footprint returns the house rectangle for rendering and hit tests.
func (h *House) Footprint() geom.Rect {
	return geom.Rect{Center: h.Pos, W: h.Size.X, H: h.Size.Y}
}

// ActiveCount returns how many houses are currently delivery targets.
func ActiveCount(houses []House) int {
	n := 0
	for i := range houses {
		if houses[i].Active {
			n++
		}
	}
	return n
}
