// Package courier holds the player-controlled delivery marker.
package courier

import (
	"github.com/google/uuid"

	"chosenoffset.com/paperboy/internal/core/geom"
	"chosenoffset.com/paperboy/internal/selection"
)

// Courier is the single player marker on the map.
type Courier struct {
	ID    uuid.UUID
	Pos   geom.Point
	route []geom.Point
}

// New creates a courier at pos.
func New(pos geom.Point) *Courier {
	return &Courier{
		ID:  uuid.New(),
		Pos: pos,
	}
}

// SetPosition moves the courier to p when mode is PlacingCourier and reports
// whether it did. Positions are not checked against roads or map bounds.
func (c *Courier) SetPosition(mode selection.Mode, p geom.Point) bool {
	if mode != selection.PlacingCourier {
		return false
	}
	c.Pos = p
	return true
}

// Dispatch assigns a copy of route to the courier, replacing any previous
// assignment. The courier does not move.
func (c *Courier) Dispatch(route []geom.Point) {
	c.route = append([]geom.Point(nil), route...)
}

// Route returns the last dispatched route.
func (c *Courier) Route() []geom.Point {
	return c.route
}
