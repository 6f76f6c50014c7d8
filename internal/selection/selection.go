// Package selection tracks which pointer interaction is live.
package selection

// Mode selects the handler that receives pointer clicks.
type Mode int

const (
	PlacingCourier Mode = iota // Clicks move the courier marker
	PlacingPath                // Clicks extend the route polyline
	Paused                     // Clicks are ignored; toggling has no effect
)

func (m Mode) String() string {
	switch m {
	case PlacingCourier:
		return "placing courier"
	case PlacingPath:
		return "placing path"
	case Paused:
		return "paused"
	default:
		return "unknown"
	}
}

// Controller holds the single selection mode.
type Controller struct {
	mode Mode
}

// NewController creates a controller starting in the given mode.
func NewController(initial Mode) *Controller {
	return &Controller{mode: initial}
}

// Current returns the active mode.
func (c *Controller) Current() Mode {
	return c.mode
}

// Toggle swaps PlacingCourier and PlacingPath. Paused stays Paused.
func (c *Controller) Toggle() {
	switch c.mode {
	case PlacingCourier:
		c.mode = PlacingPath
	case PlacingPath:
		c.mode = PlacingCourier
	}
}
