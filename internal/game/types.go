package game

import (
	"image/color"

	"chosenoffset.com/paperboy/internal/core/geom"
)

// Palette
var (
	BackgroundColor        = color.RGBA{230, 230, 230, 255}
	RoadColor              = color.RGBA{0, 0, 0, 255}
	IntersectionColor      = color.RGBA{60, 60, 60, 255}
	PathColor              = color.RGBA{255, 51, 51, 255}
	RouteColor             = color.RGBA{90, 18, 18, 90} // premultiplied
	PaperboyColor          = color.RGBA{51, 51, 255, 255}
	PaperboyHighlightColor = color.RGBA{51, 230, 51, 255}
	HouseColor             = color.RGBA{90, 90, 90, 255}
	ActiveHouseColor       = color.RGBA{255, 128, 128, 255}
	MessageColor           = color.RGBA{255, 255, 255, 255}
	MessageBackgroundColor = color.RGBA{0, 0, 0, 160} // premultiplied
)

// Camera maps world space (y up) onto the screen (y down). X, Y is the world
// point shown at the center of the view.
type Camera struct {
	X, Y         float64
	ViewW, ViewH int
}

// WorldToScreen converts a world point to screen pixels.
func (c Camera) WorldToScreen(p geom.Point) (float64, float64) {
	sx := p.X - c.X + float64(c.ViewW)/2
	sy := float64(c.ViewH)/2 - (p.Y - c.Y)
	return sx, sy
}

// ScreenToWorld converts screen pixels to a world point.
func (c Camera) ScreenToWorld(sx, sy float64) geom.Point {
	return geom.Point{
		X: sx - float64(c.ViewW)/2 + c.X,
		Y: float64(c.ViewH)/2 - sy + c.Y,
	}
}

// Message represents an on-screen message that fades over time.
type Message struct {
	Text     string
	TimeLeft float64 // Seconds remaining
	MaxTime  float64 // Initial duration
}
