// Package hud draws the status panel: placement mode, delivery targets,
// the route being drawn and the key bindings.
package hud

import (
	"fmt"
	"image/color"

	"chosenoffset.com/paperboy/internal/render"
)

// HUDConfig defines what to display in the HUD
type HUDConfig struct {
	ShowControls bool   `json:"show_controls"` // Show key bindings
	ShowCourier  bool   `json:"show_courier"`  // Show courier coordinates
	Position     string `json:"position"`      // "top-left", "top-right", "bottom-left", "bottom-right"
}

// DefaultConfig returns a sensible default HUD configuration
func DefaultConfig() *HUDConfig {
	return &HUDConfig{
		ShowControls: true,
		ShowCourier:  true,
		Position:     "top-left",
	}
}

// Status is the snapshot the HUD renders each frame
type Status struct {
	Mode          string
	ActiveHouses  int
	TotalHouses   int
	NextDelivery  float64 // Seconds until the scheduler fires
	PathPoints    int
	PathLength    float64
	RoutePoints   int // Waypoints handed to the courier on the last confirm
	CourierX      float64
	CourierY      float64
	DroppedInputs int
}

// HUD manages the heads-up display
type HUD struct {
	config       *HUDConfig
	screenWidth  int
	screenHeight int
	status       Status

	panelWidth int
	lineHeight int
}

// New creates a new HUD with the given configuration
func New(config *HUDConfig, screenWidth, screenHeight int) *HUD {
	if config == nil {
		config = DefaultConfig()
	}
	return &HUD{
		config:       config,
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		panelWidth:   220,
		lineHeight:   16,
	}
}

// SetStatus replaces the displayed snapshot
func (h *HUD) SetStatus(s Status) {
	h.status = s
}

// SetScreenSize updates the screen dimensions
func (h *HUD) SetScreenSize(width, height int) {
	h.screenWidth = width
	h.screenHeight = height
}

// Lines returns the text rows in display order
func (h *HUD) Lines() []string {
	s := h.status
	lines := []string{
		fmt.Sprintf("Mode: %s", s.Mode),
		fmt.Sprintf("Deliveries: %d/%d", s.ActiveHouses, s.TotalHouses),
		fmt.Sprintf("Next in: %.1fs", s.NextDelivery),
		fmt.Sprintf("Path: %d pts, %.0f px", s.PathPoints, s.PathLength),
	}
	if s.RoutePoints > 0 {
		lines = append(lines, fmt.Sprintf("Route sent: %d pts", s.RoutePoints))
	}
	if h.config.ShowCourier {
		lines = append(lines, fmt.Sprintf("Courier: %.0f, %.0f", s.CourierX, s.CourierY))
	}
	if s.DroppedInputs > 0 {
		lines = append(lines, fmt.Sprintf("Dropped inputs: %d", s.DroppedInputs))
	}
	if h.config.ShowControls {
		lines = append(lines,
			"",
			"Click: place",
			"Tab: toggle mode",
			"C: clear path",
			"Enter: send route",
		)
	}
	return lines
}

// Draw renders the HUD to the screen
func (h *HUD) Draw(screen render.Image, r render.Renderer) {
	lines := h.Lines()
	height := len(lines)*h.lineHeight + 16
	x, y := h.calculatePosition(height)

	r.FillRect(screen, float32(x), float32(y), float32(h.panelWidth), float32(height), color.RGBA{20, 20, 30, 180})
	r.StrokeRect(screen, float32(x), float32(y), float32(h.panelWidth), float32(height), 1, color.RGBA{90, 90, 110, 255})

	currentY := y + 8
	for _, line := range lines {
		if line != "" {
			r.DrawText(screen, line, x+8, currentY, color.White, 1.0)
		}
		currentY += h.lineHeight
	}
}

func (h *HUD) calculatePosition(height int) (int, int) {
	const margin = 10
	switch h.config.Position {
	case "top-right":
		return h.screenWidth - h.panelWidth - margin, margin
	case "bottom-left":
		return margin, h.screenHeight - height - margin
	case "bottom-right":
		return h.screenWidth - h.panelWidth - margin, h.screenHeight - height - margin
	default:
		return margin, margin
	}
}
