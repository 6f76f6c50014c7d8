package game

import (
	"log"
	"math"

	"chosenoffset.com/paperboy/internal/render"
	"chosenoffset.com/paperboy/internal/selection"
)

const (
	roadWidth         = 6
	pathThickness     = 4
	intersectionSize  = 5
	waypointRadius    = 3
	courierRadius     = 9
	messageLineHeight = 18
)

// Draw renders the game to the screen.
func (g *Game) Draw(screen render.Image) {
	screen.Fill(BackgroundColor)

	g.drawRoads(screen)
	g.drawHouses(screen)
	g.drawRoute(screen)
	g.drawPath(screen)
	g.drawCourier(screen)

	g.drawHUD(screen)
	g.drawMessages(screen)
}

func (g *Game) drawRoads(screen render.Image) {
	for a, b := range g.Roads.SegmentPositions() {
		ax, ay := g.Camera.WorldToScreen(a)
		bx, by := g.Camera.WorldToScreen(b)
		g.Renderer.StrokeLine(screen, float32(ax), float32(ay), float32(bx), float32(by), roadWidth, RoadColor)
	}
	for in := range g.Roads.Intersections() {
		x, y := g.Camera.WorldToScreen(in.Pos)
		g.Renderer.FillCircle(screen, float32(x), float32(y), intersectionSize, IntersectionColor)
	}
}

func (g *Game) drawHouses(screen render.Image) {
	hovered := -1
	if g.InputMgr != nil {
		cx, cy := g.InputMgr.GetCursorPosition()
		if i, ok := g.HouseAt(g.Camera.ScreenToWorld(float64(cx), float64(cy))); ok {
			hovered = i
		}
	}

	for i := range g.Houses {
		h := &g.Houses[i]
		r := h.Footprint()
		// Top-left in world space is (min x, max y).
		x, _ := g.Camera.WorldToScreen(r.Min())
		_, y := g.Camera.WorldToScreen(r.Max())

		clr := HouseColor
		if h.Active {
			clr = ActiveHouseColor
		}
		g.Renderer.FillRect(screen, float32(x), float32(y), float32(r.W), float32(r.H), clr)
		if i == hovered {
			g.Renderer.StrokeRect(screen, float32(x), float32(y), float32(r.W), float32(r.H), 2, PaperboyHighlightColor)
		}
	}
}

// drawPath draws the polyline preview and one oriented rectangle per segment.
func (g *Game) drawPath(screen render.Image) {
	if !g.Path.Building() {
		return
	}
	points := g.Path.Points()
	for i := 1; i < len(points); i++ {
		ax, ay := g.Camera.WorldToScreen(points[i-1])
		bx, by := g.Camera.WorldToScreen(points[i])
		g.Renderer.StrokeLine(screen, float32(ax), float32(ay), float32(bx), float32(by), 1, PathColor)
	}

	g.ensureSegmentHandles()
	for _, s := range g.Path.Segments() {
		img, ok := s.Handle.(render.Image)
		if !ok {
			continue
		}
		w, h := img.Size()
		mx, my := g.Camera.WorldToScreen(s.Midpoint)

		geoM := render.NewGeoM()
		geoM.Translate(-float64(w)/2, -float64(h)/2)
		// Screen y points down, so world angles flip sign.
		geoM.Rotate(-s.Orientation)
		geoM.Translate(mx, my)
		screen.DrawImage(img, &render.DrawImageOptions{GeoM: geoM})
	}

	for _, p := range points {
		x, y := g.Camera.WorldToScreen(p)
		g.Renderer.FillCircle(screen, float32(x), float32(y), waypointRadius, PathColor)
	}
}

// ensureSegmentHandles creates the cached rectangle image for every segment
// that has none yet. Zero-length segments are not drawn.
func (g *Game) ensureSegmentHandles() {
	for i, s := range g.Path.Segments() {
		if s.Handle != nil || s.Length < 1 {
			continue
		}
		img := g.Renderer.NewImage(int(math.Ceil(s.Length)), pathThickness)
		img.Fill(PathColor)
		if err := g.Path.SetHandle(i, img); err != nil {
			log.Printf("Failed to attach segment image: %v", err)
			img.Dispose()
		}
	}
}

func (g *Game) drawRoute(screen render.Image) {
	route := g.Courier.Route()
	for i := 1; i < len(route); i++ {
		ax, ay := g.Camera.WorldToScreen(route[i-1])
		bx, by := g.Camera.WorldToScreen(route[i])
		g.Renderer.StrokeLine(screen, float32(ax), float32(ay), float32(bx), float32(by), 8, RouteColor)
	}
}

func (g *Game) drawCourier(screen render.Image) {
	x, y := g.Camera.WorldToScreen(g.Courier.Pos)
	g.Renderer.FillCircle(screen, float32(x), float32(y), courierRadius, PaperboyColor)
	if g.Mode.Current() == selection.PlacingCourier {
		g.Renderer.StrokeCircle(screen, float32(x), float32(y), courierRadius+3, 2, PaperboyHighlightColor)
	}
}

func (g *Game) drawHUD(screen render.Image) {
	if g.GameHUD == nil {
		return
	}
	g.GameHUD.SetStatus(g.Status())
	g.GameHUD.Draw(screen, g.Renderer)
}

func (g *Game) drawMessages(screen render.Image) {
	y := g.ScreenHeight - messageLineHeight*(len(g.Messages)+1)
	for _, msg := range g.Messages {
		w, h := g.Renderer.MeasureText(msg.Text, 1.0)
		x := (g.ScreenWidth - w) / 2
		g.Renderer.FillRect(screen, float32(x-4), float32(y-2), float32(w+8), float32(h+4), MessageBackgroundColor)
		g.Renderer.DrawText(screen, msg.Text, x, y, MessageColor, 1.0)
		y += messageLineHeight
	}
}
