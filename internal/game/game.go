package game

import (
	"fmt"
	"log"

	"chosenoffset.com/paperboy/internal/config"
	"chosenoffset.com/paperboy/internal/core/geom"
	"chosenoffset.com/paperboy/internal/courier"
	"chosenoffset.com/paperboy/internal/delivery"
	"chosenoffset.com/paperboy/internal/input"
	"chosenoffset.com/paperboy/internal/path"
	"chosenoffset.com/paperboy/internal/render"
	"chosenoffset.com/paperboy/internal/selection"
	"chosenoffset.com/paperboy/internal/ui/hud"
	"chosenoffset.com/paperboy/internal/world/maploader"
	"chosenoffset.com/paperboy/internal/world/roads"
)

// Chimer plays the delivery notification.
type Chimer interface {
	Play()
}

// Game holds all game state and logic.
type Game struct {
	ScreenWidth  int
	ScreenHeight int
	DeltaTime    float64

	// World
	Map    *maploader.Map
	Roads  *roads.Network
	Houses []delivery.House

	// Core state, owned by the frame loop
	Scheduler *delivery.Scheduler
	Rng       delivery.Source
	Mode      *selection.Controller
	Path      *path.Builder
	Courier   *courier.Courier
	Queue     *input.Queue

	// Presentation
	Camera   Camera
	Renderer render.Renderer
	InputMgr render.InputManager
	Chime    Chimer
	GameHUD  *hud.HUD

	// UI state
	Messages []Message

	// Debug
	FrameCount int
}

// New creates a game on map m. rng drives the delivery scheduler.
func New(cfg *config.Config, m *maploader.Map, rng delivery.Source) (*Game, error) {
	scheduler, err := delivery.NewScheduler(cfg.Delivery.BaseDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}
	mode, err := ParseMode(cfg.Input.InitialMode)
	if err != nil {
		return nil, err
	}

	center := m.Roads.Bounds().Center
	g := &Game{
		ScreenWidth:  cfg.Window.Width,
		ScreenHeight: cfg.Window.Height,
		DeltaTime:    cfg.DeltaTime(),
		Map:          m,
		Roads:        m.Roads,
		Houses:       m.Houses,
		Scheduler:    scheduler,
		Rng:          rng,
		Mode:         selection.NewController(mode),
		Path:         path.NewBuilder(),
		Courier:      courier.New(m.CourierStartPoint()),
		Queue:        input.NewQueue(cfg.Input.QueueCapacity),
		Camera: Camera{
			X:     center.X,
			Y:     center.Y,
			ViewW: cfg.Window.Width,
			ViewH: cfg.Window.Height,
		},
		GameHUD: hud.New(nil, cfg.Window.Width, cfg.Window.Height),
	}
	scheduler.OnActivate = g.onHouseActivated
	return g, nil
}

// ParseMode maps the configured initial mode name to a selection mode.
func ParseMode(name string) (selection.Mode, error) {
	switch name {
	case "", "courier":
		return selection.PlacingCourier, nil
	case "path":
		return selection.PlacingPath, nil
	default:
		return 0, fmt.Errorf("unknown initial mode %q", name)
	}
}

// SetPresentation attaches the rendering, input and audio collaborators.
func (g *Game) SetPresentation(r render.Renderer, in render.InputManager, chime Chimer) {
	g.Renderer = r
	g.InputMgr = in
	g.Chime = chime
}

// Update handles game logic updates.
func (g *Game) Update() error {
	g.collectInput()
	g.Step(g.DeltaTime, g.Queue.Drain())
	g.updateMessages(g.DeltaTime)
	g.FrameCount++
	return nil
}

// Step runs one frame of game logic: the delivery countdown, then clicks in
// arrival order against the mode the frame started in, then commands in
// arrival order.
//
// Commands are deferred past every click of the same frame, so a ToggleMode
// queued before a Click only affects the next frame's clicks.
func (g *Game) Step(dt float64, events []input.Event) {
	g.Scheduler.Tick(dt, g.Houses, g.Rng)

	mode := g.Mode.Current()
	for _, ev := range events {
		if ev.IsCommand() {
			continue
		}
		g.Path.AddPoint(mode, ev.Pos)
		g.Courier.SetPosition(mode, ev.Pos)
	}

	for _, ev := range events {
		switch ev.Kind {
		case input.ToggleMode:
			g.Mode.Toggle()
			log.Printf("Selection mode: %s", g.Mode.Current())
		case input.ClearPath:
			g.clearPath()
		case input.Confirm:
			g.confirmRoute()
		}
	}
}

func (g *Game) clearPath() {
	handles := g.Path.Clear()
	for _, h := range handles {
		h.Dispose()
	}
}

func (g *Game) confirmRoute() {
	points := g.Path.Points()
	if len(points) < 2 {
		g.ShowMessage("Draw a route first")
		return
	}
	g.Courier.Dispatch(points)
	g.ShowMessage(fmt.Sprintf("Route sent: %d stops, %.0f px", len(points), g.Path.TotalLength()))
}

func (g *Game) onHouseActivated(index int, h *delivery.House) {
	log.Printf("Delivery requested house=%d id=%s pos=(%.0f, %.0f) next_in=%.2fs",
		index, h.ID, h.Pos.X, h.Pos.Y, g.Scheduler.Duration())
	if g.Chime != nil {
		g.Chime.Play()
	}
	g.ShowMessage("New delivery!")
}

// collectInput turns this frame's pointer and key presses into queued events.
func (g *Game) collectInput() {
	if g.InputMgr == nil {
		return
	}

	if g.InputMgr.IsMouseButtonJustPressed(render.MouseButtonLeft) {
		x, y := g.InputMgr.GetCursorPosition()
		g.push(input.Event{Kind: input.Click, Pos: g.Camera.ScreenToWorld(float64(x), float64(y))})
	}
	if g.InputMgr.IsKeyJustPressed(render.KeyTab) {
		g.push(input.Event{Kind: input.ToggleMode})
	}
	if g.InputMgr.IsKeyJustPressed(render.KeyC) || g.InputMgr.IsKeyJustPressed(render.KeyBackspace) {
		g.push(input.Event{Kind: input.ClearPath})
	}
	if g.InputMgr.IsKeyJustPressed(render.KeyEnter) || g.InputMgr.IsKeyJustPressed(render.KeySpace) {
		g.push(input.Event{Kind: input.Confirm})
	}
}

func (g *Game) push(ev input.Event) {
	if !g.Queue.Push(ev) {
		log.Printf("Input queue full, dropped %s", ev.Kind)
	}
}

// Layout returns the game's logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.ScreenWidth || outsideHeight != g.ScreenHeight {
		g.ScreenWidth = outsideWidth
		g.ScreenHeight = outsideHeight
		g.Camera.ViewW = outsideWidth
		g.Camera.ViewH = outsideHeight
		if g.GameHUD != nil {
			g.GameHUD.SetScreenSize(outsideWidth, outsideHeight)
		}
	}
	return g.ScreenWidth, g.ScreenHeight
}

func (g *Game) updateMessages(dt float64) {
	var active []Message
	for _, msg := range g.Messages {
		msg.TimeLeft -= dt
		if msg.TimeLeft > 0 {
			active = append(active, msg)
		}
	}
	g.Messages = active
}

// ShowMessage adds a new message to be displayed on screen.
func (g *Game) ShowMessage(text string) {
	g.Messages = append(g.Messages, Message{
		Text:     text,
		TimeLeft: 3.0,
		MaxTime:  3.0,
	})

	log.Printf("Message: %s", text)
}

// HouseAt returns the index of the house whose footprint contains p.
func (g *Game) HouseAt(p geom.Point) (int, bool) {
	for i := range g.Houses {
		if g.Houses[i].Footprint().Contains(p) {
			return i, true
		}
	}
	return -1, false
}

// Status snapshots the values shown by the HUD.
func (g *Game) Status() hud.Status {
	return hud.Status{
		Mode:          g.Mode.Current().String(),
		ActiveHouses:  delivery.ActiveCount(g.Houses),
		TotalHouses:   len(g.Houses),
		NextDelivery:  g.Scheduler.Remaining(),
		PathPoints:    g.Path.Len(),
		PathLength:    g.Path.TotalLength(),
		RoutePoints:   len(g.Courier.Route()),
		CourierX:      g.Courier.Pos.X,
		CourierY:      g.Courier.Pos.Y,
		DroppedInputs: g.Queue.Dropped(),
	}
}
