package game

import (
	"image"
	"image/color"

	"chosenoffset.com/paperboy/internal/render"
)

func init() {
	render.NewGeoM = func() render.GeoM { return &fakeGeoM{} }
}

type fakeImage struct {
	w, h     int
	disposed bool
	draws    int
}

func (i *fakeImage) Bounds() image.Rectangle { return image.Rect(0, 0, i.w, i.h) }
func (i *fakeImage) Size() (int, int)        { return i.w, i.h }
func (i *fakeImage) Fill(color.Color)        {}
func (i *fakeImage) Clear()                  {}
func (i *fakeImage) Dispose()                { i.disposed = true }

func (i *fakeImage) DrawImage(render.Image, *render.DrawImageOptions) { i.draws++ }

type fakeRenderer struct {
	images []*fakeImage
	lines  int
	rects  int
	texts  []string
	colors []color.Color
}

func (r *fakeRenderer) NewImage(w, h int) render.Image {
	img := &fakeImage{w: w, h: h}
	r.images = append(r.images, img)
	return img
}
func (r *fakeRenderer) FillCircle(render.Image, float32, float32, float32, color.Color) {}
func (r *fakeRenderer) StrokeCircle(render.Image, float32, float32, float32, float32, color.Color) {
}
func (r *fakeRenderer) StrokeLine(render.Image, float32, float32, float32, float32, float32, color.Color) {
	r.lines++
}
func (r *fakeRenderer) FillRect(render.Image, float32, float32, float32, float32, color.Color) {
	r.rects++
}
func (r *fakeRenderer) StrokeRect(render.Image, float32, float32, float32, float32, float32, color.Color) {
}
func (r *fakeRenderer) DrawText(_ render.Image, text string, _, _ int, clr color.Color, _ float64) {
	r.texts = append(r.texts, text)
	r.colors = append(r.colors, clr)
}
func (r *fakeRenderer) MeasureText(text string, scale float64) (int, int) {
	return len(text) * 6, 13
}

type fakeGeoM struct{}

func (g *fakeGeoM) Translate(float64, float64) {}
func (g *fakeGeoM) Scale(float64, float64)     {}
func (g *fakeGeoM) Rotate(float64)             {}
func (g *fakeGeoM) Reset()                     {}

// fakeInput reports each configured press for exactly one frame.
type fakeInput struct {
	cursorX, cursorY int
	click            bool
	keys             map[render.Key]bool
}

func (f *fakeInput) IsKeyPressed(k render.Key) bool     { return f.keys[k] }
func (f *fakeInput) IsKeyJustPressed(k render.Key) bool { return f.keys[k] }
func (f *fakeInput) GetCursorPosition() (int, int)      { return f.cursorX, f.cursorY }
func (f *fakeInput) IsMouseButtonPressed(b render.MouseButton) bool {
	return b == render.MouseButtonLeft && f.click
}
func (f *fakeInput) IsMouseButtonJustPressed(b render.MouseButton) bool {
	return b == render.MouseButtonLeft && f.click
}

type countingChime struct{ plays int }

func (c *countingChime) Play() { c.plays++ }

// scriptedRng replays fixed values.
type scriptedRng struct {
	floats []float64
	ints   []int
}

func (s *scriptedRng) Float64() float64 {
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func (s *scriptedRng) Intn(n int) int {
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v
}
