// Package path accumulates pointer clicks into the courier's route polyline
// and derives the geometry of each drawn segment.
package path

import (
	"fmt"

	"chosenoffset.com/paperboy/internal/core/geom"
	"chosenoffset.com/paperboy/internal/selection"
)

// Handle is whatever the presentation layer keeps for a drawn segment.
// render.Image satisfies it.
type Handle interface {
	Dispose()
}

// Segment describes the edge between two consecutive waypoints.
type Segment struct {
	Midpoint    geom.Point
	Length      float64
	Orientation float64 // radians, atan2 of previous minus new
	Handle      Handle  // nil until the renderer attaches one
}

// Builder holds the single route being drawn. It is Idle with zero points
// and Building otherwise.
type Builder struct {
	points   []geom.Point
	segments []Segment
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// AddPoint appends p when mode is PlacingPath and reports whether it did.
// Every point after the first also appends the segment from the previous
// point to p, including zero-length ones.
func (b *Builder) AddPoint(mode selection.Mode, p geom.Point) bool {
	if mode != selection.PlacingPath {
		return false
	}
	if n := len(b.points); n > 0 {
		b.segments = append(b.segments, segmentBetween(b.points[n-1], p))
	}
	b.points = append(b.points, p)
	return true
}

func segmentBetween(p0, p1 geom.Point) Segment {
	return Segment{
		Midpoint:    geom.Midpoint(p0, p1),
		Length:      geom.Distance(p0, p1),
		Orientation: geom.Orientation(p0, p1),
	}
}

// Points returns the waypoints in click order. The slice must not be modified.
func (b *Builder) Points() []geom.Point {
	return b.points
}

// Segments returns the derived segments. The slice must not be modified.
func (b *Builder) Segments() []Segment {
	return b.segments
}

// Len returns the number of waypoints.
func (b *Builder) Len() int {
	return len(b.points)
}

// Building reports whether at least one waypoint has been placed.
func (b *Builder) Building() bool {
	return len(b.points) > 0
}

// TotalLength sums the segment lengths.
func (b *Builder) TotalLength() float64 {
	total := 0.0
	for _, s := range b.segments {
		total += s.Length
	}
	return total
}

// SetHandle attaches the renderer's handle to segment i.
func (b *Builder) SetHandle(i int, h Handle) error {
	if i < 0 || i >= len(b.segments) {
		return fmt.Errorf("segment index %d out of range [0, %d)", i, len(b.segments))
	}
	b.segments[i].Handle = h
	return nil
}

// Clear empties the route regardless of mode and returns the handles that
// were attached, in segment order, so the caller can release them.
func (b *Builder) Clear() []Handle {
	var handles []Handle
	for _, s := range b.segments {
		if s.Handle != nil {
			handles = append(handles, s.Handle)
		}
	}
	b.points = nil
	b.segments = nil
	return handles
}
