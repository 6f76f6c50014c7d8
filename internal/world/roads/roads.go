// Package roads models the road network as an immutable undirected
// multigraph: intersections live in a dense array addressed by Handle and
// segments are stored as handle pairs in insertion order.
package roads

import (
	"errors"
	"fmt"
	"iter"

	"chosenoffset.com/paperboy/internal/core/geom"
)

// Handle is the stable index of an intersection inside its Network.
type Handle int

// Intersection is a road node.
type Intersection struct {
	ID  Handle
	Pos geom.Point
}

// Segment is an unordered pair of intersection handles. The same pair may
// appear more than once in a Network.
type Segment struct {
	A, B Handle
}

// ErrUnknownIntersection is matched by errors.Is for edges that reference a
// handle outside the intersection set.
var ErrUnknownIntersection = errors.New("unknown intersection")

// ValidationKind classifies a construction failure.
type ValidationKind int

const (
	UnknownIntersection ValidationKind = iota
)

// ValidationError describes why Build rejected its input.
type ValidationError struct {
	Kind     ValidationKind
	Edge     int // index into the edges slice
	Endpoint int // offending intersection index
	Count    int // number of intersections available
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case UnknownIntersection:
		return fmt.Sprintf("edge %d references intersection %d, have %d intersections", e.Edge, e.Endpoint, e.Count)
	default:
		return fmt.Sprintf("invalid edge %d", e.Edge)
	}
}

// Is lets errors.Is(err, ErrUnknownIntersection) match.
func (e *ValidationError) Is(target error) bool {
	return e.Kind == UnknownIntersection && target == ErrUnknownIntersection
}

// Network is the road graph. It is read-only once built.
type Network struct {
	intersections []Intersection
	segments      []Segment
}

// Build validates the edge list against the intersection positions and
// returns the network. Edges are kept in order and never deduplicated.
func Build(intersections []geom.Point, edges [][2]int) (*Network, error) {
	n := len(intersections)
	for i, e := range edges {
		for _, idx := range e {
			if idx < 0 || idx >= n {
				return nil, &ValidationError{
					Kind:     UnknownIntersection,
					Edge:     i,
					Endpoint: idx,
					Count:    n,
				}
			}
		}
	}

	net := &Network{
		intersections: make([]Intersection, n),
		segments:      make([]Segment, len(edges)),
	}
	for i, p := range intersections {
		net.intersections[i] = Intersection{ID: Handle(i), Pos: p}
	}
	for i, e := range edges {
		net.segments[i] = Segment{A: Handle(e[0]), B: Handle(e[1])}
	}
	return net, nil
}

// IntersectionCount returns the number of intersections.
func (n *Network) IntersectionCount() int {
	return len(n.intersections)
}

// SegmentCount returns the number of stored segments, duplicates included.
func (n *Network) SegmentCount() int {
	return len(n.segments)
}

// Intersection returns the intersection with handle h.
func (n *Network) Intersection(h Handle) (Intersection, bool) {
	if h < 0 || int(h) >= len(n.intersections) {
		return Intersection{}, false
	}
	return n.intersections[h], true
}

// Intersections yields every intersection in handle order.
func (n *Network) Intersections() iter.Seq[Intersection] {
	return func(yield func(Intersection) bool) {
		for _, in := range n.intersections {
			if !yield(in) {
				return
			}
		}
	}
}

// PositionsOf returns the endpoint positions of seg. seg must come from this
// network.
func (n *Network) PositionsOf(seg Segment) (a, b geom.Point) {
	return n.intersections[seg.A].Pos, n.intersections[seg.B].Pos
}

// Segments yields every stored segment in insertion order. Each call starts a
// fresh pass.
func (n *Network) Segments() iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		for _, s := range n.segments {
			if !yield(s) {
				return
			}
		}
	}
}

// SegmentPositions yields the endpoint positions of every segment, in the
// same order as Segments.
func (n *Network) SegmentPositions() iter.Seq2[geom.Point, geom.Point] {
	return func(yield func(geom.Point, geom.Point) bool) {
		for _, s := range n.segments {
			a, b := n.PositionsOf(s)
			if !yield(a, b) {
				return
			}
		}
	}
}

// Bounds returns the bounding rectangle of all intersections.
func (n *Network) Bounds() geom.Rect {
	pts := make([]geom.Point, len(n.intersections))
	for i, in := range n.intersections {
		pts[i] = in.Pos
	}
	return geom.BoundsOf(pts)
}
