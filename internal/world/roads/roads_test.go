package roads

import (
	"errors"
	"testing"

	"chosenoffset.com/paperboy/internal/core/geom"
)

func TestBuildSingleEdge(t *testing.T) {
	net, err := Build([]geom.Point{{X: 0, Y: 0}, {X: 2, Y: 2}}, [][2]int{{0, 1}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var segs []Segment
	for s := range net.Segments() {
		segs = append(segs, s)
	}
	if len(segs) != 1 {
		t.Fatalf("Expected 1 segment, got %d", len(segs))
	}
	if segs[0] != (Segment{A: 0, B: 1}) {
		t.Errorf("Expected segment (0,1), got %+v", segs[0])
	}

	a, b := net.PositionsOf(segs[0])
	if a != geom.Pt(0, 0) || b != geom.Pt(2, 2) {
		t.Errorf("Expected positions (0,0)-(2,2), got %v-%v", a, b)
	}
	if net.IntersectionCount() != 2 {
		t.Errorf("Expected 2 intersections, got %d", net.IntersectionCount())
	}
}

func TestBuildPreservesOrderAndDuplicates(t *testing.T) {
	pts := []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}}
	edges := [][2]int{{0, 1}, {1, 0}, {1, 2}, {0, 1}}

	net, err := Build(pts, edges)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if net.SegmentCount() != len(edges) {
		t.Fatalf("Expected %d segments, got %d", len(edges), net.SegmentCount())
	}

	i := 0
	for s := range net.Segments() {
		want := Segment{A: Handle(edges[i][0]), B: Handle(edges[i][1])}
		if s != want {
			t.Errorf("segment %d = %+v, want %+v", i, s, want)
		}
		i++
	}
	if i != len(edges) {
		t.Errorf("Expected %d yielded segments, got %d", len(edges), i)
	}

	// A second pass starts from the beginning again.
	count := 0
	for range net.Segments() {
		count++
	}
	if count != len(edges) {
		t.Errorf("Expected restartable iteration to yield %d, got %d", len(edges), count)
	}
}

func TestSegmentsEarlyBreak(t *testing.T) {
	net, err := Build([]geom.Point{{}, {X: 1}}, [][2]int{{0, 1}, {1, 0}, {0, 1}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	seen := 0
	for range net.Segments() {
		seen++
		break
	}
	if seen != 1 {
		t.Errorf("Expected 1 segment before break, got %d", seen)
	}
}

func TestBuildRejectsUnknownIntersection(t *testing.T) {
	tests := []struct {
		name     string
		edges    [][2]int
		edge     int
		endpoint int
	}{
		{"second endpoint too large", [][2]int{{0, 1}, {1, 2}}, 1, 2},
		{"negative first endpoint", [][2]int{{-1, 0}}, 0, -1},
		{"far out of range", [][2]int{{0, 1}, {0, 1}, {7, 0}}, 2, 7},
	}

	pts := []geom.Point{{X: 0, Y: 0}, {X: 5, Y: 5}}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			net, err := Build(pts, tt.edges)
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			if net != nil {
				t.Error("Expected no partial network")
			}
			if !errors.Is(err, ErrUnknownIntersection) {
				t.Errorf("Expected ErrUnknownIntersection, got %v", err)
			}
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("Expected *ValidationError, got %T", err)
			}
			if ve.Edge != tt.edge || ve.Endpoint != tt.endpoint {
				t.Errorf("Expected edge %d endpoint %d, got edge %d endpoint %d", tt.edge, tt.endpoint, ve.Edge, ve.Endpoint)
			}
		})
	}
}

func TestBuildEmpty(t *testing.T) {
	net, err := Build(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if net.IntersectionCount() != 0 || net.SegmentCount() != 0 {
		t.Errorf("Expected empty network, got %d/%d", net.IntersectionCount(), net.SegmentCount())
	}

	if _, err := Build(nil, [][2]int{{0, 0}}); !errors.Is(err, ErrUnknownIntersection) {
		t.Errorf("Expected edge on empty network to fail, got %v", err)
	}
}

func TestSegmentPositionsAndBounds(t *testing.T) {
	pts := []geom.Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 2}}
	net, err := Build(pts, [][2]int{{0, 1}, {1, 2}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got [][2]geom.Point
	for a, b := range net.SegmentPositions() {
		got = append(got, [2]geom.Point{a, b})
	}
	want := [][2]geom.Point{{pts[0], pts[1]}, {pts[1], pts[2]}}
	if len(got) != len(want) {
		t.Fatalf("Expected %d pairs, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("pair %d = %v, want %v", i, got[i], want[i])
		}
	}

	b := net.Bounds()
	if b.Center != geom.Pt(2, 1) || b.W != 4 || b.H != 2 {
		t.Errorf("Expected bounds centered (2,1) 4x2, got %+v", b)
	}

	if _, ok := net.Intersection(3); ok {
		t.Error("Expected handle 3 to be missing")
	}
	if in, ok := net.Intersection(2); !ok || in.Pos != pts[2] || in.ID != 2 {
		t.Errorf("Expected intersection 2 at %v, got %+v ok=%v", pts[2], in, ok)
	}
}
