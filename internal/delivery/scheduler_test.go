package delivery

import (
	"math/rand"
	"testing"

	"chosenoffset.com/paperboy/internal/core/geom"
)

// scriptedSource replays fixed values so expiry outcomes are predictable.
type scriptedSource struct {
	floats []float64
	ints   []int
	intnN  []int
}

func (s *scriptedSource) Float64() float64 {
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func (s *scriptedSource) Intn(n int) int {
	s.intnN = append(s.intnN, n)
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v
}

func testHouses(n int) []House {
	pts := make([]geom.Point, n)
	for i := range pts {
		pts[i] = geom.Pt(float64(i)*50, 0)
	}
	return NewHouses(pts, DefaultHouseSize)
}

func TestNewSchedulerRejectsNonPositiveBase(t *testing.T) {
	for _, base := range []float64{0, -1} {
		if _, err := NewScheduler(base); err == nil {
			t.Errorf("Expected error for base %v", base)
		}
	}
}

func TestTickBeforeExpiry(t *testing.T) {
	s, _ := NewScheduler(2)
	houses := testHouses(3)
	rng := &scriptedSource{}

	if s.Tick(0.5, houses, rng) {
		t.Fatal("Expected no expiry after 0.5s of 2s")
	}
	if s.Elapsed() != 0.5 {
		t.Errorf("Expected elapsed 0.5, got %v", s.Elapsed())
	}
	if s.Remaining() != 1.5 {
		t.Errorf("Expected remaining 1.5, got %v", s.Remaining())
	}
	if ActiveCount(houses) != 0 {
		t.Errorf("Expected no active houses, got %d", ActiveCount(houses))
	}
}

func TestTickExpiryActivatesOneHouse(t *testing.T) {
	s, _ := NewScheduler(2)
	houses := testHouses(4)
	rng := &scriptedSource{floats: []float64{0.25}, ints: []int{2}}

	var activated []int
	s.OnActivate = func(i int, h *House) {
		activated = append(activated, i)
		if !h.Active {
			t.Error("Expected callback to see an active house")
		}
	}

	if !s.Tick(2, houses, rng) {
		t.Fatal("Expected expiry when dt equals duration")
	}
	if s.Elapsed() != 0 {
		t.Errorf("Expected elapsed reset to 0, got %v", s.Elapsed())
	}
	if s.Duration() != 1.0 {
		t.Errorf("Expected duration 2*(0.25*2)=1.0, got %v", s.Duration())
	}
	if len(rng.intnN) != 1 || rng.intnN[0] != 4 {
		t.Errorf("Expected Intn(4), got %v", rng.intnN)
	}
	for i, h := range houses {
		if h.Active != (i == 2) {
			t.Errorf("house %d active=%v", i, h.Active)
		}
	}
	if len(activated) != 1 || activated[0] != 2 {
		t.Errorf("Expected OnActivate(2), got %v", activated)
	}
}

func TestTickReactivationIsIdempotent(t *testing.T) {
	s, _ := NewScheduler(1)
	houses := testHouses(2)
	rng := &scriptedSource{floats: []float64{0.5, 0.5}, ints: []int{1, 1}}

	s.Tick(1, houses, rng)
	s.Tick(1, houses, rng)

	if ActiveCount(houses) != 1 || !houses[1].Active {
		t.Errorf("Expected only house 1 active, got %+v", houses)
	}
}

func TestTickEmptyHouses(t *testing.T) {
	base, r := 3.0, 0.1
	s, _ := NewScheduler(base)
	rng := &scriptedSource{floats: []float64{r}}

	if !s.Tick(5, nil, rng) {
		t.Fatal("Expected expiry with empty house set")
	}
	if s.Elapsed() != 0 {
		t.Errorf("Expected elapsed reset, got %v", s.Elapsed())
	}
	if got, want := s.Duration(), base*(r*2); got != want {
		t.Errorf("Expected duration %v, got %v", want, got)
	}
	if len(rng.intnN) != 0 {
		t.Errorf("Expected no house selection, got Intn calls %v", rng.intnN)
	}
}

func TestTickNegativeDeltaIgnored(t *testing.T) {
	s, _ := NewScheduler(2)
	rng := &scriptedSource{}

	if s.Tick(-0.5, nil, rng) {
		t.Fatal("Expected no expiry for negative dt")
	}
	if s.Elapsed() != 0 {
		t.Errorf("Expected elapsed to stay 0, got %v", s.Elapsed())
	}
	s.Tick(0.5, nil, rng)
	if s.Elapsed() != 0.5 {
		t.Errorf("Expected elapsed 0.5, got %v", s.Elapsed())
	}
}

func TestTickZeroDurationReexpires(t *testing.T) {
	s, _ := NewScheduler(1)
	houses := testHouses(1)
	rng := &scriptedSource{floats: []float64{0, 0.5}, ints: []int{0, 0}}

	if !s.Tick(1, houses, rng) {
		t.Fatal("Expected first expiry")
	}
	if s.Duration() != 0 {
		t.Fatalf("Expected zero duration, got %v", s.Duration())
	}
	if !s.Tick(0, houses, rng) {
		t.Error("Expected zero duration to expire on the next tick")
	}
}

func TestTickResampledDurationRange(t *testing.T) {
	const base = 4.0
	s, _ := NewScheduler(base)
	houses := testHouses(6)
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 500; i++ {
		if !s.Tick(s.Duration(), houses, rng) {
			t.Fatalf("iteration %d: expected expiry", i)
		}
		if d := s.Duration(); d < 0 || d >= 2*base {
			t.Fatalf("iteration %d: duration %v outside [0, %v)", i, d, 2*base)
		}
	}
	if ActiveCount(houses) == 0 {
		t.Error("Expected at least one active house after 500 expiries")
	}
}

func TestTickDeterministicWithSeed(t *testing.T) {
	run := func() []bool {
		s, _ := NewScheduler(1)
		houses := testHouses(6)
		rng := rand.New(rand.NewSource(7))
		for i := 0; i < 3; i++ {
			s.Tick(2, houses, rng)
		}
		out := make([]bool, len(houses))
		for i, h := range houses {
			out[i] = h.Active
		}
		return out
	}

	a, b := run(), run()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("Expected identical runs, got %v and %v", a, b)
		}
	}
}
