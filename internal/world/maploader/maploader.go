// Package maploader reads the road map and house layout and builds the
// runtime world from them.
package maploader

import (
	"encoding/json"
	"fmt"
	"os"

	"chosenoffset.com/paperboy/internal/core/geom"
	"chosenoffset.com/paperboy/internal/delivery"
	"chosenoffset.com/paperboy/internal/world/roads"
)

// Vec is a JSON 2D coordinate.
type Vec struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (v Vec) point() geom.Point {
	return geom.Point{X: v.X, Y: v.Y}
}

// IntersectionData is an authored road node in grid units.
type IntersectionData struct {
	Name string  `json:"name,omitempty"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

// MapData represents the map file
type MapData struct {
	Name string `json:"name"`

	// Road grid units are converted to world space as
	// origin + (x*scale, -y*scale); grid y grows downward.
	RoadScale  float64 `json:"road_scale"`
	RoadOrigin Vec     `json:"road_origin"`

	Intersections []IntersectionData `json:"intersections"`
	Edges         [][2]int           `json:"edges"` // Index pairs into Intersections

	HouseSize    Vec   `json:"house_size"`
	Houses       []Vec `json:"houses"` // World-space centers
	CourierStart Vec   `json:"courier_start"`
}

// Map is a loaded map with its runtime structures
type Map struct {
	Data   *MapData
	Roads  *roads.Network
	Houses []delivery.House
}

// LoadMap loads a map from a JSON file
func LoadMap(mapPath string) (*Map, error) {
	data, err := os.ReadFile(mapPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read map file %s: %w", mapPath, err)
	}

	var mapData MapData
	if err := json.Unmarshal(data, &mapData); err != nil {
		return nil, fmt.Errorf("failed to parse map file %s: %w", mapPath, err)
	}

	m, err := Build(&mapData)
	if err != nil {
		return nil, fmt.Errorf("invalid map data in %s: %w", mapPath, err)
	}
	return m, nil
}

// Build validates data and constructs the road network and houses.
func Build(data *MapData) (*Map, error) {
	if err := validateMapData(data); err != nil {
		return nil, err
	}

	pts := make([]geom.Point, len(data.Intersections))
	for i, in := range data.Intersections {
		pts[i] = data.RoadToWorld(in.X, in.Y)
	}

	net, err := roads.Build(pts, data.Edges)
	if err != nil {
		return nil, fmt.Errorf("failed to build road network: %w", err)
	}

	size := data.HouseSize.point()
	if size.X <= 0 || size.Y <= 0 {
		size = delivery.DefaultHouseSize
	}
	positions := make([]geom.Point, len(data.Houses))
	for i, h := range data.Houses {
		positions[i] = h.point()
	}

	return &Map{
		Data:   data,
		Roads:  net,
		Houses: delivery.NewHouses(positions, size),
	}, nil
}

// validateMapData checks if the map data is valid
func validateMapData(data *MapData) error {
	if data.RoadScale <= 0 {
		return fmt.Errorf("invalid road scale: %v", data.RoadScale)
	}
	if len(data.Intersections) == 0 {
		return fmt.Errorf("map has no intersections")
	}
	return nil
}

// RoadToWorld converts authored grid units to world space.
func (d *MapData) RoadToWorld(x, y float64) geom.Point {
	return geom.Point{
		X: d.RoadOrigin.X + x*d.RoadScale,
		Y: d.RoadOrigin.Y - y*d.RoadScale,
	}
}

// CourierStartPoint returns where the courier is placed at startup.
func (m *Map) CourierStartPoint() geom.Point {
	return m.Data.CourierStart.point()
}
