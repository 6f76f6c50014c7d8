package maploader

// DefaultMapData returns the built-in test town:
//
//	A--------G
//	|        |
//	B---H    F--I
//	|   |    |
//	C---D----E
//
// Every road is listed in both directions.
func DefaultMapData() *MapData {
	return &MapData{
		Name:       "test town",
		RoadScale:  40,
		RoadOrigin: Vec{X: -240, Y: 80},
		Intersections: []IntersectionData{
			{Name: "A", X: 0, Y: 0},
			{Name: "B", X: 0, Y: 2},
			{Name: "C", X: 0, Y: 4},
			{Name: "D", X: 4, Y: 4},
			{Name: "E", X: 9, Y: 4},
			{Name: "F", X: 9, Y: 2},
			{Name: "G", X: 9, Y: 0},
			{Name: "H", X: 4, Y: 2},
			{Name: "I", X: 12, Y: 2},
		},
		Edges: [][2]int{
			{0, 6}, // A-G
			{0, 1}, // A-B
			{1, 0}, // B-A
			{1, 2}, // B-C
			{1, 7}, // B-H
			{2, 1}, // C-B
			{2, 3}, // C-D
			{3, 2}, // D-C
			{3, 4}, // D-E
			{3, 7}, // D-H
			{4, 3}, // E-D
			{4, 5}, // E-F
			{5, 4}, // F-E
			{5, 6}, // F-G
			{5, 8}, // F-I
			{6, 0}, // G-A
			{6, 5}, // G-F
			{7, 1}, // H-B
			{7, 3}, // H-D
			{8, 5}, // I-F
		},
		HouseSize: Vec{X: 45, Y: 60},
		Houses: []Vec{
			{X: 100, Y: 115},
			{X: 45, Y: 115},
			{X: -10, Y: 115},
			{X: 100, Y: 45},
			{X: 45, Y: 45},
			{X: -10, Y: 45},
		},
		CourierStart: Vec{X: -240, Y: 80},
	}
}

// DefaultMap builds the built-in test town.
func DefaultMap() (*Map, error) {
	return Build(DefaultMapData())
}
