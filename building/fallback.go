package building

import "github.com/katalvlaran/wayfind/grid"

// FallbackID is the id of the built-in fallback building.
const FallbackID = "fallback"

// Fallback returns a small single-floor building used when no building
// files are configured.
//
//	0 0 0 0 1 0
//	1 1 1 0 1 0
//	0 0 0 0 0 0
//	0 1 1 1 1 1
//	0 0 0 0 0 0
func Fallback() *Building {
	rooms := []Room{
		{
			ID: "101", Name: "Room 101", Type: "classroom", Floor: 1,
			Position: grid.At(0, 0), Department: "General", Accessible: true, Amenities: []string{},
		},
		{
			ID: "102", Name: "Room 102", Type: "classroom", Floor: 1,
			Position: grid.At(0, 3), Department: "General", Accessible: true, Amenities: []string{},
		},
	}
	f, err := NewFloor(1, "Ground Floor", [][]int{
		{0, 0, 0, 0, 1, 0},
		{1, 1, 1, 0, 1, 0},
		{0, 0, 0, 0, 0, 0},
		{0, 1, 1, 1, 1, 1},
		{0, 0, 0, 0, 0, 0},
	}, rooms, nil)
	if err != nil {
		panic(err)
	}
	b, err := NewBuilding(FallbackID, "Fallback Building", "Simple building for testing", f)
	if err != nil {
		panic(err)
	}
	return b
}
