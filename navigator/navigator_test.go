package navigator_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/wayfind/building"
	"github.com/katalvlaran/wayfind/directions"
	"github.com/katalvlaran/wayfind/grid"
	"github.com/katalvlaran/wayfind/navigator"
	"github.com/katalvlaran/wayfind/pathsearch"
)

// NavigatorSuite runs facade checks against the campus fixture, the built-in
// fallback building and a split floor with two disconnected halves.
type NavigatorSuite struct {
	suite.Suite
	nav *navigator.Navigator
}

func (s *NavigatorSuite) SetupSuite() {
	campus, err := building.LoadFile("../building/testdata/campus.json")
	s.Require().NoError(err)

	split, err := building.NewFloor(1, "Split", [][]int{
		{0, 1, 0},
		{0, 1, 0},
	}, []building.Room{
		{ID: "W", Name: "West Wing", Type: "hall", Floor: 1, Position: grid.At(0, 0)},
		{ID: "E", Name: "East Wing", Type: "hall", Floor: 1, Position: grid.At(0, 2)},
	}, nil)
	s.Require().NoError(err)
	annex, err := building.NewBuilding("annex", "Annex", "", split)
	s.Require().NoError(err)

	cat, err := building.NewCatalog("main", campus, building.Fallback(), annex)
	s.Require().NoError(err)
	s.nav = navigator.New(cat)
}

func TestNavigatorSuite(t *testing.T) {
	suite.Run(t, new(NavigatorSuite))
}

//----------------------------------------------------------------------------//
// Route
//----------------------------------------------------------------------------//

func (s *NavigatorSuite) TestRoute_FallbackScenario() {
	r, err := s.nav.Route(navigator.RouteRequest{
		BuildingID: building.FallbackID, Floor: 1,
		Start: []int{0, 0}, End: []int{4, 5},
	})
	s.Require().NoError(err)
	s.True(r.Found)
	s.Equal(16, r.Length)
	s.Equal(15, r.Cost)
	s.Equal(building.FallbackID, r.BuildingID)
	s.Equal(grid.At(0, 0), r.Path[0])
	s.Equal(grid.At(4, 5), r.Path[15])

	acc, err := s.nav.Route(navigator.RouteRequest{
		BuildingID: building.FallbackID, Floor: 1,
		Start: []int{0, 0}, End: []int{4, 5}, Mode: pathsearch.Accessible,
	})
	s.Require().NoError(err)
	s.Equal(r.Path, acc.Path)
	s.Equal(pathsearch.Accessible, acc.Mode)
}

// TestRoute_AccessibleDetour uses the default building: the stairs at (2,2)
// sit between (2,1) and (2,3).
func (s *NavigatorSuite) TestRoute_AccessibleDetour() {
	req := navigator.RouteRequest{Floor: 1, Start: []int{2, 1}, End: []int{2, 3}}
	std, err := s.nav.Route(req)
	s.Require().NoError(err)
	s.Equal("main", std.BuildingID)
	s.Equal(3, std.Length)
	s.Equal(2, std.Cost)

	req.Mode = pathsearch.Accessible
	acc, err := s.nav.Route(req)
	s.Require().NoError(err)
	s.Equal(9, acc.Length)
	s.Equal(8, acc.Cost)
	f, _ := s.nav.Floor("main", 1)
	for _, c := range acc.Path {
		s.NotEqual(grid.Stairs, f.Grid.TypeAt(c), "accessible route climbs stairs at %v", c)
	}
}

func (s *NavigatorSuite) TestRoute_NoPathIsNotAnError() {
	cases := []struct {
		name string
		req  navigator.RouteRequest
	}{
		{"Disconnected", navigator.RouteRequest{BuildingID: "annex", Floor: 1, Start: []int{0, 0}, End: []int{1, 2}}},
		{"WallStart", navigator.RouteRequest{BuildingID: "annex", Floor: 1, Start: []int{0, 1}, End: []int{1, 0}}},
		{"WallEnd", navigator.RouteRequest{BuildingID: building.FallbackID, Floor: 1, Start: []int{0, 0}, End: []int{1, 1}}},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			r, err := s.nav.Route(tc.req)
			s.Require().NoError(err)
			s.False(r.Found)
			s.Empty(r.Path)
			s.NotNil(r.Path)
			s.Zero(r.Length)
		})
	}
}

func (s *NavigatorSuite) TestRoute_InvalidInput() {
	cases := []struct {
		name string
		req  navigator.RouteRequest
	}{
		{"ShortStart", navigator.RouteRequest{Floor: 1, Start: []int{1}, End: []int{0, 0}}},
		{"LongEnd", navigator.RouteRequest{Floor: 1, Start: []int{0, 0}, End: []int{0, 0, 0}}},
		{"NilStart", navigator.RouteRequest{Floor: 1, End: []int{0, 0}}},
		{"Negative", navigator.RouteRequest{Floor: 1, Start: []int{-1, 0}, End: []int{0, 0}}},
		{"OutOfBounds", navigator.RouteRequest{Floor: 1, Start: []int{0, 0}, End: []int{5, 0}}},
		{"OutOfBoundsCol", navigator.RouteRequest{Floor: 1, Start: []int{0, 7}, End: []int{0, 0}}},
		{"BadMode", navigator.RouteRequest{Floor: 1, Start: []int{0, 0}, End: []int{0, 1}, Mode: pathsearch.Mode(9)}},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			_, err := s.nav.Route(tc.req)
			s.Require().ErrorIs(err, navigator.ErrInvalidInput)
			s.False(errors.Is(err, navigator.ErrNotFound))
		})
	}
}

func (s *NavigatorSuite) TestRoute_NotFound() {
	_, err := s.nav.Route(navigator.RouteRequest{BuildingID: "nope", Floor: 1, Start: []int{0, 0}, End: []int{0, 0}})
	s.Require().ErrorIs(err, navigator.ErrNotFound)

	_, err = s.nav.Route(navigator.RouteRequest{Floor: 2, Start: []int{0, 0}, End: []int{0, 0}})
	s.Require().ErrorIs(err, navigator.ErrNotFound, "floor numbers are not indices")
	s.False(errors.Is(err, navigator.ErrInvalidInput))
}

func (s *NavigatorSuite) TestReach() {
	steps, err := s.nav.Reach(navigator.RouteRequest{
		BuildingID: building.FallbackID, Floor: 1, Start: []int{0, 0}, End: []int{4, 5},
	})
	s.Require().NoError(err)
	s.Equal(15, steps)

	steps, err = s.nav.Reach(navigator.RouteRequest{BuildingID: "annex", Floor: 1, Start: []int{0, 0}, End: []int{0, 2}})
	s.Require().NoError(err)
	s.Equal(pathsearch.Unreachable, steps)

	_, err = s.nav.Reach(navigator.RouteRequest{Floor: 1, Start: []int{0}, End: []int{0, 2}})
	s.Require().ErrorIs(err, navigator.ErrInvalidInput)
}

//----------------------------------------------------------------------------//
// Directions
//----------------------------------------------------------------------------//

func (s *NavigatorSuite) TestDirections_NamesFromRoomsAtCells() {
	d, err := s.nav.Directions(navigator.DirectionsRequest{
		RouteRequest: navigator.RouteRequest{BuildingID: building.FallbackID, Floor: 1, Start: []int{0, 0}, End: []int{0, 3}},
	})
	s.Require().NoError(err)
	want := directions.Instructions{"starting from Room 101", "move east for 3 steps", "arrived at Room 102"}
	if diff := cmp.Diff(want, d.Instructions); diff != "" {
		s.T().Errorf("instructions mismatch (-want +got):\n%s", diff)
	}
	s.Equal("Room 101", d.StartName)
	s.Equal("Room 102", d.EndName)
}

func (s *NavigatorSuite) TestDirections_NameSources() {
	d, err := s.nav.Directions(navigator.DirectionsRequest{
		RouteRequest: navigator.RouteRequest{Floor: 1, Start: []int{4, 0}, End: []int{2, 3}},
	})
	s.Require().NoError(err)
	s.Equal("entrance", d.StartName, "special location")
	s.Equal("(2,3)", d.EndName, "bare cell")

	d, err = s.nav.Directions(navigator.DirectionsRequest{
		RouteRequest: navigator.RouteRequest{Floor: 1, Start: []int{4, 0}, End: []int{2, 3}},
		StartRoom:    "LIB",
		EndRoom:      "CS-301",
	})
	s.Require().NoError(err)
	s.Equal("Library", d.StartName, "explicit room id wins over the cell")
	s.Equal("Faculty Office", d.EndName)
	s.Equal("starting from Library", d.Instructions[0])
	s.Equal("arrived at Faculty Office", d.Instructions[len(d.Instructions)-1])

	_, err = s.nav.Directions(navigator.DirectionsRequest{
		RouteRequest: navigator.RouteRequest{Floor: 1, Start: []int{4, 0}, End: []int{2, 3}},
		EndRoom:      "nope",
	})
	s.Require().ErrorIs(err, navigator.ErrNotFound)
}

func (s *NavigatorSuite) TestDirections_AlreadyThere() {
	d, err := s.nav.Directions(navigator.DirectionsRequest{
		RouteRequest: navigator.RouteRequest{Floor: 1, Start: []int{0, 0}, End: []int{0, 0}},
	})
	s.Require().NoError(err)
	s.True(d.Found)
	s.Equal(1, d.Length)
	s.Equal(directions.Instructions{directions.AlreadyThere}, d.Instructions)
}

func (s *NavigatorSuite) TestDirections_NoPath() {
	d, err := s.nav.Directions(navigator.DirectionsRequest{
		RouteRequest: navigator.RouteRequest{BuildingID: "annex", Floor: 1, Start: []int{0, 0}, End: []int{0, 2}},
	})
	s.Require().NoError(err)
	s.False(d.Found)
	s.Empty(d.Instructions)
	s.Equal("West Wing", d.StartName)
	s.Equal("East Wing", d.EndName)
}

func (s *NavigatorSuite) TestRouteRooms() {
	d, err := s.nav.RouteRooms("main", "CS-101", "ENG-102", pathsearch.Standard)
	s.Require().NoError(err)
	s.Equal(directions.Instructions{
		"starting from Computer Lab", "move east for 6 steps", "arrived at English Classroom",
	}, d.Instructions)
	s.Equal(1, d.Floor)

	_, err = s.nav.RouteRooms("main", "CS-101", "CS-301", pathsearch.Standard)
	s.Require().ErrorIs(err, navigator.ErrInvalidInput, "multi-floor routing is unsupported")

	_, err = s.nav.RouteRooms("main", "CS-101", "nope", pathsearch.Standard)
	s.Require().ErrorIs(err, navigator.ErrNotFound)

	_, err = s.nav.RouteRooms("main", "CS-101", "ENG-102", pathsearch.Mode(3))
	s.Require().ErrorIs(err, navigator.ErrInvalidInput)

	d, err = s.nav.RouteRooms("annex", "W", "E", pathsearch.Accessible)
	s.Require().NoError(err)
	s.False(d.Found)
}

//----------------------------------------------------------------------------//
// Rooms, floors, buildings
//----------------------------------------------------------------------------//

func (s *NavigatorSuite) TestRoomAndSearch() {
	r, err := s.nav.Room("", "ENG-102")
	s.Require().NoError(err)
	s.Equal("English Classroom", r.Name)

	_, err = s.nav.Room("main", "101")
	s.Require().ErrorIs(err, navigator.ErrNotFound, "rooms do not leak across buildings")

	r, err = s.nav.Room(building.FallbackID, "101")
	s.Require().NoError(err)
	s.Equal("Room 101", r.Name)

	rooms, err := s.nav.Search(building.FallbackID, "CLASS")
	s.Require().NoError(err)
	s.Len(rooms, 2)

	rooms, err = s.nav.Search("", "science")
	s.Require().NoError(err)
	s.Len(rooms, 2)

	_, err = s.nav.Search("nope", "x")
	s.Require().ErrorIs(err, navigator.ErrNotFound)
}

func (s *NavigatorSuite) TestFloorsAndBuildings() {
	floors, err := s.nav.Floors("main")
	s.Require().NoError(err)
	s.Equal([]navigator.FloorSummary{
		{Number: 1, Name: "Ground Floor", Rows: 5, Cols: 7, Rooms: 3},
		{Number: 3, Name: "Third Floor", Rows: 3, Cols: 3, Rooms: 2},
	}, floors)

	_, err = s.nav.Floors("nope")
	s.Require().ErrorIs(err, navigator.ErrNotFound)

	f, err := s.nav.Floor("", 3)
	s.Require().NoError(err)
	s.Equal("Third Floor", f.Name)
	_, err = s.nav.Floor("", 2)
	s.Require().ErrorIs(err, navigator.ErrNotFound)

	bs := s.nav.Buildings()
	s.Require().Len(bs, 3)
	s.Equal("main", bs[0].ID)
	s.True(bs[0].Default)
	s.Equal(5, bs[0].Rooms)
	s.False(bs[1].Default)
	s.Equal(building.FallbackID, bs[1].ID)
}

//----------------------------------------------------------------------------//
// Options and concurrency
//----------------------------------------------------------------------------//

func TestNavigator_StairsPenaltyOption(t *testing.T) {
	campus, err := building.LoadFile("../building/testdata/campus.json")
	require.NoError(t, err)
	cat, err := building.NewCatalog("", campus)
	require.NoError(t, err)

	// With no surcharge, accessible routing takes the stairs like standard.
	nav := navigator.New(cat, navigator.WithStairsPenalty(0))
	r, err := nav.Route(navigator.RouteRequest{Floor: 1, Start: []int{2, 1}, End: []int{2, 3}, Mode: pathsearch.Accessible})
	require.NoError(t, err)
	require.Equal(t, 3, r.Length)

	limited := navigator.New(cat, navigator.WithMaxExpansions(1))
	r, err = limited.Route(navigator.RouteRequest{Floor: 1, Start: []int{0, 0}, End: []int{4, 6}})
	require.NoError(t, err)
	require.False(t, r.Found)

	require.Panics(t, func() { navigator.WithStairsPenalty(-1) })
	require.Panics(t, func() { navigator.WithMaxExpansions(-1) })
}

func TestNavigator_EmptyCatalog(t *testing.T) {
	cat, err := building.NewCatalog("")
	require.NoError(t, err)
	nav := navigator.New(cat)
	_, err = nav.Route(navigator.RouteRequest{Floor: 1, Start: []int{0, 0}, End: []int{0, 0}})
	require.ErrorIs(t, err, navigator.ErrNotFound)
	require.Empty(t, nav.Buildings())
}

// TestNavigator_Concurrent issues simultaneous requests against one
// Navigator; run with -race.
func TestNavigator_Concurrent(t *testing.T) {
	cat, err := building.NewCatalog("", building.Fallback())
	require.NoError(t, err)
	nav := navigator.New(cat)

	var wg sync.WaitGroup
	results := make([]navigator.Route, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			mode := pathsearch.Standard
			if i%2 == 1 {
				mode = pathsearch.Accessible
			}
			r, err := nav.Route(navigator.RouteRequest{Floor: 1, Start: []int{0, 0}, End: []int{4, 5}, Mode: mode})
			if err != nil {
				t.Error(err)
				return
			}
			results[i] = r
		}(i)
	}
	wg.Wait()
	for _, r := range results {
		require.Equal(t, results[0].Path, r.Path)
	}
}

func TestParseCell(t *testing.T) {
	c, err := navigator.ParseCell([]int{3, 4})
	require.NoError(t, err)
	require.Equal(t, grid.At(3, 4), c)

	for _, bad := range [][]int{nil, {}, {1}, {1, 2, 3}, {-1, 0}, {0, -3}} {
		_, err := navigator.ParseCell(bad)
		require.ErrorIs(t, err, navigator.ErrInvalidInput, "%v", bad)
	}
}
