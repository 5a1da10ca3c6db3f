package building

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/wayfind/grid"
)

// NewFloor validates and assembles a floor. The grid must be rectangular
// with known cell codes; every room must sit in bounds and declare this
// floor's number; every special location must sit in bounds.
// Connectivity regions are computed once here.
func NewFloor(number int, name string, values [][]int, rooms []Room, specials map[string]grid.Cell) (*Floor, error) {
	g, err := grid.New(values)
	if err != nil {
		return nil, fmt.Errorf("%w: floor %d: %w", ErrInvalidBuilding, number, err)
	}
	for _, r := range rooms {
		if r.ID == "" {
			return nil, fmt.Errorf("%w: floor %d: room %q has no id", ErrInvalidBuilding, number, r.Name)
		}
		if r.Floor != number {
			return nil, fmt.Errorf("%w: room %q declares floor %d but is listed on floor %d",
				ErrInvalidBuilding, r.ID, r.Floor, number)
		}
		if !g.InBounds(r.Position) {
			return nil, fmt.Errorf("%w: room %q position %v outside %dx%d grid",
				ErrInvalidBuilding, r.ID, r.Position, g.Rows(), g.Cols())
		}
	}
	locs := make(map[string]grid.Cell, len(specials))
	for name, c := range specials {
		if !g.InBounds(c) {
			return nil, fmt.Errorf("%w: floor %d: special location %q at %v outside grid",
				ErrInvalidBuilding, number, name, c)
		}
		locs[name] = c
	}

	return &Floor{
		Number:           number,
		Name:             name,
		Grid:             g,
		Rooms:            append([]Room(nil), rooms...),
		SpecialLocations: locs,
		regions:          grid.NewRegions(g),
	}, nil
}

// NewBuilding validates floor-number and room-id uniqueness and assembles a
// building. Floors keep the given order.
func NewBuilding(id, name, description string, floors ...*Floor) (*Building, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: building %q has no id", ErrInvalidBuilding, name)
	}
	numbers := make(map[int]struct{}, len(floors))
	roomIDs := make(map[string]int)
	for _, f := range floors {
		if _, dup := numbers[f.Number]; dup {
			return nil, fmt.Errorf("%w: building %q: duplicate floor number %d", ErrInvalidBuilding, id, f.Number)
		}
		numbers[f.Number] = struct{}{}
		for _, r := range f.Rooms {
			if prev, dup := roomIDs[r.ID]; dup {
				return nil, fmt.Errorf("%w: building %q: room id %q on floors %d and %d",
					ErrInvalidBuilding, id, r.ID, prev, f.Number)
			}
			roomIDs[r.ID] = f.Number
		}
	}

	return &Building{ID: id, Name: name, Description: description, Floors: floors}, nil
}

//----------------------------------------------------------------------------//
// Floor lookup
//----------------------------------------------------------------------------//

// Floor returns the floor with the given number.
func (b *Building) Floor(number int) (*Floor, bool) {
	for _, f := range b.Floors {
		if f.Number == number {
			return f, true
		}
	}
	return nil, false
}

// GridFor returns the walkability grid of the floor with the given number.
// A missing floor is reported as (nil, false), never as an error.
func (b *Building) GridFor(number int) (*grid.Grid, bool) {
	f, ok := b.Floor(number)
	if !ok {
		return nil, false
	}
	return f.Grid, true
}

// FloorNumbers returns the floor numbers in declaration order.
func (b *Building) FloorNumbers() []int {
	out := make([]int, len(b.Floors))
	for i, f := range b.Floors {
		out[i] = f.Number
	}
	return out
}

//----------------------------------------------------------------------------//
// Room index
//----------------------------------------------------------------------------//

// FindRoom returns the room with the given id from any floor.
func (b *Building) FindRoom(id string) (Room, bool) {
	for _, f := range b.Floors {
		for _, r := range f.Rooms {
			if r.ID == id {
				return r, true
			}
		}
	}
	return Room{}, false
}

// SearchRooms returns every room whose name, type or department contains
// query, ignoring case. Results follow floor then room declaration order.
// Rooms without a department never match on it. An empty query matches
// every room.
func (b *Building) SearchRooms(query string) []Room {
	q := strings.ToLower(query)
	out := []Room{}
	for _, f := range b.Floors {
		for _, r := range f.Rooms {
			if r.Matches(q) {
				out = append(out, r)
			}
		}
	}
	return out
}

// Matches reports whether the lowercase query q occurs in the room's name,
// type or department.
func (r Room) Matches(q string) bool {
	if strings.Contains(strings.ToLower(r.Name), q) || strings.Contains(strings.ToLower(r.Type), q) {
		return true
	}
	return r.Department != "" && strings.Contains(strings.ToLower(r.Department), q)
}

// RoomCount returns the number of rooms across all floors.
func (b *Building) RoomCount() int {
	n := 0
	for _, f := range b.Floors {
		n += len(f.Rooms)
	}
	return n
}

//----------------------------------------------------------------------------//
// Floor queries
//----------------------------------------------------------------------------//

// Regions returns the floor's precomputed connectivity labeling.
func (f *Floor) Regions() *grid.Regions {
	if f.regions == nil {
		// Floors built by hand rather than through NewFloor.
		return grid.NewRegions(f.Grid)
	}
	return f.regions
}

// RoomAt returns the first room positioned at c.
func (f *Floor) RoomAt(c grid.Cell) (Room, bool) {
	for _, r := range f.Rooms {
		if r.Position == c {
			return r, true
		}
	}
	return Room{}, false
}

// Location returns the cell of a named special location.
func (f *Floor) Location(name string) (grid.Cell, bool) {
	c, ok := f.SpecialLocations[name]
	return c, ok
}

// LocationAt returns the name of a special location at c. When several
// share the cell, the alphabetically first name wins.
func (f *Floor) LocationAt(c grid.Cell) (string, bool) {
	var names []string
	for name, at := range f.SpecialLocations {
		if at == c {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return "", false
	}
	sort.Strings(names)
	return names[0], true
}

// LocationNames returns the special-location names in sorted order.
func (f *Floor) LocationNames() []string {
	names := make([]string, 0, len(f.SpecialLocations))
	for name := range f.SpecialLocations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
