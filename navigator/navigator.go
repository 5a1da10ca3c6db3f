package navigator

import (
	"fmt"

	"github.com/katalvlaran/wayfind/building"
	"github.com/katalvlaran/wayfind/directions"
	"github.com/katalvlaran/wayfind/grid"
	"github.com/katalvlaran/wayfind/pathsearch"
)

// Navigator answers routing and room queries against a fixed catalog.
type Navigator struct {
	catalog *building.Catalog
	search  []pathsearch.Option
}

// New returns a Navigator over catalog.
func New(catalog *building.Catalog, opts ...Option) *Navigator {
	n := &Navigator{catalog: catalog}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Catalog returns the underlying catalog.
func (n *Navigator) Catalog() *building.Catalog { return n.catalog }

//----------------------------------------------------------------------------//
// Routing
//----------------------------------------------------------------------------//

// Route validates req and searches for a path. A missing route is reported
// through Route.Found, not through the error.
func (n *Navigator) Route(req RouteRequest) (Route, error) {
	b, f, start, end, err := n.resolve(req)
	if err != nil {
		return Route{}, err
	}
	return n.route(b, f, start, end, req.Mode), nil
}

// Directions routes like Route and describes the result in sentences.
// Endpoint names come from StartRoom/EndRoom when set (ErrNotFound if the
// room does not exist), else from the room or special location at the cell,
// else from the cell coordinates.
func (n *Navigator) Directions(req DirectionsRequest) (Directions, error) {
	b, f, start, end, err := n.resolve(req.RouteRequest)
	if err != nil {
		return Directions{}, err
	}
	startName, err := endpointName(b, f, req.StartRoom, start)
	if err != nil {
		return Directions{}, err
	}
	endName, err := endpointName(b, f, req.EndRoom, end)
	if err != nil {
		return Directions{}, err
	}
	return describe(n.route(b, f, start, end, req.Mode), startName, endName), nil
}

// RouteRooms routes between two rooms of one building by id. Rooms on
// different floors are rejected with ErrInvalidInput; routing across floors
// is not supported.
func (n *Navigator) RouteRooms(buildingID, fromID, toID string, mode pathsearch.Mode) (Directions, error) {
	if err := checkMode(mode); err != nil {
		return Directions{}, err
	}
	b, err := n.building(buildingID)
	if err != nil {
		return Directions{}, err
	}
	from, ok := b.FindRoom(fromID)
	if !ok {
		return Directions{}, fmt.Errorf("%w: room %q in building %q", ErrNotFound, fromID, b.ID)
	}
	to, ok := b.FindRoom(toID)
	if !ok {
		return Directions{}, fmt.Errorf("%w: room %q in building %q", ErrNotFound, toID, b.ID)
	}
	if from.Floor != to.Floor {
		return Directions{}, fmt.Errorf("%w: rooms %q (floor %d) and %q (floor %d) are on different floors",
			ErrInvalidInput, from.ID, from.Floor, to.ID, to.Floor)
	}
	f, ok := b.Floor(from.Floor)
	if !ok {
		return Directions{}, fmt.Errorf("%w: floor %d in building %q", ErrNotFound, from.Floor, b.ID)
	}
	return describe(n.route(b, f, from.Position, to.Position, mode), from.Name, to.Name), nil
}

// Reach returns the minimum number of steps between the request's cells,
// ignoring cost modes, or pathsearch.Unreachable.
func (n *Navigator) Reach(req RouteRequest) (int, error) {
	_, f, start, end, err := n.resolve(req)
	if err != nil {
		return 0, err
	}
	if !f.Regions().Connected(start, end) {
		return pathsearch.Unreachable, nil
	}
	return pathsearch.ShortestSteps(f.Grid, start, end), nil
}

// route runs the search. Endpoints in different regions (or on walls) are
// answered without searching.
func (n *Navigator) route(b *building.Building, f *building.Floor, start, end grid.Cell, mode pathsearch.Mode) Route {
	r := Route{BuildingID: b.ID, Floor: f.Number, Mode: mode, Path: pathsearch.Path{}}
	if !f.Regions().Connected(start, end) {
		return r
	}
	opts := append([]pathsearch.Option{pathsearch.WithMode(mode)}, n.search...)
	r.Path = pathsearch.FindPath(f.Grid, start, end, opts...)
	r.Length = len(r.Path)
	r.Found = len(r.Path) > 0
	if r.Found {
		r.Cost = pathsearch.Cost(f.Grid, r.Path, opts...)
	}
	return r
}

func describe(r Route, startName, endName string) Directions {
	d := Directions{Route: r, StartName: startName, EndName: endName, Instructions: directions.Instructions{}}
	if r.Found {
		d.Instructions = directions.Generate(r.Path, startName, endName)
	}
	return d
}

//----------------------------------------------------------------------------//
// Rooms and floors
//----------------------------------------------------------------------------//

// Room returns a room by id.
func (n *Navigator) Room(buildingID, id string) (building.Room, error) {
	b, err := n.building(buildingID)
	if err != nil {
		return building.Room{}, err
	}
	r, ok := b.FindRoom(id)
	if !ok {
		return building.Room{}, fmt.Errorf("%w: room %q in building %q", ErrNotFound, id, b.ID)
	}
	return r, nil
}

// Search returns the rooms matching query in declaration order.
func (n *Navigator) Search(buildingID, query string) ([]building.Room, error) {
	b, err := n.building(buildingID)
	if err != nil {
		return nil, err
	}
	return b.SearchRooms(query), nil
}

// Floor returns one floor of a building.
func (n *Navigator) Floor(buildingID string, number int) (*building.Floor, error) {
	b, err := n.building(buildingID)
	if err != nil {
		return nil, err
	}
	f, ok := b.Floor(number)
	if !ok {
		return nil, fmt.Errorf("%w: floor %d in building %q", ErrNotFound, number, b.ID)
	}
	return f, nil
}

// Floors summarises the floors of a building in declaration order.
func (n *Navigator) Floors(buildingID string) ([]FloorSummary, error) {
	b, err := n.building(buildingID)
	if err != nil {
		return nil, err
	}
	out := make([]FloorSummary, len(b.Floors))
	for i, f := range b.Floors {
		out[i] = FloorSummary{
			Number: f.Number,
			Name:   f.Name,
			Rows:   f.Grid.Rows(),
			Cols:   f.Grid.Cols(),
			Rooms:  len(f.Rooms),
		}
	}
	return out, nil
}

// Buildings summarises every building in catalog order.
func (n *Navigator) Buildings() []BuildingSummary {
	bs := n.catalog.Buildings()
	out := make([]BuildingSummary, len(bs))
	for i, b := range bs {
		out[i] = BuildingSummary{
			ID:          b.ID,
			Name:        b.Name,
			Description: b.Description,
			Floors:      len(b.Floors),
			Rooms:       b.RoomCount(),
			Default:     b.ID == n.catalog.DefaultID(),
		}
	}
	return out
}

//----------------------------------------------------------------------------//
// Validation
//----------------------------------------------------------------------------//

func (n *Navigator) building(id string) (*building.Building, error) {
	b, ok := n.catalog.Resolve(id)
	if !ok {
		if id == "" {
			return nil, fmt.Errorf("%w: no default building", ErrNotFound)
		}
		return nil, fmt.Errorf("%w: building %q", ErrNotFound, id)
	}
	return b, nil
}

// resolve validates a route request: mode, coordinate shape, building,
// floor and bounds, in that order.
func (n *Navigator) resolve(req RouteRequest) (*building.Building, *building.Floor, grid.Cell, grid.Cell, error) {
	var zero grid.Cell
	if err := checkMode(req.Mode); err != nil {
		return nil, nil, zero, zero, err
	}
	start, err := ParseCell(req.Start)
	if err != nil {
		return nil, nil, zero, zero, fmt.Errorf("start: %w", err)
	}
	end, err := ParseCell(req.End)
	if err != nil {
		return nil, nil, zero, zero, fmt.Errorf("end: %w", err)
	}
	b, err := n.building(req.BuildingID)
	if err != nil {
		return nil, nil, zero, zero, err
	}
	f, ok := b.Floor(req.Floor)
	if !ok {
		return nil, nil, zero, zero, fmt.Errorf("%w: floor %d in building %q", ErrNotFound, req.Floor, b.ID)
	}
	for _, c := range []grid.Cell{start, end} {
		if !f.Grid.InBounds(c) {
			return nil, nil, zero, zero, fmt.Errorf("%w: cell %v outside %dx%d floor %d",
				ErrInvalidInput, c, f.Grid.Rows(), f.Grid.Cols(), f.Number)
		}
	}
	return b, f, start, end, nil
}

// ParseCell converts a boundary [row, col] pair into a Cell. It requires
// exactly two non-negative values.
func ParseCell(pair []int) (grid.Cell, error) {
	if len(pair) != 2 {
		return grid.Cell{}, fmt.Errorf("%w: coordinate must be [row, col], got %d values", ErrInvalidInput, len(pair))
	}
	if pair[0] < 0 || pair[1] < 0 {
		return grid.Cell{}, fmt.Errorf("%w: coordinate %v has a negative component", ErrInvalidInput, pair)
	}
	return grid.At(pair[0], pair[1]), nil
}

func checkMode(m pathsearch.Mode) error {
	if m != pathsearch.Standard && m != pathsearch.Accessible {
		return fmt.Errorf("%w: %v", ErrInvalidInput, m)
	}
	return nil
}

func endpointName(b *building.Building, f *building.Floor, roomID string, c grid.Cell) (string, error) {
	if roomID != "" {
		r, ok := b.FindRoom(roomID)
		if !ok {
			return "", fmt.Errorf("%w: room %q in building %q", ErrNotFound, roomID, b.ID)
		}
		return r.Name, nil
	}
	if r, ok := f.RoomAt(c); ok {
		return r.Name, nil
	}
	if name, ok := f.LocationAt(c); ok {
		return name, nil
	}
	return c.String(), nil
}
