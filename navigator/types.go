package navigator

import (
	"github.com/katalvlaran/wayfind/directions"
	"github.com/katalvlaran/wayfind/pathsearch"
)

// RouteRequest asks for a path between two cells on one floor.
// Start and End are boundary-form [row, col] pairs.
// An empty BuildingID selects the catalog's default building.
type RouteRequest struct {
	BuildingID string
	Floor      int
	Start      []int
	End        []int
	Mode       pathsearch.Mode
}

// DirectionsRequest is a RouteRequest plus optional room ids naming the
// endpoints. Without a room id the endpoint is named after the room or
// special location at its cell, or after the cell itself.
type DirectionsRequest struct {
	RouteRequest
	StartRoom string
	EndRoom   string
}

// Route is the outcome of a path request.
type Route struct {
	BuildingID string          `json:"building"`
	Floor      int             `json:"floor"`
	Mode       pathsearch.Mode `json:"mode"`
	Path       pathsearch.Path `json:"path"`
	Length     int             `json:"length"`
	Cost       int             `json:"cost"`
	Found      bool            `json:"found"`
}

// Directions is a Route with named endpoints and instructions.
// Instructions is empty when no route was found.
type Directions struct {
	Route
	StartName    string                  `json:"startName"`
	EndName      string                  `json:"endName"`
	Instructions directions.Instructions `json:"instructions"`
}

// FloorSummary describes a floor without its grid.
type FloorSummary struct {
	Number int    `json:"number"`
	Name   string `json:"name"`
	Rows   int    `json:"rows"`
	Cols   int    `json:"cols"`
	Rooms  int    `json:"rooms"`
}

// BuildingSummary describes a building without its floors.
type BuildingSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Floors      int    `json:"floors"`
	Rooms       int    `json:"rooms"`
	Default     bool   `json:"default"`
}

// Option configures a Navigator.
type Option func(*Navigator)

// WithStairsPenalty overrides the accessible-mode stairs surcharge.
// Panics on a negative value.
func WithStairsPenalty(p int) Option {
	if p < 0 {
		panic(pathsearch.ErrBadStairsPenalty.Error())
	}
	return func(n *Navigator) {
		n.search = append(n.search, pathsearch.WithStairsPenalty(p))
	}
}

// WithMaxExpansions caps search effort per request; 0 means unlimited.
// Panics on a negative value.
func WithMaxExpansions(max int) Option {
	if max < 0 {
		panic(pathsearch.ErrBadMaxExpansions.Error())
	}
	return func(n *Navigator) {
		n.search = append(n.search, pathsearch.WithMaxExpansions(max))
	}
}
