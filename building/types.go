package building

import (
	"errors"

	"github.com/katalvlaran/wayfind/grid"
)

// Sentinel errors for loading and validating building data.
var (
	// ErrInvalidBuilding wraps every schema or consistency violation found
	// while loading a building.
	ErrInvalidBuilding = errors.New("building: invalid building definition")

	// ErrUnsupportedFormat indicates a file extension with no decoder.
	ErrUnsupportedFormat = errors.New("building: unsupported file format")

	// ErrDuplicateBuilding indicates two buildings sharing one id in a Catalog.
	ErrDuplicateBuilding = errors.New("building: duplicate building id")

	// ErrUnknownBuilding indicates a catalog default that names no building.
	ErrUnknownBuilding = errors.New("building: unknown building id")
)

// Room is a named destination on a floor.
type Room struct {
	ID         string
	Name       string
	Type       string
	Floor      int
	Position   grid.Cell
	Department string // empty when the source omits it
	Accessible bool
	Amenities  []string
}

// Floor is one storey of a building.
type Floor struct {
	Number           int
	Name             string
	Grid             *grid.Grid
	Rooms            []Room
	SpecialLocations map[string]grid.Cell

	regions *grid.Regions
}

// Building is an ordered list of floors plus identifying metadata.
type Building struct {
	ID          string
	Name        string
	Description string
	Floors      []*Floor
}
