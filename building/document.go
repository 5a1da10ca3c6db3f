package building

import (
	"encoding/json"

	"github.com/katalvlaran/wayfind/grid"
)

// The *Doc types mirror the on-disk schema. They are decoded first and then
// validated into the in-memory model.

type buildingDoc struct {
	ID          string     `json:"id" yaml:"id" toml:"id"`
	Name        string     `json:"name" yaml:"name" toml:"name"`
	Description string     `json:"description,omitempty" yaml:"description" toml:"description"`
	Floors      []floorDoc `json:"floors" yaml:"floors" toml:"floors"`
}

type floorDoc struct {
	Number           int                    `json:"number" yaml:"number" toml:"number"`
	Name             string                 `json:"name" yaml:"name" toml:"name"`
	Grid             [][]int                `json:"grid" yaml:"grid" toml:"grid"`
	Rooms            []roomDoc              `json:"rooms" yaml:"rooms" toml:"rooms"`
	SpecialLocations map[string]positionDoc `json:"specialLocations" yaml:"specialLocations" toml:"specialLocations"`
}

type roomDoc struct {
	ID           string      `json:"id" yaml:"id" toml:"id"`
	Name         string      `json:"name" yaml:"name" toml:"name"`
	Type         string      `json:"type" yaml:"type" toml:"type"`
	Floor        int         `json:"floor" yaml:"floor" toml:"floor"`
	Position     positionDoc `json:"position" yaml:"position" toml:"position"`
	Department   string      `json:"department,omitempty" yaml:"department" toml:"department"`
	IsAccessible bool        `json:"isAccessible" yaml:"isAccessible" toml:"isAccessible"`
	Amenities    []string    `json:"amenities" yaml:"amenities" toml:"amenities"`
}

type positionDoc struct {
	Row int `json:"row" yaml:"row" toml:"row"`
	Col int `json:"col" yaml:"col" toml:"col"`
}

func (p positionDoc) cell() grid.Cell { return grid.At(p.Row, p.Col) }

func toPosition(c grid.Cell) positionDoc { return positionDoc{Row: c.Row, Col: c.Col} }

func (r Room) doc() roomDoc {
	amenities := r.Amenities
	if amenities == nil {
		amenities = []string{}
	}
	return roomDoc{
		ID:           r.ID,
		Name:         r.Name,
		Type:         r.Type,
		Floor:        r.Floor,
		Position:     toPosition(r.Position),
		Department:   r.Department,
		IsAccessible: r.Accessible,
		Amenities:    amenities,
	}
}

func (f *Floor) doc() floorDoc {
	rooms := make([]roomDoc, len(f.Rooms))
	for i, r := range f.Rooms {
		rooms[i] = r.doc()
	}
	specials := make(map[string]positionDoc, len(f.SpecialLocations))
	for name, c := range f.SpecialLocations {
		specials[name] = toPosition(c)
	}
	return floorDoc{
		Number:           f.Number,
		Name:             f.Name,
		Grid:             f.Grid.Values(),
		Rooms:            rooms,
		SpecialLocations: specials,
	}
}

func (b *Building) doc() buildingDoc {
	floors := make([]floorDoc, len(b.Floors))
	for i, f := range b.Floors {
		floors[i] = f.doc()
	}
	return buildingDoc{ID: b.ID, Name: b.Name, Description: b.Description, Floors: floors}
}

// MarshalJSON renders the room in the file schema.
func (r Room) MarshalJSON() ([]byte, error) { return json.Marshal(r.doc()) }

// MarshalJSON renders the floor in the file schema.
func (f *Floor) MarshalJSON() ([]byte, error) { return json.Marshal(f.doc()) }

// MarshalJSON renders the building in the file schema.
func (b *Building) MarshalJSON() ([]byte, error) { return json.Marshal(b.doc()) }
