package building

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/wayfind/grid"
)

// Format identifies a building file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFromPath picks a Format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
}

// Decode reads one building definition in the given format and validates it.
// Keys outside the schema are ignored.
func Decode(r io.Reader, format Format) (*Building, error) {
	var doc buildingDoc
	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&doc); err != nil {
			return nil, fmt.Errorf("%w: decode json: %w", ErrInvalidBuilding, err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
			return nil, fmt.Errorf("%w: decode yaml: %w", ErrInvalidBuilding, err)
		}
	case FormatTOML:
		if _, err := toml.NewDecoder(r).Decode(&doc); err != nil {
			return nil, fmt.Errorf("%w: decode toml: %w", ErrInvalidBuilding, err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	return doc.build()
}

// LoadFile reads a single building file, choosing the decoder by extension.
func LoadFile(path string) (*Building, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("building: open %s: %w", path, err)
	}
	defer f.Close()

	b, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return b, nil
}

// LoadFiles loads each path in order.
func LoadFiles(paths ...string) ([]*Building, error) {
	out := make([]*Building, 0, len(paths))
	for _, p := range paths {
		b, err := LoadFile(p)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}

// LoadDir loads every .json, .yaml, .yml and .toml file directly inside dir,
// in lexical file-name order. Other files are ignored.
func LoadDir(dir string) ([]*Building, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("building: read dir %s: %w", dir, err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if _, err := FormatFromPath(e.Name()); err != nil {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	sort.Strings(paths)
	return LoadFiles(paths...)
}

// build converts a decoded document into a validated Building.
func (d buildingDoc) build() (*Building, error) {
	floors := make([]*Floor, 0, len(d.Floors))
	for _, fd := range d.Floors {
		rooms := make([]Room, len(fd.Rooms))
		for i, rd := range fd.Rooms {
			rooms[i] = Room{
				ID:         rd.ID,
				Name:       rd.Name,
				Type:       rd.Type,
				Floor:      rd.Floor,
				Position:   rd.Position.cell(),
				Department: rd.Department,
				Accessible: rd.IsAccessible,
				Amenities:  rd.Amenities,
			}
		}
		specials := make(map[string]grid.Cell, len(fd.SpecialLocations))
		for name, p := range fd.SpecialLocations {
			specials[name] = p.cell()
		}
		f, err := NewFloor(fd.Number, fd.Name, fd.Grid, rooms, specials)
		if err != nil {
			return nil, fmt.Errorf("building %q: %w", d.ID, err)
		}
		floors = append(floors, f)
	}

	return NewBuilding(d.ID, d.Name, d.Description, floors...)
}
