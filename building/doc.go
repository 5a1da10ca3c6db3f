// Package building holds the static description of a site: buildings, their
// floors (each a grid.Grid plus rooms and named special locations), and the
// room index used to put human names on path endpoints.
//
// Everything in this package is loaded once and read-only afterwards;
// values may be shared freely across goroutines.
//
// Files:
//
//	.json         encoding/json
//	.yaml, .yml   gopkg.in/yaml.v3
//	.toml         github.com/BurntSushi/toml
//
// All formats share one schema:
//
//	id, name, description,
//	floors[].{number, name, grid, rooms[], specialLocations}
//	rooms[].{id, name, type, floor, position:{row,col}, department?,
//	         isAccessible, amenities[]}
//
// Floors are addressed by number, not by index; numbers need not be
// contiguous or start at zero.
package building
