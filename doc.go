// Package wayfind is an indoor wayfinding toolkit: it finds walkable routes
// on the cell grids of building floors, optionally steering wheelchair users
// away from stairs, and turns those routes into step-by-step directions.
//
// What is in the box?
//
//	A small, dependency-light library plus a CLI that brings together:
//		• Floor grids: immutable cell maps with walls, stairs and elevators
//		• Path search: A* with Standard and Accessible cost modes
//		• Rooms: buildings loaded from JSON, YAML or TOML, lookup & search
//		• Directions: "move east for 3 steps" style instructions
//		• Facade: validated requests, typed errors, found/not-found results
//
// Everything is organized in flat subpackages:
//
//	grid/        Cell, CellType, Grid and walkable Regions
//	pathsearch/  FindPath (A*), Cost, StepDistances (BFS)
//	building/    Building, Floor, Room, loaders, Catalog, Fallback
//	directions/  Segments and Generate
//	navigator/   the request facade used by callers
//	cmd/wayfind  cobra CLI over the navigator
//
// Quick ASCII example (0 walkable, 1 wall):
//
//	S 0 0 0 1 0
//	1 1 1 0 1 0
//	0 0 0 0 0 0
//	0 1 1 1 1 1
//	0 0 0 0 0 E
//
// A route from S (0,0) to E (4,5) is 16 cells long. All loaded data is
// immutable, so one Navigator may serve concurrent requests.
//
//	go install github.com/katalvlaran/wayfind/cmd/wayfind@latest
package wayfind
