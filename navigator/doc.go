// Package navigator is the request-facing seam of wayfind. It validates raw
// coordinates and identifiers coming from an outer layer (HTTP handler, CLI),
// resolves buildings, floors and rooms from a building.Catalog, and composes
// pathsearch and directions into route and instruction results.
//
// Error taxonomy:
//
//   - ErrInvalidInput: malformed coordinates (not exactly two non-negative
//     integers), coordinates outside the floor grid, an unknown mode, or a
//     room-to-room request spanning floors. Reported before any search.
//   - ErrNotFound: unknown building, floor or room.
//   - No route is not an error: results carry Found == false and an empty
//     path. Callers must keep the two apart.
//
// A Navigator holds only immutable data and is safe for concurrent use.
// It never logs; logging belongs to the caller.
package navigator
