// Package pathsearch finds walkable routes across a single floor grid.
//
// Overview:
//
//   - FindPath runs A* over the 4-connected grid (no diagonal moves) with the
//     Manhattan distance as heuristic. Every step costs at least 1, so the
//     heuristic is admissible and consistent and the first time the target is
//     popped its cost is optimal.
//   - Two cost modes are available:
//     Standard   – every non-wall step costs 1; stairs and elevators alike.
//     Accessible – entering a stairs cell costs 1 + StairsPenalty (default 10).
//     Stairs are discouraged, never forbidden: if the only route climbs
//     stairs, the least-stairs route is still returned.
//   - StepDistances is a plain BFS distance field (unit cost, walls blocked)
//     used to measure reachability and as a reference for the search.
//
// Result contract:
//
//   - The returned Path runs from start to end inclusive.
//   - An empty Path means no route exists or an endpoint is out of bounds or a
//     wall. Absence of a route is a value, never an error.
//   - start == end yields the single-element Path [start].
//
// Tie-breaking:
//
//   - Open-set entries with equal f are popped in insertion order. Any order
//     would yield a path of the same cost; this one is merely deterministic.
//     Tests must not assume a particular shape among equal-cost paths unless the
//     shortest path is unique.
//
// Complexity:
//
//   - Time:  O(R×C × log(R×C)) worst case; at most R×C expansions.
//   - Space: O(R×C) for g scores, predecessors and the closed set.
//
// Thread safety:
//
//   - All working state is allocated per call. A *grid.Grid is immutable, so
//     any number of searches may run concurrently over the same grid.
package pathsearch
