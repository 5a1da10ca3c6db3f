// Package directions turns a grid path into short, human-readable
// turn-by-turn instructions.
//
// A path is read as a sequence of unit steps. Each step gets a compass
// direction (row decreasing is north, row increasing south, column
// decreasing west, column increasing east). Maximal runs of equal direction
// are merged into one Segment, and each Segment becomes one sentence:
//
//	starting from Room 101
//	move east for 3 steps
//	move south
//	arrived at Room 102
//
// Paths with fewer than two cells produce the single sentence
// "already at destination".
package directions
