package directions_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wayfind/directions"
	"github.com/katalvlaran/wayfind/grid"
)

// line returns the cells from (r0,c0) stepping n times by (dr,dc).
func line(r0, c0, dr, dc, n int) []grid.Cell {
	out := []grid.Cell{grid.At(r0, c0)}
	for i := 1; i <= n; i++ {
		out = append(out, grid.At(r0+i*dr, c0+i*dc))
	}
	return out
}

func TestGenerate(t *testing.T) {
	cases := []struct {
		name string
		path []grid.Cell
		want directions.Instructions
	}{
		{
			name: "StraightNorth",
			path: line(5, 0, -1, 0, 5),
			want: directions.Instructions{"starting from A", "move north for 5 steps", "arrived at B"},
		},
		{
			// Row increases walk south.
			name: "StraightSouth",
			path: line(0, 0, 1, 0, 5),
			want: directions.Instructions{"starting from A", "move south for 5 steps", "arrived at B"},
		},
		{
			name: "EastThenSouth",
			path: []grid.Cell{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 1, Col: 2}, {Row: 2, Col: 2}, {Row: 3, Col: 2}},
			want: directions.Instructions{
				"starting from A", "move east for 2 steps", "move south for 3 steps", "arrived at B",
			},
		},
		{
			name: "SingleStep",
			path: []grid.Cell{{Row: 1, Col: 1}, {Row: 1, Col: 0}},
			want: directions.Instructions{"starting from A", "move west", "arrived at B"},
		},
		{
			name: "Zigzag",
			path: []grid.Cell{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 1}, {Row: 1, Col: 2}, {Row: 2, Col: 2}},
			want: directions.Instructions{
				"starting from A", "move east", "move south", "move east", "move south", "arrived at B",
			},
		},
		{
			name: "RunThenSingleAtEnd",
			path: []grid.Cell{{Row: 2, Col: 0}, {Row: 1, Col: 0}, {Row: 0, Col: 0}, {Row: 0, Col: 1}},
			want: directions.Instructions{
				"starting from A", "move north for 2 steps", "move east", "arrived at B",
			},
		},
		{
			name: "SingleThenRunAtEnd",
			path: []grid.Cell{{Row: 0, Col: 3}, {Row: 0, Col: 2}, {Row: 1, Col: 2}, {Row: 2, Col: 2}, {Row: 3, Col: 2}},
			want: directions.Instructions{
				"starting from A", "move west", "move south for 3 steps", "arrived at B",
			},
		},
		{
			name: "OneCell",
			path: []grid.Cell{{Row: 4, Col: 4}},
			want: directions.Instructions{directions.AlreadyThere},
		},
		{
			name: "Empty",
			path: nil,
			want: directions.Instructions{"already at destination"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := directions.Generate(tc.path, "A", "B")
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Generate mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// TestSegments_ConsumeEveryStep walks random orthogonal paths and checks the
// run-length encoding neither drops nor double-counts a step, and that
// adjacent segments always differ in direction.
func TestSegments_ConsumeEveryStep(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	moves := []grid.Cell{{Row: -1, Col: 0}, {Row: 1, Col: 0}, {Row: 0, Col: -1}, {Row: 0, Col: 1}}
	for trial := 0; trial < 200; trial++ {
		n := 1 + rng.Intn(30)
		path := []grid.Cell{{Row: 0, Col: 0}}
		for i := 0; i < n; i++ {
			m := moves[rng.Intn(len(moves))]
			last := path[len(path)-1]
			path = append(path, grid.At(last.Row+m.Row, last.Col+m.Col))
		}

		segs := directions.Segments(path)
		total := 0
		for i, s := range segs {
			require.GreaterOrEqual(t, s.Steps, 1)
			total += s.Steps
			if i > 0 {
				require.NotEqual(t, segs[i-1].Direction, s.Direction, "trial %d: unmerged run", trial)
			}
		}
		require.Equal(t, len(path)-1, total, "trial %d", trial)

		instr := directions.Generate(path, "A", "B")
		require.Len(t, instr, len(segs)+2)
	}
}

func TestSegments_Short(t *testing.T) {
	require.Nil(t, directions.Segments(nil))
	require.Nil(t, directions.Segments([]grid.Cell{{Row: 0, Col: 0}}))
}

func TestSegments_PanicsOnRepeatedCell(t *testing.T) {
	require.Panics(t, func() {
		directions.Segments([]grid.Cell{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 1}})
	})
}

func TestOf(t *testing.T) {
	c := grid.At(3, 3)
	cases := map[grid.Cell]directions.Direction{
		grid.At(2, 3): directions.North,
		grid.At(4, 3): directions.South,
		grid.At(3, 2): directions.West,
		grid.At(3, 4): directions.East,
	}
	for to, want := range cases {
		got, ok := directions.Of(c, to)
		require.True(t, ok)
		require.Equal(t, want, got, "to %v", to)
	}
	_, ok := directions.Of(c, c)
	require.False(t, ok)

	require.Equal(t, "north", directions.North.String())
	require.Equal(t, "east", directions.East.String())
	require.Equal(t, "Direction(9)", directions.Direction(9).String())
}
