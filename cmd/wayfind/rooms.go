package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/wayfind/building"
	"github.com/katalvlaran/wayfind/navigator"
)

// searchResponse is the output of the search command.
type searchResponse struct {
	Building string          `json:"building"`
	Query    string          `json:"query"`
	Count    int             `json:"count"`
	Rooms    []building.Room `json:"rooms"`
}

func newSearchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "search [query]",
		Short: "Search rooms by name, type or department",
		Long: `Search rooms with a case-insensitive substring match on name, type
or department. Without a query every room is listed.

Examples:
  wayfind search lab
  wayfind search "computer science" --building main`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var q string
			if len(args) == 1 {
				q = args[0]
			}
			rooms, err := a.nav.Search(a.flags.building, q)
			if err != nil {
				return err
			}
			a.logger.Debug("search completed", "query", q, "results", len(rooms))
			return a.writeJSON(searchResponse{Building: a.buildingID(), Query: q, Count: len(rooms), Rooms: rooms})
		},
	}
}

func newRoomCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "room <id>",
		Short: "Show one room",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.nav.Room(a.flags.building, args[0])
			if err != nil {
				return err
			}
			return a.writeJSON(r)
		},
	}
}

// floorsResponse is the output of the floors command.
type floorsResponse struct {
	Building string                   `json:"building"`
	Floors   []navigator.FloorSummary `json:"floors"`
}

func newFloorsCmd(a *app) *cobra.Command {
	var number int
	cmd := &cobra.Command{
		Use:   "floors",
		Short: "List the floors of a building, or dump one with --floor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("floor") {
				f, err := a.nav.Floor(a.flags.building, number)
				if err != nil {
					return err
				}
				return a.writeJSON(f)
			}
			fs, err := a.nav.Floors(a.flags.building)
			if err != nil {
				return err
			}
			return a.writeJSON(floorsResponse{Building: a.buildingID(), Floors: fs})
		},
	}
	cmd.Flags().IntVar(&number, "floor", 0, "Print the full definition of this floor")
	return cmd
}

func newBuildingsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "buildings",
		Short: "List loaded buildings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.writeJSON(a.nav.Buildings())
		},
	}
}
