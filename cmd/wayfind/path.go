package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wayfind/navigator"
	"github.com/katalvlaran/wayfind/pathsearch"
)

// routeFlags are shared by the cell-based routing commands.
type routeFlags struct {
	floor int
	from  []int
	to    []int
	mode  string
}

func (f *routeFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.floor, "floor", 1, "Floor number")
	cmd.Flags().IntSliceVar(&f.from, "from", nil, "Start cell as row,col")
	cmd.Flags().IntSliceVar(&f.to, "to", nil, "End cell as row,col")
	cmd.Flags().StringVar(&f.mode, "mode", "standard", "Routing mode: standard or accessible")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
}

func (f *routeFlags) request(buildingID string) (navigator.RouteRequest, error) {
	mode, err := parseMode(f.mode)
	if err != nil {
		return navigator.RouteRequest{}, err
	}
	return navigator.RouteRequest{
		BuildingID: buildingID,
		Floor:      f.floor,
		Start:      f.from,
		End:        f.to,
		Mode:       mode,
	}, nil
}

func parseMode(s string) (pathsearch.Mode, error) {
	mode, err := pathsearch.ParseMode(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", navigator.ErrInvalidInput, err)
	}
	return mode, nil
}

func newPathCmd(a *app) *cobra.Command {
	var rf routeFlags
	cmd := &cobra.Command{
		Use:   "path",
		Short: "Find a path between two cells of a floor",
		Long: `Find the cheapest walkable path between two cells of one floor.

A missing path is not an error: the result has "found": false.

Examples:
  wayfind path --floor 1 --from 0,0 --to 4,5
  wayfind path --building main --from 2,1 --to 2,3 --mode accessible`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req, err := rf.request(a.flags.building)
			if err != nil {
				return err
			}
			r, err := a.nav.Route(req)
			if err != nil {
				return err
			}
			a.logger.Info("route computed", "building", r.BuildingID, "floor", r.Floor,
				"mode", r.Mode.String(), "found", r.Found, "length", r.Length)
			return a.writeJSON(r)
		},
	}
	rf.register(cmd)
	return cmd
}
