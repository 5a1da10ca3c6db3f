package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/wayfind/grid"
	"github.com/katalvlaran/wayfind/pathsearch"
)

// reachResponse is the output of the reach command.
type reachResponse struct {
	Building  string    `json:"building"`
	Floor     int       `json:"floor"`
	From      grid.Cell `json:"from"`
	To        grid.Cell `json:"to"`
	Steps     int       `json:"steps"`
	Reachable bool      `json:"reachable"`
}

func newReachCmd(a *app) *cobra.Command {
	var rf routeFlags
	cmd := &cobra.Command{
		Use:   "reach",
		Short: "Count the minimum steps between two cells",
		Long: `Count the minimum number of single-cell moves between two cells,
ignoring stairs surcharges. Steps is -1 when the target is unreachable.

Example:
  wayfind reach --floor 1 --from 0,0 --to 4,5`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req, err := rf.request(a.flags.building)
			if err != nil {
				return err
			}
			steps, err := a.nav.Reach(req)
			if err != nil {
				return err
			}
			return a.writeJSON(reachResponse{
				Building:  a.buildingID(),
				Floor:     req.Floor,
				From:      grid.At(req.Start[0], req.Start[1]),
				To:        grid.At(req.End[0], req.End[1]),
				Steps:     steps,
				Reachable: steps != pathsearch.Unreachable,
			})
		},
	}
	rf.register(cmd)
	_ = cmd.Flags().MarkHidden("mode")
	return cmd
}
