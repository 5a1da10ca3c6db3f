package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wayfind/navigator"
)

func newDirectionsCmd(a *app) *cobra.Command {
	var (
		rf       routeFlags
		fromRoom string
		toRoom   string
		text     bool
	)
	cmd := &cobra.Command{
		Use:   "directions",
		Short: "Route between two cells and describe it step by step",
		Long: `Route between two cells and describe the path in sentences.

Endpoints are named after --from-room/--to-room when given, else after the
room or special location at the cell, else after the cell itself.

Examples:
  wayfind directions --from 0,0 --to 0,3
  wayfind directions --from 4,0 --to 0,6 --to-room ENG-102 --text`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req, err := rf.request(a.flags.building)
			if err != nil {
				return err
			}
			d, err := a.nav.Directions(navigator.DirectionsRequest{
				RouteRequest: req,
				StartRoom:    fromRoom,
				EndRoom:      toRoom,
			})
			if err != nil {
				return err
			}
			a.logger.Info("directions computed", "building", d.BuildingID, "floor", d.Floor,
				"found", d.Found, "instructions", len(d.Instructions))
			return a.writeDirections(d, text)
		},
	}
	rf.register(cmd)
	cmd.Flags().StringVar(&fromRoom, "from-room", "", "Room id naming the start")
	cmd.Flags().StringVar(&toRoom, "to-room", "", "Room id naming the destination")
	cmd.Flags().BoolVar(&text, "text", false, "Print only the instructions, one per line")
	return cmd
}

func (a *app) writeDirections(d navigator.Directions, text bool) error {
	if !text {
		return a.writeJSON(d)
	}
	if !d.Found {
		_, err := fmt.Fprintf(a.stdout, "no route from %s to %s\n", d.StartName, d.EndName)
		return err
	}
	for _, line := range d.Instructions {
		if _, err := fmt.Fprintln(a.stdout, line); err != nil {
			return err
		}
	}
	return nil
}
