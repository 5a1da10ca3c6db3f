package main

import (
	"github.com/spf13/cobra"
)

func newRouteRoomsCmd(a *app) *cobra.Command {
	var (
		mode string
		text bool
	)
	cmd := &cobra.Command{
		Use:   "route-rooms <from-room> <to-room>",
		Short: "Directions between two rooms of the same floor",
		Long: `Route between two rooms by id. Both rooms must be on the same floor.

Examples:
  wayfind route-rooms CS-101 ENG-102
  wayfind route-rooms --building library LRC-1 LRC-2 --mode accessible --text`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := parseMode(mode)
			if err != nil {
				return err
			}
			d, err := a.nav.RouteRooms(a.flags.building, args[0], args[1], m)
			if err != nil {
				return err
			}
			a.logger.Info("room route computed", "from", args[0], "to", args[1],
				"floor", d.Floor, "found", d.Found)
			return a.writeDirections(d, text)
		},
	}
	cmd.Flags().StringVar(&mode, "mode", "standard", "Routing mode: standard or accessible")
	cmd.Flags().BoolVar(&text, "text", false, "Print only the instructions, one per line")
	return cmd
}
