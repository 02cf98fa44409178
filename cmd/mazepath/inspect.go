package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newInspectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect MAZE_FILE",
		Short: "Report maze size, endpoints and connectivity without solving",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := readGrid(args[0])
			if err != nil {
				return err
			}
			a.logger.Debug("inspecting maze", "maze", args[0])

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Size:       %dx%d\n", g.Height, g.Width)
			fmt.Fprintf(w, "Start:      %v\n", g.Start)
			fmt.Fprintf(w, "Goal:       %v\n", g.Goal)
			fmt.Fprintf(w, "Open cells: %d\n", g.OpenCells())
			fmt.Fprintf(w, "Components: %d\n", len(g.ConnectedComponents()))
			if d, err := g.ShortestDistance(g.Start, g.Goal); err == nil {
				fmt.Fprintf(w, "Reachable:  yes (shortest route %d steps)\n", d)
			} else {
				fmt.Fprintln(w, "Reachable:  no")
			}
			return nil
		},
	}
}
