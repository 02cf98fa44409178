package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/mazepath/gridgraph"
	"github.com/katalvlaran/mazepath/metrics"
	"github.com/katalvlaran/mazepath/search"
)

type solveFlags struct {
	algo        string
	timeout     time.Duration
	maxExplored int
	explored    bool
	format      string
	metricsFile string
}

func newSolveCmd(a *app) *cobra.Command {
	f := &solveFlags{}
	cmd := &cobra.Command{
		Use:   "solve MAZE_FILE",
		Short: "Find a path from A to B",
		Long: `Find a path from the start cell 'A' to the goal cell 'B'.

Algorithms: 0 or dfs, 1 or bfs, 2 or gbfs, 3 or astar.
Unknown numeric selectors run depth-first search.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.solve(cmd, args[0], f)
		},
	}
	cmd.Flags().StringVarP(&f.algo, "algo", "a", "", "search algorithm (default from config, else 0)")
	cmd.Flags().DurationVar(&f.timeout, "timeout", 0, "abort the search after this long (0 = config value)")
	cmd.Flags().IntVar(&f.maxExplored, "max-explored", 0, "stop after this many expansions (0 = config value)")
	cmd.Flags().BoolVar(&f.explored, "explored", false, "also list every explored cell")
	cmd.Flags().StringVar(&f.format, "format", "text", "output format: text or json")
	cmd.Flags().StringVar(&f.metricsFile, "metrics-file", "", "write Prometheus metrics to this file (default from config)")
	return cmd
}

// solveOutput is the JSON shape of a solve run.
type solveOutput struct {
	RunID         string                 `json:"run_id"`
	Strategy      string                 `json:"strategy"`
	Solved        bool                   `json:"solved"`
	ExploredCount int                    `json:"explored_count"`
	Solution      *search.Solution       `json:"solution,omitempty"`
	Explored      []gridgraph.Coordinate `json:"explored,omitempty"`
}

func (a *app) solve(cmd *cobra.Command, path string, f *solveFlags) error {
	sc := a.cfg.Search
	if f.algo != "" {
		sc.Strategy = f.algo
	}
	if f.timeout > 0 {
		sc.Timeout = f.timeout
	}
	if f.maxExplored > 0 {
		sc.MaxExplored = f.maxExplored
	}
	metricsFile := a.cfg.Metrics.File
	if f.metricsFile != "" {
		metricsFile = f.metricsFile
	}
	format := strings.ToLower(f.format)
	if format != "text" && format != "json" {
		return fmt.Errorf("unknown --format %q (want text or json)", f.format)
	}

	strategy, err := sc.ParsedStrategy()
	if err != nil {
		return err
	}
	g, err := readGrid(path)
	if err != nil {
		return err
	}

	runID := uuid.NewString()
	logger := a.logger.With(slog.String("run_id", runID), slog.String("maze", path))
	logger.Info("solving maze",
		slog.String("strategy", strategy.String()),
		slog.Int("height", g.Height),
		slog.Int("width", g.Width),
	)

	ctx := cmd.Context()
	if sc.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, sc.Timeout)
		defer cancel()
	}

	reg := prometheus.NewRegistry()
	res, solveErr := search.Solve(g, strategy,
		search.WithContext(ctx),
		search.WithLogger(logger),
		search.WithMaxExplored(sc.MaxExplored),
		search.WithObserver(metrics.NewRecorder(reg)),
	)

	if metricsFile != "" {
		if err := prometheus.WriteToTextfile(metricsFile, reg); err != nil {
			logger.Warn("writing metrics failed", slog.String("file", metricsFile), slog.Any("error", err))
		}
	}
	if solveErr != nil && !errors.Is(solveErr, search.ErrNoSolution) {
		return solveErr
	}

	out := cmd.OutOrStdout()
	if format == "json" {
		err = writeJSON(out, runID, res, f.explored)
	} else {
		writeText(out, g, res, f.explored)
	}
	if err != nil {
		return err
	}
	if solveErr != nil {
		logger.Info("maze has no solution", slog.Int("explored", res.ExploredCount))
	}
	return solveErr
}

func writeText(w io.Writer, g *gridgraph.Grid, res *search.Result, explored bool) {
	fmt.Fprintf(w, "%s Algorithm was chosen\n", res.Strategy.Title())
	fmt.Fprintf(w, "Maze: %dx%d, start %v, goal %v\n", g.Height, g.Width, g.Start, g.Goal)
	fmt.Fprintf(w, "States explored: %d\n", res.ExploredCount)
	if res.Solved() {
		fmt.Fprintf(w, "Solution: %d steps\n", res.Solution.Len())
		for i, act := range res.Solution.Actions {
			fmt.Fprintf(w, "  %3d. %-5s %v\n", i+1, act, res.Solution.Cells[i])
		}
	} else {
		fmt.Fprintln(w, "No solution")
	}
	if explored {
		cells := res.ExploredCells()
		parts := make([]string, len(cells))
		for i, c := range cells {
			parts[i] = c.String()
		}
		fmt.Fprintf(w, "Explored (%d): %s\n", len(cells), strings.Join(parts, " "))
	}
}

func writeJSON(w io.Writer, runID string, res *search.Result, explored bool) error {
	out := solveOutput{
		RunID:         runID,
		Strategy:      res.Strategy.String(),
		Solved:        res.Solved(),
		ExploredCount: res.ExploredCount,
		Solution:      res.Solution,
	}
	if explored {
		out.Explored = res.ExploredCells()
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
