// Package search runs a generic graph search over a gridgraph.Grid,
// returning the start→goal route, the explored set, and the number of
// nodes removed from the frontier.
//
// The loop is identical for every Strategy; only the frontier's removal
// order differs.
package search

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/mazepath/frontier"
	"github.com/katalvlaran/mazepath/gridgraph"
)

// walker encapsulates mutable search state for one Solve call.
type walker struct {
	grid     *gridgraph.Grid
	opts     SearchOptions
	arena    *frontier.Arena
	frontier frontier.Frontier
	res      *Result
}

// Solve searches g from g.Start to g.Goal using strategy s, applying any
// number of functional Options. Strategy values outside 0–3 run as DFS.
//
// The returned Result is non-nil whenever validation passed, including on
// ErrNoSolution, so callers can inspect what was explored.
// Returns ErrGridNil for a nil grid, ErrOptionViolation for bad options,
// ErrNoSolution when the goal is unreachable, ErrExploreLimit when
// WithMaxExplored stops the search, ctx.Err() on cancellation, and an
// ErrInternal-wrapped error on an invariant violation.
func Solve(g *gridgraph.Grid, s Strategy, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	s = s.normalize()
	arena := frontier.NewArena(g.Width * g.Height)
	w := &walker{
		grid:     g,
		opts:     o,
		arena:    arena,
		frontier: s.NewFrontier(arena, g),
		res: &Result{
			Strategy: s,
			Explored: make(map[gridgraph.Coordinate]struct{}),
		},
	}

	began := time.Now()
	err := w.loop()
	w.report(err, time.Since(began))

	return w.res, err
}

// loop seeds the frontier with the start node and expands until the goal is
// removed, the frontier empties, or the search is stopped.
func (w *walker) loop() error {
	w.frontier.Add(w.arena.New(w.grid.Start, frontier.NoParent, gridgraph.NoAction))

	for {
		// cancellation check (once per loop)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		if w.frontier.Empty() {
			return ErrNoSolution
		}
		if w.opts.MaxExplored > 0 && w.res.ExploredCount >= w.opts.MaxExplored {
			return fmt.Errorf("%w: %d nodes", ErrExploreLimit, w.res.ExploredCount)
		}

		w.res.ExploredCount++
		idx, err := w.frontier.Remove()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInternal, err)
		}
		node := w.arena.Node(idx)
		w.opts.OnRemove(node.State, w.res.ExploredCount)

		if node.State == w.grid.Goal {
			actions, cells := w.arena.Path(idx)
			w.res.Solution = &Solution{Actions: actions, Cells: cells}
			return nil
		}

		w.res.Explored[node.State] = struct{}{}
		w.expand(idx, node.State)
	}
}

// expand adds every neighbor of state that is neither pending nor explored.
func (w *walker) expand(parent int, state gridgraph.Coordinate) {
	for _, st := range w.grid.Neighbors(state) {
		if w.frontier.ContainsState(st.State) {
			continue
		}
		if _, seen := w.res.Explored[st.State]; seen {
			continue
		}
		w.frontier.Add(w.arena.New(st.State, parent, st.Action))
		w.opts.OnEnqueue(st.State, st.Action)
	}
}

// report logs the outcome and forwards it to the observer.
func (w *walker) report(err error, elapsed time.Duration) {
	rep := Report{
		Strategy:      w.res.Strategy,
		Outcome:       OutcomeOf(err),
		ExploredCount: w.res.ExploredCount,
		Elapsed:       elapsed,
	}
	if w.res.Solution != nil {
		rep.PathLength = w.res.Solution.Len()
	}

	level := slog.LevelDebug
	if rep.Outcome == OutcomeError {
		level = slog.LevelError
	}
	w.opts.Logger.LogAttrs(w.opts.Ctx, level, "maze search finished",
		slog.String("strategy", rep.Strategy.String()),
		slog.String("outcome", string(rep.Outcome)),
		slog.Int("explored", rep.ExploredCount),
		slog.Int("path_len", rep.PathLength),
		slog.Int("nodes", w.arena.Len()),
		slog.Duration("elapsed", elapsed),
	)

	if w.opts.Observer != nil {
		w.opts.Observer.ObserveSolve(rep)
	}
}
