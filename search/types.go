// Package search provides tunable options, result types and error
// definitions for maze search over a gridgraph.Grid.
package search

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"time"

	"github.com/katalvlaran/mazepath/gridgraph"
)

// Sentinel errors for search execution.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("search: grid is nil")

	// ErrNoSolution is returned when the frontier empties before the goal is
	// reached. It is an expected outcome, not a fault.
	ErrNoSolution = errors.New("search: no solution")

	// ErrInternal wraps invariant violations such as removing from an empty
	// frontier. It indicates a bug, never a property of the maze.
	ErrInternal = errors.New("search: internal invariant violated")

	// ErrExploreLimit is returned when WithMaxExplored stops the search.
	ErrExploreLimit = errors.New("search: explore limit reached")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrUnknownStrategy is returned by ParseStrategy for unrecognized names.
	ErrUnknownStrategy = errors.New("search: unknown strategy")
)

// Option configures Solve behavior via functional arguments.
// If an Option is invalid (e.g. negative limit), it will be recorded
// internally and surfaced as ErrOptionViolation when Solve is invoked.
type Option func(*SearchOptions)

// SearchOptions holds parameters and callbacks to customize Solve.
type SearchOptions struct {
	// Ctx allows cancellation and deadlines. Checked once per loop iteration.
	Ctx context.Context

	// OnRemove is called right after a node leaves the frontier, with its
	// state and the running explored count (1 for the first removal).
	OnRemove func(state gridgraph.Coordinate, explored int)

	// OnEnqueue is called each time a new node is added to the frontier.
	OnEnqueue func(state gridgraph.Coordinate, action gridgraph.Action)

	// MaxExplored, if > 0, stops the search with ErrExploreLimit once that
	// many nodes have been removed without reaching the goal.
	MaxExplored int

	// Logger receives debug records for each solve.
	Logger *slog.Logger

	// Observer, if non-nil, receives one Report per solve.
	Observer Observer

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a SearchOptions with sane defaults:
//   - Context.Background()
//   - no explore limit
//   - no-op hooks
//   - a logger that discards everything
//   - no observer.
func DefaultOptions() SearchOptions {
	return SearchOptions{
		Ctx:       context.Background(),
		OnRemove:  func(gridgraph.Coordinate, int) {},
		OnEnqueue: func(gridgraph.Coordinate, gridgraph.Action) {},
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *SearchOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnRemove registers a callback to run after each frontier removal.
func WithOnRemove(fn func(state gridgraph.Coordinate, explored int)) Option {
	return func(o *SearchOptions) {
		if fn != nil {
			o.OnRemove = fn
		}
	}
}

// WithOnEnqueue registers a callback to run on each frontier insertion.
func WithOnEnqueue(fn func(state gridgraph.Coordinate, action gridgraph.Action)) Option {
	return func(o *SearchOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithMaxExplored caps the number of removals.
//
//	n > 0: stop after n removals
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxExplored(n int) Option {
	return func(o *SearchOptions) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExplored cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExplored = n
	}
}

// WithLogger routes debug records to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *SearchOptions) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithObserver registers obs to receive a Report after each solve.
func WithObserver(obs Observer) Option {
	return func(o *SearchOptions) {
		o.Observer = obs
	}
}

// Outcome classifies how a solve ended.
type Outcome string

const (
	OutcomeSolved     Outcome = "solved"
	OutcomeNoSolution Outcome = "no_solution"
	OutcomeCancelled  Outcome = "cancelled"
	OutcomeLimit      Outcome = "limit"
	OutcomeError      Outcome = "error"
)

// OutcomeOf maps the error returned by Solve to an Outcome.
func OutcomeOf(err error) Outcome {
	switch {
	case err == nil:
		return OutcomeSolved
	case errors.Is(err, ErrNoSolution):
		return OutcomeNoSolution
	case errors.Is(err, ErrExploreLimit):
		return OutcomeLimit
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return OutcomeCancelled
	default:
		return OutcomeError
	}
}

// Report summarizes one finished solve for an Observer.
type Report struct {
	Strategy      Strategy
	Outcome       Outcome
	ExploredCount int
	PathLength    int
	Elapsed       time.Duration
}

// Observer receives a Report after every Solve call that passed validation.
// Implementations must be safe for concurrent use if solves run in parallel.
type Observer interface {
	ObserveSolve(Report)
}

// Solution is the start→goal route. The start cell is excluded; Actions[i]
// is the move that reaches Cells[i], and the last cell is the goal.
type Solution struct {
	Actions []gridgraph.Action     `json:"actions"`
	Cells   []gridgraph.Coordinate `json:"cells"`
}

// Len returns the number of moves.
func (s *Solution) Len() int {
	return len(s.Actions)
}

// Result holds the outcome of a search:
//   - Strategy: the effective strategy (unknown selectors become DFS).
//   - Solution: the route, nil unless the goal was reached.
//   - Explored: every state removed from the frontier and expanded.
//   - ExploredCount: total removals, including the goal removal.
type Result struct {
	Strategy      Strategy
	Solution      *Solution
	Explored      map[gridgraph.Coordinate]struct{}
	ExploredCount int
}

// Solved reports whether a solution was found.
func (r *Result) Solved() bool {
	return r.Solution != nil
}

// ExploredCells returns the explored set in row-major order.
func (r *Result) ExploredCells() []gridgraph.Coordinate {
	out := make([]gridgraph.Coordinate, 0, len(r.Explored))
	for c := range r.Explored {
		out = append(out, c)
	}
	slices.SortFunc(out, func(a, b gridgraph.Coordinate) int {
		if a.Row != b.Row {
			return a.Row - b.Row
		}
		return a.Col - b.Col
	})
	return out
}
