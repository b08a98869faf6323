// Package prize defines the types, sentinel errors and options used to decide
// which bonus cells are worth a detour from a base path.
package prize

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/tesseract/astar"
	"github.com/katalvlaran/tesseract/maze"
)

// Sentinel errors returned by Evaluate.
var (
	// ErrInvalidPrize indicates a prize with a non-positive point value.
	ErrInvalidPrize = errors.New("prize: points must be positive")

	// ErrEmptyPath indicates a base path with no steps.
	ErrEmptyPath = errors.New("prize: base path is empty")

	// ErrOutOfBounds indicates a prize outside the grid. It wraps maze.ErrOutOfBounds.
	ErrOutOfBounds = fmt.Errorf("prize: location outside the grid: %w", maze.ErrOutOfBounds)

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("prize: invalid option supplied")
)

// Prize is a bonus cell and its point value.
type Prize struct {
	At     maze.Coord
	Points int
}

// Detour is a prize judged worth collecting, together with the base node it is
// reached from and the paths used to reach it and return.
type Detour struct {
	Prize Prize
	// From is the base-path node the detour leaves from and returns to.
	From maze.Coord
	// FromIndex is the position of From in the base path's steps.
	FromIndex int
	// Outbound runs From → Prize.At.
	Outbound astar.Path
	// Inbound runs Prize.At → From. It is nil in Mirrored mode, where the
	// return is assumed to cost the same as Outbound.
	Inbound *astar.Path
	// Cost is the round-trip move count.
	Cost int
	// Profit is Points - Cost, always positive.
	Profit int
}

// RoundTrip selects how the cost of returning to the base path is modelled.
type RoundTrip int

const (
	// Mirrored charges twice the outbound length.
	Mirrored RoundTrip = iota
	// Directed searches the return path separately; a node whose prize has no
	// way back to it is not viable.
	Directed
)

// String returns the mode name.
func (r RoundTrip) String() string {
	switch r {
	case Mirrored:
		return "mirrored"
	case Directed:
		return "directed"
	default:
		return fmt.Sprintf("RoundTrip(%d)", int(r))
	}
}

// Options configures Evaluate.
type Options struct {
	// Ctx cancels all searches of the pass.
	Ctx context.Context

	// RoundTrip chooses between Mirrored (default) and Directed costing.
	RoundTrip RoundTrip

	// Workers bounds how many prizes are evaluated concurrently. 1 evaluates
	// sequentially.
	Workers int

	// Logger receives one debug record per prize decision.
	Logger *slog.Logger

	// Search is forwarded to every pathfinder query.
	Search []astar.Option

	err error
}

// Option represents a functional option for configuring Evaluate.
type Option func(*Options)

// DefaultOptions returns a sequential, mirrored configuration that logs nowhere.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		RoundTrip: Mirrored,
		Workers:   1,
		Logger:    slog.New(slog.DiscardHandler),
	}
}

// WithContext sets a cancellation context.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx == nil {
			o.err = fmt.Errorf("%w: nil context", ErrOptionViolation)
			return
		}
		o.Ctx = ctx
	}
}

// WithRoundTrip selects the return-cost model.
func WithRoundTrip(mode RoundTrip) Option {
	return func(o *Options) {
		if mode != Mirrored && mode != Directed {
			o.err = fmt.Errorf("%w: unknown round trip %v", ErrOptionViolation, mode)
			return
		}
		o.RoundTrip = mode
	}
}

// WithWorkers sets the number of prizes evaluated at once; n must be ≥ 1.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: workers must be >= 1, got %d", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithLogger routes per-prize debug records to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithSearchOptions forwards opts to every pathfinder query, e.g. an
// expansion budget. A query that exhausts its budget counts as no path.
func WithSearchOptions(opts ...astar.Option) Option {
	return func(o *Options) {
		o.Search = append(o.Search, opts...)
	}
}
