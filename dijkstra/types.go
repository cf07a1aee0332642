// Package dijkstra defines core types, statistics and configuration options
// for the stepped shortest-path engine.
package dijkstra

import (
	"errors"
	"log/slog"

	"github.com/oklog/ulid/v2"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/internal/logging"
)

// ErrInvalidEndpoints indicates that an engine was requested with a nil graph,
// a missing or foreign endpoint, or identical start and end nodes.
var ErrInvalidEndpoints = errors.New("dijkstra: invalid endpoints")

// Graph is the membership check the engine needs from a node container.
// *gridgraph.Grid satisfies it.
type Graph interface {
	Contains(n *gridgraph.Node) bool
}

// Status is the engine's position in its state machine.
type Status int

const (
	// Ready means constructed but not yet stepped.
	Ready Status = iota
	// Running means at least one Step has been taken and the search is live.
	Running
	// Found means the end node was reached and the path reconstructed.
	Found
	// NoPath means the frontier was exhausted without reaching the end.
	NoPath
	// Stopped means the driver cancelled the run.
	Stopped
)

// String returns a display name for the status.
func (s Status) String() string {
	switch s {
	case Ready:
		return "ready"
	case Running:
		return "running"
	case Found:
		return "path found"
	case NoPath:
		return "no path"
	case Stopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Stats is a point-in-time snapshot of an engine.
//
// PathLength counts edges and is zero unless PathFound.
// Steps counts Step calls that popped an entry; Stale counts the pops that
// were discarded as stale or already visited. Frontier is the current heap
// size, stale entries included.
type Stats struct {
	RunID        ulid.ULID
	Status       Status
	VisitedCount int
	PathLength   int
	Steps        int
	Stale        int
	Frontier     int
	Running      bool
	Complete     bool
	PathFound    bool
}

// Options configures an Engine.
//
// Logger – receives Debug-level lifecycle records (created, finished, stopped).
//
//	Defaults to a logger that discards everything.
//
// RunID  – identifier attached to Stats and log records. Defaults to a fresh ULID.
type Options struct {
	Logger *slog.Logger
	RunID  ulid.ULID
}

// Option represents a functional option for configuring an Engine.
type Option func(*Options)

// WithLogger routes engine lifecycle records to l. A nil l is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithRunID pins the run identifier, e.g. to correlate a replayed run.
func WithRunID(id ulid.ULID) Option {
	return func(o *Options) {
		o.RunID = id
	}
}

// DefaultOptions returns Options with a discarding logger and a fresh RunID.
func DefaultOptions() Options {
	return Options{
		Logger: logging.Discard(),
		RunID:  ulid.Make(),
	}
}
