// Copyright ©2015 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graph

//go:generate stringer -type=Kind -linecomment

// Kind discriminates the ways a core algorithm can fail. Every error
// surfaced synchronously from an algorithm entry point carries one of
// these.
type Kind int

const (
	// SourceOutOfRange indicates a source id passed to a shortest-path
	// algorithm is outside [0, NumVertices(g)).
	SourceOutOfRange Kind = iota // source id out of range

	// BufferTooSmall indicates a distance or predecessor buffer is
	// shorter than the vertex count.
	BufferTooSmall // buffer too small

	// NegativeWeight indicates a Dijkstra weight function produced a
	// negative value for a signed weight type.
	NegativeWeight // negative edge weight

	// InternalInvariant indicates an invariant the algorithm relies on
	// but cannot cheaply pre-check failed at runtime.
	InternalInvariant // internal invariant violated
)

// GraphError is the single error type returned by this module's
// algorithms. It carries the failing operation's name alongside the
// Kind so callers can both discriminate programmatically (on Kind) and
// read a human-readable message (via Error).
type GraphError struct {
	// Op names the algorithm entry point that failed, e.g.
	// "path.Dijkstra".
	Op string
	// Kind classifies the failure.
	Kind Kind
	// Msg is an optional, operation-specific detail appended to the
	// message; it may be empty.
	Msg string
}

func (e *GraphError) Error() string {
	if e.Msg == "" {
		return e.Op + ": " + e.Kind.String()
	}
	return e.Op + ": " + e.Kind.String() + ": " + e.Msg
}

// NewError returns a *GraphError for the given operation and kind.
func NewError(op string, kind Kind, msg string) *GraphError {
	return &GraphError{Op: op, Kind: kind, Msg: msg}
}
