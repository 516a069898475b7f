// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package tessellate implements the incremental Bowyer-Watson
// tessellator: point location by repeated orientation tests, the
// insertion split table, and the flip zoo that restores the Delaunay
// property after every insertion.
package tessellate

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
)

// ErrPrecondition mirrors the root package's sentinel; tessellate is an
// internal package and returns its own sentinel so it has no import
// dependency on the root package, which the engines are adapted by.
var ErrPrecondition = errors.New("tessellate: precondition violation")

// DummyVertex marks the invalid tip of a dummy border simplex. It is
// disjoint from topology.None (an absent neighbour) and from every real
// vertex index (which is always >= 0).
const DummyVertex = -2

// Options configure an Engine2D/Engine3D, using the same error-returning
// functional-option style as the root package's TessellationOption.
type Options struct {
	Seed             int64
	InitialVertexCap int
	InitialSimplexCap int
	Logger           *slog.Logger
	UseFastPath      bool
	VerificationMode bool
}

// DefaultOptions returns the engine defaults: a fixed seed (for
// reproducibility when the host doesn't care), modest capacities, a
// discard logger, no fast path, no verification.
func DefaultOptions() Options {
	return Options{
		Seed:              1,
		InitialVertexCap:  64,
		InitialSimplexCap: 256,
		Logger:            slog.New(slog.DiscardHandler),
		UseFastPath:       false,
		VerificationMode:  false,
	}
}

func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func preconditionf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrPrecondition, fmt.Sprintf(format, args...))
}

// Preconditionf is preconditionf exported for internal/voronoi and
// internal/dbg, which surface the same sentinel without importing the
// root package either.
func Preconditionf(format string, args ...any) error {
	return preconditionf(format, args...)
}
