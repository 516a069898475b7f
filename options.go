// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package voromesh

import (
	"fmt"
	"log/slog"

	"github.com/2dChan/voromesh/internal/tessellate"
)

// TessellationOption configures a Tessellation2D/Tessellation3D at
// construction. Error-returning, so a bad option value is reported at
// construction time rather than silently clamped.
type TessellationOption func(*tessellate.Options) error

// WithSeed fixes the tessellator's internal PRNG seed (used for
// tie-breaking, not for predicate exactness).
func WithSeed(seed int64) TessellationOption {
	return func(o *tessellate.Options) error {
		o.Seed = seed
		return nil
	}
}

// WithLogger overrides the default discard logger.
func WithLogger(logger *slog.Logger) TessellationOption {
	return func(o *tessellate.Options) error {
		if logger == nil {
			return fmt.Errorf("voromesh: WithLogger: logger must not be nil")
		}
		o.Logger = logger
		return nil
	}
}

// WithVerification runs the reciprocity, orientation, local-Delaunay
// and back-link invariant checks after every mutating call. Expensive;
// meant for tests and debugging, not hot paths.
func WithVerification() TessellationOption {
	return func(o *tessellate.Options) error {
		o.VerificationMode = true
		return nil
	}
}

// WithoutVerification disables the checks WithVerification enables.
// This is already the default; it exists so host code that decides the
// mode from a variable doesn't need a conditional.
func WithoutVerification() TessellationOption {
	return func(o *tessellate.Options) error {
		o.VerificationMode = false
		return nil
	}
}

// WithFastPath enables the double-precision pre-check ahead of every
// exact integer predicate call. The pre-check only ever reports a sign
// when its result clears a conservative error bound, falling back to
// the exact predicate otherwise, so enabling it changes performance on
// well-separated inputs, never the tessellation produced.
func WithFastPath() TessellationOption {
	return func(o *tessellate.Options) error {
		o.UseFastPath = true
		return nil
	}
}

// WithInitialVertexCap reserves capacity in the vertex store up front.
func WithInitialVertexCap(n int) TessellationOption {
	return func(o *tessellate.Options) error {
		if n <= 0 {
			return fmt.Errorf("voromesh: WithInitialVertexCap: n must be positive, got %d", n)
		}
		o.InitialVertexCap = n
		return nil
	}
}

// WithInitialSimplexCap reserves capacity in the topology store up front.
func WithInitialSimplexCap(n int) TessellationOption {
	return func(o *tessellate.Options) error {
		if n <= 0 {
			return fmt.Errorf("voromesh: WithInitialSimplexCap: n must be positive, got %d", n)
		}
		o.InitialSimplexCap = n
		return nil
	}
}
