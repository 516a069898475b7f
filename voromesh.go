// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package voromesh implements an incremental Delaunay tessellator with
// exact integer predicates (2D and 3D) and a Delaunay-to-Voronoi dual
// converter, for moving-mesh hydrodynamics codes that need per-cell
// volumes, centroids, and face geometry derived from a point set.
package voromesh

import (
	"errors"

	"github.com/2dChan/voromesh/internal/tessellate"
)

// ErrPrecondition marks a host-bug class of error: coincident or
// colinear input points, points outside the rescale range, or a
// request for the Voronoi dual before Consolidate.
var ErrPrecondition = tessellate.ErrPrecondition

// ErrExhausted marks a fatal resource-exhaustion condition: allocation
// failure while growing a store. Go's allocator does not hand back a
// recoverable error on this path the way a C realloc failure would, so
// this sentinel exists for API completeness; no function in this module
// returns it, and the capacity options report invalid values with a
// plain error.
var ErrExhausted = errors.New("voromesh: resource exhausted")
