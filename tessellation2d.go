// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package voromesh

import (
	"fmt"
	"os"

	"github.com/2dChan/voromesh/internal/dbg"
	"github.com/2dChan/voromesh/internal/tessellate"
	"github.com/2dChan/voromesh/internal/voronoi"
	"github.com/golang/geo/r2"
)

// Bounds2D is the host-supplied domain box; it is inflated internally
// to build the bounding simplex.
type Bounds2D struct {
	Min, Max [2]float64
}

// Tessellation2D is the opaque 2D tessellation handle.
type Tessellation2D struct {
	e *tessellate.Engine2D
}

// NewTessellation2D builds the bounding simplex and dummy border and
// reserves capacity per opts.
func NewTessellation2D(bounds Bounds2D, opts ...TessellationOption) (*Tessellation2D, error) {
	o := tessellate.DefaultOptions()
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return nil, err
		}
	}
	e := tessellate.NewEngine2D(tessellate.Bounds2D{Min: bounds.Min, Max: bounds.Max}, o)
	return &Tessellation2D{e: e}, nil
}

// AddLocalVertex inserts a local generator at the pre-reserved index slot.
func (t *Tessellation2D) AddLocalVertex(index int, pos r2.Point) error {
	return t.e.AddLocalVertex(index, pos)
}

// AddGhostVertex appends a ghost generator; only valid after Consolidate.
func (t *Tessellation2D) AddGhostVertex(pos r2.Point) (int, error) {
	return t.e.AddGhostVertex(pos)
}

// Consolidate freezes the local/ghost boundary.
func (t *Tessellation2D) Consolidate() error {
	return t.e.Consolidate()
}

// NumLocal returns the number of local generators.
func (t *Tessellation2D) NumLocal() int {
	return t.e.NumLocal()
}

// SearchRadius returns twice the maximum incident circumradius for the
// given local generator, for ghost-import control.
func (t *Tessellation2D) SearchRadius(localIndex int) (float64, error) {
	return t.e.SearchRadius(localIndex)
}

// BuildVoronoi materialises the Delaunay dual.
func (t *Tessellation2D) BuildVoronoi() (*Mesh2D, error) {
	d, err := voronoi.Build2D(t.e)
	if err != nil {
		return nil, err
	}
	return &Mesh2D{d: d, vertexStart: t.e.VertexStart()}, nil
}

// PrintTessellation writes the vertex/triangle debug dump to path.
func (t *Tessellation2D) PrintTessellation(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return dbg.PrintTessellation2D(f, t.e)
}

// maxRadiusDoublings bounds ConvergeSearchRadius's iteration count: a
// correctly shaped supply callback converges well before this, but a
// buggy one that never returns enough ghosts would otherwise loop forever.
const maxRadiusDoublings = 32

// ConvergeSearchRadius is a convenience loop: repeatedly call supply for
// ghost candidates within the current radius around center, import them,
// and double the radius until every local generator's SearchRadius is no
// larger than the radius that produced its ghosts.
func (t *Tessellation2D) ConvergeSearchRadius(center r2.Point, initialRadius float64, supply func(center r2.Point, radius float64) []r2.Point) error {
	if initialRadius <= 0 {
		return fmt.Errorf("voromesh: ConvergeSearchRadius: initialRadius must be positive, got %v", initialRadius)
	}
	r := initialRadius
	for i := 0; i < maxRadiusDoublings; i++ {
		converged := true
		for local := 0; local < t.e.NumLocal(); local++ {
			sr, err := t.e.SearchRadius(local)
			if err != nil {
				return err
			}
			if sr > r {
				converged = false
				break
			}
		}
		if converged {
			return nil
		}
		for _, p := range supply(center, r) {
			if _, err := t.AddGhostVertex(p); err != nil {
				return err
			}
		}
		r *= 2
	}
	return fmt.Errorf("voromesh: ConvergeSearchRadius: did not converge after %d radius doublings", maxRadiusDoublings)
}
