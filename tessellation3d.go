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
	"github.com/golang/geo/r3"
)

// Bounds3D is the host-supplied domain box; it is inflated internally
// to build the bounding simplex.
type Bounds3D struct {
	Min, Max [3]float64
}

// Tessellation3D is the opaque 3D tessellation handle.
type Tessellation3D struct {
	e *tessellate.Engine3D
}

// NewTessellation3D builds the bounding simplex and dummy border and
// reserves capacity per opts.
func NewTessellation3D(bounds Bounds3D, opts ...TessellationOption) (*Tessellation3D, error) {
	o := tessellate.DefaultOptions()
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return nil, err
		}
	}
	e := tessellate.NewEngine3D(tessellate.Bounds3D{Min: bounds.Min, Max: bounds.Max}, o)
	return &Tessellation3D{e: e}, nil
}

// AddLocalVertex inserts a local generator at the pre-reserved index slot.
func (t *Tessellation3D) AddLocalVertex(index int, pos r3.Vector) error {
	return t.e.AddLocalVertex(index, pos)
}

// AddGhostVertex appends a ghost generator; only valid after Consolidate.
func (t *Tessellation3D) AddGhostVertex(pos r3.Vector) (int, error) {
	return t.e.AddGhostVertex(pos)
}

// Consolidate freezes the local/ghost boundary.
func (t *Tessellation3D) Consolidate() error {
	return t.e.Consolidate()
}

// NumLocal returns the number of local generators.
func (t *Tessellation3D) NumLocal() int {
	return t.e.NumLocal()
}

// SearchRadius returns twice the maximum incident circumradius for the
// given local generator, for ghost-import control.
func (t *Tessellation3D) SearchRadius(localIndex int) (float64, error) {
	return t.e.SearchRadius(localIndex)
}

// BuildVoronoi materialises the Delaunay dual.
func (t *Tessellation3D) BuildVoronoi() (*Mesh3D, error) {
	d, err := voronoi.Build3D(t.e)
	if err != nil {
		return nil, err
	}
	return &Mesh3D{d: d, vertexStart: t.e.VertexStart()}, nil
}

// PrintTessellation writes the vertex/tetrahedron debug dump to path.
func (t *Tessellation3D) PrintTessellation(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return dbg.PrintTessellation3D(f, t.e)
}

// ConvergeSearchRadius is Tessellation2D.ConvergeSearchRadius's 3D
// counterpart.
func (t *Tessellation3D) ConvergeSearchRadius(center r3.Vector, initialRadius float64, supply func(center r3.Vector, radius float64) []r3.Vector) error {
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
