// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package voromesh

import (
	"fmt"
	"os"

	"github.com/2dChan/voromesh/internal/dbg"
	"github.com/2dChan/voromesh/internal/voronoi"
)

// Mesh3D is the materialised Voronoi dual of a consolidated
// Tessellation3D.
type Mesh3D struct {
	d           *voronoi.Diagram3D
	vertexStart int
}

// NumCells returns the number of local generator cells.
func (m *Mesh3D) NumCells() int {
	return len(m.d.CellVolume)
}

// Cell returns a view of the i-th local cell.
func (m *Mesh3D) Cell(i int) (Cell3D, error) {
	if i < 0 || i >= m.NumCells() {
		return Cell3D{}, fmt.Errorf("Cell: index %d out of range [0 %d)", i, m.NumCells())
	}
	return Cell3D{idx: i, m: m}, nil
}

// PrintVoronoi writes the cell/face debug dump to path.
func (m *Mesh3D) PrintVoronoi(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return dbg.PrintVoronoi3D(f, m.d)
}
