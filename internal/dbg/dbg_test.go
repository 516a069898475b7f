// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package dbg

import (
	"bytes"
	"strings"
	"testing"

	"github.com/2dChan/voromesh/internal/tessellate"
	"github.com/2dChan/voromesh/internal/voronoi"
	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
)

func mustTessellation2D(t *testing.T) *tessellate.Engine2D {
	t.Helper()
	e := tessellate.NewEngine2D(tessellate.Bounds2D{Min: [2]float64{0, 0}, Max: [2]float64{1, 1}}, tessellate.DefaultOptions())
	pts := []r2.Point{{X: 0.3, Y: 0.3}, {X: 0.7, Y: 0.3}, {X: 0.5, Y: 0.7}}
	for i, p := range pts {
		if err := e.AddLocalVertex(i, p); err != nil {
			t.Fatalf("AddLocalVertex(%d): %v", i, err)
		}
	}
	if err := e.Consolidate(); err != nil {
		t.Fatalf("Consolidate: %v", err)
	}
	return e
}

func TestPrintTessellation2D_LineKinds(t *testing.T) {
	e := mustTessellation2D(t)
	var buf bytes.Buffer
	if err := PrintTessellation2D(&buf, e); err != nil {
		t.Fatalf("PrintTessellation2D: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) == 0 {
		t.Fatal("no lines written")
	}
	for _, line := range lines {
		fields := strings.Split(line, "\t")
		switch fields[0] {
		case "V":
			if len(fields) != 4 {
				t.Errorf("V line has %d fields, want 4: %q", len(fields), line)
			}
		case "T":
			if len(fields) != 4 {
				t.Errorf("T line has %d fields, want 4: %q", len(fields), line)
			}
		default:
			t.Errorf("unexpected line kind %q", fields[0])
		}
	}
}

func TestPrintVoronoi2D_LineKinds(t *testing.T) {
	e := mustTessellation2D(t)
	for _, p := range []r2.Point{{X: -2, Y: -2}, {X: 3, Y: -2}, {X: 0.5, Y: 3}} {
		if _, err := e.AddGhostVertex(p); err != nil {
			t.Fatalf("AddGhostVertex: %v", err)
		}
	}
	d, err := voronoi.Build2D(e)
	if err != nil {
		t.Fatalf("Build2D: %v", err)
	}
	var buf bytes.Buffer
	if err := PrintVoronoi2D(&buf, d); err != nil {
		t.Fatalf("PrintVoronoi2D: %v", err)
	}
	for _, line := range strings.Split(strings.TrimRight(buf.String(), "\n"), "\n") {
		fields := strings.Split(line, "\t")
		switch fields[0] {
		case "C":
			if len(fields) != 5 {
				t.Errorf("C line has %d fields, want 5: %q", len(fields), line)
			}
		case "F":
			if len(fields) < 4 {
				t.Errorf("F line has %d fields, want >= 4: %q", len(fields), line)
			}
		default:
			t.Errorf("unexpected line kind %q", fields[0])
		}
	}
}

func mustTessellation3D(t *testing.T) *tessellate.Engine3D {
	t.Helper()
	e := tessellate.NewEngine3D(tessellate.Bounds3D{Min: [3]float64{0, 0, 0}, Max: [3]float64{1, 1, 1}}, tessellate.DefaultOptions())
	pts := []r3.Vector{
		{X: 0.3, Y: 0.3, Z: 0.3}, {X: 0.7, Y: 0.3, Z: 0.3},
		{X: 0.5, Y: 0.7, Z: 0.3}, {X: 0.5, Y: 0.5, Z: 0.7},
	}
	for i, p := range pts {
		if err := e.AddLocalVertex(i, p); err != nil {
			t.Fatalf("AddLocalVertex(%d): %v", i, err)
		}
	}
	if err := e.Consolidate(); err != nil {
		t.Fatalf("Consolidate: %v", err)
	}
	return e
}

func TestPrintTessellation3D_LineKinds(t *testing.T) {
	e := mustTessellation3D(t)
	var buf bytes.Buffer
	if err := PrintTessellation3D(&buf, e); err != nil {
		t.Fatalf("PrintTessellation3D: %v", err)
	}
	for _, line := range strings.Split(strings.TrimRight(buf.String(), "\n"), "\n") {
		fields := strings.Split(line, "\t")
		switch fields[0] {
		case "V":
			if len(fields) != 5 {
				t.Errorf("V line has %d fields, want 5: %q", len(fields), line)
			}
		case "T":
			if len(fields) != 5 {
				t.Errorf("T line has %d fields, want 5: %q", len(fields), line)
			}
		default:
			t.Errorf("unexpected line kind %q", fields[0])
		}
	}
}
