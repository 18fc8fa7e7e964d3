// Copyright © 2026 Gridwell contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: resize/overlay_test.go
// Summary: Exercises boundary markers and screen-row height sync.
// Usage: Executed during `go test` to guard against regressions.

package resize

import "testing"

func TestHandleMarkersInactive(t *testing.T) {
	d := plainDoc()
	m, tableStart := mustMap(d)
	if got := HandleMarkers(m, tableStart, NoHandle); got != nil {
		t.Fatalf("markers without an active handle: %v", got)
	}
}

func TestHandleMarkersPlain(t *testing.T) {
	d := plainDoc()
	m, tableStart := mustMap(d)
	markers := HandleMarkers(m, tableStart, 4)
	if len(markers) != 9 {
		t.Fatalf("got %d markers, want one per cell", len(markers))
	}
	active := 0
	for _, mk := range markers {
		if mk.Active {
			active++
			if mk.CellPos != 4 || mk.Row != 0 {
				t.Fatalf("active marker %+v, want cell 4 on row 0", mk)
			}
		}
	}
	if active != 1 {
		t.Fatalf("%d active markers, want 1", active)
	}
}

func TestHandleMarkersSpansOnce(t *testing.T) {
	d := spanDoc()
	m, tableStart := mustMap(d)
	markers := HandleMarkers(m, tableStart, 6)
	// B and C end at row 0; A, D, E end at row 1. A contributes exactly
	// one marker, at its true bottom edge.
	if len(markers) != 5 {
		t.Fatalf("got %d markers, want 5", len(markers))
	}
	seen := 0
	for _, mk := range markers {
		if mk.CellPos == 4 {
			seen++
			if mk.Row != 1 {
				t.Fatalf("spanning cell marker on row %d, want 1", mk.Row)
			}
		}
	}
	if seen != 1 {
		t.Fatalf("spanning cell contributed %d markers, want 1", seen)
	}
}

func TestRenderRowHeights(t *testing.T) {
	h := &stubHost{d: spanDoc()}
	m, tableStart := mustMap(h.d)
	tx, err := ApplyRowHeight(h.d, tableStart, m, 12, 90)
	if err != nil {
		t.Fatal(err)
	}
	h.Commit(tx)

	st := newStubScreenTable()
	RenderRowHeights(h.Doc(), tableStart, m, st, 25, NoOverride, 0)
	if st.heights[0] != 25 || st.heights[1] != 90 {
		t.Fatalf("synced heights = %v, want row0=25 row1=90", st.heights)
	}
	if len(st.trims) != 1 || st.trims[0] != 2 {
		t.Fatalf("TrimRows calls = %v, want one call with 2", st.trims)
	}
}

func TestRenderRowHeightsOverride(t *testing.T) {
	d := plainDoc()
	m, tableStart := mustMap(d)
	st := newStubScreenTable()
	st.heights[3] = 77 // stale row from a previous, taller table

	RenderRowHeights(d, tableStart, m, st, 25, 1, 64)
	if st.heights[0] != 25 || st.heights[1] != 64 || st.heights[2] != 25 {
		t.Fatalf("override render = %v", st.heights)
	}
	if _, stale := st.heights[3]; stale {
		t.Fatal("stale screen row survived the trim")
	}
}
