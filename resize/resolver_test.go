// Copyright © 2026 Gridwell contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: resize/resolver_test.go
// Summary: Exercises viewport-to-boundary-handle resolution.
// Usage: Executed during `go test` to guard against regressions.

package resize

import "testing"

// Geometry under test: 50px columns, 25px (minimum-height) rows, so the
// plain 3x3 table covers y 0..74 and the boundary below row 0 is y=25.

func resolveAt(t *testing.T, s *stubSurface, x, y, proximity int, allowLast bool) int {
	t.Helper()
	d, m, _, ok := s.geometry()
	if !ok {
		t.Fatal("no table in fixture")
	}
	return ResolveBoundary(s, d, m, Point{X: x, Y: y}, proximity, allowLast)
}

func TestResolveBoundaryInterior(t *testing.T) {
	s := &stubSurface{host: &stubHost{d: plainDoc()}, minH: 25}
	if got := resolveAt(t, s, 25, 12, 5, true); got != NoHandle {
		t.Fatalf("interior point resolved to %d, want NoHandle", got)
	}
}

func TestResolveBoundaryBottomEdge(t *testing.T) {
	s := &stubSurface{host: &stubHost{d: plainDoc()}, minH: 25}
	// Near the bottom of cell a: handle is a itself (pos 4).
	if got := resolveAt(t, s, 25, 22, 5, false); got != 4 {
		t.Fatalf("bottom-edge hit = %d, want 4", got)
	}
	// Same boundary hit from column 1 hands back cell b.
	if got := resolveAt(t, s, 75, 22, 5, false); got != 6 {
		t.Fatalf("bottom-edge hit in col 1 = %d, want 6", got)
	}
}

func TestResolveBoundaryTopEdge(t *testing.T) {
	s := &stubSurface{host: &stubHost{d: plainDoc()}, minH: 25}
	// Just below the row 0/1 boundary, inside cell d: the handle is the
	// cell above, not d.
	if got := resolveAt(t, s, 25, 27, 5, false); got != 4 {
		t.Fatalf("top-edge hit = %d, want 4", got)
	}
}

func TestResolveBoundaryOuterTopEdge(t *testing.T) {
	s := &stubSurface{host: &stubHost{d: plainDoc()}, minH: 25}
	// There is no row above the table to resize.
	if got := resolveAt(t, s, 25, 2, 5, true); got != NoHandle {
		t.Fatalf("outer top edge resolved to %d, want NoHandle", got)
	}
}

func TestResolveBoundaryLastRowPolicy(t *testing.T) {
	s := &stubSurface{host: &stubHost{d: plainDoc()}, minH: 25}
	if got := resolveAt(t, s, 25, 72, 5, false); got != NoHandle {
		t.Fatalf("last-row boundary resolved to %d with policy off", got)
	}
	if got := resolveAt(t, s, 25, 72, 5, true); got != 20 {
		t.Fatalf("last-row boundary = %d, want 20", got)
	}
}

func TestResolveBoundaryOffSurface(t *testing.T) {
	s := &stubSurface{host: &stubHost{d: plainDoc()}, minH: 25}
	if got := resolveAt(t, s, 200, 22, 5, true); got != NoHandle {
		t.Fatalf("point beyond table resolved to %d", got)
	}
}

func TestResolveBoundarySpanNormalization(t *testing.T) {
	s := &stubSurface{host: &stubHost{d: spanDoc()}, minH: 25}

	// Bottom edge of B sits on the row 0/1 boundary; B is the handle.
	if got := resolveAt(t, s, 75, 22, 5, false); got != 6 {
		t.Fatalf("bottom edge of B = %d, want 6", got)
	}
	// Top edge of D is the same boundary, normalized to B.
	if got := resolveAt(t, s, 75, 27, 5, false); got != 6 {
		t.Fatalf("top edge of D = %d, want 6", got)
	}
	// A spans across that boundary, so neither of its edges is near it:
	// hovering the boundary line inside A's column is not a hit.
	if got := resolveAt(t, s, 25, 27, 5, false); got != NoHandle {
		t.Fatalf("boundary line inside spanning cell = %d, want NoHandle", got)
	}
	// A's real bottom edge is the table's last boundary.
	if got := resolveAt(t, s, 25, 47, 5, true); got != 4 {
		t.Fatalf("bottom edge of spanning cell = %d, want 4", got)
	}
}

func TestResolveBoundaryProximityWindow(t *testing.T) {
	s := &stubSurface{host: &stubHost{d: plainDoc()}, minH: 25}
	// 6px from the boundary: outside a 5px window, inside a 7px one.
	if got := resolveAt(t, s, 25, 19, 5, false); got != NoHandle {
		t.Fatalf("6px away resolved to %d with 5px window", got)
	}
	if got := resolveAt(t, s, 25, 19, 7, false); got != 4 {
		t.Fatalf("6px away = %d with 7px window, want 4", got)
	}
}
