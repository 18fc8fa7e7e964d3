// Copyright © 2026 Gridwell contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: resize/state_test.go
// Summary: Exercises interaction-state transitions and drag arithmetic.
// Usage: Executed during `go test` to guard against regressions.

package resize

import "testing"

func TestIdleState(t *testing.T) {
	s := IdleState()
	if s.Active() || s.InDrag() {
		t.Fatalf("idle state reports activity: %+v", s)
	}
}

func TestStateTransitions(t *testing.T) {
	s := IdleState().WithHandle(4)
	if !s.Active() || s.InDrag() {
		t.Fatalf("hover state: %+v", s)
	}
	s = s.WithDrag(DragSession{StartY: 100, StartHeight: 40})
	if !s.InDrag() || s.ActiveHandle != 4 {
		t.Fatalf("drag state: %+v", s)
	}
	s = s.DragFinished()
	if s.InDrag() {
		t.Fatal("drag survived DragFinished")
	}
	if s.ActiveHandle != 4 {
		t.Fatalf("handle lost on drag finish: %+v", s)
	}
	if s = s.WithHandle(NoHandle); s.Active() {
		t.Fatalf("WithHandle(NoHandle) still active: %+v", s)
	}
}

func TestDraggedHeight(t *testing.T) {
	sess := DragSession{StartY: 100, StartHeight: 40}
	if got := sess.DraggedHeight(130, 25); got != 70 {
		t.Fatalf("drag down 30px = %d, want 70", got)
	}
	if got := sess.DraggedHeight(90, 25); got != 30 {
		t.Fatalf("drag up 10px = %d, want 30", got)
	}
	// Dragging far above the start clamps to the minimum.
	if got := sess.DraggedHeight(0, 25); got != 25 {
		t.Fatalf("clamped height = %d, want 25", got)
	}
}

func TestMapThroughRemapsHandle(t *testing.T) {
	s := IdleState().WithHandle(20)
	shift := func(pos, bias int) (int, bool) { return pos - 8, false }
	got := s.MapThrough(shift, func(int) bool { return true })
	if got.ActiveHandle != 12 {
		t.Fatalf("remapped handle = %d, want 12", got.ActiveHandle)
	}
}

func TestMapThroughCollapsesDeletedHandle(t *testing.T) {
	s := IdleState().WithHandle(14).WithDrag(DragSession{StartY: 10, StartHeight: 30})
	deleted := func(pos, bias int) (int, bool) { return 11, true }
	got := s.MapThrough(deleted, func(int) bool { return true })
	if got.Active() || got.InDrag() {
		t.Fatalf("deleted handle did not collapse state: %+v", got)
	}
}

func TestMapThroughCollapsesInvalidHandle(t *testing.T) {
	s := IdleState().WithHandle(14)
	identity := func(pos, bias int) (int, bool) { return pos, false }
	got := s.MapThrough(identity, func(int) bool { return false })
	if got.Active() {
		t.Fatalf("invalid handle did not collapse state: %+v", got)
	}
}

func TestMapThroughKeepsDragOnUnrelatedEdit(t *testing.T) {
	s := IdleState().WithHandle(20).WithDrag(DragSession{StartY: 10, StartHeight: 30})
	shift := func(pos, bias int) (int, bool) { return pos + 8, false }
	got := s.MapThrough(shift, func(int) bool { return true })
	if !got.InDrag() || got.ActiveHandle != 28 {
		t.Fatalf("drag lost across unrelated edit: %+v", got)
	}
	if got.Dragging.StartHeight != 30 {
		t.Fatalf("drag session mutated: %+v", got.Dragging)
	}
}
