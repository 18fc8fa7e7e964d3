// Copyright © 2026 Gridwell contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: resize/state.go
// Summary: Interaction state values for hover and drag tracking.
// Usage: Owned by the Controller; replaced wholesale on every event.

package resize

// DragSession is the transient record of a resize gesture in progress.
type DragSession struct {
	// StartY is the pointer's Y coordinate when the drag began.
	StartY int
	// StartHeight is the row's committed height when the drag began.
	StartHeight int
}

// State is a snapshot of the resize interaction. It is an immutable
// value: transitions produce a new State, so a renderer holding one
// always sees a consistent pair of handle and drag session.
type State struct {
	// ActiveHandle is the document position of the hovered or dragged
	// boundary's cell, or NoHandle.
	ActiveHandle int
	// Dragging is nil outside a drag.
	Dragging *DragSession
}

// IdleState is the initial no-handle state.
func IdleState() State {
	return State{ActiveHandle: NoHandle}
}

// Active reports whether a handle is hovered or dragged.
func (s State) Active() bool { return s.ActiveHandle != NoHandle }

// InDrag reports whether a drag is in progress.
func (s State) InDrag() bool { return s.Dragging != nil }

// WithHandle returns the hover state for handle (or the idle state for
// NoHandle). Only valid outside a drag.
func (s State) WithHandle(handle int) State {
	return State{ActiveHandle: handle}
}

// WithDrag returns the dragging state for the current handle.
func (s State) WithDrag(sess DragSession) State {
	return State{ActiveHandle: s.ActiveHandle, Dragging: &sess}
}

// DragFinished returns the hover state that follows a completed drag.
func (s State) DragFinished() State {
	return State{ActiveHandle: s.ActiveHandle}
}

// DraggedHeight computes the live height for the drag at pointer Y,
// clamped to the minimum row height.
func (s DragSession) DraggedHeight(pointerY, minHeightPx int) int {
	h := s.StartHeight + (pointerY - s.StartY)
	if h < minHeightPx {
		h = minHeightPx
	}
	return h
}

// MapThrough remaps the state's handle across a document edit. valid
// reports whether a remapped position still names a cell boundary in the
// new document; when it does not, the state collapses to idle and any
// drag is abandoned. A drag survives unrelated remote edits.
func (s State) MapThrough(mapPos func(pos, bias int) (int, bool), valid func(pos int) bool) State {
	if !s.Active() {
		return s
	}
	mapped, deleted := mapPos(s.ActiveHandle, -1)
	if deleted || !valid(mapped) {
		return IdleState()
	}
	return State{ActiveHandle: mapped, Dragging: s.Dragging}
}
