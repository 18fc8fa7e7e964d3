// Copyright © 2026 Gridwell contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: resize/interfaces.go
// Summary: Collaborator interfaces the resize core consumes.
// Usage: Implemented by the screen package (and by test stubs).

package resize

import "github.com/gridwell/gridwell/doc"

// Point is a viewport coordinate in pixels.
type Point struct {
	X, Y int
}

// Rect is a pixel rectangle. X0/Y0 inclusive, X1/Y1 exclusive.
type Rect struct {
	X0, Y0, X1, Y1 int
}

// Surface is the rendering layer's hit-testing and event-capture
// contract.
type Surface interface {
	// PosAt maps a viewport coordinate to a document position.
	PosAt(x, y int) (int, bool)
	// CellRect returns the on-screen rectangle of the cell starting at
	// the given document position.
	CellRect(cellPos int) (Rect, bool)
	// CaptureMouse attaches h as a temporary global mouse listener, so a
	// drag keeps receiving events after leaving the surface bounds.
	CaptureMouse(h GlobalMouseHandler)
	// ReleaseMouse detaches the listener installed by CaptureMouse.
	ReleaseMouse()
}

// GlobalMouseHandler receives mouse events while a drag holds the
// global capture.
type GlobalMouseHandler interface {
	GlobalMouseMove(x, y int, buttonHeld bool)
	GlobalMouseUp(x, y int)
}

// ScreenTable is the physical row scaffold the overlay renderer keeps in
// sync with the document.
type ScreenTable interface {
	// SetRowHeight forces the displayed height of a row, in pixels.
	SetRowHeight(row, heightPx int)
	// TrimRows drops any screen rows at index >= n.
	TrimRows(n int)
}

// Host is the document side: the current document and the commit path
// for finished edits. Commit applies the transaction and notifies every
// document listener, including the controller's own DocChanged.
type Host interface {
	Doc() *doc.Document
	Commit(tx *doc.Tx)
}
