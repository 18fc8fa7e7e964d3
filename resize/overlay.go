// Copyright © 2026 Gridwell contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: resize/overlay.go
// Summary: Boundary markers and screen-row height synchronization.

package resize

import (
	"github.com/gridwell/gridwell/doc"
	"github.com/gridwell/gridwell/grid"
)

// Marker is one resizable-boundary indicator: the bottom edge of the
// cell starting at CellPos, on the boundary below Row.
type Marker struct {
	CellPos int
	Row     int
	// Active marks the boundary the current handle points at.
	Active bool
}

// HandleMarkers computes the overlay markers for every true row
// boundary. A cell spanning several rows contributes exactly one marker,
// at its real bottom edge. No markers are emitted without an active
// handle.
func HandleMarkers(m *grid.Map, tableStart, activeHandle int) []Marker {
	if activeHandle == NoHandle || m.Height == 0 {
		return nil
	}
	var markers []Marker
	for row := 0; row < m.Height; row++ {
		for _, off := range m.BottomCells(row) {
			pos := tableStart + off
			markers = append(markers, Marker{
				CellPos: pos,
				Row:     row,
				Active:  pos == activeHandle,
			})
		}
	}
	return markers
}

// NoOverride disables the live-preview override in RenderRowHeights.
const NoOverride = -1

// RenderRowHeights synchronizes the screen table's displayed row heights
// with the document's committed heights. When overrideRow is a valid row
// index its displayed height is forced to overridePx without touching
// the document (live drag preview). Screen rows beyond the document's
// row count are removed so no stale height styling survives.
func RenderRowHeights(d *doc.Document, tableStart int, m *grid.Map, st ScreenTable, minHeightPx, overrideRow, overridePx int) {
	for row := 0; row < m.Height; row++ {
		h := RowHeight(d, tableStart, m, row, minHeightPx)
		if row == overrideRow {
			h = overridePx
		}
		st.SetRowHeight(row, h)
	}
	st.TrimRows(m.Height)
}
