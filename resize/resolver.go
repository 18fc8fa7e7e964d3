// Copyright © 2026 Gridwell contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: resize/resolver.go
// Summary: Maps viewport coordinates to row-boundary handles.

package resize

import (
	"github.com/gridwell/gridwell/doc"
	"github.com/gridwell/gridwell/grid"
)

// NoHandle is the "no boundary here" handle value.
const NoHandle = -1

// ResolveBoundary maps a viewport point to the handle of the row
// boundary it sits on, or NoHandle. The handle is the absolute document
// position of a cell whose bottom edge is the boundary.
//
// The hit cell's nearest edge is only a candidate: with row spans the
// visually nearest edge can belong to a different logical row than the
// cell the hit-test landed on, so the candidate is normalized through
// the grid map to the true top-of-span or bottom-of-span boundary.
func ResolveBoundary(s Surface, d *doc.Document, m *grid.Map, pt Point, proximityPx int, allowLastRow bool) int {
	pos, ok := s.PosAt(pt.X, pt.Y)
	if !ok {
		return NoHandle
	}
	rc, ok := d.Resolve(pos)
	if !ok {
		return NoHandle
	}
	rect, ok := s.CellRect(rc.CellPos)
	if !ok {
		return NoHandle
	}

	span, ok := m.FindCell(rc.CellPos - rc.TableStart())
	if !ok {
		return NoHandle
	}

	var boundaryRow int
	switch {
	case pt.Y-rect.Y0 <= proximityPx:
		// Top edge. The boundary is below the row above the span; at the
		// table's outer top edge there is no row above to resize.
		if span.Top == 0 {
			return NoHandle
		}
		boundaryRow = span.Top - 1
	case rect.Y1-pt.Y <= proximityPx:
		boundaryRow = span.Bottom - 1
	default:
		return NoHandle
	}

	if !allowLastRow && boundaryRow == m.Height-1 {
		return NoHandle
	}

	// The handle cell must end exactly at the boundary. For a top-edge
	// hit that is the cell above the hit cell's own column; for a
	// bottom-edge hit it is the hit cell itself, which CellAt returns.
	owner := m.CellAt(boundaryRow, span.Left)
	if ownerSpan, ok := m.FindCell(owner); !ok || ownerSpan.Bottom-1 != boundaryRow {
		return NoHandle
	}
	return rc.TableStart() + owner
}
