// Copyright © 2026 Gridwell contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: resize/propagate.go
// Summary: Propagates a row-height change to every cell spanning the row.

package resize

import (
	"fmt"

	"github.com/gridwell/gridwell/doc"
	"github.com/gridwell/gridwell/grid"
)

// ApplyRowHeight builds the single atomic edit that sets the height of
// the row owned by handle to heightPx. Every cell whose span covers the
// row is updated exactly once, including cells reaching down from
// earlier rows; cells outside the row keep their attributes. The
// returned transaction is empty (Changed() == false) when every touched
// cell already carries heightPx, and such a transaction must not be
// committed.
func ApplyRowHeight(d *doc.Document, tableStart int, m *grid.Map, handle, heightPx int) (*doc.Tx, error) {
	span, ok := m.FindCell(handle - tableStart)
	if !ok {
		return nil, fmt.Errorf("resize: handle %d is not a cell in the grid map", handle)
	}
	row := span.Bottom - 1

	tx := doc.NewTx(d)
	for _, off := range m.RowCells(row) {
		pos := tableStart + off
		rc, ok := d.Resolve(pos)
		if !ok || rc.CellPos != pos {
			return nil, fmt.Errorf("resize: grid map points at %d but no cell starts there", pos)
		}
		attrs := rc.Cell.Attrs
		attrs.Height = heightPx
		if err := tx.SetCellAttrs(pos, attrs); err != nil {
			return nil, err
		}
	}
	return tx, nil
}

// RowHeight reads the committed height of a row: the largest height
// carried by a cell whose span ends at the row, or minHeightPx when
// none is set.
func RowHeight(d *doc.Document, tableStart int, m *grid.Map, row, minHeightPx int) int {
	h := 0
	for _, off := range m.BottomCells(row) {
		if rc, ok := d.Resolve(tableStart + off); ok && rc.Cell.Attrs.Height > h {
			h = rc.Cell.Attrs.Height
		}
	}
	if h == 0 {
		return minHeightPx
	}
	return h
}
