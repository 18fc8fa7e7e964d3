// Copyright © 2026 Gridwell contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: doc/resolve.go
// Summary: Maps document positions to the enclosing cell and table.

package doc

// ResolvedCell describes the cell enclosing a position together with its
// ancestor table. TablePos is the position of the table's open token;
// CellPos the position of the cell's open token.
type ResolvedCell struct {
	Table    *Table
	TablePos int
	Row      *Row
	RowIndex int
	Cell     *Cell
	CellPos  int
}

// TableStart returns the position just inside the table's open token.
// Grid map offsets are relative to this.
func (rc ResolvedCell) TableStart() int { return rc.TablePos + 1 }

// Resolve finds the cell enclosing pos. A position sitting exactly on a
// cell's open token resolves into that cell; a position on a close token
// resolves into the node it closes.
func (d *Document) Resolve(pos int) (ResolvedCell, bool) {
	at := 0
	for _, child := range d.Children {
		end := at + child.Size()
		if pos >= at && pos < end {
			if t, ok := child.(*Table); ok {
				return resolveInTable(t, at, pos)
			}
			return ResolvedCell{}, false
		}
		at = end
	}
	return ResolvedCell{}, false
}

func resolveInTable(t *Table, tablePos, pos int) (ResolvedCell, bool) {
	at := tablePos + 1
	for ri, row := range t.Rows {
		rowEnd := at + row.Size()
		if pos >= at && pos < rowEnd {
			cellAt := at + 1
			for _, cell := range row.Cells {
				cellEnd := cellAt + cell.Size()
				if pos >= cellAt && pos < cellEnd {
					return ResolvedCell{
						Table:    t,
						TablePos: tablePos,
						Row:      row,
						RowIndex: ri,
						Cell:     cell,
						CellPos:  cellAt,
					}, true
				}
				cellAt = cellEnd
			}
			return ResolvedCell{}, false
		}
		at = rowEnd
	}
	return ResolvedCell{}, false
}

// CellAt returns the cell starting exactly at pos, or false when pos is
// not a cell's open token. Used to validate remapped boundary handles.
func (d *Document) CellAt(pos int) (*Cell, bool) {
	rc, ok := d.Resolve(pos)
	if !ok || rc.CellPos != pos {
		return nil, false
	}
	return rc.Cell, true
}
