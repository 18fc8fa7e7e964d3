// Copyright © 2026 Gridwell contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: grid/map.go
// Summary: Spanning-aware position index over a table node.
// Usage: Built once per table instance; every geometry query in the
// resize pipeline goes through it.

package grid

import (
	"fmt"

	"github.com/gridwell/gridwell/doc"
)

// StructureError reports a table whose spans do not exactly tile the
// row/column matrix. A partial map must never be used; callers treat
// this as a document-integrity fault.
type StructureError struct {
	Row    int
	Col    int
	Reason string
}

func (e *StructureError) Error() string {
	return fmt.Sprintf("grid: malformed table at row %d, col %d: %s", e.Row, e.Col, e.Reason)
}

// Map is an immutable row-major matrix of size Width*Height. Each slot
// holds the offset (relative to the table start) of the cell occupying
// it; a spanning cell repeats in every slot it covers. A Map is only
// valid against the exact table instance it was built from.
type Map struct {
	Width  int
	Height int
	Cells  []int
}

// CellSpan is the rectangle of matrix slots a cell covers. Top/Left are
// inclusive, Bottom/Right exclusive.
type CellSpan struct {
	Top, Left, Bottom, Right int
}

// BuildMap computes the position index for a table. It fails with a
// *StructureError when a span overlaps another cell, runs past the
// table edge, or leaves a gap in the matrix.
func BuildMap(t *doc.Table) (*Map, error) {
	height := len(t.Rows)
	if height == 0 {
		return &Map{}, nil
	}

	width := 0
	for _, cell := range t.Rows[0].Cells {
		width += cell.Attrs.Normalize().Colspan
	}

	cells := make([]int, width*height)
	for i := range cells {
		cells[i] = -1
	}

	off := 0
	for ri, row := range t.Rows {
		off++ // row open token
		col := 0
		for _, cell := range row.Cells {
			attrs := cell.Attrs.Normalize()
			for col < width && cells[ri*width+col] != -1 {
				col++
			}
			if col >= width {
				return nil, &StructureError{Row: ri, Col: col, Reason: "cell overflows table width"}
			}
			if col+attrs.Colspan > width {
				return nil, &StructureError{Row: ri, Col: col, Reason: "colspan runs past table edge"}
			}
			if ri+attrs.Rowspan > height {
				return nil, &StructureError{Row: ri, Col: col, Reason: "rowspan runs past table edge"}
			}
			for r := ri; r < ri+attrs.Rowspan; r++ {
				for c := col; c < col+attrs.Colspan; c++ {
					if cells[r*width+c] != -1 {
						return nil, &StructureError{Row: r, Col: c, Reason: "overlapping spans"}
					}
					cells[r*width+c] = off
				}
			}
			col += attrs.Colspan
			off += cell.Size()
		}
		off++ // row close token
	}

	for i, slot := range cells {
		if slot == -1 {
			return nil, &StructureError{Row: i / width, Col: i % width, Reason: "gap in cell matrix"}
		}
	}

	return &Map{Width: width, Height: height, Cells: cells}, nil
}

// CellAt returns the offset of the cell occupying slot (row, col).
func (m *Map) CellAt(row, col int) int {
	return m.Cells[row*m.Width+col]
}

// ColumnOf returns the 0-based column the cell starting at offset
// occupies, counting leading spans, or -1 when the offset is not a cell
// in this map.
func (m *Map) ColumnOf(offset int) int {
	for i, slot := range m.Cells {
		if slot == offset {
			return i % m.Width
		}
	}
	return -1
}

// RowOf returns the 0-based row the cell starting at offset begins in,
// or -1 when the offset is not a cell in this map.
func (m *Map) RowOf(offset int) int {
	for i, slot := range m.Cells {
		if slot == offset {
			return i / m.Width
		}
	}
	return -1
}

// FindCell returns the full span rectangle of the cell at offset.
func (m *Map) FindCell(offset int) (CellSpan, bool) {
	span := CellSpan{Top: -1}
	for i, slot := range m.Cells {
		if slot != offset {
			continue
		}
		row, col := i/m.Width, i%m.Width
		if span.Top == -1 {
			span = CellSpan{Top: row, Left: col, Bottom: row + 1, Right: col + 1}
			continue
		}
		if col < span.Left {
			span.Left = col
		}
		if col+1 > span.Right {
			span.Right = col + 1
		}
		if row+1 > span.Bottom {
			span.Bottom = row + 1
		}
	}
	return span, span.Top != -1
}

// RowCells returns the distinct cell offsets occupying row, in column
// order. A cell spanning several columns or reaching down from an
// earlier row appears once.
func (m *Map) RowCells(row int) []int {
	seen := make(map[int]bool, m.Width)
	out := make([]int, 0, m.Width)
	for c := 0; c < m.Width; c++ {
		off := m.CellAt(row, c)
		if seen[off] {
			continue
		}
		seen[off] = true
		out = append(out, off)
	}
	return out
}

// BottomCells returns the distinct offsets of cells whose span ends at
// row, in column order. These are the cells owning the boundary below
// that row.
func (m *Map) BottomCells(row int) []int {
	seen := make(map[int]bool, m.Width)
	out := make([]int, 0, m.Width)
	for c := 0; c < m.Width; c++ {
		off := m.CellAt(row, c)
		if seen[off] {
			continue
		}
		seen[off] = true
		if row+1 == m.Height || m.CellAt(row+1, c) != off {
			out = append(out, off)
		}
	}
	return out
}
