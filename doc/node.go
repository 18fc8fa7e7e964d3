// Copyright © 2026 Gridwell contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: doc/node.go
// Summary: Node tree for grid documents: tables, rows, cells and positions.
// Usage: Used throughout the project as the canonical document model.

package doc

// CellAttrs carries the statically typed attributes of a cell. Height is
// in pixels; zero means "auto".
type CellAttrs struct {
	Rowspan int
	Colspan int
	Height  int
}

// Normalize clamps span values so a zero-valued CellAttrs is a plain
// 1x1 cell.
func (a CellAttrs) Normalize() CellAttrs {
	if a.Rowspan < 1 {
		a.Rowspan = 1
	}
	if a.Colspan < 1 {
		a.Colspan = 1
	}
	return a
}

// Node is any element of the document tree. Size is measured in position
// tokens: a branch node occupies an open token, its content, and a close
// token.
type Node interface {
	Size() int
}

// Cell is a leaf of the grid structure. Its textual payload is carried as
// an attribute rather than child nodes, so a cell always occupies exactly
// two tokens.
type Cell struct {
	Attrs CellAttrs
	Text  string
}

func (c *Cell) Size() int { return 2 }

// WithAttrs returns a copy of the cell carrying the given attributes.
func (c *Cell) WithAttrs(attrs CellAttrs) *Cell {
	return &Cell{Attrs: attrs.Normalize(), Text: c.Text}
}

// Row is an ordered sequence of cells.
type Row struct {
	Cells []*Cell
}

func (r *Row) Size() int {
	size := 2
	for _, c := range r.Cells {
		size += c.Size()
	}
	return size
}

// Table is an ordered sequence of rows.
type Table struct {
	Rows []*Row
}

func (t *Table) Size() int {
	size := 2
	for _, r := range t.Rows {
		size += r.Size()
	}
	return size
}

// Paragraph is a non-grid block. It exists so tables do not trivially
// start at position zero and so structural edits move positions around.
type Paragraph struct {
	Text string
}

func (p *Paragraph) Size() int { return 2 }

// Document is the root: an ordered sequence of block nodes. Positions
// count tokens from the start of the first block.
type Document struct {
	Children []Node
}

func (d *Document) Size() int {
	size := 0
	for _, c := range d.Children {
		size += c.Size()
	}
	return size
}

// NewCell builds a 1x1 auto-height cell.
func NewCell(text string) *Cell {
	return &Cell{Attrs: CellAttrs{Rowspan: 1, Colspan: 1}, Text: text}
}

// NewSpanCell builds a cell covering the given span.
func NewSpanCell(text string, rowspan, colspan int) *Cell {
	return &Cell{Attrs: CellAttrs{Rowspan: rowspan, Colspan: colspan}.Normalize(), Text: text}
}

// FirstTable returns the first table in the document and the position of
// its open token.
func (d *Document) FirstTable() (*Table, int, bool) {
	pos := 0
	for _, child := range d.Children {
		if t, ok := child.(*Table); ok {
			return t, pos, true
		}
		pos += child.Size()
	}
	return nil, 0, false
}

// clone helpers used by the transform layer. Cells are shared until
// replaced; rows and tables are copied shallowly so an applied step never
// mutates a document another component still holds.

func (r *Row) clone() *Row {
	cells := make([]*Cell, len(r.Cells))
	copy(cells, r.Cells)
	return &Row{Cells: cells}
}

func (t *Table) clone() *Table {
	rows := make([]*Row, len(t.Rows))
	copy(rows, t.Rows)
	return &Table{Rows: rows}
}

func (d *Document) clone() *Document {
	children := make([]Node, len(d.Children))
	copy(children, d.Children)
	return &Document{Children: children}
}
