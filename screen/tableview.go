// Copyright © 2026 Gridwell contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: screen/tableview.go
// Summary: Default row-scaffold renderer for a grid table.
// Usage: Implements the hit-test and screen-table contracts the resize
// core consumes, and paints the table into the terminal.

package screen

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/gridwell/gridwell/doc"
	"github.com/gridwell/gridwell/grid"
	"github.com/gridwell/gridwell/resize"
)

// Terminal cells are treated as fixed-size pixel blocks, matching the
// glyph metrics the overlay code elsewhere in the project assumes.
const (
	CellPxWidth  = 8
	CellPxHeight = 16
)

// colCells is the content width of one grid column, in terminal cells.
const colCells = 14

// TableView owns the physical layout of one table: displayed row heights
// in pixels, column extents, and the mapping between terminal
// coordinates, pixel coordinates, and document positions.
type TableView struct {
	minRowHeightPx int

	d         *doc.Document
	table     *doc.Table
	tablePos  int
	m         *grid.Map
	heightsPx []int
}

// NewTableView builds the default scaffold renderer.
func NewTableView(minRowHeightPx int) *TableView {
	return &TableView{minRowHeightPx: minRowHeightPx}
}

// SetDocument points the view at a new document instance, rebuilding the
// geometry index. Returns the structural error when the table fails to
// index; the view keeps its previous geometry in that case.
func (v *TableView) SetDocument(d *doc.Document) error {
	t, pos, ok := d.FirstTable()
	if !ok {
		v.d, v.table, v.m = d, nil, nil
		v.heightsPx = nil
		return nil
	}
	m, err := grid.BuildMap(t)
	if err != nil {
		return err
	}
	v.d, v.table, v.tablePos, v.m = d, t, pos, m

	heights := make([]int, m.Height)
	for r := range heights {
		heights[r] = resize.RowHeight(d, pos+1, m, r, v.minRowHeightPx)
	}
	v.heightsPx = heights
	return nil
}

// TableStart returns the position just inside the table's open token.
func (v *TableView) TableStart() int { return v.tablePos + 1 }

// SetRowHeight forces the displayed height of one row.
func (v *TableView) SetRowHeight(row, heightPx int) {
	for len(v.heightsPx) <= row {
		v.heightsPx = append(v.heightsPx, v.minRowHeightPx)
	}
	if heightPx < 1 {
		heightPx = 1
	}
	v.heightsPx[row] = heightPx
}

// TrimRows drops displayed rows at index >= n so no stale height
// styling outlives a shrunk document.
func (v *TableView) TrimRows(n int) {
	if n < 0 {
		n = 0
	}
	if len(v.heightsPx) > n {
		v.heightsPx = v.heightsPx[:n]
	}
}

// RowHeightPx returns the displayed height of a row.
func (v *TableView) RowHeightPx(row int) int {
	if row < 0 || row >= len(v.heightsPx) {
		return v.minRowHeightPx
	}
	return v.heightsPx[row]
}

func (v *TableView) rowTopPx(row int) int {
	y := 0
	for r := 0; r < row && r < len(v.heightsPx); r++ {
		y += v.heightsPx[r]
	}
	return y
}

func (v *TableView) colLeftPx(col int) int {
	return col * colCells * CellPxWidth
}

// PosAt maps a pixel coordinate to the position of the enclosing cell.
func (v *TableView) PosAt(x, y int) (int, bool) {
	if v.m == nil || v.m.Height == 0 {
		return 0, false
	}
	if x < 0 || y < 0 || x >= v.colLeftPx(v.m.Width) || y >= v.rowTopPx(v.m.Height) {
		return 0, false
	}
	row := 0
	for row < v.m.Height-1 && y >= v.rowTopPx(row+1) {
		row++
	}
	col := x / (colCells * CellPxWidth)
	if col >= v.m.Width {
		col = v.m.Width - 1
	}
	return v.TableStart() + v.m.CellAt(row, col), true
}

// CellRect returns the pixel rectangle of the cell starting at cellPos,
// covering its full span.
func (v *TableView) CellRect(cellPos int) (resize.Rect, bool) {
	if v.m == nil {
		return resize.Rect{}, false
	}
	span, ok := v.m.FindCell(cellPos - v.TableStart())
	if !ok {
		return resize.Rect{}, false
	}
	return resize.Rect{
		X0: v.colLeftPx(span.Left),
		Y0: v.rowTopPx(span.Top),
		X1: v.colLeftPx(span.Right),
		Y1: v.rowTopPx(span.Top) + v.spanHeightPx(span),
	}, true
}

func (v *TableView) spanHeightPx(span grid.CellSpan) int {
	h := 0
	for r := span.Top; r < span.Bottom && r < len(v.heightsPx); r++ {
		h += v.heightsPx[r]
	}
	return h
}

// contentRows converts a pixel height to terminal content rows.
func contentRows(px int) int {
	rows := (px + CellPxHeight - 1) / CellPxHeight
	if rows < 1 {
		rows = 1
	}
	return rows
}

// rowTopTerm returns the terminal row of the first content line of a doc
// row, relative to the table's top border.
func (v *TableView) rowTopTerm(row int) int {
	y := 1
	for r := 0; r < row && r < len(v.heightsPx); r++ {
		y += contentRows(v.heightsPx[r]) + 1
	}
	return y
}

// PxForTerminal maps a terminal coordinate inside the table to the pixel
// coordinate handed to the resolver. A pointer on a row's border line
// maps to the last pixel of the row above it, so boundary grabs land
// within any sane proximity threshold; a pointer inside a row maps to
// the row's vertical middle.
func (v *TableView) PxForTerminal(tx, ty int) (int, int, bool) {
	if v.m == nil || v.m.Height == 0 {
		return 0, 0, false
	}
	if tx < 1 || tx >= v.m.Width*(colCells+1) {
		return 0, 0, false
	}
	px := (tx-1)/(colCells+1)*colCells*CellPxWidth + colCells*CellPxWidth/2

	if ty == 0 {
		// Table's outer top border: no row above to resize.
		return px, 0, true
	}
	for row := 0; row < v.m.Height; row++ {
		top := v.rowTopTerm(row)
		rows := contentRows(v.heightsPx[row])
		if ty < top+rows {
			mid := v.rowTopPx(row) + v.heightsPx[row]/2
			return px, mid, true
		}
		if ty == top+rows {
			return px, v.rowTopPx(row) + v.heightsPx[row] - 1, true
		}
	}
	return 0, 0, false
}

// TermHeight returns the table's full height in terminal rows, borders
// included.
func (v *TableView) TermHeight() int {
	if v.m == nil {
		return 0
	}
	return v.rowTopTerm(v.m.Height)
}

// TermWidth returns the table's full width in terminal cells.
func (v *TableView) TermWidth() int {
	if v.m == nil {
		return 0
	}
	return v.m.Width*(colCells+1) + 1
}

// Draw paints the table. Markers are the resize overlay decorations;
// they are only supplied while a handle is active.
func (v *TableView) Draw(drv ScreenDriver, markers []resize.Marker) {
	if v.m == nil || v.m.Height == 0 {
		return
	}

	border := tcell.StyleDefault.Foreground(tcell.ColorGray)
	text := tcell.StyleDefault
	markerStyle := tcell.StyleDefault.Foreground(tcell.ColorTeal)
	activeStyle := tcell.StyleDefault.Foreground(tcell.ColorOrange).Bold(true)

	markerFor := make(map[int]resize.Marker, len(markers))
	for _, mk := range markers {
		markerFor[mk.CellPos] = mk
	}

	v.drawGridLines(drv, border)

	for row := 0; row < v.m.Height; row++ {
		for _, off := range v.m.RowCells(row) {
			span, ok := v.m.FindCell(off)
			if !ok || span.Top != row {
				continue
			}
			v.drawCellText(drv, span, off, text)
		}
		for _, off := range v.m.BottomCells(row) {
			mk, ok := markerFor[v.TableStart()+off]
			if !ok {
				continue
			}
			style := markerStyle
			if mk.Active {
				style = activeStyle
			}
			v.drawBoundarySegment(drv, off, row, style)
		}
	}
}

func (v *TableView) drawGridLines(drv ScreenDriver, style tcell.Style) {
	width := v.TermWidth()

	// Outer top border.
	for x := 0; x < width; x++ {
		drv.SetContent(x, 0, '─', nil, style)
	}

	for row := 0; row < v.m.Height; row++ {
		top := v.rowTopTerm(row)
		rows := contentRows(v.heightsPx[row])

		// Vertical lines: left edge, then after each column where the
		// occupying cell changes (span interiors stay open).
		for dy := 0; dy < rows; dy++ {
			drv.SetContent(0, top+dy, '│', nil, style)
			for c := 0; c < v.m.Width; c++ {
				x := (c + 1) * (colCells + 1)
				if c+1 == v.m.Width || v.m.CellAt(row, c) != v.m.CellAt(row, c+1) {
					drv.SetContent(x, top+dy, '│', nil, style)
				}
			}
		}

		// Horizontal line below the row, broken where a span continues.
		by := top + rows
		drv.SetContent(0, by, '│', nil, style)
		for c := 0; c < v.m.Width; c++ {
			off := v.m.CellAt(row, c)
			ch := '─'
			if row+1 < v.m.Height && v.m.CellAt(row+1, c) == off {
				ch = ' '
			}
			for dx := 0; dx < colCells; dx++ {
				drv.SetContent(c*(colCells+1)+1+dx, by, ch, nil, style)
			}
			drv.SetContent((c+1)*(colCells+1), by, '│', nil, style)
		}
		if row == v.m.Height-1 {
			for x := 0; x < width; x++ {
				drv.SetContent(x, by, '─', nil, style)
			}
		}
	}
}

func (v *TableView) drawCellText(drv ScreenDriver, span grid.CellSpan, off int, style tcell.Style) {
	rc, ok := v.d.Resolve(v.TableStart() + off)
	if !ok {
		return
	}
	avail := (span.Right-span.Left)*(colCells+1) - 1
	content := runewidth.Truncate(rc.Cell.Text, avail, "…")
	x := span.Left*(colCells+1) + 1
	y := v.rowTopTerm(span.Top)
	dx := 0
	for _, ch := range content {
		drv.SetContent(x+dx, y, ch, nil, style)
		dx += runewidth.RuneWidth(ch)
	}
}

func (v *TableView) drawBoundarySegment(drv ScreenDriver, off, row int, style tcell.Style) {
	span, ok := v.m.FindCell(off)
	if !ok {
		return
	}
	by := v.rowTopTerm(row) + contentRows(v.heightsPx[row])
	for c := span.Left; c < span.Right; c++ {
		for dx := 0; dx < colCells; dx++ {
			drv.SetContent(c*(colCells+1)+1+dx, by, '═', nil, style)
		}
	}
}
