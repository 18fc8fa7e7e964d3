// Copyright © 2026 Gridwell contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: resize/helpers_test.go
// Summary: Shared fixtures and collaborator stubs for the resize tests.
// Usage: Executed during `go test` to guard against regressions.

package resize

import (
	"github.com/gridwell/gridwell/doc"
	"github.com/gridwell/gridwell/grid"
)

const testColW = 50

// plainDoc is a paragraph followed by a 3x3 table of single-span cells.
// Table position 2, first cell at 4.
func plainDoc() *doc.Document {
	table := &doc.Table{}
	for _, texts := range [][]string{
		{"a", "b", "c"}, {"d", "e", "f"}, {"g", "h", "i"},
	} {
		row := &doc.Row{}
		for _, s := range texts {
			row.Cells = append(row.Cells, doc.NewCell(s))
		}
		table.Rows = append(table.Rows, row)
	}
	return &doc.Document{Children: []doc.Node{&doc.Paragraph{Text: "intro"}, table}}
}

// spanDoc is a paragraph followed by a 2x3 table where cell A spans both
// rows of column 0. Positions: A=4, B=6, C=8, D=12, E=14.
func spanDoc() *doc.Document {
	table := &doc.Table{
		Rows: []*doc.Row{
			{Cells: []*doc.Cell{
				doc.NewSpanCell("A", 2, 1),
				doc.NewCell("B"),
				doc.NewCell("C"),
			}},
			{Cells: []*doc.Cell{doc.NewCell("D"), doc.NewCell("E")}},
		},
	}
	return &doc.Document{Children: []doc.Node{&doc.Paragraph{Text: "intro"}, table}}
}

// stubHost backs the controller with a plain document reference. When
// ctrl is set, Commit chains into DocChanged the way the real editor's
// listener path does.
type stubHost struct {
	d       *doc.Document
	ctrl    *Controller
	commits int
}

func (h *stubHost) Doc() *doc.Document { return h.d }

func (h *stubHost) Commit(tx *doc.Tx) {
	h.d = tx.Doc()
	h.commits++
	if h.ctrl != nil {
		_ = h.ctrl.DocChanged(tx.Mapping())
	}
}

// stubSurface derives its hit-testing geometry from the host's current
// document: fixed-width columns, rows at their committed heights.
type stubSurface struct {
	host *stubHost
	minH int

	captured GlobalMouseHandler
	releases int
}

func (s *stubSurface) geometry() (*doc.Document, *grid.Map, int, bool) {
	d := s.host.Doc()
	t, tablePos, ok := d.FirstTable()
	if !ok {
		return nil, nil, 0, false
	}
	m, err := grid.BuildMap(t)
	if err != nil {
		return nil, nil, 0, false
	}
	return d, m, tablePos + 1, true
}

func (s *stubSurface) rowTop(d *doc.Document, m *grid.Map, tableStart, row int) int {
	top := 0
	for r := 0; r < row; r++ {
		top += RowHeight(d, tableStart, m, r, s.minH)
	}
	return top
}

func (s *stubSurface) PosAt(x, y int) (int, bool) {
	d, m, tableStart, ok := s.geometry()
	if !ok || x < 0 || y < 0 || x >= m.Width*testColW {
		return 0, false
	}
	top := 0
	for row := 0; row < m.Height; row++ {
		h := RowHeight(d, tableStart, m, row, s.minH)
		if y < top+h {
			return tableStart + m.CellAt(row, x/testColW), true
		}
		top += h
	}
	return 0, false
}

func (s *stubSurface) CellRect(cellPos int) (Rect, bool) {
	d, m, tableStart, ok := s.geometry()
	if !ok {
		return Rect{}, false
	}
	span, ok := m.FindCell(cellPos - tableStart)
	if !ok {
		return Rect{}, false
	}
	return Rect{
		X0: span.Left * testColW,
		Y0: s.rowTop(d, m, tableStart, span.Top),
		X1: span.Right * testColW,
		Y1: s.rowTop(d, m, tableStart, span.Bottom),
	}, true
}

func (s *stubSurface) CaptureMouse(h GlobalMouseHandler) { s.captured = h }

func (s *stubSurface) ReleaseMouse() {
	s.captured = nil
	s.releases++
}

// heightCall records one SetRowHeight invocation.
type heightCall struct {
	row, px int
}

type stubScreenTable struct {
	calls   []heightCall
	heights map[int]int
	trims   []int
}

func newStubScreenTable() *stubScreenTable {
	return &stubScreenTable{heights: make(map[int]int)}
}

func (st *stubScreenTable) SetRowHeight(row, px int) {
	st.calls = append(st.calls, heightCall{row: row, px: px})
	st.heights[row] = px
}

func (st *stubScreenTable) TrimRows(n int) {
	st.trims = append(st.trims, n)
	for row := range st.heights {
		if row >= n {
			delete(st.heights, row)
		}
	}
}

func mustMap(d *doc.Document) (*grid.Map, int) {
	t, tablePos, ok := d.FirstTable()
	if !ok {
		panic("document has no table")
	}
	m, err := grid.BuildMap(t)
	if err != nil {
		panic(err)
	}
	return m, tablePos + 1
}
