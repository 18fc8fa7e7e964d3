// Copyright © 2026 Gridwell contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: doc/node_test.go
// Summary: Exercises node sizing and position resolution in the document model.
// Usage: Executed during `go test` to guard against regressions.

package doc

import "testing"

func sampleDoc() *Document {
	return &Document{
		Children: []Node{
			&Paragraph{Text: "intro"},
			&Table{
				Rows: []*Row{
					{Cells: []*Cell{NewCell("a"), NewCell("b"), NewCell("c")}},
					{Cells: []*Cell{NewCell("d"), NewCell("e"), NewCell("f")}},
					{Cells: []*Cell{NewCell("g"), NewCell("h"), NewCell("i")}},
				},
			},
		},
	}
}

func TestNodeSizes(t *testing.T) {
	d := sampleDoc()
	if got := d.Children[0].Size(); got != 2 {
		t.Fatalf("paragraph size = %d, want 2", got)
	}
	// A row of three plain cells: open + 3*2 + close.
	table := d.Children[1].(*Table)
	if got := table.Rows[0].Size(); got != 8 {
		t.Fatalf("row size = %d, want 8", got)
	}
	if got := table.Size(); got != 26 {
		t.Fatalf("table size = %d, want 26", got)
	}
	if got := d.Size(); got != 28 {
		t.Fatalf("doc size = %d, want 28", got)
	}
}

func TestFirstTable(t *testing.T) {
	d := sampleDoc()
	table, pos, ok := d.FirstTable()
	if !ok {
		t.Fatal("expected a table")
	}
	if pos != 2 {
		t.Fatalf("table pos = %d, want 2", pos)
	}
	if len(table.Rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(table.Rows))
	}

	empty := &Document{Children: []Node{&Paragraph{}}}
	if _, _, ok := empty.FirstTable(); ok {
		t.Fatal("expected no table")
	}
}

func TestResolveFindsEnclosingCell(t *testing.T) {
	d := sampleDoc()
	// Table at 2, row 0 opens at 3, first cell opens at 4.
	for _, pos := range []int{4, 5} {
		rc, ok := d.Resolve(pos)
		if !ok {
			t.Fatalf("Resolve(%d) failed", pos)
		}
		if rc.CellPos != 4 {
			t.Fatalf("Resolve(%d).CellPos = %d, want 4", pos, rc.CellPos)
		}
		if rc.Cell.Text != "a" {
			t.Fatalf("Resolve(%d) found %q, want a", pos, rc.Cell.Text)
		}
		if rc.TablePos != 2 || rc.RowIndex != 0 {
			t.Fatalf("Resolve(%d) table=%d row=%d", pos, rc.TablePos, rc.RowIndex)
		}
	}

	// Second row, middle cell: row 1 opens at 11, cell e opens at 14.
	rc, ok := d.Resolve(14)
	if !ok || rc.Cell.Text != "e" {
		t.Fatalf("Resolve(14) = %+v, want cell e", rc)
	}

	// Positions outside any cell resolve to nothing.
	for _, pos := range []int{0, 1, 2, 3, 27, 99} {
		if _, ok := d.Resolve(pos); ok {
			t.Fatalf("Resolve(%d) unexpectedly found a cell", pos)
		}
	}
}

func TestCellAtRequiresExactStart(t *testing.T) {
	d := sampleDoc()
	if _, ok := d.CellAt(4); !ok {
		t.Fatal("CellAt(4) should find cell a")
	}
	if _, ok := d.CellAt(5); ok {
		t.Fatal("CellAt(5) is inside a cell, not at its start")
	}
}

func TestNormalizeAttrs(t *testing.T) {
	a := CellAttrs{}.Normalize()
	if a.Rowspan != 1 || a.Colspan != 1 {
		t.Fatalf("Normalize() = %+v, want 1x1", a)
	}
	b := CellAttrs{Rowspan: 3, Colspan: 2, Height: 40}.Normalize()
	if b.Rowspan != 3 || b.Colspan != 2 || b.Height != 40 {
		t.Fatalf("Normalize() mangled %+v", b)
	}
}
