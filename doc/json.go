// Copyright © 2026 Gridwell contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: doc/json.go
// Summary: JSON serialization of documents for persistence.

package doc

import (
	"encoding/json"
	"fmt"
)

type cellJSON struct {
	Rowspan int    `json:"rowspan,omitempty"`
	Colspan int    `json:"colspan,omitempty"`
	Height  int    `json:"height,omitempty"`
	Text    string `json:"text,omitempty"`
}

type rowJSON struct {
	Cells []cellJSON `json:"cells"`
}

type blockJSON struct {
	Type string    `json:"type"`
	Text string    `json:"text,omitempty"`
	Rows []rowJSON `json:"rows,omitempty"`
}

type docJSON struct {
	Blocks []blockJSON `json:"blocks"`
}

// MarshalJSON encodes the document as a block list.
func (d *Document) MarshalJSON() ([]byte, error) {
	out := docJSON{Blocks: make([]blockJSON, 0, len(d.Children))}
	for _, child := range d.Children {
		switch n := child.(type) {
		case *Paragraph:
			out.Blocks = append(out.Blocks, blockJSON{Type: "paragraph", Text: n.Text})
		case *Table:
			b := blockJSON{Type: "table", Rows: make([]rowJSON, len(n.Rows))}
			for ri, row := range n.Rows {
				cells := make([]cellJSON, len(row.Cells))
				for ci, cell := range row.Cells {
					cells[ci] = cellJSON{
						Rowspan: cell.Attrs.Rowspan,
						Colspan: cell.Attrs.Colspan,
						Height:  cell.Attrs.Height,
						Text:    cell.Text,
					}
				}
				b.Rows[ri] = rowJSON{Cells: cells}
			}
			out.Blocks = append(out.Blocks, b)
		default:
			return nil, fmt.Errorf("doc: cannot serialize block %T", child)
		}
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes a document previously produced by MarshalJSON.
func (d *Document) UnmarshalJSON(data []byte) error {
	var in docJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	children := make([]Node, 0, len(in.Blocks))
	for _, b := range in.Blocks {
		switch b.Type {
		case "paragraph":
			children = append(children, &Paragraph{Text: b.Text})
		case "table":
			t := &Table{Rows: make([]*Row, len(b.Rows))}
			for ri, row := range b.Rows {
				cells := make([]*Cell, len(row.Cells))
				for ci, c := range row.Cells {
					cells[ci] = &Cell{
						Attrs: CellAttrs{Rowspan: c.Rowspan, Colspan: c.Colspan, Height: c.Height}.Normalize(),
						Text:  c.Text,
					}
				}
				t.Rows[ri] = &Row{Cells: cells}
			}
			children = append(children, t)
		default:
			return fmt.Errorf("doc: unknown block type %q", b.Type)
		}
	}
	d.Children = children
	return nil
}
