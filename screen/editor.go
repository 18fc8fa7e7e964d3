// Copyright © 2026 Gridwell contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: screen/editor.go
// Summary: Document host: owns the current document and the commit path.
// Usage: Every committed transaction replaces the document and notifies
// listeners (resize controller, view, autosave) in registration order.

package screen

import (
	"log"

	"github.com/gridwell/gridwell/doc"
)

// DocListener is notified after a transaction commits, with the new
// document and the edit's position mapping.
type DocListener func(d *doc.Document, mapping *doc.Mapping)

// Editor is the in-process document host.
type Editor struct {
	d         *doc.Document
	listeners []DocListener
}

// NewEditor hosts the given document.
func NewEditor(d *doc.Document) *Editor {
	return &Editor{d: d}
}

// Doc returns the current document.
func (e *Editor) Doc() *doc.Document { return e.d }

// AddListener registers a commit listener.
func (e *Editor) AddListener(l DocListener) {
	e.listeners = append(e.listeners, l)
}

// Commit applies a finished transaction. Empty transactions are dropped
// so no-op edits never reach listeners or the edit history.
func (e *Editor) Commit(tx *doc.Tx) {
	if !tx.Changed() {
		return
	}
	e.d = tx.Doc()
	for _, l := range e.listeners {
		l(e.d, tx.Mapping())
	}
}

// DeleteRow commits the removal of one row from the first table.
func (e *Editor) DeleteRow(rowIndex int) {
	_, tablePos, ok := e.d.FirstTable()
	if !ok {
		return
	}
	tx := doc.NewTx(e.d)
	if err := tx.DeleteRow(tablePos, rowIndex); err != nil {
		log.Printf("Editor: delete row: %v", err)
		return
	}
	e.Commit(tx)
}

// AppendRow commits a new row of plain cells at the bottom of the first
// table, matching the table's column count.
func (e *Editor) AppendRow(width int) {
	t, tablePos, ok := e.d.FirstTable()
	if !ok {
		return
	}
	cells := make([]*doc.Cell, width)
	for i := range cells {
		cells[i] = doc.NewCell("")
	}
	tx := doc.NewTx(e.d)
	if err := tx.InsertRow(tablePos, len(t.Rows), &doc.Row{Cells: cells}); err != nil {
		log.Printf("Editor: append row: %v", err)
		return
	}
	e.Commit(tx)
}
