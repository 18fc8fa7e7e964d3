// Copyright © 2026 Gridwell contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: doc/transform.go
// Summary: Transactional edits with position remapping.
// Usage: Every document change goes through a Tx so listeners can remap
// their positions across the edit.

package doc

import "fmt"

// MapRange records one replaced region of the token stream.
type MapRange struct {
	Start   int
	OldSize int
	NewSize int
}

// StepMap translates positions across a single step.
type StepMap struct {
	Ranges []MapRange
}

var identityMap = &StepMap{}

// Map translates pos through the step. bias < 0 prefers the position
// before replaced content, bias >= 0 the position after it. deleted is
// true when pos sat strictly inside a replaced region.
func (m *StepMap) Map(pos, bias int) (mapped int, deleted bool) {
	diff := 0
	for _, r := range m.Ranges {
		if r.Start > pos {
			break
		}
		end := r.Start + r.OldSize
		if pos <= end {
			if pos == r.Start && bias < 0 {
				return r.Start + diff, false
			}
			if pos == end && bias >= 0 {
				return r.Start + diff + r.NewSize, false
			}
			inside := pos > r.Start && pos < end
			if bias < 0 {
				return r.Start + diff, inside
			}
			return r.Start + diff + r.NewSize, inside
		}
		diff += r.NewSize - r.OldSize
	}
	return pos + diff, false
}

// Mapping is the composition of the step maps of one or more edits.
type Mapping struct {
	Maps []*StepMap
}

// Map translates pos through every step in order. deleted is sticky:
// once a step deletes the position the result stays deleted.
func (mm *Mapping) Map(pos, bias int) (mapped int, deleted bool) {
	mapped = pos
	for _, sm := range mm.Maps {
		var del bool
		mapped, del = sm.Map(mapped, bias)
		deleted = deleted || del
	}
	return mapped, deleted
}

// Append folds another mapping onto this one.
func (mm *Mapping) Append(other *Mapping) {
	mm.Maps = append(mm.Maps, other.Maps...)
}

// Step is a single applicable document change.
type Step interface {
	// Apply returns the document after the change, or an error when the
	// step no longer fits the document.
	Apply(d *Document) (*Document, error)
	// Map returns the position translation the step causes.
	Map() *StepMap
}

// SetCellAttrsStep replaces the attributes of the cell starting at Pos.
// It never changes node sizes, so its map is the identity.
type SetCellAttrsStep struct {
	Pos   int
	Attrs CellAttrs
}

func (s *SetCellAttrsStep) Apply(d *Document) (*Document, error) {
	rc, ok := d.Resolve(s.Pos)
	if !ok || rc.CellPos != s.Pos {
		return nil, fmt.Errorf("doc: no cell at position %d", s.Pos)
	}
	return replaceCell(d, rc, rc.Cell.WithAttrs(s.Attrs))
}

func (s *SetCellAttrsStep) Map() *StepMap { return identityMap }

// DeleteRowStep removes the row with the given index from the table at
// TablePos.
type DeleteRowStep struct {
	TablePos int
	RowIndex int

	// position extent captured at construction so the step's map stays
	// valid after apply
	rowPos  int
	rowSize int
}

func (s *DeleteRowStep) Apply(d *Document) (*Document, error) {
	t, ti, ok := tableAt(d, s.TablePos)
	if !ok {
		return nil, fmt.Errorf("doc: no table at position %d", s.TablePos)
	}
	if s.RowIndex < 0 || s.RowIndex >= len(t.Rows) {
		return nil, fmt.Errorf("doc: table has no row %d", s.RowIndex)
	}
	nt := t.clone()
	nt.Rows = append(nt.Rows[:s.RowIndex:s.RowIndex], nt.Rows[s.RowIndex+1:]...)
	nd := d.clone()
	nd.Children[ti] = nt
	return nd, nil
}

func (s *DeleteRowStep) Map() *StepMap {
	return &StepMap{Ranges: []MapRange{{Start: s.rowPos, OldSize: s.rowSize, NewSize: 0}}}
}

// NewDeleteRowStep captures the row's current position extent so the
// step's map stays valid after apply.
func NewDeleteRowStep(d *Document, tablePos, rowIndex int) (*DeleteRowStep, error) {
	t, _, ok := tableAt(d, tablePos)
	if !ok {
		return nil, fmt.Errorf("doc: no table at position %d", tablePos)
	}
	if rowIndex < 0 || rowIndex >= len(t.Rows) {
		return nil, fmt.Errorf("doc: table has no row %d", rowIndex)
	}
	pos := tablePos + 1
	for i := 0; i < rowIndex; i++ {
		pos += t.Rows[i].Size()
	}
	return &DeleteRowStep{
		TablePos: tablePos,
		RowIndex: rowIndex,
		rowPos:   pos,
		rowSize:  t.Rows[rowIndex].Size(),
	}, nil
}

// InsertRowStep inserts Row before index RowIndex (append when RowIndex
// equals the current row count).
type InsertRowStep struct {
	TablePos int
	RowIndex int
	Row      *Row
	rowPos   int
}

func (s *InsertRowStep) Apply(d *Document) (*Document, error) {
	t, ti, ok := tableAt(d, s.TablePos)
	if !ok {
		return nil, fmt.Errorf("doc: no table at position %d", s.TablePos)
	}
	if s.RowIndex < 0 || s.RowIndex > len(t.Rows) {
		return nil, fmt.Errorf("doc: insert index %d out of range", s.RowIndex)
	}
	nt := t.clone()
	rows := make([]*Row, 0, len(nt.Rows)+1)
	rows = append(rows, nt.Rows[:s.RowIndex]...)
	rows = append(rows, s.Row)
	rows = append(rows, nt.Rows[s.RowIndex:]...)
	nt.Rows = rows
	nd := d.clone()
	nd.Children[ti] = nt
	return nd, nil
}

func (s *InsertRowStep) Map() *StepMap {
	return &StepMap{Ranges: []MapRange{{Start: s.rowPos, OldSize: 0, NewSize: s.Row.Size()}}}
}

// NewInsertRowStep captures the insertion position against the current
// document.
func NewInsertRowStep(d *Document, tablePos, rowIndex int, row *Row) (*InsertRowStep, error) {
	t, _, ok := tableAt(d, tablePos)
	if !ok {
		return nil, fmt.Errorf("doc: no table at position %d", tablePos)
	}
	if rowIndex < 0 || rowIndex > len(t.Rows) {
		return nil, fmt.Errorf("doc: insert index %d out of range", rowIndex)
	}
	pos := tablePos + 1
	for i := 0; i < rowIndex; i++ {
		pos += t.Rows[i].Size()
	}
	return &InsertRowStep{TablePos: tablePos, RowIndex: rowIndex, Row: row, rowPos: pos}, nil
}

// Tx accumulates steps against a document. Steps apply eagerly, so Doc
// always reflects the edit so far. A Tx whose Changed reports false must
// not be committed.
type Tx struct {
	doc     *Document
	steps   []Step
	mapping Mapping
	changed bool
}

// NewTx starts an edit against d.
func NewTx(d *Document) *Tx {
	return &Tx{doc: d}
}

// Doc returns the document with all recorded steps applied.
func (tx *Tx) Doc() *Document { return tx.doc }

// Mapping returns the position translation of the whole edit.
func (tx *Tx) Mapping() *Mapping { return &tx.mapping }

// Changed reports whether any step actually altered the document.
func (tx *Tx) Changed() bool { return tx.changed }

// Steps returns the recorded steps.
func (tx *Tx) Steps() []Step { return tx.steps }

func (tx *Tx) step(s Step) error {
	nd, err := s.Apply(tx.doc)
	if err != nil {
		return err
	}
	tx.doc = nd
	tx.steps = append(tx.steps, s)
	tx.mapping.Maps = append(tx.mapping.Maps, s.Map())
	tx.changed = true
	return nil
}

// SetCellAttrs records an attribute change for the cell at pos. Setting
// attributes identical to the current ones records nothing.
func (tx *Tx) SetCellAttrs(pos int, attrs CellAttrs) error {
	rc, ok := tx.doc.Resolve(pos)
	if !ok || rc.CellPos != pos {
		return fmt.Errorf("doc: no cell at position %d", pos)
	}
	if rc.Cell.Attrs == attrs.Normalize() {
		return nil
	}
	return tx.step(&SetCellAttrsStep{Pos: pos, Attrs: attrs})
}

// DeleteRow records the removal of a row.
func (tx *Tx) DeleteRow(tablePos, rowIndex int) error {
	s, err := NewDeleteRowStep(tx.doc, tablePos, rowIndex)
	if err != nil {
		return err
	}
	return tx.step(s)
}

// InsertRow records the insertion of a row.
func (tx *Tx) InsertRow(tablePos, rowIndex int, row *Row) error {
	s, err := NewInsertRowStep(tx.doc, tablePos, rowIndex, row)
	if err != nil {
		return err
	}
	return tx.step(s)
}

func tableAt(d *Document, tablePos int) (*Table, int, bool) {
	at := 0
	for i, child := range d.Children {
		if at == tablePos {
			t, ok := child.(*Table)
			return t, i, ok
		}
		at += child.Size()
	}
	return nil, 0, false
}

func replaceCell(d *Document, rc ResolvedCell, cell *Cell) (*Document, error) {
	_, ti, ok := tableAt(d, rc.TablePos)
	if !ok {
		return nil, fmt.Errorf("doc: no table at position %d", rc.TablePos)
	}
	nt := rc.Table.clone()
	nr := nt.Rows[rc.RowIndex].clone()
	replaced := false
	for i, c := range nr.Cells {
		if c == rc.Cell {
			nr.Cells[i] = cell
			replaced = true
			break
		}
	}
	if !replaced {
		return nil, fmt.Errorf("doc: cell at %d vanished during edit", rc.CellPos)
	}
	nt.Rows[rc.RowIndex] = nr
	nd := d.clone()
	nd.Children[ti] = nt
	return nd, nil
}
