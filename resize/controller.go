// Copyright © 2026 Gridwell contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: resize/controller.go
// Summary: Event-driven controller for interactive row resizing.
// Usage: Owns the interaction state; the screen routes every pointer
// event and document-edit notification through it, in arrival order.

package resize

import (
	"log"

	"github.com/gridwell/gridwell/doc"
	"github.com/gridwell/gridwell/grid"
)

// Controller advances the interaction state machine. All methods must be
// called from the single event-handling goroutine; the state value is
// replaced atomically so concurrent readers of State() always see a
// complete snapshot.
type Controller struct {
	opts    Options
	host    Host
	surface Surface
	screen  ScreenTable

	state State

	// grid map cache, valid only for the exact table instance it was
	// built from
	cached      *grid.Map
	cachedTable *doc.Table

	onState func(State)
}

// NewController wires a controller to its collaborators.
func NewController(opts Options, host Host, surface Surface, screen ScreenTable) *Controller {
	return &Controller{
		opts:    opts.normalized(),
		host:    host,
		surface: surface,
		screen:  screen,
		state:   IdleState(),
	}
}

// State returns the current interaction snapshot.
func (c *Controller) State() State { return c.state }

// HandleActive reports whether a handle is hovered or dragged. Hosts use
// it as the cursor-styling signal.
func (c *Controller) HandleActive() bool { return c.state.Active() }

// SetStateListener registers a callback invoked after every state
// replacement. Used by the screen to schedule repaints.
func (c *Controller) SetStateListener(f func(State)) { c.onState = f }

// Options returns the controller's effective configuration.
func (c *Controller) Options() Options { return c.opts }

func (c *Controller) setState(s State) {
	c.state = s
	if c.onState != nil {
		c.onState(s)
	}
}

// mapFor returns the grid map for the document's table, rebuilding it
// when the table instance changed identity.
func (c *Controller) mapFor(t *doc.Table) (*grid.Map, error) {
	if t == c.cachedTable && c.cached != nil {
		return c.cached, nil
	}
	m, err := grid.BuildMap(t)
	if err != nil {
		return nil, err
	}
	c.cached, c.cachedTable = m, t
	return m, nil
}

// MouseMove handles a pointer move routed through the surface. While a
// drag holds the global capture the surface stops routing here.
func (c *Controller) MouseMove(x, y int) {
	if c.state.InDrag() {
		return
	}
	d := c.host.Doc()
	t, _, ok := d.FirstTable()
	if !ok {
		c.dropHover()
		return
	}
	m, err := c.mapFor(t)
	if err != nil {
		log.Printf("Resize: %v", err)
		c.dropHover()
		return
	}
	handle := ResolveBoundary(c.surface, d, m, Point{X: x, Y: y}, c.opts.ProximityPx, c.opts.LastRowResizable)
	if handle == c.state.ActiveHandle {
		return
	}
	c.setState(c.state.WithHandle(handle))
}

// MouseLeave handles the pointer leaving the editing surface. A drag in
// progress is unaffected; only hover state is dropped.
func (c *Controller) MouseLeave() {
	if c.state.InDrag() {
		return
	}
	c.dropHover()
}

func (c *Controller) dropHover() {
	if c.state.Active() {
		c.setState(IdleState())
	}
}

// MouseDown starts a drag when a handle is hovered. Without a handle, or
// with a drag already running, it is a no-op.
func (c *Controller) MouseDown(x, y int) {
	if !c.state.Active() || c.state.InDrag() {
		return
	}
	d := c.host.Doc()
	t, tablePos, ok := d.FirstTable()
	if !ok {
		return
	}
	m, err := c.mapFor(t)
	if err != nil {
		log.Printf("Resize: %v", err)
		return
	}
	span, ok := m.FindCell(c.state.ActiveHandle - tablePos - 1)
	if !ok {
		return
	}
	startHeight := RowHeight(d, tablePos+1, m, span.Bottom-1, c.opts.MinRowHeightPx)
	c.setState(c.state.WithDrag(DragSession{StartY: y, StartHeight: startHeight}))
	c.surface.CaptureMouse(c)
}

// GlobalMouseMove receives pointer moves while the drag holds the global
// capture. A move with no button held ends the drag the same way a
// pointer-up does.
func (c *Controller) GlobalMouseMove(x, y int, buttonHeld bool) {
	if !c.state.InDrag() {
		return
	}
	if !buttonHeld {
		c.finishDrag(y)
		return
	}
	c.preview(y)
}

// GlobalMouseUp ends the drag and commits the final height.
func (c *Controller) GlobalMouseUp(x, y int) {
	if !c.state.InDrag() {
		return
	}
	c.finishDrag(y)
}

// preview repaints the dragged row at the live height without touching
// the document.
func (c *Controller) preview(pointerY int) {
	d := c.host.Doc()
	t, tablePos, ok := d.FirstTable()
	if !ok {
		return
	}
	m, err := c.mapFor(t)
	if err != nil {
		log.Printf("Resize: %v", err)
		return
	}
	span, ok := m.FindCell(c.state.ActiveHandle - tablePos - 1)
	if !ok {
		return
	}
	h := c.state.Dragging.DraggedHeight(pointerY, c.opts.MinRowHeightPx)
	RenderRowHeights(d, tablePos+1, m, c.screen, c.opts.MinRowHeightPx, span.Bottom-1, h)
	if c.onState != nil {
		c.onState(c.state)
	}
}

// finishDrag commits the final height, releases the global capture, and
// drops back to hover. Empty edits are not committed.
func (c *Controller) finishDrag(pointerY int) {
	sess := c.state.Dragging
	handle := c.state.ActiveHandle
	c.setState(c.state.DragFinished())
	c.surface.ReleaseMouse()

	d := c.host.Doc()
	_, tablePos, ok := d.FirstTable()
	if !ok {
		return
	}
	m := c.cached
	if m == nil {
		return
	}
	h := sess.DraggedHeight(pointerY, c.opts.MinRowHeightPx)
	tx, err := ApplyRowHeight(d, tablePos+1, m, handle, h)
	if err != nil {
		log.Printf("Resize: commit failed: %v", err)
		c.syncHeights()
		return
	}
	if tx.Changed() {
		c.host.Commit(tx)
	} else {
		// Nothing to commit; still clear the live preview.
		c.syncHeights()
	}
}

// cancelDrag abandons a drag without committing, releasing the capture.
func (c *Controller) cancelDrag() {
	if !c.state.InDrag() {
		return
	}
	c.surface.ReleaseMouse()
}

// DocChanged remaps the active handle through a committed edit. When the
// remapped handle no longer names a cell boundary the state collapses to
// idle and an in-progress drag is silently abandoned. Returns the
// structural error when the new table fails to index; that fault is the
// host's to surface.
func (c *Controller) DocChanged(mapping *doc.Mapping) error {
	d := c.host.Doc()
	t, tablePos, ok := d.FirstTable()
	if !ok {
		c.cancelDrag()
		c.setState(IdleState())
		return nil
	}
	m, err := c.mapFor(t)
	if err != nil {
		c.cancelDrag()
		c.setState(IdleState())
		return err
	}

	wasDragging := c.state.InDrag()
	next := c.state.MapThrough(mapping.Map, func(pos int) bool {
		cell, ok := d.CellAt(pos)
		if !ok || cell == nil {
			return false
		}
		_, inMap := m.FindCell(pos - tablePos - 1)
		return inMap
	})
	if wasDragging && !next.InDrag() {
		c.surface.ReleaseMouse()
	}
	c.setState(next)
	c.syncHeights()
	return nil
}

// Markers computes the current overlay markers. Empty without an active
// handle.
func (c *Controller) Markers() []Marker {
	d := c.host.Doc()
	t, tablePos, ok := d.FirstTable()
	if !ok {
		return nil
	}
	m, err := c.mapFor(t)
	if err != nil {
		return nil
	}
	return HandleMarkers(m, tablePos+1, c.state.ActiveHandle)
}

// syncHeights re-renders the committed row heights with no override.
func (c *Controller) syncHeights() {
	d := c.host.Doc()
	t, tablePos, ok := d.FirstTable()
	if !ok {
		return
	}
	m, err := c.mapFor(t)
	if err != nil {
		return
	}
	RenderRowHeights(d, tablePos+1, m, c.screen, c.opts.MinRowHeightPx, NoOverride, 0)
}
