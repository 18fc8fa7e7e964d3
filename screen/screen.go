// Copyright © 2026 Gridwell contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: screen/screen.go
// Summary: Terminal event loop and pointer routing for the grid editor.
// Usage: Polls tcell events, translates them to the resize controller's
// event model, and repaints the table and overlay.

package screen

import (
	"log"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/gridwell/gridwell/doc"
	"github.com/gridwell/gridwell/resize"
)

const keyQuit = tcell.KeyCtrlQ

// Screen drives the terminal UI. It implements resize.Surface by
// delegating hit-testing to the table view and owning the temporary
// global mouse capture a drag acquires.
type Screen struct {
	drv    ScreenDriver
	editor *Editor
	view   *TableView
	ctrl   *resize.Controller

	capture     resize.GlobalMouseHandler
	prevButtons tcell.ButtonMask
	inside      bool

	quit      chan struct{}
	closeOnce sync.Once
}

// NewScreen wires the event loop to its collaborators. The controller is
// created by the caller against this screen, then attached with
// SetController.
func NewScreen(drv ScreenDriver, editor *Editor, view *TableView) *Screen {
	return &Screen{
		drv:    drv,
		editor: editor,
		view:   view,
		quit:   make(chan struct{}),
	}
}

// SetController attaches the resize controller and subscribes it to
// document commits.
func (s *Screen) SetController(ctrl *resize.Controller) {
	s.ctrl = ctrl
	ctrl.SetStateListener(func(resize.State) { s.draw() })
	s.editor.AddListener(func(d *doc.Document, mapping *doc.Mapping) {
		if err := s.view.SetDocument(d); err != nil {
			log.Printf("Screen: document failed to index: %v", err)
		}
		if err := ctrl.DocChanged(mapping); err != nil {
			log.Printf("Screen: document integrity fault: %v", err)
		}
		s.draw()
	})
}

// PosAt implements resize.Surface.
func (s *Screen) PosAt(x, y int) (int, bool) {
	return s.view.PosAt(x, y)
}

// CellRect implements resize.Surface.
func (s *Screen) CellRect(cellPos int) (resize.Rect, bool) {
	return s.view.CellRect(cellPos)
}

// CaptureMouse implements resize.Surface: while set, every mouse event
// goes to the handler regardless of table bounds.
func (s *Screen) CaptureMouse(h resize.GlobalMouseHandler) {
	s.capture = h
}

// ReleaseMouse implements resize.Surface.
func (s *Screen) ReleaseMouse() {
	s.capture = nil
}

// Run polls events until quit. All handlers run on this goroutine, in
// arrival order.
func (s *Screen) Run() error {
	if err := s.view.SetDocument(s.editor.Doc()); err != nil {
		return err
	}
	s.draw()

	for {
		select {
		case <-s.quit:
			return nil
		default:
		}

		ev := s.drv.PollEvent()
		if ev == nil {
			return nil
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			s.draw()
		case *tcell.EventKey:
			if s.handleKey(ev) {
				return nil
			}
		case *tcell.EventMouse:
			x, y := ev.Position()
			s.routeMouse(x, y, ev.Buttons())
		}
	}
}

// Close stops the event loop and restores the terminal.
func (s *Screen) Close() {
	s.closeOnce.Do(func() {
		close(s.quit)
		s.drv.Fini()
	})
}

func (s *Screen) handleKey(ev *tcell.EventKey) bool {
	if ev.Key() == keyQuit {
		return true
	}
	if ev.Key() != tcell.KeyRune {
		return false
	}
	switch ev.Rune() {
	case 'q':
		return true
	case 'a':
		if s.view.m != nil {
			s.editor.AppendRow(s.view.m.Width)
		}
	case 'x':
		s.deleteActiveRow()
	}
	return false
}

// deleteActiveRow removes the row the active handle points at. It is
// the demo's structural edit, exercising handle remapping.
func (s *Screen) deleteActiveRow() {
	st := s.ctrl.State()
	if !st.Active() || s.view.m == nil {
		return
	}
	span, ok := s.view.m.FindCell(st.ActiveHandle - s.view.TableStart())
	if !ok {
		return
	}
	s.editor.DeleteRow(span.Bottom - 1)
}

// routeMouse translates raw button masks into the controller's event
// model. The previous mask distinguishes press, drag, and release, and
// a held capture bypasses surface bounds entirely.
func (s *Screen) routeMouse(tx, ty int, buttons tcell.ButtonMask) {
	prev := s.prevButtons
	s.prevButtons = buttons
	held := buttons&tcell.Button1 != 0
	wasHeld := prev&tcell.Button1 != 0

	if s.capture != nil {
		px, py, ok := s.view.PxForTerminal(tx, ty)
		if !ok {
			// Outside the table: extrapolate vertically so the drag
			// keeps tracking the pointer.
			px, py = s.extrapolatePx(tx, ty)
		}
		if !held && wasHeld {
			s.capture.GlobalMouseUp(px, py)
		} else {
			s.capture.GlobalMouseMove(px, py, held)
		}
		return
	}

	px, py, ok := s.view.PxForTerminal(tx, ty)
	if !ok {
		if s.inside {
			s.inside = false
			s.ctrl.MouseLeave()
		}
		return
	}
	s.inside = true

	if held && !wasHeld {
		s.ctrl.MouseDown(px, py)
		return
	}
	s.ctrl.MouseMove(px, py)
}

// extrapolatePx maps a terminal coordinate outside the table to pixel
// space by clamping horizontally and scaling vertically, so drags past
// the table edge keep producing sensible heights.
func (s *Screen) extrapolatePx(tx, ty int) (int, int) {
	px := 0
	py := ty * CellPxHeight
	if ty < 0 {
		py = 0
	}
	return px, py
}

func (s *Screen) draw() {
	s.drv.Clear()
	s.view.Draw(s.drv, s.ctrl.Markers())
	s.drawStatus()
	s.drv.Show()
}

func (s *Screen) drawStatus() {
	_, h := s.drv.Size()
	y := h - 1
	if y < 0 {
		return
	}
	msg := " q quit · a append row · x delete hovered row "
	style := tcell.StyleDefault.Foreground(tcell.ColorGray)
	if s.ctrl.HandleActive() {
		style = tcell.StyleDefault.Foreground(tcell.ColorTeal).Bold(true)
		msg = " ↕ row-resize "
		if s.ctrl.State().InDrag() {
			msg = " ↕ resizing… release to commit "
		}
	}
	x := 0
	for _, ch := range msg {
		s.drv.SetContent(x, y, ch, nil, style)
		x++
	}
}
