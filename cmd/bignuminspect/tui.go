// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// TUI is bignuminspect's terminal interface: a left pane listing the
// named snapshots of one traced run, and a right pane rendering the
// selected snapshot's word vector and, toggleable, its hex/decimal
// string form.
type TUI struct {
	App   *tview.Application
	Pages *tview.Pages

	Layout *tview.Flex
	List   *tview.List
	Detail *tview.TextView
	Status *tview.TextView

	Steps   []Snapshot
	ShowHex bool
	OpLabel string
}

// NewTUI builds a TUI over steps, a trace produced by one of runTraced's
// instrumented operations (or loaded back from a saved trace file).
func NewTUI(opLabel string, steps []Snapshot) *TUI {
	t := &TUI{
		App:     tview.NewApplication(),
		Steps:   steps,
		ShowHex: true,
		OpLabel: opLabel,
	}
	t.initializeViews()
	t.buildLayout()
	t.setupKeyBindings()
	return t
}

// NewTUIWithScreen builds a TUI backed by an explicit tcell.Screen,
// letting tests drive it with tcell.NewSimulationScreen instead of a
// real terminal.
func NewTUIWithScreen(opLabel string, steps []Snapshot, screen tcell.Screen) *TUI {
	t := NewTUI(opLabel, steps)
	t.App.SetScreen(screen)
	return t
}

func (t *TUI) initializeViews() {
	t.List = tview.NewList().ShowSecondaryText(true)
	t.List.SetBorder(true).SetTitle(fmt.Sprintf(" Steps: %s ", t.OpLabel))
	for i, s := range t.Steps {
		secondary := fmt.Sprintf("words=%d sign=%+d", len(s.Words), s.Sign)
		t.List.AddItem(fmt.Sprintf("%3d  %s", i, s.Label), secondary, 0, nil)
	}
	t.List.SetChangedFunc(func(index int, _, _ string, _ rune) {
		t.updateDetail(index)
	})

	t.Detail = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWrap(true)
	t.Detail.SetBorder(true).SetTitle(" Value ")

	t.Status = tview.NewTextView().SetDynamicColors(true)
	t.Status.SetText("[yellow]h[white]: toggle hex/decimal   [yellow]j/k[white] or arrows: move   [yellow]q[white]: quit")
}

func (t *TUI) buildLayout() {
	t.Layout = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(
			tview.NewFlex().
				SetDirection(tview.FlexColumn).
				AddItem(t.List, 0, 1, true).
				AddItem(t.Detail, 0, 2, false),
			0, 1, true,
		).
		AddItem(t.Status, 1, 0, false)

	t.Pages = tview.NewPages().AddPage("main", t.Layout, true, true)
}

func (t *TUI) setupKeyBindings() {
	t.App.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch {
		case event.Key() == tcell.KeyCtrlC:
			t.App.Stop()
			return nil
		case event.Rune() == 'q':
			t.App.Stop()
			return nil
		case event.Rune() == 'h':
			t.ShowHex = !t.ShowHex
			t.updateDetail(t.List.GetCurrentItem())
			return nil
		}
		return event
	})
}

func (t *TUI) updateDetail(index int) {
	if index < 0 || index >= len(t.Steps) {
		t.Detail.SetText("")
		return
	}
	s := t.Steps[index]

	var b strings.Builder
	fmt.Fprintf(&b, "[yellow]label:[white]     %s\n", s.Label)
	fmt.Fprintf(&b, "[yellow]sign:[white]      %+d\n", s.Sign)
	fmt.Fprintf(&b, "[yellow]words:[white]     %d\n", len(s.Words))
	fmt.Fprintf(&b, "[yellow]canonical:[white] %v\n\n", s.Canonical)

	if t.ShowHex {
		fmt.Fprintf(&b, "[yellow]hex:[white]       %s\n", s.Hex)
	} else {
		fmt.Fprintf(&b, "[yellow]decimal:[white]   %s\n", s.Decimal)
	}

	b.WriteString("\n[yellow]word vector (LSW first):[white]\n")
	for i, w := range s.Words {
		fmt.Fprintf(&b, "  w[%d] = 0x%08x\n", i, w)
	}

	t.Detail.SetText(b.String())
}

// Run starts the TUI event loop. It blocks until the user quits.
func (t *TUI) Run() error {
	if len(t.Steps) > 0 {
		t.List.SetCurrentItem(0)
		t.updateDetail(0)
	}
	return t.App.SetRoot(t.Pages, true).SetFocus(t.List).Run()
}
