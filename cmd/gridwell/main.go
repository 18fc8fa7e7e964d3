// Copyright © 2026 Gridwell contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/gridwell/main.go
// Summary: Interactive grid editor binary.
// Usage: Run `gridwell` in a terminal; drag row boundaries to resize.

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/gridwell/gridwell/config"
	"github.com/gridwell/gridwell/doc"
	"github.com/gridwell/gridwell/resize"
	"github.com/gridwell/gridwell/screen"
	"github.com/gridwell/gridwell/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	fs := flag.NewFlagSet("gridwell", flag.ContinueOnError)
	dbPath := fs.String("db", "", "Path to the revision database (default: ~/.gridwell/revisions.db)")
	fromScratch := fs.Bool("from-scratch", false, "Ignore saved revisions and start with the sample grid")
	logPath := fs.String("log", "", "Log file path (default: ~/.gridwell/gridwell.log)")
	if err := fs.Parse(os.Args[1:]); err != nil {
		return err
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("gridwell needs an interactive terminal")
	}

	stateDir, err := config.StateDir()
	if err != nil {
		return fmt.Errorf("failed to resolve state dir: %w", err)
	}

	if *logPath == "" {
		*logPath = filepath.Join(stateDir, "gridwell.log")
	}
	if err := os.MkdirAll(filepath.Dir(*logPath), 0o755); err != nil {
		return err
	}
	logFile, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	defer logFile.Close()
	log.SetOutput(logFile)
	log.Println("Application starting...")

	cfg := config.System()
	if err := config.Err(); err != nil {
		log.Printf("Main: config load: %v", err)
	}
	opts := resize.OptionsFromConfig(cfg)

	if *dbPath == "" {
		*dbPath = filepath.Join(stateDir, "revisions.db")
	}
	revStore, err := store.Open(*dbPath, cfg.GetInt("store", "max_revisions", 200))
	if err != nil {
		return fmt.Errorf("failed to open revision store: %w", err)
	}
	defer revStore.Close()

	document := sampleDocument()
	if !*fromScratch {
		if saved, ok, err := revStore.Latest(); err != nil {
			log.Printf("Main: restore failed, starting fresh: %v", err)
		} else if ok {
			document = saved
			log.Println("Main: restored latest revision")
		}
	}

	editor := screen.NewEditor(document)
	view := screen.NewTableView(opts.MinRowHeightPx)
	var scaffold resize.ScreenTable = view
	if opts.ViewFactory != nil {
		scaffold = opts.ViewFactory(opts.MinRowHeightPx)
	}

	tcellScreen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	drv := screen.NewTcellScreenDriver(tcellScreen)
	if err := drv.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	drv.SetStyle(tcell.StyleDefault.Background(tcell.ColorReset).Foreground(tcell.ColorReset))
	drv.HideCursor()

	scr := screen.NewScreen(drv, editor, view)
	defer scr.Close()

	ctrl := resize.NewController(opts, editor, scr, scaffold)
	scr.SetController(ctrl)

	autosave := cfg.GetBool("store", "autosave", true)
	editor.AddListener(func(d *doc.Document, _ *doc.Mapping) {
		if !autosave {
			return
		}
		if err := revStore.Save(d); err != nil {
			log.Printf("Main: autosave failed: %v", err)
		}
	})

	if err := scr.Run(); err != nil {
		return err
	}
	log.Println("Application stopped cleanly.")
	return nil
}

// sampleDocument builds a small grid exercising row and column spans.
func sampleDocument() *doc.Document {
	return &doc.Document{
		Children: []doc.Node{
			&doc.Paragraph{Text: "gridwell demo"},
			&doc.Table{
				Rows: []*doc.Row{
					{Cells: []*doc.Cell{
						doc.NewSpanCell("span 2 rows", 2, 1),
						doc.NewCell("plan"),
						doc.NewCell("owner"),
					}},
					{Cells: []*doc.Cell{
						doc.NewCell("draft"),
						doc.NewCell("ada"),
					}},
					{Cells: []*doc.Cell{
						doc.NewSpanCell("span 2 cols", 1, 2),
						doc.NewCell("done"),
					}},
				},
			},
		},
	}
}
