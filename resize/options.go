// Copyright © 2026 Gridwell contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: resize/options.go
// Summary: Configuration surface for the row-resize plugin.

package resize

import "github.com/gridwell/gridwell/config"

const (
	// DefaultProximityPx is the vertical hit distance around a row
	// boundary that activates a handle.
	DefaultProximityPx = 5
	// DefaultMinRowHeightPx is the floor for any resized row.
	DefaultMinRowHeightPx = 25
)

// ViewFactory produces the physical row scaffold for a table. The
// screen package supplies the default; hosts may override it.
type ViewFactory func(minRowHeightPx int) ScreenTable

// Options is the recognized plugin configuration.
type Options struct {
	ProximityPx      int
	MinRowHeightPx   int
	LastRowResizable bool
	ViewFactory      ViewFactory
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		ProximityPx:      DefaultProximityPx,
		MinRowHeightPx:   DefaultMinRowHeightPx,
		LastRowResizable: true,
	}
}

// OptionsFromConfig reads the "resize" config section, falling back to
// defaults for missing keys.
func OptionsFromConfig(cfg config.Config) Options {
	opts := DefaultOptions()
	if cfg == nil {
		return opts
	}
	opts.ProximityPx = cfg.GetInt("resize", "proximity_px", opts.ProximityPx)
	opts.MinRowHeightPx = cfg.GetInt("resize", "min_row_height_px", opts.MinRowHeightPx)
	opts.LastRowResizable = cfg.GetBool("resize", "last_row_resizable", opts.LastRowResizable)
	return opts
}

func (o Options) normalized() Options {
	if o.ProximityPx <= 0 {
		o.ProximityPx = DefaultProximityPx
	}
	if o.MinRowHeightPx <= 0 {
		o.MinRowHeightPx = DefaultMinRowHeightPx
	}
	return o
}
