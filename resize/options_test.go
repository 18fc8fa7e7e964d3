// Copyright © 2026 Gridwell contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: resize/options_test.go
// Summary: Exercises option defaults and config binding.
// Usage: Executed during `go test` to guard against regressions.

package resize

import (
	"testing"

	"github.com/gridwell/gridwell/config"
)

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	if opts.ProximityPx != 5 || opts.MinRowHeightPx != 25 || !opts.LastRowResizable {
		t.Fatalf("defaults = %+v", opts)
	}
}

func TestOptionsFromConfig(t *testing.T) {
	cfg := config.Config{"resize": map[string]interface{}{
		"proximity_px":       float64(9),
		"min_row_height_px":  float64(40),
		"last_row_resizable": false,
	}}
	opts := OptionsFromConfig(cfg)
	if opts.ProximityPx != 9 || opts.MinRowHeightPx != 40 || opts.LastRowResizable {
		t.Fatalf("bound options = %+v", opts)
	}
}

func TestOptionsFromNilConfig(t *testing.T) {
	opts := OptionsFromConfig(nil)
	if opts.ProximityPx != DefaultProximityPx || opts.MinRowHeightPx != DefaultMinRowHeightPx || !opts.LastRowResizable {
		t.Fatalf("nil config options = %+v", opts)
	}
}

func TestNormalizedOptions(t *testing.T) {
	opts := Options{ProximityPx: -1, MinRowHeightPx: 0}.normalized()
	if opts.ProximityPx != DefaultProximityPx || opts.MinRowHeightPx != DefaultMinRowHeightPx {
		t.Fatalf("normalized = %+v", opts)
	}
}
