// Copyright © 2026 Gridwell contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/defaults.go
// Summary: Default values for the configuration file.

package config

func applyDefaults(cfg Config) {
	if cfg == nil {
		return
	}
	cfg.RegisterDefaults("resize", Section{
		"proximity_px":       5,
		"min_row_height_px":  25,
		"last_row_resizable": true,
	})
	cfg.RegisterDefaults("store", Section{
		"autosave":      true,
		"max_revisions": 200,
	})
}
