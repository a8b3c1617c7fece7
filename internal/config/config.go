// Package config loads lifemap settings from the environment.
package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/alexanderramin/lifemap/internal/layout"
)

// Config holds everything the binary needs before it opens the workspace.
type Config struct {
	DBPath   string
	LogCalls bool
	Layout   layout.Config
	Canvas   CanvasConfig
}

// CanvasConfig maps canvas pixels to terminal cells for the editor.
type CanvasConfig struct {
	CellWidth  float64 // canvas px per column
	CellHeight float64 // canvas px per row
}

// DefaultDBPath is ~/.lifemap/lifemap.db, or a relative path when the home
// directory is unknown.
func DefaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(".lifemap", "lifemap.db")
	}
	return filepath.Join(home, ".lifemap", "lifemap.db")
}

// DefaultConfig returns the reference geometry and a 10x20 px terminal cell.
func DefaultConfig() Config {
	return Config{
		DBPath:   DefaultDBPath(),
		LogCalls: false,
		Layout:   layout.DefaultConfig(),
		Canvas: CanvasConfig{
			CellWidth:  10,
			CellHeight: 20,
		},
	}
}

// Load reads LIFEMAP_* environment variables over DefaultConfig. Unparseable
// or non-positive values are ignored.
func Load() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("LIFEMAP_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("LIFEMAP_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}

	applyFloatEnv(&cfg.Layout.OriginX, "LIFEMAP_ORIGIN_X", false)
	applyFloatEnv(&cfg.Layout.OriginY, "LIFEMAP_ORIGIN_Y", false)
	applyFloatEnv(&cfg.Layout.HorizontalSpacing, "LIFEMAP_SPACING", true)
	applyFloatEnv(&cfg.Layout.LeafHeight, "LIFEMAP_LEAF_HEIGHT", true)
	applyFloatEnv(&cfg.Layout.NodeWidth, "LIFEMAP_NODE_WIDTH", true)
	applyFloatEnv(&cfg.Layout.NodeHeight, "LIFEMAP_NODE_HEIGHT", true)
	applyFloatEnv(&cfg.Canvas.CellWidth, "LIFEMAP_CELL_WIDTH", true)
	applyFloatEnv(&cfg.Canvas.CellHeight, "LIFEMAP_CELL_HEIGHT", true)

	return cfg
}

func applyFloatEnv(dst *float64, envName string, positive bool) {
	v := os.Getenv(envName)
	if v == "" {
		return
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return
	}
	if positive && f <= 0 {
		return
	}
	*dst = f
}
