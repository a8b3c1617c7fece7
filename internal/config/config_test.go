package config

import (
	"path/filepath"
	"testing"

	"github.com/alexanderramin/lifemap/internal/layout"
	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig_UsesReferenceGeometry(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, layout.DefaultConfig(), cfg.Layout)
	assert.False(t, cfg.LogCalls)
	assert.Equal(t, "lifemap.db", filepath.Base(cfg.DBPath))
	assert.Equal(t, 10.0, cfg.Canvas.CellWidth)
	assert.Equal(t, 20.0, cfg.Canvas.CellHeight)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("LIFEMAP_DB", "/tmp/x.db")
	t.Setenv("LIFEMAP_LOG_CALLS", "true")
	t.Setenv("LIFEMAP_ORIGIN_X", "-20")
	t.Setenv("LIFEMAP_ORIGIN_Y", "0")
	t.Setenv("LIFEMAP_SPACING", "300")
	t.Setenv("LIFEMAP_LEAF_HEIGHT", "100.5")
	t.Setenv("LIFEMAP_CELL_WIDTH", "8")

	cfg := Load()

	assert.Equal(t, "/tmp/x.db", cfg.DBPath)
	assert.True(t, cfg.LogCalls)
	assert.Equal(t, -20.0, cfg.Layout.OriginX)
	assert.Equal(t, 0.0, cfg.Layout.OriginY)
	assert.Equal(t, 300.0, cfg.Layout.HorizontalSpacing)
	assert.Equal(t, 100.5, cfg.Layout.LeafHeight)
	assert.Equal(t, 180.0, cfg.Layout.NodeWidth)
	assert.Equal(t, 8.0, cfg.Canvas.CellWidth)
}

func TestLoad_InvalidValuesIgnored(t *testing.T) {
	t.Setenv("LIFEMAP_SPACING", "wide")
	t.Setenv("LIFEMAP_LEAF_HEIGHT", "-5")
	t.Setenv("LIFEMAP_NODE_HEIGHT", "0")
	t.Setenv("LIFEMAP_LOG_CALLS", "maybe")

	cfg := Load()

	assert.Equal(t, 250.0, cfg.Layout.HorizontalSpacing)
	assert.Equal(t, 80.0, cfg.Layout.LeafHeight)
	assert.Equal(t, 60.0, cfg.Layout.NodeHeight)
	assert.False(t, cfg.LogCalls)
	assert.NoError(t, cfg.Layout.Validate())
}
