// Package layout positions goals on a 2D canvas and resolves canvas points
// back to goals.
//
// The engine is a space-allocation tree layout: every leaf reserves a fixed
// band of LeafHeight, every inner goal reserves the sum of its children's
// bands, and each goal is centered on its own band. Columns are fixed per
// depth, so x depends only on depth.
package layout

import (
	"fmt"

	"github.com/alexanderramin/lifemap/internal/domain"
)

// Config controls the geometry of a layout pass. All values are canvas units.
type Config struct {
	OriginX           float64
	OriginY           float64 // vertical center assigned to the root
	HorizontalSpacing float64 // distance between depth columns
	LeafHeight        float64 // band reserved by each leaf
	NodeWidth         float64
	NodeHeight        float64
}

// DefaultConfig returns the reference geometry: root at (50, 300), 250 between
// columns, 80 per leaf, 180x60 boxes.
func DefaultConfig() Config {
	return Config{
		OriginX:           50,
		OriginY:           300,
		HorizontalSpacing: 250,
		LeafHeight:        80,
		NodeWidth:         180,
		NodeHeight:        60,
	}
}

// Validate reports configuration that would produce a degenerate layout.
func (c Config) Validate() error {
	if c.HorizontalSpacing <= 0 {
		return fmt.Errorf("horizontal spacing must be positive, got %v", c.HorizontalSpacing)
	}
	if c.LeafHeight <= 0 {
		return fmt.Errorf("leaf height must be positive, got %v", c.LeafHeight)
	}
	if c.NodeWidth <= 0 || c.NodeHeight <= 0 {
		return fmt.Errorf("node size must be positive, got %vx%v", c.NodeWidth, c.NodeHeight)
	}
	return nil
}

// Compute assigns Box and SubtreeHeight to every goal under root.
// Calling it twice on an unchanged tree yields identical coordinates.
// Non-positive spacing or leaf height is not guarded against.
func Compute(root *domain.Goal, cfg Config) {
	if root == nil {
		return
	}
	measure(root, cfg.LeafHeight)
	place(root, cfg.OriginX, cfg.OriginY, cfg)
}

// measure fills SubtreeHeight bottom-up.
func measure(g *domain.Goal, leafHeight float64) float64 {
	if g.IsLeaf() {
		g.SubtreeHeight = leafHeight
		return leafHeight
	}
	var total float64
	for _, c := range g.Children() {
		total += measure(c, leafHeight)
	}
	g.SubtreeHeight = total
	return total
}

// place assigns positions top-down. Children split the parent's band in
// order, each centered on its own slice.
func place(g *domain.Goal, x, y float64, cfg Config) {
	g.Box = domain.Box{X: x, Y: y, Width: cfg.NodeWidth, Height: cfg.NodeHeight}

	currentY := y - g.SubtreeHeight/2
	for _, c := range g.Children() {
		childY := currentY + c.SubtreeHeight/2
		place(c, x+cfg.HorizontalSpacing, childY, cfg)
		currentY += c.SubtreeHeight
	}
}

// Band returns the vertical interval [top, bottom] reserved for g's subtree
// by the last layout pass.
func Band(g *domain.Goal) (top, bottom float64) {
	return g.Box.Y - g.SubtreeHeight/2, g.Box.Y + g.SubtreeHeight/2
}
