package layout

import (
	"math"

	"github.com/alexanderramin/lifemap/internal/domain"
)

// Point is a canvas coordinate.
type Point struct {
	X float64
	Y float64
}

// NodeView is everything a renderer needs to draw one goal.
type NodeView struct {
	ID             string
	Name           string
	Date           string
	Progress       int
	HasURL         bool
	HasDescription bool
	Selected       bool
	Depth          int
	Box            domain.Box
}

// FillRatio is the fraction of the progress bar to fill, in [0, 1].
func (v NodeView) FillRatio() float64 {
	return float64(domain.ClampProgress(v.Progress)) / float64(domain.MaxProgress)
}

// Edge connects the right-middle of a parent box to the left-middle of a
// child box.
type Edge struct {
	FromID string
	ToID   string
	From   Point
	To     Point
}

// Elbow returns the x where the connector turns vertical.
func (e Edge) Elbow() float64 {
	return (e.From.X + e.To.X) / 2
}

// Scene is a draw list for one laid-out tree. Nodes are in depth-first
// order, parents before children.
type Scene struct {
	Nodes  []NodeView
	Edges  []Edge
	Bounds domain.Box
}

// BuildScene snapshots the current layout of tree. It does not run a layout
// pass; call Compute first.
func BuildScene(tree *domain.Tree, selected *domain.Goal) Scene {
	var s Scene
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)

	tree.Walk(func(g *domain.Goal, depth int) bool {
		s.Nodes = append(s.Nodes, NodeView{
			ID:             g.ID,
			Name:           g.Name,
			Date:           g.Date,
			Progress:       g.Progress(),
			HasURL:         g.URL != "",
			HasDescription: g.Description != "",
			Selected:       g == selected,
			Depth:          depth,
			Box:            g.Box,
		})
		for _, c := range g.Children() {
			s.Edges = append(s.Edges, Edge{
				FromID: g.ID,
				ToID:   c.ID,
				From:   Point{X: g.Box.X + g.Box.Width, Y: g.Box.Y + g.Box.Height/2},
				To:     Point{X: c.Box.X, Y: c.Box.Y + c.Box.Height/2},
			})
		}
		minX = math.Min(minX, g.Box.X)
		minY = math.Min(minY, g.Box.Y)
		maxX = math.Max(maxX, g.Box.X+g.Box.Width)
		maxY = math.Max(maxY, g.Box.Y+g.Box.Height)
		return true
	})

	s.Bounds = domain.Box{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
	return s
}

// Node returns the view with the given goal ID.
func (s Scene) Node(id string) (NodeView, bool) {
	for _, n := range s.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return NodeView{}, false
}
