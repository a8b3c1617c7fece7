package domain

import (
	"fmt"

	"github.com/google/uuid"
)

const (
	DefaultRootName = "My Life"
	DefaultGoalName = "New Goal"

	MinProgress = 0
	MaxProgress = 100
)

// Box is an axis-aligned rectangle in canvas coordinates. X and Y are the
// top-left corner.
type Box struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Contains reports whether (x, y) lies inside the closed rectangle.
func (b Box) Contains(x, y float64) bool {
	return b.X <= x && x <= b.X+b.Width && b.Y <= y && y <= b.Y+b.Height
}

// Center returns the midpoint of the box.
func (b Box) Center() (float64, float64) {
	return b.X + b.Width/2, b.Y + b.Height/2
}

// Goal is a single life goal in the planning tree.
type Goal struct {
	ID          string
	Name        string
	Description string
	URL         string
	Date        string // free-form, never parsed

	progress int
	parentID string
	children []*Goal

	// Written by the layout engine; never persisted.
	Box           Box
	SubtreeHeight float64
}

// NewGoal creates a detached goal with a fresh ID.
func NewGoal(name string) *Goal {
	return &Goal{
		ID:   uuid.New().String(),
		Name: name,
	}
}

// ClampProgress bounds p to [MinProgress, MaxProgress].
func ClampProgress(p int) int {
	if p < MinProgress {
		return MinProgress
	}
	if p > MaxProgress {
		return MaxProgress
	}
	return p
}

func (g *Goal) Progress() int { return g.progress }

// SetProgress stores p clamped to the 0-100 range.
func (g *Goal) SetProgress(p int) {
	g.progress = ClampProgress(p)
}

// ParentID returns the ID of the owning goal, or "" for a root or detached goal.
func (g *Goal) ParentID() string { return g.parentID }

// Children returns a copy of the ordered child list.
func (g *Goal) Children() []*Goal {
	out := make([]*Goal, len(g.children))
	copy(out, g.children)
	return out
}

// ChildCount returns the number of direct children.
func (g *Goal) ChildCount() int { return len(g.children) }

// IsLeaf reports whether the goal has no children.
func (g *Goal) IsLeaf() bool { return len(g.children) == 0 }

// AppendChild attaches child as the last child of g.
// Appending the same child twice is not detected.
func (g *Goal) AppendChild(child *Goal) error {
	if child == nil {
		return ErrNilGoal
	}
	if child == g || child.contains(g) {
		return fmt.Errorf("append %q under %q: %w", child.Name, g.Name, ErrCycle)
	}
	child.parentID = g.ID
	g.children = append(g.children, child)
	return nil
}

// RemoveChild detaches child (and its subtree) from g.
func (g *Goal) RemoveChild(child *Goal) error {
	for i, c := range g.children {
		if c == child {
			g.children = append(g.children[:i], g.children[i+1:]...)
			child.parentID = ""
			return nil
		}
	}
	name := "<nil>"
	if child != nil {
		name = child.Name
	}
	return fmt.Errorf("remove %q from %q: %w", name, g.Name, ErrNotFound)
}

// contains reports whether target is g or lives somewhere below g.
func (g *Goal) contains(target *Goal) bool {
	if g == target {
		return true
	}
	for _, c := range g.children {
		if c.contains(target) {
			return true
		}
	}
	return false
}
