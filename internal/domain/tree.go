package domain

import (
	"fmt"
	"strings"
)

// Tree is one planning document. It owns exactly one root goal, which has no
// parent and cannot be removed.
type Tree struct {
	root *Goal
}

// NewTree creates a tree whose root is a fresh goal named rootName.
func NewTree(rootName string) *Tree {
	return &Tree{root: NewGoal(rootName)}
}

// NewTreeFromRoot wraps an already-built goal hierarchy. The root's parent
// link is cleared.
func NewTreeFromRoot(root *Goal) *Tree {
	root.parentID = ""
	return &Tree{root: root}
}

func (t *Tree) Root() *Goal { return t.root }

// Walk visits goals depth-first, each goal before its children. Returning
// false from fn stops the walk.
func (t *Tree) Walk(fn func(g *Goal, depth int) bool) {
	walk(t.root, 0, fn)
}

func walk(g *Goal, depth int, fn func(*Goal, int) bool) bool {
	if !fn(g, depth) {
		return false
	}
	for _, c := range g.children {
		if !walk(c, depth+1, fn) {
			return false
		}
	}
	return true
}

// Find returns the goal with the given ID, or nil.
func (t *Tree) Find(id string) *Goal {
	if id == "" {
		return nil
	}
	var found *Goal
	t.Walk(func(g *Goal, _ int) bool {
		if g.ID == id {
			found = g
			return false
		}
		return true
	})
	return found
}

// Contains reports whether g is a member of this tree.
func (t *Tree) Contains(g *Goal) bool {
	if g == nil {
		return false
	}
	return t.root.contains(g)
}

// Parent resolves the parent link of g. It returns nil for the root and for
// goals outside the tree.
func (t *Tree) Parent(g *Goal) *Goal {
	if g == nil || g == t.root {
		return nil
	}
	return t.Find(g.parentID)
}

// Depth returns the number of edges between the root and g, or -1 if g is not
// in the tree.
func (t *Tree) Depth(g *Goal) int {
	depth := -1
	t.Walk(func(cur *Goal, d int) bool {
		if cur == g {
			depth = d
			return false
		}
		return true
	})
	return depth
}

// Len returns the number of goals in the tree.
func (t *Tree) Len() int {
	n := 0
	t.Walk(func(*Goal, int) bool {
		n++
		return true
	})
	return n
}

// Resolve finds a goal by full ID or by a unique ID prefix.
func (t *Tree) Resolve(ref string) (*Goal, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, fmt.Errorf("empty goal reference: %w", ErrNotFound)
	}
	if g := t.Find(ref); g != nil {
		return g, nil
	}
	var matches []*Goal
	t.Walk(func(g *Goal, _ int) bool {
		if strings.HasPrefix(g.ID, ref) {
			matches = append(matches, g)
		}
		return true
	})
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("goal %q: %w", ref, ErrNotFound)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("goal reference %q is ambiguous (%d matches)", ref, len(matches))
	}
}
