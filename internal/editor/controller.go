// Package editor holds the selection and mutation controller that sits
// between user input and the goal tree.
package editor

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/lifemap/internal/domain"
	"github.com/alexanderramin/lifemap/internal/layout"
)

// Fields is the editable metadata of one goal.
type Fields struct {
	Name        string
	Date        string
	URL         string
	Progress    int
	Description string
}

// FieldsOf returns the current values of g's editable fields.
func FieldsOf(g *domain.Goal) Fields {
	return Fields{
		Name:        g.Name,
		Date:        g.Date,
		URL:         g.URL,
		Progress:    g.Progress(),
		Description: g.Description,
	}
}

// Controller owns one tree, its single selection, and its layout.
// It is not safe for concurrent use; all calls come from one input loop.
type Controller struct {
	tree     *domain.Tree
	selected *domain.Goal
	cfg      layout.Config
	listener SelectionListener
	opener   LinkOpener
	dirty    bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithSelectionListener registers the collaborator that repopulates editor
// fields when the selection moves.
func WithSelectionListener(l SelectionListener) Option {
	return func(c *Controller) { c.listener = l }
}

// WithLinkOpener sets how OpenLink displays URLs.
func WithLinkOpener(o LinkOpener) Option {
	return func(c *Controller) { c.opener = o }
}

// NewController selects the root of tree and runs an initial layout pass.
func NewController(tree *domain.Tree, cfg layout.Config, opts ...Option) *Controller {
	c := &Controller{
		tree:   tree,
		cfg:    cfg,
		opener: SystemLinkOpener{},
	}
	for _, opt := range opts {
		opt(c)
	}
	c.selected = tree.Root()
	c.relayout()
	return c
}

func (c *Controller) Tree() *domain.Tree     { return c.tree }
func (c *Controller) Selected() *domain.Goal { return c.selected }
func (c *Controller) Config() layout.Config  { return c.cfg }
func (c *Controller) Dirty() bool            { return c.dirty }
func (c *Controller) MarkClean()             { c.dirty = false }

// Scene snapshots the current layout for a renderer.
func (c *Controller) Scene() layout.Scene {
	return layout.BuildScene(c.tree, c.selected)
}

// IsRootSelected reports whether the protected root is selected.
func (c *Controller) IsRootSelected() bool {
	return c.selected == c.tree.Root()
}

// SetConfig changes the layout geometry and re-lays the tree out.
func (c *Controller) SetConfig(cfg layout.Config) {
	c.cfg = cfg
	c.relayout()
}

// Select moves the selection to g, which must belong to the tree.
func (c *Controller) Select(g *domain.Goal) error {
	if !c.tree.Contains(g) {
		return fmt.Errorf("select: %w", domain.ErrNotFound)
	}
	c.setSelected(g)
	return nil
}

// SelectAt selects the goal under the canvas point (x, y). A miss leaves the
// selection unchanged and returns false.
func (c *Controller) SelectAt(x, y float64) bool {
	hit := layout.FindNodeAt(c.tree.Root(), x, y)
	if hit == nil {
		return false
	}
	c.setSelected(hit)
	return true
}

// ApplyEdits overwrites the selected goal's metadata. Progress is clamped and
// the description is trimmed of surrounding whitespace.
func (c *Controller) ApplyEdits(f Fields) {
	g := c.selected
	g.Name = f.Name
	g.Date = f.Date
	g.URL = f.URL
	g.SetProgress(f.Progress)
	g.Description = strings.TrimSpace(f.Description)
	c.dirty = true
	c.relayout()
}

// AddChild appends a placeholder goal under the selection. The selection does
// not move.
func (c *Controller) AddChild() *domain.Goal {
	if c.selected == nil {
		return nil
	}
	child := domain.NewGoal(domain.DefaultGoalName)
	if err := c.selected.AppendChild(child); err != nil {
		return nil
	}
	c.dirty = true
	c.relayout()
	return child
}

// DeleteSelected removes the selected goal and its whole subtree after
// confirm approves, then selects the former parent. Deleting the root fails
// with domain.ErrProtectedNode and never reaches confirm. A declined
// confirmation returns (false, nil).
func (c *Controller) DeleteSelected(confirm Confirmer) (bool, error) {
	if c.IsRootSelected() {
		return false, domain.ErrProtectedNode
	}
	parent := c.tree.Parent(c.selected)
	if parent == nil {
		return false, fmt.Errorf("delete %q: parent: %w", c.selected.Name, domain.ErrNotFound)
	}
	if confirm == nil || !confirm.Confirm(DeletePrompt) {
		return false, nil
	}
	if err := parent.RemoveChild(c.selected); err != nil {
		return false, err
	}
	c.dirty = true
	c.setSelected(parent)
	c.relayout()
	return true, nil
}

// OpenLink opens the selected goal's URL.
func (c *Controller) OpenLink() error {
	if c.selected.URL == "" {
		return domain.ErrNoLink
	}
	return c.opener.Open(c.selected.URL)
}

// Replace swaps in a newly loaded tree and selects its root. Callers only
// invoke it once the new tree is fully parsed.
func (c *Controller) Replace(tree *domain.Tree) {
	c.tree = tree
	c.dirty = false
	c.setSelected(tree.Root())
	c.relayout()
}

func (c *Controller) setSelected(g *domain.Goal) {
	c.selected = g
	if c.listener != nil {
		c.listener.SelectionChanged(g)
	}
}

func (c *Controller) relayout() {
	layout.Compute(c.tree.Root(), c.cfg)
}
