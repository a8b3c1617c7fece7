package editor

import (
	"github.com/alexanderramin/lifemap/internal/timeline"
)

// LoadFile reads a timeline document and, only if it parses completely,
// replaces the current tree with it. On error the current tree and selection
// are untouched.
func (c *Controller) LoadFile(path string) error {
	tree, err := timeline.ReadFile(path)
	if err != nil {
		return err
	}
	c.Replace(tree)
	return nil
}

// SaveFile writes the current tree to path, adding the timeline extension
// when path has none. It returns the path actually written.
func (c *Controller) SaveFile(path string) (string, error) {
	path = timeline.EnsureExtension(path)
	if err := timeline.WriteFile(path, c.tree); err != nil {
		return "", err
	}
	c.dirty = false
	return path, nil
}
