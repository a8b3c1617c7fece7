package repository

import (
	"fmt"
	"slices"

	"github.com/alexanderramin/lifemap/internal/domain"
)

// BuildTree reassembles a goal tree from flat rows. Exactly one row must have
// no parent; siblings are ordered by OrderIndex. Stored IDs are kept.
func BuildTree(rows []GoalRow) (*domain.Tree, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("goal tree: %w", ErrNotFound)
	}

	sorted := slices.Clone(rows)
	slices.SortStableFunc(sorted, func(a, b GoalRow) int { return a.OrderIndex - b.OrderIndex })

	goals := make(map[string]*domain.Goal, len(sorted))
	var root *domain.Goal
	for _, row := range sorted {
		if _, dup := goals[row.ID]; dup {
			return nil, fmt.Errorf("goal tree: duplicate goal id %s", row.ID)
		}
		g := domain.NewGoal(row.Name)
		g.ID = row.ID
		g.Description = row.Description
		g.URL = row.URL
		g.Date = row.Date
		g.SetProgress(row.Progress)
		goals[row.ID] = g

		if row.ParentID == "" {
			if root != nil {
				return nil, fmt.Errorf("goal tree: more than one root")
			}
			root = g
		}
	}
	if root == nil {
		return nil, fmt.Errorf("goal tree: no root")
	}

	for _, row := range sorted {
		if row.ParentID == "" {
			continue
		}
		parent, ok := goals[row.ParentID]
		if !ok {
			return nil, fmt.Errorf("goal tree: parent %s of %q: %w", row.ParentID, row.Name, ErrNotFound)
		}
		if err := parent.AppendChild(goals[row.ID]); err != nil {
			return nil, fmt.Errorf("goal tree: attaching %q: %w", row.Name, err)
		}
	}

	tree := domain.NewTreeFromRoot(root)
	if tree.Len() != len(sorted) {
		return nil, fmt.Errorf("goal tree: %d goals unreachable from the root", len(sorted)-tree.Len())
	}
	return tree, nil
}
