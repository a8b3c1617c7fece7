package repository

import (
	"context"

	"github.com/alexanderramin/lifemap/internal/domain"
)

// GoalRow is one persisted goal. ParentID is "" for the root.
type GoalRow struct {
	ID          string
	TimelineID  string
	ParentID    string
	Name        string
	Description string
	URL         string
	Date        string
	Progress    int
	OrderIndex  int
}

type TimelineRepo interface {
	Create(ctx context.Context, t *domain.Timeline) error
	GetByName(ctx context.Context, name string) (*domain.Timeline, error)
	List(ctx context.Context) ([]*domain.Timeline, error)
	Touch(ctx context.Context, id string) error
	Rename(ctx context.Context, id, name string) error
	Delete(ctx context.Context, id string) error
}

type GoalRepo interface {
	// ReplaceTree discards every stored goal of the timeline and writes tree
	// in its place.
	ReplaceTree(ctx context.Context, timelineID string, tree *domain.Tree) error
	ListByTimeline(ctx context.Context, timelineID string) ([]GoalRow, error)
	CountByTimeline(ctx context.Context, timelineID string) (count int, avgProgress float64, err error)
}
