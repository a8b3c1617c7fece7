package service

import (
	"context"
	"time"

	"github.com/alexanderramin/lifemap/internal/domain"
)

// TimelineSummary is one row of the timeline listing.
type TimelineSummary struct {
	Name            string
	GoalCount       int
	AverageProgress float64
	UpdatedAt       time.Time
}

type TimelineService interface {
	// Create stores a new timeline holding a single "My Life" root.
	Create(ctx context.Context, name string) (*domain.Tree, error)
	Open(ctx context.Context, name string) (*domain.Tree, error)
	// OpenOrCreate reports whether the timeline had to be created.
	OpenOrCreate(ctx context.Context, name string) (*domain.Tree, bool, error)
	// Save replaces the stored tree in one transaction.
	Save(ctx context.Context, name string, tree *domain.Tree) error
	List(ctx context.Context) ([]TimelineSummary, error)
	Rename(ctx context.Context, oldName, newName string) error
	Delete(ctx context.Context, name string) error
	// ImportFile loads a timeline document and stores it under name, creating
	// the timeline if needed. Nothing is written unless the file parses.
	ImportFile(ctx context.Context, name, path string) (*domain.Tree, error)
	// ExportFile writes the stored tree as a timeline document and returns the
	// path written.
	ExportFile(ctx context.Context, name, path string) (string, error)
}
