package testutil

import (
	"time"

	"github.com/alexanderramin/lifemap/internal/domain"
	"github.com/google/uuid"
)

// Timeline options
type TimelineOption func(*domain.Timeline)

func WithTimelineID(id string) TimelineOption {
	return func(t *domain.Timeline) {
		t.ID = id
	}
}

func WithUpdatedAt(at time.Time) TimelineOption {
	return func(t *domain.Timeline) {
		t.UpdatedAt = at
	}
}

func NewTestTimeline(name string, opts ...TimelineOption) *domain.Timeline {
	now := time.Now().UTC()
	t := &domain.Timeline{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Goal options
type GoalOption func(*domain.Goal)

func WithProgress(p int) GoalOption {
	return func(g *domain.Goal) {
		g.SetProgress(p)
	}
}

func WithDate(d string) GoalOption {
	return func(g *domain.Goal) {
		g.Date = d
	}
}

func WithURL(u string) GoalOption {
	return func(g *domain.Goal) {
		g.URL = u
	}
}

func WithDescription(d string) GoalOption {
	return func(g *domain.Goal) {
		g.Description = d
	}
}

// WithChildren appends children in order. It panics on a cycle, which only a
// broken fixture can produce.
func WithChildren(children ...*domain.Goal) GoalOption {
	return func(g *domain.Goal) {
		for _, c := range children {
			if err := g.AppendChild(c); err != nil {
				panic(err)
			}
		}
	}
}

func NewTestGoal(name string, opts ...GoalOption) *domain.Goal {
	g := domain.NewGoal(name)
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// NewLifeTree returns My Life -> [Career -> [Promotion], Health].
func NewLifeTree() *domain.Tree {
	return domain.NewTreeFromRoot(NewTestGoal(domain.DefaultRootName,
		WithChildren(
			NewTestGoal("Career", WithChildren(
				NewTestGoal("Promotion", WithDate("2026-01-01"), WithProgress(40)),
			)),
			NewTestGoal("Health", WithURL("https://example.com/run"), WithProgress(10)),
		),
	))
}
