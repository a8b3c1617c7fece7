package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/lifemap/internal/db"
	"github.com/alexanderramin/lifemap/internal/domain"
	"github.com/alexanderramin/lifemap/internal/repository"
	"github.com/alexanderramin/lifemap/internal/timeline"
	"github.com/google/uuid"
)

type timelineService struct {
	timelines repository.TimelineRepo
	goals     repository.GoalRepo
	uow       db.UnitOfWork
	observer  UseCaseObserver
}

func NewTimelineService(
	timelines repository.TimelineRepo,
	goals repository.GoalRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) TimelineService {
	return &timelineService{
		timelines: timelines,
		goals:     goals,
		uow:       uow,
		observer:  combineObservers(observers),
	}
}

func (s *timelineService) Create(ctx context.Context, name string) (tree *domain.Tree, err error) {
	done := s.track(ctx, "create-timeline", map[string]any{"timeline": name})
	defer func() { done(err) }()

	if err = domain.ValidateTimelineName(name); err != nil {
		return nil, err
	}
	tree = domain.NewTree(domain.DefaultRootName)
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		_, err := createTimeline(ctx, tx, name, tree)
		return err
	})
	if err != nil {
		return nil, err
	}
	return tree, nil
}

func (s *timelineService) Open(ctx context.Context, name string) (tree *domain.Tree, err error) {
	fields := map[string]any{"timeline": name}
	done := s.track(ctx, "open-timeline", fields)
	defer func() { done(err) }()

	tl, err := s.timelines.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	rows, err := s.goals.ListByTimeline(ctx, tl.ID)
	if err != nil {
		return nil, err
	}
	tree, err = repository.BuildTree(rows)
	if err != nil {
		return nil, fmt.Errorf("loading timeline %q: %w", name, err)
	}
	fields["goal_count"] = len(rows)
	return tree, nil
}

func (s *timelineService) OpenOrCreate(ctx context.Context, name string) (*domain.Tree, bool, error) {
	tree, err := s.Open(ctx, name)
	if err == nil {
		return tree, false, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, false, err
	}
	tree, err = s.Create(ctx, name)
	if err != nil {
		return nil, false, err
	}
	return tree, true, nil
}

func (s *timelineService) Save(ctx context.Context, name string, tree *domain.Tree) (err error) {
	done := s.track(ctx, "save-timeline", map[string]any{
		"timeline":   name,
		"goal_count": tree.Len(),
	})
	defer func() { done(err) }()

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txTimelines := repository.NewSQLiteTimelineRepo(tx)
		tl, err := txTimelines.GetByName(ctx, name)
		if err != nil {
			return err
		}
		if err := txTimelines.Touch(ctx, tl.ID); err != nil {
			return err
		}
		return repository.NewSQLiteGoalRepo(tx).ReplaceTree(ctx, tl.ID, tree)
	})
}

func (s *timelineService) List(ctx context.Context) (out []TimelineSummary, err error) {
	done := s.track(ctx, "list-timelines", nil)
	defer func() { done(err) }()

	list, err := s.timelines.List(ctx)
	if err != nil {
		return nil, err
	}
	out = make([]TimelineSummary, 0, len(list))
	for _, tl := range list {
		count, avg, err := s.goals.CountByTimeline(ctx, tl.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, TimelineSummary{
			Name:            tl.Name,
			GoalCount:       count,
			AverageProgress: avg,
			UpdatedAt:       tl.UpdatedAt,
		})
	}
	return out, nil
}

func (s *timelineService) Rename(ctx context.Context, oldName, newName string) (err error) {
	done := s.track(ctx, "rename-timeline", map[string]any{"timeline": oldName, "new_name": newName})
	defer func() { done(err) }()

	if err = domain.ValidateTimelineName(newName); err != nil {
		return err
	}
	tl, err := s.timelines.GetByName(ctx, oldName)
	if err != nil {
		return err
	}
	return s.timelines.Rename(ctx, tl.ID, newName)
}

func (s *timelineService) Delete(ctx context.Context, name string) (err error) {
	done := s.track(ctx, "delete-timeline", map[string]any{"timeline": name})
	defer func() { done(err) }()

	tl, err := s.timelines.GetByName(ctx, name)
	if err != nil {
		return err
	}
	return s.timelines.Delete(ctx, tl.ID)
}

func (s *timelineService) ImportFile(ctx context.Context, name, path string) (tree *domain.Tree, err error) {
	fields := map[string]any{"timeline": name, "path": path}
	done := s.track(ctx, "import-timeline", fields)
	defer func() { done(err) }()

	if err = domain.ValidateTimelineName(name); err != nil {
		return nil, err
	}
	tree, err = timeline.ReadFile(path)
	if err != nil {
		return nil, err
	}
	fields["goal_count"] = tree.Len()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txTimelines := repository.NewSQLiteTimelineRepo(tx)
		tl, err := txTimelines.GetByName(ctx, name)
		if errors.Is(err, repository.ErrNotFound) {
			fields["created"] = true
			_, err = createTimeline(ctx, tx, name, tree)
			return err
		}
		if err != nil {
			return err
		}
		if err := txTimelines.Touch(ctx, tl.ID); err != nil {
			return err
		}
		return repository.NewSQLiteGoalRepo(tx).ReplaceTree(ctx, tl.ID, tree)
	})
	if err != nil {
		return nil, err
	}
	return tree, nil
}

func (s *timelineService) ExportFile(ctx context.Context, name, path string) (written string, err error) {
	fields := map[string]any{"timeline": name}
	done := s.track(ctx, "export-timeline", fields)
	defer func() { done(err) }()

	tree, err := s.Open(ctx, name)
	if err != nil {
		return "", err
	}
	written = timeline.EnsureExtension(path)
	fields["path"] = written
	if err = timeline.WriteFile(written, tree); err != nil {
		return "", err
	}
	return written, nil
}

// track starts timing a use case; the returned func reports its outcome.
func (s *timelineService) track(ctx context.Context, name string, fields map[string]any) func(error) {
	startedAt := time.Now().UTC()
	return func(err error) {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      name,
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}
}

func createTimeline(ctx context.Context, tx db.DBTX, name string, tree *domain.Tree) (*domain.Timeline, error) {
	now := time.Now().UTC()
	tl := &domain.Timeline{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := repository.NewSQLiteTimelineRepo(tx).Create(ctx, tl); err != nil {
		return nil, err
	}
	if err := repository.NewSQLiteGoalRepo(tx).ReplaceTree(ctx, tl.ID, tree); err != nil {
		return nil, err
	}
	return tl, nil
}
