package service

import (
	"context"
	"io"
	"log/slog"
	"slices"
	"time"
)

// UseCaseEvent describes one finished service call.
type UseCaseEvent struct {
	Name      string
	StartedAt time.Time
	Duration  time.Duration
	Err       error
	Success   bool

	// Fields holds call-specific attributes such as the timeline name.
	Fields map[string]any
}

// UseCaseObserver is notified after every TimelineService call.
type UseCaseObserver interface {
	ObserveUseCase(ctx context.Context, event UseCaseEvent)
}

// NoopUseCaseObserver drops events.
type NoopUseCaseObserver struct{}

func (NoopUseCaseObserver) ObserveUseCase(context.Context, UseCaseEvent) {}

// fanOut forwards each event to several observers in order.
type fanOut []UseCaseObserver

func (f fanOut) ObserveUseCase(ctx context.Context, event UseCaseEvent) {
	for _, o := range f {
		o.ObserveUseCase(ctx, event)
	}
}

// combineObservers drops nil entries and collapses what is left into a
// single observer.
func combineObservers(observers []UseCaseObserver) UseCaseObserver {
	live := slices.DeleteFunc(slices.Clone(observers), func(o UseCaseObserver) bool { return o == nil })
	switch len(live) {
	case 0:
		return NoopUseCaseObserver{}
	case 1:
		return live[0]
	default:
		return fanOut(live)
	}
}

type slogObserver struct {
	log *slog.Logger
}

// NewLogUseCaseObserver logs each call as a single logfmt line on w.
// Failed calls are logged at ERROR. Fields appear sorted by key.
func NewLogUseCaseObserver(w io.Writer) UseCaseObserver {
	if w == nil {
		return NoopUseCaseObserver{}
	}
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})
	return slogObserver{log: slog.New(h)}
}

func (o slogObserver) ObserveUseCase(ctx context.Context, event UseCaseEvent) {
	level := slog.LevelInfo
	attrs := []slog.Attr{
		slog.String("use_case", event.Name),
		slog.Int64("duration_ms", event.Duration.Milliseconds()),
		slog.Bool("success", event.Success),
	}
	keys := make([]string, 0, len(event.Fields))
	for k := range event.Fields {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		attrs = append(attrs, slog.Any(k, event.Fields[k]))
	}
	if event.Err != nil {
		level = slog.LevelError
		attrs = append(attrs, slog.String("error", event.Err.Error()))
	}
	o.log.LogAttrs(ctx, level, "use_case", attrs...)
}
