package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/alexanderramin/lifemap/internal/domain"
	"github.com/alexanderramin/lifemap/internal/editor"
	"github.com/alexanderramin/lifemap/internal/timeline"
)

// rootRef names the root goal in goal references.
const rootRef = "root"

// loadTimeline opens the named timeline. The default timeline is created on
// first use; any other name must already exist.
func loadTimeline(ctx context.Context, app *App, name string) (*domain.Tree, error) {
	if name == domain.DefaultTimelineName {
		tree, _, err := app.Timelines.OpenOrCreate(ctx, name)
		return tree, err
	}
	return app.Timelines.Open(ctx, name)
}

// loadFile reads a timeline document. A missing file yields a fresh tree;
// the first save creates it.
func loadFile(path string) (*domain.Tree, error) {
	tree, err := timeline.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return domain.NewTree(domain.DefaultRootName), nil
	}
	return tree, err
}

// openController loads a timeline and wraps it in an editor controller laid
// out with the configured geometry.
func openController(ctx context.Context, app *App, name string, opts ...editor.Option) (*editor.Controller, error) {
	tree, err := loadTimeline(ctx, app, name)
	if err != nil {
		return nil, err
	}
	opts = append([]editor.Option{editor.WithLinkOpener(app.opener())}, opts...)
	return editor.NewController(tree, app.Config.Layout, opts...), nil
}

// resolveGoal finds a goal by:
//   - the word "root"
//   - a full ID or unique ID prefix
//   - an exact, unique goal name
func resolveGoal(tree *domain.Tree, ref string) (*domain.Goal, error) {
	ref = strings.TrimSpace(ref)
	if strings.EqualFold(ref, rootRef) {
		return tree.Root(), nil
	}

	g, err := tree.Resolve(ref)
	if err == nil {
		return g, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	var byName []*domain.Goal
	tree.Walk(func(g *domain.Goal, _ int) bool {
		if g.Name == ref {
			byName = append(byName, g)
		}
		return true
	})
	switch len(byName) {
	case 1:
		return byName[0], nil
	case 0:
		return nil, err
	default:
		return nil, fmt.Errorf("%d goals are named %q; use an ID instead", len(byName), ref)
	}
}
