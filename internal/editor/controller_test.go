package editor

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/lifemap/internal/domain"
	"github.com/alexanderramin/lifemap/internal/layout"
	"github.com/alexanderramin/lifemap/internal/timeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingListener struct {
	seen []string
}

func (r *recordingListener) SelectionChanged(g *domain.Goal) {
	r.seen = append(r.seen, g.Name)
}

type fakeOpener struct {
	opened []string
	err    error
}

func (f *fakeOpener) Open(url string) error {
	f.opened = append(f.opened, url)
	return f.err
}

type countingConfirmer struct {
	answer  bool
	prompts []string
}

func (c *countingConfirmer) Confirm(prompt string) bool {
	c.prompts = append(c.prompts, prompt)
	return c.answer
}

// setup builds My Life -> [Career -> [Promotion], Health].
func setup(t *testing.T, opts ...Option) (*Controller, map[string]*domain.Goal) {
	t.Helper()
	tree := domain.NewTree(domain.DefaultRootName)
	career := domain.NewGoal("Career")
	health := domain.NewGoal("Health")
	promotion := domain.NewGoal("Promotion")
	require.NoError(t, tree.Root().AppendChild(career))
	require.NoError(t, tree.Root().AppendChild(health))
	require.NoError(t, career.AppendChild(promotion))
	c := NewController(tree, layout.DefaultConfig(), opts...)
	return c, map[string]*domain.Goal{
		"root":      tree.Root(),
		"career":    career,
		"health":    health,
		"promotion": promotion,
	}
}

func TestNewController_SelectsRootAndLaysOut(t *testing.T) {
	c, g := setup(t)
	assert.Same(t, g["root"], c.Selected())
	assert.True(t, c.IsRootSelected())
	assert.False(t, c.Dirty())
	assert.Equal(t, 300.0, g["career"].Box.X, "initial layout pass ran")
}

func TestSelect(t *testing.T) {
	l := &recordingListener{}
	c, g := setup(t, WithSelectionListener(l))

	require.NoError(t, c.Select(g["health"]))
	assert.Same(t, g["health"], c.Selected())
	assert.Equal(t, []string{"Health"}, l.seen)

	err := c.Select(domain.NewGoal("outsider"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Same(t, g["health"], c.Selected())
}

func TestSelectAt(t *testing.T) {
	l := &recordingListener{}
	c, g := setup(t, WithSelectionListener(l))

	cx, cy := g["promotion"].Box.Center()
	assert.True(t, c.SelectAt(cx, cy))
	assert.Same(t, g["promotion"], c.Selected())

	assert.False(t, c.SelectAt(-500, -500))
	assert.Same(t, g["promotion"], c.Selected(), "a miss keeps the selection")
	assert.Equal(t, []string{"Promotion"}, l.seen)
}

func TestApplyEdits(t *testing.T) {
	c, g := setup(t)
	require.NoError(t, c.Select(g["career"]))

	c.ApplyEdits(Fields{
		Name:        "Career 2.0",
		Date:        "someday",
		URL:         "https://example.com",
		Progress:    140,
		Description: "\n  ship the thing  \n",
	})

	career := g["career"]
	assert.Equal(t, "Career 2.0", career.Name)
	assert.Equal(t, "someday", career.Date)
	assert.Equal(t, "https://example.com", career.URL)
	assert.Equal(t, 100, career.Progress())
	assert.Equal(t, "ship the thing", career.Description)
	assert.True(t, c.Dirty())

	assert.Equal(t, FieldsOf(career), Fields{
		Name: "Career 2.0", Date: "someday", URL: "https://example.com",
		Progress: 100, Description: "ship the thing",
	})

	c.ApplyEdits(Fields{Name: "Career", Progress: -4})
	assert.Equal(t, 0, career.Progress())
}

func TestAddChild_UnderSelectionNotRoot(t *testing.T) {
	c, g := setup(t)
	require.NoError(t, c.Select(g["health"]))

	child := c.AddChild()
	require.NotNil(t, child)
	assert.Equal(t, domain.DefaultGoalName, child.Name)
	assert.Same(t, g["health"], c.Selected(), "selection does not move")
	assert.Equal(t, g["health"].ID, child.ParentID())
	require.Len(t, g["health"].Children(), 1)
	assert.Len(t, g["root"].Children(), 2)
	assert.True(t, c.Dirty())

	assert.Equal(t, g["health"].Box.X+250, child.Box.X, "layout recomputed")
	assert.Equal(t, g["health"].Box.Y, child.Box.Y)
}

func TestDeleteSelected_RootProtected(t *testing.T) {
	c, g := setup(t)
	confirm := &countingConfirmer{answer: true}

	removed, err := c.DeleteSelected(confirm)
	assert.False(t, removed)
	assert.ErrorIs(t, err, domain.ErrProtectedNode)
	assert.Empty(t, confirm.prompts, "root deletion never asks")
	assert.Equal(t, 4, c.Tree().Len())
	assert.Same(t, g["root"], c.Selected())
	assert.False(t, c.Dirty())
}

func TestDeleteSelected_FallsBackToParent(t *testing.T) {
	l := &recordingListener{}
	c, g := setup(t, WithSelectionListener(l))
	require.NoError(t, c.Select(g["career"]))
	confirm := &countingConfirmer{answer: true}

	removed, err := c.DeleteSelected(confirm)
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Equal(t, []string{DeletePrompt}, confirm.prompts)

	assert.Same(t, g["root"], c.Selected())
	assert.Equal(t, 2, c.Tree().Len(), "whole subtree removed")
	assert.False(t, c.Tree().Contains(g["promotion"]))
	assert.Equal(t, []string{"Career", "My Life"}, l.seen)
	assert.True(t, c.Dirty())
	assert.Equal(t, 300.0, g["health"].Box.Y, "only child recentered on root")
}

func TestDeleteSelected_Declined(t *testing.T) {
	c, g := setup(t)
	require.NoError(t, c.Select(g["promotion"]))

	removed, err := c.DeleteSelected(&countingConfirmer{answer: false})
	require.NoError(t, err)
	assert.False(t, removed)
	assert.Same(t, g["promotion"], c.Selected())
	assert.Equal(t, 4, c.Tree().Len())

	removed, err = c.DeleteSelected(nil)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestDeleteSelected_AlwaysConfirm(t *testing.T) {
	c, g := setup(t)
	require.NoError(t, c.Select(g["promotion"]))

	removed, err := c.DeleteSelected(AlwaysConfirm)
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Same(t, g["career"], c.Selected())
	assert.True(t, g["career"].IsLeaf())
}

func TestOpenLink(t *testing.T) {
	opener := &fakeOpener{}
	c, g := setup(t, WithLinkOpener(opener))

	assert.ErrorIs(t, c.OpenLink(), domain.ErrNoLink)
	assert.Empty(t, opener.opened)

	g["root"].URL = "https://example.com/life"
	require.NoError(t, c.OpenLink())
	assert.Equal(t, []string{"https://example.com/life"}, opener.opened)

	opener.err = errors.New("no browser")
	assert.EqualError(t, c.OpenLink(), "no browser")
}

func TestReplace(t *testing.T) {
	l := &recordingListener{}
	c, g := setup(t, WithSelectionListener(l))
	require.NoError(t, c.Select(g["health"]))
	c.AddChild()

	next := domain.NewTree("Loaded")
	c.Replace(next)

	assert.Same(t, next, c.Tree())
	assert.Same(t, next.Root(), c.Selected())
	assert.False(t, c.Dirty())
	assert.Equal(t, "Loaded", l.seen[len(l.seen)-1])
	assert.Equal(t, 300.0, next.Root().Box.Y)
}

func TestSetConfig_Relayouts(t *testing.T) {
	c, g := setup(t)
	cfg := layout.DefaultConfig()
	cfg.HorizontalSpacing = 400
	c.SetConfig(cfg)

	assert.Equal(t, 450.0, g["career"].Box.X)
	assert.Equal(t, cfg, c.Config())
}

func TestScene_MarksSelection(t *testing.T) {
	c, g := setup(t)
	require.NoError(t, c.Select(g["health"]))

	s := c.Scene()
	v, ok := s.Node(g["health"].ID)
	require.True(t, ok)
	assert.True(t, v.Selected)
	rv, _ := s.Node(g["root"].ID)
	assert.False(t, rv.Selected)
}

func TestSaveAndLoadFile(t *testing.T) {
	c, g := setup(t)
	g["promotion"].SetProgress(40)
	c.AddChild()

	dir := t.TempDir()
	written, err := c.SaveFile(filepath.Join(dir, "plan"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "plan"+timeline.FileExtension), written)
	assert.False(t, c.Dirty())

	other, _ := setup(t)
	require.NoError(t, other.LoadFile(written))
	assert.Equal(t, 5, other.Tree().Len())
	assert.Equal(t, 40, other.Tree().Root().Children()[0].Children()[0].Progress())
	assert.True(t, other.IsRootSelected())
}

func TestLoadFile_FailureKeepsTree(t *testing.T) {
	c, g := setup(t)
	require.NoError(t, c.Select(g["health"]))

	bad := filepath.Join(t.TempDir(), "bad"+timeline.FileExtension)
	require.NoError(t, os.WriteFile(bad, []byte(`{"children": []}`), 0644))

	err := c.LoadFile(bad)
	var vErr *domain.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Same(t, g["root"], c.Tree().Root())
	assert.Same(t, g["health"], c.Selected())

	err = c.LoadFile(filepath.Join(t.TempDir(), "missing"+timeline.FileExtension))
	var ioErr *domain.IOError
	require.True(t, errors.As(err, &ioErr))
	assert.Equal(t, 4, c.Tree().Len())
}
