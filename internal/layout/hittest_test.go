package layout

import (
	"math/rand"
	"testing"

	"github.com/alexanderramin/lifemap/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindNodeAt_ReferenceScenario(t *testing.T) {
	tree, career, health, promotion := lifeTree(t)
	Compute(tree.Root(), referenceConfig())

	assert.Same(t, tree.Root(), FindNodeAt(tree.Root(), 140, 330))
	assert.Same(t, career, FindNodeAt(tree.Root(), 390, 290))
	assert.Same(t, health, FindNodeAt(tree.Root(), 390, 370))
	assert.Same(t, promotion, FindNodeAt(tree.Root(), 640, 290))
}

func TestFindNodeAt_EdgesAreInclusive(t *testing.T) {
	tree, career, _, _ := lifeTree(t)
	Compute(tree.Root(), referenceConfig())

	b := career.Box
	assert.Same(t, career, FindNodeAt(tree.Root(), b.X, b.Y))
	assert.Same(t, career, FindNodeAt(tree.Root(), b.X+b.Width, b.Y+b.Height))
}

func TestFindNodeAt_Miss(t *testing.T) {
	tree, _, _, _ := lifeTree(t)
	Compute(tree.Root(), referenceConfig())

	assert.Nil(t, FindNodeAt(tree.Root(), 0, 0))
	assert.Nil(t, FindNodeAt(tree.Root(), 265, 330), "gap between columns")
	assert.Nil(t, FindNodeAt(tree.Root(), 390, 330), "gap between sibling boxes")
	assert.Nil(t, FindNodeAt(nil, 10, 10))
}

func TestFindNodeAt_SelfBeforeChildren(t *testing.T) {
	root := domain.NewGoal("root")
	child := domain.NewGoal("child")
	require.NoError(t, root.AppendChild(child))

	// Force overlapping boxes; the parent is checked first.
	root.Box = domain.Box{X: 0, Y: 0, Width: 100, Height: 100}
	child.Box = domain.Box{X: 50, Y: 50, Width: 100, Height: 100}

	assert.Same(t, root, FindNodeAt(root, 75, 75))
	assert.Same(t, child, FindNodeAt(root, 125, 125))
}

func TestFindNodeAt_FirstSiblingWins(t *testing.T) {
	root := domain.NewGoal("root")
	a := domain.NewGoal("a")
	b := domain.NewGoal("b")
	require.NoError(t, root.AppendChild(a))
	require.NoError(t, root.AppendChild(b))

	root.Box = domain.Box{X: -100, Y: -100, Width: 1, Height: 1}
	a.Box = domain.Box{X: 0, Y: 0, Width: 10, Height: 10}
	b.Box = domain.Box{X: 0, Y: 0, Width: 10, Height: 10}

	assert.Same(t, a, FindNodeAt(root, 5, 5))
}

// TestFindNodeAt_CentersResolveToOwner property-tests that every box center
// resolves to its own goal under the default geometry.
func TestFindNodeAt_CentersResolveToOwner(t *testing.T) {
	rng := rand.New(rand.NewSource(99))

	for trial := 0; trial < 50; trial++ {
		tree := randomTree(rng, rng.Intn(80)+1)
		Compute(tree.Root(), DefaultConfig())

		tree.Walk(func(g *domain.Goal, _ int) bool {
			cx, cy := g.Box.Center()
			hit := FindNodeAt(tree.Root(), cx, cy)
			if assert.NotNil(t, hit, "trial %d", trial) {
				assert.Equal(t, g.ID, hit.ID, "trial %d", trial)
			}
			return true
		})
	}
}
