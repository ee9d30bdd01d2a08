package toolkit

import (
	"testing"

	"github.com/BrandonKowalski/pagenav/pkg/pagenav/constants"
	"github.com/stretchr/testify/require"
)

type box struct {
	Node
	name string
}

func newBox(name string, parent *box, onDelete func()) *box {
	b := &box{name: name}
	var pn *Node
	if parent != nil {
		pn = &parent.Node
	}
	b.Init(b, pn, 100, 50, onDelete)
	return b
}

func owners(nodes []*Node) []string {
	var out []string
	for _, n := range nodes {
		out = append(out, n.Owner().(*box).name)
	}
	return out
}

func TestNodeStacking(t *testing.T) {
	root := newBox("root", nil, nil)
	a := newBox("a", root, nil)
	b := newBox("b", root, nil)
	c := newBox("c", root, nil)

	require.Equal(t, []string{"a", "b", "c"}, owners(root.Children()))
	require.Equal(t, -1, root.ZIndex())

	a.MoveToFront()
	require.Equal(t, []string{"b", "c", "a"}, owners(root.Children()))
	require.Equal(t, 2, a.ZIndex())
	require.Equal(t, 0, b.ZIndex())

	c.MoveToFront()
	require.Equal(t, []string{"b", "a", "c"}, owners(root.Children()))

	root.MoveToFront()
	require.Equal(t, []string{"b", "a", "c"}, owners(root.Children()))
}

func TestNodeDeleteDetachesSubtree(t *testing.T) {
	var deleted []string
	hook := func(name string) func() { return func() { deleted = append(deleted, name) } }

	root := newBox("root", nil, nil)
	page := newBox("page", root, hook("page"))
	row := newBox("row", page, hook("row"))
	other := newBox("other", root, hook("other"))

	page.Delete()
	require.True(t, page.Deleted())
	require.True(t, row.Deleted())
	require.False(t, other.Deleted())
	require.Equal(t, []string{"row", "page"}, deleted)
	require.Equal(t, []string{"other"}, owners(root.Children()))
	require.Equal(t, -1, page.ZIndex())

	page.Delete()
	require.Equal(t, []string{"row", "page"}, deleted, "second delete runs no hooks")
}

func TestNodeShownAndOrigin(t *testing.T) {
	root := newBox("root", nil, nil)
	page := newBox("page", root, nil)
	row := newBox("row", page, nil)

	w, h := row.Size()
	require.Equal(t, int32(100), w)
	require.Equal(t, int32(50), h)
	require.Equal(t, constants.OpacityCover, row.Opacity())
	require.True(t, row.Shown(1))

	page.SetPosition(10, 20)
	row.SetPosition(3, 4)
	x, y := row.Origin()
	require.Equal(t, int32(13), x)
	require.Equal(t, int32(24), y)

	page.SetOpacity(100)
	require.True(t, row.Shown(100))
	require.False(t, row.Shown(101), "an ancestor below the threshold hides the subtree")

	page.SetOpacity(constants.OpacityCover)
	page.SetHidden(true)
	require.False(t, row.Shown(0))
}
