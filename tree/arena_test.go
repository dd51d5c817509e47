package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArenaBasic(t *testing.T) {
	a := NewArena[string]()
	root := a.New("root", NoIndex)
	assert.Equal(t, 0, root)
	child := a.New("child", root)
	assert.Equal(t, []int{child}, a.Children(root))
	assert.Equal(t, root, a.Parent(child))
	v, ok := a.Get(child)
	assert.True(t, ok)
	assert.Equal(t, "child", v)
}

func TestArenaRemoveRecyclesIndex(t *testing.T) {
	a := NewArena[string]()
	root := a.New("root", NoIndex)
	child := a.New("child", root)
	grandchild := a.New("gc", child)
	a.Remove(child)
	assert.Empty(t, a.Children(root))
	_, ok := a.Get(child)
	assert.False(t, ok)
	_, ok = a.Get(grandchild)
	assert.False(t, ok)

	reused := a.New("new-child", root)
	assert.Equal(t, child, reused, "freed index should be recycled")
}

func TestArenaReparent(t *testing.T) {
	a := NewArena[string]()
	root := a.New("root", NoIndex)
	a1 := a.New("a", root)
	b1 := a.New("b", root)
	a.Reparent(b1, a1)
	assert.Equal(t, []int{a1}, a.Children(root))
	assert.Equal(t, []int{b1}, a.Children(a1))
	assert.Equal(t, a1, a.Parent(b1))
}

func TestArenaWalkDocumentOrder(t *testing.T) {
	a := NewArena[string]()
	root := a.New("root", NoIndex)
	c1 := a.New("c1", root)
	a.New("c1.1", c1)
	a.New("c2", root)

	var order []string
	a.Walk(root, func(_ int, payload string) { order = append(order, payload) })
	assert.Equal(t, []string{"root", "c1", "c1.1", "c2"}, order)
}
