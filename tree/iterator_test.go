package tree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bstree/tree"
)

func TestIterator(t *testing.T) {
	assert := assert.New(t)
	tr := tree.NewSearchTree[uint32]()
	for _, x := range []uint32{16, 7, 28, 3, 21, 36, 70} {
		tr.Insert(x)
	}

	it := tr.Iter()
	for _, expected := range []uint32{3, 7, 16, 21, 28, 36, 70} {
		x, ok := it.Next()
		assert.True(ok)
		assert.Equal(expected, x)
	}
	_, ok := it.Next()
	assert.False(ok, "iterator should be exhausted")
	_, ok = it.Next()
	assert.False(ok, "exhausted iterator should stay exhausted")
}

func TestIteratorEmpty(t *testing.T) {
	assert := assert.New(t)
	tr := tree.NewSearchTree[string]()

	it := tr.Iter()
	_, ok := it.Next()
	assert.False(ok)
	_, ok = it.Next()
	assert.False(ok)
	assert.Empty(tr.Slice())
}

func TestIteratorsAreIndependent(t *testing.T) {
	assert := assert.New(t)
	tr := tree.NewSearchTree[int]()
	for _, x := range []int{2, 1, 3} {
		tr.Insert(x)
	}

	it1 := tr.Iter()
	x, _ := it1.Next()
	assert.Equal(1, x)

	it2 := tr.Iter()
	x, _ = it2.Next()
	assert.Equal(1, x, "a new iterator starts from the beginning")
	x, _ = it1.Next()
	assert.Equal(2, x)
	x, _ = it2.Next()
	assert.Equal(2, x)
}

func TestAllBreak(t *testing.T) {
	tr := tree.NewSearchTree[int]()
	for _, x := range []int{50, 20, 80, 10, 30} {
		tr.Insert(x)
	}

	var seen = []int{}
	for x := range tr.All() {
		if x > 20 {
			break
		}
		seen = append(seen, x)
	}
	assert.Equal(t, []int{10, 20}, seen)
}
