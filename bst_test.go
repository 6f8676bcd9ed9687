// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package dictionary

import (
	"errors"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/google/btree"
	"github.com/stretchr/testify/require"
)

func shapeTree() *TreeDictionary[string, int] {
	bst := NewTreeDictionary[string, int]()
	for i, k := range []string{"m", "s", "x", "i", "a", "p", "u", "y", "t"} {
		bst.Put(k, i+1)
	}
	return bst
}

func TestTreeDictionary_Shape(t *testing.T) {
	t.Parallel()

	bst := shapeTree()
	require.Equal(t, "{m: 1, i: 4, s: 2, a: 5, p: 6, x: 3, u: 7, y: 8, t: 9}", bst.String())
	require.Equal(t, []string{"m", "i", "a", "s", "p", "x", "u", "t", "y"}, bst.Keys().Values())
	require.Equal(t, []int{1, 4, 5, 2, 6, 3, 7, 9, 8}, bst.Values().Values())
	require.Equal(t, "{}", NewTreeDictionary[string, int]().String())
}

func TestTreeDictionary_RemoveShapes(t *testing.T) {
	t.Parallel()

	bst := shapeTree()

	// two children: the successor t takes the place of s
	successor := bst.root.right.right.left.left
	require.Equal(t, "t", successor.key)
	v, ok := bst.Remove("s")
	require.True(t, ok)
	require.Equal(t, 2, v)
	require.Equal(t, "{m: 1, i: 4, t: 9, a: 5, p: 6, x: 3, u: 7, y: 8}", bst.String())
	require.Equal(t, "t", bst.root.right.key)
	require.NotSame(t, successor, bst.root.right)

	// the root has two children as well
	v, ok = bst.Remove("m")
	require.True(t, ok)
	require.Equal(t, 1, v)
	require.Equal(t, "{p: 6, i: 4, t: 9, a: 5, x: 3, u: 7, y: 8}", bst.String())

	// one child is pulled up
	v, ok = bst.Remove("i")
	require.True(t, ok)
	require.Equal(t, 4, v)
	require.Equal(t, "{p: 6, a: 5, t: 9, x: 3, u: 7, y: 8}", bst.String())

	// leaf
	v, ok = bst.Remove("y")
	require.True(t, ok)
	require.Equal(t, 8, v)
	require.Equal(t, "{p: 6, a: 5, t: 9, x: 3, u: 7}", bst.String())
	require.Equal(t, 5, bst.Size())

	for _, k := range []string{"p", "a", "t", "x", "u"} {
		_, ok = bst.Remove(k)
		require.True(t, ok)
	}
	require.True(t, bst.Empty())
	require.Equal(t, "{}", bst.String())
}

func TestTreeDictionary_UpdateKeepsNode(t *testing.T) {
	t.Parallel()

	bst := shapeTree()
	root := bst.root
	old, existed := bst.Put("m", 100)
	require.True(t, existed)
	require.Equal(t, 1, old)
	require.Same(t, root, bst.root)
	require.Equal(t, 9, bst.Size())
}

func TestTreeDictionary_GetDoesNotAllocate(t *testing.T) {
	bst := NewTreeDictionary[int, int]()
	for _, k := range []int{50, 25, 75, 10, 30, 60, 90} {
		bst.Put(k, k)
	}
	allocs := testing.AllocsPerRun(100, func() {
		bst.Get(60)
		bst.ContainsKey(11)
	})
	require.Zero(t, allocs)
}

func TestTreeDictionary_MinMax(t *testing.T) {
	t.Parallel()

	bst := NewTreeDictionary[int, string]()
	_, ok := bst.Min()
	require.False(t, ok)
	_, ok = bst.Max()
	require.False(t, ok)

	for _, k := range []int{8, 3, 10, 1, 6, 14, 4} {
		bst.Put(k, "")
	}
	lo, ok := bst.Min()
	require.True(t, ok)
	require.Equal(t, 1, lo)
	hi, ok := bst.Max()
	require.True(t, ok)
	require.Equal(t, 14, hi)
}

func TestTreeDictionary_Comparator(t *testing.T) {
	t.Parallel()

	_, err := NewTreeDictionaryFunc[string, int](nil)
	require.True(t, errors.Is(err, ErrInvalidConfig))

	bst, err := NewTreeDictionaryFunc[string, int](func(a, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	})
	require.NoError(t, err)
	bst.Put("Key", 1)
	old, existed := bst.Put("KEY", 2)
	require.True(t, existed)
	require.Equal(t, 1, old)
	v, ok := bst.Get("key")
	require.True(t, ok)
	require.Equal(t, 2, v)
	require.Equal(t, 1, bst.Size())
}

func TestTreeDictionary_WalkAbort(t *testing.T) {
	t.Parallel()

	bst := shapeTree()
	var seen []string
	bst.Walk(func(k string, _ int) bool {
		seen = append(seen, k)
		return k == "s"
	})
	require.Equal(t, []string{"m", "i", "a", "s"}, seen)
}

func TestTreeDictionary_MatchesBTree(t *testing.T) {
	t.Parallel()

	seed := time.Now().UnixNano()
	t.Logf("seed: %d", seed)
	rnd := rand.New(rand.NewSource(seed))

	bst := NewTreeDictionary[int, int]()
	oracle := btree.NewG[int](4, func(a, b int) bool { return a < b })

	for i := 0; i < 5000; i++ {
		k := rnd.Intn(500)
		if rnd.Intn(3) == 0 {
			_, removed := bst.Remove(k)
			_, had := oracle.Delete(k)
			require.Equal(t, had, removed, "remove %d", k)
		} else {
			_, existed := bst.Put(k, k*2)
			_, had := oracle.ReplaceOrInsert(k)
			require.Equal(t, had, existed, "put %d", k)
		}
		require.Equal(t, oracle.Len(), bst.Size())
	}

	var want []int
	oracle.Ascend(func(k int) bool {
		want = append(want, k)
		return true
	})
	var got []int
	bst.Walk(func(k, v int) bool {
		require.Equal(t, k*2, v)
		got = append(got, k)
		return false
	})
	require.ElementsMatch(t, want, got)

	if oracle.Len() > 0 {
		lo, _ := oracle.Min()
		hi, _ := oracle.Max()
		bstLo, _ := bst.Min()
		bstHi, _ := bst.Max()
		require.Equal(t, lo, bstLo)
		require.Equal(t, hi, bstHi)
	}
	require.Equal(t, want, inOrder(bst.root, nil))
}

func inOrder(n *treeNode[int, int], keys []int) []int {
	if n == nil {
		return keys
	}
	keys = inOrder(n.left, keys)
	keys = append(keys, n.key)
	return inOrder(n.right, keys)
}
