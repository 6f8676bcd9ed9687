// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package dictionary

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"

	"github.com/absolutelightning/go-dictionary/deque"
)

// TreeDictionary is an unbalanced binary search tree. All operations cost
// O(depth).
type TreeDictionary[K, V any] struct {
	root    *treeNode[K, V]
	size    int
	compare func(a, b K) int
}

var _ Dictionary[string, int] = (*TreeDictionary[string, int])(nil)

// NewTreeDictionary returns an empty tree ordered by the natural order of K.
func NewTreeDictionary[K constraints.Ordered, V any]() *TreeDictionary[K, V] {
	return &TreeDictionary[K, V]{compare: compareOrdered[K]}
}

// NewTreeDictionaryFunc returns an empty tree ordered by compare, which
// must return a negative number, zero or a positive number.
func NewTreeDictionaryFunc[K, V any](compare func(a, b K) int) (*TreeDictionary[K, V], error) {
	if compare == nil {
		return nil, fmt.Errorf("%w: nil key comparator", ErrInvalidConfig)
	}
	return &TreeDictionary[K, V]{compare: compare}, nil
}

func (t *TreeDictionary[K, V]) Get(key K) (V, bool) {
	var zero V
	n := t.get(key, t.root)
	if n == nil {
		return zero, false
	}
	return n.value, true
}

func (t *TreeDictionary[K, V]) get(key K, current *treeNode[K, V]) *treeNode[K, V] {
	if current == nil {
		return nil
	}
	c := t.compare(key, current.key)
	switch {
	case c == 0:
		return current
	case c > 0:
		return t.get(key, current.right)
	default:
		return t.get(key, current.left)
	}
}

func (t *TreeDictionary[K, V]) Put(key K, value V) (V, bool) {
	var old V
	var found bool
	t.root = t.put(key, value, t.root, &old, &found)
	if !found {
		t.size++
	}
	return old, found
}

// put allocates a node only when key is absent.
func (t *TreeDictionary[K, V]) put(key K, value V, current *treeNode[K, V], old *V, found *bool) *treeNode[K, V] {
	if current == nil {
		return newTreeNode(key, value)
	}
	c := t.compare(key, current.key)
	switch {
	case c == 0:
		*old, *found = current.value, true
		current.value = value
	case c > 0:
		current.right = t.put(key, value, current.right, old, found)
	default:
		current.left = t.put(key, value, current.left, old, found)
	}
	return current
}

func (t *TreeDictionary[K, V]) Remove(key K) (V, bool) {
	var old V
	var found bool
	t.root = t.remove(key, t.root, &old, &found)
	if found {
		t.size--
	}
	return old, found
}

// remove returns the subtree that replaces current. A node with two
// children is replaced by a new node carrying its in-order successor.
func (t *TreeDictionary[K, V]) remove(key K, current *treeNode[K, V], old *V, found *bool) *treeNode[K, V] {
	if current == nil {
		return nil
	}
	c := t.compare(key, current.key)
	switch {
	case c > 0:
		current.right = t.remove(key, current.right, old, found)
		return current
	case c < 0:
		current.left = t.remove(key, current.left, old, found)
		return current
	}

	*old, *found = current.value, true
	switch {
	case current.isLeaf():
		return nil
	case current.left == nil:
		return current.right
	case current.right == nil:
		return current.left
	}

	successor := current.right
	for successor.left != nil {
		successor = successor.left
	}
	var ignored V
	var removed bool
	current.right = t.remove(successor.key, current.right, &ignored, &removed)

	promoted := newTreeNode(successor.key, successor.value)
	promoted.left = current.left
	promoted.right = current.right
	return promoted
}

func (t *TreeDictionary[K, V]) ContainsKey(key K) bool {
	return t.get(key, t.root) != nil
}

func (t *TreeDictionary[K, V]) ContainsValue(value V) bool {
	return containsValue(t.Values(), value)
}

func (t *TreeDictionary[K, V]) Size() int {
	return t.size
}

func (t *TreeDictionary[K, V]) Empty() bool {
	return t.size == 0
}

func (t *TreeDictionary[K, V]) Clear() {
	t.root = nil
	t.size = 0
}

// Min returns the smallest key.
func (t *TreeDictionary[K, V]) Min() (K, bool) {
	var zero K
	if t.root == nil {
		return zero, false
	}
	n := t.root
	for n.left != nil {
		n = n.left
	}
	return n.key, true
}

// Max returns the largest key.
func (t *TreeDictionary[K, V]) Max() (K, bool) {
	var zero K
	if t.root == nil {
		return zero, false
	}
	n := t.root
	for n.right != nil {
		n = n.right
	}
	return n.key, true
}

// Walk is used to walk the tree in Keys order. Returning true from fn
// stops the walk.
func (t *TreeDictionary[K, V]) Walk(fn WalkFn[K, V]) {
	recursiveTreeWalk(t.root, fn)
}

// recursiveTreeWalk visits a node and then whichever children exist, left
// first when there are two. Returns true if the walk should be aborted.
func recursiveTreeWalk[K, V any](n *treeNode[K, V], fn WalkFn[K, V]) bool {
	if n == nil {
		return false
	}
	if fn(n.key, n.value) {
		return true
	}
	if n.hasBothChildren() {
		return recursiveTreeWalk(n.left, fn) || recursiveTreeWalk(n.right, fn)
	}
	if n.left != nil {
		return recursiveTreeWalk(n.left, fn)
	}
	return recursiveTreeWalk(n.right, fn)
}

func (t *TreeDictionary[K, V]) Keys() *deque.Deque[K] {
	keys := deque.New[K](t.size)
	t.Walk(func(k K, _ V) bool {
		keys.AddBack(k)
		return false
	})
	return keys
}

func (t *TreeDictionary[K, V]) Values() *deque.Deque[V] {
	values := deque.New[V](t.size)
	t.Walk(func(_ K, v V) bool {
		values.AddBack(v)
		return false
	})
	return values
}

func (t *TreeDictionary[K, V]) Iterator() *Iterator[K] {
	return newIterator(t.Keys())
}

// String renders the entries level by level: {k: v, k: v}.
func (t *TreeDictionary[K, V]) String() string {
	if t.root == nil {
		return "{}"
	}
	var b strings.Builder
	b.WriteByte('{')
	queue := deque.New[*treeNode[K, V]](t.size)
	queue.AddBack(t.root)
	for first := true; !queue.Empty(); first = false {
		n, _ := queue.RemoveFront()
		if !first {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v: %v", n.key, n.value)
		if n.left != nil {
			queue.AddBack(n.left)
		}
		if n.right != nil {
			queue.AddBack(n.right)
		}
	}
	b.WriteByte('}')
	return b.String()
}
