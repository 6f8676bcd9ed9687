// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package dictionary

import (
	"github.com/absolutelightning/go-dictionary/deque"
)

// Iterator walks a snapshot of a dictionary's keys. Mutating the dictionary
// does not affect an iterator that already exists.
type Iterator[K any] struct {
	keys *deque.Deque[K]
	pos  int
}

func newIterator[K any](keys *deque.Deque[K]) *Iterator[K] {
	return &Iterator[K]{keys: keys}
}

// HasNext reports whether Next will return another key.
func (i *Iterator[K]) HasNext() bool {
	return i.pos < i.keys.Size()
}

// Next returns the next key, or false once the keys are exhausted.
func (i *Iterator[K]) Next() (K, bool) {
	k, ok := i.keys.At(i.pos)
	if ok {
		i.pos++
	}
	return k, ok
}

// TrieIterator is used to iterate over the entries of a trie below a
// prefix, parents before children and siblings in edge insertion order.
type TrieIterator[A comparable, V any] struct {
	stack []trieNodeWrapper[A, V]
}

type trieNodeWrapper[A comparable, V any] struct {
	n    *trieNode[A, V]
	path []A
}

func newTrieIterator[A comparable, V any](root *trieNode[A, V]) *TrieIterator[A, V] {
	it := &TrieIterator[A, V]{}
	if root != nil {
		it.stack = []trieNodeWrapper[A, V]{{n: root}}
	}
	return it
}

// SeekPrefix is used to seek the iterator to a given prefix. Entries whose
// key does not start with prefix are skipped. It must be called before the
// first call to Next.
func (i *TrieIterator[A, V]) SeekPrefix(prefix []A) {
	if len(i.stack) == 0 {
		return
	}
	start := i.stack[0]
	i.stack = nil

	n := start.n
	for _, a := range prefix {
		n = n.getChild(a)
		if n == nil {
			return
		}
	}
	path := make([]A, 0, len(start.path)+len(prefix))
	path = append(path, start.path...)
	path = append(path, prefix...)
	i.stack = []trieNodeWrapper[A, V]{{n: n, path: path}}
}

// Next returns the next key and value in pre-order.
func (i *TrieIterator[A, V]) Next() ([]A, V, bool) {
	var zero V
	for len(i.stack) > 0 {
		nodeW := i.stack[len(i.stack)-1]
		i.stack = i.stack[:len(i.stack)-1]

		n := nodeW.n
		// push in reverse so the first edge is popped first
		for itr := n.numChildren() - 1; itr >= 0; itr-- {
			edge := n.edges[itr]
			path := make([]A, len(nodeW.path)+1)
			copy(path, nodeW.path)
			path[len(nodeW.path)] = edge
			i.stack = append(i.stack, trieNodeWrapper[A, V]{n: n.children[edge], path: path})
		}
		if n.hasValue {
			return nodeW.path, n.value, true
		}
	}
	return nil, zero, false
}
