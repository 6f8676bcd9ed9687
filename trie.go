// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package dictionary

import (
	"fmt"
	"strings"

	"github.com/absolutelightning/go-dictionary/deque"
)

// PrefixTrieDictionary maps sequences of symbols to values, one node per
// distinct prefix. Besides the Dictionary operations it answers prefix
// and completion queries.
//
// Enumeration (Keys, Values, GetCompletions, Walk) is pre-order with
// siblings in the order their edges were first inserted. Remove is not
// supported and never changes the trie.
type PrefixTrieDictionary[A comparable, V any] struct {
	root *trieNode[A, V]
	size int
}

var _ Dictionary[[]byte, int] = (*PrefixTrieDictionary[byte, int])(nil)

// NewPrefixTrieDictionary returns an empty trie.
func NewPrefixTrieDictionary[A comparable, V any]() *PrefixTrieDictionary[A, V] {
	return &PrefixTrieDictionary[A, V]{root: newTrieNode[A, V]()}
}

// search returns the node spelled by key, or nil.
func (t *PrefixTrieDictionary[A, V]) search(key []A) *trieNode[A, V] {
	n := t.root
	for _, a := range key {
		n = n.getChild(a)
		if n == nil {
			return nil
		}
	}
	return n
}

// IsPrefix reports whether some stored key starts with prefix.
func (t *PrefixTrieDictionary[A, V]) IsPrefix(prefix []A) bool {
	n := t.search(prefix)
	if n == nil {
		return false
	}
	return n.hasValue || n.numChildren() > 0
}

// GetCompletions returns the values of every key that starts with prefix.
func (t *PrefixTrieDictionary[A, V]) GetCompletions(prefix []A) *deque.Deque[V] {
	values := deque.New[V](0)
	if !t.IsPrefix(prefix) {
		return values
	}
	t.WalkPrefix(prefix, func(_ []A, v V) bool {
		values.AddBack(v)
		return false
	})
	return values
}

func (t *PrefixTrieDictionary[A, V]) Get(key []A) (V, bool) {
	var zero V
	n := t.search(key)
	if n == nil || !n.hasValue {
		return zero, false
	}
	return n.value, true
}

// Put creates the missing nodes along key and stores value at the last.
func (t *PrefixTrieDictionary[A, V]) Put(key []A, value V) (V, bool) {
	n := t.root
	for _, a := range key {
		n = n.addChild(a)
	}
	old, had := n.setValue(value)
	if !had {
		t.size++
	}
	return old, had
}

// Remove is not supported: it reports the key as not found and leaves the
// trie untouched.
func (t *PrefixTrieDictionary[A, V]) Remove(_ []A) (V, bool) {
	var zero V
	return zero, false
}

func (t *PrefixTrieDictionary[A, V]) ContainsKey(key []A) bool {
	_, ok := t.Get(key)
	return ok
}

func (t *PrefixTrieDictionary[A, V]) ContainsValue(value V) bool {
	found := false
	t.Walk(func(_ []A, v V) bool {
		found = valuesEqual(v, value)
		return found
	})
	return found
}

// LongestPrefix returns the longest stored key that is a prefix of k.
func (t *PrefixTrieDictionary[A, V]) LongestPrefix(k []A) ([]A, V, bool) {
	var zero V
	var last *trieNode[A, V]
	depth := -1

	n := t.root
	if n.hasValue {
		last, depth = n, 0
	}
	for i, a := range k {
		n = n.getChild(a)
		if n == nil {
			break
		}
		if n.hasValue {
			last, depth = n, i+1
		}
	}
	if last == nil {
		return nil, zero, false
	}
	return k[:depth:depth], last.value, true
}

func (t *PrefixTrieDictionary[A, V]) Size() int {
	return t.size
}

func (t *PrefixTrieDictionary[A, V]) Empty() bool {
	return t.size == 0
}

func (t *PrefixTrieDictionary[A, V]) Clear() {
	t.root = newTrieNode[A, V]()
	t.size = 0
}

// Walk is used to walk the trie. Returning true from fn stops the walk.
func (t *PrefixTrieDictionary[A, V]) Walk(fn WalkFn[[]A, V]) {
	t.WalkPrefix(nil, fn)
}

// WalkPrefix is used to walk the entries under a prefix.
func (t *PrefixTrieDictionary[A, V]) WalkPrefix(prefix []A, fn WalkFn[[]A, V]) {
	it := t.TrieIterator()
	it.SeekPrefix(prefix)
	for {
		k, v, ok := it.Next()
		if !ok || fn(k, v) {
			return
		}
	}
}

// TrieIterator returns an iterator over the entries of the trie.
func (t *PrefixTrieDictionary[A, V]) TrieIterator() *TrieIterator[A, V] {
	return newTrieIterator(t.root)
}

func (t *PrefixTrieDictionary[A, V]) Keys() *deque.Deque[[]A] {
	keys := deque.New[[]A](t.size)
	t.Walk(func(k []A, _ V) bool {
		keys.AddBack(k)
		return false
	})
	return keys
}

func (t *PrefixTrieDictionary[A, V]) Values() *deque.Deque[V] {
	values := deque.New[V](t.size)
	t.Walk(func(_ []A, v V) bool {
		values.AddBack(v)
		return false
	})
	return values
}

func (t *PrefixTrieDictionary[A, V]) Iterator() *Iterator[[]A] {
	return newIterator(t.Keys())
}

// String renders the node structure, one edge per line, indented by
// depth. Nodes carrying a value show it in brackets.
func (t *PrefixTrieDictionary[A, V]) String() string {
	return t.render(func(a A) string { return fmt.Sprint(a) })
}

func (t *PrefixTrieDictionary[A, V]) render(formatEdge func(A) string) string {
	var b strings.Builder
	if t.root.hasValue {
		fmt.Fprintf(&b, "[%v]\n", t.root.value)
	}
	printTrieNode(&b, t.root, 0, formatEdge)
	return b.String()
}

func printTrieNode[A comparable, V any](b *strings.Builder, n *trieNode[A, V], depth int, formatEdge func(A) string) {
	for _, edge := range n.edges {
		child := n.children[edge]
		b.WriteString(strings.Repeat(" ", depth*2))
		b.WriteString(formatEdge(edge))
		if child.hasValue {
			fmt.Fprintf(b, "[%v]", child.value)
		}
		b.WriteByte('\n')
		printTrieNode(b, child, depth+1, formatEdge)
	}
}
