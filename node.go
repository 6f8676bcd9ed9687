// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package dictionary

// treeNode is a binary search tree node. The key never changes once the
// node exists; a removal that needs a different key builds a new node.
type treeNode[K, V any] struct {
	key   K
	value V
	left  *treeNode[K, V]
	right *treeNode[K, V]
}

func newTreeNode[K, V any](key K, value V) *treeNode[K, V] {
	return &treeNode[K, V]{key: key, value: value}
}

func (n *treeNode[K, V]) isLeaf() bool {
	return n.left == nil && n.right == nil
}

func (n *treeNode[K, V]) hasBothChildren() bool {
	return n.left != nil && n.right != nil
}

// listNode is a singly linked association list cell.
type listNode[K, V any] struct {
	key   K
	value V
	next  *listNode[K, V]
}

// trieNode owns one node per distinct prefix. Edges are kept in insertion
// order next to the lookup map so enumeration is repeatable.
type trieNode[A comparable, V any] struct {
	value    V
	hasValue bool
	edges    []A
	children map[A]*trieNode[A, V]
}

func newTrieNode[A comparable, V any]() *trieNode[A, V] {
	return &trieNode[A, V]{}
}

func (n *trieNode[A, V]) getChild(a A) *trieNode[A, V] {
	if n.children == nil {
		return nil
	}
	return n.children[a]
}

// addChild returns the child for a, creating it when missing.
func (n *trieNode[A, V]) addChild(a A) *trieNode[A, V] {
	if child := n.getChild(a); child != nil {
		return child
	}
	if n.children == nil {
		n.children = make(map[A]*trieNode[A, V])
	}
	child := newTrieNode[A, V]()
	n.children[a] = child
	n.edges = append(n.edges, a)
	return child
}

func (n *trieNode[A, V]) numChildren() int {
	return len(n.edges)
}

func (n *trieNode[A, V]) setValue(v V) (V, bool) {
	old, had := n.value, n.hasValue
	n.value = v
	n.hasValue = true
	return old, had
}
