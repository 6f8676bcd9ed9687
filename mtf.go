// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package dictionary

import (
	"fmt"
	"strings"

	"github.com/absolutelightning/go-dictionary/deque"
)

// MoveToFrontDictionary is a singly linked association list. A successful
// Get or ContainsKey moves the entry to the head, so recently used keys
// are found first.
type MoveToFrontDictionary[K comparable, V any] struct {
	head *listNode[K, V]
	size int
}

var _ Dictionary[string, int] = (*MoveToFrontDictionary[string, int])(nil)

// NewMoveToFrontDictionary returns an empty list.
func NewMoveToFrontDictionary[K comparable, V any]() *MoveToFrontDictionary[K, V] {
	return &MoveToFrontDictionary[K, V]{}
}

// MoveToFrontFactory is a Factory producing move-to-front buckets.
func MoveToFrontFactory[K comparable, V any]() Dictionary[K, V] {
	return NewMoveToFrontDictionary[K, V]()
}

// access finds key and splices its node to the head.
func (m *MoveToFrontDictionary[K, V]) access(key K) *listNode[K, V] {
	if m.head == nil {
		return nil
	}
	if m.head.key == key {
		return m.head
	}
	prev := m.head
	for current := m.head.next; current != nil; prev, current = current, current.next {
		if current.key == key {
			prev.next = current.next
			current.next = m.head
			m.head = current
			return current
		}
	}
	return nil
}

// find locates key without reordering.
func (m *MoveToFrontDictionary[K, V]) find(key K) *listNode[K, V] {
	for current := m.head; current != nil; current = current.next {
		if current.key == key {
			return current
		}
	}
	return nil
}

func (m *MoveToFrontDictionary[K, V]) Get(key K) (V, bool) {
	var zero V
	n := m.access(key)
	if n == nil {
		return zero, false
	}
	return n.value, true
}

// Put adds an absent key at the head. Updating a present key leaves its
// position unchanged.
func (m *MoveToFrontDictionary[K, V]) Put(key K, value V) (V, bool) {
	if n := m.find(key); n != nil {
		old := n.value
		n.value = value
		return old, true
	}
	m.head = &listNode[K, V]{key: key, value: value, next: m.head}
	m.size++
	var zero V
	return zero, false
}

// Remove brings key to the head and unlinks the head.
func (m *MoveToFrontDictionary[K, V]) Remove(key K) (V, bool) {
	var zero V
	n := m.access(key)
	if n == nil {
		return zero, false
	}
	m.head = n.next
	n.next = nil
	m.size--
	return n.value, true
}

func (m *MoveToFrontDictionary[K, V]) ContainsKey(key K) bool {
	return m.access(key) != nil
}

func (m *MoveToFrontDictionary[K, V]) ContainsValue(value V) bool {
	for current := m.head; current != nil; current = current.next {
		if valuesEqual(current.value, value) {
			return true
		}
	}
	return false
}

func (m *MoveToFrontDictionary[K, V]) Size() int {
	return m.size
}

func (m *MoveToFrontDictionary[K, V]) Empty() bool {
	return m.size == 0
}

func (m *MoveToFrontDictionary[K, V]) Clear() {
	m.head = nil
	m.size = 0
}

// Walk is used to walk the list from the head. Returning true from fn
// stops the walk.
func (m *MoveToFrontDictionary[K, V]) Walk(fn WalkFn[K, V]) {
	for current := m.head; current != nil; current = current.next {
		if fn(current.key, current.value) {
			return
		}
	}
}

func (m *MoveToFrontDictionary[K, V]) Keys() *deque.Deque[K] {
	keys := deque.New[K](m.size)
	m.Walk(func(k K, _ V) bool {
		keys.AddBack(k)
		return false
	})
	return keys
}

func (m *MoveToFrontDictionary[K, V]) Values() *deque.Deque[V] {
	values := deque.New[V](m.size)
	m.Walk(func(_ K, v V) bool {
		values.AddBack(v)
		return false
	})
	return values
}

func (m *MoveToFrontDictionary[K, V]) Iterator() *Iterator[K] {
	return newIterator(m.Keys())
}

// String renders the keys from the head: [k1, k2].
func (m *MoveToFrontDictionary[K, V]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	first := true
	m.Walk(func(k K, _ V) bool {
		if !first {
			b.WriteString(", ")
		}
		first = false
		fmt.Fprint(&b, k)
		return false
	})
	b.WriteByte(']')
	return b.String()
}
