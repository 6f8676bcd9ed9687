// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

// Package deque provides the sequence container the dictionaries use to
// export keys and values: a growable ring buffer with O(1) amortized
// operations at both ends.
package deque

import (
	"encoding/json"
	"fmt"
	"strings"
)

const (
	defaultCapacity = 10
	growthFactor    = 2
)

// Deque is a double-ended queue backed by a ring buffer. The zero value is
// ready to use.
type Deque[T any] struct {
	data []T
	head int
	size int
}

// New returns an empty deque with room for capacity elements before it has
// to grow. A non-positive capacity selects the default.
func New[T any](capacity int) *Deque[T] {
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	return &Deque[T]{data: make([]T, capacity)}
}

// Of returns a deque holding values in order.
func Of[T any](values ...T) *Deque[T] {
	d := New[T](len(values))
	for _, v := range values {
		d.AddBack(v)
	}
	return d
}

func (d *Deque[T]) index(i int) int {
	return (d.head + i) % len(d.data)
}

func (d *Deque[T]) grow() {
	if d.size < len(d.data) {
		return
	}
	capacity := len(d.data) * growthFactor
	if capacity == 0 {
		capacity = defaultCapacity
	}
	data := make([]T, capacity)
	for i := 0; i < d.size; i++ {
		data[i] = d.data[d.index(i)]
	}
	d.data = data
	d.head = 0
}

// AddFront inserts v before the first element.
func (d *Deque[T]) AddFront(v T) {
	d.grow()
	d.head = (d.head - 1 + len(d.data)) % len(d.data)
	d.data[d.head] = v
	d.size++
}

// AddBack appends v after the last element.
func (d *Deque[T]) AddBack(v T) {
	d.grow()
	d.data[d.index(d.size)] = v
	d.size++
}

// AddAll appends every element of other, front to back.
func (d *Deque[T]) AddAll(other *Deque[T]) {
	if other == nil {
		return
	}
	other.Each(func(_ int, v T) {
		d.AddBack(v)
	})
}

// RemoveFront removes and returns the first element.
func (d *Deque[T]) RemoveFront() (T, bool) {
	var zero T
	if d.size == 0 {
		return zero, false
	}
	v := d.data[d.head]
	d.data[d.head] = zero
	d.head = (d.head + 1) % len(d.data)
	d.size--
	return v, true
}

// RemoveBack removes and returns the last element.
func (d *Deque[T]) RemoveBack() (T, bool) {
	var zero T
	if d.size == 0 {
		return zero, false
	}
	i := d.index(d.size - 1)
	v := d.data[i]
	d.data[i] = zero
	d.size--
	return v, true
}

// PeekFront returns the first element without removing it.
func (d *Deque[T]) PeekFront() (T, bool) {
	var zero T
	if d.size == 0 {
		return zero, false
	}
	return d.data[d.head], true
}

// PeekBack returns the last element without removing it.
func (d *Deque[T]) PeekBack() (T, bool) {
	var zero T
	if d.size == 0 {
		return zero, false
	}
	return d.data[d.index(d.size-1)], true
}

// At returns the element at position i counted from the front.
func (d *Deque[T]) At(i int) (T, bool) {
	var zero T
	if i < 0 || i >= d.size {
		return zero, false
	}
	return d.data[d.index(i)], true
}

// Size returns the number of elements.
func (d *Deque[T]) Size() int {
	return d.size
}

// Empty reports whether the deque holds no elements.
func (d *Deque[T]) Empty() bool {
	return d.size == 0
}

// Clear drops every element but keeps the allocated buffer.
func (d *Deque[T]) Clear() {
	var zero T
	for i := 0; i < d.size; i++ {
		d.data[d.index(i)] = zero
	}
	d.head = 0
	d.size = 0
}

// Values returns a copy of the elements, front to back.
func (d *Deque[T]) Values() []T {
	values := make([]T, d.size)
	for i := 0; i < d.size; i++ {
		values[i] = d.data[d.index(i)]
	}
	return values
}

// Each calls fn for every element in insertion order.
func (d *Deque[T]) Each(fn func(index int, value T)) {
	for i := 0; i < d.size; i++ {
		fn(i, d.data[d.index(i)])
	}
}

// Any returns true as soon as fn returns true for an element.
func (d *Deque[T]) Any(fn func(index int, value T) bool) bool {
	for i := 0; i < d.size; i++ {
		if fn(i, d.data[d.index(i)]) {
			return true
		}
	}
	return false
}

// String renders the elements as [a, b, c].
func (d *Deque[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i := 0; i < d.size; i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprint(&b, d.data[d.index(i)])
	}
	b.WriteByte(']')
	return b.String()
}

// ToJSON outputs the JSON representation of the elements, front to back.
func (d *Deque[T]) ToJSON() ([]byte, error) {
	return json.Marshal(d.Values())
}

// MarshalJSON @implements json.Marshaler
func (d *Deque[T]) MarshalJSON() ([]byte, error) {
	return d.ToJSON()
}
