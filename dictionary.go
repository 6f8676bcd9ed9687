// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

// Package dictionary provides interchangeable in-memory key/value
// dictionaries: a binary search tree, a chaining hash table whose buckets
// are themselves dictionaries, a move-to-front list and a prefix trie.
//
// None of the implementations are safe for concurrent mutation.
package dictionary

import (
	"errors"

	"github.com/absolutelightning/go-dictionary/deque"
)

var (
	// ErrInvalidConfig is returned for malformed constructor arguments.
	ErrInvalidConfig = errors.New("invalid dictionary configuration")

	// ErrScheduleExhausted is raised when a hash dictionary has to grow past
	// the last capacity of its prime schedule.
	ErrScheduleExhausted = errors.New("capacity schedule exhausted")
)

// Dictionary is the operation set every implementation satisfies.
// Lookups of absent keys report false rather than failing.
type Dictionary[K, V any] interface {
	// Get returns the value stored for key.
	Get(key K) (V, bool)
	// Put stores value under key and returns the value it replaced.
	Put(key K, value V) (V, bool)
	// Remove deletes key and returns the value it held.
	Remove(key K) (V, bool)
	ContainsKey(key K) bool
	ContainsValue(value V) bool
	Size() int
	Empty() bool
	Clear()
	Keys() *deque.Deque[K]
	Values() *deque.Deque[V]
	// Iterator walks a snapshot of Keys.
	Iterator() *Iterator[K]
	String() string
}

// Factory produces a fresh, empty dictionary. The hash dictionary calls it
// once per table slot to build its buckets.
type Factory[K, V any] func() Dictionary[K, V]

// WalkFn is used when walking a dictionary. Takes a key and value,
// returning if iteration should be terminated.
type WalkFn[K, V any] func(k K, v V) bool
