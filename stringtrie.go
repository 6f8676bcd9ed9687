// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package dictionary

import (
	"fmt"
	"unicode/utf8"

	"github.com/absolutelightning/go-dictionary/deque"
)

// StringTrie is a byte trie keyed by strings. Keys are split into bytes so
// strings that are not valid UTF-8 stay distinct.
type StringTrie[V any] struct {
	trie *PrefixTrieDictionary[byte, V]
}

var _ Dictionary[string, int] = (*StringTrie[int])(nil)

func NewStringTrie[V any]() *StringTrie[V] {
	return &StringTrie[V]{trie: NewPrefixTrieDictionary[byte, V]()}
}

func (s *StringTrie[V]) IsPrefix(prefix string) bool {
	return s.trie.IsPrefix([]byte(prefix))
}

func (s *StringTrie[V]) GetCompletions(prefix string) *deque.Deque[V] {
	return s.trie.GetCompletions([]byte(prefix))
}

func (s *StringTrie[V]) LongestPrefix(k string) (string, V, bool) {
	prefix, v, ok := s.trie.LongestPrefix([]byte(k))
	return string(prefix), v, ok
}

func (s *StringTrie[V]) Get(key string) (V, bool) {
	return s.trie.Get([]byte(key))
}

func (s *StringTrie[V]) Put(key string, value V) (V, bool) {
	return s.trie.Put([]byte(key), value)
}

func (s *StringTrie[V]) Remove(key string) (V, bool) {
	return s.trie.Remove([]byte(key))
}

func (s *StringTrie[V]) ContainsKey(key string) bool {
	return s.trie.ContainsKey([]byte(key))
}

func (s *StringTrie[V]) ContainsValue(value V) bool {
	return s.trie.ContainsValue(value)
}

func (s *StringTrie[V]) Size() int {
	return s.trie.Size()
}

func (s *StringTrie[V]) Empty() bool {
	return s.trie.Empty()
}

func (s *StringTrie[V]) Clear() {
	s.trie.Clear()
}

func (s *StringTrie[V]) Keys() *deque.Deque[string] {
	keys := deque.New[string](s.trie.Size())
	s.trie.Walk(func(k []byte, _ V) bool {
		keys.AddBack(string(k))
		return false
	})
	return keys
}

func (s *StringTrie[V]) Values() *deque.Deque[V] {
	return s.trie.Values()
}

func (s *StringTrie[V]) Iterator() *Iterator[string] {
	return newIterator(s.Keys())
}

func (s *StringTrie[V]) String() string {
	return s.trie.render(formatByteEdge)
}

// formatByteEdge prints ASCII edges as characters and any other byte as a
// hex escape.
func formatByteEdge(c byte) string {
	if c < utf8.RuneSelf {
		return string(rune(c))
	}
	return fmt.Sprintf("\\x%02x", c)
}
