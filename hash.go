// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package dictionary

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/absolutelightning/go-dictionary/deque"
	"github.com/absolutelightning/go-dictionary/internal/log"
)

// maxLoadFactor of 1 means a rebuild is triggered exactly when size > capacity.
const maxLoadFactor = 1.0

// ChainingHashDictionary is a hash table whose buckets are dictionaries
// built by a Factory. The table grows through a fixed schedule of prime
// capacities whenever the load factor exceeds 1.
type ChainingHashDictionary[K comparable, V any] struct {
	factory Factory[K, V]
	hasher  Hasher[K]
	logger  *zap.Logger

	// remaining capacities, consumed front to back
	primes *deque.Deque[int]
	table  []Dictionary[K, V]
	size   int
}

var _ Dictionary[string, int] = (*ChainingHashDictionary[string, int])(nil)

// HashOption configures a ChainingHashDictionary.
type HashOption[K comparable] func(*hashConfig[K])

type hashConfig[K comparable] struct {
	primes []int
	hasher Hasher[K]
	logger *zap.Logger
}

// WithPrimes replaces the capacity schedule. The first entry is the
// initial capacity.
func WithPrimes[K comparable](primes ...int) HashOption[K] {
	return func(c *hashConfig[K]) {
		c.primes = primes
	}
}

// WithHasher replaces the key hash function.
func WithHasher[K comparable](hasher Hasher[K]) HashOption[K] {
	return func(c *hashConfig[K]) {
		c.hasher = hasher
	}
}

// WithLogger sets the logger used to report table rebuilds.
func WithLogger[K comparable](logger *zap.Logger) HashOption[K] {
	return func(c *hashConfig[K]) {
		c.logger = logger
	}
}

// NewChainingHashDictionary builds a table at the first capacity of the
// schedule, calling factory once per slot.
func NewChainingHashDictionary[K comparable, V any](factory Factory[K, V], opts ...HashOption[K]) (*ChainingHashDictionary[K, V], error) {
	if factory == nil {
		return nil, fmt.Errorf("%w: nil bucket factory", ErrInvalidConfig)
	}
	cfg := &hashConfig[K]{
		primes: DefaultPrimes,
		hasher: DefaultHasher[K],
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if err := CheckSchedule(cfg.primes); err != nil {
		return nil, err
	}
	if cfg.hasher == nil {
		return nil, fmt.Errorf("%w: nil hasher", ErrInvalidConfig)
	}
	if cfg.logger == nil {
		cfg.logger = log.Logger()
	}

	h := &ChainingHashDictionary[K, V]{
		factory: factory,
		hasher:  cfg.hasher,
		logger:  cfg.logger.Named("hash"),
		primes:  deque.Of(cfg.primes...),
	}
	capacity, _ := h.primes.RemoveFront()
	table, err := h.newTable(capacity)
	if err != nil {
		return nil, err
	}
	h.table = table
	return h, nil
}

func (h *ChainingHashDictionary[K, V]) newTable(capacity int) ([]Dictionary[K, V], error) {
	table := make([]Dictionary[K, V], capacity)
	for i := range table {
		bucket := h.factory()
		if bucket == nil {
			return nil, fmt.Errorf("%w: bucket factory returned nil", ErrInvalidConfig)
		}
		table[i] = bucket
	}
	return table, nil
}

func (h *ChainingHashDictionary[K, V]) bucket(key K) Dictionary[K, V] {
	return h.table[bucketIndex(h.hasher(key), len(h.table))]
}

func (h *ChainingHashDictionary[K, V]) Get(key K) (V, bool) {
	return h.bucket(key).Get(key)
}

func (h *ChainingHashDictionary[K, V]) Put(key K, value V) (V, bool) {
	old, found := h.bucket(key).Put(key, value)
	if !found {
		h.size++
		h.rehash()
	}
	return old, found
}

func (h *ChainingHashDictionary[K, V]) loadFactor() float64 {
	return float64(h.size) / float64(len(h.table))
}

// rehash moves every entry into a table at the next capacity once the
// load factor is exceeded. Entries are replayed through Put; the new
// capacity is past the trigger so the replay cannot rehash again.
func (h *ChainingHashDictionary[K, V]) rehash() {
	if h.loadFactor() <= maxLoadFactor {
		return
	}
	capacity, ok := h.primes.RemoveFront()
	if !ok {
		panic(fmt.Errorf("%w: cannot grow past %d buckets holding %d entries",
			ErrScheduleExhausted, len(h.table), h.size))
	}
	table, err := h.newTable(capacity)
	if err != nil {
		panic(err)
	}
	if ce := h.logger.Check(zap.DebugLevel, "rebuilding hash table"); ce != nil {
		ce.Write(zap.Int("oldCapacity", len(h.table)),
			zap.Int("newCapacity", capacity),
			zap.Int("entries", h.size))
	}

	old := h.table
	h.table = table
	h.size = 0
	for _, bucket := range old {
		if bucket.Empty() {
			continue
		}
		keys := bucket.Keys()
		values := bucket.Values()
		keys.Each(func(i int, k K) {
			v, _ := values.At(i)
			h.Put(k, v)
		})
	}
}

func (h *ChainingHashDictionary[K, V]) Remove(key K) (V, bool) {
	old, found := h.bucket(key).Remove(key)
	if found {
		h.size--
	}
	return old, found
}

func (h *ChainingHashDictionary[K, V]) ContainsKey(key K) bool {
	return h.bucket(key).ContainsKey(key)
}

func (h *ChainingHashDictionary[K, V]) ContainsValue(value V) bool {
	for _, bucket := range h.table {
		if bucket.ContainsValue(value) {
			return true
		}
	}
	return false
}

func (h *ChainingHashDictionary[K, V]) Size() int {
	return h.size
}

func (h *ChainingHashDictionary[K, V]) Empty() bool {
	return h.size == 0
}

// Capacity returns the number of buckets.
func (h *ChainingHashDictionary[K, V]) Capacity() int {
	return len(h.table)
}

// Clear empties every bucket. The capacity and the position in the
// schedule are kept.
func (h *ChainingHashDictionary[K, V]) Clear() {
	for _, bucket := range h.table {
		bucket.Clear()
	}
	h.size = 0
}

func (h *ChainingHashDictionary[K, V]) Keys() *deque.Deque[K] {
	keys := deque.New[K](h.size)
	for _, bucket := range h.table {
		if !bucket.Empty() {
			keys.AddAll(bucket.Keys())
		}
	}
	return keys
}

func (h *ChainingHashDictionary[K, V]) Values() *deque.Deque[V] {
	values := deque.New[V](h.size)
	for _, bucket := range h.table {
		if !bucket.Empty() {
			values.AddAll(bucket.Values())
		}
	}
	return values
}

func (h *ChainingHashDictionary[K, V]) Iterator() *Iterator[K] {
	return newIterator(h.Keys())
}

// String renders the entries bucket by bucket: {k: v, k: v}.
func (h *ChainingHashDictionary[K, V]) String() string {
	var b strings.Builder
	b.WriteByte('{')
	first := true
	for _, bucket := range h.table {
		if bucket.Empty() {
			continue
		}
		keys := bucket.Keys()
		values := bucket.Values()
		keys.Each(func(i int, k K) {
			if !first {
				b.WriteString(", ")
			}
			first = false
			v, _ := values.At(i)
			fmt.Fprintf(&b, "%v: %v", k, v)
		})
	}
	b.WriteByte('}')
	return b.String()
}
