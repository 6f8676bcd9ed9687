// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package dictionary

import (
	"encoding/binary"
	"fmt"
	"reflect"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/exp/constraints"

	"github.com/absolutelightning/go-dictionary/deque"
)

// DefaultPrimes is the capacity schedule of the hash dictionary. Each prime
// is roughly double the previous one.
var DefaultPrimes = []int{5, 11, 23, 47, 97, 193, 389, 773,
	1549, 3089, 6173, 12347, 24697, 49393, 98779, 197551, 395107, 400009}

// Hasher computes the hash used to pick a bucket.
type Hasher[K any] func(key K) uint64

// DefaultHasher hashes integer and string keys with xxhash. Pointer,
// channel and unsafe pointer keys compare by identity, so their address is
// hashed. Other comparable types fall back to hashing their Go-syntax
// representation.
func DefaultHasher[K comparable](key K) uint64 {
	switch x := any(key).(type) {
	case string:
		return xxhash.Sum64String(x)
	case int:
		return hashUint64(uint64(x))
	case int8:
		return hashUint64(uint64(x))
	case int16:
		return hashUint64(uint64(x))
	case int32:
		return hashUint64(uint64(x))
	case int64:
		return hashUint64(uint64(x))
	case uint:
		return hashUint64(uint64(x))
	case uint8:
		return hashUint64(uint64(x))
	case uint16:
		return hashUint64(uint64(x))
	case uint32:
		return hashUint64(uint64(x))
	case uint64:
		return hashUint64(x)
	case uintptr:
		return hashUint64(uint64(x))
	}
	switch v := reflect.ValueOf(any(key)); v.Kind() {
	case reflect.Pointer, reflect.Chan, reflect.UnsafePointer:
		return hashUint64(uint64(v.Pointer()))
	}
	return xxhash.Sum64String(fmt.Sprintf("%#v", key))
}

func hashUint64(value uint64) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], value)
	return xxhash.Sum64(buf[:])
}

// bucketIndex maps a hash onto [0, capacity).
func bucketIndex(hash uint64, capacity int) int {
	return int(hash % uint64(capacity))
}

func compareOrdered[K constraints.Ordered](a, b K) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func valuesEqual[V any](a, b V) bool {
	return reflect.DeepEqual(a, b)
}

func containsValue[V any](values *deque.Deque[V], value V) bool {
	return values.Any(func(_ int, v V) bool {
		return valuesEqual(v, value)
	})
}

// CheckSchedule validates a capacity schedule: non-empty, positive and
// strictly ascending.
func CheckSchedule(primes []int) error {
	if len(primes) == 0 {
		return fmt.Errorf("%w: empty capacity schedule", ErrInvalidConfig)
	}
	for i, p := range primes {
		if p <= 0 {
			return fmt.Errorf("%w: capacity %d at position %d is not positive", ErrInvalidConfig, p, i)
		}
		if i > 0 && p <= primes[i-1] {
			return fmt.Errorf("%w: capacity %d at position %d does not grow", ErrInvalidConfig, p, i)
		}
	}
	return nil
}
