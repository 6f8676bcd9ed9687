// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package dictionary

import (
	"sort"
	"testing"
	"testing/quick"

	"github.com/google/go-cmp/cmp"
	"github.com/hashicorp/go-uuid"
	"github.com/stretchr/testify/require"
)

type dictionaryCase struct {
	name string
	new  func(t *testing.T) Dictionary[string, int]
	// the trie does not support Remove
	removes bool
}

func dictionaryCases() []dictionaryCase {
	return []dictionaryCase{
		{
			name:    "tree",
			new:     func(*testing.T) Dictionary[string, int] { return NewTreeDictionary[string, int]() },
			removes: true,
		},
		{
			name: "hash",
			new: func(t *testing.T) Dictionary[string, int] {
				h, err := NewChainingHashDictionary[string, int](MoveToFrontFactory[string, int])
				require.NoError(t, err)
				return h
			},
			removes: true,
		},
		{
			name: "hash-of-trees",
			new: func(t *testing.T) Dictionary[string, int] {
				h, err := NewChainingHashDictionary[string, int](func() Dictionary[string, int] {
					return NewTreeDictionary[string, int]()
				})
				require.NoError(t, err)
				return h
			},
			removes: true,
		},
		{
			name:    "mtf",
			new:     func(*testing.T) Dictionary[string, int] { return NewMoveToFrontDictionary[string, int]() },
			removes: true,
		},
		{
			name: "trie",
			new:  func(*testing.T) Dictionary[string, int] { return NewStringTrie[int]() },
		},
	}
}

func sortedKeys(d Dictionary[string, int]) []string {
	keys := d.Keys().Values()
	sort.Strings(keys)
	return keys
}

func TestDictionary_PutGet(t *testing.T) {
	for _, tc := range dictionaryCases() {
		t.Run(tc.name, func(t *testing.T) {
			d := tc.new(t)
			require.True(t, d.Empty())

			_, ok := d.Get("missing")
			require.False(t, ok)

			old, existed := d.Put("a", 1)
			require.False(t, existed)
			require.Equal(t, 0, old)
			require.Equal(t, 1, d.Size())

			v, ok := d.Get("a")
			require.True(t, ok)
			require.Equal(t, 1, v)

			old, existed = d.Put("a", 2)
			require.True(t, existed)
			require.Equal(t, 1, old)
			require.Equal(t, 1, d.Size())

			v, ok = d.Get("a")
			require.True(t, ok)
			require.Equal(t, 2, v)

			require.True(t, d.ContainsKey("a"))
			require.False(t, d.ContainsKey("b"))
			require.True(t, d.ContainsValue(2))
			require.False(t, d.ContainsValue(1))
		})
	}
}

func TestDictionary_Remove(t *testing.T) {
	for _, tc := range dictionaryCases() {
		if !tc.removes {
			continue
		}
		t.Run(tc.name, func(t *testing.T) {
			d := tc.new(t)
			for i, k := range []string{"m", "s", "x", "i", "a", "p", "u", "y", "t"} {
				d.Put(k, i+1)
			}

			v, ok := d.Remove("s")
			require.True(t, ok)
			require.Equal(t, 2, v)
			require.Equal(t, 8, d.Size())
			_, ok = d.Get("s")
			require.False(t, ok)

			// removing again is a no-op every time
			for i := 0; i < 3; i++ {
				_, ok = d.Remove("s")
				require.False(t, ok)
				require.Equal(t, 8, d.Size())
			}

			_, ok = d.Remove("absent")
			require.False(t, ok)
			require.Equal(t, 8, d.Size())

			require.Equal(t, []string{"a", "i", "m", "p", "t", "u", "x", "y"}, sortedKeys(d))
		})
	}
}

func TestDictionary_KeysValuesIterator(t *testing.T) {
	for _, tc := range dictionaryCases() {
		t.Run(tc.name, func(t *testing.T) {
			d := tc.new(t)
			want := map[string]int{}
			for i := 0; i < 200; i++ {
				key, err := uuid.GenerateUUID()
				require.NoError(t, err)
				d.Put(key, i)
				want[key] = i
			}
			require.Equal(t, len(want), d.Size())

			keys := d.Keys()
			values := d.Values()
			require.Equal(t, d.Size(), keys.Size())
			require.Equal(t, d.Size(), values.Size())

			// Keys and Values line up entry by entry
			got := map[string]int{}
			keys.Each(func(i int, k string) {
				v, ok := values.At(i)
				require.True(t, ok)
				got[k] = v
			})
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("entries mismatch (-want +got):\n%s", diff)
			}

			it := d.Iterator()
			var iterated []string
			for it.HasNext() {
				k, ok := it.Next()
				require.True(t, ok)
				iterated = append(iterated, k)
			}
			_, ok := it.Next()
			require.False(t, ok)
			require.Len(t, iterated, d.Size())
		})
	}
}

func TestDictionary_Clear(t *testing.T) {
	for _, tc := range dictionaryCases() {
		t.Run(tc.name, func(t *testing.T) {
			d := tc.new(t)
			for i, k := range []string{"x", "y", "z"} {
				d.Put(k, i)
			}
			d.Clear()
			require.True(t, d.Empty())
			require.Equal(t, 0, d.Keys().Size())
			_, ok := d.Get("x")
			require.False(t, ok)

			d.Put("x", 7)
			require.Equal(t, 1, d.Size())
		})
	}
}

func TestDictionary_MatchesMap(t *testing.T) {
	for _, tc := range dictionaryCases() {
		t.Run(tc.name, func(t *testing.T) {
			// Every step is applied to the dictionary and to a Go map; sizes and
			// lookups must agree throughout.
			check := func(keys []string, values []int, removals []uint8) bool {
				d := tc.new(t)
				model := map[string]int{}
				for i, k := range keys {
					v := 0
					if i < len(values) {
						v = values[i]
					}
					old, existed := d.Put(k, v)
					want, had := model[k]
					if existed != had || (had && old != want) {
						return false
					}
					model[k] = v
				}
				if tc.removes {
					for _, r := range removals {
						if len(keys) == 0 {
							break
						}
						k := keys[int(r)%len(keys)]
						v, ok := d.Remove(k)
						want, had := model[k]
						if ok != had || (had && v != want) {
							return false
						}
						delete(model, k)
					}
				}
				if d.Size() != len(model) {
					return false
				}
				for k, want := range model {
					got, ok := d.Get(k)
					if !ok || got != want {
						return false
					}
				}
				return true
			}
			if err := quick.Check(check, nil); err != nil {
				t.Error(err)
			}
		})
	}
}
