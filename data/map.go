/*
Copyright 2026 Dima Krasner

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package data contains small generic containers.
package data

import "iter"

type indexed[TV any] struct {
	value TV
	index int
}

// OrderedMap is a map that remembers the order in which keys were first stored.
type OrderedMap[TK comparable, TV any] map[TK]indexed[TV]

// Store adds a key/value pair unless the key is present already, and reports whether it was added.
func (m OrderedMap[TK, TV]) Store(key TK, value TV) bool {
	if _, dup := m[key]; dup {
		return false
	}

	m[key] = indexed[TV]{value, len(m)}
	return true
}

// Keys returns the keys in insertion order.
func (m OrderedMap[TK, TV]) Keys() []TK {
	l := make([]TK, len(m))

	for k, v := range m {
		l[v.index] = k
	}

	return l
}

// All iterates over key/value pairs in insertion order.
func (m OrderedMap[TK, TV]) All() iter.Seq2[TK, TV] {
	return func(yield func(TK, TV) bool) {
		for _, k := range m.Keys() {
			if !yield(k, m[k].value) {
				return
			}
		}
	}
}

// Dedup returns the distinct non-zero elements of l, in order of first appearance, or nil.
func Dedup[T comparable](l []T) []T {
	var zero T
	seen := OrderedMap[T, struct{}]{}
	for _, v := range l {
		if v != zero {
			seen.Store(v, struct{}{})
		}
	}

	if len(seen) == 0 {
		return nil
	}

	return seen.Keys()
}
