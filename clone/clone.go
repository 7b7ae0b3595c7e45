// Copyright 2023 Linkall Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package clone has helpers for the deep-copy half of pointee types:
// ready-made copies of the composite shapes that usually back them.
package clone

// Bytes returns a copy of b. The result may have additional unused capacity.
// Bytes(nil) returns nil.
func Bytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	return append([]byte{}, b...)
}

// Slice returns a copy of s, copying elements as values. Slice(nil) returns
// nil.
func Slice[E any](s []E) []E {
	if s == nil {
		return nil
	}
	return append([]E{}, s...)
}

// SliceFunc returns a copy of s with every element passed through fn, for
// element types that need deep copies of their own.
func SliceFunc[E any](s []E, fn func(E) E) []E {
	if s == nil {
		return nil
	}
	out := make([]E, len(s))
	for i, e := range s {
		out[i] = fn(e)
	}
	return out
}

// Map returns a copy of m, copying values as values. Map(nil) returns nil.
func Map[K comparable, V any](m map[K]V) map[K]V {
	if m == nil {
		return nil
	}
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// MapFunc returns a copy of m with every value passed through fn, for value
// types that need deep copies of their own.
func MapFunc[K comparable, V any](m map[K]V, fn func(V) V) map[K]V {
	if m == nil {
		return nil
	}
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = fn(v)
	}
	return out
}
