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

package cow

// Equal reports whether the values behind a and b are structurally equal.
// Identity plays no part: two diverged pointers holding equal values still
// compare equal.
func Equal[T interface {
	Cloner[T]
	Equaler[T]
}](a, b Handle[T]) bool {
	return (*a.Value()).Equal(*b.Value())
}

// EqualValue reports whether the value behind h is structurally equal to v.
func EqualValue[T interface {
	Cloner[T]
	Equaler[T]
}](h Handle[T], v T) bool {
	return (*h.Value()).Equal(v)
}

// Compare orders the value behind a against the one behind b.
func Compare[T interface {
	Cloner[T]
	Comparer[T]
}](a, b Handle[T]) int {
	return (*a.Value()).Compare(*b.Value())
}

// CompareValue orders the value behind h against v.
func CompareValue[T interface {
	Cloner[T]
	Comparer[T]
}](h Handle[T], v T) int {
	return (*h.Value()).Compare(v)
}
