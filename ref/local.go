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

package ref

// LocalRef is the unsynchronized counterpart of Ref: same contract, plain
// counters. Neither it nor any handle sharing its value may leave the
// goroutine the value lives on.
type LocalRef[T any] struct {
	noCopy noCopy

	h handle[T, plainCounts, *plainCounts]
}

// NewLocal creates a value cell owned by the returned handle alone.
func NewLocal[T any](v T) *LocalRef[T] {
	return &LocalRef[T]{h: newHandle[T, plainCounts, *plainCounts](v)}
}

// Clone returns another strong handle to the same value.
func (r *LocalRef[T]) Clone() *LocalRef[T] {
	return &LocalRef[T]{h: r.h.clone()}
}

// Get returns the shared value. The pointer stays valid until r is released
// or consumed.
func (r *LocalRef[T]) Get() *T {
	return r.h.get()
}

// Release drops r's strong reference, destroying the value if it was the
// last one. r is dead afterwards: any further use panics.
func (r *LocalRef[T]) Release() {
	r.h.release()
}

// TryUnwrap moves the value out if r holds the sole strong reference,
// consuming r; outstanding weak handles can then never upgrade again. On
// failure r is unchanged and stays usable.
func (r *LocalRef[T]) TryUnwrap() (T, bool) {
	return r.h.tryUnwrap()
}

// MakeUnique ensures r holds the sole strong reference to its value: when
// the value is shared, r is rebound to a fresh cell seeded with clone of the
// value, and the shared cell keeps its weak observers.
func (r *LocalRef[T]) MakeUnique(clone func(T) T) {
	r.h.makeUnique(clone)
}

// TakeOrClone moves the value out if r holds the sole strong reference, or
// returns clone of the value otherwise. r is consumed either way.
func (r *LocalRef[T]) TakeOrClone(clone func(T) T) T {
	return r.h.takeOrClone(clone)
}

// Downgrade returns a weak handle observing the value.
func (r *LocalRef[T]) Downgrade() *LocalWeak[T] {
	return &LocalWeak[T]{h: r.h.downgrade()}
}

// StrongCount returns the number of strong handles sharing the value.
func (r *LocalRef[T]) StrongCount() int32 {
	return r.h.strongCount()
}

// WeakCount returns the number of weak handles observing the value.
func (r *LocalRef[T]) WeakCount() int32 {
	return r.h.weakCount()
}

// LocalWeak is the unsynchronized counterpart of Weak, confined to one
// goroutine like LocalRef.
type LocalWeak[T any] struct {
	noCopy noCopy

	h weakHandle[T, plainCounts, *plainCounts]
}

// Upgrade returns a strong handle to the observed value, or false if the
// value has already been destroyed.
func (w *LocalWeak[T]) Upgrade() (*LocalRef[T], bool) {
	h, ok := w.h.upgrade()
	if !ok {
		return nil, false
	}
	return &LocalRef[T]{h: h}, true
}

// Clone returns another weak handle observing the same value.
func (w *LocalWeak[T]) Clone() *LocalWeak[T] {
	return &LocalWeak[T]{h: w.h.clone()}
}

// Release drops w's weak reference. w is dead afterwards: any further use
// panics.
func (w *LocalWeak[T]) Release() {
	w.h.release()
}
