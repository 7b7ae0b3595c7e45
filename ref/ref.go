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

// Package ref implements strong and weak reference counting over shared
// value cells, in a thread-safe flavor (Ref, Weak) and an unsynchronized
// single-goroutine flavor (LocalRef, LocalWeak) with the same contract.
package ref

// Ref is a strong, thread-safe handle to a shared value: it keeps the value
// alive and shares it with every handle cloned from it. Handles sharing a
// value may be used from different goroutines; a single Ref may not.
type Ref[T any] struct {
	noCopy noCopy

	h handle[T, atomicCounts, *atomicCounts]
}

// New creates a value cell owned by the returned handle alone.
func New[T any](v T) *Ref[T] {
	return &Ref[T]{h: newHandle[T, atomicCounts, *atomicCounts](v)}
}

// Clone returns another strong handle to the same value.
func (r *Ref[T]) Clone() *Ref[T] {
	return &Ref[T]{h: r.h.clone()}
}

// Get returns the shared value. The pointer stays valid until r is released
// or consumed.
func (r *Ref[T]) Get() *T {
	return r.h.get()
}

// Release drops r's strong reference, destroying the value if it was the
// last one. r is dead afterwards: any further use panics.
func (r *Ref[T]) Release() {
	r.h.release()
}

// TryUnwrap moves the value out if r holds the sole strong reference,
// consuming r; outstanding weak handles can then never upgrade again. On
// failure r is unchanged and stays usable.
func (r *Ref[T]) TryUnwrap() (T, bool) {
	return r.h.tryUnwrap()
}

// MakeUnique ensures r holds the sole strong reference to its value: when
// the value is shared, r is rebound to a fresh cell seeded with clone of the
// value, and the shared cell keeps its weak observers.
func (r *Ref[T]) MakeUnique(clone func(T) T) {
	r.h.makeUnique(clone)
}

// TakeOrClone moves the value out if r holds the sole strong reference, or
// returns clone of the value otherwise. r is consumed either way.
func (r *Ref[T]) TakeOrClone(clone func(T) T) T {
	return r.h.takeOrClone(clone)
}

// Downgrade returns a weak handle observing the value.
func (r *Ref[T]) Downgrade() *Weak[T] {
	return &Weak[T]{h: r.h.downgrade()}
}

// StrongCount returns the number of strong handles sharing the value.
func (r *Ref[T]) StrongCount() int32 {
	return r.h.strongCount()
}

// WeakCount returns the number of weak handles observing the value.
func (r *Ref[T]) WeakCount() int32 {
	return r.h.weakCount()
}

// Weak is a weak, thread-safe handle: it observes a value without keeping it
// alive, and must be upgraded before the value can be read.
type Weak[T any] struct {
	noCopy noCopy

	h weakHandle[T, atomicCounts, *atomicCounts]
}

// Upgrade returns a strong handle to the observed value, or false if the
// value has already been destroyed.
func (w *Weak[T]) Upgrade() (*Ref[T], bool) {
	h, ok := w.h.upgrade()
	if !ok {
		return nil, false
	}
	return &Ref[T]{h: h}, true
}

// Clone returns another weak handle observing the same value.
func (w *Weak[T]) Clone() *Weak[T] {
	return &Weak[T]{h: w.h.clone()}
}

// Release drops w's weak reference. w is dead afterwards: any further use
// panics.
func (w *Weak[T]) Release() {
	w.h.release()
}
