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

import (
	// standard libraries.
	"fmt"

	// this project.
	"github.com/linkall-labs/cow/ref"
)

// Ptr is a copy-on-write pointer backed by thread-safe reference counts.
// Pointers sharing a value may be used from different goroutines; a single
// Ptr may not. Synchronizing access to the value itself stays the caller's
// concern, as with any Go value.
type Ptr[T Cloner[T]] struct {
	noCopy noCopy

	r *ref.Ref[T]
}

// New creates a pointer owning v.
func New[T Cloner[T]](v T) *Ptr[T] {
	return &Ptr[T]{r: ref.New(v)}
}

// Wrap adopts a live raw handle without touching its counts. The returned
// pointer owns the handle: the caller must not release it.
func Wrap[T Cloner[T]](r *ref.Ref[T]) *Ptr[T] {
	if r == nil {
		panic("cow: wrap of nil handle")
	}
	return &Ptr[T]{r: r}
}

func (p *Ptr[T]) live() *ref.Ref[T] {
	if p.r == nil {
		panic("cow: use of released pointer")
	}
	return p.r
}

// Clone returns another pointer sharing the value.
func (p *Ptr[T]) Clone() *Ptr[T] {
	return &Ptr[T]{r: p.live().Clone()}
}

// CloneUnique returns a pointer owning a private deep copy of the value,
// whether or not the value is shared.
func (p *Ptr[T]) CloneUnique() *Ptr[T] {
	return &Ptr[T]{r: ref.New((*p.live().Get()).Clone())}
}

// Value returns a view of the shared value for reading. It never copies.
// Interior mutation the pointee itself permits through a shared view stays
// visible to every pointer sharing the value and never causes divergence.
func (p *Ptr[T]) Value() *T {
	return p.live().Get()
}

// Mutable returns a view of the value for writing. A shared value is first
// cloned into a cell owned by this pointer alone, so the writes stay
// invisible to the other pointers. A sole-owned value is handed out in
// place, and its weak observers keep observing it. This is the only
// operation that makes aliased pointers diverge.
func (p *Ptr[T]) Mutable() *T {
	r := p.live()
	r.MakeUnique(cloneValue[T])
	return r.Get()
}

// TryTake moves the value out if this pointer is the sole strong owner,
// consuming the pointer; weak observers can then never upgrade again. On
// failure the pointer is unchanged and stays usable.
func (p *Ptr[T]) TryTake() (T, bool) {
	v, ok := p.live().TryUnwrap()
	if ok {
		p.r = nil
	}
	return v, ok
}

// Take moves the value out if this pointer is the sole strong owner, or
// returns a deep copy otherwise. The pointer is consumed either way.
func (p *Ptr[T]) Take() T {
	v := p.live().TakeOrClone(cloneValue[T])
	p.r = nil
	return v
}

// Raw returns the underlying raw handle without touching its counts. The
// handle stays owned by p: the caller must not release it, and it dies with
// p.
func (p *Ptr[T]) Raw() *ref.Ref[T] {
	return p.live()
}

// Downgrade returns a weak handle observing the value.
func (p *Ptr[T]) Downgrade() *ref.Weak[T] {
	return p.live().Downgrade()
}

// Release drops this pointer's strong reference, destroying the value if it
// was the last one. p is dead afterwards: any further use panics.
func (p *Ptr[T]) Release() {
	p.live().Release()
	p.r = nil
}

// StrongCount returns the number of strong handles sharing the value.
func (p *Ptr[T]) StrongCount() int32 {
	return p.live().StrongCount()
}

// WeakCount returns the number of weak handles observing the value.
func (p *Ptr[T]) WeakCount() int32 {
	return p.live().WeakCount()
}

// String renders the shared value, through its fmt.Stringer when it has one.
func (p *Ptr[T]) String() string {
	return fmt.Sprint(*p.live().Get())
}
