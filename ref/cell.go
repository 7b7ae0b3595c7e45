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

// cell is the shared heap node behind a group of handles: the value plus the
// counts tracking how many strong and weak handles alias it. The counting
// policy is fixed by the PC type parameter, so both policies go through one
// implementation of every transition.
type cell[T any, C any, PC counterPtr[C]] struct {
	value  T
	counts C
}

// newCell makes a cell holding v with one strong reference and no weak ones.
func newCell[T any, C any, PC counterPtr[C]](v T) *cell[T, C, PC] {
	c := &cell[T, C, PC]{value: v}
	PC(&c.counts).incStrong()
	return c
}

func (c *cell[T, C, PC]) ctr() PC {
	return PC(&c.counts)
}

// acquire adds a strong reference.
func (c *cell[T, C, PC]) acquire() {
	if c.ctr().incStrong() <= 1 {
		panic("ref: acquire of a dead cell")
	}
}

// release drops a strong reference. Dropping the last one destroys the
// value; outstanding weak handles are then permanently unable to upgrade.
func (c *cell[T, C, PC]) release() {
	n := c.ctr().decStrong()
	if n < 0 {
		panic("ref: strong count underflow")
	}
	if n == 0 {
		var zero T
		c.value = zero
	}
}

// tryTake moves the value out if there is exactly one strong reference.
func (c *cell[T, C, PC]) tryTake() (T, bool) {
	var zero T
	if !c.ctr().takeStrong() {
		return zero, false
	}
	v := c.value
	c.value = zero
	return v, true
}

// upgrade adds a strong reference if the value is still alive.
func (c *cell[T, C, PC]) upgrade() bool {
	return c.ctr().upgradeStrong()
}

// observe adds a weak reference.
func (c *cell[T, C, PC]) observe() {
	c.ctr().incWeak()
}

// unobserve drops a weak reference.
func (c *cell[T, C, PC]) unobserve() {
	if c.ctr().decWeak() < 0 {
		panic("ref: weak count underflow")
	}
}

// handle is the strong-handle core shared by Ref and LocalRef. A nil cell
// marks a handle that was released or consumed.
type handle[T any, C any, PC counterPtr[C]] struct {
	cell *cell[T, C, PC]
}

func newHandle[T any, C any, PC counterPtr[C]](v T) handle[T, C, PC] {
	return handle[T, C, PC]{cell: newCell[T, C, PC](v)}
}

func (h *handle[T, C, PC]) live() *cell[T, C, PC] {
	if h.cell == nil {
		panic("ref: use of released handle")
	}
	return h.cell
}

func (h *handle[T, C, PC]) get() *T {
	return &h.live().value
}

func (h *handle[T, C, PC]) clone() handle[T, C, PC] {
	c := h.live()
	c.acquire()
	return handle[T, C, PC]{cell: c}
}

func (h *handle[T, C, PC]) release() {
	h.live().release()
	h.cell = nil
}

func (h *handle[T, C, PC]) tryUnwrap() (T, bool) {
	v, ok := h.live().tryTake()
	if ok {
		h.cell = nil
	}
	return v, ok
}

// makeUnique rebinds h to a cell it owns alone: a no-op when h already holds
// the sole strong reference, otherwise a fresh cell seeded with clone of the
// value. Weak handles stay on the old cell.
func (h *handle[T, C, PC]) makeUnique(clone func(T) T) {
	c := h.live()
	if c.ctr().strongCount() == 1 {
		return
	}
	// Clone before releasing: the release may be the last one.
	fresh := newCell[T, C, PC](clone(c.value))
	c.release()
	h.cell = fresh
}

// takeOrClone moves the value out when h holds the sole strong reference,
// falling back to clone otherwise. h is consumed either way.
func (h *handle[T, C, PC]) takeOrClone(clone func(T) T) T {
	if v, ok := h.tryUnwrap(); ok {
		return v
	}
	c := h.live()
	v := clone(c.value)
	h.cell = nil
	c.release()
	return v
}

func (h *handle[T, C, PC]) downgrade() weakHandle[T, C, PC] {
	c := h.live()
	c.observe()
	return weakHandle[T, C, PC]{cell: c}
}

func (h *handle[T, C, PC]) strongCount() int32 {
	return h.live().ctr().strongCount()
}

func (h *handle[T, C, PC]) weakCount() int32 {
	return h.live().ctr().weakCount()
}

// weakHandle is the weak-handle core shared by Weak and LocalWeak.
type weakHandle[T any, C any, PC counterPtr[C]] struct {
	cell *cell[T, C, PC]
}

func (h *weakHandle[T, C, PC]) live() *cell[T, C, PC] {
	if h.cell == nil {
		panic("ref: use of released handle")
	}
	return h.cell
}

func (h *weakHandle[T, C, PC]) upgrade() (handle[T, C, PC], bool) {
	c := h.live()
	if !c.upgrade() {
		return handle[T, C, PC]{}, false
	}
	return handle[T, C, PC]{cell: c}, true
}

func (h *weakHandle[T, C, PC]) clone() weakHandle[T, C, PC] {
	c := h.live()
	c.observe()
	return weakHandle[T, C, PC]{cell: c}
}

func (h *weakHandle[T, C, PC]) release() {
	h.live().unobserve()
	h.cell = nil
}

// noCopy is embedded in the exported handle types so `go vet` flags copies
// made after first use.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
