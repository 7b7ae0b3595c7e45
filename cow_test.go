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
	"testing"

	// third-party libraries.
	. "github.com/smartystreets/goconvey/convey"

	// this project.
	"github.com/linkall-labs/cow/clone"
	"github.com/linkall-labs/cow/ref"
)

// box is the smallest cloneable pointee: a flag that can also be flipped in
// place through a shared view.
type box struct {
	on bool
}

func (b box) Clone() box { return b }

func (b box) Equal(o box) bool { return b == o }

// version is a cloneable pointee with an order and a rendering.
type version struct {
	major, minor int
}

func (v version) Clone() version { return v }

func (v version) Equal(o version) bool { return v == o }

func (v version) Compare(o version) int {
	if v.major != o.major {
		return v.major - o.major
	}
	return v.minor - o.minor
}

func (v version) String() string { return fmt.Sprintf("v%d.%d", v.major, v.minor) }

// table is a pointee whose shallow copy would share state: Clone must copy
// the map for diverged pointers to be independent.
type table struct {
	rows map[string]int
}

func (tb table) Clone() table {
	return table{rows: clone.Map(tb.rows)}
}

var (
	_ Handle[box]     = (*Ptr[box])(nil)
	_ Handle[box]     = (*LocalPtr[box])(nil)
	_ Handle[version] = (*Ptr[version])(nil)
	_ Handle[version] = (*LocalPtr[version])(nil)
)

func TestPtr_New(t *testing.T) {
	Convey("a fresh pointer owns its value alone", t, func() {
		p := New(version{major: 1})
		defer p.Release()

		So(p.StrongCount(), ShouldEqual, 1)
		So(p.WeakCount(), ShouldEqual, 0)
		So(*p.Value(), ShouldResemble, version{major: 1})
		So(p.Value(), ShouldEqual, p.Value())
	})
}

func TestPtr_Clone(t *testing.T) {
	Convey("cloning aliases the value instead of copying it", t, func() {
		p1 := New(version{major: 1, minor: 2})
		defer p1.Release()

		p2 := p1.Clone()
		defer p2.Release()

		So(p1.StrongCount(), ShouldEqual, 2)
		So(p2.Value(), ShouldEqual, p1.Value())
		So(Equal[version](p1, p2), ShouldBeTrue)
	})

	Convey("releasing a clone makes the survivor sole owner again", t, func() {
		p1 := New(version{major: 1})
		defer p1.Release()

		p2 := p1.Clone()
		p2.Release()

		So(p1.StrongCount(), ShouldEqual, 1)
	})
}

func TestPtr_CloneUnique(t *testing.T) {
	Convey("forced duplication is private even when already unique", t, func() {
		p := New(table{rows: map[string]int{"a": 1}})
		defer p.Release()

		q := p.CloneUnique()
		defer q.Release()

		So(q.Value(), ShouldNotEqual, p.Value())
		So(p.StrongCount(), ShouldEqual, 1)
		So(q.StrongCount(), ShouldEqual, 1)

		q.Mutable().rows["a"] = 2
		So(p.Value().rows["a"], ShouldEqual, 1)
	})
}

func TestPtr_RawInterop(t *testing.T) {
	Convey("wrapping and unwrapping never touch counts", t, func() {
		r := ref.New(version{major: 3})
		So(r.StrongCount(), ShouldEqual, 1)

		p := Wrap(r)
		So(p.StrongCount(), ShouldEqual, 1)
		So(p.Raw(), ShouldEqual, r)
		So(p.Raw().Get(), ShouldEqual, p.Value())

		p.Release()
	})

	Convey("a wrapped handle shares with its raw clones", t, func() {
		r := ref.New(version{major: 3})
		r2 := r.Clone()
		defer r2.Release()

		p := Wrap(r)
		So(p.StrongCount(), ShouldEqual, 2)

		// Divergence works against raw siblings too.
		p.Mutable().major = 4
		So(p.StrongCount(), ShouldEqual, 1)
		So(r2.Get().major, ShouldEqual, 3)

		p.Release()
	})
}

func TestLocalPtr_Basics(t *testing.T) {
	Convey("the local flavor shares and counts the same way", t, func() {
		p1 := NewLocal(version{major: 1})
		defer p1.Release()

		p2 := p1.Clone()
		So(p1.StrongCount(), ShouldEqual, 2)
		So(p2.Value(), ShouldEqual, p1.Value())
		p2.Release()

		q := p1.CloneUnique()
		So(q.Value(), ShouldNotEqual, p1.Value())
		q.Release()

		r := ref.NewLocal(version{major: 2})
		w := WrapLocal(r)
		So(w.Raw(), ShouldEqual, r)
		So(w.StrongCount(), ShouldEqual, 1)
		w.Release()
	})
}

func TestPtr_Misuse(t *testing.T) {
	Convey("released pointers refuse further use", t, func() {
		p := New(box{})
		p.Release()

		So(func() { p.Value() }, ShouldPanic)
		So(func() { p.Release() }, ShouldPanic)
		So(func() { p.Clone() }, ShouldPanic)
	})

	Convey("wrapping nothing refuses", t, func() {
		So(func() { Wrap[box](nil) }, ShouldPanic)
		So(func() { WrapLocal[box](nil) }, ShouldPanic)
	})
}
