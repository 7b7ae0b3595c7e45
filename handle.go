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
)

// Cloner constrains pointee types to ones that can duplicate themselves.
// Clone returns a deep copy: the copy shares no mutable state with the
// receiver.
type Cloner[T any] interface {
	Clone() T
}

// Equaler constrains pointee types comparable for equality.
type Equaler[T any] interface {
	Equal(T) bool
}

// Comparer constrains pointee types carrying a total order. Compare returns
// a negative value, zero, or a positive value when the receiver orders
// before, the same as, or after the argument.
type Comparer[T any] interface {
	Compare(T) int
}

// Handle is the operation set shared by both pointer flavors. Operations
// returning flavor-specific types (Clone, CloneUnique, Downgrade, raw-handle
// access) exist on both flavors with matching shapes but cannot be part of
// the interface.
type Handle[T Cloner[T]] interface {
	fmt.Stringer

	// Value returns a view of the shared value for reading.
	Value() *T
	// Mutable returns a view of the value for writing, cloning it into a
	// private cell first when it is shared.
	Mutable() *T
	// TryTake moves the value out if the handle is the sole strong owner.
	TryTake() (T, bool)
	// Take moves the value out if the handle is the sole strong owner, or
	// returns a deep copy otherwise.
	Take() T
	// Release drops the handle's strong reference.
	Release()

	StrongCount() int32
	WeakCount() int32
}

// cloneValue adapts the Cloner constraint to the clone functions the raw
// layer takes.
func cloneValue[T Cloner[T]](v T) T {
	return v.Clone()
}

// noCopy is embedded in the pointer types so `go vet` flags copies made
// after first use.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
