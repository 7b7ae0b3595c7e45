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

import (
	// third-party libraries.
	"go.uber.org/atomic"
)

// counters tracks the strong and weak references to a cell. The two
// implementations differ only in synchronization: atomicCounts is safe for
// concurrent use, plainCounts is not.
type counters interface {
	// incStrong adds a strong reference, returning the new count.
	incStrong() int32
	// decStrong drops a strong reference, returning the new count.
	decStrong() int32
	// upgradeStrong adds a strong reference unless the count has already
	// reached zero.
	upgradeStrong() bool
	// takeStrong drops a sole strong reference, from one to zero.
	takeStrong() bool

	incWeak() int32
	decWeak() int32

	strongCount() int32
	weakCount() int32
}

// counterPtr constrains a pointer to counter state C to the counters
// contract, so a cell can keep its counts inline and still dispatch through
// the counting policy at compile time.
type counterPtr[C any] interface {
	*C
	counters
}

// atomicCounts synchronizes with atomic operations. Cells counted by it may
// be aliased across goroutines.
type atomicCounts struct {
	strong atomic.Int32
	weak   atomic.Int32
}

var _ counters = (*atomicCounts)(nil)

func (c *atomicCounts) incStrong() int32 { return c.strong.Inc() }

func (c *atomicCounts) decStrong() int32 { return c.strong.Dec() }

func (c *atomicCounts) upgradeStrong() bool {
	for {
		n := c.strong.Load()
		if n <= 0 {
			return false
		}
		if c.strong.CAS(n, n+1) {
			return true
		}
	}
}

func (c *atomicCounts) takeStrong() bool { return c.strong.CAS(1, 0) }

func (c *atomicCounts) incWeak() int32 { return c.weak.Inc() }

func (c *atomicCounts) decWeak() int32 { return c.weak.Dec() }

func (c *atomicCounts) strongCount() int32 { return c.strong.Load() }

func (c *atomicCounts) weakCount() int32 { return c.weak.Load() }

// plainCounts counts without synchronization, for cells confined to a single
// goroutine.
type plainCounts struct {
	strong int32
	weak   int32
}

var _ counters = (*plainCounts)(nil)

func (c *plainCounts) incStrong() int32 {
	c.strong++
	return c.strong
}

func (c *plainCounts) decStrong() int32 {
	c.strong--
	return c.strong
}

func (c *plainCounts) upgradeStrong() bool {
	if c.strong <= 0 {
		return false
	}
	c.strong++
	return true
}

func (c *plainCounts) takeStrong() bool {
	if c.strong != 1 {
		return false
	}
	c.strong = 0
	return true
}

func (c *plainCounts) incWeak() int32 {
	c.weak++
	return c.weak
}

func (c *plainCounts) decWeak() int32 {
	c.weak--
	return c.weak
}

func (c *plainCounts) strongCount() int32 { return c.strong }

func (c *plainCounts) weakCount() int32 { return c.weak }
