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

package cow_test

import (
	// standard libraries.
	"testing"

	// this project.
	"github.com/linkall-labs/cow"
	"github.com/linkall-labs/cow/clone"
)

type payload struct {
	data []byte
}

func (p payload) Clone() payload {
	return payload{data: clone.Bytes(p.data)}
}

func newPayload() payload {
	return payload{data: make([]byte, 1024)}
}

func BenchmarkPtr_Clone(b *testing.B) {
	p := cow.New(newPayload())
	defer p.Release()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.Clone().Release()
	}
}

func BenchmarkPtr_Value(b *testing.B) {
	p := cow.New(newPayload())
	defer p.Release()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = p.Value()
	}
}

func BenchmarkPtr_MutableUnique(b *testing.B) {
	p := cow.New(newPayload())
	defer p.Release()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = p.Mutable()
	}
}

func BenchmarkPtr_MutableShared(b *testing.B) {
	p := cow.New(newPayload())
	defer p.Release()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q := p.Clone()
		_ = q.Mutable()
		q.Release()
	}
}

func BenchmarkLocalPtr_Clone(b *testing.B) {
	p := cow.NewLocal(newPayload())
	defer p.Release()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.Clone().Release()
	}
}

func BenchmarkLocalPtr_MutableShared(b *testing.B) {
	p := cow.NewLocal(newPayload())
	defer p.Release()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q := p.Clone()
		_ = q.Mutable()
		q.Release()
	}
}
