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

// Package cow provides copy-on-write pointers: reference-counted handles
// that share one value for reading and clone it into a private copy the
// moment exclusive access is requested while the value is shared. Callers
// never inspect reference counts; sharing and divergence follow from which
// accessor they call.
//
// Ptr counts atomically and may be aliased across goroutines. LocalPtr
// counts without synchronization and is confined to one goroutine. Both
// expose the same operations; the handles under them live in the ref
// subpackage and can be used on their own.
package cow
