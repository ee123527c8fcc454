// Copyright (c) 2025 Alexey Mayshev and contributors. All rights reserved.
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

package gen

// CyclerState is the state of a generator returned by Cycle. Data is
// borrowed, not copied: the generator reads through the caller's slice.
type CyclerState[T any] struct {
	Data  []T
	Index uint
}

// Cycle returns a generator replaying items indefinitely, in order,
// wrapping around after the last element.
//
// Cycle panics if items is empty; cycling over nothing is a programming
// error, not a recoverable exhaustion. The slice is borrowed for the
// lifetime of the generator: the caller must not mutate it while the
// generator is in use.
func Cycle[T any](items []T) *Generator[T, CyclerState[T]] {
	if len(items) == 0 {
		panic("gen: cycle over an empty slice")
	}
	return NewGenerator(CyclerState[T]{Data: items}, func(s *CyclerState[T]) (T, bool) {
		value := s.Data[s.Index%uint(len(s.Data))]
		s.Index++
		return value, true
	})
}
