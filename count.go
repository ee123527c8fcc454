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

import "golang.org/x/exp/constraints"

// Number is the constraint satisfied by types Count can step over.
type Number interface {
	constraints.Integer | constraints.Float
}

// CounterState is the state of a generator returned by Count.
type CounterState[T Number] struct {
	Current T
	Step    T
}

// Count returns a generator yielding the infinite arithmetic sequence
// start, start+step, start+2*step and so on. Each retrieval returns the
// current value and only then advances it.
//
// Overflow is not guarded: when the sequence leaves T's range it behaves
// exactly as T's addition does.
func Count[T Number](start, step T) *Generator[T, CounterState[T]] {
	return NewGenerator(CounterState[T]{Current: start, Step: step}, func(s *CounterState[T]) (T, bool) {
		value := s.Current
		s.Current += s.Step
		return value, true
	})
}
