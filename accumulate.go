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

// Addable is the constraint satisfied by types supporting the + operator.
type Addable interface {
	constraints.Integer | constraints.Float | constraints.Complex | ~string
}

// AccumulatorState is the state of a generator returned by Accumulate. It
// owns Source exclusively: nothing else may pull from it while the
// accumulator is in use. HasTotal distinguishes "nothing accumulated yet"
// from "the running total happens to be the zero value".
type AccumulatorState[T Addable, S any] struct {
	Source   *Generator[T, S]
	Total    T
	HasTotal bool
}

// Accumulate returns a generator of running totals over source: it yields
// s0, s0+s1, s0+s1+s2 and so on, where s0, s1, s2 are source's values. The
// first yielded value is source's first value unchanged. The accumulator
// exhausts exactly when source does.
//
// Accumulate takes ownership of source.
func Accumulate[T Addable, S any](source *Generator[T, S]) *Generator[T, AccumulatorState[T, S]] {
	return NewGenerator(AccumulatorState[T, S]{Source: source}, func(s *AccumulatorState[T, S]) (T, bool) {
		value, ok := s.Source.NextOptional()
		if !ok {
			return zeroValue[T](), false
		}
		if !s.HasTotal {
			s.Total = value
			s.HasTotal = true
		} else {
			s.Total += value
		}
		return s.Total, true
	})
}
