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

// RepeaterState is the state of a generator returned by Repeat. It never
// changes after construction.
type RepeaterState[T any] struct {
	Value T
}

// Repeat returns a generator yielding value forever.
func Repeat[T any](value T) *Generator[T, RepeaterState[T]] {
	return NewGenerator(RepeaterState[T]{Value: value}, func(s *RepeaterState[T]) (T, bool) {
		return s.Value, true
	})
}
