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

// YieldResult is the outcome of a single retrieval: either a produced value
// or the end of the sequence. A fresh YieldResult is created on every call
// to Generator.Next and is never mutated afterwards.
type YieldResult[T any] struct {
	value T
	valid bool
}

// Yielded returns a YieldResult carrying value.
func Yielded[T any](value T) YieldResult[T] {
	return YieldResult[T]{
		value: value,
		valid: true,
	}
}

// End returns a YieldResult marking the end of the sequence.
func End[T any]() YieldResult[T] {
	return YieldResult[T]{}
}

// Value returns the produced value and true, or the zero value and false if
// the sequence ended.
func (r YieldResult[T]) Value() (T, bool) {
	return r.value, r.valid
}

// HasValue reports whether a value was produced.
func (r YieldResult[T]) HasValue() bool {
	return r.valid
}

// End reports whether the sequence ended.
func (r YieldResult[T]) End() bool {
	return !r.valid
}
