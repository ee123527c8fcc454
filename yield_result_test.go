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

import "testing"

func TestYieldResult(t *testing.T) {
	t.Parallel()

	r := Yielded(42)
	if !r.HasValue() {
		t.Fatal("yielded result should have a value")
	}
	if r.End() {
		t.Fatal("yielded result should not be the end")
	}
	if got, ok := r.Value(); !ok || got != 42 {
		t.Fatalf("not valid value. want 42, got %d (ok = %t)", got, ok)
	}

	e := End[int]()
	if e.HasValue() {
		t.Fatal("end result should not have a value")
	}
	if !e.End() {
		t.Fatal("end result should be the end")
	}
	if got, ok := e.Value(); ok || got != 0 {
		t.Fatalf("end result should return the zero value, got %d (ok = %t)", got, ok)
	}
}
