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

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		start int
		step  int
	}{
		{"from zero", 0, 1},
		{"offset", 10, 3},
		{"negative step", 5, -2},
		{"zero step", 7, 0},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			g := Count(tt.start, tt.step)
			for n := 0; n < 100; n++ {
				got, err := g.NextValue()
				require.NoError(t, err)
				require.Equal(t, tt.start+n*tt.step, got, "retrieval %d", n)
			}
		})
	}
}

func TestCount_Float(t *testing.T) {
	t.Parallel()

	g := Count(0.5, 0.25)
	for n := 0; n < 100; n++ {
		got, ok := g.NextOptional()
		require.True(t, ok)
		require.InDelta(t, 0.5+float64(n)*0.25, got, 1e-9, "retrieval %d", n)
	}
}

// Count gives no overflow protection: the sequence wraps with T's arithmetic.
func TestCount_Wraparound(t *testing.T) {
	t.Parallel()

	g := Count(uint8(250), uint8(3))
	want := []uint8{250, 253, 0, 3, 6}
	for i, w := range want {
		got, err := g.NextValue()
		require.NoError(t, err)
		require.Equal(t, w, got, "retrieval %d", i)
	}
}
