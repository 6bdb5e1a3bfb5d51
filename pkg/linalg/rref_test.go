// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package linalg

import (
	"testing"

	"github.com/consensys/go-galois/pkg/field"
	"github.com/stretchr/testify/require"
)

var (
	GF2  = New(field.MustNew(2))
	GF3  = New(field.MustNew(3))
	GF4  = New(field.MustNew(4))
	GF5  = New(field.MustNew(5))
	GF7  = New(field.MustNew(7))
	GF11 = New(field.MustNew(11))
)

const (
	a = field.Alpha
	b = field.Beta
)

func Test_RREF_Binary(t *testing.T) {
	checkRREF(t, GF2, Matrix{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}}, Matrix{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}})
	checkRREF(t, GF2, Matrix{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, Matrix{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}})
	checkRREF(t, GF2, Matrix{{0}}, Matrix{{0}})
	checkRREF(t, GF2, Matrix{{1}}, Matrix{{1}})
	checkRREF(t, GF2, Matrix{{1, 0, 1, 0}, {0, 1, 0, 0}, {1, 0, 1, 0}},
		Matrix{{1, 0, 1, 0}, {0, 1, 0, 0}, {0, 0, 0, 0}})
	checkRREF(t, GF2, Matrix{{1, 1, 0, 0}, {1, 0, 1, 0}, {1, 0, 0, 1}, {0, 1, 0, 1}},
		Matrix{{1, 0, 0, 1}, {0, 1, 0, 1}, {0, 0, 1, 1}, {0, 0, 0, 0}})
}

func Test_RREF_Prime(t *testing.T) {
	checkRREF(t, GF3,
		Matrix{
			{1, 1, 2, 1, 2},
			{1, 0, 1, 1, 0},
			{1, 2, 0, 1, 1},
			{1, 1, 2, 0, 2},
			{2, 2, 1, 2, 1}},
		Matrix{
			{1, 0, 1, 0, 0},
			{0, 1, 1, 0, 2},
			{0, 0, 0, 1, 0},
			{0, 0, 0, 0, 0},
			{0, 0, 0, 0, 0}})
	// 9 and -2 = 5 (mod 7), 11 = 4 (mod 7)
	checkRREF(t, GF7, Matrix{{9, 5}, {0, 11}}, Matrix{{1, 0}, {0, 1}})
	checkRREF(t, GF3,
		Matrix{{0, 0, 0, 0, 0}, {0, 0, 0, 0, 0}, {0, 0, 0, 2, 0}},
		Matrix{{0, 0, 0, 1, 0}, {0, 0, 0, 0, 0}, {0, 0, 0, 0, 0}})
}

func Test_RREF_GF4(t *testing.T) {
	checkRREF(t, GF4, Matrix{{a, b}, {b, a}}, Matrix{{1, 0}, {0, 1}})
	checkRREF(t, GF4,
		Matrix{
			{0, 0, b, 0},
			{0, 0, 0, 0},
			{a, 0, b, 1},
			{1, 0, a, b}},
		Matrix{
			{1, 0, 0, b},
			{0, 0, 1, 0},
			{0, 0, 0, 0},
			{0, 0, 0, 0}})
}

func Test_RREF_Shapes(t *testing.T) {
	// more rows than columns
	checkRREF(t, GF5, Matrix{{2}, {3}, {4}}, Matrix{{1}, {0}, {0}})
	// more columns than rows
	checkRREF(t, GF5, Matrix{{0, 2, 4, 1}}, Matrix{{0, 1, 2, 3}})
	// empty
	checkRREF(t, GF5, Matrix{}, Matrix{})
}

func Test_RREF_Ragged(t *testing.T) {
	_, err := GF7.RREF(Matrix{{1, 2}, {3}})
	require.ErrorIs(t, err, field.ErrDimensionMismatch)
}

func Test_RREF_InvalidElement(t *testing.T) {
	_, err := GF4.RREF(Matrix{{1, 2}, {3, 9}})
	require.ErrorIs(t, err, field.ErrElementNotInField)
}

func Test_RREF_Idempotent(t *testing.T) {
	inputs := []struct {
		engine Engine
		matrix Matrix
	}{
		{GF2, Matrix{{1, 1, 0, 0}, {1, 0, 1, 0}, {1, 0, 0, 1}, {0, 1, 0, 1}}},
		{GF3, Matrix{{1, 1, 2, 1, 2}, {1, 0, 1, 1, 0}, {1, 2, 0, 1, 1}}},
		{GF4, Matrix{{0, 0, b, 0}, {0, 0, 0, 0}, {a, 0, b, 1}, {1, 0, a, b}}},
		{GF11, Matrix{{10, 3, 7, 5}, {1, 2, 3, 0}, {4, 4, 4, 4}}},
	}
	//
	for _, input := range inputs {
		once, err := input.engine.RREF(input.matrix)
		require.NoError(t, err)
		twice, err := input.engine.RREF(once)
		require.NoError(t, err)
		require.Equal(t, once, twice)
	}
}

func Test_RREF_DoesNotMutate(t *testing.T) {
	m := Matrix{{0, 1, 2}, {3, 4, 5}}
	original := m.Clone()
	//
	_, err := GF7.RREF(m)
	require.NoError(t, err)
	require.Equal(t, original, m)
}

func Test_RREF_Exhaustive_GF3(t *testing.T) {
	// every 2×3 matrix over GF(3): reduction is idempotent and row rank
	// matches a brute force count of spanned vectors.
	for code := 0; code < 729; code++ {
		m := Zero(2, 3)
		//
		for i, c := 0, code; i < 6; i, c = i+1, c/3 {
			m[i/3][i%3] = field.Element(c % 3)
		}
		//
		reduced, err := GF3.RREF(m)
		require.NoError(t, err)
		again, err := GF3.RREF(reduced)
		require.NoError(t, err)
		require.Equal(t, reduced, again, "%s", m)
		//
		rank, err := GF3.Rank(m)
		require.NoError(t, err)
		require.Equal(t, bruteForceRank(m, 3), rank, "%s", m)
	}
}

func Test_Rank(t *testing.T) {
	checkRank(t, GF5, Matrix{{0}}, 0)
	checkRank(t, GF5, Matrix{{0, 0, 0}, {0, 0, 0}}, 0)
	checkRank(t, GF2, Matrix{{1, 0}, {0, 1}}, 2)
	checkRank(t, GF2, Matrix{{1, 0}, {0, 0}}, 1)
	checkRank(t, GF3, Matrix{{0, 0}, {1, 0}}, 1)
	checkRank(t, GF2, Matrix{{0, 0}, {0, 1}}, 1)
	checkRank(t, GF5, Matrix{{0, 0, 0}, {0, 3, 0}}, 1)
	checkRank(t, GF3, Matrix{
		{1, 1, 2, 1, 2},
		{1, 0, 1, 1, 0},
		{1, 2, 0, 1, 1},
		{1, 1, 2, 0, 2},
		{2, 2, 1, 2, 1}}, 3)
	//
	for n := uint(1); n < 6; n++ {
		checkRank(t, GF7, Identity(n), n)
		checkRank(t, GF4, Identity(n), n)
		checkRank(t, GF7, Zero(n, n+1), 0)
	}
}

func Test_IsLinearlyIndependent(t *testing.T) {
	checkIndependent(t, GF2, Matrix{{1, 0}, {0, 1}}, true)
	// -1 = 2 (mod 3)
	checkIndependent(t, GF3, Matrix{{2, 0}, {0, 1}}, true)
	checkIndependent(t, GF7, Matrix{{0, 0, 0}, {0, 0, 0}}, false)
	checkIndependent(t, GF7, Matrix{{0}}, false)
	checkIndependent(t, GF5, Matrix{{0, 4}, {0, 3}}, false)
	checkIndependent(t, GF4, Matrix{{1, a}, {b, 1}}, false)
	checkIndependent(t, GF4, Matrix{{1, a}, {a, 1}}, true)
	checkIndependent(t, GF7, Matrix{}, true)
	// more vectors than dimensions
	checkIndependent(t, GF7, Matrix{{1, 0}, {0, 1}, {1, 1}}, false)
}

func Test_Pivots(t *testing.T) {
	_, pivots, err := GF3.Pivots(Matrix{{0, 0, 0, 0, 0}, {0, 1, 0, 0, 0}, {0, 0, 0, 2, 0}})
	require.NoError(t, err)
	require.Equal(t, []Pivot{{0, 1}, {1, 3}}, pivots)
}

func checkRREF(t *testing.T, e Engine, input, expected Matrix) {
	t.Helper()
	//
	actual, err := e.RREF(input)
	require.NoError(t, err)
	require.Equal(t, expected, actual, "rref of %s over %s", input, e.Field())
}

func checkRank(t *testing.T, e Engine, input Matrix, expected uint) {
	t.Helper()
	//
	rank, err := e.Rank(input)
	require.NoError(t, err)
	require.Equal(t, expected, rank, "rank of %s over %s", input, e.Field())
}

func checkIndependent(t *testing.T, e Engine, input Matrix, expected bool) {
	t.Helper()
	//
	independent, err := e.IsLinearlyIndependent(input)
	require.NoError(t, err)
	require.Equal(t, expected, independent, "%s over %s", input, e.Field())
}

// Determine rank by counting the distinct linear combinations of rows.
func bruteForceRank(m Matrix, q uint) uint {
	f := field.MustNew(q)
	span := map[string]bool{}
	combos := uint(1)
	//
	for range m {
		combos *= q
	}
	//
	for code := uint(0); code < combos; code++ {
		acc := make(field.Vector, len(m[0]))
		//
		for i, c := 0, code; i < len(m); i, c = i+1, c/q {
			scaled, _ := f.ScaleVec(field.Element(c%q), m[i])
			acc, _ = f.AddVec(acc, scaled)
		}
		//
		span[acc.String()] = true
	}
	// |span| = q^rank
	rank := uint(0)
	for size := uint(len(span)); size > 1; size /= q {
		rank++
	}
	//
	return rank
}
