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
	"fmt"
	"slices"

	"github.com/consensys/go-galois/pkg/field"
)

// RREF returns the reduced row echelon form of a matrix, using two-pass
// Gauss-Jordan elimination.  The forward pass eliminates below each pivot and
// scales the pivot row so its leading entry is one; the backward pass then
// eliminates above each pivot.  The given matrix is not modified.
func (e Engine) RREF(m Matrix) (Matrix, error) {
	reduced, _, err := e.reduce(m)
	//
	return reduced, err
}

// Pivots returns the reduced row echelon form of a matrix, along with the
// position of each pivot (in row order).
func (e Engine) Pivots(m Matrix) (Matrix, []Pivot, error) {
	return e.reduce(m)
}

func (e Engine) reduce(m Matrix) (Matrix, []Pivot, error) {
	rows, cols, err := m.Dims()
	if err != nil {
		return nil, nil, err
	}
	// Normalisation also gives us our own copy to work on.
	if m, err = e.Normalise(m); err != nil {
		return nil, nil, err
	}
	//
	var pivots []Pivot
	//
	e.notify(StepOriginal, 0, 0, 0, Pivot{}, m)
	//
	for r, c := uint(0), uint(0); r < rows && c < cols; c++ {
		i, ok := findPivot(m, r, c)
		if !ok {
			// no pivot in this column
			continue
		}
		//
		if i != r {
			m[r], m[i] = m[i], m[r]
			e.notify(StepExchange, r, i, 0, Pivot{}, m)
		}
		//
		pivot := Pivot{r, c}
		e.pivotDown(m, pivot)
		e.scaleRow(m, pivot)
		pivots = append(pivots, pivot)
		r++
	}
	//
	for _, pivot := range slices.Backward(pivots) {
		e.pivotUp(m, pivot)
	}
	//
	return m, pivots, nil
}

// Find the first row at or below r with a non-zero entry in column c.
func findPivot(m Matrix, r, c uint) (uint, bool) {
	for i := r; i < uint(len(m)); i++ {
		if m[i][c] != field.Zero {
			return i, true
		}
	}
	//
	return 0, false
}

func (e Engine) pivotDown(m Matrix, p Pivot) {
	if p.Row+1 < uint(len(m)) {
		e.notify(StepPivotDown, 0, 0, 0, p, m)
	}
	//
	for i := p.Row + 1; i < uint(len(m)); i++ {
		e.eliminate(m, p, i)
	}
}

func (e Engine) pivotUp(m Matrix, p Pivot) {
	if p.Row > 0 {
		e.notify(StepPivotUp, 0, 0, 0, p, m)
	}
	//
	for i := p.Row; i > 0; i-- {
		e.eliminate(m, p, i-1)
	}
}

// Zero the entry of a given row in the pivot's column, by adding a suitable
// multiple of the pivot row.
func (e Engine) eliminate(m Matrix, p Pivot, row uint) {
	pivot := m[p.Row][p.Col]
	//
	if pivot == field.Zero {
		panic(fmt.Sprintf("zero pivot at (%d, %d)", p.Row+1, p.Col+1))
	} else if m[row][p.Col] == field.Zero {
		return
	}
	//
	multiplier := e.neg(e.mul(e.inverse(pivot), m[row][p.Col]))
	//
	for j := range m[row] {
		m[row][j] = e.add(m[row][j], e.mul(multiplier, m[p.Row][j]))
	}
	//
	e.notify(StepAddRow, p.Row, row, multiplier, p, m)
}

// Scale the pivot row so that the pivot becomes one.
func (e Engine) scaleRow(m Matrix, p Pivot) {
	scale := e.inverse(m[p.Row][p.Col])
	//
	for j := range m[p.Row] {
		m[p.Row][j] = e.mul(scale, m[p.Row][j])
	}
	//
	e.notify(StepScale, 0, p.Row, scale, p, m)
}

// Rank returns the dimension of the row space of a matrix.
func (e Engine) Rank(m Matrix) (uint, error) {
	reduced, err := e.RREF(m)
	if err != nil {
		return 0, err
	}
	//
	rank := uint(0)
	//
	for _, row := range reduced {
		if !row.IsZero() {
			rank++
		}
	}
	//
	return rank, nil
}

// IsLinearlyIndependent checks whether a set of vectors is linearly
// independent.  The empty set is vacuously independent.
func (e Engine) IsLinearlyIndependent(rows Matrix) (bool, error) {
	rank, err := e.Rank(rows)
	if err != nil {
		return false, err
	}
	//
	return rank == uint(len(rows)), nil
}
