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

	"github.com/consensys/go-galois/pkg/field"
)

// Multiply computes the matrix product a·b, where a is m×n and b is n×p.
func (e Engine) Multiply(a, b Matrix) (Matrix, error) {
	m, n, err := a.Dims()
	if err != nil {
		return nil, err
	}
	//
	bt, err := Transpose(b)
	//
	switch {
	case err != nil:
		return nil, err
	case uint(len(b)) != n:
		return nil, fmt.Errorf("%w: cannot multiply %d×%d matrix by matrix with %d rows",
			field.ErrDimensionMismatch, m, n, len(b))
	}
	//
	c := make(Matrix, m)
	//
	for i := range a {
		c[i] = make(field.Vector, len(bt))
		//
		for j := range bt {
			if c[i][j], err = e.field.DotVec(a[i], bt[j]); err != nil {
				return nil, err
			}
		}
	}
	//
	return c, nil
}

// Inverse computes the inverse of a square matrix by row reducing the
// augmented matrix [M | I].  If M is invertible, this yields [I | M⁻¹].
func (e Engine) Inverse(m Matrix) (Matrix, error) {
	rows, cols, err := m.Dims()
	//
	switch {
	case err != nil:
		return nil, err
	case rows != cols:
		return nil, fmt.Errorf("%w: cannot invert %d×%d matrix", field.ErrDimensionMismatch, rows, cols)
	}
	//
	augmented := make(Matrix, rows)
	identity := Identity(rows)
	//
	for i := range m {
		augmented[i] = append(m[i].Clone(), identity[i]...)
	}
	//
	reduced, pivots, err := e.Pivots(augmented)
	if err != nil {
		return nil, err
	}
	// Invertible iff every pivot lies on the diagonal of the left block.
	if uint(len(pivots)) != rows || (rows > 0 && pivots[rows-1].Col >= rows) {
		return nil, fmt.Errorf("%w: rank %d", ErrSingularMatrix, countLeft(pivots, rows))
	}
	//
	inverse := make(Matrix, rows)
	//
	for i := range reduced {
		inverse[i] = reduced[i][rows:].Clone()
	}
	//
	return inverse, nil
}

func countLeft(pivots []Pivot, cols uint) uint {
	count := uint(0)
	//
	for _, p := range pivots {
		if p.Col < cols {
			count++
		}
	}
	//
	return count
}
