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
	"strings"

	"github.com/consensys/go-galois/pkg/field"
)

// Matrix is an ordered sequence of equal-length row vectors over a single
// field.  Matrices are treated as values: no operation in this package mutates
// a matrix it was given.
type Matrix []field.Vector

// Identity constructs the n×n identity matrix.
func Identity(n uint) Matrix {
	m := Zero(n, n)
	//
	for i := range m {
		m[i][i] = field.One
	}
	//
	return m
}

// Zero constructs an all-zero matrix of the given dimensions.
func Zero(rows, cols uint) Matrix {
	m := make(Matrix, rows)
	//
	for i := range m {
		m[i] = make(field.Vector, cols)
	}
	//
	return m
}

// Dims returns the number of rows and columns in this matrix, or an error if
// its rows do not all have the same length.
func (m Matrix) Dims() (uint, uint, error) {
	if len(m) == 0 {
		return 0, 0, nil
	}
	//
	cols := len(m[0])
	//
	for i, row := range m {
		if len(row) != cols {
			return 0, 0, fmt.Errorf("%w: row %d has %d columns, expected %d",
				field.ErrDimensionMismatch, i+1, len(row), cols)
		}
	}
	//
	return uint(len(m)), uint(cols), nil
}

// Clone returns a deep copy of this matrix.
func (m Matrix) Clone() Matrix {
	if m == nil {
		return nil
	}
	//
	c := make(Matrix, len(m))
	//
	for i, row := range m {
		c[i] = row.Clone()
	}
	//
	return c
}

// Equal checks whether two matrices have identical rows.
func (m Matrix) Equal(o Matrix) bool {
	if len(m) != len(o) {
		return false
	}
	//
	for i := range m {
		if len(m[i]) != len(o[i]) {
			return false
		}
		//
		for j := range m[i] {
			if m[i][j] != o[i][j] {
				return false
			}
		}
	}
	//
	return true
}

// Transpose returns the transpose of a (rectangular) matrix.
func Transpose(m Matrix) (Matrix, error) {
	rows, cols, err := m.Dims()
	if err != nil {
		return nil, err
	}
	//
	t := Zero(cols, rows)
	//
	for i := range m {
		for j := range m[i] {
			t[j][i] = m[i][j]
		}
	}
	//
	return t, nil
}

// Format renders this matrix as a bracketed grid, one row per line, using the
// field's notation for elements.
func (m Matrix) Format(f field.Field) string {
	var builder strings.Builder
	//
	for _, row := range m {
		builder.WriteString("|")
		//
		for _, x := range row {
			builder.WriteString(" ")
			builder.WriteString(f.Format(x))
		}
		//
		builder.WriteString(" |\n")
	}
	//
	return builder.String()
}

func (m Matrix) String() string {
	rows := make([]string, len(m))
	//
	for i, row := range m {
		rows[i] = row.String()
	}
	//
	return fmt.Sprintf("[%s]", strings.Join(rows, " "))
}

// ParseMatrix reads a matrix over a given field.  Rows are separated by
// semi-colons or newlines, with elements as accepted by field.ParseVec.  Nested
// brackets are also accepted, as in "[[1, 0], [0, 1]]".
func ParseMatrix(f field.Field, text string) (Matrix, error) {
	text = strings.NewReplacer("],", ";", "] ,", ";", "[", "", "]", "").Replace(text)
	//
	var m Matrix
	//
	for _, line := range strings.FieldsFunc(text, func(r rune) bool { return r == ';' || r == '\n' }) {
		if strings.TrimSpace(line) == "" {
			continue
		}
		//
		row, err := f.ParseVec(line)
		if err != nil {
			return nil, err
		}
		//
		m = append(m, row)
	}
	//
	if _, _, err := m.Dims(); err != nil {
		return nil, err
	}
	//
	return m, nil
}
