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

// StandardForm identifies which identity block a standard form matrix has.
type StandardForm uint8

const (
	// GeneratorForm is [I_k | A], where k is the number of rows.
	GeneratorForm StandardForm = iota
	// ParityForm is [B | I_k], where k is the number of rows.
	ParityForm
)

func (s StandardForm) String() string {
	if s == ParityForm {
		return "parity"
	}
	//
	return "generator"
}

// IsGeneratorMatrix checks whether the rows of a matrix are linearly
// independent, and hence generate a linear code of dimension equal to the
// number of rows.
func (e Engine) IsGeneratorMatrix(m Matrix) (bool, error) {
	return e.IsLinearlyIndependent(m)
}

// IsStandardForm checks whether a k×n matrix contains the k×k identity as its
// leftmost (GeneratorForm) or rightmost (ParityForm) block.  This is a pure
// predicate: matrices which are empty, ragged, have more rows than columns or
// have entries outside the field are simply not in standard form.
func (e Engine) IsStandardForm(m Matrix, form StandardForm) bool {
	rows, cols, err := m.Dims()
	//
	if err != nil || rows == 0 || rows > cols {
		return false
	} else if m, err = e.Normalise(m); err != nil {
		return false
	}
	//
	offset := uint(0)
	if form == ParityForm {
		offset = cols - rows
	}
	//
	for i := uint(0); i < rows; i++ {
		for j := uint(0); j < rows; j++ {
			expected := field.Zero
			if i == j {
				expected = field.One
			}
			//
			if m[i][j+offset] != expected {
				return false
			}
		}
	}
	//
	return true
}

// CreateParityCheckMatrix constructs an (n-k)×n parity-check matrix H for a
// k×n generator matrix G, such that every row of G is orthogonal to every row
// of H.  When G is not already in standard form it is first row reduced.  If
// the pivots of the reduced matrix do not occupy the leading columns, the
// columns are (conceptually) permuted to bring G into the form [I_k | A], H is
// built as [-Aᵗ | I_{n-k}], and then the permutation is undone on H's columns.
func (e Engine) CreateParityCheckMatrix(g Matrix) (Matrix, error) {
	var (
		reduced Matrix
		pivots  []Pivot
	)
	//
	k, n, err := g.Dims()
	//
	switch {
	case err != nil:
		return nil, err
	case k == 0:
		return nil, fmt.Errorf("%w: matrix has no rows", ErrInvalidGeneratorMatrix)
	case e.IsStandardForm(g, GeneratorForm):
		if reduced, err = e.Normalise(g); err != nil {
			return nil, err
		}
		//
		for i := uint(0); i < k; i++ {
			pivots = append(pivots, Pivot{i, i})
		}
	default:
		if reduced, pivots, err = e.Pivots(g); err != nil {
			return nil, err
		}
	}
	//
	if uint(len(pivots)) != k {
		return nil, fmt.Errorf("%w: rank %d is less than %d rows", ErrInvalidGeneratorMatrix, len(pivots), k)
	}
	// perm lists pivot columns first, then all others in order.
	perm := make([]uint, 0, n)
	isPivot := make([]bool, n)
	//
	for _, p := range pivots {
		perm = append(perm, p.Col)
		isPivot[p.Col] = true
	}
	//
	for j := uint(0); j < n; j++ {
		if !isPivot[j] {
			perm = append(perm, j)
		}
	}
	//
	h := Zero(n-k, n)
	//
	for j := uint(0); j < n-k; j++ {
		col := perm[k+j]
		h[j][col] = field.One
		//
		for i := uint(0); i < k; i++ {
			h[j][perm[i]] = e.neg(reduced[i][col])
		}
	}
	//
	return h, nil
}

// IsParityCheckMatrix checks whether every row of a is orthogonal to every row
// of b (i.e. whether each is a parity-check matrix of the other).
func (e Engine) IsParityCheckMatrix(a, b Matrix) (bool, error) {
	if _, _, err := a.Dims(); err != nil {
		return false, err
	} else if _, _, err := b.Dims(); err != nil {
		return false, err
	}
	//
	for _, u := range a {
		for _, v := range b {
			dot, err := e.field.DotVec(u, v)
			if err != nil {
				return false, err
			} else if dot != field.Zero {
				return false, nil
			}
		}
	}
	//
	return true, nil
}

// Encode a message word w of length k using a k×n generator matrix g, giving
// the codeword Σᵢ wᵢ·gᵢ of length n.
func (e Engine) Encode(g Matrix, w field.Vector) (field.Vector, error) {
	k, n, err := g.Dims()
	//
	if err != nil {
		return nil, err
	} else if uint(len(w)) != k {
		return nil, fmt.Errorf("%w: word has length %d, expected %d", field.ErrDimensionMismatch, len(w), k)
	}
	//
	codeword := make(field.Vector, n)
	//
	for i, row := range g {
		scaled, err := e.field.ScaleVec(w[i], row)
		if err != nil {
			return nil, err
		}
		//
		if codeword, err = e.field.AddVec(codeword, scaled); err != nil {
			return nil, err
		}
	}
	//
	return codeword, nil
}

// Syndrome computes H·rᵗ for a parity-check matrix H and received word r.  The
// syndrome is zero exactly when r is a codeword.
func (e Engine) Syndrome(h Matrix, r field.Vector) (field.Vector, error) {
	if _, _, err := h.Dims(); err != nil {
		return nil, err
	}
	//
	syndrome := make(field.Vector, len(h))
	//
	for i, row := range h {
		var err error
		//
		if syndrome[i], err = e.field.DotVec(row, r); err != nil {
			return nil, err
		}
	}
	//
	return syndrome, nil
}
