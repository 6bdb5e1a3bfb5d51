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
	"errors"
	"fmt"

	"github.com/consensys/go-galois/pkg/field"
)

// ErrInvalidGeneratorMatrix is returned when a generator matrix is required,
// but the rows of the given matrix are not linearly independent.
var ErrInvalidGeneratorMatrix = errors.New("not a generator matrix")

// ErrSingularMatrix is returned when inverting a matrix which has no inverse.
var ErrSingularMatrix = errors.New("matrix not invertible")

// Engine performs linear algebra over a given field.  All arithmetic is
// delegated to the field.  An engine is an immutable value.
type Engine struct {
	field    field.Field
	observer Observer
}

// New constructs an engine over a given field.
func New(f field.Field) Engine {
	return Engine{f, nil}
}

// WithObserver returns a copy of this engine which reports every step of a
// row reduction to the given observer (or to no one, when nil).
func (e Engine) WithObserver(observer Observer) Engine {
	e.observer = observer
	//
	return e
}

// Field returns the field over which this engine operates.
func (e Engine) Field() field.Field {
	return e.field
}

// Normalise a matrix by bringing every entry into canonical form.  The result
// is always a fresh matrix, even when no entry changes.
func (e Engine) Normalise(m Matrix) (Matrix, error) {
	if _, _, err := m.Dims(); err != nil {
		return nil, err
	}
	//
	n := make(Matrix, len(m))
	//
	for i, row := range m {
		var err error
		//
		if n[i], err = e.field.IdentityVec(row); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
	}
	//
	return n, nil
}

func (e Engine) notify(kind StepKind, src, dst uint, scalar field.Element, pivot Pivot, m Matrix) {
	if e.observer != nil {
		e.observer(Step{kind, src, dst, scalar, pivot, m.Clone()})
	}
}

// The following operate on canonical elements only, hence an error indicates
// a bug in this package rather than in its caller.

func (e Engine) add(x, y field.Element) field.Element {
	return e.expect(e.field.Add(x, y))
}

func (e Engine) mul(x, y field.Element) field.Element {
	return e.expect(e.field.Mul(x, y))
}

func (e Engine) neg(x field.Element) field.Element {
	return e.expect(e.field.Neg(x))
}

func (e Engine) inverse(x field.Element) field.Element {
	return e.expect(e.field.Inverse(x))
}

func (e Engine) expect(x field.Element, err error) field.Element {
	if err != nil {
		panic(fmt.Sprintf("internal failure: %v", err))
	}
	//
	return x
}
