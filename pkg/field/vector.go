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
package field

import (
	"fmt"
	"slices"
	"strings"
)

// Vector is an ordered sequence of elements over a single field.
type Vector []Element

// Clone returns an independent copy of this vector.
func (v Vector) Clone() Vector {
	return slices.Clone(v)
}

// IsZero checks whether every entry of this vector is zero.
func (v Vector) IsZero() bool {
	for _, x := range v {
		if x != Zero {
			return false
		}
	}
	//
	return true
}

func (v Vector) String() string {
	var builder strings.Builder
	//
	builder.WriteString("[")
	//
	for i, x := range v {
		if i != 0 {
			builder.WriteString(" ")
		}
		//
		builder.WriteString(fmt.Sprintf("%d", x))
	}
	//
	builder.WriteString("]")
	//
	return builder.String()
}

// IdentityVec returns the canonical representation of every entry of v.
func (f Field) IdentityVec(v Vector) (Vector, error) {
	var (
		err    error
		result = make(Vector, len(v))
	)
	//
	for i, x := range v {
		if result[i], err = f.Identity(x); err != nil {
			return nil, err
		}
	}
	//
	return result, nil
}

// AddVec returns the elementwise sum u + v.
func (f Field) AddVec(u, v Vector) (Vector, error) {
	var err error
	//
	if len(u) != len(v) {
		return nil, fmt.Errorf("%w: cannot add vectors of length %d and %d", ErrDimensionMismatch, len(u), len(v))
	}
	//
	result := make(Vector, len(u))
	//
	for i := range u {
		if result[i], err = f.Add(u[i], v[i]); err != nil {
			return nil, err
		}
	}
	//
	return result, nil
}

// NegVec returns the elementwise additive inverse -v.
func (f Field) NegVec(v Vector) (Vector, error) {
	var (
		err    error
		result = make(Vector, len(v))
	)
	//
	for i, x := range v {
		if result[i], err = f.Neg(x); err != nil {
			return nil, err
		}
	}
	//
	return result, nil
}

// ScaleVec returns the vector a·v.
func (f Field) ScaleVec(a Element, v Vector) (Vector, error) {
	var (
		err    error
		result = make(Vector, len(v))
	)
	//
	for i, x := range v {
		if result[i], err = f.Mul(a, x); err != nil {
			return nil, err
		}
	}
	//
	return result, nil
}

// DotVec returns the inner product of u and v, which must have equal length.
func (f Field) DotVec(u, v Vector) (Element, error) {
	if len(u) != len(v) {
		return 0, fmt.Errorf("%w: cannot take dot product of vectors of length %d and %d",
			ErrDimensionMismatch, len(u), len(v))
	}
	//
	acc := Zero
	//
	for i := range u {
		product, err := f.Mul(u[i], v[i])
		if err != nil {
			return 0, err
		}
		//
		acc = f.arith.add(acc, product)
	}
	//
	return acc, nil
}
