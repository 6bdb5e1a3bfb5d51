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
	"io"
	stdmath "math"

	"github.com/consensys/go-galois/pkg/util/math"
	log "github.com/sirupsen/logrus"
)

// Kind distinguishes the (closed) set of supported field representations.
type Kind uint8

const (
	// Modular identifies a prime field GF(p), whose elements are the residues
	// 0..p-1.
	Modular Kind = iota
	// Extension4 identifies the field GF(4) with elements 0, 1, α and β.
	Extension4
)

func (k Kind) String() string {
	switch k {
	case Modular:
		return "modular"
	case Extension4:
		return "extension-4"
	}
	//
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Element of a field.  For a modular field this is a residue in 0..size-1,
// though arbitrary values are accepted as operands and reduced first.  For
// GF(4) this is one of the enumerated constants Zero, One, Alpha or Beta.
type Element uint32

const (
	// Zero is the additive identity in every field.
	Zero Element = 0
	// One is the multiplicative identity in every field.
	One Element = 1
	// Alpha is the generator α of GF(4), where α·α = β and α+1 = β.
	Alpha Element = 2
	// Beta is the element β = α² of GF(4).
	Beta Element = 3
)

// Field provides scalar and vector arithmetic over a finite field of a given
// size.  A field is an immutable value and can be freely shared.
type Field struct {
	kind  Kind
	size  uint32
	arith arithmetic
	log   log.FieldLogger
}

// Used whenever no logger has been attached to a field.
var silent = func() *log.Logger {
	l := log.New()
	l.SetOutput(io.Discard)
	//
	return l
}()

// New constructs a field of the given size, which must either be prime or
// exactly 4.
func New(size uint) (Field, error) {
	switch {
	case size > stdmath.MaxUint32:
		return Field{}, fmt.Errorf("%w: GF(%d) is too large", ErrUnsupportedField, size)
	case math.IsPrime(uint64(size)):
		p := uint32(size)
		return Field{Modular, p, modular{p}, silent}, nil
	case size == 4:
		return Field{Extension4, 4, extension4{}, silent}, nil
	}
	//
	return Field{}, fmt.Errorf("%w: GF(%d) is neither prime nor 4", ErrUnsupportedField, size)
}

// MustNew constructs a field of the given size, or panics if the size is not
// supported.
func MustNew(size uint) Field {
	f, err := New(size)
	if err != nil {
		panic(err)
	}
	//
	return f
}

// WithLogger returns a copy of this field which reports derivations (e.g. the
// steps of the extended Euclidean algorithm) to the given logger at debug
// level.  Passing nil silences the field again.  This never affects results.
func (f Field) WithLogger(logger log.FieldLogger) Field {
	if logger == nil {
		logger = silent
	}
	//
	f.log = logger
	//
	return f
}

// Kind returns the representation used by this field.
func (f Field) Kind() Kind {
	return f.kind
}

// Size returns the number of elements in this field.
func (f Field) Size() uint {
	return uint(f.size)
}

// Elements returns the canonical element set of this field, in order.
func (f Field) Elements() []Element {
	elements := make([]Element, f.size)
	//
	for i := range elements {
		elements[i] = Element(i)
	}
	//
	return elements
}

// Contains checks whether a given value is already in canonical form for this
// field.
func (f Field) Contains(x Element) bool {
	return uint32(x) < f.size
}

func (f Field) String() string {
	return fmt.Sprintf("GF(%d)", f.size)
}

// Identity returns the canonical representation of x in this field.  For a
// modular field this is x mod size, whilst for GF(4) x must already be one of
// the four elements.
func (f Field) Identity(x Element) (Element, error) {
	if y, ok := f.arith.normalise(x); ok {
		return y, nil
	}
	//
	return 0, f.notInField(x)
}

// FromInt returns the canonical representation of a (possibly negative)
// integer.  For GF(4) only 0 and 1 have integer representations.
func (f Field) FromInt(x int64) (Element, error) {
	if f.kind == Extension4 {
		if x != 0 && x != 1 {
			return 0, fmt.Errorf("%w: %d not in %s", ErrElementNotInField, x, f)
		}
		//
		return Element(x), nil
	}
	//
	r := x % int64(f.size)
	if r < 0 {
		r += int64(f.size)
	}
	//
	return Element(r), nil
}

// Add returns x + y.
func (f Field) Add(x, y Element) (Element, error) {
	x, y, err := f.operands(x, y)
	if err != nil {
		return 0, err
	}
	//
	return f.arith.add(x, y), nil
}

// Sub returns x - y.
func (f Field) Sub(x, y Element) (Element, error) {
	x, y, err := f.operands(x, y)
	if err != nil {
		return 0, err
	}
	//
	return f.arith.add(x, f.arith.neg(y)), nil
}

// Mul returns x * y.
func (f Field) Mul(x, y Element) (Element, error) {
	x, y, err := f.operands(x, y)
	if err != nil {
		return 0, err
	}
	//
	return f.arith.mul(x, y), nil
}

// Neg returns the additive inverse -x.  The additive inverse of zero is zero
// in every field.
func (f Field) Neg(x Element) (Element, error) {
	x, err := f.Identity(x)
	if err != nil {
		return 0, err
	}
	//
	return f.arith.neg(x), nil
}

// Inverse returns the multiplicative inverse x⁻¹, or ErrNotInvertible when x
// is zero.
func (f Field) Inverse(x Element) (Element, error) {
	x, err := f.Identity(x)
	//
	switch {
	case err != nil:
		return 0, err
	case x == Zero:
		return 0, fmt.Errorf("%w: 0 in %s", ErrNotInvertible, f)
	case x == One:
		return One, nil
	}
	//
	return f.arith.inverse(x, f.log), nil
}

// Exp returns a raised to the power n.  By convention a⁰ = 1 for every a,
// including zero.
func (f Field) Exp(a Element, n uint64) (Element, error) {
	a, err := f.Identity(a)
	if err != nil {
		return 0, err
	}
	//
	return f.arith.exp(a, n), nil
}

func (f Field) operands(x, y Element) (Element, Element, error) {
	nx, ok := f.arith.normalise(x)
	if !ok {
		return 0, 0, f.notInField(x)
	}
	//
	ny, ok := f.arith.normalise(y)
	if !ok {
		return 0, 0, f.notInField(y)
	}
	//
	return nx, ny, nil
}

func (f Field) notInField(x Element) error {
	return fmt.Errorf("%w: %d not in %s", ErrElementNotInField, x, f)
}
