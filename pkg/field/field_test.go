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
	"bytes"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	GF2  = MustNew(2)
	GF3  = MustNew(3)
	GF4  = MustNew(4)
	GF5  = MustNew(5)
	GF7  = MustNew(7)
	GF11 = MustNew(11)
)

const (
	a = Alpha
	b = Beta
)

func Test_New_Supported(t *testing.T) {
	for _, size := range []uint{2, 3, 5, 7, 11, 13, 101, 65537} {
		f, err := New(size)
		require.NoError(t, err)
		assert.Equal(t, Modular, f.Kind())
		assert.Equal(t, size, f.Size())
	}
	//
	f, err := New(4)
	require.NoError(t, err)
	assert.Equal(t, Extension4, f.Kind())
	assert.Equal(t, "GF(4)", f.String())
}

func Test_New_Unsupported(t *testing.T) {
	for _, size := range []uint{0, 1, 6, 8, 9, 12, 25, 100} {
		_, err := New(size)
		require.ErrorIs(t, err, ErrUnsupportedField, "size=%d", size)
	}
}

func Test_Identity(t *testing.T) {
	require.Equal(t, Element(6), must(GF7.Identity(55)))
	require.Equal(t, Element(0), must(GF7.Identity(49)))
	require.Equal(t, b, must(GF4.Identity(b)))
	//
	_, err := GF4.Identity(10)
	require.ErrorIs(t, err, ErrElementNotInField)
}

func Test_FromInt(t *testing.T) {
	require.Equal(t, Element(2), must(GF3.FromInt(-1)))
	require.Equal(t, Element(5), must(GF7.FromInt(-2)))
	require.Equal(t, Element(0), must(GF11.FromInt(-22)))
	require.Equal(t, One, must(GF4.FromInt(1)))
	//
	_, err := GF4.FromInt(2)
	require.ErrorIs(t, err, ErrElementNotInField)
}

func Test_Add(t *testing.T) {
	require.Equal(t, Element(0), must(GF11.Add(0, 0)))
	require.Equal(t, Element(0), must(GF2.Add(1, 1)))
	require.Equal(t, Element(1), must(GF2.Add(0, 1)))
	require.Equal(t, Element(0), must(GF3.Add(1, 2)))
	require.Equal(t, Element(2), must(GF3.Add(5, 30)))
	require.Equal(t, Element(0), must(GF7.Add(3, 4)))
	require.Equal(t, Element(6), must(GF7.Add(49, 6)))
	require.Equal(t, Element(0), must(GF4.Add(0, 0)))
	require.Equal(t, Element(0), must(GF4.Add(a, a)))
	require.Equal(t, Element(0), must(GF4.Add(1, 1)))
	require.Equal(t, Element(0), must(GF4.Add(b, b)))
	require.Equal(t, b, must(GF4.Add(a, 1)))
	require.Equal(t, b, must(GF4.Add(1, a)))
	require.Equal(t, a, must(GF4.Add(0, a)))
	require.Equal(t, One, must(GF4.Add(a, b)))
	require.Equal(t, a, must(GF4.Add(1, b)))
}

func Test_Sub(t *testing.T) {
	require.Equal(t, Element(5), must(GF7.Sub(1, 3)))
	require.Equal(t, Element(0), must(GF11.Sub(20, 9)))
	require.Equal(t, b, must(GF4.Sub(a, 1)))
}

func Test_Mul(t *testing.T) {
	require.Equal(t, Element(0), must(GF2.Mul(0, 0)))
	require.Equal(t, Element(0), must(GF4.Mul(0, 0)))
	require.Equal(t, Element(0), must(GF4.Mul(0, a)))
	require.Equal(t, Element(0), must(GF4.Mul(b, 0)))
	require.Equal(t, Element(0), must(GF4.Mul(1, 0)))
	require.Equal(t, Element(0), must(GF7.Mul(1, 7)))
	require.Equal(t, Element(3), must(GF7.Mul(2, 5)))
	require.Equal(t, Element(4), must(GF7.Mul(346, 55)))
	require.Equal(t, a, must(GF4.Mul(1, a)))
	require.Equal(t, b, must(GF4.Mul(a, a)))
	require.Equal(t, a, must(GF4.Mul(b, b)))
	require.Equal(t, One, must(GF4.Mul(b, a)))
	require.Equal(t, One, must(GF4.Mul(a, b)))
	//
	_, err := GF4.Mul(a, 10)
	require.ErrorIs(t, err, ErrElementNotInField)
	_, err = GF4.Add(10, a)
	require.ErrorIs(t, err, ErrElementNotInField)
}

func Test_Inverse(t *testing.T) {
	require.Equal(t, One, must(GF2.Inverse(1)))
	require.Equal(t, One, must(GF4.Mul(a, must(GF4.Inverse(a)))))
	require.Equal(t, One, must(GF4.Mul(b, must(GF4.Inverse(b)))))
	require.Equal(t, b, must(GF4.Inverse(a)))
	require.Equal(t, a, must(GF4.Inverse(b)))
	require.Equal(t, One, must(GF4.Inverse(1)))
	require.Equal(t, One, must(GF7.Mul(6, must(GF7.Inverse(6)))))
	require.Equal(t, One, must(GF7.Mul(5, must(GF7.Inverse(5)))))
	require.Equal(t, One, must(GF7.Mul(2, must(GF7.Inverse(2)))))
	require.Equal(t, One, must(GF7.Inverse(1)))
	require.Equal(t, One, must(GF11.Mul(9, must(GF11.Inverse(9)))))
	require.Equal(t, One, must(GF11.Mul(20, must(GF11.Inverse(9)))))
	require.Equal(t, One, must(GF11.Mul(9, must(GF11.Inverse(20)))))
}

func Test_Inverse_Zero(t *testing.T) {
	for _, f := range []Field{GF2, GF3, GF4, GF5, GF7, GF11} {
		_, err := f.Inverse(0)
		require.ErrorIs(t, err, ErrNotInvertible, "%s", f)
	}
	// zero after reduction
	_, err := GF7.Inverse(14)
	require.ErrorIs(t, err, ErrNotInvertible)
}

func Test_Inverse_AllPrimes(t *testing.T) {
	for _, p := range []uint{2, 3, 5, 7, 11, 13, 17, 101, 983} {
		f := MustNew(p)
		//
		for x := Element(1); x < Element(p); x++ {
			require.Equal(t, One, must(f.Mul(x, must(f.Inverse(x)))), "x=%d, p=%d", x, p)
		}
	}
}

func Test_Inverse_Logged(t *testing.T) {
	var (
		buf    bytes.Buffer
		logger = log.New()
	)
	//
	logger.SetOutput(&buf)
	logger.SetLevel(log.DebugLevel)
	//
	f := MustNew(103).WithLogger(logger)
	require.Equal(t, One, must(f.Mul(63, must(f.Inverse(63)))))
	require.Contains(t, buf.String(), "103 = 1 * 63 + 40")
	require.Contains(t, buf.String(), "multiplicative inverse of 63")
	// silencing again
	buf.Reset()
	_ = must(f.WithLogger(nil).Inverse(63))
	require.Empty(t, buf.String())
}

func Test_Neg(t *testing.T) {
	require.Equal(t, One, must(GF2.Neg(1)))
	require.Equal(t, One, must(GF4.Neg(1)))
	require.Equal(t, a, must(GF4.Neg(a)))
	require.Equal(t, b, must(GF4.Neg(b)))
	require.Equal(t, Zero, must(GF7.Neg(0)))
	require.Equal(t, Zero, must(GF7.Neg(7)))
	require.Equal(t, Element(0), must(GF7.Add(5, must(GF7.Neg(5)))))
}

func Test_Neg_AllFields(t *testing.T) {
	for _, f := range []Field{GF2, GF3, GF4, GF5, GF7, GF11} {
		for _, x := range f.Elements() {
			neg := must(f.Neg(x))
			require.True(t, f.Contains(neg), "-%d in %s", x, f)
			require.Equal(t, Zero, must(f.Add(x, neg)), "x=%d in %s", x, f)
		}
	}
}

func Test_Exp(t *testing.T) {
	// Fermat's Little Theorem
	require.Equal(t, Element(0), must(GF5.Exp(0, 4)))
	require.Equal(t, Element(1), must(GF5.Exp(2, 4)))
	require.Equal(t, Element(1), must(GF5.Exp(3, 4)))
	require.Equal(t, Element(1), must(GF5.Exp(4, 4)))
	require.Equal(t, Element(1), must(GF11.Exp(8, 10)))
	//
	require.Equal(t, b, must(GF4.Exp(a, 2)))
	require.Equal(t, One, must(GF4.Exp(a, 3)))
	require.Equal(t, a, must(GF4.Exp(a, 4)))
	require.Equal(t, One, must(GF4.Exp(b, 3)))
	require.Equal(t, Zero, must(GF4.Exp(0, 3)))
}

func Test_Exp_Zero(t *testing.T) {
	for _, f := range []Field{GF2, GF4, GF7} {
		for _, x := range f.Elements() {
			require.Equal(t, One, must(f.Exp(x, 0)), "%d^0 in %s", x, f)
		}
	}
}

func Test_Exp_Repeated(t *testing.T) {
	for _, f := range []Field{GF4, GF7, GF11} {
		for _, x := range f.Elements() {
			acc := One
			//
			for n := uint64(0); n < 12; n++ {
				require.Equal(t, acc, must(f.Exp(x, n)), "%d^%d in %s", x, n, f)
				acc = must(f.Mul(acc, x))
			}
		}
	}
}

func Test_GF4_Tables(t *testing.T) {
	elements := GF4.Elements()
	// field axioms, checked exhaustively
	for _, x := range elements {
		require.Equal(t, x, must(GF4.Add(x, 0)))
		require.Equal(t, x, must(GF4.Mul(x, 1)))
		require.Equal(t, Zero, must(GF4.Add(x, x)))
		//
		for _, y := range elements {
			require.Equal(t, must(GF4.Add(x, y)), must(GF4.Add(y, x)))
			require.Equal(t, must(GF4.Mul(x, y)), must(GF4.Mul(y, x)))
			//
			for _, z := range elements {
				lhs := must(GF4.Mul(x, must(GF4.Add(y, z))))
				rhs := must(GF4.Add(must(GF4.Mul(x, y)), must(GF4.Mul(x, z))))
				require.Equal(t, lhs, rhs, "x=%d, y=%d, z=%d", x, y, z)
			}
		}
	}
}

func Test_Parse(t *testing.T) {
	require.Equal(t, Element(5), must(GF7.Parse("-2")))
	require.Equal(t, Element(4), must(GF7.Parse(" 11 ")))
	require.Equal(t, a, must(GF4.Parse("a")))
	require.Equal(t, a, must(GF4.Parse("α")))
	require.Equal(t, b, must(GF4.Parse("B")))
	require.Equal(t, b, must(GF4.Parse("β")))
	//
	_, err := GF4.Parse("2")
	require.ErrorIs(t, err, ErrElementNotInField)
	_, err = GF7.Parse("x")
	require.ErrorIs(t, err, ErrElementNotInField)
}

func Test_Format(t *testing.T) {
	require.Equal(t, "α", GF4.Format(a))
	require.Equal(t, "β", GF4.Format(b))
	require.Equal(t, "1", GF4.Format(One))
	require.Equal(t, "6", GF7.Format(6))
	require.Equal(t, "[1 α β 0]", GF4.FormatVec(Vector{1, a, b, 0}))
}

func must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	//
	return val
}
