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
	"github.com/consensys/go-galois/pkg/util/math"
	log "github.com/sirupsen/logrus"
)

// arithmetic captures the operations which differ between field kinds.  Every
// exported operation on Field validates its operands once and then dispatches
// here, hence operands are always in canonical form and inverse is never
// called with zero or one.
type arithmetic interface {
	// normalise a raw value, or return false if it is not in the field.
	normalise(x Element) (Element, bool)
	add(x, y Element) Element
	mul(x, y Element) Element
	neg(x Element) Element
	inverse(x Element, logger log.FieldLogger) Element
	exp(x Element, n uint64) Element
}

// modular arithmetic over GF(p) for some prime p.
type modular struct {
	p uint32
}

func (m modular) normalise(x Element) (Element, bool) {
	return x % Element(m.p), true
}

func (m modular) add(x, y Element) Element {
	return Element((uint64(x) + uint64(y)) % uint64(m.p))
}

func (m modular) mul(x, y Element) Element {
	return Element((uint64(x) * uint64(y)) % uint64(m.p))
}

func (m modular) neg(x Element) Element {
	// p - 0 = p is not a valid representative
	if x == Zero {
		return Zero
	}
	//
	return Element(m.p) - x
}

func (m modular) exp(x Element, n uint64) Element {
	return Element(math.PowMod(uint64(x), n, uint64(m.p)))
}

// inverse applies the extended Euclidean algorithm to (p, a), tracking only the
// Bézout coefficient of a.  Since p is prime, gcd(p, a) = 1 for any non-zero a.
func (m modular) inverse(a Element, logger log.FieldLogger) Element {
	var (
		r, nr = int64(m.p), int64(a)
		t, nt = int64(0), int64(1)
	)
	//
	for nr != 0 {
		q := r / nr
		rem := r - q*nr
		//
		if rem != 0 {
			logger.Debugf("%d = %d * %d + %d   ==>   %d = %d - %d * %d   ==>   t = %d - %d * %d = %d",
				r, q, nr, rem, rem, r, q, nr, t, q, nt, t-q*nt)
		} else {
			logger.Debugf("%d = %d * %d + %d", r, q, nr, rem)
		}
		//
		t, nt = nt, t-q*nt
		r, nr = nr, rem
	}
	//
	if t < 0 {
		logger.Debugf("%d mod %d = %d", t, m.p, t+int64(m.p))
		t += int64(m.p)
	}
	//
	logger.Debugf("multiplicative inverse of %d in GF(%d) is %d", a, m.p, t)
	//
	return Element(t)
}

// extension4 is the (non-prime) field GF(4).  Elements are encoded in the
// polynomial basis of GF(2)[x]/(x²+x+1), so α = x and β = x+1, and all
// arithmetic is by table lookup.
type extension4 struct{}

func (extension4) normalise(x Element) (Element, bool) {
	return x, x < 4
}

func (extension4) add(x, y Element) Element {
	return gf4Add[x][y]
}

func (extension4) mul(x, y Element) Element {
	return gf4Mul[x][y]
}

// characteristic 2, so every element is its own additive inverse
func (extension4) neg(x Element) Element {
	return x
}

func (extension4) inverse(x Element, logger log.FieldLogger) Element {
	inv := gf4Inverse[x]
	logger.Debugf("multiplicative inverse of %s in GF(4) is %s", gf4Names[x], gf4Names[inv])
	//
	return inv
}

// exp by repeated squaring
func (e extension4) exp(x Element, n uint64) Element {
	result := One
	//
	for ; n > 0; n >>= 1 {
		if n&1 == 1 {
			result = e.mul(result, x)
		}
		//
		x = e.mul(x, x)
	}
	//
	return result
}
