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
package math

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_IsPrime_Small(t *testing.T) {
	primes := []uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47}
	//
	var found []uint64
	//
	for n := uint64(0); n < 50; n++ {
		if IsPrime(n) {
			found = append(found, n)
		}
	}
	//
	require.Equal(t, primes, found)
}

func Test_IsPrime_Composite(t *testing.T) {
	for _, n := range []uint64{4, 6, 9, 25, 35, 49, 121, 169, 1001, 7919 * 7927} {
		require.False(t, IsPrime(n), "n=%d", n)
	}
}

func Test_IsPrime_BruteForce(t *testing.T) {
	for n := uint64(2); n < 2000; n++ {
		require.Equal(t, bruteForcePrime(n), IsPrime(n), "n=%d", n)
	}
}

func bruteForcePrime(n uint64) bool {
	for i := uint64(2); i < n; i++ {
		if n%i == 0 {
			return false
		}
	}

	return n >= 2
}
