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

// IsPrime determines whether n is prime.  This is only ever used to classify
// the sizes of finite fields, which are small, hence trial division by numbers
// of the form 6k±1 up to √n is perfectly adequate.
func IsPrime(n uint64) bool {
	switch {
	case n < 2:
		return false
	case n == 2 || n == 3:
		return true
	case n%2 == 0 || n%3 == 0:
		return false
	}
	//
	for i, w := uint64(5), uint64(2); i*i <= n; i += w {
		if n%i == 0 {
			return false
		}
		// alternate between 6k-1 and 6k+1
		w = 6 - w
	}
	//
	return true
}
