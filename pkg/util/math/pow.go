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

// PowMod raises a given base to a given power modulo m.  Note that, by
// convention, any base raised to the power zero is one (including zero
// itself), unless the modulus is one.
func PowMod(base uint64, exp uint64, m uint64) uint64 {
	result := uint64(1) % m
	base %= m
	//
	for exp > 0 {
		if exp&1 == 1 {
			result = (result * base) % m
		}
		// div 2
		exp >>= 1
		//
		base = (base * base) % m
	}
	//
	return result
}
