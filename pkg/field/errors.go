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

import "errors"

// ErrUnsupportedField is returned when constructing a field whose size is
// neither prime nor 4.
var ErrUnsupportedField = errors.New("unsupported field")

// ErrElementNotInField is returned when an operand does not belong to the
// element set of the field in question.  Modular fields reduce any value, so
// this arises only for GF(4) (and for text which cannot be parsed).
var ErrElementNotInField = errors.New("element not in field")

// ErrDimensionMismatch is returned when vectors (or matrix rows) of differing
// lengths are combined.
var ErrDimensionMismatch = errors.New("dimension mismatch")

// ErrNotInvertible is returned when the multiplicative inverse of zero is
// requested.
var ErrNotInvertible = errors.New("element not invertible")
