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
	"strconv"
	"strings"
)

// Parse reads an element of this field from a string.  Modular fields accept
// any (possibly negative) integer, which is then reduced.  GF(4) accepts 0, 1
// and the symbols α and β (or, equivalently, a and b).
func (f Field) Parse(text string) (Element, error) {
	text = strings.TrimSpace(text)
	//
	if f.kind == Extension4 {
		switch strings.ToLower(text) {
		case "0":
			return Zero, nil
		case "1":
			return One, nil
		case "a", "α":
			return Alpha, nil
		case "b", "β":
			return Beta, nil
		}
		//
		return 0, fmt.Errorf("%w: \"%s\" not in %s", ErrElementNotInField, text, f)
	}
	//
	val, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: \"%s\" is not an integer", ErrElementNotInField, text)
	}
	//
	return f.FromInt(val)
}

// ParseVec reads a vector from a string of whitespace and/or comma separated
// elements, optionally enclosed in square brackets.
func (f Field) ParseVec(text string) (Vector, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "[")
	text = strings.TrimSuffix(text, "]")
	//
	tokens := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	//
	vector := make(Vector, len(tokens))
	//
	for i, token := range tokens {
		var err error
		//
		if vector[i], err = f.Parse(token); err != nil {
			return nil, err
		}
	}
	//
	return vector, nil
}

// Format returns the printable form of an element, using α and β for the
// non-trivial elements of GF(4).
func (f Field) Format(x Element) string {
	if f.kind == Extension4 && x < 4 {
		return gf4Names[x]
	}
	//
	return strconv.FormatUint(uint64(x), 10)
}

// FormatVec returns the printable form of a vector, such as "[1 α 0]".
func (f Field) FormatVec(v Vector) string {
	items := make([]string, len(v))
	//
	for i, x := range v {
		items[i] = f.Format(x)
	}
	//
	return fmt.Sprintf("[%s]", strings.Join(items, " "))
}
