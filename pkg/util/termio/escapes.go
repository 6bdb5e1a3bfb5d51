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
package termio

import "fmt"

// Colour identifies one of the eight standard terminal colours.
type Colour uint

// TERM_BLACK represents black
const TERM_BLACK = Colour(0)

// TERM_RED represents red
const TERM_RED = Colour(1)

// TERM_GREEN represents green
const TERM_GREEN = Colour(2)

// TERM_YELLOW represents yellow
const TERM_YELLOW = Colour(3)

// TERM_BLUE represents blue
const TERM_BLUE = Colour(4)

// TERM_MAGENTA represents magenta
const TERM_MAGENTA = Colour(5)

// TERM_CYAN represents cyan
const TERM_CYAN = Colour(6)

// TERM_WHITE represents white
const TERM_WHITE = Colour(7)

// AnsiEscape represents an ANSI escape code used for formatting text in a terminal.
type AnsiEscape struct {
	escape string
	count  uint
}

// NewAnsiEscape construct an empty escape
func NewAnsiEscape() AnsiEscape {
	return AnsiEscape{"\033", 0}
}

// ResetAnsiEscape constructs a reset term.
func ResetAnsiEscape() AnsiEscape {
	return AnsiEscape{"\033[0", 1}
}

// BoldAnsiEscape constructs a bold term.
func BoldAnsiEscape() AnsiEscape {
	return AnsiEscape{"\033[1", 1}
}

// FgColour sets the foreground colour
func (p AnsiEscape) FgColour(col Colour) AnsiEscape {
	return p.with(uint(col) + 30)
}

// BgColour sets the background colour
func (p AnsiEscape) BgColour(col Colour) AnsiEscape {
	return p.with(uint(col) + 40)
}

func (p AnsiEscape) with(code uint) AnsiEscape {
	if p.count > 0 {
		return AnsiEscape{fmt.Sprintf("%s;%d", p.escape, code), p.count + 1}
	}
	//
	return AnsiEscape{fmt.Sprintf("%s[%d", p.escape, code), p.count + 1}
}

// Build constructs the final escape
func (p AnsiEscape) Build() string {
	return fmt.Sprintf("%sm", p.escape)
}

// Wrap surrounds some text with this escape, resetting afterwards.
func (p AnsiEscape) Wrap(text string) string {
	return p.Build() + text + ResetAnsiEscape().Build()
}
