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

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// GridPrinter prints a grid of cells as rows bracketed by vertical bars, such
// as "| 1 0 α |", with an optional annotation alongside the first row.
type GridPrinter struct {
	widths        []uint
	rows          [][]string
	escapes       []string
	enableEscapes bool
}

// NewGridPrinter constructs a new grid with given dimensions.
func NewGridPrinter(width uint, height uint) *GridPrinter {
	widths := make([]uint, width)
	rows := make([][]string, height)
	escapes := make([]string, height)
	// Construct the grid
	for i := uint(0); i < height; i++ {
		rows[i] = make([]string, width)
	}

	return &GridPrinter{widths, rows, escapes, true}
}

// Set the contents of a given cell in this grid
func (p *GridPrinter) Set(col uint, row uint, val string) {
	p.widths[col] = max(p.widths[col], uint(utf8.RuneCountInString(val)))
	p.rows[row][col] = val
}

// Get the contents of a given cell in this grid
func (p *GridPrinter) Get(col uint, row uint) string {
	return p.rows[row][col]
}

// Height returns the height of this grid.
func (p *GridPrinter) Height() uint {
	return uint(len(p.rows))
}

// SetRowEscape set the escape to use when printing a given row.
func (p *GridPrinter) SetRowEscape(row uint, escape AnsiEscape) {
	p.escapes[row] = escape.Build()
}

// AnsiEscapes enables or disables the use of ANSI escapes (e.g. for showing
// colour).  Disabling escapes is useful in environments that don't support
// escapes as, otherwise, you get a lot of visible excape characters being
// printed.
func (p *GridPrinter) AnsiEscapes(enable bool) {
	p.enableEscapes = enable
}

// Print the grid, with an annotation alongside the first row.
func (p *GridPrinter) Print(out io.Writer, annotation string) error {
	var builder strings.Builder
	//
	for i, row := range p.rows {
		escape := p.escapes[i]
		//
		builder.WriteString("|")
		// Print colour (if applicable)
		if p.enableEscapes && escape != "" {
			builder.WriteString(escape)
		}
		//
		for j, col := range row {
			padding := int(p.widths[j]) - utf8.RuneCountInString(col)
			builder.WriteString(" ")
			builder.WriteString(strings.Repeat(" ", max(0, padding)))
			builder.WriteString(col)
		}
		// Cancel colour (if applicable)
		if p.enableEscapes && escape != "" {
			builder.WriteString(ResetAnsiEscape().Build())
		}
		//
		builder.WriteString(" |")
		//
		if i == 0 && annotation != "" {
			builder.WriteString("   ")
			builder.WriteString(annotation)
		}
		//
		builder.WriteString("\n")
	}
	//
	_, err := fmt.Fprint(out, builder.String())
	//
	return err
}
