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
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/consensys/go-galois/pkg/field"
	"github.com/consensys/go-galois/pkg/linalg"
	"github.com/consensys/go-galois/pkg/util/termio"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// GetFlag gets an expected flag, or panic if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetUint gets an expected unsigned integer, or panic if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// session bundles together everything a subcommand needs: the field, an engine
// over it and the output stream.
type session struct {
	field  field.Field
	engine linalg.Engine
	out    io.Writer
	ansi   bool
}

// Construct the field (and engine) requested on the command line.  In verbose
// mode, the field logs its derivations and the engine prints every step of a
// row reduction.
func newSession(cmd *cobra.Command) (*session, error) {
	f, err := field.New(GetUint(cmd, "field"))
	if err != nil {
		return nil, err
	}
	//
	s := &session{out: cmd.OutOrStdout(), ansi: GetFlag(cmd, "ansi-escapes")}
	//
	if GetFlag(cmd, "verbose") {
		f = f.WithLogger(log.StandardLogger())
		s.engine = linalg.New(f).WithObserver(s.printStep)
	} else {
		s.engine = linalg.New(f)
	}
	//
	s.field = f
	log.Debugf("using %s (%s arithmetic)", f, f.Kind())
	//
	return s, nil
}

func (s *session) element(text string) (field.Element, error) {
	return s.field.Parse(text)
}

func (s *session) vector(text string) (field.Vector, error) {
	return s.field.ParseVec(text)
}

func (s *session) matrix(text string) (linalg.Matrix, error) {
	return linalg.ParseMatrix(s.field, text)
}

func (s *session) println(val any) error {
	_, err := fmt.Fprintln(s.out, val)
	return err
}

// Print a result matrix.
func (s *session) printMatrix(m linalg.Matrix) error {
	return s.printGrid(m, "", nil, termio.NewAnsiEscape())
}

// Print a single step of a row reduction, highlighting the affected rows.
func (s *session) printStep(step linalg.Step) {
	var escape = termio.NewAnsiEscape()
	//
	switch step.Kind {
	case linalg.StepExchange:
		escape = escape.FgColour(termio.TERM_YELLOW)
	case linalg.StepAddRow:
		escape = escape.FgColour(termio.TERM_GREEN)
	case linalg.StepScale:
		escape = escape.FgColour(termio.TERM_CYAN)
	case linalg.StepPivotDown, linalg.StepPivotUp:
		escape = termio.BoldAnsiEscape().FgColour(termio.TERM_BLUE)
	}
	//
	fmt.Fprintln(s.out)
	//
	if err := s.printGrid(step.Matrix, step.Describe(s.field), step.Rows(), escape); err != nil {
		log.Error(err)
	}
}

func (s *session) printGrid(m linalg.Matrix, annotation string, highlight []uint, escape termio.AnsiEscape) error {
	rows, cols, err := m.Dims()
	if err != nil {
		return err
	}
	//
	grid := termio.NewGridPrinter(cols, rows)
	grid.AnsiEscapes(s.ansi)
	//
	for i, row := range m {
		for j, x := range row {
			grid.Set(uint(j), uint(i), s.field.Format(x))
		}
	}
	//
	for _, row := range highlight {
		grid.SetRowEscape(row, escape)
	}
	//
	return grid.Print(s.out, annotation)
}
