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
	"github.com/consensys/go-galois/pkg/linalg"
	"github.com/spf13/cobra"
)

// matrixOp is an operation over a single matrix argument, whose result is
// printed by the caller.
type matrixOp func(*session, linalg.Matrix) error

func matrixCommands() []*cobra.Command {
	return []*cobra.Command{
		matrixCommand("rref m", "Reduce a matrix to reduced row echelon form.", func(s *session, m linalg.Matrix) error {
			r, err := s.engine.RREF(m)
			if err != nil {
				return err
			}
			//
			return s.printMatrix(r)
		}),
		matrixCommand("rank m", "Compute the rank of a matrix.", func(s *session, m linalg.Matrix) error {
			r, err := s.engine.Rank(m)
			if err != nil {
				return err
			}
			//
			return s.println(r)
		}),
		matrixCommand("independent m", "Check whether the rows of a matrix are linearly independent.",
			func(s *session, m linalg.Matrix) error {
				r, err := s.engine.IsLinearlyIndependent(m)
				if err != nil {
					return err
				}
				//
				return s.println(r)
			}),
		matrixCommand("invert m", "Compute the inverse of a square matrix.", func(s *session, m linalg.Matrix) error {
			r, err := s.engine.Inverse(m)
			if err != nil {
				return err
			}
			//
			return s.printMatrix(r)
		}),
		newMultiplyCommand(),
	}
}

func matrixCommand(use string, short string, op matrixOp) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd)
			if err != nil {
				return err
			}
			//
			m, err := s.matrix(args[0])
			if err != nil {
				return err
			}
			//
			return op(s, m)
		},
	}
}

func newMultiplyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "multiply a b",
		Short: "Multiply two matrices.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd)
			if err != nil {
				return err
			}
			//
			a, err := s.matrix(args[0])
			if err != nil {
				return err
			}
			//
			b, err := s.matrix(args[1])
			if err != nil {
				return err
			}
			//
			c, err := s.engine.Multiply(a, b)
			if err != nil {
				return err
			}
			//
			return s.printMatrix(c)
		},
	}
}
