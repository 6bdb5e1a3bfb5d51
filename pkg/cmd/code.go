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

func codeCommands() []*cobra.Command {
	return []*cobra.Command{
		newStandardCommand(),
		matrixCommand("parity g", "Construct a parity-check matrix for a generator matrix.",
			func(s *session, g linalg.Matrix) error {
				h, err := s.engine.CreateParityCheckMatrix(g)
				if err != nil {
					return err
				}
				//
				return s.printMatrix(h)
			}),
		newCheckCommand(),
		newEncodeCommand(),
		newSyndromeCommand(),
	}
}

func newStandardCommand() *cobra.Command {
	standardCmd := &cobra.Command{
		Use:   "standard m",
		Short: "Check whether a matrix is in standard form.",
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
			form := linalg.GeneratorForm
			if GetFlag(cmd, "parity") {
				form = linalg.ParityForm
			}
			//
			return s.println(s.engine.IsStandardForm(m, form))
		},
	}
	//
	standardCmd.Flags().Bool("parity", false, "check for parity-check standard form [A | I] rather than [I | A]")
	//
	return standardCmd
}

func newCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check g h",
		Short: "Check whether h is a parity-check matrix for the generator matrix g.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd)
			if err != nil {
				return err
			}
			//
			g, err := s.matrix(args[0])
			if err != nil {
				return err
			}
			//
			h, err := s.matrix(args[1])
			if err != nil {
				return err
			}
			//
			ok, err := s.engine.IsParityCheckMatrix(g, h)
			if err != nil {
				return err
			}
			//
			return s.println(ok)
		},
	}
}

func newEncodeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "encode g w",
		Short: "Encode a message word using a generator matrix.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd)
			if err != nil {
				return err
			}
			//
			g, err := s.matrix(args[0])
			if err != nil {
				return err
			}
			//
			w, err := s.vector(args[1])
			if err != nil {
				return err
			}
			//
			c, err := s.engine.Encode(g, w)
			if err != nil {
				return err
			}
			//
			return s.println(s.field.FormatVec(c))
		},
	}
}

func newSyndromeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "syndrome h r",
		Short: "Compute the syndrome of a received word against a parity-check matrix.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd)
			if err != nil {
				return err
			}
			//
			h, err := s.matrix(args[0])
			if err != nil {
				return err
			}
			//
			r, err := s.vector(args[1])
			if err != nil {
				return err
			}
			//
			z, err := s.engine.Syndrome(h, r)
			if err != nil {
				return err
			}
			//
			return s.println(s.field.FormatVec(z))
		},
	}
}
