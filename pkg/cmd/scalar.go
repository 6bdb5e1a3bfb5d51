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
	"strconv"
	"strings"

	"github.com/consensys/go-galois/pkg/field"
	"github.com/spf13/cobra"
)

// binaryOp is an arithmetic operation taking two field elements.
type binaryOp func(field.Field, field.Element, field.Element) (field.Element, error)

// unaryOp is an arithmetic operation taking one field element.
type unaryOp func(field.Field, field.Element) (field.Element, error)

func scalarCommands() []*cobra.Command {
	return []*cobra.Command{
		binaryCommand("add", "Add two field elements.", field.Field.Add),
		binaryCommand("sub", "Subtract one field element from another.", field.Field.Sub),
		binaryCommand("mul", "Multiply two field elements.", field.Field.Mul),
		unaryCommand("neg", "Negate a field element.", field.Field.Neg),
		unaryCommand("inv", "Compute the multiplicative inverse of a field element.", field.Field.Inverse),
		newPowCommand(),
		newDotCommand(),
		newElementsCommand(),
	}
}

func binaryCommand(name string, short string, op binaryOp) *cobra.Command {
	return &cobra.Command{
		Use:   fmt.Sprintf("%s x y", name),
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd)
			if err != nil {
				return err
			}
			//
			x, err := s.element(args[0])
			if err != nil {
				return err
			}
			//
			y, err := s.element(args[1])
			if err != nil {
				return err
			}
			//
			z, err := op(s.field, x, y)
			if err != nil {
				return err
			}
			//
			return s.println(s.field.Format(z))
		},
	}
}

func unaryCommand(name string, short string, op unaryOp) *cobra.Command {
	return &cobra.Command{
		Use:   fmt.Sprintf("%s x", name),
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd)
			if err != nil {
				return err
			}
			//
			x, err := s.element(args[0])
			if err != nil {
				return err
			}
			//
			z, err := op(s.field, x)
			if err != nil {
				return err
			}
			//
			return s.println(s.field.Format(z))
		},
	}
}

func newPowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "pow x n",
		Short: "Raise a field element to a non-negative power.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd)
			if err != nil {
				return err
			}
			//
			x, err := s.element(args[0])
			if err != nil {
				return err
			}
			//
			n, err := strconv.ParseUint(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid exponent %q: %w", args[1], err)
			}
			//
			z, err := s.field.Exp(x, n)
			if err != nil {
				return err
			}
			//
			return s.println(s.field.Format(z))
		},
	}
}

func newDotCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dot u v",
		Short: "Compute the dot product of two vectors.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd)
			if err != nil {
				return err
			}
			//
			u, err := s.vector(args[0])
			if err != nil {
				return err
			}
			//
			v, err := s.vector(args[1])
			if err != nil {
				return err
			}
			//
			z, err := s.field.DotVec(u, v)
			if err != nil {
				return err
			}
			//
			return s.println(s.field.Format(z))
		},
	}
}

func newElementsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "elements",
		Short: "List the elements of the field.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd)
			if err != nil {
				return err
			}
			//
			var names []string
			//
			for _, x := range s.field.Elements() {
				names = append(names, s.field.Format(x))
			}
			//
			return s.println(strings.Join(names, " "))
		},
	}
}
