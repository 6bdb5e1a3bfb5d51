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
	"os"
	"runtime/debug"

	"github.com/consensys/go-galois/pkg/util/termio"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Version is filled when building with make, but *not* when installing via "go
// install".
var Version string

// NewRootCommand constructs the base command, along with all of its
// subcommands.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "galois",
		Short: "Linear algebra over small finite fields.",
		Long: `Exact arithmetic over GF(p) and GF(4), along with the linear algebra
	needed for linear codes: row reduction, rank, generator and parity-check
	matrices, and encoding.  Use --verbose to see step-by-step derivations.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if GetFlag(cmd, "version") {
				fmt.Fprintf(cmd.OutOrStdout(), "galois %s\n", version())
				return nil
			}
			//
			return cmd.Help()
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Configure log level
			if GetFlag(cmd, "verbose") {
				log.SetLevel(log.DebugLevel)
			} else {
				log.SetLevel(log.InfoLevel)
			}
		},
	}
	//
	rootCmd.Flags().Bool("version", false, "Report version of this executable")
	rootCmd.PersistentFlags().UintP("field", "q", 2, "size of the field (a prime, or 4)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "show step-by-step derivations")
	rootCmd.PersistentFlags().Bool("ansi-escapes", termio.IsTerminal(os.Stdout), "enable/disable coloured output")
	//
	rootCmd.AddCommand(scalarCommands()...)
	rootCmd.AddCommand(matrixCommands()...)
	rootCmd.AddCommand(codeCommands()...)
	//
	return rootCmd
}

// Execute runs the root command against the command-line arguments.  This is
// called by main.main().
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func version() string {
	if Version != "" {
		// Built via "make"
		return Version
	} else if info, ok := debug.ReadBuildInfo(); ok {
		// Built via "go install"
		return info.Main.Version
	}
	// Unknown, perhaps "go run"
	return "(unknown version)"
}
