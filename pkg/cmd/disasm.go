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

	"github.com/consensys/go-intcode/pkg/vm/instruction"
	"github.com/spf13/cobra"
)

var disasmCmd = &cobra.Command{
	Use:     "disasm [flags] program.txt",
	Short:   "Disassemble an Intcode program.",
	Long:    `Print a listing of the instructions making up a given program.  Words which do not decode are shown as data.`,
	Aliases: []string{"dis"},
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		setup(cmd)
		//
		mem, _ := ReadProgramFile(args[0])
		//
		for _, e := range instruction.Disassemble(mem.Contents()) {
			fmt.Printf("[%d]\t%s\n", e.Offset, e.String())
		}
	},
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(disasmCmd)
}
