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

	"github.com/consensys/go-intcode/pkg/restore"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var restoreCmd = &cobra.Command{
	Use:   "restore [flags] program.txt",
	Short: "Restore a gravity assist program.",
	Long: `Patch a program with a noun (address 1) and verb (address 2), execute it and
print the value left at address 0.  Alternatively, search for the noun and verb
producing a given target value and print 100 * noun + verb.`,
	Args: cobra.ExactArgs(1),
	Run:  runRestoreCmd,
}

func runRestoreCmd(cmd *cobra.Command, args []string) {
	var (
		cfg      = setup(cmd)
		settings = cfg.Restore
	)
	// Flags override configuration
	if cmd.Flags().Changed("noun") {
		settings.Noun = GetInt(cmd, "noun")
	}
	//
	if cmd.Flags().Changed("verb") {
		settings.Verb = GetInt(cmd, "verb")
	}
	//
	if cmd.Flags().Changed("target") {
		settings.Target = GetInt(cmd, "target")
	}
	//
	if cmd.Flags().Changed("limit") {
		settings.Limit = GetInt(cmd, "limit")
	}
	//
	mem, srcmap := ReadProgramFile(args[0])
	//
	if !GetFlag(cmd, "search") {
		result, err := restore.Run(mem, settings.Noun, settings.Verb)
		//
		if err != nil {
			reportFault(err, srcmap)
			os.Exit(4)
		}
		//
		fmt.Println(result)
		//
		return
	}
	//
	noun, verb, err := restore.Search(mem, settings.Target, settings.Limit)
	if err != nil {
		log.Error(err)
		os.Exit(4)
	}
	//
	log.Infof("noun %d, verb %d", noun, verb)
	fmt.Println(restore.Answer(noun, verb))
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(restoreCmd)
	restoreCmd.Flags().Int64("noun", 12, "value placed at address 1")
	restoreCmd.Flags().Int64("verb", 2, "value placed at address 2")
	restoreCmd.Flags().Bool("search", false, "search for the noun and verb producing the target")
	restoreCmd.Flags().Int64("target", 19690720, "value sought at address 0 when searching")
	restoreCmd.Flags().Int64("limit", 100, "nouns and verbs are searched from 1 up to (but excluding) this")
}
