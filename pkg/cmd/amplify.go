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

	"github.com/consensys/go-intcode/pkg/amplifier"
	"github.com/consensys/go-intcode/pkg/util"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var amplifyCmd = &cobra.Command{
	Use:   "amplify [flags] program.txt",
	Short: "Find the highest signal from a chain of amplifiers.",
	Long: `Run a given program as a chain of amplifiers, where each is seeded with a
distinct phase setting and the signal from the previous amplifier.  Every ordering
of phase settings is tried, and the highest signal produced is printed.`,
	Args: cobra.ExactArgs(1),
	Run:  runAmplifyCmd,
}

func runAmplifyCmd(cmd *cobra.Command, args []string) {
	var (
		cfg      = setup(cmd)
		settings = cfg.Amplify
	)
	// Flags override configuration
	if cmd.Flags().Changed("stages") {
		settings.Stages = GetUint(cmd, "stages")
	}
	//
	if cmd.Flags().Changed("phase-offset") {
		settings.PhaseOffset = GetInt(cmd, "phase-offset")
	}
	//
	if err := settings.Validate(); err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	mem, srcmap := ReadProgramFile(args[0])
	pipeline := amplifier.Pipeline{Program: mem}
	phases := amplifier.Phases(settings.Stages, settings.PhaseOffset)
	//
	log.Debugf("searching %d orderings of phases %v", util.Factorial(settings.Stages), phases)
	//
	stats := util.NewPerfStats()
	result, err := pipeline.Search(phases)
	stats.Log("Search")
	//
	if err != nil {
		reportFault(err, srcmap)
		os.Exit(4)
	}
	//
	log.Infof("phases %v", result.Phases)
	fmt.Println(result.Score)
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(amplifyCmd)
	amplifyCmd.Flags().Uint("stages", 5, "number of amplifiers in the chain")
	amplifyCmd.Flags().Int64("phase-offset", 0, "smallest phase setting")
}
