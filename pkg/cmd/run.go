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
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/consensys/go-intcode/pkg/util"
	"github.com/consensys/go-intcode/pkg/util/source"
	"github.com/consensys/go-intcode/pkg/vm"
	"github.com/consensys/go-intcode/pkg/vm/channel"
	"github.com/consensys/go-intcode/pkg/vm/machine"
	"github.com/consensys/go-intcode/pkg/vm/memory"
	"github.com/consensys/go-intcode/pkg/vm/program"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// ErrStepLimit is reported when a program does not halt within the permitted
// number of steps, and there is nowhere to save its progress.
var ErrStepLimit = errors.New("step limit reached")

var runCmd = &cobra.Command{
	Use:   "run [flags] program.txt",
	Short: "Execute an Intcode program.",
	Long: `Execute an Intcode program.  By default, input is read interactively from the
terminal.  Alternatively, inputs can be supplied up front, in which case the outputs
are printed (one per line) once the program halts.  When resuming from a checkpoint,
the program is taken from the checkpoint and no program file is given.`,
	Args: func(cmd *cobra.Command, args []string) error {
		return checkRunArgs(GetString(cmd, "resume"), args)
	},
	Run: runRunCmd,
}

// Launcher constructs the machine for a run, once its channels are known.
type Launcher func(in channel.Input, out channel.Output) *machine.Machine

func runRunCmd(cmd *cobra.Command, args []string) {
	var (
		cfg      = setup(cmd)
		maxSteps = cfg.Run.MaxSteps
		ckpt     = GetString(cmd, "checkpoint")
		resume   = GetString(cmd, "resume")
		mem      *memory.Array
		srcmap   *source.Map[uint]
	)
	//
	if cmd.Flags().Changed("max-steps") {
		maxSteps = GetUint(cmd, "max-steps")
	}
	//
	if resume == "" {
		mem, srcmap = ReadProgramFile(args[0])
	}
	// Everything which can fail is done before the terminal is touched.
	launch, err := prepareRun(mem, resume, GetStringArray(cmd, "set"))
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	in, out, closer := openChannels(cmd, cfg.Run.Prompt)
	m := launch(in, out)
	// Go
	stats := util.NewPerfStats()
	err = executeUpto(m, cfg.Run.Chunk, maxSteps)
	//
	stats.Log(fmt.Sprintf("Execution (%d steps)", m.Steps()))
	closer()
	//
	if err == nil && !m.Halted() {
		if ckpt == "" {
			err = fmt.Errorf("%w (%d steps)", ErrStepLimit, m.Steps())
		} else {
			writeCheckPoint(ckpt, vm.Capture(m))
		}
	}
	//
	if collector, ok := out.(*channel.Collector); ok {
		for _, v := range collector.Values() {
			fmt.Println(v)
		}
	}
	//
	if err != nil {
		reportFault(err, srcmap)
		os.Exit(4)
	} else if GetFlag(cmd, "dump") {
		dumpMemory(m.Memory())
	}
}

// A program file is required, unless resuming from a checkpoint (which holds
// the program).
func checkRunArgs(resume string, args []string) error {
	switch {
	case resume == "" && len(args) != 1:
		return fmt.Errorf("expected one program file, got %d", len(args))
	case resume != "" && len(args) != 0:
		return errors.New("no program file is accepted when resuming from a checkpoint")
	}
	//
	return nil
}

// Determine the starting memory of a run (either the given program, or that
// held in a checkpoint) and apply any patches to it.  No channels are opened
// here, so failures can be reported without disturbing the terminal.
func prepareRun(mem *memory.Array, resume string, patches []string) (Launcher, error) {
	var launch Launcher
	//
	if resume != "" {
		snapshot, err := loadCheckPoint(resume)
		if err != nil {
			return nil, err
		}
		// Patches flow through into the snapshot.
		mem = memory.NewArray(snapshot.Memory...)
		launch = snapshot.Restore
	} else {
		launch = func(in channel.Input, out channel.Output) *machine.Machine {
			return machine.New(mem, in, out)
		}
	}
	//
	for _, patch := range patches {
		address, value, err := ParseAssignment(patch)
		//
		if err == nil {
			err = mem.Store(address, value)
		}
		//
		if err != nil {
			return nil, err
		}
	}
	//
	return launch, nil
}

// Construct the input and output channels for a run.  When inputs are given
// up front, outputs are collected.  Otherwise, both are connected to the
// terminal, which must be closed afterwards.
func openChannels(cmd *cobra.Command, prompt string) (channel.Input, channel.Output, func()) {
	var (
		inputs    = GetString(cmd, "input")
		inputFile = GetString(cmd, "input-file")
	)
	//
	switch {
	case inputs != "" && inputFile != "":
		fmt.Println("flags --input and --input-file are mutually exclusive")
		os.Exit(2)
	case inputFile != "":
		return channel.NewScript(ReadScriptFile(inputFile)...), channel.NewCollector(), func() {}
	case inputs != "":
		values, err := program.ParseString(inputs)
		//
		if err != nil {
			reportSyntaxError(err)
			os.Exit(3)
		}
		//
		return channel.NewScript(values.Contents()...), channel.NewCollector(), func() {}
	}
	//
	terminal, err := channel.NewTerminal(prompt)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return terminal, terminal, func() {
		if err := terminal.Close(); err != nil {
			log.Error(err)
		}
	}
}

// Execute a machine in chunks until it halts, fails or has executed a given
// number of steps (where zero means there is no limit).
func executeUpto(m *machine.Machine, chunk uint, limit uint) error {
	if limit == 0 {
		_, err := machine.ExecuteAll(m, chunk)
		return err
	}
	//
	for remaining := limit; remaining > 0 && !m.Halted(); {
		n, err := m.Execute(min(chunk, remaining))
		//
		if err != nil {
			return err
		} else if n == 0 {
			break
		}
		//
		remaining -= n
	}
	//
	return nil
}

func loadCheckPoint(filename string) (*vm.Snapshot, error) {
	var snapshot vm.Snapshot
	//
	bytes, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	} else if err = snapshot.UnmarshalBinary(bytes); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	//
	log.Debugf("resuming from %s at pc %d after %d steps", filename, snapshot.PC, snapshot.Steps)
	//
	return &snapshot, nil
}

func writeCheckPoint(filename string, checkpoint vm.CheckPoint) {
	bytes, err := checkpoint.MarshalBinary()
	//
	if err == nil {
		err = os.WriteFile(filename, bytes, 0644)
	}
	//
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	log.Infof("checkpoint written to %s", filename)
}

// Print memory contents, ten words per line.
func dumpMemory(mem memory.Memory) {
	var (
		N        = 10
		contents = mem.Contents()
	)
	//
	for i := 0; i < len(contents); i += N {
		var words []string
		//
		for _, w := range contents[i:min(i+N, len(contents))] {
			words = append(words, fmt.Sprintf("%d", w))
		}
		//
		fmt.Printf("[%d]\t%s\n", i, strings.Join(words, ","))
	}
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().String("input", "", "comma-separated inputs (instead of reading from the terminal)")
	runCmd.Flags().String("input-file", "", "file of inputs, one per line (instead of reading from the terminal)")
	runCmd.Flags().StringArray("set", nil, "patch memory before execution (address=value)")
	runCmd.Flags().Bool("dump", false, "print memory after execution")
	runCmd.Flags().Uint("max-steps", 0, "maximum number of steps to execute (0 is unbounded)")
	runCmd.Flags().String("checkpoint", "", "save progress to this file if the step limit is reached")
	runCmd.Flags().String("resume", "", "resume execution from a checkpoint file")
}

