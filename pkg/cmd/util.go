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
	"strconv"
	"strings"

	"github.com/consensys/go-intcode/pkg/util/source"
	"github.com/consensys/go-intcode/pkg/vm/machine"
	"github.com/consensys/go-intcode/pkg/vm/memory"
	"github.com/consensys/go-intcode/pkg/vm/program"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// GetFlag gets an expected flag, or exits if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetInt gets an expected signed integer, or exits if an error arises.
func GetInt(cmd *cobra.Command, flag string) int64 {
	r, err := cmd.Flags().GetInt64(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetUint gets an expected unsigned integer, or exits if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString gets an expected string, or exits if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetStringArray gets an expected string array, or exits if an error arises.
func GetStringArray(cmd *cobra.Command, flag string) []string {
	r, err := cmd.Flags().GetStringArray(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// ReadProgramFile reads and parses a given program file, along with a source
// map used for reporting execution failures.  Syntax errors are reported and
// cause an exit.
func ReadProgramFile(filename string) (*memory.Array, *source.Map[uint]) {
	srcfile, err := source.ReadFile(filename)
	// Sanity check for errors
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	log.Debug(fmt.Sprintf("reading program file %s", filename))
	//
	mem, srcmap, err := program.Parse(srcfile)
	//
	if err != nil {
		reportSyntaxError(err)
		os.Exit(3)
	}
	//
	log.Debugf("program has %d words", mem.Len())
	//
	return mem, srcmap
}

// ReadScriptFile reads and parses a given input script, holding one integer
// per line.
func ReadScriptFile(filename string) []int64 {
	srcfile, err := source.ReadFile(filename)
	// Sanity check for errors
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	values, err := program.ParseScript(srcfile)
	//
	if err != nil {
		reportSyntaxError(err)
		os.Exit(3)
	}
	//
	return values
}

// ParseAssignment parses a memory patch of the form "address=value".
func ParseAssignment(text string) (int64, int64, error) {
	lhs, rhs, ok := strings.Cut(text, "=")
	//
	if !ok {
		return 0, 0, fmt.Errorf("invalid assignment \"%s\" (expected address=value)", text)
	}
	//
	address, err := strconv.ParseInt(strings.TrimSpace(lhs), 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid address \"%s\"", lhs)
	}
	//
	value, err := strconv.ParseInt(strings.TrimSpace(rhs), 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid value \"%s\"", rhs)
	}
	//
	return address, value, nil
}

// Report an execution failure.  Where the failure can be pinned on a specific
// word of the program, that word is highlighted.
func reportFault(err error, srcmap *source.Map[uint]) {
	var fault *machine.Fault
	//
	if srcmap != nil && errors.As(err, &fault) && srcmap.Has(fault.PC) {
		printSyntaxError(srcmap.SyntaxError(fault.PC, fault.Error()))
	} else {
		log.Error(err)
	}
}

func reportSyntaxError(err error) {
	var serr *source.SyntaxError
	//
	if errors.As(err, &serr) {
		printSyntaxError(serr)
	} else {
		fmt.Println(err)
	}
}

// Print a syntax error with appropriate highlighting.
func printSyntaxError(err *source.SyntaxError) {
	span := err.Span()
	line := err.FirstEnclosingLine()
	lineOffset := span.Start() - line.Start()
	// Calculate length (ensures don't overflow line)
	length := max(0, min(line.Length()-lineOffset, span.Length()))
	// Print error + line number
	fmt.Printf("%s:%d:%d-%d %s\n", err.SourceFile().Filename(),
		line.Number(), 1+lineOffset, 1+lineOffset+length, err.Message())
	// Print separator line
	fmt.Println()
	// Print line
	fmt.Println(line.String())
	// Print indent (todo: account for tabs)
	fmt.Print(strings.Repeat(" ", lineOffset))
	// Print highlight
	fmt.Println(strings.Repeat("^", max(1, length)))
}
