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
package channel

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// LineReader abstracts a source of lines of text.
type LineReader interface {
	ReadLine() (string, error)
}

// Console is both an input and an output channel, which communicates with a
// human (or something pretending to be one) using lines of text.  Each take
// reads one line, whilst each put writes one line.
type Console struct {
	lines  LineReader
	out    io.Writer
	prompt string
}

// NewConsole constructs a console over a given reader and writer.  If prompt
// is non-empty, it is written before every line is read.
func NewConsole(in io.Reader, out io.Writer, prompt string) *Console {
	return &Console{&bufferedReader{bufio.NewReader(in)}, out, prompt}
}

// Take implementation for Input interface.
func (p *Console) Take() (int64, error) {
	if p.prompt != "" {
		if _, err := io.WriteString(p.out, p.prompt); err != nil {
			return 0, fmt.Errorf("%w: %w", ErrIO, err)
		}
	}
	//
	line, err := p.lines.ReadLine()
	//
	if errors.Is(err, io.EOF) && strings.TrimSpace(line) == "" {
		return 0, ErrInputExhausted
	} else if err != nil && !errors.Is(err, io.EOF) {
		return 0, fmt.Errorf("%w: %w", ErrIO, err)
	}
	//
	value, err := strconv.ParseInt(strings.TrimSpace(line), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid integer \"%s\"", ErrIO, strings.TrimSpace(line))
	}
	//
	return value, nil
}

// Put implementation for Output interface.  The written text is checked to
// read back as the value written.
func (p *Console) Put(value int64) error {
	var text = strconv.FormatInt(value, 10)
	//
	if v, err := strconv.ParseInt(text, 10, 64); err != nil || v != value {
		return fmt.Errorf("%w: value %d does not round-trip", ErrIO, value)
	} else if _, err := fmt.Fprintln(p.out, text); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	//
	return nil
}

// Terminal is a console connected to the standard input and output of this
// process.  When standard input is an interactive terminal, it is placed into
// raw mode to provide line editing, and must be closed afterwards to restore
// its original state.
type Terminal struct {
	Console
	// file descriptor for input.
	fd int
	// original state of terminal (if it was changed).
	state *term.State
}

// NewTerminal constructs a console on standard input and output.  The prompt
// is only shown when standard input is an interactive terminal.
func NewTerminal(prompt string) (*Terminal, error) {
	var fd = int(os.Stdin.Fd())
	//
	if !term.IsTerminal(fd) {
		return &Terminal{*NewConsole(os.Stdin, os.Stdout, ""), fd, nil}, nil
	}
	// Move terminal into raw mode
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	// Construct "screen"
	screen := struct {
		io.Reader
		io.Writer
	}{os.Stdin, os.Stdout}
	// Grab terminal screen
	xterm := term.NewTerminal(screen, prompt)
	//
	return &Terminal{Console{xterm, xterm, ""}, fd, state}, nil
}

// Close restores the terminal to its original state.
func (t *Terminal) Close() error {
	if t.state == nil {
		return nil
	}
	//
	return term.Restore(t.fd, t.state)
}

type bufferedReader struct {
	reader *bufio.Reader
}

func (p *bufferedReader) ReadLine() (string, error) {
	line, err := p.reader.ReadString('\n')
	//
	return strings.TrimRight(line, "\r\n"), err
}
