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
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/consensys/go-intcode/pkg/vm/machine"
)

// FILENAME is the name of the configuration file searched for by FindAndLoad.
const FILENAME = "intcode.toml"

// MAX_STAGES bounds the number of amplifiers, since every ordering of their
// phases is held in memory during a search (10! is already 3628800).
const MAX_STAGES = 10

// ErrUnknownKey is reported when a configuration file contains a key which
// does not correspond to any setting.
var ErrUnknownKey = errors.New("unknown configuration key")

// Config holds the settings used by the intcode commands.  Every setting has
// a default, which a configuration file overrides and which command-line flags
// override in turn.
type Config struct {
	Run     Run     `toml:"run"`
	Restore Restore `toml:"restore"`
	Amplify Amplify `toml:"amplify"`
	// Path of the file from which this configuration was loaded, or empty if
	// none.
	Path string `toml:"-"`
}

// Run configures program execution.
type Run struct {
	// Prompt shown when reading from an interactive terminal.
	Prompt string `toml:"prompt"`
	// Number of steps executed between checks for the step limit.
	Chunk uint `toml:"chunk"`
	// Maximum number of steps to execute (0 means unbounded).
	MaxSteps uint `toml:"max-steps"`
}

// Restore configures the gravity-assist restore command.
type Restore struct {
	Noun   int64 `toml:"noun"`
	Verb   int64 `toml:"verb"`
	Target int64 `toml:"target"`
	Limit  int64 `toml:"limit"`
}

// Amplify configures the amplifier search command.
type Amplify struct {
	Stages      uint  `toml:"stages"`
	PhaseOffset int64 `toml:"phase-offset"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Run:     Run{Prompt: "> ", Chunk: machine.DEFAULT_CHUNK},
		Restore: Restore{Noun: 12, Verb: 2, Target: 19690720, Limit: 100},
		Amplify: Amplify{Stages: 5},
	}
}

// Load parses a given configuration file.  Settings not given in the file
// retain their defaults.
func Load(path string) (*Config, error) {
	var c = Default()
	//
	md, err := toml.DecodeFile(path, c)
	if err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	} else if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		//
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		//
		return nil, fmt.Errorf("%s: %w: %s", path, ErrUnknownKey, strings.Join(keys, ", "))
	}
	//
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	//
	c.Path = path
	//
	return c, nil
}

// FindAndLoad walks up from startDir looking for an intcode.toml file, and
// loads the first one found.  If there is none, the default configuration is
// returned.
func FindAndLoad(startDir string) (*Config, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, err
	}
	//
	for {
		path := filepath.Join(dir, FILENAME)
		//
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		}
		//
		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root
			return Default(), nil
		}
		//
		dir = parent
	}
}

// Validate checks that settings are within sensible ranges.
func (c *Config) Validate() error {
	switch {
	case c.Run.Chunk == 0:
		return errors.New("run.chunk must be positive")
	case c.Restore.Limit <= 0:
		return errors.New("restore.limit must be positive")
	}
	//
	return c.Amplify.Validate()
}

// Validate checks the number of amplifiers is positive and within MAX_STAGES.
func (a Amplify) Validate() error {
	if a.Stages == 0 || a.Stages > MAX_STAGES {
		return fmt.Errorf("amplify.stages must be between 1 and %d (was %d)", MAX_STAGES, a.Stages)
	}
	//
	return nil
}
