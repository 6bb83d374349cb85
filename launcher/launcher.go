// Copyright 2025 The winenhanced Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package launcher starts child processes without waiting for them. It is
// the only package in this module that imports os/exec; every utility the
// tool opens (taskkill, taskmgr, SystemPropertiesAdvanced, explorer, user
// launchers) goes through it.
package launcher

import (
	"fmt"
	"strings"

	"github.com/kballard/go-shellquote"
	"go.uber.org/zap"
)

// StartFunc creates a child process and returns as soon as it exists. It
// must not wait for the child to exit. Tests replace it to avoid spawning.
type StartFunc func(name string, arg ...string) error

// SpawnError reports that a child process could not be created, usually
// because the executable is missing or access was denied.
type SpawnError struct {
	Program string
	Args    []string
	Err     error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("failed to start %s: %v", Command{Program: e.Program, Args: e.Args}, e.Err)
}

func (e *SpawnError) Unwrap() error {
	return e.Err
}

// Command is a program plus its arguments.
type Command struct {
	Program string
	Args    []string
}

// ParseCommand splits a configured command line such as
// `SystemPropertiesAdvanced.exe /c` into a Command. Quoting follows POSIX
// shell rules so paths with spaces can be written as "C:\Program Files\x.exe".
func ParseCommand(commandStr string) (Command, error) {
	parts, err := shellquote.Split(commandStr)
	if err != nil {
		return Command{}, fmt.Errorf("failed to parse command %q: %w", commandStr, err)
	}
	if len(parts) == 0 {
		return Command{}, fmt.Errorf("empty command")
	}
	return Command{Program: parts[0], Args: parts[1:]}, nil
}

// MustParseCommand is ParseCommand for compiled-in defaults.
func MustParseCommand(commandStr string) Command {
	c, err := ParseCommand(commandStr)
	if err != nil {
		panic(err)
	}
	return c
}

// Expand returns a copy of c with every {key} in the arguments replaced by
// vars[key].
func (c Command) Expand(vars map[string]string) Command {
	out := Command{Program: c.Program, Args: make([]string, len(c.Args))}
	for i, a := range c.Args {
		for k, v := range vars {
			a = strings.ReplaceAll(a, "{"+k+"}", v)
		}
		out.Args[i] = a
	}
	return out
}

// With returns a copy of c with extra arguments appended.
func (c Command) With(arg ...string) Command {
	args := make([]string, 0, len(c.Args)+len(arg))
	args = append(args, c.Args...)
	args = append(args, arg...)
	return Command{Program: c.Program, Args: args}
}

// String renders the command line, quoting arguments that need it.
func (c Command) String() string {
	return shellquote.Join(append([]string{c.Program}, c.Args...)...)
}

// Launcher starts commands through Start and logs the outcome.
type Launcher struct {
	Start  StartFunc
	Logger *zap.Logger
}

// New returns a Launcher using the host's process-creation call.
func New(logger *zap.Logger) *Launcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Launcher{Start: DefaultStart, Logger: logger}
}

// Launch starts cmd and returns once the child process has been created.
// The child's lifetime and exit status are not tracked.
func (l *Launcher) Launch(cmd Command) error {
	if cmd.Program == "" {
		return &SpawnError{Err: fmt.Errorf("empty program")}
	}
	start := l.Start
	if start == nil {
		start = DefaultStart
	}
	log := l.Logger
	if log == nil {
		log = zap.NewNop()
	}

	if err := start(cmd.Program, cmd.Args...); err != nil {
		log.Error("spawn failed", zap.Stringer("cmd", cmd), zap.Error(err))
		return &SpawnError{Program: cmd.Program, Args: cmd.Args, Err: err}
	}
	log.Info("spawned", zap.Stringer("cmd", cmd))
	return nil
}
