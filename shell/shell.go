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

// Package shell restarts the desktop shell and opens the system dialogs and
// windows the tool exposes. Nothing here waits on a spawned window.
package shell

import (
	"fmt"
	"path/filepath"

	"github.com/johma/winenhanced/launcher"
	"github.com/johma/winenhanced/native"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

const (
	DefaultTaskManagerCommand       = "taskmgr"
	DefaultEnvironmentDialogCommand = "SystemPropertiesAdvanced.exe /c"
	DefaultExplorerCommand          = "explorer.exe"
)

// Controller drives the shell and the auxiliary utilities.
type Controller struct {
	Bridge   native.Bridge
	Launcher *launcher.Launcher
	// Fs is used to check that a folder exists before opening it.
	Fs afero.Fs

	TaskManager       launcher.Command
	EnvironmentDialog launcher.Command
	Explorer          launcher.Command

	Logger *zap.Logger
}

// NewController returns a Controller with the default utility commands.
func NewController(bridge native.Bridge, l *launcher.Launcher, fs afero.Fs, logger *zap.Logger) *Controller {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{
		Bridge:            bridge,
		Launcher:          l,
		Fs:                fs,
		TaskManager:       launcher.MustParseCommand(DefaultTaskManagerCommand),
		EnvironmentDialog: launcher.MustParseCommand(DefaultEnvironmentDialogCommand),
		Explorer:          launcher.MustParseCommand(DefaultExplorerCommand),
		Logger:            logger,
	}
}

// RestartShell terminates explorer.exe and starts it again. The native call
// reports nothing, so once it has been made the restart counts as done.
func (c *Controller) RestartShell() error {
	if !c.Bridge.Supported() {
		return native.ErrUnsupported
	}
	c.Bridge.RestartShell()
	c.Logger.Info("restarted shell")
	return nil
}

// OpenTaskManager starts Task Manager.
func (c *Controller) OpenTaskManager() error {
	return c.Launcher.Launch(c.TaskManager)
}

// OpenEnvironmentVariablesDialog opens the advanced system properties page
// that hosts the environment variable editor.
func (c *Controller) OpenEnvironmentVariablesDialog() error {
	return c.Launcher.Launch(c.EnvironmentDialog)
}

// OpenExplorer opens a file browser window at path. The path is made
// absolute and must exist.
func (c *Controller) OpenExplorer(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	if _, err := c.Fs.Stat(abs); err != nil {
		return fmt.Errorf("failed to access %s: %w", abs, err)
	}
	return c.Launcher.Launch(c.Explorer.With(abs))
}

// RunLauncher starts the executable at path with no arguments.
func (c *Controller) RunLauncher(path string) error {
	return c.Launcher.Launch(launcher.Command{Program: path})
}
