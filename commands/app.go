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

package commands

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/johma/winenhanced/config"
	"github.com/johma/winenhanced/folders"
	"github.com/johma/winenhanced/identity"
	"github.com/johma/winenhanced/logging"
	"github.com/johma/winenhanced/platform"
	"github.com/johma/winenhanced/process"
	"github.com/johma/winenhanced/sysinfo"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// System is the facade surface the commands dispatch to.
type System interface {
	ListLocalUserSIDs() ([]identity.Account, error)
	ListProfiles() ([]identity.Profile, error)
	ResolveFolder(folder folders.SpecialFolder) (string, bool)
	ListPIDs() []process.PID
	Kill(pid process.PID) error
	RestartShell() error
	OpenTaskManager() error
	OpenEnvironmentVariablesDialog() error
	OpenExplorer(path string) error
	RunLauncher(path string) error
	CPUs(ctx context.Context) ([]sysinfo.CPU, error)
	CPUUsage(ctx context.Context) ([]float64, error)
	Memory(ctx context.Context) (sysinfo.Memory, error)
}

// App holds what every command needs. Tests fill in Fs, Logger and
// NewSystem to run commands without touching the host.
type App struct {
	Fs         afero.Fs
	Out        io.Writer
	ErrOut     io.Writer
	ConfigPath string
	Verbose    bool

	// Logger, when set, is used instead of the daily log file.
	Logger *zap.Logger
	// NewSystem builds the facade from the loaded config.
	NewSystem func(cfg *config.Config, fs afero.Fs, logger *zap.Logger) System
	// IsElevated reports whether the process runs with admin rights.
	IsElevated func() (bool, error)
	// LocalDataRoot overrides the root the application folder lives in.
	LocalDataRoot func() (string, error)

	system   System
	closeLog func() error
}

// NewApp returns an App wired to the host.
func NewApp(out, errOut io.Writer) *App {
	return &App{
		Fs:     afero.NewOsFs(),
		Out:    out,
		ErrOut: errOut,
		NewSystem: func(cfg *config.Config, fs afero.Fs, logger *zap.Logger) System {
			return platform.New(cfg, platform.Deps{Fs: fs, Logger: logger})
		},
		IsElevated: IsElevated,
	}
}

func (a *App) appRoot(appFolderName string) (string, error) {
	r := folders.NewResolver(appFolderName, nil)
	if a.LocalDataRoot != nil {
		r.LocalDataRoot = a.LocalDataRoot
	}
	root, ok := r.Resolve(folders.ApplicationRoot)
	if !ok {
		return "", fmt.Errorf("could not determine the application folder")
	}
	return root, nil
}

// setup loads the config, opens the log and builds the facade. It runs
// before every command.
func (a *App) setup(cmd *cobra.Command) error {
	if a.Fs == nil {
		a.Fs = afero.NewOsFs()
	}

	var cfg *config.Config
	configPath := a.ConfigPath
	if configPath != "" {
		c, err := config.LoadFile(a.Fs, configPath)
		if err != nil {
			return err
		}
		cfg = c
	} else {
		root, err := a.appRoot("")
		if err != nil {
			return err
		}
		configPath = filepath.Join(root, config.FileName)
		if cfg, err = config.Load(a.Fs, configPath); err != nil {
			return err
		}
	}

	logger := a.Logger
	if logger == nil {
		root, err := a.appRoot(cfg.AppFolderName)
		if err != nil {
			return err
		}
		level := cfg.LogLevel
		if a.Verbose {
			level = "debug"
		}
		l, closeFn, err := logging.New(logging.Options{
			Fs:      a.Fs,
			Dir:     filepath.Join(root, logging.DirName),
			Level:   level,
			Console: a.Verbose && logging.StderrIsTerminal(),
		})
		if err != nil {
			return err
		}
		logger, a.closeLog = l, closeFn
	}
	logger.Debug("running command", zap.String("cmd", cmd.CommandPath()), zap.String("config", configPath))

	a.Logger = logger
	a.system = a.NewSystem(cfg, a.Fs, logger)
	return nil
}

// Close flushes and closes the log file opened by setup. It is safe to call
// more than once and must be called whether or not the command failed.
func (a *App) Close() error {
	if a.closeLog == nil {
		return nil
	}
	err := a.closeLog()
	a.closeLog = nil
	return err
}

// warnIfNotElevated prints a hint for actions that usually need admin rights.
func (a *App) warnIfNotElevated(action string) {
	if a.IsElevated == nil {
		return
	}
	elevated, err := a.IsElevated()
	if err != nil {
		a.Logger.Debug("elevation check failed", zap.Error(err))
		return
	}
	if !elevated {
		fmt.Fprintf(a.ErrOut, "WARNING: not running as %s; %s may be denied\n", expectedAdminName(), action)
		a.Logger.Warn("not elevated", zap.String("action", action))
	}
}
