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

// Package platform is the facade over the native integration layer. Each
// method performs one user-visible action synchronously and keeps no state
// between calls.
package platform

import (
	"context"

	"github.com/johma/winenhanced/config"
	"github.com/johma/winenhanced/folders"
	"github.com/johma/winenhanced/identity"
	"github.com/johma/winenhanced/launcher"
	"github.com/johma/winenhanced/native"
	"github.com/johma/winenhanced/process"
	"github.com/johma/winenhanced/shell"
	"github.com/johma/winenhanced/sysinfo"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Facade groups the identity, folder, process, shell and system
// information components.
type Facade struct {
	Identity  *identity.Enumerator
	Folders   *folders.Resolver
	Processes *process.Controller
	Shell     *shell.Controller
	SysInfo   *sysinfo.Reader
}

// Deps are the host dependencies New wires in. Zero fields get the real
// host implementations.
type Deps struct {
	Fs      afero.Fs
	Bridge  native.Bridge
	Start   launcher.StartFunc
	// SysInfo replaces the gopsutil statistics source.
	SysInfo sysinfo.Source
	Logger  *zap.Logger
}

// New builds a Facade from cfg. cfg must have passed Validate.
func New(cfg *config.Config, deps Deps) *Facade {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	fs := deps.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}
	bridge := deps.Bridge
	if bridge == nil {
		bridge = native.New()
	}
	l := launcher.New(logger.Named("launcher"))
	if deps.Start != nil {
		l.Start = deps.Start
	}

	killCmd, taskMgrCmd, envCmd, explorerCmd := cfg.Commands()

	procs := process.NewController(bridge, l, logger.Named("process"))
	procs.KillCommand = killCmd

	sh := shell.NewController(bridge, l, fs, logger.Named("shell"))
	sh.TaskManager = taskMgrCmd
	sh.EnvironmentDialog = envCmd
	sh.Explorer = explorerCmd

	info := sysinfo.NewReader(logger.Named("sysinfo"))
	if deps.SysInfo != nil {
		info.Source = deps.SysInfo
	}

	return &Facade{
		Identity:  identity.NewEnumerator(logger.Named("identity")),
		Folders:   folders.NewResolver(cfg.AppFolderName, logger.Named("folders")),
		Processes: procs,
		Shell:     sh,
		SysInfo:   info,
	}
}

func (f *Facade) ListLocalUserSIDs() ([]identity.Account, error) {
	return f.Identity.ListLocalUserSIDs()
}

func (f *Facade) ListProfiles() ([]identity.Profile, error) {
	return f.Identity.ListProfiles()
}

func (f *Facade) ResolveFolder(folder folders.SpecialFolder) (string, bool) {
	return f.Folders.Resolve(folder)
}

func (f *Facade) ListPIDs() []process.PID {
	return f.Processes.ListPIDs()
}

func (f *Facade) Kill(pid process.PID) error {
	return f.Processes.Kill(pid)
}

func (f *Facade) RestartShell() error {
	return f.Shell.RestartShell()
}

func (f *Facade) OpenTaskManager() error {
	return f.Shell.OpenTaskManager()
}

func (f *Facade) OpenEnvironmentVariablesDialog() error {
	return f.Shell.OpenEnvironmentVariablesDialog()
}

func (f *Facade) OpenExplorer(path string) error {
	return f.Shell.OpenExplorer(path)
}

func (f *Facade) RunLauncher(path string) error {
	return f.Shell.RunLauncher(path)
}

func (f *Facade) CPUs(ctx context.Context) ([]sysinfo.CPU, error) {
	return f.SysInfo.CPUs(ctx)
}

func (f *Facade) CPUUsage(ctx context.Context) ([]float64, error) {
	return f.SysInfo.CPUUsage(ctx)
}

func (f *Facade) Memory(ctx context.Context) (sysinfo.Memory, error) {
	return f.SysInfo.Memory(ctx)
}
