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

package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/johma/winenhanced/launcher"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

//go:embed default-config.yml
var defaultConfig []byte

// FileName is the name of the config file inside the application folder.
const FileName = "config.yml"

type Config struct {
	AppFolderName            string `yaml:"app_folder_name"`
	LogLevel                 string `yaml:"log_level"`
	KillCommand              string `yaml:"kill_command"`
	TaskManagerCommand       string `yaml:"task_manager_command"`
	EnvironmentDialogCommand string `yaml:"environment_dialog_command"`
	ExplorerCommand          string `yaml:"explorer_command"`
}

// NewConfig parses c on top of the built-in defaults, so a file only needs
// the keys it changes.
func NewConfig(c []byte) (*Config, error) {
	config, err := Default()
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(c, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func Default() (*Config, error) {
	var config Config
	if err := yaml.Unmarshal(defaultConfig, &config); err != nil {
		return nil, err
	}
	return &config, nil
}

// Load reads the config file at path. A missing file is not an error: the
// defaults are returned. Use LoadFile when the caller named the file.
func Load(fs afero.Fs, path string) (*Config, error) {
	config, err := LoadFile(fs, path)
	if err != nil && errors.Is(err, os.ErrNotExist) {
		return Default()
	}
	return config, err
}

// LoadFile reads the config file at path, which must exist.
func LoadFile(fs afero.Fs, path string) (*Config, error) {
	content, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	config, err := NewConfig(content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return config, nil
}

// Validate checks that every configured command parses and that the folder
// name is a single path element that stays inside the data root.
func (c *Config) Validate() error {
	switch {
	case c.AppFolderName == "", c.AppFolderName == ".", c.AppFolderName == "..",
		strings.ContainsAny(c.AppFolderName, `/\`):
		return fmt.Errorf("app_folder_name must be a single folder name, got %q", c.AppFolderName)
	}
	for key, cmd := range map[string]string{
		"kill_command":               c.KillCommand,
		"task_manager_command":       c.TaskManagerCommand,
		"environment_dialog_command": c.EnvironmentDialogCommand,
		"explorer_command":           c.ExplorerCommand,
	} {
		if _, err := launcher.ParseCommand(cmd); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
	}
	if !strings.Contains(c.KillCommand, "{pid}") {
		return fmt.Errorf("kill_command must contain the {pid} placeholder")
	}
	return nil
}

// Commands returns the parsed utility commands. Call Validate first.
func (c *Config) Commands() (kill, taskManager, envDialog, explorer launcher.Command) {
	kill, _ = launcher.ParseCommand(c.KillCommand)
	taskManager, _ = launcher.ParseCommand(c.TaskManagerCommand)
	envDialog, _ = launcher.ParseCommand(c.EnvironmentDialogCommand)
	explorer, _ = launcher.ParseCommand(c.ExplorerCommand)
	return
}
