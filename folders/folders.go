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

// Package folders resolves per-user special folders to absolute paths.
//
// LocalAppData, RoamingAppData and AppData go through SHGetFolderPathW and a
// fixed MAX_PATH (260 wide character) buffer, so longer paths come back
// truncated. LocalLow goes through SHGetKnownFolderPath, whose result has no
// length limit. ApplicationRoot is computed from the local data root without
// any native call. Resolution never touches the filesystem.
package folders

import (
	"os"
	"path/filepath"

	"github.com/thediveo/enumflag/v2"
	"go.uber.org/zap"
)

// SpecialFolder is a category of per-user storage location.
type SpecialFolder enumflag.Flag

const (
	LocalAppData SpecialFolder = iota
	RoamingAppData
	// AppData resolves the same CSIDL as RoamingAppData.
	AppData
	LocalLow
	ApplicationRoot
)

// FolderIds maps each category to its accepted command line / config names.
// The first name is canonical.
var FolderIds = map[SpecialFolder][]string{
	LocalAppData:    {"local", "localappdata"},
	RoamingAppData:  {"roaming"},
	AppData:         {"appdata"},
	LocalLow:        {"locallow"},
	ApplicationRoot: {"app", "approot"},
}

func (f SpecialFolder) String() string {
	if ids, ok := FolderIds[f]; ok {
		return ids[0]
	}
	return "unknown"
}

// Shell folder identifiers understood by SHGetFolderPathW.
const (
	CSIDLAppData      = 0x001a
	CSIDLLocalAppData = 0x001c
)

// KnownFolder identifies a folder resolved through SHGetKnownFolderPath.
type KnownFolder int

const (
	KnownFolderLocalAppDataLow KnownFolder = iota
)

// DefaultAppFolderName is the subdirectory of the local data root that holds
// this tool's own files (logs, config).
const DefaultAppFolderName = "johma_windows_enhanced"

// ShellAPI is the native folder-resolution surface.
type ShellAPI interface {
	// FolderPath resolves a CSIDL into a fixed MAX_PATH buffer.
	FolderPath(csidl int) (string, error)
	// KnownFolderPath resolves a known folder. The platform-allocated
	// string is released before returning.
	KnownFolderPath(id KnownFolder) (string, error)
}

// Resolver resolves special folders. Exported fields may be replaced in
// tests.
type Resolver struct {
	API           ShellAPI
	AppFolderName string
	// LocalDataRoot returns the per-application data root ApplicationRoot
	// is built on. It must not make native calls.
	LocalDataRoot func() (string, error)
	Logger        *zap.Logger
}

// NewResolver returns a Resolver backed by the host's shell folder API.
// An empty appFolderName means DefaultAppFolderName.
func NewResolver(appFolderName string, logger *zap.Logger) *Resolver {
	if appFolderName == "" {
		appFolderName = DefaultAppFolderName
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{
		API:           newShellAPI(),
		AppFolderName: appFolderName,
		LocalDataRoot: os.UserCacheDir,
		Logger:        logger,
	}
}

// Resolve returns the absolute path of folder. The boolean is false when the
// platform could not produce a path; the cause is only logged because every
// caller handles failures the same way.
func (r *Resolver) Resolve(folder SpecialFolder) (string, bool) {
	var path string
	var err error
	switch folder {
	case LocalAppData:
		path, err = r.API.FolderPath(CSIDLLocalAppData)
	case RoamingAppData, AppData:
		path, err = r.API.FolderPath(CSIDLAppData)
	case LocalLow:
		path, err = r.API.KnownFolderPath(KnownFolderLocalAppDataLow)
	case ApplicationRoot:
		path, err = r.appRoot()
	default:
		return "", false
	}
	if err != nil || path == "" {
		r.Logger.Debug("folder unavailable", zap.Stringer("folder", folder), zap.Error(err))
		return "", false
	}
	return path, true
}

func (r *Resolver) appRoot() (string, error) {
	root := r.LocalDataRoot
	if root == nil {
		root = os.UserCacheDir
	}
	base, err := root()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, r.AppFolderName), nil
}
