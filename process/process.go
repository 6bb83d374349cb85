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

// Package process lists live process ids and requests their termination.
package process

import (
	"errors"
	"strconv"
	"unsafe"

	"github.com/johma/winenhanced/launcher"
	"github.com/johma/winenhanced/native"
	"go.uber.org/zap"
)

// ErrEnumeration is returned by ListPIDsErr when the native module could not
// produce a snapshot.
var ErrEnumeration = errors.New("failed to enumerate processes")

// DefaultKillCommand is the termination utility. {pid} is replaced with the
// target id.
const DefaultKillCommand = "taskkill /F /PID {pid}"

// PID identifies a process at the moment it was enumerated. It may be stale
// by the time it is used.
type PID uint32

// Controller lists and terminates processes.
type Controller struct {
	Bridge      native.Bridge
	Launcher    *launcher.Launcher
	KillCommand launcher.Command
	Logger      *zap.Logger
}

// NewController returns a Controller using the given bridge and launcher
// with the default termination utility.
func NewController(bridge native.Bridge, l *launcher.Launcher, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{
		Bridge:      bridge,
		Launcher:    l,
		KillCommand: launcher.MustParseCommand(DefaultKillCommand),
		Logger:      logger,
	}
}

// ListPIDs returns a snapshot of every live process id. It is best effort:
// a native failure yields an empty list.
func (c *Controller) ListPIDs() []PID {
	pids, err := c.ListPIDsErr()
	if err != nil {
		c.Logger.Warn("process snapshot failed", zap.Error(err))
		return []PID{}
	}
	return pids
}

// ListPIDsErr is ListPIDs with the native failure reported as
// ErrEnumeration.
func (c *Controller) ListPIDsErr() ([]PID, error) {
	if !c.Bridge.Supported() {
		return nil, native.ErrUnsupported
	}
	return copyPIDs(c.Bridge)
}

// copyPIDs takes ownership of the bridge's array, copies it into Go memory
// and frees it before returning, including when the array is empty. The raw
// pointer never leaves this function.
func copyPIDs(b native.Bridge) ([]PID, error) {
	p, n := b.AllocPIDs()
	if p == nil {
		return nil, ErrEnumeration
	}
	defer b.FreePIDs(p)

	out := make([]PID, 0, max(n, 0))
	if n <= 0 {
		return out, nil
	}
	for _, pid := range unsafe.Slice(p, n) {
		out = append(out, PID(pid))
	}
	return out, nil
}

// Kill asks the termination utility to end pid. It returns as soon as the
// utility has been spawned and does not check that pid actually exited, or
// that it existed at all.
func (c *Controller) Kill(pid PID) error {
	cmd := c.KillCommand.Expand(map[string]string{"pid": strconv.FormatUint(uint64(pid), 10)})
	if err := c.Launcher.Launch(cmd); err != nil {
		return err
	}
	c.Logger.Info("termination requested", zap.Uint32("pid", uint32(pid)))
	return nil
}
