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

// Package native is the foreign-call boundary for the two operations the
// Win32 surface has no single call for: restarting explorer.exe and
// snapshotting every live process id into one array.
//
// On Windows with cgo enabled the operations are a small C module compiled
// and statically linked with this package. Without cgo the same three
// operations are implemented against golang.org/x/sys/windows. Other hosts
// get a stub whose Supported method reports false.
package native

import "errors"

// ErrUnsupported is returned by every operation of this module on hosts
// that are not Windows.
var ErrUnsupported = errors.New("operation is only supported on Windows")

// Bridge is the three-operation native surface.
//
// AllocPIDs returns a pointer to natively allocated memory holding count
// process ids followed by a zero sentinel. The caller owns the pointer and
// must hand it to FreePIDs exactly once. A nil pointer means the bridge
// failed internally and nothing was allocated; it must not be dereferenced
// or freed.
type Bridge interface {
	// Supported reports whether the bridge is backed by native code.
	Supported() bool
	// RestartShell terminates explorer.exe and starts a new instance.
	// Failures are silent.
	RestartShell()
	AllocPIDs() (pids *uint32, count int)
	FreePIDs(pids *uint32)
}

// New returns the bridge for the current host.
func New() Bridge {
	return newBridge()
}
