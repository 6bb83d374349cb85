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

// Package identity enumerates local user accounts and resolves each one to
// its security identifier (SID).
package identity

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"
)

// ErrEnumeration is returned when the account directory refuses the
// top-level enumeration. Nothing is returned alongside it.
var ErrEnumeration = errors.New("failed to enumerate local user accounts")

// realUserSIDPrefix marks SIDs issued to real local or domain users, as
// opposed to well-known ones like SYSTEM (S-1-5-18).
const realUserSIDPrefix = "S-1-5-21-"

var sidPattern = regexp.MustCompile(`^S-1-[0-9]+(-[0-9]+)+$`)

// Account is a local user account and its textual SID.
type Account struct {
	Name string
	SID  string
}

// Profile maps a real user SID to its profile directory.
type Profile struct {
	SID         string
	Username    string
	ProfilePath string
}

// ValidSID reports whether s is a SID in canonical string form, e.g.
// S-1-5-21-3623811015-3361044348-30300820-1013.
func ValidSID(s string) bool {
	return sidPattern.MatchString(s)
}

// accountAPI is the native surface the enumerator needs. enumUsers calls
// visit once per account record while the platform's record buffer is still
// held, and releases the buffer once after the last record.
type accountAPI interface {
	enumUsers(visit func(name string)) error
	lookupSID(name string) (string, error)
	profiles() ([]Profile, error)
}

// Enumerator lists local accounts. The zero value is not usable; call
// NewEnumerator.
type Enumerator struct {
	api    accountAPI
	Logger *zap.Logger
}

// NewEnumerator returns an Enumerator backed by the host's account
// directory.
func NewEnumerator(logger *zap.Logger) *Enumerator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Enumerator{api: newAccountAPI(), Logger: logger}
}

// ListLocalUserSIDs returns every local account whose SID could be resolved,
// in the order the platform enumerates them. Accounts whose lookup fails are
// skipped. Only a failure of the enumeration itself is returned as an error.
func (e *Enumerator) ListLocalUserSIDs() ([]Account, error) {
	accounts := []Account{}
	err := e.api.enumUsers(func(name string) {
		if name == "" {
			return
		}
		sid, err := e.api.lookupSID(name)
		if err != nil {
			e.Logger.Debug("skipping account", zap.String("account", name), zap.Error(err))
			return
		}
		if !ValidSID(sid) {
			e.Logger.Debug("skipping account with malformed SID",
				zap.String("account", name), zap.String("sid", sid))
			return
		}
		accounts = append(accounts, Account{Name: name, SID: sid})
	})
	if err != nil {
		return nil, err
	}
	return accounts, nil
}

// ListProfiles returns the profile directory of every real user that has
// logged in to this machine. Entries for well-known SIDs, deleted accounts
// or profiles without a path are dropped.
func (e *Enumerator) ListProfiles() ([]Profile, error) {
	all, err := e.api.profiles()
	if err != nil {
		return nil, fmt.Errorf("failed to read user profiles: %w", err)
	}

	profiles := []Profile{}
	for _, p := range all {
		if !strings.HasPrefix(p.SID, realUserSIDPrefix) || !ValidSID(p.SID) {
			continue
		}
		if p.ProfilePath == "" || p.Username == "" {
			continue
		}
		// Strip DOMAIN\ prefix if present (e.g. "COMPUTERNAME\alice" -> "alice")
		if parts := strings.SplitN(p.Username, `\`, 2); len(parts) == 2 {
			p.Username = parts[1]
		}
		profiles = append(profiles, p)
	}
	return profiles, nil
}
