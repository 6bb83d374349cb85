//go:build windows
// +build windows

package identity

import (
	"fmt"
	"os/user"

	"golang.org/x/sys/windows/registry"
)

// profileListKey is the registry path under HKLM where Windows stores a
// mapping of every SID that has ever logged in to its profile directory.
const profileListKey = `SOFTWARE\Microsoft\Windows NT\CurrentVersion\ProfileList`

// profiles reads every ProfileList subkey. Filtering to real users happens
// in ListProfiles.
func (nativeAccounts) profiles() ([]Profile, error) {
	key, err := registry.OpenKey(registry.LOCAL_MACHINE, profileListKey,
		registry.ENUMERATE_SUB_KEYS|registry.QUERY_VALUE)
	if err != nil {
		return nil, fmt.Errorf("failed to open ProfileList registry key: %w", err)
	}
	defer key.Close()

	sids, err := key.ReadSubKeyNames(-1)
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate ProfileList subkeys: %w", err)
	}

	var entries []Profile
	for _, sid := range sids {
		profilePath, err := readProfilePath(key, sid)
		if err != nil {
			continue
		}
		p := Profile{SID: sid, ProfilePath: profilePath}
		// Deleted accounts keep their ProfileList entry but no longer resolve.
		if u, err := user.LookupId(sid); err == nil {
			p.Username = u.Username
		}
		entries = append(entries, p)
	}
	return entries, nil
}

// readProfilePath returns ProfileImagePath of the sid subkey of list.
// GetStringValue expands REG_EXPAND_SZ values.
func readProfilePath(list registry.Key, sid string) (string, error) {
	subkey, err := registry.OpenKey(list, sid, registry.QUERY_VALUE)
	if err != nil {
		return "", err
	}
	defer subkey.Close()
	path, _, err := subkey.GetStringValue("ProfileImagePath")
	return path, err
}
