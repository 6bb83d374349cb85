//go:build windows
// +build windows

package commands

import "golang.org/x/sys/windows"

// IsElevated reports whether the current process token is elevated. Without
// elevation taskkill cannot end processes owned by other users.
func IsElevated() (bool, error) {
	var token windows.Token
	if err := windows.OpenProcessToken(windows.CurrentProcess(), windows.TOKEN_QUERY, &token); err != nil {
		return false, err
	}
	defer token.Close()
	return token.IsElevated(), nil
}
