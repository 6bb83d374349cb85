//go:build !windows
// +build !windows

package folders

import "github.com/johma/winenhanced/native"

type stubShell struct{}

func newShellAPI() ShellAPI {
	return stubShell{}
}

func (stubShell) FolderPath(int) (string, error) {
	return "", native.ErrUnsupported
}

func (stubShell) KnownFolderPath(KnownFolder) (string, error) {
	return "", native.ErrUnsupported
}
