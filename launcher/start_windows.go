//go:build windows
// +build windows

package launcher

import "os/exec"

// DefaultStart creates the child and immediately releases its process
// handle. Nothing waits on it. Once Start succeeds the spawn counts as a
// success even if releasing the handle fails.
func DefaultStart(name string, arg ...string) error {
	cmd := exec.Command(name, arg...)
	if err := cmd.Start(); err != nil {
		return err
	}
	_ = cmd.Process.Release()
	return nil
}
