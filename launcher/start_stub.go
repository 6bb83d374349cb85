//go:build !windows
// +build !windows

package launcher

import (
	"fmt"

	"github.com/johma/winenhanced/native"
)

// DefaultStart refuses to spawn on non-Windows hosts: every utility this
// tool launches is a Windows executable.
func DefaultStart(name string, arg ...string) error {
	return fmt.Errorf("%s: %w", name, native.ErrUnsupported)
}
