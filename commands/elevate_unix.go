//go:build !windows
// +build !windows

package commands

import "os"

// IsElevated reports whether the process runs as root. Nothing on these
// hosts needs it, but the warning logic stays uniform.
func IsElevated() (bool, error) {
	return os.Geteuid() == 0, nil
}
