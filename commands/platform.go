package commands

import (
	"runtime"
)

// expectedAdminName is the account class that can act on other users'
// processes and the shell.
func expectedAdminName() string {
	if isWindows() {
		return "Administrator"
	}
	return "root"
}

func isWindows() bool {
	return runtime.GOOS == "windows"
}
