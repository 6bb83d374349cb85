//go:build !windows
// +build !windows

package identity

import (
	"fmt"

	"github.com/johma/winenhanced/native"
)

type stubAccounts struct{}

func newAccountAPI() accountAPI {
	return stubAccounts{}
}

func (stubAccounts) enumUsers(func(string)) error {
	return fmt.Errorf("%w: %w", ErrEnumeration, native.ErrUnsupported)
}

func (stubAccounts) lookupSID(string) (string, error) {
	return "", native.ErrUnsupported
}

func (stubAccounts) profiles() ([]Profile, error) {
	return nil, native.ErrUnsupported
}

// ResolveAccountToSID is a stub on non-Windows platforms.
func ResolveAccountToSID(name string) ([]byte, uint32, error) {
	return nil, 0, fmt.Errorf("ResolveAccountToSID: %w", native.ErrUnsupported)
}

// ConvertSidToString is a stub on non-Windows platforms.
func ConvertSidToString(sid []byte) (string, error) {
	return "", fmt.Errorf("ConvertSidToString: %w", native.ErrUnsupported)
}
