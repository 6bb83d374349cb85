//go:build windows
// +build windows

package identity

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

// ResolveAccountToSID resolves an account name (e.g. "alice" or
// "Administrators") to a raw SID byte slice and its SID_NAME_USE value.
func ResolveAccountToSID(name string) ([]byte, uint32, error) {
	if name == "" {
		return nil, 0, fmt.Errorf("empty name")
	}
	pName, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return nil, 0, fmt.Errorf("invalid account name %q: %w", name, err)
	}

	var sidSize uint32
	var domSize uint32
	var sidUse uint32
	// first call only reports the sizes; ERROR_INSUFFICIENT_BUFFER is expected
	err = windows.LookupAccountName(nil, pName, nil, &sidSize, nil, &domSize, &sidUse)
	if err != nil && err != windows.ERROR_INSUFFICIENT_BUFFER {
		return nil, 0, fmt.Errorf("LookupAccountNameW failed for %s: %w", name, err)
	}
	if sidSize == 0 {
		return nil, 0, fmt.Errorf("LookupAccountNameW: could not determine SID buffer size for %s", name)
	}
	if domSize == 0 {
		domSize = 1
	}

	sid := make([]byte, sidSize)
	dom := make([]uint16, domSize)
	err = windows.LookupAccountName(nil, pName,
		(*windows.SID)(unsafe.Pointer(&sid[0])), &sidSize,
		&dom[0], &domSize, &sidUse)
	if err != nil {
		return nil, 0, fmt.Errorf("LookupAccountNameW failed for %s: %w", name, err)
	}
	return sid[:sidSize], sidUse, nil
}

// ConvertSidToString converts a raw SID into its textual form
// (e.g. S-1-5-32-544). The string ConvertSidToStringSidW allocates is
// copied and released with LocalFree before returning.
func ConvertSidToString(sid []byte) (string, error) {
	if len(sid) == 0 {
		return "", fmt.Errorf("empty SID")
	}
	var pStr *uint16
	if err := windows.ConvertSidToStringSid((*windows.SID)(unsafe.Pointer(&sid[0])), &pStr); err != nil {
		return "", fmt.Errorf("ConvertSidToStringSidW failed: %w", err)
	}
	if pStr == nil {
		return "", fmt.Errorf("ConvertSidToStringSidW returned NULL")
	}
	defer windows.LocalFree(windows.Handle(unsafe.Pointer(pStr)))
	return windows.UTF16PtrToString(pStr), nil
}
