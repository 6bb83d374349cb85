//go:build windows
// +build windows

package folders

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	shell32                  = windows.NewLazySystemDLL("shell32.dll")
	procSHGetFolderPathW     = shell32.NewProc("SHGetFolderPathW")
	procSHGetKnownFolderPath = shell32.NewProc("SHGetKnownFolderPath")
)

// shgfpTypeCurrent asks for the folder's current, not default, location.
const shgfpTypeCurrent = 0

type win32Shell struct{}

func newShellAPI() ShellAPI {
	return win32Shell{}
}

// FolderPath calls SHGetFolderPathW with a stack buffer of MAX_PATH wide
// characters. Paths that do not fit are truncated by the platform.
func (win32Shell) FolderPath(csidl int) (string, error) {
	var buf [windows.MAX_PATH]uint16
	hr, _, _ := procSHGetFolderPathW.Call(
		0,
		uintptr(csidl),
		0,
		uintptr(shgfpTypeCurrent),
		uintptr(unsafe.Pointer(&buf[0])),
	)
	if int32(hr) < 0 {
		return "", fmt.Errorf("SHGetFolderPathW(0x%x) failed: HRESULT 0x%08x", csidl, uint32(hr))
	}
	return windows.UTF16ToString(buf[:]), nil
}

// KnownFolderPath calls SHGetKnownFolderPath. The returned string is owned by
// the caller and released with CoTaskMemFree once copied; the platform may
// allocate it even on failure.
func (win32Shell) KnownFolderPath(id KnownFolder) (string, error) {
	var guid *windows.KNOWNFOLDERID
	switch id {
	case KnownFolderLocalAppDataLow:
		guid = windows.FOLDERID_LocalAppDataLow
	default:
		return "", fmt.Errorf("unknown known folder %d", id)
	}

	var p *uint16
	hr, _, _ := procSHGetKnownFolderPath.Call(
		uintptr(unsafe.Pointer(guid)),
		0,
		0,
		uintptr(unsafe.Pointer(&p)),
	)
	if p != nil {
		defer windows.CoTaskMemFree(unsafe.Pointer(p))
	}
	if int32(hr) < 0 {
		return "", fmt.Errorf("SHGetKnownFolderPath failed: HRESULT 0x%08x", uint32(hr))
	}
	if p == nil {
		return "", fmt.Errorf("SHGetKnownFolderPath returned NULL")
	}
	return windows.UTF16PtrToString(p), nil
}
