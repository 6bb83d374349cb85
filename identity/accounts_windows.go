//go:build windows
// +build windows

package identity

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	netapi32        = windows.NewLazySystemDLL("netapi32.dll")
	procNetUserEnum = netapi32.NewProc("NetUserEnum")
)

const (
	nerrSuccess        = 0
	maxPreferredLength = 0xFFFFFFFF
	// userInfoLevel0 returns USER_INFO_0 records: the account name only.
	userInfoLevel0 = 0
)

// userInfo0 mirrors USER_INFO_0. The name is a NUL-terminated wide string
// inside the NetUserEnum buffer; no length is stored.
type userInfo0 struct {
	Name *uint16
}

type nativeAccounts struct{}

func newAccountAPI() accountAPI {
	return nativeAccounts{}
}

// enumUsers requests every account in one NetUserEnum call. The returned
// buffer is owned by this function and freed with NetApiBufferFree after the
// last record has been visited.
func (nativeAccounts) enumUsers(visit func(name string)) error {
	var buf *byte
	var entriesRead uint32
	var totalEntries uint32
	var resumeHandle uint32

	status, _, _ := procNetUserEnum.Call(
		0,
		uintptr(userInfoLevel0),
		0,
		uintptr(unsafe.Pointer(&buf)),
		uintptr(maxPreferredLength),
		uintptr(unsafe.Pointer(&entriesRead)),
		uintptr(unsafe.Pointer(&totalEntries)),
		uintptr(unsafe.Pointer(&resumeHandle)),
	)
	if buf != nil {
		defer windows.NetApiBufferFree(buf)
	}
	if status != nerrSuccess {
		return fmt.Errorf("%w: NetUserEnum returned status %d", ErrEnumeration, status)
	}
	if buf == nil || entriesRead == 0 {
		return nil
	}

	records := unsafe.Slice((*userInfo0)(unsafe.Pointer(buf)), entriesRead)
	for _, r := range records {
		if r.Name == nil {
			continue
		}
		visit(windows.UTF16PtrToString(r.Name))
	}
	return nil
}

func (nativeAccounts) lookupSID(name string) (string, error) {
	sid, _, err := ResolveAccountToSID(name)
	if err != nil {
		return "", err
	}
	return ConvertSidToString(sid)
}
