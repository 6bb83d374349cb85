//go:build windows && !cgo
// +build windows,!cgo

package native

import (
	"strings"
	"unsafe"

	"golang.org/x/sys/windows"
)

// lptr is LMEM_FIXED|LMEM_ZEROINIT.
const lptr = 0x0040

// syscallBridge implements the native module without a C toolchain. The pid
// array lives in LocalAlloc memory so ownership still belongs to the OS heap
// and FreePIDs must release it with LocalFree.
type syscallBridge struct{}

func newBridge() Bridge {
	return syscallBridge{}
}

func (syscallBridge) Supported() bool { return true }

// forEachProcess walks a Toolhelp process snapshot. The snapshot handle is
// closed before returning on every path.
func forEachProcess(visit func(entry *windows.ProcessEntry32) bool) error {
	snapshot, err := windows.CreateToolhelp32Snapshot(windows.TH32CS_SNAPPROCESS, 0)
	if err != nil {
		return err
	}
	defer windows.CloseHandle(snapshot)

	var entry windows.ProcessEntry32
	entry.Size = uint32(unsafe.Sizeof(entry))
	if err := windows.Process32First(snapshot, &entry); err != nil {
		return err
	}
	for {
		if !visit(&entry) {
			return nil
		}
		if err := windows.Process32Next(snapshot, &entry); err != nil {
			if err == windows.ERROR_NO_MORE_FILES {
				return nil
			}
			return err
		}
	}
}

func findShellPID() uint32 {
	var pid uint32
	_ = forEachProcess(func(entry *windows.ProcessEntry32) bool {
		name := windows.UTF16ToString(entry.ExeFile[:])
		if strings.EqualFold(name, "explorer.exe") {
			pid = entry.ProcessID
			return false
		}
		return true
	})
	return pid
}

func (syscallBridge) RestartShell() {
	pid := findShellPID()
	if pid == 0 {
		return
	}

	h, err := windows.OpenProcess(windows.PROCESS_TERMINATE, false, pid)
	if err != nil {
		return
	}
	err = windows.TerminateProcess(h, 0)
	windows.CloseHandle(h)
	if err != nil {
		return
	}

	cmdline, err := windows.UTF16FromString("explorer.exe")
	if err != nil {
		return
	}
	var si windows.StartupInfo
	si.Cb = uint32(unsafe.Sizeof(si))
	var pi windows.ProcessInformation
	if err := windows.CreateProcess(nil, &cmdline[0], nil, nil, false, 0, nil, nil, &si, &pi); err != nil {
		return
	}
	windows.CloseHandle(pi.Thread)
	windows.CloseHandle(pi.Process)
}

func (syscallBridge) AllocPIDs() (*uint32, int) {
	var pids []uint32
	if err := forEachProcess(func(entry *windows.ProcessEntry32) bool {
		pids = append(pids, entry.ProcessID)
		return true
	}); err != nil {
		return nil, 0
	}

	// One extra slot for the zero sentinel; LPTR zero-fills it.
	mem, err := windows.LocalAlloc(lptr, uint32((len(pids)+1)*4))
	if err != nil || mem == 0 {
		return nil, 0
	}
	buf := unsafe.Slice(localPIDs(mem), len(pids)+1)
	copy(buf, pids)
	return &buf[0], len(pids)
}

func (syscallBridge) FreePIDs(pids *uint32) {
	if pids == nil {
		return
	}
	windows.LocalFree(windows.Handle(unsafe.Pointer(pids)))
}

// localPIDs views a LocalAlloc block as a pid array. The block lives outside
// the Go heap and stays valid until LocalFree.
func localPIDs(mem uintptr) *uint32 {
	return *(**uint32)(unsafe.Pointer(&mem))
}
