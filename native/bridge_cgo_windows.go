//go:build windows && cgo
// +build windows,cgo

// Copyright 2025 The winenhanced Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package native

/*
#include <stdlib.h>
#include <windows.h>
#include <tlhelp32.h>

static DWORD find_shell_pid(void)
{
	HANDLE snapshot = CreateToolhelp32Snapshot(TH32CS_SNAPPROCESS, 0);
	if (snapshot == INVALID_HANDLE_VALUE) {
		return 0;
	}

	PROCESSENTRY32W entry;
	entry.dwSize = sizeof(entry);
	DWORD pid = 0;
	if (Process32FirstW(snapshot, &entry)) {
		do {
			if (lstrcmpiW(entry.szExeFile, L"explorer.exe") == 0) {
				pid = entry.th32ProcessID;
				break;
			}
		} while (Process32NextW(snapshot, &entry));
	}
	CloseHandle(snapshot);
	return pid;
}

static void restart_shell(void)
{
	DWORD pid = find_shell_pid();
	if (pid == 0) {
		return;
	}

	HANDLE shell = OpenProcess(PROCESS_TERMINATE, FALSE, pid);
	if (shell == NULL) {
		return;
	}
	if (!TerminateProcess(shell, 0)) {
		CloseHandle(shell);
		return;
	}
	CloseHandle(shell);

	// CreateProcessW may write to the command line buffer.
	WCHAR cmdline[] = L"explorer.exe";
	STARTUPINFOW si;
	PROCESS_INFORMATION pi;
	ZeroMemory(&si, sizeof(si));
	si.cb = sizeof(si);
	ZeroMemory(&pi, sizeof(pi));
	if (!CreateProcessW(NULL, cmdline, NULL, NULL, FALSE, 0, NULL, NULL, &si, &pi)) {
		return;
	}
	CloseHandle(pi.hThread);
	CloseHandle(pi.hProcess);
}

static DWORD *list_all_pids(size_t *count)
{
	*count = 0;
	HANDLE snapshot = CreateToolhelp32Snapshot(TH32CS_SNAPPROCESS, 0);
	if (snapshot == INVALID_HANDLE_VALUE) {
		return NULL;
	}

	PROCESSENTRY32W entry;
	entry.dwSize = sizeof(entry);
	if (!Process32FirstW(snapshot, &entry)) {
		CloseHandle(snapshot);
		return NULL;
	}

	size_t capacity = 64;
	size_t n = 0;
	// One extra slot is kept for the zero sentinel.
	DWORD *pids = (DWORD *)malloc((capacity + 1) * sizeof(DWORD));
	if (pids == NULL) {
		CloseHandle(snapshot);
		return NULL;
	}

	do {
		if (n == capacity) {
			capacity *= 2;
			DWORD *grown = (DWORD *)realloc(pids, (capacity + 1) * sizeof(DWORD));
			if (grown == NULL) {
				free(pids);
				CloseHandle(snapshot);
				return NULL;
			}
			pids = grown;
		}
		pids[n++] = entry.th32ProcessID;
	} while (Process32NextW(snapshot, &entry));

	pids[n] = 0;
	CloseHandle(snapshot);
	*count = n;
	return pids;
}

static void free_pids(DWORD *pids)
{
	free(pids);
}
*/
import "C"

import "unsafe"

// cgoBridge calls the C module above. Memory returned by list_all_pids is
// malloc'd by the C runtime and only free_pids may release it.
type cgoBridge struct{}

func newBridge() Bridge {
	return cgoBridge{}
}

func (cgoBridge) Supported() bool { return true }

func (cgoBridge) RestartShell() {
	C.restart_shell()
}

func (cgoBridge) AllocPIDs() (*uint32, int) {
	var n C.size_t
	p := C.list_all_pids(&n)
	if p == nil {
		return nil, 0
	}
	return (*uint32)(unsafe.Pointer(p)), int(n)
}

func (cgoBridge) FreePIDs(pids *uint32) {
	if pids == nil {
		return
	}
	C.free_pids((*C.DWORD)(unsafe.Pointer(pids)))
}
