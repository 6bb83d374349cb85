//go:build windows && !cgo
// +build windows,!cgo

package native

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
	"golang.org/x/sys/windows"
)

func TestLocalPIDsViewsLocalAllocBlock(t *testing.T) {
	mem, err := windows.LocalAlloc(lptr, 3*4)
	require.NoError(t, err)
	require.NotZero(t, mem)

	pids := unsafe.Slice(localPIDs(mem), 3)
	require.Equal(t, []uint32{0, 0, 0}, pids)

	pids[0], pids[1] = 4, 1234
	require.Equal(t, []uint32{4, 1234, 0}, unsafe.Slice(localPIDs(mem), 3))

	syscallBridge{}.FreePIDs(&pids[0])
}
