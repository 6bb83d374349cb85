//go:build windows
// +build windows

package native

import (
	"os"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestAllocPIDsContainsCurrentProcess(t *testing.T) {
	b := New()
	require.True(t, b.Supported())

	p, n := b.AllocPIDs()
	require.NotNil(t, p)
	require.Greater(t, n, 0)
	defer b.FreePIDs(p)

	buf := unsafe.Slice(p, n+1)
	require.Zero(t, buf[n], "array must end with a zero sentinel")

	self := uint32(os.Getpid())
	require.Contains(t, buf[:n], self)
}

func TestFreePIDsIgnoresNil(t *testing.T) {
	New().FreePIDs(nil)
}
