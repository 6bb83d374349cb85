//go:build !windows
// +build !windows

package native

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStubBridgeNeverAllocates(t *testing.T) {
	b := New()
	require.False(t, b.Supported())

	pids, n := b.AllocPIDs()
	require.Nil(t, pids)
	require.Zero(t, n)

	// Both must be safe no-ops.
	b.FreePIDs(nil)
	b.RestartShell()
}
