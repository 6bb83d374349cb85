//go:build !windows
// +build !windows

package identity

import (
	"testing"

	"github.com/johma/winenhanced/native"
	"github.com/stretchr/testify/require"
)

func TestStubsReportUnsupported(t *testing.T) {
	e := NewEnumerator(nil)

	accounts, err := e.ListLocalUserSIDs()
	require.ErrorIs(t, err, ErrEnumeration)
	require.ErrorIs(t, err, native.ErrUnsupported)
	require.Nil(t, accounts)

	_, err = e.ListProfiles()
	require.ErrorIs(t, err, native.ErrUnsupported)

	_, _, err = ResolveAccountToSID("Administrators")
	require.ErrorIs(t, err, native.ErrUnsupported)

	_, err = ConvertSidToString([]byte{1})
	require.ErrorIs(t, err, native.ErrUnsupported)
}
