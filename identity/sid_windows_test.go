//go:build windows
// +build windows

package identity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Test resolving a well-known account and converting to textual SID.
func TestResolveAndConvertAdministratorsSID(t *testing.T) {
	sid, _, err := ResolveAccountToSID("Administrators")
	require.NoError(t, err)
	require.NotEmpty(t, sid)

	s, err := ConvertSidToString(sid)
	require.NoError(t, err)
	require.Equal(t, "S-1-5-32-544", s)
}

func TestResolveAccountToSIDEmptyName(t *testing.T) {
	_, _, err := ResolveAccountToSID("")
	require.Error(t, err)
}

func TestListLocalUserSIDsOnHost(t *testing.T) {
	accounts, err := NewEnumerator(nil).ListLocalUserSIDs()
	require.NoError(t, err)
	for _, a := range accounts {
		require.NotEmpty(t, a.Name)
		require.True(t, ValidSID(a.SID), a.SID)
	}
}
