//go:build !windows
// +build !windows

package launcher

import (
	"testing"

	"github.com/johma/winenhanced/native"
	"github.com/stretchr/testify/require"
)

func TestDefaultStartUnsupported(t *testing.T) {
	err := New(nil).Launch(MustParseCommand("taskmgr"))
	require.ErrorIs(t, err, native.ErrUnsupported)
}
