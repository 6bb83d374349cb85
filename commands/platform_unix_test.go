//go:build !windows
// +build !windows

package commands

import "testing"

func TestExpectedAdminName_Unix(t *testing.T) {
	if expectedAdminName() != "root" {
		t.Fatalf("expected root on non-Windows, got %q", expectedAdminName())
	}
}
