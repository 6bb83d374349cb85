//go:build !windows
// +build !windows

package native

// stubBridge stands in for the native module on non-Windows hosts. It never
// allocates, so AllocPIDs always reports failure.
type stubBridge struct{}

func newBridge() Bridge {
	return stubBridge{}
}

func (stubBridge) Supported() bool { return false }

func (stubBridge) RestartShell() {}

func (stubBridge) AllocPIDs() (*uint32, int) { return nil, 0 }

func (stubBridge) FreePIDs(*uint32) {}
