// Package nativetest provides an in-memory native.Bridge for tests of the
// packages built on top of the native module.
package nativetest

import (
	"github.com/johma/winenhanced/native"
)

// Bridge is a fake native.Bridge. It hands out Go-allocated arrays laid out
// like the native module's (count ids plus a zero sentinel) and records every
// allocation, free and restart so tests can assert ownership is honored.
type Bridge struct {
	// PIDs is the snapshot returned by AllocPIDs.
	PIDs []uint32
	// ReturnNil makes AllocPIDs report an internal failure.
	ReturnNil bool
	// Unsupported makes Supported return false.
	Unsupported bool

	Allocs      int
	Frees       int
	NilReturns  int
	Restarts    int
	InvalidFree int

	live map[*uint32][]uint32
}

var _ native.Bridge = (*Bridge)(nil)

func (b *Bridge) Supported() bool { return !b.Unsupported }

func (b *Bridge) RestartShell() { b.Restarts++ }

func (b *Bridge) AllocPIDs() (*uint32, int) {
	if b.ReturnNil {
		b.NilReturns++
		return nil, 0
	}
	if b.live == nil {
		b.live = map[*uint32][]uint32{}
	}
	buf := make([]uint32, len(b.PIDs)+1)
	copy(buf, b.PIDs)
	p := &buf[0]
	b.live[p] = buf
	b.Allocs++
	return p, len(b.PIDs)
}

// FreePIDs releases an array from AllocPIDs. Freeing nil, an unknown pointer
// or the same pointer twice is counted in InvalidFree.
func (b *Bridge) FreePIDs(p *uint32) {
	if _, ok := b.live[p]; !ok {
		b.InvalidFree++
		return
	}
	delete(b.live, p)
	b.Frees++
}

// Outstanding is the number of arrays allocated and not yet freed.
func (b *Bridge) Outstanding() int {
	return len(b.live)
}
