package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/johma/winenhanced/commands"
	"github.com/johma/winenhanced/config"
	"github.com/johma/winenhanced/folders"
	"github.com/johma/winenhanced/identity"
	"github.com/johma/winenhanced/process"
	"github.com/johma/winenhanced/sysinfo"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// mockSystem is a configurable commands.System that records calls.
type mockSystem struct {
	Accounts   []identity.Account
	Profiles   []identity.Profile
	EnumErr    error
	Folders    map[folders.SpecialFolder]string
	PIDs       []process.PID
	SpawnErr   error
	RestartErr error
	CPUList    []sysinfo.CPU
	Load       []float64
	Mem        sysinfo.Memory
	InfoErr    error

	Killed   []process.PID
	Opened   []string
	Restarts int

	// Config is the config the facade was built from.
	Config *config.Config
}

func (m *mockSystem) ListLocalUserSIDs() ([]identity.Account, error) {
	if m.EnumErr != nil {
		return nil, m.EnumErr
	}
	return m.Accounts, nil
}

func (m *mockSystem) ListProfiles() ([]identity.Profile, error) {
	if m.EnumErr != nil {
		return nil, m.EnumErr
	}
	return m.Profiles, nil
}

func (m *mockSystem) ResolveFolder(f folders.SpecialFolder) (string, bool) {
	p, ok := m.Folders[f]
	return p, ok
}

func (m *mockSystem) ListPIDs() []process.PID { return m.PIDs }

func (m *mockSystem) Kill(pid process.PID) error {
	if m.SpawnErr != nil {
		return m.SpawnErr
	}
	m.Killed = append(m.Killed, pid)
	return nil
}

func (m *mockSystem) RestartShell() error {
	if m.RestartErr != nil {
		return m.RestartErr
	}
	m.Restarts++
	return nil
}

func (m *mockSystem) open(what string) error {
	if m.SpawnErr != nil {
		return m.SpawnErr
	}
	m.Opened = append(m.Opened, what)
	return nil
}

func (m *mockSystem) OpenTaskManager() error { return m.open("taskmgr") }

func (m *mockSystem) OpenEnvironmentVariablesDialog() error { return m.open("env") }

func (m *mockSystem) OpenExplorer(path string) error { return m.open("explorer:" + path) }

func (m *mockSystem) RunLauncher(path string) error { return m.open("run:" + path) }

func (m *mockSystem) CPUs(context.Context) ([]sysinfo.CPU, error) {
	return m.CPUList, m.InfoErr
}

func (m *mockSystem) CPUUsage(context.Context) ([]float64, error) {
	return m.Load, m.InfoErr
}

func (m *mockSystem) Memory(context.Context) (sysinfo.Memory, error) {
	return m.Mem, m.InfoErr
}

type testApp struct {
	App    *commands.App
	System *mockSystem
	Fs     afero.Fs
	Out    *bytes.Buffer
	ErrOut *bytes.Buffer
}

const testDataRoot = "/home/alice/AppData/Local"

func newTestApp(t *testing.T, sys *mockSystem, elevated bool) *testApp {
	t.Helper()
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	fs := afero.NewMemMapFs()
	app := &commands.App{
		Fs:     fs,
		Out:    out,
		ErrOut: errOut,
		Logger: zap.NewNop(),
		NewSystem: func(cfg *config.Config, _ afero.Fs, _ *zap.Logger) commands.System {
			sys.Config = cfg
			return sys
		},
		IsElevated:    func() (bool, error) { return elevated, nil },
		LocalDataRoot: func() (string, error) { return testDataRoot, nil },
	}
	return &testApp{App: app, System: sys, Fs: fs, Out: out, ErrOut: errOut}
}

func (ta *testApp) run(args ...string) error {
	cmd := commands.NewRootCmd("test_version", ta.App)
	cmd.SetArgs(args)
	return cmd.Execute()
}

var errSpawn = errors.New("failed to start taskkill /F /PID 1: file does not exist")
