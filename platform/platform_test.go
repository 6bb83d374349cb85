package platform

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/johma/winenhanced/config"
	"github.com/johma/winenhanced/folders"
	"github.com/johma/winenhanced/native/nativetest"
	"github.com/johma/winenhanced/process"
	"github.com/johma/winenhanced/sysinfo"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

type spawnRecorder struct {
	calls [][]string
}

func (s *spawnRecorder) start(name string, arg ...string) error {
	s.calls = append(s.calls, append([]string{name}, arg...))
	return nil
}

func newTestFacade(t *testing.T, cfgYAML string) (*Facade, *nativetest.Bridge, *spawnRecorder) {
	t.Helper()
	cfg, err := config.NewConfig([]byte(cfgYAML))
	require.NoError(t, err)
	b := &nativetest.Bridge{PIDs: []uint32{4, 8}}
	rec := &spawnRecorder{}
	f := New(cfg, Deps{Fs: afero.NewMemMapFs(), Bridge: b, Start: rec.start})
	return f, b, rec
}

func TestFacadeUsesConfiguredCommands(t *testing.T) {
	f, _, rec := newTestFacade(t, `
kill_command: pskill {pid}
task_manager_command: procexp.exe /t
environment_dialog_command: rundll32 sysdm.cpl,EditEnvironmentVariables
`)

	require.NoError(t, f.Kill(process.PID(31)))
	require.NoError(t, f.OpenTaskManager())
	require.NoError(t, f.OpenEnvironmentVariablesDialog())
	require.NoError(t, f.RunLauncher("game.exe"))
	require.Equal(t, [][]string{
		{"pskill", "31"},
		{"procexp.exe", "/t"},
		{"rundll32", "sysdm.cpl,EditEnvironmentVariables"},
		{"game.exe"},
	}, rec.calls)
}

func TestFacadeProcessesAndShell(t *testing.T) {
	f, b, _ := newTestFacade(t, "")

	require.Equal(t, []process.PID{4, 8}, f.ListPIDs())
	require.Equal(t, b.Allocs, b.Frees)

	require.NoError(t, f.RestartShell())
	require.Equal(t, 1, b.Restarts)
}

func TestFacadeApplicationRootUsesConfiguredName(t *testing.T) {
	f, _, _ := newTestFacade(t, "app_folder_name: custom_root\n")
	f.Folders.LocalDataRoot = func() (string, error) { return "/data/local", nil }

	p, ok := f.ResolveFolder(folders.ApplicationRoot)
	require.True(t, ok)
	require.Equal(t, filepath.Join("/data/local", "custom_root"), p)
}

type staticSource struct{}

func (staticSource) CPUs(context.Context) ([]sysinfo.CPU, error) {
	return []sysinfo.CPU{{Model: "test cpu", MHz: 2400, Cores: 4}}, nil
}

func (staticSource) CPUPercent(context.Context, time.Duration) ([]float64, error) {
	return []float64{50, 25}, nil
}

func (staticSource) Memory(context.Context) (sysinfo.Memory, error) {
	return sysinfo.Memory{Total: 8 << 30, Available: 2 << 30}, nil
}

func TestFacadeSysInfoUsesInjectedSource(t *testing.T) {
	cfg, err := config.Default()
	require.NoError(t, err)
	f := New(cfg, Deps{Fs: afero.NewMemMapFs(), Bridge: &nativetest.Bridge{}, SysInfo: staticSource{}})
	ctx := context.Background()

	cpus, err := f.CPUs(ctx)
	require.NoError(t, err)
	require.Equal(t, "test cpu", cpus[0].Model)

	usage, err := f.CPUUsage(ctx)
	require.NoError(t, err)
	require.Equal(t, []float64{50, 25}, usage)

	m, err := f.Memory(ctx)
	require.NoError(t, err)
	require.Equal(t, uint64(8<<30), m.Total)
}
