package logging

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func fixedNow() time.Time {
	return time.Date(2025, 3, 9, 14, 30, 0, 0, time.UTC)
}

func TestFileName(t *testing.T) {
	require.Equal(t, "2025-03-09.log", FileName(fixedNow()))
}

func TestNewWritesDailyFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	dir := filepath.Join("/appdata", "johma_windows_enhanced", DirName)

	logger, closeFn, err := New(Options{Fs: fs, Dir: dir, Now: fixedNow})
	require.NoError(t, err)
	logger.Info("restarted shell", zap.Int("pid", 42))
	logger.Debug("not written at info level")
	require.NoError(t, closeFn())

	content, err := afero.ReadFile(fs, filepath.Join(dir, "2025-03-09.log"))
	require.NoError(t, err)
	require.Contains(t, string(content), `"msg":"restarted shell"`)
	require.Contains(t, string(content), `"pid":42`)
	require.NotContains(t, string(content), "not written")
}

func TestNewAppendsToExistingFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	dir := "/logs"
	path := filepath.Join(dir, FileName(fixedNow()))
	require.NoError(t, afero.WriteFile(fs, path, []byte("earlier\n"), 0o640))

	logger, closeFn, err := New(Options{Fs: fs, Dir: dir, Level: "debug", Now: fixedNow})
	require.NoError(t, err)
	logger.Debug("later")
	require.NoError(t, closeFn())

	content, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	require.Regexp(t, `^earlier\n\{.*"msg":"later"`, string(content))
}

func TestNewInvalidLevel(t *testing.T) {
	_, _, err := New(Options{Fs: afero.NewMemMapFs(), Dir: "/logs", Level: "loud"})
	require.ErrorContains(t, err, "invalid log level")
}

func TestNewWithoutSinks(t *testing.T) {
	logger, closeFn, err := New(Options{})
	require.NoError(t, err)
	logger.Info("dropped")
	require.NoError(t, closeFn())
}

func TestNewReadOnlyFs(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
	_, _, err := New(Options{Fs: fs, Dir: "/logs", Now: fixedNow})
	require.Error(t, err)
}
