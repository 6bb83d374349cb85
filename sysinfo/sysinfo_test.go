package sysinfo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeSource struct {
	cpus     []CPU
	percent  []float64
	memory   Memory
	err      error
	interval time.Duration
}

func (f *fakeSource) CPUs(context.Context) ([]CPU, error) {
	return f.cpus, f.err
}

func (f *fakeSource) CPUPercent(_ context.Context, interval time.Duration) ([]float64, error) {
	f.interval = interval
	return f.percent, f.err
}

func (f *fakeSource) Memory(context.Context) (Memory, error) {
	return f.memory, f.err
}

func newTestReader(src Source) *Reader {
	r := NewReader(nil)
	r.Source = src
	return r
}

func TestReaderCPUs(t *testing.T) {
	src := &fakeSource{cpus: []CPU{{Model: "Intel(R) Core(TM) i7-9700", MHz: 3000, Cores: 8}}}
	cpus, err := newTestReader(src).CPUs(context.Background())
	require.NoError(t, err)
	require.Equal(t, src.cpus, cpus)
}

func TestReaderCPUUsageUsesSampleInterval(t *testing.T) {
	src := &fakeSource{percent: []float64{12.5, 3}}
	r := newTestReader(src)

	usage, err := r.CPUUsage(context.Background())
	require.NoError(t, err)
	require.Equal(t, []float64{12.5, 3}, usage)
	require.Equal(t, DefaultSampleInterval, src.interval)

	r.SampleInterval = 0
	_, err = r.CPUUsage(context.Background())
	require.NoError(t, err)
	require.Equal(t, DefaultSampleInterval, src.interval)

	r.SampleInterval = time.Second
	_, err = r.CPUUsage(context.Background())
	require.NoError(t, err)
	require.Equal(t, time.Second, src.interval)
}

func TestReaderMemory(t *testing.T) {
	src := &fakeSource{memory: Memory{Total: 16 << 30, Free: 4 << 30, Used: 10 << 30, Available: 6 << 30}}
	m, err := newTestReader(src).Memory(context.Background())
	require.NoError(t, err)
	require.Equal(t, src.memory, m)
}

func TestReaderErrorsAreUnavailable(t *testing.T) {
	cause := errors.New("wmi: access denied")
	r := newTestReader(&fakeSource{err: cause})
	ctx := context.Background()

	_, err := r.CPUs(ctx)
	require.ErrorIs(t, err, ErrUnavailable)
	require.ErrorIs(t, err, cause)

	_, err = r.CPUUsage(ctx)
	require.ErrorIs(t, err, ErrUnavailable)

	m, err := r.Memory(ctx)
	require.ErrorIs(t, err, ErrUnavailable)
	require.Equal(t, Memory{}, m)
}

func TestGiB(t *testing.T) {
	require.Equal(t, "0.00 GB", GiB(0))
	require.Equal(t, "1.00 GB", GiB(1<<30))
	require.Equal(t, "1.50 GB", GiB(3<<29))
	require.Equal(t, "15.87 GB", GiB(17040375808))
}

func TestHostMemory(t *testing.T) {
	m, err := NewReader(nil).Memory(context.Background())
	require.NoError(t, err)
	require.NotZero(t, m.Total)
	require.LessOrEqual(t, m.Available, m.Total)
}
