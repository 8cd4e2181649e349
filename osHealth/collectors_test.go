package osHealth

import (
	"context"
	"errors"
	"io/fs"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)

func TestCollectCPU(t *testing.T) {
	src := healthySource(testNow)

	got, err := CollectCPU(context.Background(), src)
	require.NoError(t, err)
	assert.Equal(t, 10.0, got.Percent)
	assert.Equal(t, 8, got.Cores)
	assert.Equal(t, 0.8, got.Load1)
	assert.Equal(t, 0.6, got.Load5)
	assert.Equal(t, 0.4, got.Load15)
}

func TestCollectCPUZeroOrUnknownCores(t *testing.T) {
	src := healthySource(testNow)
	src.load.Load1 = 0.5
	src.cores = 0

	got, err := CollectCPU(context.Background(), src)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Cores)
	assert.Equal(t, 50.0, got.Percent)

	src.cores = 4
	src.coresErr = errors.New("no cpu info")
	got, err = CollectCPU(context.Background(), src)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Cores)
	assert.Equal(t, 50.0, got.Percent)
}

func TestCollectCPURounding(t *testing.T) {
	src := healthySource(testNow)
	src.load.Load1 = 2.0
	src.cores = 3

	got, err := CollectCPU(context.Background(), src)
	require.NoError(t, err)
	assert.Equal(t, 66.67, got.Percent)
}

func TestCollectCPUUnavailable(t *testing.T) {
	src := healthySource(testNow)
	src.loadErr = errors.New("getloadavg not supported")

	_, err := CollectCPU(context.Background(), src)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMetricUnavailable)
	assert.ErrorIs(t, err, src.loadErr)

	var merr *MetricError
	require.ErrorAs(t, err, &merr)
	assert.Equal(t, MetricCPU, merr.Metric)
}

func TestCollectMemory(t *testing.T) {
	src := healthySource(testNow)

	got, err := CollectMemory(context.Background(), src)
	require.NoError(t, err)
	assert.Equal(t, 16.0, got.TotalGB)
	assert.Equal(t, 12.0, got.AvailableGB)
	assert.Equal(t, uint64(4096), got.PageSize)
}

func TestCollectMemoryOneGigabyte(t *testing.T) {
	src := healthySource(testNow)
	src.pages = PageStats{Free: 131072, Active: 999999, Inactive: 131072}

	got, err := CollectMemory(context.Background(), src)
	require.NoError(t, err)
	assert.Equal(t, 1.0, got.AvailableGB)
}

func TestCollectMemoryIncludesSpeculative(t *testing.T) {
	src := healthySource(testNow)
	src.pageSize = 16384
	src.pages = PageStats{Free: 32768, Inactive: 16384, Speculative: 16384}

	got, err := CollectMemory(context.Background(), src)
	require.NoError(t, err)
	// (32768 + 16384 + 16384) * 16 KiB = 1 GiB
	assert.Equal(t, 1.0, got.AvailableGB)
}

func TestCollectMemoryPageSizeFallback(t *testing.T) {
	src := healthySource(testNow)
	src.pageSize = 0
	src.pageSizeErr = errors.New("sysctl: unknown oid")
	src.pages = PageStats{Free: 262144}

	got, err := CollectMemory(context.Background(), src)
	require.NoError(t, err)
	assert.Equal(t, uint64(FallbackPageSize), got.PageSize)
	assert.Equal(t, 1.0, got.AvailableGB)
}

func TestCollectMemoryUnavailable(t *testing.T) {
	src := healthySource(testNow)
	src.pagesErr = errors.New("vm_stat: exit status 1")

	_, err := CollectMemory(context.Background(), src)
	assert.ErrorIs(t, err, ErrMetricUnavailable)

	src = healthySource(testNow)
	src.memTotalErr = errors.New("hw.memsize missing")

	_, err = CollectMemory(context.Background(), src)
	assert.ErrorIs(t, err, ErrMetricUnavailable)
}

func TestCollectDisk(t *testing.T) {
	src := healthySource(testNow)

	got, err := CollectDisk(context.Background(), src, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"/"}, src.diskPaths)
	assert.Equal(t, Disk{Path: "/", TotalGB: 100, UsedGB: 20, FreeGB: 80, UsedPercent: 20}, got)
}

func TestCollectDiskPathUnavailable(t *testing.T) {
	src := healthySource(testNow)
	src.diskErr = pathError("/mnt/missing", fs.ErrNotExist)

	_, err := CollectDisk(context.Background(), src, "/mnt/missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPathUnavailable)
	assert.NotErrorIs(t, err, ErrMetricUnavailable)
	assert.Equal(t, []string{"/mnt/missing"}, src.diskPaths)
}

func TestCollectDiskZeroSize(t *testing.T) {
	src := healthySource(testNow)
	src.disk = DiskCounters{}

	_, err := CollectDisk(context.Background(), src, "/")
	assert.ErrorIs(t, err, ErrMetricUnavailable)
}

func TestCollectUptime(t *testing.T) {
	src := healthySource(testNow)
	src.boot = testNow.Add(-(27*time.Hour + 8*time.Minute))

	got, err := CollectUptime(context.Background(), src, testNow)
	require.NoError(t, err)
	assert.Equal(t, 27.13, got.Hours)
	assert.True(t, src.boot.Equal(got.BootTime))
}

func TestCollectUptimeUnavailable(t *testing.T) {
	src := healthySource(testNow)
	src.bootErr = errors.New("kern.boottime: unexpected format")

	_, err := CollectUptime(context.Background(), src, testNow)
	assert.ErrorIs(t, err, ErrMetricUnavailable)

	src = healthySource(testNow)
	src.boot = testNow.Add(time.Hour)
	_, err = CollectUptime(context.Background(), src, testNow)
	assert.ErrorIs(t, err, ErrMetricUnavailable)
}

func TestPathError(t *testing.T) {
	assert.ErrorIs(t, pathError("/x", fs.ErrNotExist), ErrPathUnavailable)
	assert.ErrorIs(t, pathError("/x", fs.ErrPermission), ErrPathUnavailable)
	assert.NotErrorIs(t, pathError("/x", errors.New("io error")), ErrPathUnavailable)
}
