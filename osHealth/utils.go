package osHealth

import (
	"context"
	"os"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/load"
	"github.com/shirou/gopsutil/v4/mem"
)

// GopsutilSource reads host counters through gopsutil.
type GopsutilSource struct{}

func (GopsutilSource) LoadAverage(ctx context.Context) (LoadAverage, error) {
	avg, err := load.AvgWithContext(ctx)
	if err != nil {
		return LoadAverage{}, err
	}
	return LoadAverage{Load1: avg.Load1, Load5: avg.Load5, Load15: avg.Load15}, nil
}

func (GopsutilSource) CPUCount(ctx context.Context) (int, error) {
	return cpu.CountsWithContext(ctx, true)
}

func (GopsutilSource) PageSize(ctx context.Context) (uint64, error) {
	return uint64(os.Getpagesize()), nil
}

func (GopsutilSource) MemoryTotal(ctx context.Context) (uint64, error) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return 0, err
	}
	return vm.Total, nil
}

// PageStats converts gopsutil byte counters back into page counts.
// gopsutil does not expose speculative pages, so Speculative stays zero.
func (s GopsutilSource) PageStats(ctx context.Context) (PageStats, error) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return PageStats{}, err
	}
	pageSize, _ := s.PageSize(ctx)
	if pageSize == 0 {
		pageSize = FallbackPageSize
	}
	return PageStats{
		Free:     vm.Free / pageSize,
		Active:   vm.Active / pageSize,
		Inactive: vm.Inactive / pageSize,
	}, nil
}

func (GopsutilSource) DiskUsage(ctx context.Context, path string) (DiskCounters, error) {
	usage, err := disk.UsageWithContext(ctx, path)
	if err != nil {
		return DiskCounters{}, pathError(path, err)
	}
	return DiskCounters{Total: usage.Total, Used: usage.Used, Free: usage.Free}, nil
}

func (GopsutilSource) BootTime(ctx context.Context) (time.Time, error) {
	boot, err := host.BootTimeWithContext(ctx)
	if err != nil {
		return time.Time{}, err
	}
	return time.Unix(int64(boot), 0), nil
}
