package osHealth

import (
	"context"
	"fmt"
	"time"
)

// SystemInfoSource is the host capability consumed by the collectors.
// Every method performs one blocking query and returns raw counters.
type SystemInfoSource interface {
	LoadAverage(ctx context.Context) (LoadAverage, error)
	CPUCount(ctx context.Context) (int, error)
	PageSize(ctx context.Context) (uint64, error)
	MemoryTotal(ctx context.Context) (uint64, error)
	PageStats(ctx context.Context) (PageStats, error)
	DiskUsage(ctx context.Context, path string) (DiskCounters, error)
	BootTime(ctx context.Context) (time.Time, error)
}

const (
	SourceGopsutil = "gopsutil"
	SourceNative   = "native"
)

// NewSource returns the source selected by name.
func NewSource(name string) (SystemInfoSource, error) {
	switch name {
	case "", SourceGopsutil:
		return GopsutilSource{}, nil
	case SourceNative:
		return NewNativeSource(), nil
	default:
		return nil, fmt.Errorf("unknown source %q (want %s or %s)", name, SourceGopsutil, SourceNative)
	}
}
