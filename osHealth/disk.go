package osHealth

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
)

// DefaultDiskPath is the root filesystem.
const DefaultDiskPath = "/"

// CollectDisk reports usage of the filesystem holding path.
// All counters come from one statistics call.
func CollectDisk(ctx context.Context, src SystemInfoSource, path string) (Disk, error) {
	if path == "" {
		path = DefaultDiskPath
	}

	counters, err := src.DiskUsage(ctx, path)
	if err != nil {
		return Disk{}, unavailable(MetricDisk, deadline(ctx, err))
	}
	if counters.Total == 0 {
		return Disk{}, unavailable(MetricDisk, errors.New(path+": filesystem reports zero size"))
	}

	d := Disk{
		Path:        path,
		TotalGB:     BytesToGB(counters.Total),
		UsedGB:      BytesToGB(counters.Used),
		FreeGB:      BytesToGB(counters.Free),
		UsedPercent: Percent(float64(counters.Used), float64(counters.Total)),
	}

	log.Debug().
		Str("component", "osHealth").
		Str("path", path).
		Float64("used_percent", d.UsedPercent).
		Float64("free_gb", d.FreeGB).
		Msg("Disk usage collected")

	return d, nil
}
