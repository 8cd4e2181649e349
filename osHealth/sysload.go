package osHealth

import (
	"context"

	"github.com/rs/zerolog/log"
)

// CollectCPU reads the load triple and scales the 1 minute load by the core count.
// An unknown or zero core count is treated as a single core.
func CollectCPU(ctx context.Context, src SystemInfoSource) (CPULoad, error) {
	avg, err := src.LoadAverage(ctx)
	if err != nil {
		return CPULoad{}, unavailable(MetricCPU, deadline(ctx, err))
	}

	cores, err := src.CPUCount(ctx)
	if err != nil || cores <= 0 {
		log.Debug().Err(err).Int("cores", cores).Msg("CPU count unknown, assuming 1")
		cores = 1
	}

	cpuLoad := CPULoad{
		Load1:   avg.Load1,
		Load5:   avg.Load5,
		Load15:  avg.Load15,
		Cores:   cores,
		Percent: Round2(avg.Load1 / float64(cores) * 100),
	}

	log.Debug().
		Str("component", "osHealth").
		Float64("load1", cpuLoad.Load1).
		Int("cores", cores).
		Float64("percent", cpuLoad.Percent).
		Msg("CPU load collected")

	return cpuLoad, nil
}
