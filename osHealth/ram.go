package osHealth

import (
	"context"

	"github.com/rs/zerolog/log"
)

// FallbackPageSize is used when the page size query fails.
const FallbackPageSize = 4096

// CollectMemory reports total memory and the reclaimable part of it.
// Available is free + inactive + speculative pages; active pages are in use.
func CollectMemory(ctx context.Context, src SystemInfoSource) (Memory, error) {
	pageSize, err := src.PageSize(ctx)
	if err != nil || pageSize == 0 {
		log.Warn().Err(err).Uint64("fallback", FallbackPageSize).Msg("Page size query failed, using fallback")
		pageSize = FallbackPageSize
	}

	total, err := src.MemoryTotal(ctx)
	if err != nil {
		return Memory{}, unavailable(MetricMemory, deadline(ctx, err))
	}

	stats, err := src.PageStats(ctx)
	if err != nil {
		return Memory{}, unavailable(MetricMemory, deadline(ctx, err))
	}

	available := (stats.Free + stats.Inactive + stats.Speculative) * pageSize

	memory := Memory{
		TotalGB:     BytesToGB(total),
		AvailableGB: BytesToGB(available),
		PageSize:    pageSize,
	}

	log.Debug().
		Str("component", "osHealth").
		Uint64("page_size", pageSize).
		Uint64("free_pages", stats.Free).
		Uint64("inactive_pages", stats.Inactive).
		Uint64("speculative_pages", stats.Speculative).
		Float64("available_gb", memory.AvailableGB).
		Float64("total_gb", memory.TotalGB).
		Msg("Memory collected")

	return memory, nil
}
