package osHealth

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

// CollectUptime returns hours since boot relative to now.
func CollectUptime(ctx context.Context, src SystemInfoSource, now time.Time) (Uptime, error) {
	boot, err := src.BootTime(ctx)
	if err != nil {
		return Uptime{}, unavailable(MetricUptime, deadline(ctx, err))
	}
	if boot.After(now) {
		return Uptime{}, unavailable(MetricUptime, fmt.Errorf("boot time %s is in the future", boot.Format(time.RFC3339)))
	}

	u := Uptime{
		Hours:    Round2(now.Sub(boot).Seconds() / 3600),
		BootTime: boot,
	}

	log.Debug().
		Str("component", "osHealth").
		Time("boot_time", boot).
		Float64("hours", u.Hours).
		Msg("Uptime collected")

	return u, nil
}
