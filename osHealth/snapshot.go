package osHealth

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// DefaultCollectorTimeout bounds every single collector call.
const DefaultCollectorTimeout = 2 * time.Second

// CollectOptions controls one collection pass.
type CollectOptions struct {
	DiskPath string
	Timeout  time.Duration
	Now      time.Time
}

// Failure records a collector that could not produce a value.
type Failure struct {
	Metric  Metric `json:"metric" yaml:"metric"`
	Message string `json:"message" yaml:"message"`
	Err     error  `json:"-" yaml:"-"`
}

// Snapshot is the normalized result of one collection pass.
// A nil section means its collector failed, see Failures.
type Snapshot struct {
	RunID    string    `json:"run_id" yaml:"run_id"`
	Hostname string    `json:"hostname" yaml:"hostname"`
	TakenAt  time.Time `json:"taken_at" yaml:"taken_at"`

	CPU    *CPULoad `json:"cpu,omitempty" yaml:"cpu,omitempty"`
	Memory *Memory  `json:"memory,omitempty" yaml:"memory,omitempty"`
	Disk   *Disk    `json:"disk,omitempty" yaml:"disk,omitempty"`
	Uptime *Uptime  `json:"uptime,omitempty" yaml:"uptime,omitempty"`

	Failures []Failure `json:"failures,omitempty" yaml:"failures,omitempty"`
}

// Collect runs the collectors one after another: CPU, memory, disk, uptime.
// A failing collector is recorded and never stops the others.
func Collect(ctx context.Context, src SystemInfoSource, opts CollectOptions) *Snapshot {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultCollectorTimeout
	}
	if opts.Now.IsZero() {
		opts.Now = time.Now()
	}

	hostname, _ := os.Hostname()
	s := &Snapshot{
		RunID:    uuid.NewString(),
		Hostname: hostname,
		TakenAt:  opts.Now,
	}

	if cpuLoad, err := runCollector(ctx, opts.Timeout, func(ctx context.Context) (CPULoad, error) {
		return CollectCPU(ctx, src)
	}); err != nil {
		s.fail(MetricCPU, err)
	} else {
		s.CPU = &cpuLoad
	}

	if memory, err := runCollector(ctx, opts.Timeout, func(ctx context.Context) (Memory, error) {
		return CollectMemory(ctx, src)
	}); err != nil {
		s.fail(MetricMemory, err)
	} else {
		s.Memory = &memory
	}

	if disk, err := runCollector(ctx, opts.Timeout, func(ctx context.Context) (Disk, error) {
		return CollectDisk(ctx, src, opts.DiskPath)
	}); err != nil {
		s.fail(MetricDisk, err)
	} else {
		s.Disk = &disk
	}

	if uptime, err := runCollector(ctx, opts.Timeout, func(ctx context.Context) (Uptime, error) {
		return CollectUptime(ctx, src, opts.Now)
	}); err != nil {
		s.fail(MetricUptime, err)
	} else {
		s.Uptime = &uptime
	}

	return s
}

func runCollector[T any](ctx context.Context, timeout time.Duration, fn func(context.Context) (T, error)) (T, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return fn(ctx)
}

func (s *Snapshot) fail(metric Metric, err error) {
	log.Error().
		Str("component", "osHealth").
		Str("metric", string(metric)).
		Bool("path_unavailable", errors.Is(err, ErrPathUnavailable)).
		Err(err).
		Msg("Collector failed")
	s.Failures = append(s.Failures, Failure{Metric: metric, Message: err.Error(), Err: err})
}

// Failed reports whether the collector for metric failed.
func (s *Snapshot) Failed(metric Metric) (Failure, bool) {
	for _, f := range s.Failures {
		if f.Metric == metric {
			return f, true
		}
	}
	return Failure{}, false
}

// Complete is true when every collector succeeded.
func (s *Snapshot) Complete() bool {
	return len(s.Failures) == 0
}

// Evaluate applies the threshold bands to the metrics that were collected.
// Unavailable metrics are left out rather than treated as zero, and a clean
// result over a partial snapshot never claims the whole system is healthy.
func (s *Snapshot) Evaluate() Verdict {
	var readings []reading
	if s.CPU != nil {
		readings = append(readings, reading{cpuBand, s.CPU.Percent})
	}
	if s.Memory != nil {
		readings = append(readings, reading{memoryBand, s.Memory.AvailableGB})
	}
	if s.Disk != nil {
		readings = append(readings, reading{diskBand, s.Disk.UsedPercent})
	}

	v := evaluate(readings)
	if !s.Complete() && v.Severity == SeverityOK {
		// the host is only healthy as far as we could see
		if len(readings) == 0 {
			v.Messages = []string{NoMetricsMessage}
		} else {
			v.Messages = []string{PartialHealthyMessage}
		}
	}
	return v
}

// ExitCode maps the verdict onto the process exit code.
// Missing metrics yield ExitUnknown unless a critical band already fired.
func (s *Snapshot) ExitCode(v Verdict) int {
	if s.Complete() || v.Severity == SeverityCritical {
		return int(v.Severity)
	}
	return ExitUnknown
}
