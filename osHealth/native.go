package osHealth

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/monobilisim/hostcheck/common/clientport"
)

// NativeSource queries the host utilities directly: sysctl and vm_stat on
// darwin, procfs everywhere else. Disk usage comes from statfs on both.
type NativeSource struct {
	Runner clientport.CommandRunner
	FS     clientport.FS
	GOOS   string
	// Statfs performs the single filesystem statistics call for a path.
	Statfs func(path string) (DiskCounters, error)
	// HostPageSize is the kernel page size used when no sysctl is available.
	HostPageSize func() (uint64, error)
}

func NewNativeSource() *NativeSource {
	return &NativeSource{
		Runner:       clientport.ExecRunner{},
		FS:           clientport.OSFS{},
		GOOS:         runtime.GOOS,
		Statfs:       statfsDisk,
		HostPageSize: hostPageSize,
	}
}

func (s *NativeSource) darwin() bool {
	return s.GOOS == "darwin"
}

func (s *NativeSource) sysctl(ctx context.Context, name string) ([]byte, error) {
	return s.Runner.Run(ctx, "sysctl", "-n", name)
}

func (s *NativeSource) LoadAverage(ctx context.Context) (LoadAverage, error) {
	var (
		out []byte
		err error
	)
	if s.darwin() {
		out, err = s.sysctl(ctx, "vm.loadavg")
	} else {
		out, err = s.FS.ReadFile("/proc/loadavg")
	}
	if err != nil {
		return LoadAverage{}, err
	}
	return ParseLoadAvg(string(out))
}

func (s *NativeSource) CPUCount(ctx context.Context) (int, error) {
	if s.darwin() {
		out, err := s.sysctl(ctx, "hw.ncpu")
		if err != nil {
			return 0, err
		}
		n, err := parseSysctlUint(out)
		return int(n), err
	}

	// /proc/loadavg is host wide, so the core count must be too
	out, err := s.FS.ReadFile("/proc/stat")
	if err == nil {
		var n int
		if n, err = ParseProcStatCPUCount(string(out)); err == nil {
			return n, nil
		}
	}
	log.Debug().Err(err).Int("cpus", runtime.NumCPU()).Msg("Host CPU count unavailable, using schedulable CPUs")
	return runtime.NumCPU(), nil
}

func (s *NativeSource) PageSize(ctx context.Context) (uint64, error) {
	if s.darwin() {
		out, err := s.sysctl(ctx, "hw.pagesize")
		if err == nil {
			return parseSysctlUint(out)
		}
		// vm_stat prints the page size in its header
		if vmOut, vmErr := s.Runner.Run(ctx, "vm_stat"); vmErr == nil {
			if _, size, _ := ParseVMStat(string(vmOut)); size > 0 {
				return size, nil
			}
		}
		return 0, err
	}
	if s.HostPageSize == nil {
		return 0, fmt.Errorf("page size query not supported on %s", s.GOOS)
	}
	return s.HostPageSize()
}

func (s *NativeSource) MemoryTotal(ctx context.Context) (uint64, error) {
	if s.darwin() {
		out, err := s.sysctl(ctx, "hw.memsize")
		if err != nil {
			return 0, err
		}
		return parseSysctlUint(out)
	}
	out, err := s.FS.ReadFile("/proc/meminfo")
	if err != nil {
		return 0, err
	}
	_, total, err := ParseMeminfo(string(out), FallbackPageSize)
	return total, err
}

func (s *NativeSource) PageStats(ctx context.Context) (PageStats, error) {
	if s.darwin() {
		out, err := s.Runner.Run(ctx, "vm_stat")
		if err != nil {
			return PageStats{}, err
		}
		stats, _, err := ParseVMStat(string(out))
		return stats, err
	}

	pageSize, err := s.PageSize(ctx)
	if err != nil || pageSize == 0 {
		pageSize = FallbackPageSize
	}
	out, err := s.FS.ReadFile("/proc/meminfo")
	if err != nil {
		return PageStats{}, err
	}
	stats, _, err := ParseMeminfo(string(out), pageSize)
	return stats, err
}

func (s *NativeSource) DiskUsage(ctx context.Context, path string) (DiskCounters, error) {
	if s.Statfs == nil {
		return DiskCounters{}, fmt.Errorf("statfs not supported on %s", s.GOOS)
	}
	counters, err := s.Statfs(path)
	if err != nil {
		return DiskCounters{}, pathError(path, err)
	}
	return counters, nil
}

func (s *NativeSource) BootTime(ctx context.Context) (time.Time, error) {
	if s.darwin() {
		out, err := s.sysctl(ctx, "kern.boottime")
		if err != nil {
			return time.Time{}, err
		}
		return ParseBootTime(string(out))
	}
	out, err := s.FS.ReadFile("/proc/stat")
	if err != nil {
		return time.Time{}, err
	}
	return ParseProcStatBootTime(string(out))
}
