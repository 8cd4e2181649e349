package osHealth

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseVMStat reads the page-state breakdown printed by vm_stat, and the page
// size from its "(page size of N bytes)" header, 0 when absent.
// Lines without a colon or with a non-numeric value are skipped.
func ParseVMStat(text string) (PageStats, uint64, error) {
	var stats PageStats
	var pageSize uint64
	var sawFree, sawInactive bool

	scanner := bufio.NewScanner(strings.NewReader(text))
	for scanner.Scan() {
		line := scanner.Text()
		if pageSize == 0 {
			pageSize = vmStatPageSize(line)
		}
		key, val, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		val = strings.ReplaceAll(strings.TrimSpace(val), ".", "")
		n, err := strconv.ParseUint(val, 10, 64)
		if err != nil {
			continue
		}

		switch strings.TrimSpace(key) {
		case "Pages free":
			stats.Free, sawFree = n, true
		case "Pages active":
			stats.Active = n
		case "Pages inactive":
			stats.Inactive, sawInactive = n, true
		case "Pages speculative":
			stats.Speculative = n
		}
	}
	if err := scanner.Err(); err != nil {
		return PageStats{}, 0, err
	}

	if !sawFree && !sawInactive {
		return PageStats{}, 0, fmt.Errorf("vm_stat: no free or inactive page counters")
	}
	return stats, pageSize, nil
}

func vmStatPageSize(line string) uint64 {
	const prefix = "page size of "

	idx := strings.Index(line, prefix)
	if idx < 0 {
		return 0
	}
	fields := strings.Fields(line[idx+len(prefix):])
	if len(fields) == 0 {
		return 0
	}
	n, err := strconv.ParseUint(fields[0], 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// ParseMeminfo reads /proc/meminfo and converts the kB counters to pages.
func ParseMeminfo(text string, pageSize uint64) (PageStats, uint64, error) {
	if pageSize == 0 {
		pageSize = FallbackPageSize
	}

	vals := map[string]uint64{}
	scanner := bufio.NewScanner(strings.NewReader(text))
	for scanner.Scan() {
		parts := strings.Fields(scanner.Text())
		if len(parts) < 2 {
			continue
		}
		v, err := strconv.ParseUint(parts[1], 10, 64)
		if err != nil {
			continue
		}
		vals[strings.TrimSuffix(parts[0], ":")] = v * 1024
	}
	if err := scanner.Err(); err != nil {
		return PageStats{}, 0, err
	}

	total, ok := vals["MemTotal"]
	if !ok {
		return PageStats{}, 0, fmt.Errorf("meminfo: MemTotal missing")
	}
	free, ok := vals["MemFree"]
	if !ok {
		return PageStats{}, 0, fmt.Errorf("meminfo: MemFree missing")
	}

	return PageStats{
		Free:     free / pageSize,
		Active:   vals["Active"] / pageSize,
		Inactive: vals["Inactive"] / pageSize,
	}, total, nil
}

// ParseLoadAvg accepts /proc/loadavg ("0.52 0.58 0.59 1/123 456")
// and sysctl vm.loadavg ("{ 0.52 0.58 0.59 }").
func ParseLoadAvg(text string) (LoadAverage, error) {
	fields := strings.Fields(strings.Trim(strings.TrimSpace(text), "{}"))
	if len(fields) < 3 {
		return LoadAverage{}, fmt.Errorf("loadavg: expected 3 fields, got %q", text)
	}

	var vals [3]float64
	for i := range vals {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return LoadAverage{}, fmt.Errorf("loadavg: field %d: %w", i+1, err)
		}
		vals[i] = v
	}
	return LoadAverage{Load1: vals[0], Load5: vals[1], Load15: vals[2]}, nil
}

// ParseBootTime reads sysctl kern.boottime: "{ sec = 1700000000, usec = 12 } Tue Nov 14 ...".
func ParseBootTime(text string) (time.Time, error) {
	const secKey = "sec = "

	idx := strings.Index(text, secKey)
	if idx < 0 {
		return time.Time{}, fmt.Errorf("kern.boottime: %q not found in %q", secKey, text)
	}
	rest := text[idx+len(secKey):]
	end := strings.IndexByte(rest, ',')
	if end < 0 {
		return time.Time{}, fmt.Errorf("kern.boottime: missing delimiter in %q", text)
	}

	sec, err := strconv.ParseInt(strings.TrimSpace(rest[:end]), 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("kern.boottime: %w", err)
	}
	return time.Unix(sec, 0), nil
}

// ParseProcStatBootTime reads the "btime" line of /proc/stat.
func ParseProcStatBootTime(text string) (time.Time, error) {
	scanner := bufio.NewScanner(strings.NewReader(text))
	// the intr line can be far longer than the default token size
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) != 2 || fields[0] != "btime" {
			continue
		}
		sec, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			continue
		}
		return time.Unix(sec, 0), nil
	}
	if err := scanner.Err(); err != nil {
		return time.Time{}, err
	}
	return time.Time{}, fmt.Errorf("/proc/stat: btime missing")
}

// ParseProcStatCPUCount counts the per-CPU "cpuN" lines of /proc/stat,
// one per online CPU on the host regardless of the process affinity mask.
func ParseProcStatCPUCount(text string) (int, error) {
	n := 0
	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		name, _, _ := strings.Cut(scanner.Text(), " ")
		id, ok := strings.CutPrefix(name, "cpu")
		if !ok || id == "" {
			continue
		}
		if _, err := strconv.Atoi(id); err == nil {
			n++
		}
	}
	if err := scanner.Err(); err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, fmt.Errorf("/proc/stat: no per-cpu lines")
	}
	return n, nil
}

func parseSysctlUint(out []byte) (uint64, error) {
	return strconv.ParseUint(strings.TrimSpace(string(out)), 10, 64)
}
