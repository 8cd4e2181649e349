// This file defines the types used in the osHealth package
//
// It provides the following types:
// - OsHealth: the viper-bound configuration
// - CPULoad, Memory, Disk, Uptime: normalized collector results
// - LoadAverage, PageStats, DiskCounters: raw host counters

package osHealth

import "time"

type OsHealth struct {
	Source               string
	Collector_Timeout    time.Duration
	Abort_On_Unavailable bool

	Disk struct {
		Path string
	}

	Report struct {
		Save   bool
		Dir    string
		Format string
	}

	Snapshot struct {
		Persist bool
	}
}

// Metric names a collector domain.
type Metric string

const (
	MetricCPU    Metric = "cpu"
	MetricMemory Metric = "memory"
	MetricDisk   Metric = "disk"
	MetricUptime Metric = "uptime"
)

// LoadAverage is the raw 1/5/15 minute load triple.
type LoadAverage struct {
	Load1  float64
	Load5  float64
	Load15 float64
}

// PageStats is the page-state breakdown, in pages.
type PageStats struct {
	Free        uint64
	Active      uint64
	Inactive    uint64
	Speculative uint64
}

// DiskCounters come from a single filesystem statistics call.
type DiskCounters struct {
	Total uint64
	Used  uint64
	Free  uint64
}

type CPULoad struct {
	Load1   float64 `json:"load1" yaml:"load1"`
	Load5   float64 `json:"load5" yaml:"load5"`
	Load15  float64 `json:"load15" yaml:"load15"`
	Cores   int     `json:"cores" yaml:"cores"`
	Percent float64 `json:"percent" yaml:"percent"`
}

type Memory struct {
	TotalGB     float64 `json:"total_gb" yaml:"total_gb"`
	AvailableGB float64 `json:"available_gb" yaml:"available_gb"`
	PageSize    uint64  `json:"page_size" yaml:"page_size"`
}

type Disk struct {
	Path        string  `json:"path" yaml:"path"`
	TotalGB     float64 `json:"total_gb" yaml:"total_gb"`
	UsedGB      float64 `json:"used_gb" yaml:"used_gb"`
	FreeGB      float64 `json:"free_gb" yaml:"free_gb"`
	UsedPercent float64 `json:"used_percent" yaml:"used_percent"`
}

type Uptime struct {
	Hours    float64   `json:"hours" yaml:"hours"`
	BootTime time.Time `json:"boot_time" yaml:"boot_time"`
}
