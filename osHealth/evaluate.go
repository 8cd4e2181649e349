package osHealth

import (
	"github.com/monobilisim/hostcheck/common"
)

// Severity is the health verdict, ordered OK < Warning < Critical.
type Severity int

const (
	SeverityOK Severity = iota
	SeverityWarning
	SeverityCritical
)

// ExitUnknown is the exit code used when a metric could not be collected.
const ExitUnknown = 3

const (
	HealthyMessage        = "OK: System healthy"
	PartialHealthyMessage = "OK: Collected metrics healthy"
	NoMetricsMessage      = "UNKNOWN: No metrics evaluated"
)

func (s Severity) String() string {
	switch s {
	case SeverityOK:
		return "OK"
	case SeverityWarning:
		return "WARNING"
	case SeverityCritical:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

// Label is the short tag prefixed to alert messages.
func (s Severity) Label() string {
	switch s {
	case SeverityWarning:
		return "WARN"
	case SeverityCritical:
		return "CRIT"
	default:
		return s.String()
	}
}

func (s Severity) Status() common.Status {
	switch s {
	case SeverityOK:
		return common.StatusOK
	case SeverityWarning:
		return common.StatusWarning
	case SeverityCritical:
		return common.StatusCritical
	default:
		return common.StatusUnknown
	}
}

// Verdict is the evaluation result. Messages is never empty.
type Verdict struct {
	Severity Severity `json:"severity" yaml:"severity"`
	Messages []string `json:"messages" yaml:"messages"`
}

// band is one fixed threshold rule.
type band struct {
	classify func(v float64) Severity
	message  func(v float64) string
}

var (
	cpuBand = band{
		classify: func(v float64) Severity {
			switch {
			case v >= 90:
				return SeverityCritical
			case v >= 70:
				return SeverityWarning
			}
			return SeverityOK
		},
		message: func(v float64) string { return "CPU load " + FormatValue(v) + "%" },
	}

	memoryBand = band{
		classify: func(v float64) Severity {
			switch {
			case v <= 1:
				return SeverityCritical
			case v <= 2:
				return SeverityWarning
			}
			return SeverityOK
		},
		message: func(v float64) string { return "Memory available " + FormatValue(v) + " GB" },
	}

	diskBand = band{
		classify: func(v float64) Severity {
			switch {
			case v >= 95:
				return SeverityCritical
			case v >= 85:
				return SeverityWarning
			}
			return SeverityOK
		},
		message: func(v float64) string { return "Disk usage " + FormatValue(v) + "%" },
	}
)

type reading struct {
	band  band
	value float64
}

// Evaluate applies the CPU, memory and disk bands in that order.
func Evaluate(cpuPercent, memAvailableGB, diskUsedPercent float64) Verdict {
	return evaluate([]reading{
		{cpuBand, cpuPercent},
		{memoryBand, memAvailableGB},
		{diskBand, diskUsedPercent},
	})
}

func evaluate(readings []reading) Verdict {
	v := Verdict{Severity: SeverityOK}

	for _, r := range readings {
		sev := r.band.classify(r.value)
		if sev == SeverityOK {
			continue
		}
		v.Messages = append(v.Messages, sev.Label()+": "+r.band.message(r.value))
		v.Severity = max(v.Severity, sev)
	}

	if len(v.Messages) == 0 {
		v.Messages = []string{HealthyMessage}
	}
	return v
}
