package osHealth

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	reportWidth     = 40
	TimestampLayout = "2006-01-02 15:04:05"
)

const (
	FormatText  = "text"
	FormatBox   = "box"
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// Formats lists the accepted report formats.
var Formats = []string{FormatText, FormatBox, FormatTable, FormatJSON, FormatYAML}

var (
	heavyRule = strings.Repeat("=", reportWidth)
	lightRule = strings.Repeat("-", reportWidth)
)

// Report is what the structured formats and the snapshot store serialize.
type Report struct {
	Snapshot *Snapshot `json:"snapshot" yaml:"snapshot"`
	Verdict  Verdict   `json:"verdict" yaml:"verdict"`
	ExitCode int       `json:"exit_code" yaml:"exit_code"`
}

func NewReport(s *Snapshot, v Verdict) Report {
	return Report{Snapshot: s, Verdict: v, ExitCode: s.ExitCode(v)}
}

// Render produces the report in the requested format.
func Render(format string, r Report) (string, error) {
	switch format {
	case "", FormatText:
		return BuildReport(r.Snapshot, r.Verdict), nil
	case FormatBox:
		return RenderBox(r.Snapshot, r.Verdict), nil
	case FormatTable:
		return RenderTable(r.Snapshot, r.Verdict)
	case FormatJSON:
		b, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return "", err
		}
		return string(b) + "\n", nil
	case FormatYAML:
		b, err := yaml.Marshal(r)
		if err != nil {
			return "", err
		}
		return string(b), nil
	default:
		return "", fmt.Errorf("unknown report format %q", format)
	}
}

// BuildReport renders the fixed-layout text report.
func BuildReport(s *Snapshot, v Verdict) string {
	var sb strings.Builder

	sb.WriteString(heavyRule + "\n")
	sb.WriteString("System Health Report\n")
	sb.WriteString("Time: " + s.TakenAt.Format(TimestampLayout) + "\n")
	sb.WriteString(heavyRule + "\n")

	for _, line := range sectionLines(s) {
		sb.WriteString(line.label + ": " + line.value + "\n")
	}

	sb.WriteString(lightRule + "\n")
	for _, msg := range alertLines(s, v) {
		sb.WriteString(msg + "\n")
	}
	sb.WriteString(heavyRule + "\n")

	return sb.String()
}

type sectionLine struct {
	label    string
	value    string
	severity Severity
}

const severityUnknown Severity = -1

// sectionLines returns one line per collector in report order.
func sectionLines(s *Snapshot) []sectionLine {
	lines := make([]sectionLine, 0, 4)

	if s.CPU != nil {
		lines = append(lines, sectionLine{"CPU Load", fmt.Sprintf("%s%% (load %.2f / %.2f / %.2f, %d cores)",
			FormatValue(s.CPU.Percent), s.CPU.Load1, s.CPU.Load5, s.CPU.Load15, s.CPU.Cores),
			cpuBand.classify(s.CPU.Percent)})
	} else {
		lines = append(lines, sectionLine{"CPU Load", "unavailable", severityUnknown})
	}

	if s.Memory != nil {
		lines = append(lines, sectionLine{"Memory", fmt.Sprintf("%s GB free / %s GB",
			FormatValue(s.Memory.AvailableGB), FormatValue(s.Memory.TotalGB)),
			memoryBand.classify(s.Memory.AvailableGB)})
	} else {
		lines = append(lines, sectionLine{"Memory", "unavailable", severityUnknown})
	}

	if s.Disk != nil {
		lines = append(lines, sectionLine{"Disk Used", fmt.Sprintf("%s%% (%s GB free of %s GB on %s)",
			FormatValue(s.Disk.UsedPercent), FormatValue(s.Disk.FreeGB), FormatValue(s.Disk.TotalGB), s.Disk.Path),
			diskBand.classify(s.Disk.UsedPercent)})
	} else {
		lines = append(lines, sectionLine{"Disk Used", "unavailable", severityUnknown})
	}

	if s.Uptime != nil {
		lines = append(lines, sectionLine{"Uptime", FormatValue(s.Uptime.Hours) + " hours", SeverityOK})
	} else {
		lines = append(lines, sectionLine{"Uptime", "unavailable", severityUnknown})
	}

	return lines
}

// alertLines lists unavailable metrics first, then the verdict messages.
func alertLines(s *Snapshot, v Verdict) []string {
	lines := make([]string, 0, len(s.Failures)+len(v.Messages))
	for _, f := range s.Failures {
		lines = append(lines, "UNKNOWN: "+string(f.Metric)+" unavailable ("+f.Message+")")
	}
	return append(lines, v.Messages...)
}
