package osHealth

import (
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/monobilisim/hostcheck/common"
)

// RenderBox renders the report inside a lipgloss box.
func RenderBox(s *Snapshot, v Verdict) string {
	var sb strings.Builder

	sb.WriteString(common.SectionTitle("Metrics"))
	sb.WriteString("\n")
	for _, line := range sectionLines(s) {
		sb.WriteString(common.StatusListItem(line.label, line.value, line.severity.Status()))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(common.SectionTitle("Verdict: " + v.Severity.String()))
	sb.WriteString("\n")
	for _, f := range s.Failures {
		sb.WriteString(common.AlertLine("UNKNOWN: "+string(f.Metric)+" unavailable", common.StatusUnknown))
		sb.WriteString("\n")
	}
	for _, msg := range v.Messages {
		sb.WriteString(common.AlertLine(msg, messageSeverity(msg).Status()))
		sb.WriteString("\n")
	}

	title := "hostcheck osHealth - " + s.Hostname + " - " + s.TakenAt.Format(TimestampLayout)
	return common.DisplayBox(title, strings.TrimRight(sb.String(), "\n")) + "\n"
}

// RenderTable renders metric rows with their band status, followed by the alerts.
func RenderTable(s *Snapshot, v Verdict) (string, error) {
	output := &strings.Builder{}
	output.WriteString("System Health Report (" + s.TakenAt.Format(TimestampLayout) + ")\n")

	table := tablewriter.NewWriter(output)
	table.Header("Metric", "Value", "Status")
	for _, line := range sectionLines(s) {
		if err := table.Append(line.label, line.value, line.severity.String()); err != nil {
			return "", err
		}
	}
	if err := table.Render(); err != nil {
		return "", err
	}

	for _, msg := range alertLines(s, v) {
		output.WriteString(msg + "\n")
	}
	return output.String(), nil
}

// messageSeverity recovers the band severity from a verdict message label.
func messageSeverity(msg string) Severity {
	switch {
	case strings.HasPrefix(msg, "UNKNOWN:"):
		return severityUnknown
	case strings.HasPrefix(msg, SeverityCritical.Label()+":"):
		return SeverityCritical
	case strings.HasPrefix(msg, SeverityWarning.Label()+":"):
		return SeverityWarning
	}
	return SeverityOK
}
