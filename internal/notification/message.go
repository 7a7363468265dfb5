package notification

import (
	"fmt"
	"strings"
)

// buildSubject builds the subject line shared by the email channels
func buildSubject(event *Event) string {
	switch event.Type {
	case EventReportRendered:
		return fmt.Sprintf("[TrendyReports] Report Rendered: %s", event.ReportID)
	case EventReportFailed:
		return fmt.Sprintf("[TrendyReports] Report Failed: %s", event.ReportID)
	case EventLeadCreated:
		return fmt.Sprintf("[TrendyReports] New Lead Captured: %s", event.LeadID)
	default:
		return fmt.Sprintf("[TrendyReports] %s", event.Type)
	}
}

// buildBody builds the plain-text body shared by the email channels
func buildBody(event *Event) string {
	var sb strings.Builder

	switch event.Type {
	case EventReportRendered:
		sb.WriteString("Report Rendered\n")
	case EventReportFailed:
		sb.WriteString("Report Failed\n")
	case EventLeadCreated:
		sb.WriteString("New Lead Captured\n")
	default:
		sb.WriteString(string(event.Type) + "\n")
	}
	sb.WriteString("================================\n\n")

	if event.ReportID != "" {
		sb.WriteString(fmt.Sprintf("Report ID: %s\n", event.ReportID))
	}
	if event.ReportType != "" {
		sb.WriteString(fmt.Sprintf("Report Type: %s\n", event.ReportType))
	}
	if event.LeadID != "" {
		sb.WriteString(fmt.Sprintf("Lead ID: %s\n", event.LeadID))
	}
	if event.City != "" {
		sb.WriteString(fmt.Sprintf("Market: %s\n", event.City))
	}
	sb.WriteString(fmt.Sprintf("Time: %s\n", event.Timestamp.Format("2006-01-02 15:04:05 MST")))

	if event.Type == EventReportFailed && event.ErrorMessage != "" {
		sb.WriteString(fmt.Sprintf("\nError:\n%s\n", event.ErrorMessage))
	}

	if duration, ok := event.Extra["duration_ms"].(int64); ok {
		sb.WriteString(fmt.Sprintf("\nDuration: %.2f seconds\n", float64(duration)/1000))
	}

	if len(event.Extra) > 0 {
		sb.WriteString("\nAdditional Information:\n")
		for k, v := range event.Extra {
			// duration_ms is already displayed above
			if k == "duration_ms" {
				continue
			}
			sb.WriteString(fmt.Sprintf("  %s: %v\n", k, v))
		}
	}

	sb.WriteString("\n--\nSent by TrendyReports\n")

	return sb.String()
}
