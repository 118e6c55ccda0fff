package output

import (
	"fmt"
	"io"
	"sort"

	"github.com/olekukonko/tablewriter"

	"github.com/yourusername/winrescue/internal/models"
	"github.com/yourusername/winrescue/internal/policy"
	"github.com/yourusername/winrescue/internal/types"
)

// WindowRow is one line of the window listing
type WindowRow struct {
	Snapshot types.WindowSnapshot
	Verdict  policy.Verdict
}

// PrintWindowsTable prints every scanned window with its classification
func PrintWindowsTable(w io.Writer, rows []WindowRow) {
	table := tablewriter.NewWriter(w)
	table.Header("Handle", "Title", "Visible", "Min", "Max", "Rect", "Shown", "Verdict")

	for _, row := range rows {
		snap := row.Snapshot

		rect := snap.Rect.String()
		if snap.RectErr != nil {
			rect = "-"
		}

		shown := "-"
		if row.Verdict.Reason == types.SkipVisible || row.Verdict.Eligible {
			shown = FormatPercent(row.Verdict.DisplayPercent)
		}

		table.Append(
			snap.Handle.String(),
			truncate(snap.Title, 40),
			check(snap.IsVisible),
			check(snap.IsMinimized),
			check(snap.IsMaximized),
			rect,
			shown,
			row.Verdict.Reason.String(),
		)
	}

	table.Render()
}

// PrintSummaryTable prints skip counts and remediation totals for a scan
func PrintSummaryTable(w io.Writer, report *models.Report) {
	reasons := make([]string, 0, len(report.Skipped))
	for reason := range report.Skipped {
		reasons = append(reasons, reason)
	}
	sort.Strings(reasons)

	table := tablewriter.NewWriter(w)
	table.Header("Outcome", "Windows")

	for _, reason := range reasons {
		table.Append("skipped: "+reason, fmt.Sprintf("%d", report.Skipped[reason]))
	}
	table.Append("remediated", fmt.Sprintf("%d", len(report.Remediated)))
	table.Append("failures", fmt.Sprintf("%d", report.Failures))
	table.Append("scanned", fmt.Sprintf("%d", report.Scanned))

	table.Render()
}

// Helper functions

func check(b bool) string {
	if b {
		return "yes"
	}
	return ""
}

func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen-3]) + "..."
}
