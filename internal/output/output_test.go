package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/yourusername/winrescue/internal/models"
	"github.com/yourusername/winrescue/internal/policy"
	"github.com/yourusername/winrescue/internal/types"
)

func init() {
	color.NoColor = true
}

func TestFormatPercent(t *testing.T) {
	tests := []struct {
		input float64
		want  string
	}{
		{0, "0.00%"},
		{0.04, "4.00%"},
		{0.5, "50.00%"},
		{1, "100.00%"},
		{1.0 / 3.0, "33.33%"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FormatPercent(tt.input); got != tt.want {
				t.Errorf("FormatPercent(%v) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestPrintRemediation(t *testing.T) {
	o := &models.WindowOutcome{
		Handle:       "0x10",
		Title:        "Lost Window",
		Rect:         types.Rect{Left: 2000, Top: 0, Right: 2500, Bottom: 400},
		Repositioned: true,
	}

	tests := []struct {
		name   string
		mutate func(o *models.WindowOutcome)
		dryRun bool
		status string
	}{
		{"fixed", func(o *models.WindowOutcome) {}, false, "[fixed]"},
		{"failed", func(o *models.WindowOutcome) { o.Errors = []string{"SetWindowPos failed"} }, false, "[failed]"},
		{"dry run", func(o *models.WindowOutcome) {}, true, "[dry-run]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oc := *o
			tt.mutate(&oc)

			var buf bytes.Buffer
			PrintRemediation(&buf, &oc, tt.dryRun)
			got := buf.String()

			want := `Title: "Lost Window" Percent: 0.00% Handle: 0x10 Rect: (2000, 0, 2500, 400) ` + tt.status + "\n"
			if got != want {
				t.Errorf("PrintRemediation() = %q, want %q", got, want)
			}
			if strings.Count(got, "\n") != 1 {
				t.Errorf("PrintRemediation() wrote %d lines, want 1", strings.Count(got, "\n"))
			}
		})
	}
}

func TestPrintAccessDeniedTip(t *testing.T) {
	var buf bytes.Buffer
	PrintAccessDeniedTip(&buf)
	if got := buf.String(); got != AccessDeniedTip+"\n" {
		t.Errorf("PrintAccessDeniedTip() = %q", got)
	}
}

func TestPrintWindowsTable(t *testing.T) {
	rows := []WindowRow{
		{
			Snapshot: types.WindowSnapshot{Handle: 0xAB, Title: "Terminal", IsVisible: true, Rect: types.Rect{Left: 2000, Top: 0, Right: 2500, Bottom: 400}},
			Verdict:  policy.Verdict{Eligible: true},
		},
		{
			Snapshot: types.WindowSnapshot{Handle: 0xCD, Title: "Tray"},
			Verdict:  policy.Verdict{Reason: types.SkipNotVisible},
		},
	}

	var buf bytes.Buffer
	PrintWindowsTable(&buf, rows)
	got := buf.String()

	for _, want := range []string{"0xAB", "Terminal", "0.00%", "eligible", "0xCD", "hidden"} {
		if !strings.Contains(got, want) {
			t.Errorf("table missing %q:\n%s", want, got)
		}
	}
}

func TestPrintSummaryTable(t *testing.T) {
	r := models.NewReport(types.RestoreToOrigin, false)
	r.Scanned = 4
	r.AddSkip(types.SkipNotVisible)
	r.AddSkip(types.SkipAnchored)
	r.Remediated = append(r.Remediated, &models.WindowOutcome{Title: "x"})

	var buf bytes.Buffer
	PrintSummaryTable(&buf, r)
	got := buf.String()

	for _, want := range []string{"skipped: hidden", "skipped: anchored", "remediated", "scanned"} {
		if !strings.Contains(got, want) {
			t.Errorf("summary missing %q:\n%s", want, got)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("truncate() = %q", got)
	}
	if got := truncate("Ünïcödé window title", 10); got != "Ünïcödé..." {
		t.Errorf("truncate() = %q, want %q", got, "Ünïcödé...")
	}
}
