package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/yourusername/winrescue/internal/types"
)

// Report summarizes one scan
type Report struct {
	RunID        string             `json:"runId"`
	StartedAt    time.Time          `json:"startedAt"`
	FinishedAt   time.Time          `json:"finishedAt"`
	Strategy     string             `json:"strategy"`
	DryRun       bool               `json:"dryRun"`
	Screen       types.ScreenBounds `json:"screen"`
	Scanned      int                `json:"scanned"`
	Skipped      map[string]int     `json:"skipped"` // SkipReason string -> count
	Remediated   []*WindowOutcome   `json:"remediated"`
	Failures     int                `json:"failures"` // Windows with at least one failed query or action
	AccessDenied bool               `json:"accessDenied"`
	Interrupted  bool               `json:"interrupted,omitempty"`
}

// WindowOutcome describes one remediation-eligible window and what was done to it
type WindowOutcome struct {
	Handle         string     `json:"handle"`
	Title          string     `json:"title"`
	Rect           types.Rect `json:"rect"`
	DisplayPercent float64    `json:"displayPercent"`
	Maximized      bool       `json:"maximized"`
	Restored       bool       `json:"restored"`
	Repositioned   bool       `json:"repositioned"`
	Errors         []string   `json:"errors,omitempty"`
}

// NewReport creates an empty report with a fresh run id
func NewReport(strategy types.Strategy, dryRun bool) *Report {
	return &Report{
		RunID:      uuid.New().String(),
		StartedAt:  time.Now(),
		Strategy:   strategy.String(),
		DryRun:     dryRun,
		Skipped:    make(map[string]int),
		Remediated: make([]*WindowOutcome, 0),
	}
}

// AddSkip counts a window excluded by the given gate
func (r *Report) AddSkip(reason types.SkipReason) {
	r.Skipped[reason.String()]++
}

// SkippedTotal returns the number of windows that needed no action
func (r *Report) SkippedTotal() int {
	total := 0
	for _, n := range r.Skipped {
		total += n
	}
	return total
}

// Finish stamps the end time
func (r *Report) Finish() {
	r.FinishedAt = time.Now()
}

// Duration returns how long the scan took
func (r *Report) Duration() time.Duration {
	if r.FinishedAt.IsZero() {
		return 0
	}
	return r.FinishedAt.Sub(r.StartedAt)
}
