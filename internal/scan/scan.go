// Package scan drives one pass over the desktop's top-level windows:
// snapshot, classify, remediate, report.
package scan

import (
	"context"

	"github.com/yourusername/winrescue/internal/logging"
	"github.com/yourusername/winrescue/internal/models"
	"github.com/yourusername/winrescue/internal/platform"
	"github.com/yourusername/winrescue/internal/policy"
	"github.com/yourusername/winrescue/internal/snapshot"
	"github.com/yourusername/winrescue/internal/types"
	"github.com/yourusername/winrescue/internal/window"
)

// Options configures a scan
type Options struct {
	Strategy types.Strategy
	DryRun   bool
	Limit    int // Stop after this many remediated windows (0 = no limit)

	// OnRemediate is called once per remediation-eligible window after its
	// actions were attempted.
	OnRemediate func(*models.WindowOutcome)
	// OnAccessDenied is called at most once per run, at the first
	// access-denied failure.
	OnAccessDenied func()
}

// accessHint fires the access-denied callback once
type accessHint struct {
	fired  bool
	fn     func()
	report *models.Report
}

func (h *accessHint) check(err error) {
	if h.fired || !platform.IsAccessDenied(err) {
		return
	}
	h.fired = true
	h.report.AccessDenied = true
	if h.fn != nil {
		h.fn()
	}
}

// Run scans every top-level window once.
// Per-window failures are logged and recorded in the report and never stop the
// scan. Only an enumeration failure is returned as an error, alongside the
// partial report.
func Run(ctx context.Context, d platform.Desktop, opts Options) (*models.Report, error) {
	report := models.NewReport(opts.Strategy, opts.DryRun)
	hint := &accessHint{fn: opts.OnAccessDenied, report: report}
	defer logging.With("runId", report.RunID)()

	logging.Debug().
		Str("strategy", opts.Strategy.String()).
		Bool("dryRun", opts.DryRun).
		Msg("scan starting")

	windows, err := snapshot.All(d)
	if err != nil {
		hint.check(err)
		report.Finish()
		return report, err
	}

	screen := d.ScreenSize()
	report.Screen = screen
	if !screen.Valid() {
		logging.Warn().
			Int("width", screen.Width).
			Int("height", screen.Height).
			Msg("screen size is not positive; every window counts as off-screen")
	}

	for snap := range windows {
		if ctx.Err() != nil {
			report.Interrupted = true
			logging.Warn().Int("scanned", report.Scanned).Msg("scan interrupted")
			break
		}

		report.Scanned++
		processWindow(d, snap, screen, opts, report, hint)

		if opts.Limit > 0 && len(report.Remediated) >= opts.Limit {
			logging.Debug().Int("limit", opts.Limit).Msg("remediation limit reached")
			break
		}
	}

	report.Finish()

	logging.Debug().
		Int("scanned", report.Scanned).
		Int("remediated", len(report.Remediated)).
		Int("failures", report.Failures).
		Dur("took", report.Duration()).
		Msg("scan finished")

	return report, nil
}

func processWindow(
	d platform.Desktop,
	snap types.WindowSnapshot,
	screen types.ScreenBounds,
	opts Options,
	report *models.Report,
	hint *accessHint,
) {
	if snap.TitleErr != nil {
		logging.Warn().
			Err(snap.TitleErr).
			Str("hwnd", snap.Handle.String()).
			Str("title", snap.Title).
			Msg("window title is not valid UTF-16; using best-effort text")
		hint.check(snap.TitleErr)
	}

	verdict := policy.Classify(snap, screen)
	if !verdict.Eligible {
		report.AddSkip(verdict.Reason)

		if verdict.Reason == types.SkipRectUnreadable {
			logging.Error().
				Err(snap.RectErr).
				Str("hwnd", snap.Handle.String()).
				Str("title", snap.Title).
				Str("op", "GetWindowRect").
				Msg("failed to read window rect; skipping")
			report.Failures++
			hint.check(snap.RectErr)
			return
		}

		logging.Debug().
			Str("hwnd", snap.Handle.String()).
			Str("title", snap.Title).
			Str("reason", verdict.Reason.String()).
			Msg("window skipped")
		return
	}

	actions := policy.Plan(snap, opts.Strategy)
	result := window.Remediate(d, snap.Handle, actions, window.RemediateOpts{DryRun: opts.DryRun})

	outcome := &models.WindowOutcome{
		Handle:         snap.Handle.String(),
		Title:          snap.Title,
		Rect:           snap.Rect,
		DisplayPercent: verdict.DisplayPercent,
		Maximized:      snap.IsMaximized,
		Restored:       result.Restored,
		Repositioned:   result.Repositioned,
	}
	for _, err := range result.Errors {
		outcome.Errors = append(outcome.Errors, err.Error())
		hint.check(err)
	}
	if result.Failed() {
		report.Failures++
	}

	report.Remediated = append(report.Remediated, outcome)

	logging.Debug().
		Str("hwnd", outcome.Handle).
		Str("title", outcome.Title).
		Float64("displayPercent", outcome.DisplayPercent).
		Bool("restored", outcome.Restored).
		Bool("repositioned", outcome.Repositioned).
		Msg("window remediated")

	if opts.OnRemediate != nil {
		opts.OnRemediate(outcome)
	}
}
