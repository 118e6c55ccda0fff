package window

import (
	"github.com/yourusername/winrescue/internal/logging"
	"github.com/yourusername/winrescue/internal/platform"
	"github.com/yourusername/winrescue/internal/types"
)

// RemediateOpts configures how planned actions are applied
type RemediateOpts struct {
	DryRun bool // Log the actions without touching the window
}

// RemediateResult contains the outcome of applying a plan to one window
type RemediateResult struct {
	Handle       types.WindowHandle
	Restored     bool    // Restore succeeded (or would have, in dry-run)
	Repositioned bool    // Reposition succeeded (or would have, in dry-run)
	Errors       []error // One entry per failed action, in plan order
}

// Failed reports whether any action failed
func (r *RemediateResult) Failed() bool {
	return len(r.Errors) > 0
}

// Remediate applies actions to a window in order.
// A failed restore does not prevent the reposition attempt; every failure is
// logged and returned in the result rather than aborting.
func Remediate(d platform.Desktop, h types.WindowHandle, actions []types.Action, opts RemediateOpts) *RemediateResult {
	result := &RemediateResult{Handle: h}

	for _, action := range actions {
		logging.Debug().
			Str("hwnd", h.String()).
			Str("action", action.Kind.String()).
			Int("x", action.X).
			Int("y", action.Y).
			Bool("resize", action.Resize).
			Bool("dryRun", opts.DryRun).
			Msg("applying action")

		var err error
		if !opts.DryRun {
			err = apply(d, h, action)
		}

		if err != nil {
			logging.Error().
				Err(err).
				Str("hwnd", h.String()).
				Str("action", action.Kind.String()).
				Msg("remediation step failed")
			result.Errors = append(result.Errors, err)
			continue
		}

		switch action.Kind {
		case types.ActionRestore:
			result.Restored = true
		case types.ActionReposition:
			result.Repositioned = true
		}
	}

	return result
}

func apply(d platform.Desktop, h types.WindowHandle, action types.Action) error {
	switch action.Kind {
	case types.ActionRestore:
		return d.Restore(h)
	case types.ActionReposition:
		return d.Reposition(h, action.X, action.Y, action.Width, action.Height, action.Resize)
	default:
		return nil
	}
}
