// Package policy decides which windows are off-screen and how to fix them.
// Everything here is pure: no OS calls, no logging.
package policy

import (
	"github.com/yourusername/winrescue/internal/types"
)

const (
	// DisplayPercentThreshold is the visible fraction above which a window is left alone
	DisplayPercentThreshold = 0.5
	// TopLeftBound is the max left/top offset for a window to count as anchored at the origin
	TopLeftBound = 100
)

// Verdict is the classification result for one window
type Verdict struct {
	Eligible       bool
	Reason         types.SkipReason
	DisplayPercent float64 // Only computed once the anchored gate is passed
}

// DisplayPercent returns the fraction of rect's own area that lies on screen, in [0,1].
// Degenerate rects and non-positive screen sizes yield 0.
func DisplayPercent(rect types.Rect, screen types.ScreenBounds) float64 {
	if !screen.Valid() {
		return 0
	}

	clipped := rect.Intersect(screen.Rect())
	if clipped.Empty() {
		return 0
	}

	original := rect.Area()
	if original <= 0 {
		return 0
	}

	p := float64(clipped.Area()) / float64(original)
	return min(max(p, 0), 1)
}

// IsNearTopLeft reports whether rect's top-left corner lies within [0, bound] on both axes
func IsNearTopLeft(rect types.Rect, bound int) bool {
	return rect.Left >= 0 && rect.Left <= bound &&
		rect.Top >= 0 && rect.Top <= bound
}

// Classify runs the skip gates in order and stops at the first match:
// hidden, minimized, untitled, unreadable rect, anchored, mostly visible.
func Classify(snap types.WindowSnapshot, screen types.ScreenBounds) Verdict {
	switch {
	case !snap.IsVisible:
		return Verdict{Reason: types.SkipNotVisible}
	case snap.IsMinimized:
		return Verdict{Reason: types.SkipMinimized}
	case snap.Title == "":
		return Verdict{Reason: types.SkipNoTitle}
	case snap.RectErr != nil:
		return Verdict{Reason: types.SkipRectUnreadable}
	case IsNearTopLeft(snap.Rect, TopLeftBound):
		return Verdict{Reason: types.SkipAnchored}
	}

	percent := DisplayPercent(snap.Rect, screen)
	if percent > DisplayPercentThreshold {
		return Verdict{Reason: types.SkipVisible, DisplayPercent: percent}
	}

	return Verdict{Eligible: true, Reason: types.NotSkipped, DisplayPercent: percent}
}

// Plan returns the remediation steps for an eligible window.
// A maximized window is restored before it is moved.
func Plan(snap types.WindowSnapshot, strategy types.Strategy) []types.Action {
	actions := make([]types.Action, 0, 2)
	if snap.IsMaximized {
		actions = append(actions, types.Action{Kind: types.ActionRestore})
	}

	move := types.Action{Kind: types.ActionReposition, X: 0, Y: 0}
	if strategy == types.RepositionPreserveSize {
		move.Width = max(snap.Rect.Width(), 0)
		move.Height = max(snap.Rect.Height(), 0)
		move.Resize = true
	}

	return append(actions, move)
}
