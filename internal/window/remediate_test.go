package window

import (
	"errors"
	"testing"

	"github.com/yourusername/winrescue/internal/platform"
	"github.com/yourusername/winrescue/internal/platform/platformtest"
	"github.com/yourusername/winrescue/internal/types"
)

func TestRemediateRestoreThenReposition(t *testing.T) {
	w := &platformtest.Window{
		Handle:    10,
		Title:     "Browser",
		Visible:   true,
		Maximized: true,
		Rect:      types.Rect{Left: 2000, Top: 0, Right: 2500, Bottom: 400},
	}
	d := platformtest.New(w)

	actions := []types.Action{
		{Kind: types.ActionRestore},
		{Kind: types.ActionReposition},
	}
	result := Remediate(d, 10, actions, RemediateOpts{})

	if result.Failed() {
		t.Fatalf("Remediate() errors = %v", result.Errors)
	}
	if !result.Restored || !result.Repositioned {
		t.Errorf("Remediate() = %+v, want restored and repositioned", result)
	}

	calls := d.CallsFor(10)
	if len(calls) != 2 || calls[0].Op != "restore" || calls[1].Op != "reposition" {
		t.Fatalf("calls = %+v, want restore then reposition", calls)
	}
	if calls[1].Resize {
		t.Errorf("reposition resized the window")
	}
	if want := (types.Rect{Left: 0, Top: 0, Right: 500, Bottom: 400}); w.Rect != want {
		t.Errorf("window rect = %v, want %v", w.Rect, want)
	}
}

func TestRemediatePreserveSize(t *testing.T) {
	d := platformtest.New(&platformtest.Window{Handle: 11, Rect: types.Rect{Left: 3000, Top: 50, Right: 3800, Bottom: 650}})

	actions := []types.Action{{Kind: types.ActionReposition, Width: 800, Height: 600, Resize: true}}
	result := Remediate(d, 11, actions, RemediateOpts{})
	if result.Failed() {
		t.Fatalf("Remediate() errors = %v", result.Errors)
	}

	calls := d.CallsFor(11)
	if len(calls) != 1 {
		t.Fatalf("calls = %+v, want one reposition", calls)
	}
	if c := calls[0]; c.X != 0 || c.Y != 0 || c.Width != 800 || c.Height != 600 || !c.Resize {
		t.Errorf("reposition call = %+v, want (0,0) 800x600 with resize", c)
	}
}

func TestRemediateContinuesAfterRestoreFailure(t *testing.T) {
	d := platformtest.New(&platformtest.Window{
		Handle:     12,
		Maximized:  true,
		RestoreErr: platform.ErrAccessDenied,
	})

	actions := []types.Action{{Kind: types.ActionRestore}, {Kind: types.ActionReposition}}
	result := Remediate(d, 12, actions, RemediateOpts{})

	if len(result.Errors) != 1 {
		t.Fatalf("Remediate() errors = %v, want exactly one", result.Errors)
	}
	var opErr *platform.OpError
	if !errors.As(result.Errors[0], &opErr) || opErr.Op != "ShowWindow" {
		t.Errorf("error = %v, want ShowWindow OpError", result.Errors[0])
	}
	if !platform.IsAccessDenied(result.Errors[0]) {
		t.Errorf("IsAccessDenied(%v) = false", result.Errors[0])
	}
	if result.Restored {
		t.Error("Restored = true after failure")
	}
	if !result.Repositioned {
		t.Error("Repositioned = false, want reposition attempted after failed restore")
	}
}

func TestRemediateDryRun(t *testing.T) {
	d := platformtest.New(&platformtest.Window{Handle: 13, Maximized: true})

	actions := []types.Action{{Kind: types.ActionRestore}, {Kind: types.ActionReposition}}
	result := Remediate(d, 13, actions, RemediateOpts{DryRun: true})

	if len(d.Calls) != 0 {
		t.Errorf("dry run touched the desktop: %+v", d.Calls)
	}
	if !result.Restored || !result.Repositioned || result.Failed() {
		t.Errorf("dry run result = %+v", result)
	}
}
