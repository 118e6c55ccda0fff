// Package platformtest provides an in-memory platform.Desktop for tests.
package platformtest

import (
	"github.com/yourusername/winrescue/internal/platform"
	"github.com/yourusername/winrescue/internal/types"
)

// Window is the fake state of one top-level window
type Window struct {
	Handle    types.WindowHandle
	Title     string
	TitleErr  error
	Visible   bool
	Minimized bool
	Maximized bool
	Rect      types.Rect
	RectErr   error

	RestoreErr    error
	RepositionErr error
}

// Call records one state-changing operation
type Call struct {
	Op     string // "restore" or "reposition"
	Handle types.WindowHandle
	X, Y   int
	Width  int
	Height int
	Resize bool
}

// Desktop is a scripted platform.Desktop.
// Windows are enumerated in slice order.
type Desktop struct {
	Windows []*Window
	Screen  types.ScreenBounds
	EnumErr error

	Calls []Call
	// Reads counts state reads per handle, to observe laziness
	Reads map[types.WindowHandle]int
}

var _ platform.Desktop = (*Desktop)(nil)

// New returns a Desktop with a 1920x1080 screen
func New(windows ...*Window) *Desktop {
	return &Desktop{
		Windows: windows,
		Screen:  types.ScreenBounds{Width: 1920, Height: 1080},
		Reads:   make(map[types.WindowHandle]int),
	}
}

func (d *Desktop) find(h types.WindowHandle) *Window {
	for _, w := range d.Windows {
		if w.Handle == h {
			return w
		}
	}
	return &Window{Handle: h, RectErr: platform.ErrUnsupported}
}

func (d *Desktop) TopLevelWindows() ([]types.WindowHandle, error) {
	if d.EnumErr != nil {
		return nil, d.EnumErr
	}
	handles := make([]types.WindowHandle, len(d.Windows))
	for i, w := range d.Windows {
		handles[i] = w.Handle
	}
	return handles, nil
}

func (d *Desktop) IsVisible(h types.WindowHandle) bool {
	if d.Reads == nil {
		d.Reads = make(map[types.WindowHandle]int)
	}
	d.Reads[h]++
	return d.find(h).Visible
}

func (d *Desktop) IsMinimized(h types.WindowHandle) bool {
	return d.find(h).Minimized
}

func (d *Desktop) IsMaximized(h types.WindowHandle) bool {
	return d.find(h).Maximized
}

func (d *Desktop) Title(h types.WindowHandle) (string, error) {
	w := d.find(h)
	return w.Title, w.TitleErr
}

func (d *Desktop) Bounds(h types.WindowHandle) (types.Rect, error) {
	w := d.find(h)
	if w.RectErr != nil {
		return types.Rect{}, &platform.OpError{Op: "GetWindowRect", Handle: h, Err: w.RectErr}
	}
	return w.Rect, nil
}

func (d *Desktop) ScreenSize() types.ScreenBounds {
	return d.Screen
}

func (d *Desktop) Restore(h types.WindowHandle) error {
	d.Calls = append(d.Calls, Call{Op: "restore", Handle: h})
	w := d.find(h)
	if w.RestoreErr != nil {
		return &platform.OpError{Op: "ShowWindow", Handle: h, Err: w.RestoreErr}
	}
	w.Maximized = false
	return nil
}

func (d *Desktop) Reposition(h types.WindowHandle, x, y, width, height int, resize bool) error {
	d.Calls = append(d.Calls, Call{Op: "reposition", Handle: h, X: x, Y: y, Width: width, Height: height, Resize: resize})
	w := d.find(h)
	if w.RepositionErr != nil {
		return &platform.OpError{Op: "SetWindowPos", Handle: h, Err: w.RepositionErr}
	}
	if !resize {
		width, height = w.Rect.Width(), w.Rect.Height()
	}
	w.Rect = types.Rect{Left: x, Top: y, Right: x + width, Bottom: y + height}
	return nil
}

// CallsFor returns the recorded operations for one handle
func (d *Desktop) CallsFor(h types.WindowHandle) []Call {
	var calls []Call
	for _, c := range d.Calls {
		if c.Handle == h {
			calls = append(calls, c)
		}
	}
	return calls
}
