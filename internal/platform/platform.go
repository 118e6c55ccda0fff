package platform

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/yourusername/winrescue/internal/types"
)

// Desktop is the set of OS window services the scanner consumes.
// Implementations are not safe for concurrent use.
type Desktop interface {
	// TopLevelWindows enumerates all top-level windows in one blocking call.
	// It either returns the complete list or fails for the whole run.
	TopLevelWindows() ([]types.WindowHandle, error)

	IsVisible(h types.WindowHandle) bool
	IsMinimized(h types.WindowHandle) bool
	IsMaximized(h types.WindowHandle) bool

	// Title returns the window text. On ErrTitleDecode the returned string
	// is still a best-effort decoding.
	Title(h types.WindowHandle) (string, error)

	Bounds(h types.WindowHandle) (types.Rect, error)
	ScreenSize() types.ScreenBounds

	Restore(h types.WindowHandle) error
	// Reposition moves the window to (x, y) without changing z-order or focus.
	// Width and height are applied only when resize is set.
	Reposition(h types.WindowHandle, x, y, width, height int, resize bool) error
}

var (
	// ErrUnsupported is returned on platforms without a Desktop backend.
	ErrUnsupported = fmt.Errorf("winrescue is not supported on %s/%s; supported: windows", runtime.GOOS, runtime.GOARCH)

	// ErrAccessDenied marks failures caused by missing privileges,
	// typically a window owned by an elevated process.
	ErrAccessDenied = errors.New("access denied")

	// ErrTitleDecode marks window text that is not valid UTF-16.
	ErrTitleDecode = errors.New("invalid UTF-16 in window title")
)

// OpError records a failed window operation and the handle it targeted
type OpError struct {
	Op     string
	Handle types.WindowHandle
	Err    error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("%s failed for %s: %v", e.Op, e.Handle, e.Err)
}

func (e *OpError) Unwrap() error {
	return e.Err
}

// IsAccessDenied reports whether err was caused by an access-denied OS error
func IsAccessDenied(err error) bool {
	return errors.Is(err, ErrAccessDenied)
}

// NewDesktop returns the Desktop backend for the current OS
func NewDesktop() (Desktop, error) {
	return newDesktop()
}
