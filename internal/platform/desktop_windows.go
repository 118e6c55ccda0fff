//go:build windows

package platform

import (
	"fmt"
	"runtime"
	"sync"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/yourusername/winrescue/internal/types"
)

const (
	smCxScreen = 0
	smCyScreen = 1

	swRestore = 9

	swpNoSize     = 0x0001
	swpNoZOrder   = 0x0004
	swpNoActivate = 0x0010
)

var (
	user32 = windows.NewLazySystemDLL("user32.dll")

	procIsWindowVisible      = user32.NewProc("IsWindowVisible")
	procIsIconic             = user32.NewProc("IsIconic")
	procIsZoomed             = user32.NewProc("IsZoomed")
	procGetWindowTextLengthW = user32.NewProc("GetWindowTextLengthW")
	procGetWindowTextW       = user32.NewProc("GetWindowTextW")
	procGetWindowRect        = user32.NewProc("GetWindowRect")
	procGetSystemMetrics     = user32.NewProc("GetSystemMetrics")
	procShowWindow           = user32.NewProc("ShowWindow")
	procSetWindowPos         = user32.NewProc("SetWindowPos")

	kernel32         = windows.NewLazySystemDLL("kernel32.dll")
	procSetLastError = kernel32.NewProc("SetLastError")
)

// The OS caps the number of callbacks a process can create, so the
// enumeration callback is created once and fed through package state.
var (
	enumMu       sync.Mutex
	enumHandles  []types.WindowHandle
	enumCallback = windows.NewCallback(func(hwnd windows.HWND, _ uintptr) uintptr {
		enumHandles = append(enumHandles, types.WindowHandle(hwnd))
		return 1
	})
)

type win32Desktop struct{}

func newDesktop() (Desktop, error) {
	if err := user32.Load(); err != nil {
		return nil, fmt.Errorf("failed to load user32.dll: %w", err)
	}
	return win32Desktop{}, nil
}

func (win32Desktop) TopLevelWindows() ([]types.WindowHandle, error) {
	enumMu.Lock()
	defer enumMu.Unlock()

	enumHandles = nil
	if err := windows.EnumWindows(enumCallback, nil); err != nil {
		enumHandles = nil
		return nil, fmt.Errorf("EnumWindows failed: %w", mapErrno(err))
	}

	handles := enumHandles
	enumHandles = nil
	return handles, nil
}

func (win32Desktop) IsVisible(h types.WindowHandle) bool {
	r, _, _ := procIsWindowVisible.Call(uintptr(h))
	return r != 0
}

func (win32Desktop) IsMinimized(h types.WindowHandle) bool {
	r, _, _ := procIsIconic.Call(uintptr(h))
	return r != 0
}

func (win32Desktop) IsMaximized(h types.WindowHandle) bool {
	r, _, _ := procIsZoomed.Call(uintptr(h))
	return r != 0
}

func (win32Desktop) Title(h types.WindowHandle) (string, error) {
	n, _, _ := procGetWindowTextLengthW.Call(uintptr(h))
	if int32(n) <= 0 {
		return "", nil
	}

	buf := make([]uint16, int(n)+1)
	copied, _, _ := procGetWindowTextW.Call(uintptr(h), uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	if int(copied) < len(buf) {
		buf = buf[:copied]
	}

	title, err := DecodeTitle(buf)
	if err != nil {
		return title, &OpError{Op: "GetWindowTextW", Handle: h, Err: err}
	}
	return title, nil
}

func (win32Desktop) Bounds(h types.WindowHandle) (types.Rect, error) {
	var rect windows.Rect
	r, _, e := procGetWindowRect.Call(uintptr(h), uintptr(unsafe.Pointer(&rect)))
	if r == 0 {
		return types.Rect{}, &OpError{Op: "GetWindowRect", Handle: h, Err: lastError(e)}
	}

	return types.Rect{
		Left:   int(rect.Left),
		Top:    int(rect.Top),
		Right:  int(rect.Right),
		Bottom: int(rect.Bottom),
	}, nil
}

func (win32Desktop) ScreenSize() types.ScreenBounds {
	w, _, _ := procGetSystemMetrics.Call(smCxScreen)
	h, _, _ := procGetSystemMetrics.Call(smCyScreen)
	return types.ScreenBounds{Width: int(int32(w)), Height: int(int32(h))}
}

func (win32Desktop) Restore(h types.WindowHandle) error {
	// ShowWindow returns the previous visibility, not success. The zoom state
	// afterwards decides; the cleared last-error slot only explains a failure.
	// Both calls must share one thread.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	procSetLastError.Call(0)
	_, _, e := procShowWindow.Call(uintptr(h), swRestore)
	zoomed, _, _ := procIsZoomed.Call(uintptr(h))
	return restoreResult(h, zoomed != 0, e)
}

func (win32Desktop) Reposition(h types.WindowHandle, x, y, width, height int, resize bool) error {
	flags := uintptr(swpNoZOrder | swpNoActivate)
	if !resize {
		flags |= swpNoSize
		width, height = 0, 0
	}

	r, _, e := procSetWindowPos.Call(
		uintptr(h),
		0,
		uintptr(int32(x)),
		uintptr(int32(y)),
		uintptr(int32(width)),
		uintptr(int32(height)),
		flags,
	)
	if r == 0 {
		return &OpError{Op: "SetWindowPos", Handle: h, Err: lastError(e)}
	}
	return nil
}
