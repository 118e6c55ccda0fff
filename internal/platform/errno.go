package platform

import (
	"fmt"
	"syscall"

	"github.com/yourusername/winrescue/internal/types"
)

const (
	// ERROR_ACCESS_DENIED
	errorAccessDenied = 5
	// HRESULT_FROM_WIN32(ERROR_ACCESS_DENIED)
	hresultAccessDenied = 0x80070005
)

// lastError turns the error returned by LazyProc.Call into a mapped error.
// Call always returns a non-nil Errno, which is zero when GetLastError was unset.
func lastError(e error) error {
	if errno, ok := e.(syscall.Errno); ok && errno == 0 {
		return syscall.EINVAL
	}
	return mapErrno(e)
}

// mapErrno tags access-denied OS codes with ErrAccessDenied
func mapErrno(err error) error {
	errno, ok := err.(syscall.Errno)
	if !ok {
		return err
	}
	if errno == errorAccessDenied || uint32(errno) == hresultAccessDenied {
		return fmt.Errorf("%w: %w", ErrAccessDenied, errno)
	}
	return errno
}

// restoreResult judges a ShowWindow(SW_RESTORE) call by the zoom state that
// follows it. A leftover last error is ignored once the window is restored.
func restoreResult(h types.WindowHandle, stillMaximized bool, e error) error {
	if !stillMaximized {
		return nil
	}
	return &OpError{Op: "ShowWindow", Handle: h, Err: lastError(e)}
}
