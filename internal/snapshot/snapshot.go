package snapshot

import (
	"fmt"
	"iter"

	"github.com/yourusername/winrescue/internal/platform"
	"github.com/yourusername/winrescue/internal/types"
)

// All enumerates top-level windows once and returns a lazy sequence of snapshots.
// Enumeration failures are returned here; per-window query failures are carried
// inside each snapshot. Each window's state is read only when the sequence
// reaches it, and stopping the range stops all further reads.
func All(d platform.Desktop) (iter.Seq[types.WindowSnapshot], error) {
	handles, err := d.TopLevelWindows()
	if err != nil {
		return nil, fmt.Errorf("window enumeration failed: %w", err)
	}

	return func(yield func(types.WindowSnapshot) bool) {
		for _, h := range handles {
			if !yield(Read(d, h)) {
				return
			}
		}
	}, nil
}

// Read gathers the state of a single window
func Read(d platform.Desktop, h types.WindowHandle) types.WindowSnapshot {
	snap := types.WindowSnapshot{
		Handle:      h,
		IsVisible:   d.IsVisible(h),
		IsMinimized: d.IsMinimized(h),
		IsMaximized: d.IsMaximized(h),
	}
	snap.Title, snap.TitleErr = d.Title(h)
	snap.Rect, snap.RectErr = d.Bounds(h)
	return snap
}
