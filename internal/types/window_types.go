package types

import "fmt"

// WindowHandle is an opaque OS window identifier.
// Only equality is meaningful; handles are valid for the current session only.
type WindowHandle uintptr

// String returns the handle in hex, the way OS tools print HWNDs
func (h WindowHandle) String() string {
	return fmt.Sprintf("0x%X", uintptr(h))
}

// Rect represents window bounds in screen pixel coordinates
type Rect struct {
	Left   int `json:"left"`
	Top    int `json:"top"`
	Right  int `json:"right"`
	Bottom int `json:"bottom"`
}

// Width returns the horizontal extent; negative for malformed rects
func (r Rect) Width() int {
	return r.Right - r.Left
}

// Height returns the vertical extent; negative for malformed rects
func (r Rect) Height() int {
	return r.Bottom - r.Top
}

// Area returns the rect area, or 0 when either extent is not positive
func (r Rect) Area() int64 {
	w, h := r.Width(), r.Height()
	if w <= 0 || h <= 0 {
		return 0
	}
	return int64(w) * int64(h)
}

// Empty reports whether the rect covers no pixels
func (r Rect) Empty() bool {
	return r.Left >= r.Right || r.Top >= r.Bottom
}

// Intersect returns the overlapping region of two rects.
// The result is Empty when they do not overlap.
func (r Rect) Intersect(other Rect) Rect {
	return Rect{
		Left:   max(r.Left, other.Left),
		Top:    max(r.Top, other.Top),
		Right:  min(r.Right, other.Right),
		Bottom: min(r.Bottom, other.Bottom),
	}
}

// String formats the rect as (left, top, right, bottom)
func (r Rect) String() string {
	return fmt.Sprintf("(%d, %d, %d, %d)", r.Left, r.Top, r.Right, r.Bottom)
}

// ScreenBounds is the primary screen size in pixels
type ScreenBounds struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Valid reports whether both dimensions are positive
func (s ScreenBounds) Valid() bool {
	return s.Width > 0 && s.Height > 0
}

// Rect returns the visible screen area anchored at the origin
func (s ScreenBounds) Rect() Rect {
	return Rect{Left: 0, Top: 0, Right: s.Width, Bottom: s.Height}
}

// WindowSnapshot is the state of one top-level window, read once per scan.
// TitleErr and RectErr carry the failures of the underlying queries.
type WindowSnapshot struct {
	Handle      WindowHandle
	Title       string
	TitleErr    error
	IsVisible   bool
	IsMinimized bool
	IsMaximized bool
	Rect        Rect
	RectErr     error
}

// Strategy selects how an eligible window is repositioned
type Strategy int

const (
	RestoreToOrigin        Strategy = iota // Move to (0,0), keep current size
	RepositionPreserveSize                 // Move to (0,0), set size to the snapshot rect size
)

// String returns the string representation of a Strategy
func (s Strategy) String() string {
	switch s {
	case RestoreToOrigin:
		return "origin"
	case RepositionPreserveSize:
		return "preserve-size"
	default:
		return "unknown"
	}
}

// ParseStrategy converts a string to Strategy
func ParseStrategy(s string) (Strategy, bool) {
	switch s {
	case "origin", "":
		return RestoreToOrigin, true
	case "preserve-size":
		return RepositionPreserveSize, true
	default:
		return 0, false
	}
}

// SkipReason names the classification gate that excluded a window
type SkipReason int

const (
	NotSkipped SkipReason = iota
	SkipNotVisible
	SkipMinimized
	SkipNoTitle
	SkipRectUnreadable
	SkipAnchored
	SkipVisible
)

// String returns the string representation of a SkipReason
func (r SkipReason) String() string {
	switch r {
	case NotSkipped:
		return "eligible"
	case SkipNotVisible:
		return "hidden"
	case SkipMinimized:
		return "minimized"
	case SkipNoTitle:
		return "untitled"
	case SkipRectUnreadable:
		return "rect-unreadable"
	case SkipAnchored:
		return "anchored"
	case SkipVisible:
		return "visible"
	default:
		return "unknown"
	}
}

// ActionKind is a single remediation step
type ActionKind int

const (
	ActionRestore ActionKind = iota
	ActionReposition
)

// String returns the string representation of an ActionKind
func (k ActionKind) String() string {
	switch k {
	case ActionRestore:
		return "restore"
	case ActionReposition:
		return "reposition"
	default:
		return "unknown"
	}
}

// Action is one planned remediation step for a window
type Action struct {
	Kind   ActionKind
	X, Y   int
	Width  int  // Only meaningful when Resize is set
	Height int  // Only meaningful when Resize is set
	Resize bool // Apply Width/Height as well as the position
}
