package tty

import (
	"io"

	"sagco/device/video/console"
)

// DefaultTabWidth defines the number of spaces that tabs expand to.
const DefaultTabWidth = 4

// OverflowPolicy selects what happens when the cursor advances past the last
// console row.
type OverflowPolicy uint8

const (
	// OverflowWrap moves the cursor back to the top row without touching
	// the existing console contents. This mirrors the original banner
	// kernel, which never emits more than one screen of output and simply
	// lets a hypothetical overflow start overwriting from the top.
	OverflowWrap OverflowPolicy = iota

	// OverflowScroll shifts the console contents up by one line, clears
	// the vacated bottom row and pins the cursor there. Use this policy
	// for any workload that can produce more output than the console can
	// hold at once.
	OverflowScroll
)

// Device is implemented by objects that can be used as a terminal device.
// A terminal owns the cursor location and the active colors; the console it
// attaches to only stores cells.
type Device interface {
	io.Writer
	io.ByteWriter
	io.StringWriter

	// AttachTo connects a terminal to a console instance and resets the
	// cursor and colors to their defaults.
	AttachTo(console.Device)

	// Clear fills the attached console with empty characters using the
	// active colors and moves the cursor to the top-left corner.
	Clear()

	// CursorPosition returns the current cursor x,y coordinates. Both
	// coordinates are 0-based (top-left corner has coordinates 0,0).
	CursorPosition() (uint16, uint16)

	// SetCursorPosition sets the current cursor position to (x,y). Both
	// coordinates are 0-based. Implementations are expected to clip the
	// cursor position to their dimensions.
	SetCursorPosition(x, y uint16)

	// Colors returns the active foreground and background colors.
	Colors() (fg, bg uint8)

	// SetColors updates the colors applied to subsequent writes. The
	// cursor is unaffected.
	SetColors(fg, bg uint8)

	// WriteLine writes the contents of s followed by exactly one line
	// feed.
	WriteLine(s string) error
}
