package tty

import (
	"io"

	"sagco/device"
	"sagco/device/video/console"
	"sagco/kernel"
)

// VT implements a line-oriented terminal on top of a console device. The
// terminal interprets the following special characters:
//   - \n (line-feed)
//   - \r (carriage-return)
//   - \t (tab; expanded to tabWidth spaces)
//
// Every other byte is stored at the cursor location with the active colors,
// advancing the cursor and wrapping to the next line when it moves past the
// last column. Row overflow is handled according to the configured
// OverflowPolicy.
type VT struct {
	cons console.Device
	curs console.CursorSetter

	width  uint16
	height uint16

	// Terminal state.
	tabWidth         uint8
	policy           OverflowPolicy
	defaultFg, curFg uint8
	defaultBg, curBg uint8
	cursorX          uint16
	cursorY          uint16
}

// NewVT creates a new virtual terminal device. The tabWidth parameter
// controls tab expansion and policy selects the behavior when output
// advances past the last console row.
func NewVT(tabWidth uint8, policy OverflowPolicy) *VT {
	return &VT{
		tabWidth: tabWidth,
		policy:   policy,
	}
}

// AttachTo connects a terminal to a console instance and resets the cursor
// and colors to the console defaults.
func (t *VT) AttachTo(cons console.Device) {
	if cons == nil {
		return
	}

	t.cons = cons
	t.curs, _ = cons.(console.CursorSetter)
	t.width, t.height = cons.Dimensions()
	t.defaultFg, t.defaultBg = cons.DefaultColors()
	t.curFg, t.curBg = t.defaultFg, t.defaultBg
	t.cursorX, t.cursorY = 0, 0
	t.syncCursor()
}

// Clear fills the attached console with empty characters using the active
// colors and moves the cursor to the top-left corner.
func (t *VT) Clear() {
	if t.cons == nil {
		return
	}

	t.cons.Fill(0, 0, t.width, t.height, t.curFg, t.curBg)
	t.cursorX, t.cursorY = 0, 0
	t.syncCursor()
}

// CursorPosition returns the current cursor position.
func (t *VT) CursorPosition() (uint16, uint16) {
	return t.cursorX, t.cursorY
}

// SetCursorPosition sets the current cursor position to (x,y), clipping the
// given coordinates to the console dimensions.
func (t *VT) SetCursorPosition(x, y uint16) {
	if t.cons == nil {
		return
	}

	if x >= t.width {
		x = t.width - 1
	}
	if y >= t.height {
		y = t.height - 1
	}

	t.cursorX, t.cursorY = x, y
	t.syncCursor()
}

// Colors returns the active foreground and background colors.
func (t *VT) Colors() (fg, bg uint8) {
	return t.curFg, t.curBg
}

// SetColors updates the colors applied to subsequent writes. Color values
// are masked to the 16 supported color indexes.
func (t *VT) SetColors(fg, bg uint8) {
	t.curFg, t.curBg = fg&0xf, bg&0xf
}

// Write implements io.Writer.
func (t *VT) Write(data []byte) (int, error) {
	for count, b := range data {
		if err := t.WriteByte(b); err != nil {
			return count, err
		}
	}

	return len(data), nil
}

// WriteString implements io.StringWriter.
func (t *VT) WriteString(s string) (int, error) {
	for i := 0; i < len(s); i++ {
		if err := t.WriteByte(s[i]); err != nil {
			return i, err
		}
	}

	return len(s), nil
}

// WriteLine writes the contents of s followed by exactly one line feed.
func (t *VT) WriteLine(s string) error {
	if _, err := t.WriteString(s); err != nil {
		return err
	}

	return t.WriteByte('\n')
}

// WriteByte implements io.ByteWriter.
func (t *VT) WriteByte(b byte) error {
	if t.cons == nil {
		return io.ErrClosedPipe
	}

	switch b {
	case '\n':
		t.lf()
	case '\r':
		t.cursorX = 0
	case '\t':
		for i := uint8(0); i < t.tabWidth; i++ {
			t.doWrite(' ')
		}
	default:
		t.doWrite(b)
	}

	t.syncCursor()
	return nil
}

// doWrite writes the specified character together with the active colors at
// the cursor location and advances the cursor, wrapping to the start of the
// next line when the cursor moves past the last column.
func (t *VT) doWrite(b byte) {
	t.cons.Write(b, t.curFg, t.curBg, t.cursorX, t.cursorY)

	t.cursorX++
	if t.cursorX == t.width {
		t.lf()
	}
}

// lf moves the cursor to the start of the next line, applying the overflow
// policy when the cursor advances past the last row.
func (t *VT) lf() {
	t.cursorX = 0
	t.cursorY++
	if t.cursorY < t.height {
		return
	}

	switch t.policy {
	case OverflowScroll:
		t.cons.Scroll(console.ScrollDirUp, 1)
		t.cons.Fill(0, t.height-1, t.width, 1, t.defaultFg, t.defaultBg)
		t.cursorY = t.height - 1
	default:
		t.cursorY = 0
	}
}

// syncCursor propagates the cursor location to consoles that display a
// hardware cursor.
func (t *VT) syncCursor() {
	if t.curs != nil {
		t.curs.SetCursor(t.cursorX, t.cursorY)
	}
}

// DriverName returns the name of this driver.
func (t *VT) DriverName() string {
	return "vt"
}

// DriverVersion returns the version of this driver.
func (t *VT) DriverVersion() (uint16, uint16, uint16) {
	return 0, 0, 1
}

// DriverInit initializes this driver.
func (t *VT) DriverInit(_ io.Writer) *kernel.Error { return nil }

func probeForVT() device.Driver {
	return NewVT(DefaultTabWidth, OverflowWrap)
}

func init() {
	ProbeFuncs = append(ProbeFuncs, probeForVT)
}
