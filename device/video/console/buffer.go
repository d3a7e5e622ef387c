package console

import "image/color"

// Buffer is a console device backed by ordinary memory instead of a
// hardware framebuffer. It satisfies the same write contract as the VGA text
// console and additionally allows its cells to be read back, which makes it
// suitable as a render source for hosted frontends and as an injectable
// surface for tests.
type Buffer struct {
	width  uint16
	height uint16

	cells []uint16

	palette   color.Palette
	defaultFg uint8
	defaultBg uint8

	cursorX, cursorY uint16
	cursorVisible    bool
}

// NewBuffer creates an in-memory console with the given dimensions. All
// cells are initialized to empty characters with the default colors.
func NewBuffer(columns, rows uint16) *Buffer {
	buf := &Buffer{
		width:     columns,
		height:    rows,
		cells:     make([]uint16, int(columns)*int(rows)),
		palette:   defaultPalette(),
		defaultFg: LightCyan,
		defaultBg: Black,
	}

	buf.Fill(0, 0, columns, rows, buf.defaultFg, buf.defaultBg)
	return buf
}

// Dimensions returns the console width and height in characters.
func (buf *Buffer) Dimensions() (uint16, uint16) {
	return buf.width, buf.height
}

// DefaultColors returns the default foreground and background colors
// used by this console.
func (buf *Buffer) DefaultColors() (fg, bg uint8) {
	return buf.defaultFg, buf.defaultBg
}

// Fill sets the contents of the specified rectangular region to empty
// characters with the requested colors.
func (buf *Buffer) Fill(x, y, width, height uint16, fg, bg uint8) {
	var (
		clr                  = uint16(PackAttr(fg, bg))<<8 | uint16(' ')
		rowOffset, colOffset uint16
	)

	// clip rectangle
	if x >= buf.width {
		x = buf.width
	}
	if y >= buf.height {
		y = buf.height
	}

	if x+width > buf.width {
		width = buf.width - x
	}
	if y+height > buf.height {
		height = buf.height - y
	}

	rowOffset = (y * buf.width) + x
	for ; height > 0; height, rowOffset = height-1, rowOffset+buf.width {
		for colOffset = rowOffset; colOffset < rowOffset+width; colOffset++ {
			buf.cells[colOffset] = clr
		}
	}
}

// Scroll the console contents to the specified direction. The caller
// is responsible for updating (e.g. clear or replace) the contents of
// the region that was scrolled.
func (buf *Buffer) Scroll(dir ScrollDir, lines uint16) {
	if lines == 0 || lines > buf.height {
		return
	}

	var i uint16
	offset := lines * buf.width

	switch dir {
	case ScrollDirUp:
		for ; i < (buf.height-lines)*buf.width; i++ {
			buf.cells[i] = buf.cells[i+offset]
		}
	case ScrollDirDown:
		for i = buf.height*buf.width - 1; i >= lines*buf.width; i-- {
			buf.cells[i] = buf.cells[i-offset]
		}
	}
}

// Write a char with the specified colors to the specified location.
func (buf *Buffer) Write(ch byte, fg, bg uint8, x, y uint16) {
	if x >= buf.width || y >= buf.height {
		return
	}

	buf.cells[(y*buf.width)+x] = uint16(PackAttr(fg, bg))<<8 | uint16(ch)
}

// Palette returns the active color palette for this console.
func (buf *Buffer) Palette() color.Palette {
	return buf.palette
}

// SetPaletteColor updates the color definition for the specified
// palette index. Passing a color index greater than the number of
// supported colors is a no-op.
func (buf *Buffer) SetPaletteColor(index uint8, rgba color.RGBA) {
	if index >= uint8(len(buf.palette)) {
		return
	}

	buf.palette[index] = rgba
}

// SetCursor records the cursor location so that frontends rendering this
// buffer can display it.
func (buf *Buffer) SetCursor(x, y uint16) {
	if x >= buf.width || y >= buf.height {
		return
	}

	buf.cursorX, buf.cursorY = x, y
	buf.cursorVisible = true
}

// Cursor returns the last cursor location reported via SetCursor. The third
// return value indicates whether a cursor has been placed at all.
func (buf *Buffer) Cursor() (x, y uint16, visible bool) {
	return buf.cursorX, buf.cursorY, buf.cursorVisible
}

// CellAt returns the character and colors stored at the given location.
// Out-of-range coordinates report an empty cell with the default colors.
func (buf *Buffer) CellAt(x, y uint16) (ch byte, fg, bg uint8) {
	if x >= buf.width || y >= buf.height {
		return ' ', buf.defaultFg, buf.defaultBg
	}

	cell := buf.cells[(y*buf.width)+x]
	return byte(cell), uint8(cell>>8) & 0xf, uint8(cell >> 12)
}
