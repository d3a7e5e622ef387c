package console

import "image/color"

// The 16 standard color indexes supported by EGA-compatible text consoles.
const (
	Black uint8 = iota
	Blue
	Green
	Cyan
	Red
	Magenta
	Brown
	LightGray
	DarkGray
	LightBlue
	LightGreen
	LightCyan
	LightRed
	LightMagenta
	Yellow
	White
)

// PackAttr packs a foreground and a background color index into a single
// attribute byte: the low nibble selects the foreground and the high nibble
// the background.
func PackAttr(fg, bg uint8) uint8 {
	return (fg & 0xf) | (bg << 4)
}

// ScrollDir defines a scroll direction.
type ScrollDir uint8

// The supported list of scroll directions for the console Scroll() calls.
const (
	ScrollDirUp ScrollDir = iota
	ScrollDirDown
)

// The Device interface is implemented by objects that can function as system
// consoles. All coordinates are 0-based; the top-left cell has coordinates
// (0,0). Callers are expected to keep coordinates within the dimensions
// reported by the device.
type Device interface {
	// Dimensions returns the console width and height in characters.
	Dimensions() (uint16, uint16)

	// DefaultColors returns the default foreground and background colors
	// used by this console.
	DefaultColors() (fg, bg uint8)

	// Fill sets the contents of the specified rectangular region to empty
	// characters with the requested colors.
	Fill(x, y, width, height uint16, fg, bg uint8)

	// Scroll the console contents to the specified direction. The caller
	// is responsible for updating (e.g. clear or replace) the contents of
	// the region that was scrolled.
	Scroll(dir ScrollDir, lines uint16)

	// Write a char with the specified colors to the specified location.
	Write(ch byte, fg, bg uint8, x, y uint16)

	// Palette returns the active color palette for this console.
	Palette() color.Palette

	// SetPaletteColor updates the color definition for the specified
	// palette index. Passing a color index greater than the number of
	// supported colors should be a no-op.
	SetPaletteColor(uint8, color.RGBA)
}

// CursorSetter is an interface implemented by console devices that can
// display a hardware cursor.
//
// SetCursor moves the visible cursor to the given 0-based coordinates.
type CursorSetter interface {
	SetCursor(x, y uint16)
}

// defaultPalette returns the standard 16-color EGA palette.
func defaultPalette() color.Palette {
	return color.Palette{
		color.RGBA{R: 0, G: 0, B: 1},       /* black */
		color.RGBA{R: 0, G: 0, B: 128},     /* blue */
		color.RGBA{R: 0, G: 128, B: 1},     /* green */
		color.RGBA{R: 0, G: 128, B: 128},   /* cyan */
		color.RGBA{R: 128, G: 0, B: 1},     /* red */
		color.RGBA{R: 128, G: 0, B: 128},   /* magenta */
		color.RGBA{R: 64, G: 64, B: 1},     /* brown */
		color.RGBA{R: 192, G: 192, B: 192}, /* light gray */
		color.RGBA{R: 64, G: 64, B: 64},    /* dark gray */
		color.RGBA{R: 0, G: 0, B: 255},     /* light blue */
		color.RGBA{R: 0, G: 255, B: 1},     /* light green */
		color.RGBA{R: 0, G: 255, B: 255},   /* light cyan */
		color.RGBA{R: 255, G: 0, B: 1},     /* light red */
		color.RGBA{R: 255, G: 0, B: 255},   /* light magenta */
		color.RGBA{R: 255, G: 255, B: 1},   /* yellow */
		color.RGBA{R: 255, G: 255, B: 255}, /* white */
	}
}
