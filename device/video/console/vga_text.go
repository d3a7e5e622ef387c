package console

import (
	"image/color"
	"io"
	"unsafe"

	"sagco/device"
	"sagco/kernel"
	"sagco/multiboot"
)

// VGA registers used for uploading palette entries to the DAC and for
// repositioning the hardware cursor.
const (
	vgaDACIndexPort    = 0x3c8
	vgaDACDataPort     = 0x3c9
	vgaCursorIndexPort = 0x3d4
	vgaCursorDataPort  = 0x3d5
)

// VgaTextConsole implements an EGA-compatible 80x25 text console using VGA
// mode 0x3. The console supports the default 16 EGA colors which can be
// overridden using the SetPaletteColor method.
//
// Each character in the console framebuffer is represented using two bytes,
// a byte for the character ASCII code and a byte that encodes the foreground
// and background colors (4 bits for each).
//
// The default settings for the console are:
//   - light cyan text (color 11) on black background (color 0).
//   - space as the clear character
type VgaTextConsole struct {
	width  uint16
	height uint16

	fbPhysAddr uintptr
	fb         []uint16

	palette   color.Palette
	defaultFg uint8
	defaultBg uint8
	clearChar uint16
}

// NewVgaTextConsole creates a new vga text console whose framebuffer aliases
// the memory region at fbPhysAddr.
func NewVgaTextConsole(columns, rows uint16, fbPhysAddr uintptr) *VgaTextConsole {
	return &VgaTextConsole{
		width:      columns,
		height:     rows,
		fbPhysAddr: fbPhysAddr,
		clearChar:  uint16(' '),
		palette:    defaultPalette(),
		defaultFg:  LightCyan,
		defaultBg:  Black,
	}
}

// Dimensions returns the console width and height in characters.
func (cons *VgaTextConsole) Dimensions() (uint16, uint16) {
	return cons.width, cons.height
}

// DefaultColors returns the default foreground and background colors
// used by this console.
func (cons *VgaTextConsole) DefaultColors() (fg uint8, bg uint8) {
	return cons.defaultFg, cons.defaultBg
}

// Fill sets the contents of the specified rectangular region to empty
// characters with the requested colors.
func (cons *VgaTextConsole) Fill(x, y, width, height uint16, fg, bg uint8) {
	var (
		clr                  = uint16(PackAttr(fg, bg))<<8 | cons.clearChar
		rowOffset, colOffset uint16
	)

	// clip rectangle
	if x >= cons.width {
		x = cons.width
	}
	if y >= cons.height {
		y = cons.height
	}

	if x+width > cons.width {
		width = cons.width - x
	}
	if y+height > cons.height {
		height = cons.height - y
	}

	rowOffset = (y * cons.width) + x
	for ; height > 0; height, rowOffset = height-1, rowOffset+cons.width {
		for colOffset = rowOffset; colOffset < rowOffset+width; colOffset++ {
			cons.fb[colOffset] = clr
		}
	}
}

// Scroll the console contents to the specified direction. The caller
// is responsible for updating (e.g. clear or replace) the contents of
// the region that was scrolled.
func (cons *VgaTextConsole) Scroll(dir ScrollDir, lines uint16) {
	if lines == 0 || lines > cons.height {
		return
	}

	var i uint16
	offset := lines * cons.width

	switch dir {
	case ScrollDirUp:
		for ; i < (cons.height-lines)*cons.width; i++ {
			cons.fb[i] = cons.fb[i+offset]
		}
	case ScrollDirDown:
		for i = cons.height*cons.width - 1; i >= lines*cons.width; i-- {
			cons.fb[i] = cons.fb[i-offset]
		}
	}
}

// Write a char to the specified location. If fg or bg exceed the supported
// colors for this console, they will be set to their default value.
func (cons *VgaTextConsole) Write(ch byte, fg, bg uint8, x, y uint16) {
	if x >= cons.width || y >= cons.height {
		return
	}

	maxColorIndex := uint8(len(cons.palette) - 1)
	if fg > maxColorIndex {
		fg = cons.defaultFg
	}
	if bg > maxColorIndex {
		bg = cons.defaultBg
	}

	cons.fb[(y*cons.width)+x] = uint16(PackAttr(fg, bg))<<8 | uint16(ch)
}

// Palette returns the active color palette for this console.
func (cons *VgaTextConsole) Palette() color.Palette {
	return cons.palette
}

// SetPaletteColor updates the color definition for the specified
// palette index. Passing a color index greater than the number of
// supported colors is a no-op.
func (cons *VgaTextConsole) SetPaletteColor(index uint8, rgba color.RGBA) {
	if index >= uint8(len(cons.palette)) {
		return
	}

	cons.palette[index] = rgba

	// Load palette entry to the DAC. In this mode, colors are specified
	// using 6-bits for each component; the RGB values need to be converted
	// to the 0-63 range.
	portWriteByteFn(vgaDACIndexPort, index)
	portWriteByteFn(vgaDACDataPort, rgba.R>>2)
	portWriteByteFn(vgaDACDataPort, rgba.G>>2)
	portWriteByteFn(vgaDACDataPort, rgba.B>>2)
}

// SetCursor repositions the hardware cursor to the given coordinates. The
// cursor location registers hold the linear cell offset split across two
// index/data port writes.
func (cons *VgaTextConsole) SetCursor(x, y uint16) {
	if x >= cons.width || y >= cons.height {
		return
	}

	pos := y*cons.width + x

	portWriteByteFn(vgaCursorIndexPort, 0x0f)
	portWriteByteFn(vgaCursorDataPort, uint8(pos))
	portWriteByteFn(vgaCursorIndexPort, 0x0e)
	portWriteByteFn(vgaCursorDataPort, uint8(pos>>8))
}

// DriverName returns the name of this driver.
func (cons *VgaTextConsole) DriverName() string {
	return "vga_text_console"
}

// DriverVersion returns the version of this driver.
func (cons *VgaTextConsole) DriverVersion() (uint16, uint16, uint16) {
	return 0, 0, 1
}

// DriverInit initializes this driver. The framebuffer region is aliased
// directly; the boot environment identity-maps low memory so no mapping step
// is required before writing to it.
func (cons *VgaTextConsole) DriverInit(_ io.Writer) *kernel.Error {
	if cons.fb == nil {
		cons.fb = unsafe.Slice((*uint16)(unsafe.Pointer(cons.fbPhysAddr)), int(cons.width)*int(cons.height))
	}

	return nil
}

// probeForVgaTextConsole checks for the presence of a vga text console.
func probeForVgaTextConsole() device.Driver {
	var drv device.Driver

	fbInfo := getFramebufferInfoFn()
	if fbInfo != nil && fbInfo.Type == multiboot.FramebufferTypeEGA {
		drv = NewVgaTextConsole(uint16(fbInfo.Width), uint16(fbInfo.Height), uintptr(fbInfo.PhysAddr))
	}

	return drv
}

func init() {
	ProbeFuncs = append(ProbeFuncs, probeForVgaTextConsole)
}
