package kmain

import (
	"sagco/banner"
	"sagco/kernel/cpu"
	"sagco/kernel/hal"
	"sagco/multiboot"
)

// Kmain is the only Go symbol that is visible (exported) from the rt0
// initialization code. This function is invoked by the rt0 assembly code
// after the bootloader hands off execution; it receives the address of the
// multiboot info payload provided by the bootloader.
//
// Kmain renders the boot banner to the active terminal and then parks the
// processor. It never returns.
//
//go:noinline
func Kmain(multibootInfoPtr uintptr) {
	multiboot.SetInfoPtr(multibootInfoPtr)

	hal.DetectHardware()

	if term := hal.ActiveTTY(); term != nil && hal.ActiveConsole() != nil {
		term.Clear()
		banner.Render(term, banner.ConfigFromCmdLine(multiboot.GetBootCmdLine()))
	}

	// Terminal state of the whole program; there is no exit path and no
	// watchdog to trip.
	for {
		cpu.Halt()
	}
}
