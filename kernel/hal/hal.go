// Package hal discovers the devices available to the kernel and wires them
// together: the first console found becomes the active console and the first
// terminal found is attached to it.
package hal

import (
	"io"

	"sagco/device"
	"sagco/device/tty"
	"sagco/device/video/console"
)

// managedDevices contains the devices discovered by the HAL.
type managedDevices struct {
	activeConsole console.Device
	activeTTY     tty.Device

	// activeDrivers tracks all initialized device drivers.
	activeDrivers []device.Driver
}

var devices managedDevices

// ActiveTTY returns the currently active TTY.
func ActiveTTY() tty.Device {
	return devices.activeTTY
}

// ActiveConsole returns the currently active console.
func ActiveConsole() console.Device {
	return devices.activeConsole
}

// DetectHardware probes for hardware devices and initializes the appropriate
// drivers. Consoles are probed before terminals so that a discovered
// terminal can be linked to a console immediately.
func DetectHardware() {
	probe(console.ProbeFuncs)
	probe(tty.ProbeFuncs)
}

// probe executes each probe function in the list and invokes onDriverInit
// for each successfully initialized driver.
func probe(probeFns []device.ProbeFn) {
	for _, probeFn := range probeFns {
		drv := probeFn()
		if drv == nil {
			continue
		}

		if err := drv.DriverInit(io.Discard); err != nil {
			continue
		}

		onDriverInit(drv)
		devices.activeDrivers = append(devices.activeDrivers, drv)
	}
}

// onDriverInit is invoked by probe() whenever a piece of hardware is detected
// and successfully initialized.
func onDriverInit(drv device.Driver) {
	switch drvImpl := drv.(type) {
	case console.Device:
		if devices.activeConsole != nil {
			return
		}

		devices.activeConsole = drvImpl
		if devices.activeTTY != nil {
			linkTTYToConsole()
		}
	case tty.Device:
		if devices.activeTTY != nil {
			return
		}

		devices.activeTTY = drvImpl
		if devices.activeConsole != nil {
			linkTTYToConsole()
		}
	}
}

// linkTTYToConsole connects the active TTY device to the active console
// device.
func linkTTYToConsole() {
	devices.activeTTY.AttachTo(devices.activeConsole)
}
