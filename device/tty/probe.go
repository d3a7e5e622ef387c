package tty

import "sagco/device"

// ProbeFuncs is a slice of device probe functions that is used by the hal
// package to probe for terminal devices. Each driver should use an init()
// block to append its probe function to this list.
var ProbeFuncs []device.ProbeFn
