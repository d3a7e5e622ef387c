package cpu

// Halt stops instruction execution until the arrival of the next external
// event. With interrupts disabled no such event can occur, so invoking Halt
// in a loop parks the processor permanently.
func Halt()

// PortWriteByte writes a uint8 value to the requested port.
func PortWriteByte(port uint16, val uint8)

// PortReadByte reads a uint8 value from the requested port.
func PortReadByte(port uint16) uint8
