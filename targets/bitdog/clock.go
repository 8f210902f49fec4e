//go:build rp2040

package main

import (
	"runtime/volatile"
	"unsafe"
)

// RP2040 timer peripheral: a free-running 1 MHz counter. The low word is
// the timestamp source for the debounce filter, read directly so it is
// safe in interrupt context.
const (
	timerBase     = 0x40054000
	timerTIMERAWL = timerBase + 0x0C // raw timer low word
)

var timerRawL = (*volatile.Register32)(unsafe.Pointer(uintptr(timerTIMERAWL)))

// nowMicros returns the low 32 bits of the microsecond counter.
// Wraps every ~71 minutes; the debounce arithmetic is wraparound-safe.
func nowMicros() uint32 {
	return timerRawL.Get()
}
