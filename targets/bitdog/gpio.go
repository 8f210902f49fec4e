//go:build rp2040

package main

import (
	"machine"

	"joypanel/core"
)

// boardGPIO implements core.GPIODriver on machine.Pin. All methods are
// interrupt-safe: machine.Pin.Set is a single register write.
type boardGPIO struct{}

func (boardGPIO) ConfigureOutput(pin core.GPIOPin) error {
	machine.Pin(pin).Configure(machine.PinConfig{Mode: machine.PinOutput})
	return nil
}

func (boardGPIO) ConfigureInputPullUp(pin core.GPIOPin) error {
	machine.Pin(pin).Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	return nil
}

func (boardGPIO) SetPin(pin core.GPIOPin, value bool) error {
	machine.Pin(pin).Set(value)
	return nil
}

func (boardGPIO) GetPin(pin core.GPIOPin) (bool, error) {
	return machine.Pin(pin).Get(), nil
}
