//go:build rp2040

package main

import (
	"errors"
	"machine"

	"joypanel/core"
)

// pwmPeripheral abstracts over TinyGo's unexported *pwmGroup type so the
// driver can hold the slice in a map.
type pwmPeripheral interface {
	Configure(config machine.PWMConfig) error
	Channel(pin machine.Pin) (uint8, error)
	SetTop(top uint32)
	Top() uint32
	Set(channel uint8, value uint32)
}

// boardPWM implements core.PWMDriver on the RP2040 PWM slices. With the
// wrap set to the 16-bit ceiling, duty levels map one-to-one onto
// hardware counts and need no rescaling.
type boardPWM struct {
	pins     map[core.PWMChannel]machine.Pin
	groups   map[core.PWMChannel]pwmPeripheral
	channels map[core.PWMChannel]uint8
}

func newBoardPWM() *boardPWM {
	return &boardPWM{
		pins: map[core.PWMChannel]machine.Pin{
			core.ChannelBlue: pinLedBlue,
			core.ChannelRed:  pinLedRed,
		},
		groups:   make(map[core.PWMChannel]pwmPeripheral),
		channels: make(map[core.PWMChannel]uint8),
	}
}

func (d *boardPWM) Configure(ch core.PWMChannel, wrap uint32) error {
	pin, ok := d.pins[ch]
	if !ok {
		return errors.New("unknown PWM channel")
	}

	// GPIO pin N maps to slice (N >> 1) & 7, even pins on channel A and
	// odd pins on channel B. Red (13) and blue (12) share slice 6, so
	// the second Configure call reprograms the same slice harmlessly.
	group := pwmGroupForPin(pin)
	if err := group.Configure(machine.PWMConfig{}); err != nil {
		return err
	}
	group.SetTop(wrap)

	channel, err := group.Channel(pin)
	if err != nil {
		return err
	}
	group.Set(channel, 0)

	d.groups[ch] = group
	d.channels[ch] = channel
	return nil
}

func (d *boardPWM) SetLevel(ch core.PWMChannel, level uint16) error {
	group, ok := d.groups[ch]
	if !ok {
		return errors.New("PWM channel not configured")
	}
	group.Set(d.channels[ch], uint32(level))
	return nil
}

// pwmGroupForPin returns the PWM slice owning a GPIO pin.
func pwmGroupForPin(pin machine.Pin) pwmPeripheral {
	switch (uint32(pin) >> 1) & 0x7 {
	case 0:
		return machine.PWM0
	case 1:
		return machine.PWM1
	case 2:
		return machine.PWM2
	case 3:
		return machine.PWM3
	case 4:
		return machine.PWM4
	case 5:
		return machine.PWM5
	case 6:
		return machine.PWM6
	default:
		return machine.PWM7
	}
}
