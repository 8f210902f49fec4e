//go:build rp2040

package main

import (
	"errors"
	"machine"

	"joypanel/core"
)

// boardSampler implements core.SignalSampler on the RP2040 ADC.
type boardSampler struct {
	channels [2]machine.ADC
}

func newBoardSampler() (*boardSampler, error) {
	machine.InitADC()

	s := &boardSampler{
		channels: [2]machine.ADC{
			core.AxisX: {Pin: pinJoyX},
			core.AxisY: {Pin: pinJoyY},
		},
	}
	for i := range s.channels {
		if err := s.channels[i].Configure(machine.ADCConfig{}); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Sample returns a raw 12-bit reading for the axis. machine.ADC.Get
// left-aligns the hardware's 12-bit result into 16 bits, so shift back
// down to the native 0..4095 range the mappings expect.
func (s *boardSampler) Sample(axis core.Axis) (uint16, error) {
	if int(axis) >= len(s.channels) {
		return 0, errors.New("unknown axis")
	}
	return s.channels[axis].Get() >> 4, nil
}
