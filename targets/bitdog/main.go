//go:build rp2040

package main

import (
	"machine"
	"time"

	"joypanel/core"
)

func main() {
	// The OLED needs a moment after a cold power-up before it accepts
	// configuration over I2C.
	time.Sleep(500 * time.Millisecond)

	sampler, err := newBoardSampler()
	if err != nil {
		fatal("adc", err)
	}

	disp, err := newOLEDDisplay()
	if err != nil {
		fatal("display", err)
	}

	gpio := boardGPIO{}
	controls := core.NewControls(gpio, core.GPIOPin(pinLedGreen))

	panel := core.NewPanel(sampler, newBoardPWM(), controls, disp, core.WideMarker)

	matrix, err := newLEDMatrix()
	if err != nil {
		fatal("matrix", err)
	}
	panel.AttachMatrix(matrix)
	panel.AttachTelemetry(newSerialSink())

	if err := panel.Init(); err != nil {
		fatal("init", err)
	}

	// Buttons go live only after the outputs are in their safe defaults.
	if err := configureButtons(controls); err != nil {
		fatal("buttons", err)
	}

	println("joypanel: running")
	panel.Run()
}

// configureButtons arms the falling-edge interrupts feeding the debounced
// event source. The handlers do constant work: one timestamp read plus
// the debounce check.
func configureButtons(controls *core.Controls) error {
	pinSwitch.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	err := pinSwitch.SetInterrupt(machine.PinFalling, func(machine.Pin) {
		controls.HandleEdge(core.EdgeSelect, nowMicros())
	})
	if err != nil {
		return err
	}

	pinButtonA.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	return pinButtonA.SetInterrupt(machine.PinFalling, func(machine.Pin) {
		controls.HandleEdge(core.EdgeSecondary, nowMicros())
	})
}

// fatal reports an unrecoverable peripheral init failure on the console,
// forever. There is no retry path; the device simply does not come up.
func fatal(what string, err error) {
	for {
		println("joypanel:", what, "init failed:", err.Error())
		time.Sleep(time.Second)
	}
}
