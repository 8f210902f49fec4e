//go:build rp2040

package main

import "machine"

// BitDogLab pin map. Everything is a compile-time constant; there is no
// runtime configuration surface.
const (
	// Joystick potentiometers on the two ADC-capable pins.
	pinJoyX = machine.GPIO26 // ADC0
	pinJoyY = machine.GPIO27 // ADC1

	// Push-buttons, active low with pull-ups.
	pinSwitch  = machine.GPIO22 // joystick push switch
	pinButtonA = machine.GPIO5

	// RGB LED. Red and blue are PWM-driven, green is plain digital.
	pinLedRed   = machine.GPIO13
	pinLedGreen = machine.GPIO11
	pinLedBlue  = machine.GPIO12

	// SSD1306 OLED on I2C1.
	pinOledSDA = machine.GPIO14
	pinOledSCL = machine.GPIO15
	oledAddr   = 0x3C
	oledWidth  = 128
	oledHeight = 64
	oledFreq   = 400 * machine.KHz

	// WS2812 5x5 status matrix data line.
	pinMatrix = machine.GPIO7
)

// oledBus is the I2C peripheral wired to the OLED header.
var oledBus = machine.I2C1
