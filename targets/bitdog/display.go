//go:build rp2040

package main

import (
	"image/color"
	"machine"

	"tinygo.org/x/drivers/ssd1306"
)

var (
	pixelOn  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	pixelOff = color.RGBA{}
)

// oledDisplay adapts the SSD1306 driver to core.FrameDisplay. The driver
// owns the framebuffer; Display shifts it out over I2C.
type oledDisplay struct {
	dev *ssd1306.Device
}

func newOLEDDisplay() (*oledDisplay, error) {
	err := oledBus.Configure(machine.I2CConfig{
		Frequency: oledFreq,
		SDA:       pinOledSDA,
		SCL:       pinOledSCL,
	})
	if err != nil {
		return nil, err
	}

	dev := ssd1306.NewI2C(oledBus)
	dev.Configure(ssd1306.Config{
		Address:  oledAddr,
		Width:    oledWidth,
		Height:   oledHeight,
		VccState: ssd1306.SWITCHCAPVCC,
	})
	dev.ClearDisplay()
	return &oledDisplay{dev: &dev}, nil
}

func (d *oledDisplay) Size() (int16, int16) {
	return d.dev.Size()
}

func (d *oledDisplay) ClearBuffer() {
	d.dev.ClearBuffer()
}

func (d *oledDisplay) SetPixel(x, y int16, on bool) {
	if on {
		d.dev.SetPixel(x, y, pixelOn)
	} else {
		d.dev.SetPixel(x, y, pixelOff)
	}
}

func (d *oledDisplay) Display() error {
	return d.dev.Display()
}
