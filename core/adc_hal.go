package core

// Axis identifies one analog joystick channel.
type Axis uint8

const (
	// AxisX is the horizontal joystick potentiometer (VRX).
	AxisX Axis = iota
	// AxisY is the vertical joystick potentiometer (VRY).
	AxisY
)

// ADC range constants. The joystick potentiometers are read through a
// 12-bit converter, so raw values span 0..ADCMax with the stick at rest
// near JoystickCenter.
const (
	ADCMax         = 4095
	JoystickCenter = 2048
)

// RawAxisSample holds one tick's raw joystick readings.
type RawAxisSample struct {
	VRX uint16
	VRY uint16
}

// SignalSampler is the abstract analog input interface that core code uses.
// Platform-specific implementations select the converter channel and
// perform a one-shot read.
type SignalSampler interface {
	// Sample returns a raw 12-bit reading (0..ADCMax) for the axis.
	Sample(axis Axis) (uint16, error)
}
