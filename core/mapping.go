// Joystick-to-actuator transforms: raw 12-bit readings into PWM duty
// levels and marker pixel coordinates. All functions here are pure; the
// loop driver applies them each tick.
package core

const (
	// Deadzone is the band around JoystickCenter within which the LED
	// duty is forced to zero to absorb sensor noise at rest.
	Deadzone = 150

	// DutyScale converts joystick displacement (0..2047) into 16-bit
	// duty counts. 2047*32 = 65504, just under PWMMax, but the product
	// is clamped anyway rather than trusting the constants.
	DutyScale = 32

	// MarkerSize is the edge length of the square marker in pixels.
	MarkerSize = 8
)

// ActuatorLevels holds one tick's duty-cycle outputs.
type ActuatorLevels struct {
	Blue uint16
	Red  uint16
}

// MarkerPosition is the top-left corner of the marker on the display.
type MarkerPosition struct {
	X int16
	Y int16
}

// displacement returns |raw - JoystickCenter|.
func displacement(raw uint16) uint16 {
	if raw >= JoystickCenter {
		return raw - JoystickCenter
	}
	return JoystickCenter - raw
}

// DutyFromRaw maps a raw axis reading to a PWM duty level. Readings
// within the deadzone give 0; beyond it the duty grows linearly with
// displacement from center, clamped to PWMMax.
func DutyFromRaw(raw uint16) uint16 {
	d := uint32(displacement(raw))
	if d <= Deadzone {
		return 0
	}
	level := d * DutyScale
	if level > PWMMax {
		level = PWMMax
	}
	return uint16(level)
}

// Levels computes both channel duties from one sample: blue follows the
// horizontal axis, red the vertical one.
func Levels(s RawAxisSample) ActuatorLevels {
	return ActuatorLevels{
		Blue: DutyFromRaw(s.VRX),
		Red:  DutyFromRaw(s.VRY),
	}
}

// AxisConfig parameterizes the linear rescale from the centered raw range
// into a bounded pixel displacement around Offset. With raw held inside
// 0..ADCMax the result stays within Offset +/- Limit/2 by construction,
// so no further clamp is applied.
type AxisConfig struct {
	Offset int16
	Limit  int16

	// Subtract inverts the direction: the displacement is subtracted
	// from Offset instead of added.
	Subtract bool
}

// MapCoord maps a raw reading to a pixel coordinate along one axis.
// Monotonic in raw; raw == JoystickCenter yields exactly Offset.
func MapCoord(raw uint16, cfg AxisConfig) int16 {
	disp := int16((int32(raw) - JoystickCenter) * int32(cfg.Limit) / ADCMax)
	if cfg.Subtract {
		return cfg.Offset - disp
	}
	return cfg.Offset + disp
}

// MarkerConfig pairs the per-axis mappings for the marker position.
type MarkerConfig struct {
	X AxisConfig
	Y AxisConfig
}

// The two motion profiles observed on the board. Wide lets the marker
// sweep nearly the full panel; Narrow keeps it near the center.
var (
	WideMarker = MarkerConfig{
		X: AxisConfig{Offset: 60, Limit: 114},
		Y: AxisConfig{Offset: 28, Limit: 50, Subtract: true},
	}
	NarrowMarker = MarkerConfig{
		X: AxisConfig{Offset: 60, Limit: 52},
		Y: AxisConfig{Offset: 28, Limit: 24, Subtract: true},
	}
)

// Position computes the marker's top-left corner from a sample. The
// vertical potentiometer drives the horizontal screen coordinate and
// vice versa: the joystick is mounted rotated relative to the panel.
func (m MarkerConfig) Position(s RawAxisSample) MarkerPosition {
	return MarkerPosition{
		X: MapCoord(s.VRY, m.X),
		Y: MapCoord(s.VRX, m.Y),
	}
}
