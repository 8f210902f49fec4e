package core

// PWMChannel identifies one of the two LED color channels.
type PWMChannel uint8

const (
	// ChannelBlue fades with horizontal joystick travel.
	ChannelBlue PWMChannel = iota
	// ChannelRed fades with vertical joystick travel.
	ChannelRed
)

// PWMMax is the 16-bit duty-cycle ceiling. Both channels are configured
// with this wrap value so levels map directly onto hardware counts.
const PWMMax = 65535

// PWMDriver is the abstract PWM interface that core code uses.
// Platform-specific implementations handle actual hardware control.
type PWMDriver interface {
	// Configure sets up a channel with the given wrap (top) value and
	// leaves it enabled at level 0.
	Configure(ch PWMChannel, wrap uint32) error

	// SetLevel sets the duty cycle: 0 (off) to PWMMax (fully on).
	SetLevel(ch PWMChannel, level uint16) error
}
