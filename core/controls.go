// Debounced button handling and the mode state it controls. This is the
// only state shared between interrupt context and the main loop, so every
// field access runs inside a short interrupt-disabled critical section.
package core

// EdgeInput identifies which push-button produced a falling edge.
type EdgeInput uint8

const (
	// EdgeSelect is the joystick's integrated push switch. An accepted
	// edge toggles the green indicator LED and advances the border style.
	EdgeSelect EdgeInput = iota
	// EdgeSecondary is the standalone button. An accepted edge toggles
	// the PWM-enabled flag.
	EdgeSecondary
)

// DebounceWindowMicros is the minimum spacing between accepted edges.
// The window is shared across both inputs: an accepted press of either
// button also masks the other for the full window. That mirrors the
// board's observed behavior and is kept deliberately; see the quirk test
// in controls_test.go.
const DebounceWindowMicros = 200000

// BorderStyleCount is the number of selectable border styles.
const BorderStyleCount = 3

// Controls is the process-wide mode state container. HandleEdge mutates
// it from interrupt context; the loop driver reads it each tick through
// the accessors. Zero value is not usable, construct with NewControls.
type Controls struct {
	gpio         GPIODriver
	indicatorPin GPIOPin

	lastEdgeMicros uint32
	indicatorOn    bool
	pwmEnabled     bool
	borderStyle    uint8
}

// NewControls returns the default-safe mode state: PWM enabled, indicator
// off, border style 0. The indicator pin is driven directly from the
// interrupt path, so the GPIO driver's SetPin must be interrupt-safe.
func NewControls(gpio GPIODriver, indicatorPin GPIOPin) *Controls {
	return &Controls{
		gpio:         gpio,
		indicatorPin: indicatorPin,
		pwmEnabled:   true,
	}
}

// Init configures the indicator pin as an output and drives it low to
// match the initial indicator state.
func (c *Controls) Init() error {
	if err := c.gpio.ConfigureOutput(c.indicatorPin); err != nil {
		return err
	}
	return c.gpio.SetPin(c.indicatorPin, false)
}

// HandleEdge processes one falling edge at the given monotonic timestamp
// (microseconds, wraparound arithmetic). Edges inside the debounce window
// are discarded with no state change. Constant work, no allocation;
// safe to call from an interrupt service routine.
func (c *Controls) HandleEdge(input EdgeInput, nowMicros uint32) {
	state := disableInterrupts()

	if nowMicros-c.lastEdgeMicros <= DebounceWindowMicros {
		restoreInterrupts(state)
		return
	}
	c.lastEdgeMicros = nowMicros

	switch input {
	case EdgeSelect:
		c.indicatorOn = !c.indicatorOn
		on := c.indicatorOn
		c.borderStyle = (c.borderStyle + 1) % BorderStyleCount
		restoreInterrupts(state)
		// Single pin write, mirrors the indicator flag immediately.
		_ = c.gpio.SetPin(c.indicatorPin, on)
	case EdgeSecondary:
		c.pwmEnabled = !c.pwmEnabled
		restoreInterrupts(state)
	default:
		restoreInterrupts(state)
	}
}

// PWMEnabled reports whether LED duty output is currently enabled.
func (c *Controls) PWMEnabled() bool {
	state := disableInterrupts()
	v := c.pwmEnabled
	restoreInterrupts(state)
	return v
}

// IndicatorOn reports the green indicator state.
func (c *Controls) IndicatorOn() bool {
	state := disableInterrupts()
	v := c.indicatorOn
	restoreInterrupts(state)
	return v
}

// BorderStyle returns the current border style selector (0..2).
func (c *Controls) BorderStyle() uint8 {
	state := disableInterrupts()
	v := c.borderStyle
	restoreInterrupts(state)
	return v
}
