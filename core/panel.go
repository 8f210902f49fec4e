// The main loop driver: sample -> map -> drive PWM -> compose -> flush,
// every fixed tick, forever.
package core

import (
	"time"

	"joypanel/telemetry"
)

// TickPeriod is the fixed loop period.
const TickPeriod = 20 * time.Millisecond

// TelemetrySink receives one status frame per tick. Implementations
// must not retain the frame's backing storage; Frame is a value type.
type TelemetrySink interface {
	Emit(f telemetry.Frame) error
}

// Panel orchestrates the sense/compute/actuate cycle. It owns every
// output; the only state it shares with interrupt context is Controls,
// which it reads through the interrupt-safe accessors.
type Panel struct {
	sampler  SignalSampler
	pwm      PWMDriver
	controls *Controls
	frame    *Frame
	marker   MarkerConfig

	// Optional attachments, nil when the board feature is unused.
	matrix MatrixDriver
	sink   TelemetrySink

	// stepErrors counts failed ticks; the loop keeps running on errors
	// rather than halting the firmware.
	stepErrors uint32
}

// NewPanel assembles a panel from its drivers. The marker config selects
// the wide or narrow motion profile.
func NewPanel(sampler SignalSampler, pwm PWMDriver, controls *Controls, disp FrameDisplay, marker MarkerConfig) *Panel {
	return &Panel{
		sampler:  sampler,
		pwm:      pwm,
		controls: controls,
		frame:    NewFrame(disp),
		marker:   marker,
	}
}

// AttachMatrix enables the WS2812 status matrix mirror.
func (p *Panel) AttachMatrix(m MatrixDriver) {
	p.matrix = m
}

// AttachTelemetry enables the per-tick status stream.
func (p *Panel) AttachTelemetry(s TelemetrySink) {
	p.sink = s
}

// Init drives every peripheral to its safe default: both PWM channels
// configured with the 16-bit wrap and level 0, indicator off, display
// cleared and flushed. Must be called before Run.
func (p *Panel) Init() error {
	if err := p.controls.Init(); err != nil {
		return err
	}
	for _, ch := range []PWMChannel{ChannelBlue, ChannelRed} {
		if err := p.pwm.Configure(ch, PWMMax); err != nil {
			return err
		}
		if err := p.pwm.SetLevel(ch, 0); err != nil {
			return err
		}
	}
	p.frame.disp.ClearBuffer()
	return p.frame.Flush()
}

// Step runs one full tick. Everything computed here is tick-local; only
// Controls survives between calls.
func (p *Panel) Step() error {
	vrx, err := p.sampler.Sample(AxisX)
	if err != nil {
		return err
	}
	vry, err := p.sampler.Sample(AxisY)
	if err != nil {
		return err
	}
	sample := RawAxisSample{VRX: vrx, VRY: vry}

	// Duty gating happens here at drive time: the mapping itself stays
	// pure and the disabled state forces both channels to zero.
	levels := Levels(sample)
	if !p.controls.PWMEnabled() {
		levels = ActuatorLevels{}
	}
	if err := p.pwm.SetLevel(ChannelBlue, levels.Blue); err != nil {
		return err
	}
	if err := p.pwm.SetLevel(ChannelRed, levels.Red); err != nil {
		return err
	}

	pos := p.marker.Position(sample)
	style := p.controls.BorderStyle()
	p.frame.Compose(pos, style)
	if err := p.frame.Flush(); err != nil {
		return err
	}

	if p.matrix != nil {
		col, row := MatrixCell(sample)
		if err := p.matrix.ShowCell(col, row); err != nil {
			return err
		}
	}

	if p.sink != nil {
		var flags uint8
		if p.controls.IndicatorOn() {
			flags |= telemetry.FlagIndicator
		}
		if p.controls.PWMEnabled() {
			flags |= telemetry.FlagPWMEnabled
		}
		if err := p.sink.Emit(telemetry.Frame{
			VRX:      sample.VRX,
			VRY:      sample.VRY,
			DutyBlue: levels.Blue,
			DutyRed:  levels.Red,
			MarkerX:  pos.X,
			MarkerY:  pos.Y,
			Style:    style,
			Flags:    flags,
		}); err != nil {
			return err
		}
	}

	return nil
}

// Run loops Step at the fixed tick period until power-off. Failed ticks
// are counted and skipped; the next tick recomputes everything from
// fresh samples anyway.
func (p *Panel) Run() {
	for {
		if err := p.Step(); err != nil {
			p.stepErrors++
		}
		time.Sleep(TickPeriod)
	}
}

// StepErrors returns the number of failed ticks since boot.
func (p *Panel) StepErrors() uint32 {
	return p.stepErrors
}
