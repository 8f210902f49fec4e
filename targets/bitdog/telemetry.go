//go:build rp2040

package main

import (
	"io"
	"machine"

	"joypanel/telemetry"
)

// serialSink emits telemetry frames over the USB CDC serial port. The
// scratch buffer is reused across ticks so Emit does not allocate after
// the first frame.
type serialSink struct {
	w       io.Writer
	scratch []byte
}

func newSerialSink() *serialSink {
	return &serialSink{
		w:       machine.Serial,
		scratch: make([]byte, 0, telemetry.FrameLengthMax),
	}
}

func (s *serialSink) Emit(f telemetry.Frame) error {
	s.scratch = f.Append(s.scratch[:0])
	_, err := s.w.Write(s.scratch)
	return err
}
