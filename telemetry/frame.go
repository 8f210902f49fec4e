// Package telemetry implements the one-way status stream the firmware
// emits over USB CDC: one compact frame per loop tick, VLQ-encoded and
// CRC16-protected, so a host tool can watch the panel state live.
//
// Frame layout on the wire:
//
//	[length] [payload ...] [crc16 hi] [crc16 lo] [0x7E]
//
// length covers the whole frame including itself and the trailer. The
// CRC is computed over length plus payload. The trailing sync byte lets
// a receiver that joins mid-stream or loses bytes find the next frame
// boundary.
package telemetry

import "errors"

const (
	// FrameSync terminates every frame.
	FrameSync = 0x7E

	// FrameTrailerSize is crc (2 bytes) plus sync (1 byte).
	FrameTrailerSize = 3

	// FrameLengthMin is an empty-payload frame: length byte + trailer.
	FrameLengthMin = 1 + FrameTrailerSize

	// FrameLengthMax bounds the length byte during resynchronization.
	// Eight VLQ fields of at most five bytes each fit well under this.
	FrameLengthMax = 48
)

// Flag bits carried in Frame.Flags.
const (
	FlagIndicator  = 1 << 0 // green indicator LED is on
	FlagPWMEnabled = 1 << 1 // duty output is enabled
)

var errBadPayload = errors.New("telemetry: malformed frame payload")

// Frame is one tick's worth of panel state.
type Frame struct {
	VRX      uint16 // raw horizontal reading
	VRY      uint16 // raw vertical reading
	DutyBlue uint16
	DutyRed  uint16
	MarkerX  int16
	MarkerY  int16
	Style    uint8
	Flags    uint8
}

// Append encodes the frame and appends the wire bytes to dst. The
// returned slice may have been reallocated, append-style.
func (f Frame) Append(dst []byte) []byte {
	start := len(dst)
	dst = append(dst, 0) // length placeholder

	dst = AppendUint(dst, uint32(f.VRX))
	dst = AppendUint(dst, uint32(f.VRY))
	dst = AppendUint(dst, uint32(f.DutyBlue))
	dst = AppendUint(dst, uint32(f.DutyRed))
	dst = AppendInt(dst, int32(f.MarkerX))
	dst = AppendInt(dst, int32(f.MarkerY))
	dst = AppendUint(dst, uint32(f.Style))
	dst = AppendUint(dst, uint32(f.Flags))

	dst[start] = byte(len(dst) - start + FrameTrailerSize)
	crc := CRC16(dst[start:])
	dst = append(dst, byte(crc>>8), byte(crc))
	return append(dst, FrameSync)
}

func decodePayload(payload []byte) (Frame, error) {
	var f Frame

	vrx, err := DecodeUint(&payload)
	if err != nil {
		return f, err
	}
	vry, err := DecodeUint(&payload)
	if err != nil {
		return f, err
	}
	dutyBlue, err := DecodeUint(&payload)
	if err != nil {
		return f, err
	}
	dutyRed, err := DecodeUint(&payload)
	if err != nil {
		return f, err
	}
	markerX, err := DecodeInt(&payload)
	if err != nil {
		return f, err
	}
	markerY, err := DecodeInt(&payload)
	if err != nil {
		return f, err
	}
	style, err := DecodeUint(&payload)
	if err != nil {
		return f, err
	}
	flags, err := DecodeUint(&payload)
	if err != nil {
		return f, err
	}
	if len(payload) != 0 {
		return f, errBadPayload
	}

	f.VRX = uint16(vrx)
	f.VRY = uint16(vry)
	f.DutyBlue = uint16(dutyBlue)
	f.DutyRed = uint16(dutyRed)
	f.MarkerX = int16(markerX)
	f.MarkerY = int16(markerY)
	f.Style = uint8(style)
	f.Flags = uint8(flags)
	return f, nil
}

// Decoder reassembles frames from an arbitrary byte stream. Feed it raw
// serial reads, then drain decoded frames with Next. Corrupt or torn
// input is skipped by scanning for the next sync byte.
type Decoder struct {
	buf []byte
}

// Feed appends raw stream bytes to the decoder's buffer.
func (d *Decoder) Feed(p []byte) {
	d.buf = append(d.buf, p...)
}

// Next returns the next complete, CRC-valid frame, or ok=false when the
// buffered input holds no complete frame yet.
func (d *Decoder) Next() (Frame, bool) {
	for len(d.buf) >= FrameLengthMin {
		n := int(d.buf[0])
		if n < FrameLengthMin || n > FrameLengthMax {
			d.resync()
			continue
		}
		if len(d.buf) < n {
			return Frame{}, false
		}
		if d.buf[n-1] != FrameSync {
			d.resync()
			continue
		}
		crc := uint16(d.buf[n-3])<<8 | uint16(d.buf[n-2])
		if crc != CRC16(d.buf[:n-FrameTrailerSize]) {
			d.resync()
			continue
		}

		f, err := decodePayload(d.buf[1 : n-FrameTrailerSize])
		d.buf = d.buf[n:]
		if err != nil {
			continue
		}
		return f, true
	}
	return Frame{}, false
}

// resync drops buffered bytes through the next sync byte, or everything
// if none is present.
func (d *Decoder) resync() {
	for i, b := range d.buf {
		if b == FrameSync {
			d.buf = d.buf[i+1:]
			return
		}
	}
	d.buf = d.buf[:0]
}
