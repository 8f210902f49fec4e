//go:build rp2040

package main

import (
	pio "github.com/tinygo-org/pio/rp2-pio"
	"github.com/tinygo-org/pio/rp2-pio/piolib"

	"joypanel/core"
)

// matrixColor is the GRB word for a lit cell, kept dim on purpose.
const matrixColor = 0x0800_0800

// ledMatrix implements core.MatrixDriver on the board's WS2812 chain
// through a PIO state machine.
type ledMatrix struct {
	ws  *piolib.WS2812B
	raw [core.MatrixSize * core.MatrixSize]uint32
}

func newLEDMatrix() (*ledMatrix, error) {
	sm, err := pio.PIO0.ClaimStateMachine()
	if err != nil {
		return nil, err
	}
	ws, err := piolib.NewWS2812B(sm, pinMatrix)
	if err != nil {
		return nil, err
	}
	return &ledMatrix{ws: ws}, nil
}

// matrixIndex maps a cell to its position on the chain. The chain starts
// at the bottom-left corner and snakes: every other row runs right to
// left.
func matrixIndex(col, row int) int {
	r := core.MatrixSize - 1 - row
	if r%2 == 0 {
		return r*core.MatrixSize + col
	}
	return r*core.MatrixSize + (core.MatrixSize - 1 - col)
}

func (m *ledMatrix) ShowCell(col, row int) error {
	for i := range m.raw {
		m.raw[i] = 0
	}
	m.raw[matrixIndex(col, row)] = matrixColor
	return m.ws.WriteRaw(m.raw[:])
}
