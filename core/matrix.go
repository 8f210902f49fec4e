package core

// MatrixSize is the edge length of the board's WS2812 status matrix.
const MatrixSize = 5

// MatrixDriver is the abstract interface for the status matrix.
type MatrixDriver interface {
	// ShowCell lights exactly the given cell and clears the rest.
	// (0, 0) is the top-left cell as seen on the board.
	ShowCell(col, row int) error
}

// MatrixCell maps a raw sample to the matrix cell mirroring the stick
// position: pushing right moves the column right, pushing up moves the
// row up. Each axis splits its 0..ADCMax range into MatrixSize bands.
func MatrixCell(s RawAxisSample) (col, row int) {
	col = int(uint32(s.VRX) * MatrixSize / (ADCMax + 1))
	row = MatrixSize - 1 - int(uint32(s.VRY)*MatrixSize/(ADCMax+1))
	return col, row
}
