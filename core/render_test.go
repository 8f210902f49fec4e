package core

import "testing"

const (
	testW = 128
	testH = 64
)

// mockDisplay is an in-memory FrameDisplay recording pixels and flushes.
type mockDisplay struct {
	pixels  [testH][testW]bool
	flushes int
}

func (d *mockDisplay) Size() (int16, int16) {
	return testW, testH
}

func (d *mockDisplay) ClearBuffer() {
	d.pixels = [testH][testW]bool{}
}

func (d *mockDisplay) SetPixel(x, y int16, on bool) {
	if x < 0 || x >= testW || y < 0 || y >= testH {
		return
	}
	d.pixels[y][x] = on
}

func (d *mockDisplay) Display() error {
	d.flushes++
	return nil
}

func (d *mockDisplay) at(x, y int16) bool {
	return d.pixels[y][x]
}

func TestComposeMarker(t *testing.T) {
	disp := &mockDisplay{}
	f := NewFrame(disp)

	pos := MarkerPosition{X: 60, Y: 28}
	f.Compose(pos, BorderSingle)

	for y := pos.Y; y < pos.Y+MarkerSize; y++ {
		for x := pos.X; x < pos.X+MarkerSize; x++ {
			if !disp.at(x, y) {
				t.Fatalf("marker pixel (%d, %d) not set", x, y)
			}
		}
	}
	// Just outside the marker stays background.
	if disp.at(pos.X-1, pos.Y) || disp.at(pos.X+MarkerSize, pos.Y) {
		t.Error("pixels beside the marker should be clear")
	}
}

func TestBorderSingle(t *testing.T) {
	disp := &mockDisplay{}
	NewFrame(disp).Compose(MarkerPosition{X: 60, Y: 28}, BorderSingle)

	for x := int16(0); x < testW; x++ {
		if !disp.at(x, 0) || !disp.at(x, testH-1) {
			t.Fatalf("outline missing at column %d", x)
		}
	}
	for y := int16(0); y < testH; y++ {
		if !disp.at(0, y) || !disp.at(testW-1, y) {
			t.Fatalf("outline missing at row %d", y)
		}
	}
	if disp.at(1, 1) {
		t.Error("single border must not draw the inset outline")
	}
}

func TestBorderDouble(t *testing.T) {
	disp := &mockDisplay{}
	NewFrame(disp).Compose(MarkerPosition{X: 60, Y: 28}, BorderDouble)

	// Outer outline plus inset outline two pixels in.
	if !disp.at(0, 0) || !disp.at(testW-1, testH-1) {
		t.Error("outer outline missing")
	}
	if !disp.at(2, 2) || !disp.at(testW-3, testH-3) {
		t.Error("inset outline missing")
	}
	for x := int16(2); x < testW-2; x++ {
		if !disp.at(x, 2) || !disp.at(x, testH-3) {
			t.Fatalf("inset outline missing at column %d", x)
		}
	}
	if disp.at(1, 1) || disp.at(3, 3) {
		t.Error("rows between and inside the outlines should be clear")
	}
}

func TestBorderCorners(t *testing.T) {
	disp := &mockDisplay{}
	NewFrame(disp).Compose(MarkerPosition{X: 60, Y: 28}, BorderCorners)

	// Segments anchored at 0 run inclusive to bracketLen; segments
	// anchored at the far edge reach back bracketLen pixels.
	for i := int16(0); i <= bracketLen; i++ {
		if !disp.at(i, 0) || !disp.at(i, testH-1) {
			t.Fatalf("left-anchored bracket missing at offset %d", i)
		}
		if !disp.at(0, i) || !disp.at(testW-1, i) {
			t.Fatalf("top-anchored bracket missing at offset %d", i)
		}
	}
	for i := int16(0); i < bracketLen; i++ {
		if !disp.at(testW-1-i, 0) || !disp.at(testW-1-i, testH-1) {
			t.Fatalf("right-anchored bracket missing at offset %d", i)
		}
		if !disp.at(0, testH-1-i) || !disp.at(testW-1, testH-1-i) {
			t.Fatalf("bottom-anchored bracket missing at offset %d", i)
		}
	}

	// The middle of each edge stays open.
	if disp.at(testW/2, 0) || disp.at(testW/2, testH-1) {
		t.Error("corner style should leave the horizontal edges open")
	}
	if disp.at(0, testH/2) || disp.at(testW-1, testH/2) {
		t.Error("corner style should leave the vertical edges open")
	}
}

func TestComposeClearsPreviousFrame(t *testing.T) {
	disp := &mockDisplay{}
	f := NewFrame(disp)

	f.Compose(MarkerPosition{X: 10, Y: 10}, BorderDouble)
	f.Compose(MarkerPosition{X: 60, Y: 28}, BorderCorners)

	if disp.at(10, 10) {
		t.Error("previous marker should be cleared")
	}
	if disp.at(2, 2) {
		t.Error("previous border should be cleared")
	}
}

func TestFlush(t *testing.T) {
	disp := &mockDisplay{}
	f := NewFrame(disp)

	if err := f.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}
	if disp.flushes != 1 {
		t.Errorf("expected 1 flush, got %d", disp.flushes)
	}
}
