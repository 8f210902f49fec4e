// Frame composition: background, marker square and border drawn into the
// display's framebuffer once per tick.
package core

// Border styles selected by the mode state.
const (
	// BorderSingle is one outline at the frame edges.
	BorderSingle = 0
	// BorderDouble adds a second outline inset by 2 pixels.
	BorderDouble = 1
	// BorderCorners draws short brackets at the four corners only.
	BorderCorners = 2
)

// bracketLen is the reach of each corner bracket segment in pixels.
const bracketLen = 10

// Frame composes scenes on a FrameDisplay. It owns no pixel storage of
// its own; all drawing goes through the display's framebuffer.
type Frame struct {
	disp FrameDisplay
}

// NewFrame wraps a display for composition.
func NewFrame(disp FrameDisplay) *Frame {
	return &Frame{disp: disp}
}

// FillRect fills the w x h rectangle with top-left corner at (x, y).
func (f *Frame) FillRect(x, y, w, h int16) {
	for yy := y; yy < y+h; yy++ {
		for xx := x; xx < x+w; xx++ {
			f.disp.SetPixel(xx, yy, true)
		}
	}
}

// Rect draws the outline of the w x h rectangle at (x, y).
func (f *Frame) Rect(x, y, w, h int16) {
	f.HLine(x, x+w-1, y)
	f.HLine(x, x+w-1, y+h-1)
	f.VLine(x, y, y+h-1)
	f.VLine(x+w-1, y, y+h-1)
}

// HLine draws a horizontal line from (x0, y) to (x1, y), inclusive.
func (f *Frame) HLine(x0, x1, y int16) {
	for x := x0; x <= x1; x++ {
		f.disp.SetPixel(x, y, true)
	}
}

// VLine draws a vertical line from (x, y0) to (x, y1), inclusive.
func (f *Frame) VLine(x, y0, y1 int16) {
	for y := y0; y <= y1; y++ {
		f.disp.SetPixel(x, y, true)
	}
}

// Compose clears the framebuffer and draws the marker plus the border for
// the given style. Marker positions produced by the configured mappings
// never reach outside the panel, so no bounds checks are needed here.
func (f *Frame) Compose(m MarkerPosition, style uint8) {
	f.disp.ClearBuffer()
	f.FillRect(m.X, m.Y, MarkerSize, MarkerSize)
	f.drawBorder(style)
}

func (f *Frame) drawBorder(style uint8) {
	w, h := f.disp.Size()
	switch style {
	case BorderSingle:
		f.Rect(0, 0, w, h)
	case BorderDouble:
		f.Rect(0, 0, w, h)
		f.Rect(2, 2, w-4, h-4)
	case BorderCorners:
		f.HLine(0, bracketLen, 0)
		f.HLine(w-bracketLen, w-1, 0)
		f.HLine(0, bracketLen, h-1)
		f.HLine(w-bracketLen, w-1, h-1)
		f.VLine(0, 0, bracketLen)
		f.VLine(0, h-bracketLen, h-1)
		f.VLine(w-1, 0, bracketLen)
		f.VLine(w-1, h-bracketLen, h-1)
	}
}

// Flush sends the framebuffer to the panel.
func (f *Frame) Flush() error {
	return f.disp.Display()
}
