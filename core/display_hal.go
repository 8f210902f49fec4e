package core

// FrameDisplay is the abstract monochrome display interface that the
// render composer draws into. The implementation owns the framebuffer;
// ClearBuffer and SetPixel only touch the in-memory copy, Display flushes
// it to the panel.
type FrameDisplay interface {
	// Size returns the display dimensions in pixels.
	Size() (w, h int16)

	// ClearBuffer resets the framebuffer to background (all pixels off).
	ClearBuffer()

	// SetPixel sets one framebuffer pixel. Out-of-bounds coordinates
	// must be ignored by the implementation.
	SetPixel(x, y int16, on bool)

	// Display flushes the framebuffer to the panel.
	Display() error
}
