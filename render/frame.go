package render

// RGB is a packed 8-bit color.
type RGB struct {
	R, G, B uint8
}

// Frame is a row-major RGB24 pixel buffer, three bytes per pixel with no
// padding, matching what ffmpeg's rawvideo input expects.
type Frame struct {
	Width  int
	Height int
	Pix    []byte
}

// NewFrame allocates a black frame of the given size.
func NewFrame(width, height int) *Frame {
	if width <= 0 || height <= 0 {
		panic("render: frame size must be positive")
	}
	return &Frame{Width: width, Height: height, Pix: make([]byte, width*height*3)}
}

// Fill sets every pixel to c.
func (f *Frame) Fill(c RGB) {
	for i := 0; i < len(f.Pix); i += 3 {
		f.Pix[i], f.Pix[i+1], f.Pix[i+2] = c.R, c.G, c.B
	}
}

// Set writes c at (x, y). Out-of-bounds coordinates are dropped.
func (f *Frame) Set(x, y int, c RGB) {
	if x < 0 || x >= f.Width || y < 0 || y >= f.Height {
		return
	}
	i := (y*f.Width + x) * 3
	f.Pix[i], f.Pix[i+1], f.Pix[i+2] = c.R, c.G, c.B
}

// At returns the pixel at (x, y). Out-of-bounds coordinates read black.
func (f *Frame) At(x, y int) RGB {
	if x < 0 || x >= f.Width || y < 0 || y >= f.Height {
		return RGB{}
	}
	i := (y*f.Width + x) * 3
	return RGB{R: f.Pix[i], G: f.Pix[i+1], B: f.Pix[i+2]}
}

// Blend mixes c over the pixel at (x, y) with the given alpha in [0,255].
// Alpha outside that range is clamped; out-of-bounds coordinates are
// dropped.
func (f *Frame) Blend(x, y int, c RGB, alpha int) {
	if x < 0 || x >= f.Width || y < 0 || y >= f.Height {
		return
	}
	if alpha <= 0 {
		return
	}
	if alpha > 255 {
		alpha = 255
	}
	a := uint32(alpha)
	inv := 255 - a
	i := (y*f.Width + x) * 3
	f.Pix[i] = uint8((uint32(c.R)*a + uint32(f.Pix[i])*inv) / 255)
	f.Pix[i+1] = uint8((uint32(c.G)*a + uint32(f.Pix[i+1])*inv) / 255)
	f.Pix[i+2] = uint8((uint32(c.B)*a + uint32(f.Pix[i+2])*inv) / 255)
}
