package rgb565

import (
	"encoding/binary"
	"errors"
	"image"
	"image/color"
)

// Color is a 16-bit RGB565 color.
type Color struct {
	V uint16
}

// New packs 8-bit channels into a Color, dropping the low bits.
func New(r, g, b uint8) Color {
	return Color{V: uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3)}
}

// RGB8 expands the color to 8-bit channels.
func (c Color) RGB8() (r, g, b uint8) {
	rr := (c.V >> 11) & 0x1F
	gg := (c.V >> 5) & 0x3F
	bb := c.V & 0x1F
	r = uint8(rr<<3 | rr>>2)
	g = uint8(gg<<2 | gg>>4)
	b = uint8(bb<<3 | bb>>2)
	return
}

// RGBA implements color.Color. The color is always opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	r8, g8, b8 := c.RGB8()
	return uint32(r8) * 0x101, uint32(g8) * 0x101, uint32(b8) * 0x101, 0xFFFF
}

func toRGB565(c color.Color) color.Color {
	if v, ok := c.(Color); ok {
		return v
	}
	r, g, b, _ := c.RGBA()
	return New(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

// Model converts colors to Color.
var Model = color.ModelFunc(toRGB565)

// Image is an RGB565 image stored as little-endian halfwords.
type Image struct {
	Pix    []byte          // Pixel data, 2 bytes per pixel
	Stride int             // Bytes per row
	Rect   image.Rectangle // Image bounds
}

// NewImage allocates an Image with the specified bounds.
func NewImage(r image.Rectangle) *Image {
	w, h := r.Dx(), r.Dy()
	if w < 0 || h < 0 {
		return &Image{Rect: r}
	}
	return &Image{
		Pix:    make([]byte, 2*w*h),
		Stride: 2 * w,
		Rect:   r,
	}
}

// FromBytes wraps pix without copying.
//
// pix must hold at least 2*r.Dx()*r.Dy() bytes.
func FromBytes(r image.Rectangle, pix []byte) (*Image, error) {
	w, h := r.Dx(), r.Dy()
	if w <= 0 || h <= 0 {
		return nil, errors.New("rgb565: empty rectangle")
	}
	if len(pix) < 2*w*h {
		return nil, errors.New("rgb565: buffer too small")
	}
	return &Image{Pix: pix[:2*w*h], Stride: 2 * w, Rect: r}, nil
}

// ColorModel returns the color model of the image.
func (p *Image) ColorModel() color.Model {
	return Model
}

// Bounds returns the image bounds.
func (p *Image) Bounds() image.Rectangle {
	return p.Rect
}

// At implements image.Image.
func (p *Image) At(x, y int) color.Color {
	return p.RGB565At(x, y)
}

// RGB565At returns the color of the pixel at (x, y).
func (p *Image) RGB565At(x, y int) Color {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return Color{}
	}
	i := p.PixOffset(x, y)
	return Color{V: binary.LittleEndian.Uint16(p.Pix[i:])}
}

// Set implements draw.Image.
func (p *Image) Set(x, y int, c color.Color) {
	p.SetRGB565(x, y, Model.Convert(c).(Color))
}

// SetRGB565 sets the pixel at (x, y) without color conversion.
func (p *Image) SetRGB565(x, y int, c Color) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	i := p.PixOffset(x, y)
	binary.LittleEndian.PutUint16(p.Pix[i:], c.V)
}

// Fill sets every pixel to c.
func (p *Image) Fill(c Color) {
	for i := 0; i+1 < len(p.Pix); i += 2 {
		binary.LittleEndian.PutUint16(p.Pix[i:], c.V)
	}
}

// PixOffset returns the index of the first byte of the pixel at (x, y).
func (p *Image) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)*2
}
