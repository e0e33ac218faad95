// Package rgb565 provides the 16-bit 5-6-5 pixel format fetched by the LTDC
// for the ILI9341 RGB interface.
//
// Each pixel is one little-endian halfword: red in bits 15-11, green in bits
// 10-5, blue in bits 4-0.
//
// Memory layout example for a 2-pixel row:
//
//	Pixels: 0       1
//	Values: 0xF800  0x07E0   (pure red, pure green)
//	Bytes:  00 F8   E0 07
//
// This package provides:
//
// - Color: a 16-bit RGB565 color
// - Model: a color model converting standard Go colors to Color
// - Image: a draw.Image over a byte slice, either allocated or caller-owned
//
// Example usage:
//
//	// Wrap a framebuffer the LTDC fetches from
//	img, err := rgb565.FromBytes(image.Rect(0, 0, 240, 320), mem.Bytes())
//
//	// Fill it with blue
//	draw.Draw(img, img.Bounds(), image.NewUniform(color.RGBA{0, 0, 0xFF, 0xFF}), image.Point{}, draw.Src)
//
//	// Set a single pixel
//	img.SetRGB565(10, 20, rgb565.New(0xFF, 0xFF, 0xFF))
package rgb565
