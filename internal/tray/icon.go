package tray

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"runtime"
	"sync"
)

// IconSize is the edge length of the generated tray icon in pixels
const IconSize = 32

var (
	iconOnce  sync.Once
	iconBytes []byte
)

// Icon returns the tray icon in the format the platform tray expects:
// an ICO container on Windows, plain PNG elsewhere.
func Icon() []byte {
	iconOnce.Do(func() {
		data := drawIconPNG()
		if runtime.GOOS == "windows" {
			data = wrapICO(data, IconSize)
		}
		iconBytes = data
	})

	return iconBytes
}

// drawIconPNG renders two side-by-side screens with a dot marking the
// cursor on the right one
func drawIconPNG() []byte {
	img := image.NewNRGBA(image.Rect(0, 0, IconSize, IconSize))

	frame := color.NRGBA{R: 0x2b, G: 0x2d, B: 0x42, A: 0xff}
	screen := color.NRGBA{R: 0x8d, G: 0x99, B: 0xae, A: 0xff}
	active := color.NRGBA{R: 0x4c, G: 0xc9, B: 0xf0, A: 0xff}
	cursor := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

	fill := func(r image.Rectangle, c color.Color) {
		draw.Draw(img, r, &image.Uniform{C: c}, image.Point{}, draw.Src)
	}

	fill(image.Rect(1, 8, 15, 22), frame)
	fill(image.Rect(2, 9, 14, 21), screen)
	fill(image.Rect(17, 8, 31, 22), frame)
	fill(image.Rect(18, 9, 30, 21), active)
	fill(image.Rect(22, 13, 26, 17), cursor)

	// stands
	fill(image.Rect(6, 22, 10, 26), frame)
	fill(image.Rect(22, 22, 26, 26), frame)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		panic(err)
	}

	return buf.Bytes()
}

// wrapICO packs a single PNG image into an ICO container
func wrapICO(pngData []byte, size int) []byte {
	const headerLen = 6 + 16

	var buf bytes.Buffer
	buf.Grow(headerLen + len(pngData))

	// ICONDIR
	_ = binary.Write(&buf, binary.LittleEndian, [3]uint16{0, 1, 1})

	// ICONDIRENTRY; a zero dimension means 256
	dim := uint8(size)
	if size >= 256 {
		dim = 0
	}
	buf.Write([]byte{dim, dim, 0, 0})
	_ = binary.Write(&buf, binary.LittleEndian, [2]uint16{1, 32})
	_ = binary.Write(&buf, binary.LittleEndian, [2]uint32{uint32(len(pngData)), headerLen})

	buf.Write(pngData)
	return buf.Bytes()
}
