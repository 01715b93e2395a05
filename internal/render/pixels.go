package render

import "image/color"

var transparent = color.RGBA{}

// putRGBA stores col as the i-th pixel of buf.
func putRGBA(buf []byte, i int, col color.RGBA) {
	px := buf[i*4 : i*4+4 : i*4+4]
	px[0], px[1], px[2], px[3] = col.R, col.G, col.B, col.A
}

// fillMaskRGBA writes on for every non-zero cell and leaves the other pixels
// fully transparent.
func fillMaskRGBA(buf []byte, cells []uint8, on color.Color) {
	col := color.RGBAModel.Convert(on).(color.RGBA)
	for i, c := range cells {
		if c == 0 {
			putRGBA(buf, i, transparent)
			continue
		}
		putRGBA(buf, i, col)
	}
}

// fillPaletteRGBA looks every cell up in palette. Values past the end use the
// last entry; an empty palette clears the buffer.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	for i, c := range cells {
		switch {
		case len(palette) == 0:
			putRGBA(buf, i, transparent)
		case int(c) >= len(palette):
			putRGBA(buf, i, palette[len(palette)-1])
		default:
			putRGBA(buf, i, palette[c])
		}
	}
}
