package render

import "image/color"

// fillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	onPx := rgba(on)
	offPx := rgba(off)
	for i, c := range cells {
		px := offPx
		if c != 0 {
			px = onPx
		}
		copy(buf[i*4:i*4+4], px[:])
	}
}

func rgba(c color.Color) [4]byte {
	r, g, b, a := c.RGBA()
	return [4]byte{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

// CellAt maps a pixel position on a grid drawn at the given scale to cell
// coordinates. Positions left of or above the grid map to negative cells,
// which grid edits ignore.
func CellAt(px, py, scale int) (int, int) {
	if scale <= 0 {
		scale = 1
	}
	return floorDiv(px, scale), floorDiv(py, scale)
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}
