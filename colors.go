package joy

import (
	"encoding/hex"
	"fmt"
	"image/color"
)

// toCSSColor formats a color as a CSS color value, using the short hex form
// for opaque colors and rgba() otherwise.
func toCSSColor(col color.Color) string {
	r, g, b, a := col.RGBA()
	if a == 0xffff {
		buf := make([]byte, 7)
		buf[0] = '#'
		hex.Encode(buf[1:], []byte{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)})
		return string(buf)
	} else if a == 0 {
		return "rgba(0,0,0,0)"
	}
	// r, g and b are alpha-premultiplied
	return fmt.Sprintf("rgba(%d,%d,%d,%v)",
		(r*0xffff/a)>>8, (g*0xffff/a)>>8, (b*0xffff/a)>>8, num(float64(a)/0xffff))
}
