package render

import (
	"math"

	"github.com/lixenwraith/rainbench/terminal"
)

// MaxColors is the maximum number of distinct colors reachable by stepping
// the HSV hue at unit granularity in 8-bit RGB: 6 sectors x 255 steps.
const MaxColors = 1530

// HueRGB maps a cyclic ramp position to an 8-bit RGB triple on the fully
// saturated HSV hue wheel. Requires 0 <= pos < numColors and
// 1 <= numColors <= MaxColors; callers clamp numColors, not this function.
func HueRGB(pos, numColors int) terminal.RGB {
	// https://en.wikipedia.org/wiki/HSL_and_HSV#HSV_to_RGB
	h := float64(pos) / float64(numColors) * 360.0
	v := uint8(256.0 / 60.0 * math.Mod(h, 60.0))

	switch int(h/60.0) % 6 {
	case 0:
		return terminal.RGB{R: 255, G: v, B: 0}
	case 1:
		return terminal.RGB{R: 255 - v, G: 255, B: 0}
	case 2:
		return terminal.RGB{R: 0, G: 255, B: v}
	case 3:
		return terminal.RGB{R: 0, G: 255 - v, B: 255}
	case 4:
		return terminal.RGB{R: v, G: 0, B: 255}
	default:
		return terminal.RGB{R: 255, G: 0, B: 255 - v}
	}
}
