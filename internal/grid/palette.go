package grid

import (
	"image/color"
	"math"
)

const (
	tintHueFrom    = 200
	tintHueSpan    = 160
	tintSaturation = 0.8
	tintValue      = 0.7
)

// tint maps a noise value in [-1, 1] onto a blue to red hue sweep.
func tint(n float64) color.RGBA {
	t := math.Max(0, math.Min(1, (n+1)/2))
	return hue(tintHueFrom+t*tintHueSpan, tintSaturation, tintValue)
}

// hue returns the opaque color at h degrees; any h wraps onto [0, 360).
func hue(h, s, v float64) color.RGBA {
	h = math.Mod(math.Mod(h, 360)+360, 360)
	chroma := v * s
	sector := h / 60
	mid := chroma * (1 - math.Abs(math.Mod(sector, 2)-1))

	var rgb [3]float64
	switch int(sector) {
	case 0:
		rgb = [3]float64{chroma, mid, 0}
	case 1:
		rgb = [3]float64{mid, chroma, 0}
	case 2:
		rgb = [3]float64{0, chroma, mid}
	case 3:
		rgb = [3]float64{0, mid, chroma}
	case 4:
		rgb = [3]float64{mid, 0, chroma}
	default:
		rgb = [3]float64{chroma, 0, mid}
	}

	floor := v - chroma
	channel := func(c float64) uint8 { return uint8((c + floor) * 255) }
	return color.RGBA{R: channel(rgb[0]), G: channel(rgb[1]), B: channel(rgb[2]), A: 255}
}
