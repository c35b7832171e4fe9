// pkg/render/color.go
package render

import "image/color"

// MapColors holds the colors used to draw the grid, the path and the actor.
type MapColors struct {
	BackgroundColor color.RGBA
	WalkableColor   color.RGBA
	BlockedColor    color.RGBA
	PathColor       color.RGBA
	HoverColor      color.RGBA
	ActorColor      color.RGBA
	HeadingColor    color.RGBA
	TextColor       color.RGBA
	StrokeWidth     float32
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// LightenColor поднимает каждый канал на d, обводка ячеек светлее заливки
func LightenColor(c color.RGBA, d int) color.RGBA {
	return color.RGBA{
		R: uint8(min(255, int(c.R)+d)),
		G: uint8(min(255, int(c.G)+d)),
		B: uint8(min(255, int(c.B)+d)),
		A: 255,
	}
}
