// pkg/screen/viewport.go
package screen

import "hexnav/pkg/vmath"

// Высота, с которой опускается луч выбора
const rayHeight = 100.0

// Viewport — вид на землю строго сверху. Начало координат мира в центре
// экрана, +X вправо, +Z вниз.
type Viewport struct {
	Width, Height int
	PixelsPerUnit float64
}

func NewViewport(width, height int, pixelsPerUnit float64) Viewport {
	return Viewport{Width: width, Height: height, PixelsPerUnit: pixelsPerUnit}
}

// WorldToScreen переводит точку земли (x, z) в пиксели
func (v Viewport) WorldToScreen(x, z float64) (float64, float64) {
	return float64(v.Width)/2 + x*v.PixelsPerUnit, float64(v.Height)/2 + z*v.PixelsPerUnit
}

// ScreenToWorld — обратное преобразование
func (v Viewport) ScreenToWorld(sx, sy float64) (float64, float64) {
	return (sx - float64(v.Width)/2) / v.PixelsPerUnit, (sy - float64(v.Height)/2) / v.PixelsPerUnit
}

// ScreenToRay строит луч выбора через пиксель курсора
func (v Viewport) ScreenToRay(sx, sy float64) vmath.Ray {
	x, z := v.ScreenToWorld(sx, sy)
	return vmath.Ray{
		Origin:    vmath.Vec3{X: x, Y: rayHeight, Z: z},
		Direction: vmath.Vec3{Y: -1},
	}
}

// Scale переводит длину в мировых единицах в пиксели
func (v Viewport) Scale(d float64) float64 {
	return d * v.PixelsPerUnit
}
