// pkg/hexmap/layout.go
package hexmap

// Layout переводит осевые координаты в точки плоскости мира (X, Z) и обратно.
// Ориентация pointy top, Size — внешний радиус гекса, одинаковый по обеим осям.
// Центр гекса (0,0) совпадает с началом координат мира.
type Layout struct {
	Size float64
}

// NewLayout создаёт раскладку с заданным внешним радиусом ячейки.
func NewLayout(size float64) Layout {
	return Layout{Size: size}
}

// HexToWorld возвращает центр гекса на плоскости мира.
func (l Layout) HexToWorld(h Hex) (x, z float64) {
	x = l.Size * (Sqrt3*float64(h.Q) + Sqrt3/2*float64(h.R))
	z = l.Size * (3.0 / 2.0 * float64(h.R))
	return
}

// WorldToHex возвращает гекс, в который попадает точка (x, z).
// Точка может лежать за пределами заполненной карты.
func (l Layout) WorldToHex(x, z float64) Hex {
	q := (Sqrt3/3*x - 1.0/3*z) / l.Size
	r := (2.0 / 3 * z) / l.Size
	return axialRound(q, r)
}

// Spacing is the distance between the centres of two neighbouring cells.
func (l Layout) Spacing() float64 {
	return Sqrt3 * l.Size
}

// Corners возвращает шесть вершин гекса на плоскости мира, начиная с угла 30°.
func (l Layout) Corners(h Hex) [6][2]float64 {
	cx, cz := l.HexToWorld(h)
	var out [6][2]float64
	for i := range out {
		out[i] = [2]float64{cx + l.Size*cornerCos[i], cz + l.Size*cornerSin[i]}
	}
	return out
}

// cos/sin для углов 30°, 90°, ..., 330°
var (
	cornerCos = [6]float64{Sqrt3 / 2, 0, -Sqrt3 / 2, -Sqrt3 / 2, 0, Sqrt3 / 2}
	cornerSin = [6]float64{0.5, 1, 0.5, -0.5, -1, -0.5}
)
