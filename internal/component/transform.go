// internal/component/transform.go
package component

import (
	"hexnav/pkg/hexmap"
	"hexnav/pkg/vmath"
)

// Transform — положение сущности в мире и её поворот вокруг оси Y.
// Heading в радианах, ноль смотрит вдоль +Z.
type Transform struct {
	Position vmath.Vec3
	Heading  float64
}

// Cell помечает сущность как ячейку карты.
type Cell struct {
	Hex hexmap.Hex
}

// Camera — активная камера сцены. Нужна только для того, чтобы
// перевести экранное направление ввода в мировое.
type Camera struct {
	Target vmath.Vec3
}
