// internal/input/intent.go
package input

import "hexnav/pkg/vmath"

// PointerPick — основное нажатие указателя, уже переведённое в мировой луч.
type PointerPick struct {
	Ray vmath.Ray
}

// DirectionalIntent — направления, зажатые в этом кадре.
type DirectionalIntent struct {
	Up, Down, Left, Right bool
}

// Any reports whether at least one direction is held.
func (d DirectionalIntent) Any() bool {
	return d.Up || d.Down || d.Left || d.Right
}

// Vector складывает направления в экранный вектор: X вправо, Y вперёд.
// Диагональ длиннее единицы нормализуется, чтобы скорость по диагонали
// совпадала со скоростью по оси.
func (d DirectionalIntent) Vector() vmath.Vec2 {
	var v vmath.Vec2
	if d.Up {
		v.Y++
	}
	if d.Down {
		v.Y--
	}
	if d.Right {
		v.X++
	}
	if d.Left {
		v.X--
	}
	if v.LengthSquared() > 1 {
		v = v.Normalize()
	}
	return v
}

// Frame — всё, что маршрутизатор ввода выдал за один кадр.
type Frame struct {
	Pick      *PointerPick
	Direction DirectionalIntent
}

// Router переводит события устройств в намерения. Вызывается один раз за кадр.
type Router interface {
	Sample() Frame
}
