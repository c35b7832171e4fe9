// pkg/vmath/vec.go
package vmath

import "math"

// Vec2 — вектор на плоскости (экранное направление ввода и т.п.)
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Scale(f float64) Vec2 { return Vec2{v.X * f, v.Y * f} }
func (v Vec2) LengthSquared() float64 { return v.X*v.X + v.Y*v.Y }
func (v Vec2) Length() float64 { return math.Sqrt(v.LengthSquared()) }
func (v Vec2) IsZero() bool { return v.X == 0 && v.Y == 0 }

// Normalize возвращает единичный вектор; нулевой вектор остаётся нулевым.
func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// Vec3 — точка или направление в мире. Ось Y направлена вверх,
// земля — плоскость y = 0.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Scale(f float64) Vec3 { return Vec3{v.X * f, v.Y * f, v.Z * f} }
func (v Vec3) Dot(o Vec3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }
func (v Vec3) LengthSquared() float64 { return v.Dot(v) }
func (v Vec3) Length() float64 { return math.Sqrt(v.LengthSquared()) }

// Distance возвращает расстояние между двумя точками.
func (v Vec3) Distance(o Vec3) float64 {
	return v.Sub(o).Length()
}

// Normalize возвращает единичный вектор; нулевой вектор остаётся нулевым.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

// Horizontal проецирует вектор на плоскость XZ.
func (v Vec3) Horizontal() Vec3 {
	return Vec3{v.X, 0, v.Z}
}

// Heading возвращает угол поворота вокруг оси Y, при котором объект смотрит
// вдоль горизонтальной составляющей v. Ноль соответствует +Z.
func (v Vec3) Heading() float64 {
	return math.Atan2(v.X, v.Z)
}

// Ray — луч в мировых координатах.
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// Point возвращает точку луча на параметре t.
func (r Ray) Point(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}

// IntersectGround пересекает луч с плоскостью y = 0. Луч, параллельный
// плоскости или направленный от неё, пересечения не имеет.
func (r Ray) IntersectGround() (Vec3, bool) {
	const eps = 1e-9
	if math.Abs(r.Direction.Y) < eps {
		return Vec3{}, false
	}
	t := -r.Origin.Y / r.Direction.Y
	if t < 0 {
		return Vec3{}, false
	}
	p := r.Point(t)
	p.Y = 0
	return p, true
}
