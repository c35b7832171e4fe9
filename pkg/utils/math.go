// pkg/utils/math.go
package utils

import "math"

// Abs returns the absolute value of x.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// NormalizeAngle нормализует угол в диапазон [-π, π]
func NormalizeAngle(angle float64) float64 {
	for angle > math.Pi {
		angle -= 2 * math.Pi
	}
	for angle < -math.Pi {
		angle += 2 * math.Pi
	}
	return angle
}

// AngleDiff возвращает кратчайшую разницу to - from в диапазоне [-π, π]
func AngleDiff(from, to float64) float64 {
	return NormalizeAngle(NormalizeAngle(to) - NormalizeAngle(from))
}

// TurnToward поворачивает угол from к to не больше чем на maxStep радиан,
// выбирая кратчайшее направление.
func TurnToward(from, to, maxStep float64) float64 {
	diff := AngleDiff(from, to)
	if math.Abs(diff) <= maxStep {
		return NormalizeAngle(to)
	}
	if diff < 0 {
		return NormalizeAngle(from - maxStep)
	}
	return NormalizeAngle(from + maxStep)
}
