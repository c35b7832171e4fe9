// internal/component/movement.go
package component

import (
	"hexnav/internal/types"
	"hexnav/pkg/vmath"
)

// Mover — параметры движения управляемого персонажа
type Mover struct {
	Speed          float64 // единиц мира в секунду
	ArrivalEpsilon float64 // ближе этого расстояния персонаж считается прибывшим
	TurnRate       float64 // рад/с, поворот при следовании по пути
	FaceTravel     bool    // поворачиваться ли по ходу движения на пути
}

// Motion — состояние текущего отрезка пути.
// HasTarget == false означает простой (Idle).
type Motion struct {
	Target            types.EntityID
	HasTarget         bool
	TargetPosition    vmath.Vec3
	HasTargetPosition bool
}

// Idle reports whether no leg is in progress.
func (m *Motion) Idle() bool {
	return !m.HasTarget
}

// Begin starts a new leg toward the given cell; its position is resolved on the next update.
func (m *Motion) Begin(target types.EntityID) {
	m.Target = target
	m.HasTarget = true
	m.TargetPosition = vmath.Vec3{}
	m.HasTargetPosition = false
}

// Reset возвращает состояние в простой
func (m *Motion) Reset() {
	*m = Motion{}
}

// Controllable помечает персонажа, которым управляет игрок
type Controllable struct{}
