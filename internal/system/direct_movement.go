// internal/system/direct_movement.go
package system

import (
	"hexnav/internal/component"
	"hexnav/internal/entity"
	"hexnav/internal/event"
	"hexnav/internal/grid"
	"hexnav/internal/input"
	"hexnav/pkg/vmath"

	"go.uber.org/zap"
)

// DirectMovementSystem двигает персонажа с клавиатуры относительно камеры.
// Пока выполняется путь, ввод игнорируется целиком.
type DirectMovementSystem struct {
	ecs      *entity.ECS
	grid     *grid.Grid
	movement *MovementSystem
	log      *zap.SugaredLogger
	events   *event.Dispatcher
}

func NewDirectMovementSystem(ecs *entity.ECS, g *grid.Grid, movement *MovementSystem, log *zap.SugaredLogger, events *event.Dispatcher) *DirectMovementSystem {
	return &DirectMovementSystem{ecs: ecs, grid: g, movement: movement, log: log, events: events}
}

// Update применяет направление ввода за кадр deltaTime.
func (s *DirectMovementSystem) Update(deltaTime float64, intent input.DirectionalIntent) {
	if !intent.Any() {
		return
	}
	if s.grid.HasPath() || s.movement.Active() {
		return
	}

	id, ok := s.ecs.Player()
	if !ok {
		return
	}
	transform, hasTransform := s.ecs.Transforms[id]
	mover, hasMover := s.ecs.Movers[id]
	if !hasTransform || !hasMover {
		return
	}
	camera, camTransform, ok := s.ecs.ActiveCamera()
	if !ok {
		return
	}

	screen := intent.Vector()
	if screen.IsZero() {
		return
	}
	forward, right := CameraBasis(camera, camTransform)
	direction := right.Scale(screen.X).Add(forward.Scale(screen.Y))

	candidate := transform.Position.Add(direction.Scale(mover.Speed * deltaTime))
	cell := s.grid.Layout.WorldToHex(candidate.X, candidate.Z)
	if s.grid.IsBlocked(cell) {
		s.events.Dispatch(event.Event{Type: event.MoveRejected, Data: event.RejectData{Actor: id, Hex: cell}})
		return
	}

	transform.Position = candidate
	transform.Heading = direction.Heading()
}

// CameraBasis возвращает горизонтальные «вперёд» и «вправо» камеры.
// Если камера смотрит строго вниз, берутся мировые -Z и +X.
func CameraBasis(camera *component.Camera, transform *component.Transform) (forward, right vmath.Vec3) {
	forward = camera.Target.Sub(transform.Position).Horizontal().Normalize()
	if forward.LengthSquared() == 0 {
		forward = vmath.Vec3{Z: -1}
	}
	right = vmath.Vec3{X: -forward.Z, Z: forward.X}
	return forward, right
}
