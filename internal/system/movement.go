// internal/system/movement.go
package system

import (
	"hexnav/internal/component"
	"hexnav/internal/entity"
	"hexnav/internal/event"
	"hexnav/internal/grid"
	"hexnav/internal/types"
	"hexnav/pkg/utils"
	"hexnav/pkg/vmath"

	"go.uber.org/zap"
)

// MovementSystem ведёт управляемого персонажа по очереди пути карты:
// снимает очередную точку, идёт к ней с постоянной скоростью и
// защёлкивается на ней при прибытии.
type MovementSystem struct {
	ecs    *entity.ECS
	grid   *grid.Grid
	log    *zap.SugaredLogger
	events *event.Dispatcher
}

func NewMovementSystem(ecs *entity.ECS, g *grid.Grid, log *zap.SugaredLogger, events *event.Dispatcher) *MovementSystem {
	return &MovementSystem{ecs: ecs, grid: g, log: log, events: events}
}

// Update продвигает персонажа на один кадр длительностью deltaTime секунд.
// Без персонажа кадр пропускается.
func (s *MovementSystem) Update(deltaTime float64) {
	id, transform, mover, motion, ok := s.actor()
	if !ok {
		return
	}

	if motion.Idle() {
		next, hasNext := s.grid.PopPath()
		if !hasNext {
			return
		}
		motion.Begin(next)
	}

	cx, cz, resolved := s.ecs.CellPosition(motion.Target)
	if !resolved {
		s.log.Debugw("waypoint vanished, abandoning leg", "actor", id, "target", motion.Target)
		s.events.Dispatch(event.Event{Type: event.LegAbandoned, Data: event.LegData{Actor: id, Target: motion.Target}})
		motion.Reset()
		return
	}

	// Движение плоское: высота персонажа не меняется
	if !motion.HasTargetPosition {
		motion.TargetPosition = vmath.Vec3{X: cx, Y: transform.Position.Y, Z: cz}
		motion.HasTargetPosition = true
		s.log.Debugw("leg started", "actor", id, "target", motion.Target, "position", motion.TargetPosition)
	}

	target := motion.TargetPosition
	current := transform.Position
	toTarget := target.Sub(current)
	distance := toTarget.Length()

	if distance < mover.ArrivalEpsilon {
		s.arrive(id, transform, motion)
		return
	}

	if mover.FaceTravel {
		transform.Heading = s.turn(transform.Heading, toTarget.Heading(), mover.TurnRate, deltaTime)
	}

	step := mover.Speed * deltaTime
	velocity := toTarget.Normalize().Scale(mover.Speed)
	newPosition := current.Add(velocity.Scale(deltaTime))
	newDistance := target.Distance(newPosition)

	// Шаг не короче оставшегося расстояния тоже считается прибытием,
	// иначе персонаж перепрыгнул бы цель.
	if step >= distance || newDistance > distance || newDistance < mover.ArrivalEpsilon {
		s.arrive(id, transform, motion)
		return
	}
	transform.Position = newPosition
}

// CancelLeg сбрасывает текущий отрезок персонажа. Очередь пути не трогается.
func (s *MovementSystem) CancelLeg() {
	if _, _, _, motion, ok := s.actor(); ok {
		motion.Reset()
	}
}

// Active reports whether the actor is currently walking a leg.
func (s *MovementSystem) Active() bool {
	_, _, _, motion, ok := s.actor()
	return ok && !motion.Idle()
}

func (s *MovementSystem) arrive(id types.EntityID, transform *component.Transform, motion *component.Motion) {
	transform.Position = motion.TargetPosition
	s.log.Debugw("leg completed", "actor", id, "target", motion.Target, "remaining", s.grid.PathLen())
	s.events.Dispatch(event.Event{Type: event.LegCompleted, Data: event.LegData{Actor: id, Target: motion.Target}})
	motion.Reset()
}

func (s *MovementSystem) turn(from, to, rate, deltaTime float64) float64 {
	if rate <= 0 {
		return utils.NormalizeAngle(to)
	}
	return utils.TurnToward(from, to, rate*deltaTime)
}

func (s *MovementSystem) actor() (types.EntityID, *component.Transform, *component.Mover, *component.Motion, bool) {
	id, ok := s.ecs.Player()
	if !ok {
		return 0, nil, nil, nil, false
	}
	transform, hasTransform := s.ecs.Transforms[id]
	mover, hasMover := s.ecs.Movers[id]
	motion, hasMotion := s.ecs.Motions[id]
	if !hasTransform || !hasMover || !hasMotion {
		return 0, nil, nil, nil, false
	}
	return id, transform, mover, motion, true
}
