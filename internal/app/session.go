// internal/app/session.go
package app

import (
	"fmt"
	"sync/atomic"
	"time"

	"hexnav/internal/component"
	"hexnav/internal/config"
	"hexnav/internal/entity"
	"hexnav/internal/event"
	"hexnav/internal/grid"
	"hexnav/internal/input"
	"hexnav/internal/metrics"
	"hexnav/internal/system"
	"hexnav/internal/types"
	"hexnav/pkg/hexmap"
	"hexnav/pkg/vmath"

	"go.uber.org/zap"
)

// Session владеет всей сценой: картой, персонажем, камерой и системами.
// Все методы, кроме Snapshot, вызываются только из кадра симуляции.
type Session struct {
	Config   config.Config
	ECS      *entity.ECS
	Grid     *grid.Grid
	Events   *event.Dispatcher
	Planner  *system.PathPlanner
	Movement *system.MovementSystem
	Direct   *system.DirectMovementSystem
	Picks    *system.PickSystem
	ActorID  types.EntityID
	CameraID types.EntityID

	log      *zap.SugaredLogger
	tick     uint64
	snapshot atomic.Pointer[Snapshot]
}

// NewSession собирает сцену по конфигурации: ячейки карты радиуса
// Grid.Radius вокруг начала координат, персонажа и камеру.
func NewSession(cfg config.Config, log *zap.SugaredLogger) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	ecs := entity.NewECS()
	events := event.NewDispatcher()
	g := grid.New(hexmap.NewLayout(cfg.Grid.CellSize))

	s := &Session{
		Config: cfg,
		ECS:    ecs,
		Grid:   g,
		Events: events,
		log:    log,
	}
	s.spawnCells()
	s.spawnActor()
	s.spawnCamera()

	s.Planner = system.NewPathPlanner(log, events)
	s.Movement = system.NewMovementSystem(ecs, g, log, events)
	s.Direct = system.NewDirectMovementSystem(ecs, g, s.Movement, log, events)
	interaction, err := system.NewInteraction(cfg.Interaction.Mode, ecs, g, s.Planner, s.Movement, log, events)
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}
	s.Picks = system.NewPickSystem(g, interaction, log)

	metrics.NewRecorder().Subscribe(events)

	// Стартовые препятствия ставятся до первого кадра, событий не шлют
	for _, c := range cfg.Grid.Blocked {
		h := c.Hex()
		if g.IsBlocked(h) {
			continue
		}
		if !g.ToggleBlocked(h).Changed {
			log.Warnw("configured blocked cell is outside the grid", "hex", h)
		}
	}

	log.Infow("session ready",
		"cells", g.Len(),
		"blocked", len(g.BlockedCells()),
		"mode", interaction.Mode(),
		"actor", s.ActorID,
	)
	s.publish()
	return s, nil
}

func (s *Session) spawnCells() {
	for _, h := range hexmap.Range(hexmap.Hex{}, s.Config.Grid.Radius) {
		id := s.ECS.NewEntity()
		x, z := s.Grid.Layout.HexToWorld(h)
		s.ECS.Transforms[id] = &component.Transform{Position: vmath.Vec3{X: x, Z: z}}
		s.ECS.Cells[id] = &component.Cell{Hex: h}
		s.Grid.Insert(h, id)
	}
}

func (s *Session) spawnActor() {
	a := s.Config.Actor
	id := s.ECS.NewEntity()
	s.ECS.Transforms[id] = &component.Transform{Position: vmath.Vec3{X: a.Spawn.X, Y: a.Spawn.Y, Z: a.Spawn.Z}}
	s.ECS.Movers[id] = &component.Mover{
		Speed:          a.MoveSpeed,
		ArrivalEpsilon: a.ArrivalEpsilon,
		TurnRate:       a.RotationSpeed,
		FaceTravel:     a.FaceTravelDirection,
	}
	s.ECS.Motions[id] = &component.Motion{}
	s.ECS.Controllables[id] = &component.Controllable{}
	s.ActorID = id
}

func (s *Session) spawnCamera() {
	c := s.Config.Camera
	id := s.ECS.NewEntity()
	s.ECS.Transforms[id] = &component.Transform{Position: vmath.Vec3{X: c.Position.X, Y: c.Position.Y, Z: c.Position.Z}}
	s.ECS.Cameras[id] = &component.Camera{Target: vmath.Vec3{X: c.Target.X, Y: c.Target.Y, Z: c.Target.Z}}
	s.CameraID = id
}

// Update выполняет один кадр: выбор ячейки, прямое движение, движение по
// пути, публикация снимка.
func (s *Session) Update(deltaTime float64, frame input.Frame) {
	start := time.Now()
	s.tick++

	s.Picks.Handle(frame.Pick)
	s.Direct.Update(deltaTime, frame.Direction)
	s.Movement.Update(deltaTime)

	snap := s.publish()
	metrics.ObserveFrame(time.Since(start), len(snap.Blocked), len(snap.Path))
}

// ActorHex возвращает ячейку, в которой стоит персонаж
func (s *Session) ActorHex() (hexmap.Hex, bool) {
	return system.ActorHex(s.ECS, s.Grid)
}

// ActorPlacement возвращает позицию и угол поворота персонажа
func (s *Session) ActorPlacement() (vmath.Vec3, float64, bool) {
	t, ok := s.ECS.Transforms[s.ActorID]
	if !ok {
		return vmath.Vec3{}, 0, false
	}
	return t.Position, t.Heading, true
}

// Snapshot возвращает последний опубликованный снимок. Безопасно вызывать
// из любой горутины.
func (s *Session) Snapshot() *Snapshot {
	return s.snapshot.Load()
}
