package system

import (
	"hexnav/internal/component"
	"hexnav/internal/entity"
	"hexnav/internal/event"
	"hexnav/internal/grid"
	"hexnav/internal/logging"
	"hexnav/internal/types"
	"hexnav/pkg/hexmap"
	"hexnav/pkg/vmath"
)

// testScene — минимальная сцена: шестиугольная карта, персонаж и камера
type testScene struct {
	ecs      *entity.ECS
	grid     *grid.Grid
	events   *event.Dispatcher
	sink     *eventSink
	planner  *PathPlanner
	movement *MovementSystem
	direct   *DirectMovementSystem
	actor    types.EntityID
}

type eventSink struct {
	events []event.Event
}

func (s *eventSink) OnEvent(e event.Event) {
	s.events = append(s.events, e)
}

func (s *eventSink) count(t event.EventType) int {
	n := 0
	for _, e := range s.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

// newTestScene строит карту радиуса radius; соседние ячейки на расстоянии 1.
func newTestScene(radius int) *testScene {
	ecs := entity.NewECS()
	g := grid.New(hexmap.NewLayout(1 / hexmap.Sqrt3))
	for _, h := range hexmap.Range(hexmap.Hex{}, radius) {
		id := ecs.NewEntity()
		x, z := g.Layout.HexToWorld(h)
		ecs.Transforms[id] = &component.Transform{Position: vmath.Vec3{X: x, Z: z}}
		ecs.Cells[id] = &component.Cell{Hex: h}
		g.Insert(h, id)
	}

	actor := ecs.NewEntity()
	ecs.Transforms[actor] = &component.Transform{Position: vmath.Vec3{Y: 0.5}}
	ecs.Movers[actor] = &component.Mover{Speed: 5, ArrivalEpsilon: 0.1, TurnRate: 10}
	ecs.Motions[actor] = &component.Motion{}
	ecs.Controllables[actor] = &component.Controllable{}

	cam := ecs.NewEntity()
	ecs.Transforms[cam] = &component.Transform{Position: vmath.Vec3{X: 0, Y: 10, Z: 10}}
	ecs.Cameras[cam] = &component.Camera{Target: vmath.Vec3{}}

	log := logging.Nop()
	events := event.NewDispatcher()
	sink := &eventSink{}
	events.Subscribe(sink, event.All()...)

	planner := NewPathPlanner(log, events)
	movement := NewMovementSystem(ecs, g, log, events)
	return &testScene{
		ecs:      ecs,
		grid:     g,
		events:   events,
		sink:     sink,
		planner:  planner,
		movement: movement,
		direct:   NewDirectMovementSystem(ecs, g, movement, log, events),
		actor:    actor,
	}
}

func (s *testScene) actorPos() vmath.Vec3 {
	return s.ecs.Transforms[s.actor].Position
}

func (s *testScene) motion() *component.Motion {
	return s.ecs.Motions[s.actor]
}

func (s *testScene) cell(h hexmap.Hex) types.EntityID {
	id, ok := s.grid.OccupantOf(h)
	if !ok {
		panic("no cell at hex")
	}
	return id
}

// cellPos — центр ячейки на высоте персонажа
func (s *testScene) cellPos(h hexmap.Hex) vmath.Vec3 {
	x, z := s.grid.Layout.HexToWorld(h)
	return vmath.Vec3{X: x, Y: s.actorPos().Y, Z: z}
}
