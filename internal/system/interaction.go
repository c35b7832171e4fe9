// internal/system/interaction.go
package system

import (
	"fmt"

	"hexnav/internal/config"
	"hexnav/internal/entity"
	"hexnav/internal/event"
	"hexnav/internal/grid"
	"hexnav/internal/input"
	"hexnav/pkg/hexmap"

	"go.uber.org/zap"
)

// Interaction — что делает выбор ячейки указателем. Реализаций ровно две,
// какая из них активна, решает конфигурация.
type Interaction interface {
	Mode() config.InteractionMode
	Apply(target hexmap.Hex)
}

// PathInteraction прокладывает путь персонажа к выбранной ячейке
type PathInteraction struct {
	ecs      *entity.ECS
	grid     *grid.Grid
	planner  *PathPlanner
	movement *MovementSystem
	log      *zap.SugaredLogger
}

func (i *PathInteraction) Mode() config.InteractionMode { return config.ModePath }

func (i *PathInteraction) Apply(target hexmap.Hex) {
	start, ok := ActorHex(i.ecs, i.grid)
	if !ok {
		i.log.Debug("no controllable actor, pick ignored")
		return
	}
	plan := i.planner.Plan(start, target, i.grid)
	if plan.Found() {
		// Новый путь начинается с того места, где персонаж стоит сейчас
		i.movement.CancelLeg()
	}
}

// BlockInteraction переключает блокировку выбранной ячейки
type BlockInteraction struct {
	grid   *grid.Grid
	log    *zap.SugaredLogger
	events *event.Dispatcher
}

func (i *BlockInteraction) Mode() config.InteractionMode { return config.ModeBlock }

func (i *BlockInteraction) Apply(target hexmap.Hex) {
	res := i.grid.ToggleBlocked(target)
	if !res.Changed {
		return
	}
	i.log.Infow("cell toggled", "hex", target, "blocked", res.Blocked, "pruned", res.Pruned)
	i.events.Dispatch(event.Event{Type: event.CellToggled, Data: event.ToggleData{
		Hex:     target,
		Blocked: res.Blocked,
		Pruned:  res.Pruned,
	}})
}

// NewInteraction собирает вариант взаимодействия для заданного режима.
func NewInteraction(mode config.InteractionMode, ecs *entity.ECS, g *grid.Grid, planner *PathPlanner, movement *MovementSystem, log *zap.SugaredLogger, events *event.Dispatcher) (Interaction, error) {
	switch mode {
	case config.ModePath:
		return &PathInteraction{ecs: ecs, grid: g, planner: planner, movement: movement, log: log}, nil
	case config.ModeBlock:
		return &BlockInteraction{grid: g, log: log, events: events}, nil
	default:
		return nil, fmt.Errorf("system: unknown interaction mode %q", mode)
	}
}

// PickSystem переводит нажатие указателя в ячейку карты и передаёт её
// активному варианту взаимодействия. Повторный выбор той же ячейки
// игнорируется.
type PickSystem struct {
	grid        *grid.Grid
	interaction Interaction
	log         *zap.SugaredLogger

	last    hexmap.Hex
	hasLast bool
}

func NewPickSystem(g *grid.Grid, interaction Interaction, log *zap.SugaredLogger) *PickSystem {
	return &PickSystem{grid: g, interaction: interaction, log: log}
}

// Mode возвращает активный режим взаимодействия
func (s *PickSystem) Mode() config.InteractionMode {
	return s.interaction.Mode()
}

// Handle обрабатывает нажатие. Возвращает true, если нажатие дошло до
// варианта взаимодействия.
func (s *PickSystem) Handle(pick *input.PointerPick) bool {
	if pick == nil {
		return false
	}
	point, hit := pick.Ray.IntersectGround()
	if !hit {
		return false
	}
	target := s.grid.Layout.WorldToHex(point.X, point.Z)
	if !s.grid.Contains(target) {
		return false
	}
	if s.hasLast && target == s.last {
		return false
	}
	s.last = target
	s.hasLast = true

	s.log.Debugw("cell picked", "hex", target, "mode", s.interaction.Mode())
	s.interaction.Apply(target)
	return true
}

// LastPick возвращает последнюю принятую ячейку
func (s *PickSystem) LastPick() (hexmap.Hex, bool) {
	return s.last, s.hasLast
}
