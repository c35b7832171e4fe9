// internal/system/pathfinding.go
package system

import (
	"hexnav/internal/event"
	"hexnav/internal/grid"
	"hexnav/internal/types"
	"hexnav/pkg/hexmap"

	"go.uber.org/zap"
)

// Plan — результат поиска пути
type Plan struct {
	Coords   []hexmap.Hex     // путь от старта до цели включительно, nil если пути нет
	Handles  []types.EntityID // обитатели ячеек пути без стартовой
	Expanded int              // сколько узлов раскрыл A*
}

// Found reports whether the search produced a path with at least one step.
func (p Plan) Found() bool {
	return len(p.Handles) > 0
}

// PathPlanner ищет кратчайшие пути по проходимым ячейкам карты и
// устанавливает найденный путь как текущую очередь карты.
type PathPlanner struct {
	log    *zap.SugaredLogger
	events *event.Dispatcher
}

func NewPathPlanner(log *zap.SugaredLogger, events *event.Dispatcher) *PathPlanner {
	return &PathPlanner{log: log, events: events}
}

// FindPath возвращает дескрипторы ячеек пути от start (не включая) до goal.
// Пустой результат — не ошибка: персонаж просто остаётся на месте.
func (p *PathPlanner) FindPath(start, goal hexmap.Hex, g *grid.Grid) []types.EntityID {
	return p.Plan(start, goal, g).Handles
}

// Plan выполняет поиск и, если путь найден, заменяет им очередь пути карты.
// При start == goal или отсутствии пути очередь не трогается.
func (p *PathPlanner) Plan(start, goal hexmap.Hex, g *grid.Grid) Plan {
	if start == goal {
		return Plan{}
	}

	coords, expanded := hexmap.AStar(start, goal, g.IsWalkable)
	if coords == nil {
		p.log.Infow("no path found", "from", start, "to", goal, "expanded", expanded)
		p.events.Dispatch(event.Event{Type: event.PathNotFound, Data: event.PathData{
			Start:    start,
			Goal:     goal,
			Expanded: expanded,
		}})
		return Plan{Expanded: expanded}
	}

	// Стартовая ячейка — та, где персонаж уже стоит
	handles := make([]types.EntityID, 0, len(coords)-1)
	for _, h := range coords[1:] {
		if id, ok := g.OccupantOf(h); ok {
			handles = append(handles, id)
		}
	}
	g.SetPath(handles)

	p.log.Infow("path found", "from", start, "to", goal, "steps", len(coords)-1, "expanded", expanded)
	p.events.Dispatch(event.Event{Type: event.PathPlanned, Data: event.PathData{
		Start:    start,
		Goal:     goal,
		Coords:   coords,
		Length:   len(coords) - 1,
		Expanded: expanded,
	}})
	return Plan{Coords: coords, Handles: handles, Expanded: expanded}
}
