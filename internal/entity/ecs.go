// internal/entity/ecs.go
package entity

import (
	"hexnav/internal/component"
	"hexnav/internal/types"
)

type ECS struct {
	NextID        types.EntityID
	Transforms    map[types.EntityID]*component.Transform
	Cells         map[types.EntityID]*component.Cell
	Movers        map[types.EntityID]*component.Mover
	Motions       map[types.EntityID]*component.Motion
	Controllables map[types.EntityID]*component.Controllable
	Cameras       map[types.EntityID]*component.Camera
}

func NewECS() *ECS {
	return &ECS{
		NextID:        1,
		Transforms:    make(map[types.EntityID]*component.Transform),
		Cells:         make(map[types.EntityID]*component.Cell),
		Movers:        make(map[types.EntityID]*component.Mover),
		Motions:       make(map[types.EntityID]*component.Motion),
		Controllables: make(map[types.EntityID]*component.Controllable),
		Cameras:       make(map[types.EntityID]*component.Camera),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// Despawn удаляет все компоненты сущности
func (ecs *ECS) Despawn(id types.EntityID) {
	delete(ecs.Transforms, id)
	delete(ecs.Cells, id)
	delete(ecs.Movers, id)
	delete(ecs.Motions, id)
	delete(ecs.Controllables, id)
	delete(ecs.Cameras, id)
}

// Player возвращает единственного управляемого персонажа.
// Если персонажей несколько, берётся с наименьшим ID.
func (ecs *ECS) Player() (types.EntityID, bool) {
	var best types.EntityID
	found := false
	for id := range ecs.Controllables {
		if !found || id < best {
			best = id
			found = true
		}
	}
	return best, found
}

// ActiveCamera возвращает камеру с наименьшим ID вместе с её трансформом.
func (ecs *ECS) ActiveCamera() (*component.Camera, *component.Transform, bool) {
	var best types.EntityID
	found := false
	for id := range ecs.Cameras {
		if _, ok := ecs.Transforms[id]; !ok {
			continue
		}
		if !found || id < best {
			best = id
			found = true
		}
	}
	if !found {
		return nil, nil, false
	}
	return ecs.Cameras[best], ecs.Transforms[best], true
}

// CellPosition возвращает центр ячейки-сущности. Если сущность удалена или
// больше не является ячейкой, возвращает false.
func (ecs *ECS) CellPosition(id types.EntityID) (float64, float64, bool) {
	if _, isCell := ecs.Cells[id]; !isCell {
		return 0, 0, false
	}
	t, ok := ecs.Transforms[id]
	if !ok {
		return 0, 0, false
	}
	return t.Position.X, t.Position.Z, true
}
