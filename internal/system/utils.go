// internal/system/utils.go
package system

import (
	"hexnav/internal/entity"
	"hexnav/internal/grid"
	"hexnav/pkg/hexmap"
)

// ActorHex возвращает ячейку, в которой сейчас стоит управляемый персонаж.
func ActorHex(ecs *entity.ECS, g *grid.Grid) (hexmap.Hex, bool) {
	id, ok := ecs.Player()
	if !ok {
		return hexmap.Hex{}, false
	}
	transform, ok := ecs.Transforms[id]
	if !ok {
		return hexmap.Hex{}, false
	}
	return g.Layout.WorldToHex(transform.Position.X, transform.Position.Z), true
}
