// internal/event/payloads.go
package event

import (
	"hexnav/internal/types"
	"hexnav/pkg/hexmap"
)

// PathData — данные для PathPlanned и PathNotFound
type PathData struct {
	Start    hexmap.Hex
	Goal     hexmap.Hex
	Coords   []hexmap.Hex
	Length   int // число шагов (рёбер)
	Expanded int
}

// ToggleData — данные для CellToggled
type ToggleData struct {
	Hex     hexmap.Hex
	Blocked bool
	Pruned  bool // ячейка была удалена из очереди пути
}

// LegData — данные для LegCompleted и LegAbandoned
type LegData struct {
	Actor  types.EntityID
	Target types.EntityID
}

// RejectData — данные для MoveRejected
type RejectData struct {
	Actor types.EntityID
	Hex   hexmap.Hex
}
