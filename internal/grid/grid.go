// internal/grid/grid.go
package grid

import (
	"sort"

	"hexnav/internal/types"
	"hexnav/pkg/hexmap"

	"github.com/zyedidia/generic/mapset"
)

// Grid — пространственный индекс гекс-карты: какие ячейки существуют,
// какая сущность занимает каждую из них, какие ячейки сейчас заблокированы
// и какой путь сейчас выполняется.
//
// Grid не потокобезопасен: к нему обращается только кадр симуляции.
type Grid struct {
	Layout hexmap.Layout

	occupants map[hexmap.Hex]types.EntityID
	cells     map[types.EntityID]hexmap.Hex
	blocked   mapset.Set[hexmap.Hex]
	path      []types.EntityID
}

// New создаёт пустую карту с заданной раскладкой
func New(layout hexmap.Layout) *Grid {
	return &Grid{
		Layout:    layout,
		occupants: make(map[hexmap.Hex]types.EntityID),
		cells:     make(map[types.EntityID]hexmap.Hex),
		blocked:   mapset.New[hexmap.Hex](),
	}
}

// Insert регистрирует обитателя ячейки. Повторная вставка заменяет
// прежнего обитателя.
func (g *Grid) Insert(h hexmap.Hex, id types.EntityID) {
	if old, exists := g.occupants[h]; exists {
		delete(g.cells, old)
	}
	g.occupants[h] = id
	g.cells[id] = h
}

// Remove убирает ячейку с карты. Ячейка перестаёт быть заблокированной,
// а её дескриптор удаляется из очереди пути.
func (g *Grid) Remove(h hexmap.Hex) (types.EntityID, bool) {
	id, exists := g.occupants[h]
	if !exists {
		return types.NoEntity, false
	}
	delete(g.occupants, h)
	delete(g.cells, id)
	g.blocked.Remove(h)
	g.prunePath(id)
	return id, true
}

// Contains — существует ли ячейка
func (g *Grid) Contains(h hexmap.Hex) bool {
	_, exists := g.occupants[h]
	return exists
}

// Len — число ячеек на карте
func (g *Grid) Len() int {
	return len(g.occupants)
}

func (g *Grid) OccupantOf(h hexmap.Hex) (types.EntityID, bool) {
	id, ok := g.occupants[h]
	return id, ok
}

// CellOf — обратный поиск: в какой ячейке находится обитатель
func (g *Grid) CellOf(id types.EntityID) (hexmap.Hex, bool) {
	h, ok := g.cells[id]
	return h, ok
}

func (g *Grid) IsBlocked(h hexmap.Hex) bool {
	return g.blocked.Has(h)
}

// IsWalkable — ячейка существует и не заблокирована
func (g *Grid) IsWalkable(h hexmap.Hex) bool {
	return g.Contains(h) && !g.blocked.Has(h)
}

// Toggle — результат ToggleBlocked
type Toggle struct {
	Blocked bool // состояние ячейки после переключения
	Changed bool // false, если ячейки нет на карте
	Pruned  bool // дескриптор ячейки был удалён из очереди пути
}

// ToggleBlocked переключает блокировку ячейки. Заблокированная ячейка
// разблокируется; существующая свободная ячейка блокируется, и её дескриптор
// выбрасывается из очереди пути (остаток пути не перепроверяется).
// Для несуществующей ячейки ничего не меняется.
func (g *Grid) ToggleBlocked(h hexmap.Hex) Toggle {
	if g.blocked.Has(h) {
		g.blocked.Remove(h)
		return Toggle{Blocked: false, Changed: true}
	}
	id, exists := g.occupants[h]
	if !exists {
		return Toggle{}
	}
	g.blocked.Put(h)
	return Toggle{Blocked: true, Changed: true, Pruned: g.prunePath(id)}
}

// BlockedCells возвращает заблокированные ячейки в детерминированном порядке
func (g *Grid) BlockedCells() []hexmap.Hex {
	out := make([]hexmap.Hex, 0, g.blocked.Size())
	g.blocked.Each(func(h hexmap.Hex) {
		out = append(out, h)
	})
	sortHexes(out)
	return out
}

// Cells возвращает все ячейки карты в детерминированном порядке
func (g *Grid) Cells() []hexmap.Hex {
	out := make([]hexmap.Hex, 0, len(g.occupants))
	for h := range g.occupants {
		out = append(out, h)
	}
	sortHexes(out)
	return out
}

// SetPath заменяет текущую очередь пути. Одновременно выполняется не более
// одного пути.
func (g *Grid) SetPath(ids []types.EntityID) {
	g.path = append(g.path[:0:0], ids...)
}

// PopPath снимает первую точку пути
func (g *Grid) PopPath() (types.EntityID, bool) {
	if len(g.path) == 0 {
		return types.NoEntity, false
	}
	id := g.path[0]
	g.path = g.path[1:]
	return id, true
}

func (g *Grid) ClearPath() {
	g.path = nil
}

func (g *Grid) HasPath() bool {
	return len(g.path) > 0
}

func (g *Grid) PathLen() int {
	return len(g.path)
}

// PathQueue возвращает копию очереди пути (для отрисовки и отладки)
func (g *Grid) PathQueue() []types.EntityID {
	return append([]types.EntityID(nil), g.path...)
}

// PathHexes переводит очередь пути в координаты ячеек
func (g *Grid) PathHexes() []hexmap.Hex {
	out := make([]hexmap.Hex, 0, len(g.path))
	for _, id := range g.path {
		if h, ok := g.cells[id]; ok {
			out = append(out, h)
		}
	}
	return out
}

func (g *Grid) prunePath(id types.EntityID) bool {
	kept := g.path[:0]
	pruned := false
	for _, p := range g.path {
		if p == id {
			pruned = true
			continue
		}
		kept = append(kept, p)
	}
	g.path = kept
	return pruned
}

func sortHexes(hexes []hexmap.Hex) {
	sort.Slice(hexes, func(i, j int) bool { return hexes[i].Less(hexes[j]) })
}
