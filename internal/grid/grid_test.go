package grid

import (
	"testing"

	"hexnav/internal/types"
	"hexnav/pkg/hexmap"
)

// newHexagon заполняет шестиугольную карту; ID ячейки = порядковый номер + 1
func newHexagon(radius int) *Grid {
	g := New(hexmap.NewLayout(1))
	for i, h := range hexmap.Range(hexmap.Hex{}, radius) {
		g.Insert(h, types.EntityID(i+1))
	}
	return g
}

func TestWalkability(t *testing.T) {
	g := newHexagon(2)
	if g.Len() != 19 {
		t.Fatalf("expected 19 cells, got %d", g.Len())
	}

	cases := []struct {
		name     string
		hex      hexmap.Hex
		block    bool
		walkable bool
	}{
		{"center", hexmap.Hex{}, false, true},
		{"edge", hexmap.Hex{Q: 2, R: -2}, false, true},
		{"outside", hexmap.Hex{Q: 3, R: 0}, false, false},
		{"blocked", hexmap.Hex{Q: 1, R: 0}, true, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if c.block {
				g.ToggleBlocked(c.hex)
			}
			if got := g.IsWalkable(c.hex); got != c.walkable {
				t.Fatalf("IsWalkable(%v) = %v, want %v", c.hex, got, c.walkable)
			}
		})
	}
}

func TestToggleIdempotence(t *testing.T) {
	g := newHexagon(2)
	h := hexmap.Hex{Q: -1, R: 1}
	before, _ := g.OccupantOf(h)

	first := g.ToggleBlocked(h)
	if !first.Changed || !first.Blocked || g.IsWalkable(h) {
		t.Fatalf("first toggle should block the cell, got %+v", first)
	}
	second := g.ToggleBlocked(h)
	if !second.Changed || second.Blocked || !g.IsWalkable(h) {
		t.Fatalf("second toggle should unblock the cell, got %+v", second)
	}
	if len(g.BlockedCells()) != 0 {
		t.Fatalf("blocked set should be empty, got %v", g.BlockedCells())
	}
	after, ok := g.OccupantOf(h)
	if !ok || after != before || g.Len() != 19 {
		t.Fatalf("occupants must be untouched: before %d after %d ok %v len %d", before, after, ok, g.Len())
	}
}

func TestToggleOutsideGridIsNoop(t *testing.T) {
	g := newHexagon(1)
	res := g.ToggleBlocked(hexmap.Hex{Q: 5, R: 5})
	if res.Changed || res.Blocked {
		t.Fatalf("toggle outside the grid must not change anything, got %+v", res)
	}
	if len(g.BlockedCells()) != 0 {
		t.Fatalf("blocked set must stay a subset of occupants")
	}
}

func TestToggleBlockedPrunesOnlyThatCell(t *testing.T) {
	g := newHexagon(2)
	path := []hexmap.Hex{{Q: 1, R: 0}, {Q: 2, R: 0}, {Q: 2, R: -1}}
	ids := make([]types.EntityID, 0, len(path))
	for _, h := range path {
		id, _ := g.OccupantOf(h)
		ids = append(ids, id)
	}
	g.SetPath(ids)

	res := g.ToggleBlocked(path[1])
	if !res.Pruned {
		t.Fatalf("expected blocked cell to be pruned from the queue")
	}
	got := g.PathQueue()
	if len(got) != 2 || got[0] != ids[0] || got[1] != ids[2] {
		t.Fatalf("unexpected queue after pruning: %v (was %v)", got, ids)
	}

	// Разблокировка ничего не возвращает в очередь
	res = g.ToggleBlocked(path[1])
	if res.Pruned || g.PathLen() != 2 {
		t.Fatalf("unblocking must not touch the queue, got %+v len %d", res, g.PathLen())
	}
}

func TestPathQueueFIFO(t *testing.T) {
	g := newHexagon(1)
	g.SetPath([]types.EntityID{3, 4, 5})
	for _, want := range []types.EntityID{3, 4, 5} {
		got, ok := g.PopPath()
		if !ok || got != want {
			t.Fatalf("PopPath = %d, %v; want %d", got, ok, want)
		}
	}
	if _, ok := g.PopPath(); ok || g.HasPath() {
		t.Fatalf("queue should be empty")
	}
}

func TestSetPathCopiesInput(t *testing.T) {
	g := newHexagon(1)
	ids := []types.EntityID{1, 2}
	g.SetPath(ids)
	ids[0] = 99
	if q := g.PathQueue(); q[0] != 1 {
		t.Fatalf("queue aliases caller slice: %v", q)
	}
}

func TestRemoveCell(t *testing.T) {
	g := newHexagon(1)
	h := hexmap.Hex{Q: 0, R: 1}
	id, _ := g.OccupantOf(h)
	g.ToggleBlocked(h)
	g.SetPath([]types.EntityID{id})

	removed, ok := g.Remove(h)
	if !ok || removed != id {
		t.Fatalf("Remove = %d, %v; want %d", removed, ok, id)
	}
	if g.Contains(h) || g.IsBlocked(h) || g.HasPath() {
		t.Fatalf("removed cell must vanish from occupants, blocked set and queue")
	}
	if _, ok := g.CellOf(id); ok {
		t.Fatalf("reverse mapping should be gone")
	}
}

func TestCellsAreSorted(t *testing.T) {
	g := newHexagon(1)
	cells := g.Cells()
	for i := 1; i < len(cells); i++ {
		if !cells[i-1].Less(cells[i]) {
			t.Fatalf("cells not sorted at %d: %v", i, cells)
		}
	}
}
