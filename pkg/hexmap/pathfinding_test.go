package hexmap

import (
	"reflect"
	"testing"
)

func inside(radius int, blocked ...Hex) func(Hex) bool {
	set := make(map[Hex]bool, len(blocked))
	for _, b := range blocked {
		set[b] = true
	}
	return func(h Hex) bool {
		return h.Distance(Hex{}) <= radius && !set[h]
	}
}

func TestAStarOptimalOnOpenGrid(t *testing.T) {
	passable := inside(4)
	start := Hex{Q: -3, R: 1}
	for _, goal := range Range(Hex{}, 4) {
		if goal == start {
			continue
		}
		path, _ := AStar(start, goal, passable)
		if len(path)-1 != start.Distance(goal) {
			t.Fatalf("path %v -> %v has %d steps, want %d", start, goal, len(path)-1, start.Distance(goal))
		}
		if path[0] != start || path[len(path)-1] != goal {
			t.Fatalf("path must run from start to goal inclusive: %v", path)
		}
		for i := 1; i < len(path); i++ {
			if !path[i-1].IsNeighbor(path[i]) {
				t.Fatalf("non-adjacent step %v -> %v", path[i-1], path[i])
			}
		}
	}
}

func TestAStarAvoidsBlocked(t *testing.T) {
	wall := []Hex{{Q: 1, R: -2}, {Q: 1, R: -1}, {Q: 1, R: 0}, {Q: 1, R: 1}}
	passable := inside(3, wall...)
	path, _ := AStar(Hex{Q: -1, R: 0}, Hex{Q: 3, R: -1}, passable)
	if path == nil {
		t.Fatalf("expected a path around the wall")
	}
	for _, h := range path[1:] {
		if !passable(h) {
			t.Fatalf("path crosses blocked cell %v: %v", h, path)
		}
	}
}

func TestAStarEnclosedGoal(t *testing.T) {
	goal := Hex{Q: 1, R: 1}
	passable := inside(5, Ring(goal, 1)...)
	if path, _ := AStar(Hex{Q: -3, R: 0}, goal, passable); path != nil {
		t.Fatalf("expected no path into an enclosed cell, got %v", path)
	}
}

func TestAStarBlockedGoal(t *testing.T) {
	goal := Hex{Q: 2, R: 0}
	path, expanded := AStar(Hex{}, goal, inside(3, goal))
	if path != nil || expanded != 0 {
		t.Fatalf("blocked goal must fail immediately, got %v after %d", path, expanded)
	}
}

func TestAStarSameCell(t *testing.T) {
	path, _ := AStar(Hex{Q: 1, R: 1}, Hex{Q: 1, R: 1}, inside(2))
	if len(path) != 1 {
		t.Fatalf("same-cell search should return the single cell, got %v", path)
	}
}

func TestAStarDeterministic(t *testing.T) {
	passable := inside(5, Hex{Q: 0, R: 1}, Hex{Q: 1, R: 0})
	first, _ := AStar(Hex{Q: -4, R: 2}, Hex{Q: 4, R: -2}, passable)
	for i := 0; i < 20; i++ {
		again, _ := AStar(Hex{Q: -4, R: 2}, Hex{Q: 4, R: -2}, passable)
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d differs: %v vs %v", i, first, again)
		}
	}
}
