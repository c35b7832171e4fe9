// pkg/hexmap/pathfinding.go
package hexmap

import (
	"github.com/zyedidia/generic/heap"
)

// node — запись в открытом списке A*
type node struct {
	Hex      Hex
	Cost     int // стоимость от старта (g)
	Priority int // g + эвристика (f)
	seq      int
}

// nodeLess упорядочивает открытый список: меньший f, затем больший g
// (ближе к цели), затем порядок вставки. Так результат не зависит от
// внутреннего устройства кучи.
func nodeLess(a, b node) bool {
	if a.Priority != b.Priority {
		return a.Priority < b.Priority
	}
	if a.Cost != b.Cost {
		return a.Cost > b.Cost
	}
	return a.seq < b.seq
}

// AStar находит кратчайший путь от start до goal по шести соседям с единичной
// стоимостью шага. В путь попадают только гексы, для которых passable вернул
// true; сам start не проверяется. Возвращает путь от start до goal включительно
// (nil, если пути нет) и число раскрытых узлов.
func AStar(start, goal Hex, passable func(Hex) bool) ([]Hex, int) {
	if start == goal {
		return []Hex{start}, 0
	}
	if !passable(goal) {
		return nil, 0
	}

	pq := heap.New[node](nodeLess)
	seq := 0
	pq.Push(node{Hex: start, Cost: 0, Priority: start.Distance(goal), seq: seq})

	cameFrom := make(map[Hex]Hex)
	costSoFar := map[Hex]int{start: 0}
	closed := make(map[Hex]struct{})
	expanded := 0

	for pq.Size() > 0 {
		current, _ := pq.Pop()
		if _, done := closed[current.Hex]; done {
			continue
		}
		closed[current.Hex] = struct{}{}
		expanded++

		if current.Hex == goal {
			return reconstructPath(cameFrom, start, goal), expanded
		}

		for _, neighbor := range current.Hex.Neighbors() {
			if _, done := closed[neighbor]; done {
				continue
			}
			if !passable(neighbor) {
				continue
			}
			newCost := current.Cost + 1
			if old, seen := costSoFar[neighbor]; seen && newCost >= old {
				continue
			}
			costSoFar[neighbor] = newCost
			cameFrom[neighbor] = current.Hex
			seq++
			pq.Push(node{
				Hex:      neighbor,
				Cost:     newCost,
				Priority: newCost + neighbor.Distance(goal),
				seq:      seq,
			})
		}
	}
	return nil, expanded // Нет пути
}

func reconstructPath(cameFrom map[Hex]Hex, start, goal Hex) []Hex {
	path := []Hex{goal}
	for current := goal; current != start; {
		current = cameFrom[current]
		path = append(path, current)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
