// pkg/hexmap/hex.go
package hexmap

import "hexnav/pkg/utils"

// Hex представляет гекс в осевых координатах (Q, R)
type Hex struct {
	Q int `json:"q"`
	R int `json:"r"`
}

// NeighborDirections defines the 6 possible directions from a hex, starting from East and going counter-clockwise.
// A* expands neighbours in exactly this order, so search results depend on it.
var NeighborDirections = [6]Hex{
	{Q: 1, R: 0}, {Q: 1, R: -1}, {Q: 0, R: -1},
	{Q: -1, R: 0}, {Q: -1, R: 1}, {Q: 0, R: 1},
}

// S возвращает третью кубическую координату (S = -Q - R)
func (h Hex) S() int {
	return -h.Q - h.R
}

// Neighbors возвращает всех шестерых соседей гекса, независимо от карты
func (h Hex) Neighbors() [6]Hex {
	var out [6]Hex
	for i, d := range NeighborDirections {
		out[i] = h.Add(d)
	}
	return out
}

// IsNeighbor reports whether other is one step away from h.
func (h Hex) IsNeighbor(other Hex) bool {
	return h.Distance(other) == 1
}

// Add возвращает сумму двух гексов
func (h Hex) Add(other Hex) Hex {
	return Hex{
		Q: h.Q + other.Q,
		R: h.R + other.R,
	}
}

// Subtract возвращает разность двух гексов
func (h Hex) Subtract(other Hex) Hex {
	return Hex{
		Q: h.Q - other.Q,
		R: h.R - other.R,
	}
}

// Scale multiplies a hex vector by a scalar.
func (h Hex) Scale(factor int) Hex {
	return Hex{h.Q * factor, h.R * factor}
}

// Distance вычисляет расстояние между гексами (кубическая метрика)
func (h Hex) Distance(to Hex) int {
	dq := h.Q - to.Q
	dr := h.R - to.R
	return (utils.Abs(dq) + utils.Abs(dr) + utils.Abs(dq+dr)) / 2
}

// Range возвращает все гексы на расстоянии не больше radius от center.
// Порядок обхода фиксирован: по Q, затем по R.
func Range(center Hex, radius int) []Hex {
	if radius < 0 {
		return nil
	}
	result := make([]Hex, 0, 3*radius*(radius+1)+1)
	for q := -radius; q <= radius; q++ {
		for r := max(-radius, -q-radius); r <= min(radius, -q+radius); r++ {
			result = append(result, center.Add(Hex{Q: q, R: r}))
		}
	}
	return result
}

// Ring возвращает гексы ровно на расстоянии radius от center.
func Ring(center Hex, radius int) []Hex {
	if radius <= 0 {
		return []Hex{center}
	}
	result := make([]Hex, 0, 6*radius)
	// Стартуем с гекса radius шагов в направлении 4 и идём по кругу
	h := center.Add(NeighborDirections[4].Scale(radius))
	for side := 0; side < 6; side++ {
		for step := 0; step < radius; step++ {
			result = append(result, h)
			h = h.Add(NeighborDirections[side])
		}
	}
	return result
}

// Less задаёт детерминированный порядок гексов (по Q, затем по R).
func (h Hex) Less(other Hex) bool {
	if h.Q != other.Q {
		return h.Q < other.Q
	}
	return h.R < other.R
}
