// internal/state/router.go
package state

import (
	"hexnav/internal/input"
	"hexnav/pkg/screen"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var _ input.Router = (*EbitenRouter)(nil)

// EbitenRouter читает мышь и клавиатуру ebiten и превращает их в намерения
type EbitenRouter struct {
	view screen.Viewport
}

func NewEbitenRouter(view screen.Viewport) *EbitenRouter {
	return &EbitenRouter{view: view}
}

// Sample опрашивает устройства. Выбор ячейки срабатывает только в кадре
// нажатия левой кнопки, направления — пока клавиши зажаты.
func (r *EbitenRouter) Sample() input.Frame {
	var frame input.Frame
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		frame.Pick = &input.PointerPick{Ray: r.view.ScreenToRay(float64(x), float64(y))}
	}
	frame.Direction = input.DirectionalIntent{
		Up:    anyPressed(ebiten.KeyW, ebiten.KeyArrowUp),
		Down:  anyPressed(ebiten.KeyS, ebiten.KeyArrowDown),
		Left:  anyPressed(ebiten.KeyA, ebiten.KeyArrowLeft),
		Right: anyPressed(ebiten.KeyD, ebiten.KeyArrowRight),
	}
	return frame
}

// Hover возвращает точку под курсором на земле
func (r *EbitenRouter) Hover() (float64, float64) {
	x, y := ebiten.CursorPosition()
	return r.view.ScreenToWorld(float64(x), float64(y))
}

func anyPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}
