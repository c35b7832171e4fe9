// internal/state/pause_state.go
package state

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState замораживает сессию: кадры симуляции не идут, карта видна
// под затемнением.
type PauseState struct {
	stateMachine  *StateMachine
	previousState State
	face          text.Face
}

func NewPauseState(sm *StateMachine, prevState State) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
		face:          text.NewGoXFace(basicfont.Face7x13),
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.stateMachine.RequestQuit()
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		s.stateMachine.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if s.previousState != nil {
		s.previousState.Draw(screen)
	}
	b := screen.Bounds()
	vector.DrawFilledRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), color.RGBA{0, 0, 0, 128}, false)

	const label = "PAUSED"
	w, h := text.Measure(label, s.face, 0)
	op := &text.DrawOptions{}
	op.GeoM.Translate((float64(b.Dx())-w)/2, (float64(b.Dy())-h)/2)
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(screen, label, s.face, op)
}

func (s *PauseState) Exit() {}
