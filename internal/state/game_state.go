// internal/state/game_state.go
package state

import (
	"fmt"

	"hexnav/internal/app"
	"hexnav/internal/config"
	"hexnav/pkg/render"
	"hexnav/pkg/screen"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"
)

// GameState — основной режим просмотра: кадр сессии и отрисовка карты
type GameState struct {
	sm       *StateMachine
	session  *app.Session
	router   *EbitenRouter
	renderer *render.HexRenderer
	log      *zap.SugaredLogger
}

func NewGameState(sm *StateMachine, session *app.Session, log *zap.SugaredLogger) *GameState {
	cfg := session.Config
	view := screen.NewViewport(cfg.Window.Width, cfg.Window.Height, cfg.Window.PixelsPerUnit)

	mapColors := render.MapColors{
		BackgroundColor: config.BackgroundColor,
		WalkableColor:   config.WalkableColor,
		BlockedColor:    config.BlockedColor,
		PathColor:       config.PathColor,
		HoverColor:      config.HoverColor,
		ActorColor:      config.ActorColor,
		HeadingColor:    config.HeadingColor,
		TextColor:       config.TextLightColor,
		StrokeWidth:     float32(config.StrokeWidth),
	}

	return &GameState{
		sm:       sm,
		session:  session,
		router:   NewEbitenRouter(view),
		renderer: render.NewHexRenderer(session.Grid.Layout, view, session.Grid.Cells(), mapColors),
		log:      log,
	}
}

func (g *GameState) Enter() {
	g.log.Debug("viewer resumed")
}

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.sm.RequestQuit()
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}
	g.session.Update(deltaTime, g.router.Sample())
}

func (g *GameState) Draw(dst *ebiten.Image) {
	g.renderer.Draw(dst, g.scene())
}

// scene собирает то, что нужно рендереру, из последнего снимка сессии
func (g *GameState) scene() render.Scene {
	snap := g.session.Snapshot()
	scene := render.Scene{
		Blocked: snap.Blocked,
		Path:    snap.Path,
	}

	hx, hz := g.router.Hover()
	if hover := g.session.Grid.Layout.WorldToHex(hx, hz); g.session.Grid.Contains(hover) {
		scene.Hover, scene.HasHover = hover, true
	}

	if snap.Actor.Present {
		scene.HasActor = true
		scene.ActorX = snap.Actor.Position.X
		scene.ActorZ = snap.Actor.Position.Z
		scene.ActorHeading = snap.Actor.Heading
	}

	scene.HUD = []string{
		fmt.Sprintf("mode: %s", snap.Mode),
		fmt.Sprintf("actor: (%d, %d)  queued: %d", snap.Actor.Hex.Q, snap.Actor.Hex.R, len(snap.Path)),
		fmt.Sprintf("blocked: %d  tick: %d", len(snap.Blocked), snap.Tick),
		"click: pick cell   WASD/arrows: move   P: pause   Esc: quit",
	}
	return scene
}

func (g *GameState) Exit() {
	g.log.Debug("viewer paused")
}
