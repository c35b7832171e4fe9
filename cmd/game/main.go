// cmd/game/main.go
package main

import (
	"context"
	"log"
	"os"
	"time"

	"hexnav/internal/app"
	"hexnav/internal/config"
	"hexnav/internal/debugsrv"
	"hexnav/internal/logging"
	"hexnav/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/joho/godotenv"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
	maxDeltaTime   float64
	width, height  int
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > a.maxDeltaTime {
		deltaTime = a.maxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	if a.stateMachine.QuitRequested() {
		return ebiten.Termination
	}
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}

func loadConfig() (config.Config, error) {
	// .env необязателен
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return config.Config{}, err
	}
	cfg, err := config.Load(os.Getenv("HEXNAV_CONFIG"))
	if err != nil {
		return cfg, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatal(err)
	}
	logger, err := logging.New(cfg.Log)
	if err != nil {
		log.Fatal(err)
	}
	defer logging.Sync(logger)

	session, err := app.NewSession(cfg, logger)
	if err != nil {
		logger.Fatalw("session setup failed", "err", err)
	}

	var debug *debugsrv.Server
	if cfg.Debug.Addr != "" {
		debug = debugsrv.New(cfg.Debug, session, logger)
		if err := debug.Start(); err != nil {
			// Без отладочного сервера просмотр всё равно работает
			logger.Warnw("debug server disabled", "err", err)
			debug = nil
		}
	}

	sm := state.NewStateMachine()
	sm.SetState(state.NewGameState(sm, session, logger))
	game := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
		maxDeltaTime:   cfg.MaxDeltaTime,
		width:          cfg.Window.Width,
		height:         cfg.Window.Height,
	}
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle("Hex Navigation")
	runErr := ebiten.RunGame(game)

	if debug != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		if err := debug.Shutdown(ctx); err != nil {
			logger.Warnw("debug server shutdown", "err", err)
		}
		cancel()
	}
	if runErr != nil {
		logger.Errorw("viewer stopped", "err", runErr)
	}
}
