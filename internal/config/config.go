// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"hexnav/pkg/hexmap"

	"gopkg.in/yaml.v3"
)

// InteractionMode выбирает, что делает нажатие указателя по карте.
// В одной сессии активен ровно один режим.
type InteractionMode string

const (
	ModePath  InteractionMode = "path"  // проложить путь персонажа к ячейке
	ModeBlock InteractionMode = "block" // переключить блокировку ячейки
)

// Vec — точка в конфигурации (x, y, z)
type Vec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// Cell — осевая координата ячейки в конфигурации
type Cell struct {
	Q int `yaml:"q"`
	R int `yaml:"r"`
}

func (c Cell) Hex() hexmap.Hex {
	return hexmap.Hex{Q: c.Q, R: c.R}
}

type GridConfig struct {
	CellSize float64 `yaml:"cell_size"` // внешний радиус гекса в единицах мира
	Radius   int     `yaml:"radius"`
	Blocked  []Cell  `yaml:"blocked"` // ячейки, заблокированные при старте
}

type ActorConfig struct {
	MoveSpeed           float64 `yaml:"move_speed"`
	ArrivalEpsilon      float64 `yaml:"arrival_epsilon"`
	RotationSpeed       float64 `yaml:"rotation_speed"` // рад/с
	FaceTravelDirection bool    `yaml:"face_travel_direction"`
	Spawn               Vec     `yaml:"spawn"`
}

type CameraConfig struct {
	Position Vec `yaml:"position"`
	Target   Vec `yaml:"target"`
}

type InteractionConfig struct {
	Mode InteractionMode `yaml:"mode"`
}

type WindowConfig struct {
	Width         int     `yaml:"width"`
	Height        int     `yaml:"height"`
	PixelsPerUnit float64 `yaml:"pixels_per_unit"`
}

type DebugConfig struct {
	Addr        string   `yaml:"addr"` // пустая строка отключает отладочный сервер
	CORSOrigins []string `yaml:"cors_origins"`
	RateLimit   float64  `yaml:"rate_limit"` // запросов в секунду
	Burst       int      `yaml:"burst"`
}

type LogConfig struct {
	File   string `yaml:"file"`
	Level  string `yaml:"level"`
	Stderr bool   `yaml:"stderr"`
}

// Config — все параметры сессии. Задаются при старте и больше не меняются.
type Config struct {
	Grid         GridConfig        `yaml:"grid"`
	Actor        ActorConfig       `yaml:"actor"`
	Camera       CameraConfig      `yaml:"camera"`
	Interaction  InteractionConfig `yaml:"interaction"`
	Window       WindowConfig      `yaml:"window"`
	Debug        DebugConfig       `yaml:"debug"`
	Log          LogConfig         `yaml:"log"`
	MaxDeltaTime float64           `yaml:"max_delta_time"`
}

// Default возвращает конфигурацию по умолчанию. Соседние ячейки стоят
// на расстоянии 1 друг от друга.
func Default() Config {
	return Config{
		Grid: GridConfig{
			CellSize: 1 / hexmap.Sqrt3,
			Radius:   8,
		},
		Actor: ActorConfig{
			MoveSpeed:      5.0,
			ArrivalEpsilon: 0.1,
			RotationSpeed:  10.0,
			Spawn:          Vec{X: 0, Y: 0.5, Z: 0},
		},
		Camera: CameraConfig{
			Position: Vec{X: 5, Y: 5, Z: 10},
			Target:   Vec{},
		},
		Interaction: InteractionConfig{Mode: ModePath},
		Window: WindowConfig{
			Width:         1200,
			Height:        900,
			PixelsPerUnit: 48,
		},
		Debug: DebugConfig{
			Addr:        "localhost:6060",
			CORSOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
			RateLimit:   20,
			Burst:       40,
		},
		Log: LogConfig{
			File:   "hexnav.log",
			Level:  "info",
			Stderr: false,
		},
		MaxDeltaTime: 0.06,
	}
}

// Load читает YAML-файл поверх значений по умолчанию.
// Пустой path означает «только значения по умолчанию».
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: unmarshal %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv переопределяет отдельные поля переменными окружения HEXNAV_*.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("HEXNAV_MODE"); v != "" {
		c.Interaction.Mode = InteractionMode(strings.ToLower(v))
	}
	if v := os.Getenv("HEXNAV_GRID_RADIUS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: HEXNAV_GRID_RADIUS: %w", err)
		}
		c.Grid.Radius = n
	}
	if v := os.Getenv("HEXNAV_MOVE_SPEED"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("config: HEXNAV_MOVE_SPEED: %w", err)
		}
		c.Actor.MoveSpeed = f
	}
	if v, ok := os.LookupEnv("HEXNAV_DEBUG_ADDR"); ok {
		c.Debug.Addr = v
	}
	if v := os.Getenv("HEXNAV_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("HEXNAV_LOG_FILE"); v != "" {
		c.Log.File = v
	}
	return nil
}

// Validate проверяет, что с такими параметрами симуляция имеет смысл.
func (c Config) Validate() error {
	var errs []error
	if c.Grid.CellSize <= 0 {
		errs = append(errs, fmt.Errorf("grid.cell_size must be positive, got %v", c.Grid.CellSize))
	}
	if c.Grid.Radius < 0 {
		errs = append(errs, fmt.Errorf("grid.radius must not be negative, got %d", c.Grid.Radius))
	}
	if c.Actor.MoveSpeed <= 0 {
		errs = append(errs, fmt.Errorf("actor.move_speed must be positive, got %v", c.Actor.MoveSpeed))
	}
	if c.Actor.ArrivalEpsilon <= 0 {
		errs = append(errs, fmt.Errorf("actor.arrival_epsilon must be positive, got %v", c.Actor.ArrivalEpsilon))
	}
	if c.Actor.RotationSpeed < 0 {
		errs = append(errs, fmt.Errorf("actor.rotation_speed must not be negative, got %v", c.Actor.RotationSpeed))
	}
	switch c.Interaction.Mode {
	case ModePath, ModeBlock:
	default:
		errs = append(errs, fmt.Errorf("interaction.mode must be %q or %q, got %q", ModePath, ModeBlock, c.Interaction.Mode))
	}
	if c.Debug.Addr != "" && (c.Debug.RateLimit <= 0 || c.Debug.Burst <= 0) {
		errs = append(errs, fmt.Errorf("debug.rate_limit and debug.burst must be positive, got %v/%d", c.Debug.RateLimit, c.Debug.Burst))
	}
	if c.MaxDeltaTime <= 0 {
		errs = append(errs, fmt.Errorf("max_delta_time must be positive, got %v", c.MaxDeltaTime))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Цвета отрисовки карты
var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	WalkableColor   = color.RGBA{70, 100, 120, 220}
	BlockedColor    = color.RGBA{150, 70, 70, 220}
	PathColor       = color.RGBA{194, 178, 128, 230}
	HoverColor      = color.RGBA{240, 240, 240, 90}
	ActorColor      = color.RGBA{50, 205, 50, 255}
	HeadingColor    = color.RGBA{255, 255, 0, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	StrokeWidth     = 1.5
)
