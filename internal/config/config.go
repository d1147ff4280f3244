// Package config provides YAML-based configuration for the dodge games:
// playfield, player handling, spawning, entity shapes and assets.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/dodge-arcade/internal/core"
)

// MaxSpeedRatio caps player velocity at this fraction of top speed.
const MaxSpeedRatio = 0.8

// GameConfig contains all configuration for one dodge game variant.
type GameConfig struct {
	ID           string            `yaml:"id"`
	Title        string            `yaml:"title"`
	Playfield    Playfield         `yaml:"playfield"`
	Flow         Flow              `yaml:"flow"`
	Player       PlayerConfig      `yaml:"player"`
	Spawner      SpawnerConfig     `yaml:"spawner"`
	Obstacles    EntityConfig      `yaml:"obstacles"`
	Collectibles CollectibleConfig `yaml:"collectibles"`
	Menu         MenuConfig        `yaml:"menu"`
	Theme        Theme             `yaml:"theme"`
	Assets       Assets            `yaml:"assets"`
}

// Playfield is the fixed logical resolution the simulation runs in.
type Playfield struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Flow controls state machine differences between variants.
type Flow struct {
	// GameOverScreen selects Playing -> GameOver on a hit. When false the
	// game drops straight back to the menu.
	GameOverScreen bool `yaml:"game_over_screen"`
}

// PlayerConfig defines player size and handling. Speeds are per frame.
type PlayerConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	TopSpeed     float64 `yaml:"top_speed"`
	Acceleration float64 `yaml:"acceleration"`
	Friction     float64 `yaml:"friction"` // velocity multiplier applied every frame, < 1
}

// MaxSpeed returns the per-axis velocity cap.
func (p PlayerConfig) MaxSpeed() float64 {
	return p.TopSpeed * MaxSpeedRatio
}

// Edge names a playfield border.
type Edge string

const (
	EdgeRight  Edge = "right"
	EdgeLeft   Edge = "left"
	EdgeTop    Edge = "top"
	EdgeBottom Edge = "bottom"
)

// Valid reports whether e is one of the four borders.
func (e Edge) Valid() bool {
	switch e {
	case EdgeRight, EdgeLeft, EdgeTop, EdgeBottom:
		return true
	}
	return false
}

// SpawnerConfig defines when and where entities appear.
type SpawnerConfig struct {
	Interval         float64 `yaml:"interval"`           // seconds between obstacle spawns
	Edge             Edge    `yaml:"edge"`               // border entities enter from
	CollectibleOneIn int     `yaml:"collectible_one_in"` // a collectible joins 1 in N spawns
}

// SpawnInterval returns Interval as a duration.
func (s SpawnerConfig) SpawnInterval() time.Duration {
	return time.Duration(s.Interval * float64(time.Second))
}

// ShapeKind selects the collision shape of an entity.
type ShapeKind string

const (
	ShapeBox    ShapeKind = "box"
	ShapeCircle ShapeKind = "circle"
)

// EntityConfig defines the shape and speed of obstacles or collectibles.
// Width/Height apply to boxes, Radius to circles.
type EntityConfig struct {
	Shape  ShapeKind `yaml:"shape"`
	Width  float64   `yaml:"width"`
	Height float64   `yaml:"height"`
	Radius float64   `yaml:"radius"`
	Speed  float64   `yaml:"speed"` // per frame, away from the spawn edge
}

// Size returns the bounding size of one entity.
func (e EntityConfig) Size() core.Vec2 {
	if e.Shape == ShapeCircle {
		return core.V(2*e.Radius, 2*e.Radius)
	}
	return core.V(e.Width, e.Height)
}

// CollectibleConfig adds the point value range to EntityConfig.
type CollectibleConfig struct {
	EntityConfig `yaml:",inline"`
	MinValue     int `yaml:"min_value"`
	MaxValue     int `yaml:"max_value"`
}

// MenuConfig defines the title screen.
type MenuConfig struct {
	Title          string  `yaml:"title"`
	Prompt         string  `yaml:"prompt"`
	FloatAmplitude float64 `yaml:"float_amplitude"` // logical units
	FloatHz        float64 `yaml:"float_hz"`
}

// Theme assigns palette colors (core.Color names) to drawn elements.
type Theme struct {
	Player      string `yaml:"player"`
	Obstacle    string `yaml:"obstacle"`
	Collectible string `yaml:"collectible"`
	Text        string `yaml:"text"`
	Alert       string `yaml:"alert"`
}

// Assets lists files used by the window frontend, relative to the assets directory.
type Assets struct {
	PlayerSprite      Sprite   `yaml:"player_sprite"`
	ObstacleSprite    Sprite   `yaml:"obstacle_sprite"`
	CollectibleSprite Sprite   `yaml:"collectible_sprite"`
	MenuBackground    string   `yaml:"menu_background"`
	GameBackground    string   `yaml:"game_background"`
	Fonts             []string `yaml:"fonts"` // first readable candidate wins
	MenuMusic         Sound    `yaml:"menu_music"`
	GameMusic         []Sound  `yaml:"game_music"`
	Pickup            Sound    `yaml:"pickup"`
	Failure           []Sound  `yaml:"failure"`
}

// Sounds returns every configured sound, including empty slots.
func (a Assets) Sounds() []Sound {
	out := []Sound{a.MenuMusic, a.Pickup}
	out = append(out, a.GameMusic...)
	return append(out, a.Failure...)
}

// Sprite is an image drawn for an entity. Required sprites abort startup when missing.
type Sprite struct {
	Path     string  `yaml:"path"`
	Scale    float64 `yaml:"scale"`
	Required bool    `yaml:"required"`
}

// Sound is an audio file and its playback volume in [0, 1].
type Sound struct {
	Path   string  `yaml:"path"`
	Volume float64 `yaml:"volume"`
}

// Validate checks the config for values the simulation cannot run with.
// All problems are reported together.
func (c GameConfig) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	if c.ID == "" {
		bad("id must not be empty")
	}
	if c.Playfield.Width <= 0 || c.Playfield.Height <= 0 {
		bad("playfield must have a positive size, got %vx%v", c.Playfield.Width, c.Playfield.Height)
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		bad("player must have a positive size")
	}
	if c.Player.Width > c.Playfield.Width || c.Player.Height > c.Playfield.Height {
		bad("player does not fit in the playfield")
	}
	if c.Player.TopSpeed <= 0 || c.Player.Acceleration <= 0 {
		bad("player top_speed and acceleration must be positive")
	}
	if c.Player.Friction <= 0 || c.Player.Friction >= 1 {
		bad("player friction must be in (0, 1), got %v", c.Player.Friction)
	}
	if c.Spawner.Interval <= 0 {
		bad("spawner interval must be positive")
	}
	if !c.Spawner.Edge.Valid() {
		bad("spawner edge %q is not one of right, left, top, bottom", c.Spawner.Edge)
	}
	if c.Spawner.CollectibleOneIn < 1 {
		bad("spawner collectible_one_in must be at least 1")
	}
	if err := c.Obstacles.validate("obstacles"); err != nil {
		errs = append(errs, err)
	}
	if err := c.Collectibles.validate("collectibles"); err != nil {
		errs = append(errs, err)
	}
	if c.Collectibles.MinValue < 0 || c.Collectibles.MaxValue < c.Collectibles.MinValue {
		bad("collectibles value range [%d, %d] is invalid", c.Collectibles.MinValue, c.Collectibles.MaxValue)
	}
	for _, s := range c.Assets.Sounds() {
		if s.Volume < 0 || s.Volume > 1 {
			bad("volume for %q must be in [0, 1]", s.Path)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config %q: %w", c.ID, errors.Join(errs...))
	}
	return nil
}

func (e EntityConfig) validate(name string) error {
	switch e.Shape {
	case ShapeBox:
		if e.Width <= 0 || e.Height <= 0 {
			return fmt.Errorf("%s: box needs a positive width and height", name)
		}
	case ShapeCircle:
		if e.Radius <= 0 {
			return fmt.Errorf("%s: circle needs a positive radius", name)
		}
	default:
		return fmt.Errorf("%s: unknown shape %q", name, e.Shape)
	}
	if e.Speed <= 0 {
		return fmt.Errorf("%s: speed must be positive", name)
	}
	return nil
}
