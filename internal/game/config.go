package game

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Board dimensions (in tiles).
const (
	GridRows = 22
	GridCols = 30
)

// Window defaults.
const (
	WindowWidth  = 960
	WindowHeight = 720
	TilePx       = 30 // on-screen tile size in pixels
	BoardMarginY = 48 // pixels reserved above the board for the HUD
)

// Gameplay timing.
const (
	MoveInterval     = 0.14 // seconds per tick at level 1
	MinMoveInterval  = 0.06
	SpeedupPerApple  = 0.002
	AppleRespawnTime = 1.5 // seconds before a replacement apple appears
)

// Apples and obstacles.
const (
	AppleTarget  = 3 // apples kept on the board
	WallClusters = 4 // obstacle clusters placed per run
)

// Snake defaults.
const (
	DefaultMarker       = 1
	DefaultAllowedFails = 2
	StartLength         = 3
)

// Settings is the runtime configuration surface. Fields map 1:1 onto the
// YAML settings file; setters emit EventSettingChanged so listeners can
// react to toggles mid-run.
type Settings struct {
	WrapAround    bool    `yaml:"wrap_around"`
	EatApples     bool    `yaml:"eat_apples"`
	GrowOnApple   bool    `yaml:"grow_on_apple"`
	PlayerMarker  int     `yaml:"player_marker"`
	AllowedFails  int     `yaml:"allowed_fails"` // negative = unlimited
	SkipRepeats   bool    `yaml:"skip_repeats"`
	DefaultAction string  `yaml:"default_action"` // "", "move", "add", "flip"
	Autopilot     bool    `yaml:"autopilot"`
	Volume        float64 `yaml:"volume"`

	events *EventBus
}

func DefaultSettings() *Settings {
	return &Settings{
		WrapAround:    false,
		EatApples:     true,
		GrowOnApple:   true,
		PlayerMarker:  DefaultMarker,
		AllowedFails:  DefaultAllowedFails,
		SkipRepeats:   true,
		DefaultAction: "move",
		Autopilot:     false,
		Volume:        0.58,
	}
}

// LoadSettings reads a YAML settings file over the defaults. A missing
// file is not an error; the defaults stand.
func LoadSettings(path string) (*Settings, error) {
	s := DefaultSettings()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("read settings: %w", err)
	}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parse settings %s: %w", path, err)
	}
	return s, nil
}

// Bind attaches the bus used for change notifications.
func (s *Settings) Bind(events *EventBus) { s.events = events }

func (s *Settings) notify() {
	s.events.Emit(Event{Type: EventSettingChanged})
}

func (s *Settings) SetWrapAround(v bool) {
	if s.WrapAround != v {
		s.WrapAround = v
		s.notify()
	}
}

func (s *Settings) SetEatApples(v bool) {
	if s.EatApples != v {
		s.EatApples = v
		s.notify()
	}
}

func (s *Settings) SetGrowOnApple(v bool) {
	if s.GrowOnApple != v {
		s.GrowOnApple = v
		s.notify()
	}
}

func (s *Settings) SetSkipRepeats(v bool) {
	if s.SkipRepeats != v {
		s.SkipRepeats = v
		s.notify()
	}
}

func (s *Settings) SetAutopilot(v bool) {
	if s.Autopilot != v {
		s.Autopilot = v
		s.notify()
	}
}

func (s *Settings) SetDefaultAction(v string) {
	if s.DefaultAction != v {
		s.DefaultAction = v
		s.notify()
	}
}
