package game

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSettingsMissingFile(t *testing.T) {
	s, err := LoadSettings(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	def := DefaultSettings()
	if s.AllowedFails != def.AllowedFails || s.EatApples != def.EatApples {
		t.Error("missing file should leave the defaults untouched")
	}
}

func TestLoadSettingsOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	data := "wrap_around: true\nallowed_fails: -1\ndefault_action: flip\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := LoadSettings(path)
	if err != nil {
		t.Fatal(err)
	}
	if !s.WrapAround || s.AllowedFails != -1 || s.DefaultAction != "flip" {
		t.Error("file values should override the defaults")
	}
	// Unmentioned keys keep their defaults.
	if !s.EatApples || s.PlayerMarker != DefaultMarker {
		t.Error("unset keys should keep the defaults")
	}
}

func TestLoadSettingsMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte("wrap_around: [oops"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSettings(path); err == nil {
		t.Error("malformed YAML should be reported")
	}
}

func TestSettingsNotify(t *testing.T) {
	s := DefaultSettings()
	events := NewEventBus()
	s.Bind(events)

	changed := 0
	events.Subscribe(EventSettingChanged, func(Event) { changed++ })

	s.SetWrapAround(true)
	s.SetWrapAround(true) // no change, no notification
	s.SetAutopilot(true)

	if changed != 2 {
		t.Errorf("notifications = %d, want 2", changed)
	}
}
