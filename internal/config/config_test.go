package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	for _, id := range []string{SceneInvaders, ScenePatrol} {
		t.Run(id, func(t *testing.T) {
			var fromYAML SceneConfig
			if err := yaml.Unmarshal(GetDefaultYAML(id), &fromYAML); err != nil {
				t.Fatalf("embedded YAML does not parse: %v", err)
			}
			hardcoded, ok := Default(id)
			if !ok {
				t.Fatalf("Default(%q) not found", id)
			}
			if !reflect.DeepEqual(fromYAML, hardcoded) {
				t.Errorf("embedded YAML differs from hardcoded default:\nyaml: %+v\ncode: %+v", fromYAML, hardcoded)
			}
			if err := hardcoded.Validate(); err != nil {
				t.Errorf("default config should be valid, got %v", err)
			}
		})
	}
}

func TestLoadUnknownScene(t *testing.T) {
	if _, err := Load("galaga", ""); err == nil {
		t.Error("Load should fail for an unknown scene")
	}
}

func TestLoadCustomPathOverridesFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := `
timing:
  frame_delay_ms: 50
collision:
  consume_on_hit: true
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(SceneInvaders, path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Timing.FrameDelayMS != 50 {
		t.Errorf("FrameDelayMS = %d, expected 50", cfg.Timing.FrameDelayMS)
	}
	if !cfg.Collision.ConsumeOnHit {
		t.Error("ConsumeOnHit should be overridden to true")
	}
	// Untouched fields keep their defaults
	if cfg.Ship.FireEvery != 10 {
		t.Errorf("FireEvery = %d, expected default 10", cfg.Ship.FireEvery)
	}
	if cfg.Collision.Radius != (Offset{X: 3, Y: 2}) {
		t.Errorf("Radius = %+v, expected default {3 2}", cfg.Collision.Radius)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(SceneInvaders, filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load should fail for a missing custom file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("ship: [not, a, map"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(SceneInvaders, bad); err == nil {
		t.Error("Load should fail for malformed YAML")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("ship:\n  fire_every: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := Load(SceneInvaders, invalid)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Load error = %v, expected ErrInvalidConfig", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SceneConfig)
		want   string
	}{
		{"inverted bounds", func(c *SceneConfig) { c.Playfield.MaxX = -1 }, "max_x"},
		{"zero ship period", func(c *SceneConfig) { c.Ship.Period = 0 }, "period"},
		{"empty ship shape", func(c *SceneConfig) { c.Ship.Shape = nil }, "ship shape"},
		{"bad fire phase", func(c *SceneConfig) { c.Ship.FirePhase = "sometimes" }, "fire_phase"},
		{"wide glyph", func(c *SceneConfig) { c.Projectile.Glyph = "^^" }, "glyph"},
		{"bad expiry", func(c *SceneConfig) { c.Projectile.Expiry = "never" }, "expiry"},
		{"zero enemy period", func(c *SceneConfig) { c.Enemies.Period = 0 }, "enemy period"},
		{"zero radius", func(c *SceneConfig) { c.Collision.Radius.Y = 0 }, "radius"},
		{"unknown color", func(c *SceneConfig) { c.Enemies.Color = "mauve" }, "enemies.color"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultInvadersConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("Validate() = %v, expected ErrInvalidConfig", err)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("Validate() = %q, expected mention of %q", err, tc.want)
			}
		})
	}
}

func TestValidateAllowsEmptyFormation(t *testing.T) {
	cfg := DefaultPatrolConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("ship-only scene should validate, got %v", err)
	}
}

func TestColors(t *testing.T) {
	ship, projectile, enemy := DefaultInvadersConfig().Colors()
	if ship != core.ColorWhite || projectile != core.ColorBrightBlue || enemy != core.ColorBrightRed {
		t.Errorf("Colors() = (%v, %v, %v), expected (white, bright_blue, bright_red)", ship, projectile, enemy)
	}

	_, _, enemy = DefaultPatrolConfig().Colors()
	if enemy != core.ColorDefault {
		t.Errorf("empty color should resolve to default, got %v", enemy)
	}
}
