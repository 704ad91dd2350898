package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config holds the stackview scene and output settings.
type Config struct {
	// Projection
	FOV  float32 `json:"fov"` // vertical, degrees
	Near float32 `json:"near"`
	Far  float32 `json:"far"`

	// Camera
	Eye    [3]float32 `json:"eye"`
	Center [3]float32 `json:"center"`

	// Scene
	Model      string `json:"model"`   // optional .glb; a cube grid when empty
	Objects    int    `json:"objects"` // instances per row
	Background string `json:"background"`
	Wire       string `json:"wire"`

	// Playback and output
	FPS           int    `json:"fps"`
	Snapshot      string `json:"snapshot"` // .png or .webp path; skips the terminal loop
	SnapshotScale int    `json:"snapshot_scale"`
	Width         int    `json:"width"`  // snapshot framebuffer width
	Height        int    `json:"height"` // snapshot framebuffer height
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Model    string
	FPS      int
	FOV      float32
	Bg       string
	Snapshot string
	Scale    int
}

// Resolve applies flag overrides and fills empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	if flags.Model != "" {
		c.Model = flags.Model
	}
	if flags.FPS > 0 {
		c.FPS = flags.FPS
	}
	if flags.FOV > 0 {
		c.FOV = flags.FOV
	}
	if flags.Bg != "" {
		c.Background = flags.Bg
	}
	if flags.Snapshot != "" {
		c.Snapshot = flags.Snapshot
	}
	if flags.Scale > 0 {
		c.SnapshotScale = flags.Scale
	}

	if c.FOV <= 0 || c.FOV >= 180 {
		c.FOV = 60
	}
	if c.Near <= 0 {
		c.Near = 0.1
	}
	if c.Far <= c.Near {
		c.Far = 100
	}
	if c.Eye == [3]float32{} {
		c.Eye = [3]float32{0, 2, 8}
	}
	if c.Objects <= 0 {
		c.Objects = 3
	}
	if c.Background == "" {
		c.Background = "30,30,40"
	}
	if c.Wire == "" {
		c.Wire = "0,255,128"
	}
	if c.FPS <= 0 {
		c.FPS = 60
	}
	if c.SnapshotScale <= 0 {
		c.SnapshotScale = 4
	}
	if c.Width <= 0 {
		c.Width = 160
	}
	if c.Height <= 0 {
		c.Height = 96
	}
}

// ParseRGB parses an "R,G,B" triple.
func ParseRGB(s string) (r, g, b uint8, err error) {
	var ri, gi, bi int
	if _, err := fmt.Sscanf(s, "%d,%d,%d", &ri, &gi, &bi); err != nil {
		return 0, 0, 0, fmt.Errorf("config: color %q: %w", s, err)
	}
	for _, v := range []int{ri, gi, bi} {
		if v < 0 || v > 255 {
			return 0, 0, 0, fmt.Errorf("config: color %q: component %d out of range", s, v)
		}
	}
	return uint8(ri), uint8(gi), uint8(bi), nil
}
