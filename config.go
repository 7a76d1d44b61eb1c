package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rileylov/dockyard/dock"
)

const configPath = "dockyard.yaml"

// Config describes the starting layout: global grid settings plus the
// zones and items seeded onto the canvas. All coordinates are canvas
// units, not terminal cells.
type Config struct {
	GridSize   float64      `yaml:"grid_size"`
	SnapToGrid bool         `yaml:"snap_to_grid"`
	ShowGrid   bool         `yaml:"show_grid"`
	Zones      []ZoneConfig `yaml:"zones"`
	Items      []ItemConfig `yaml:"items"`
}

type ZoneConfig struct {
	ID        string   `yaml:"id"`
	Label     string   `yaml:"label"`
	X         float64  `yaml:"x"`
	Y         float64  `yaml:"y"`
	Width     float64  `yaml:"width"`
	Height    float64  `yaml:"height"`
	MaxItems  int      `yaml:"max_items"`
	Sizes     []string `yaml:"allowed_sizes"`
	Resizable bool     `yaml:"resizable"`
	MinWidth  float64  `yaml:"min_width"`
	MinHeight float64  `yaml:"min_height"`
}

type ItemConfig struct {
	ID    string  `yaml:"id"`
	Label string  `yaml:"label"`
	Size  string  `yaml:"size"`
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
}

func defaultConfig() Config {
	return Config{
		GridSize:   dock.DefaultGridSize,
		SnapToGrid: true,
		Zones: []ZoneConfig{
			{
				ID: "inbox", Label: "Inbox",
				X: 20, Y: 20, Width: 220, Height: 360,
				MaxItems:  3,
				Resizable: true, MinWidth: 160, MinHeight: 200,
			},
			{
				ID: "pinned", Label: "Pinned",
				X: 280, Y: 20, Width: 220, Height: 200,
				MaxItems: 1,
				Sizes:    []string{"small", "medium"},
			},
		},
		Items: []ItemConfig{
			{ID: "notes", Label: "Notes", Size: "medium", X: 540, Y: 40},
			{ID: "tasks", Label: "Tasks", Size: "small", X: 560, Y: 180},
			{ID: "stats", Label: "Stats", Size: "medium", X: 540, Y: 300},
		},
	}
}

// loadConfig reads path over the built-in defaults; a missing file is not
// an error, a malformed one is.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.GridSize <= 0 {
		cfg.GridSize = dock.DefaultGridSize
	}
	return cfg, nil
}

func sizeClasses(names []string) []dock.SizeClass {
	out := make([]dock.SizeClass, 0, len(names))
	for _, n := range names {
		if sc := dock.SizeClass(n); sc.Valid() {
			out = append(out, sc)
		}
	}
	return out
}

// apply seeds the engine with the configured zones and items.
func (c Config) apply(e *dock.Engine) {
	for _, z := range c.Zones {
		e.RegisterDockZone(dock.ZoneDef{
			ID:           z.ID,
			Label:        z.Label,
			MaxItems:     z.MaxItems,
			AllowedSizes: sizeClasses(z.Sizes),
			Resizable:    z.Resizable,
			MinWidth:     z.MinWidth,
			MinHeight:    z.MinHeight,
		})
		e.UpdateDockZoneBounds(z.ID, dock.Rect{X: z.X, Y: z.Y, Width: z.Width, Height: z.Height})
	}
	for _, it := range c.Items {
		sc := dock.SizeClass(it.Size)
		if !sc.Valid() {
			sc = e.GlobalSizeClass()
		}
		e.RegisterItem(dock.Item{
			ID:       it.ID,
			Label:    it.Label,
			Size:     sc,
			Position: dock.Point{X: it.X, Y: it.Y},
		})
	}
	if c.ShowGrid && !e.ShowGrid() {
		e.ToggleShowGrid()
	}
}
