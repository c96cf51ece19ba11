// Package assets resolves the runner's sprite sheets, images and sounds.
// Everything is embedded in the binary and fully loaded before the tick
// loop starts.
package assets

import (
	"embed"
	"fmt"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-walk/internal/core"
	"github.com/vovakirdan/tui-walk/internal/engine"
)

//go:embed rhb.json tiles.json catalog.yaml
var files embed.FS

// Asset names used by the runner.
const (
	PlayerSheetFile = "rhb.json"
	PlayerImage     = "rhb.png"
	TileSheetFile   = "tiles.json"
	TileImage       = "tiles.png"
	StoneImage      = "Stone.png"
	BackgroundImage = "BG.png"
	JumpSound       = "SFX_Jump_23.mp3"
	BackgroundMusic = "background_song.mp3"
)

type imageSpec struct {
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	Fill    string `yaml:"fill"`
	Color   string `yaml:"color"`
	Stipple int    `yaml:"stipple"`
}

type catalog struct {
	Images map[string]imageSpec `yaml:"images"`
	Sounds []string             `yaml:"sounds"`
}

// Bundle holds every resolved asset. Handles are shared and read-only.
type Bundle struct {
	PlayerSheet engine.Sheet
	PlayerImage *engine.Image
	Tiles       *engine.SpriteSheet
	Stone       *engine.Image
	Background  *engine.Image
	JumpSound   engine.Sound
	Music       engine.Sound
}

// Load parses the embedded catalog and sprite sheets.
func Load() (*Bundle, error) {
	raw, err := files.ReadFile("catalog.yaml")
	if err != nil {
		return nil, fmt.Errorf("assets: cannot read catalog: %w", err)
	}
	var cat catalog
	if err := yaml.Unmarshal(raw, &cat); err != nil {
		return nil, fmt.Errorf("assets: cannot parse catalog: %w", err)
	}

	images := make(map[string]*engine.Image, len(cat.Images))
	for name, spec := range cat.Images {
		img, err := newImage(name, spec)
		if err != nil {
			return nil, err
		}
		images[name] = img
	}
	sounds := make(map[string]engine.Sound, len(cat.Sounds))
	for _, name := range cat.Sounds {
		sounds[name] = engine.Sound{Name: name}
	}

	b := &Bundle{}
	if b.PlayerSheet, err = loadSheet(PlayerSheetFile); err != nil {
		return nil, err
	}
	tileSheet, err := loadSheet(TileSheetFile)
	if err != nil {
		return nil, err
	}

	lookups := []struct {
		name string
		dst  **engine.Image
	}{
		{PlayerImage, &b.PlayerImage},
		{StoneImage, &b.Stone},
		{BackgroundImage, &b.Background},
	}
	for _, l := range lookups {
		img, ok := images[l.name]
		if !ok {
			return nil, fmt.Errorf("assets: image %q missing from catalog", l.name)
		}
		*l.dst = img
	}
	tilesImage, ok := images[TileImage]
	if !ok {
		return nil, fmt.Errorf("assets: image %q missing from catalog", TileImage)
	}
	b.Tiles = engine.NewSpriteSheet(tileSheet, tilesImage)

	if b.JumpSound, ok = sounds[JumpSound]; !ok {
		return nil, fmt.Errorf("assets: sound %q missing from catalog", JumpSound)
	}
	if b.Music, ok = sounds[BackgroundMusic]; !ok {
		return nil, fmt.Errorf("assets: sound %q missing from catalog", BackgroundMusic)
	}

	return b, nil
}

func loadSheet(file string) (engine.Sheet, error) {
	data, err := files.ReadFile(file)
	if err != nil {
		return engine.Sheet{}, fmt.Errorf("assets: cannot read %s: %w", file, err)
	}
	sheet, err := engine.ParseSheet(data)
	if err != nil {
		return engine.Sheet{}, fmt.Errorf("assets: %s: %w", file, err)
	}
	return sheet, nil
}

func newImage(name string, spec imageSpec) (*engine.Image, error) {
	if spec.Width <= 0 || spec.Height <= 0 {
		return nil, fmt.Errorf("assets: image %q has invalid size %dx%d", name, spec.Width, spec.Height)
	}
	fill, _ := utf8.DecodeRuneInString(spec.Fill)
	if fill == utf8.RuneError {
		fill = '#'
	}
	color := core.ColorDefault
	if spec.Color != "" {
		c, ok := core.ParseColor(spec.Color)
		if !ok {
			return nil, fmt.Errorf("assets: image %q has unknown color %q", name, spec.Color)
		}
		color = c
	}
	return &engine.Image{
		Name:    name,
		Width:   spec.Width,
		Height:  spec.Height,
		Fill:    fill,
		Color:   color,
		Stipple: spec.Stipple,
	}, nil
}
