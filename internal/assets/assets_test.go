package assets

import (
	"fmt"
	"testing"
)

func TestLoad(t *testing.T) {
	b, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if b.PlayerImage == nil || b.Stone == nil || b.Background == nil || b.Tiles == nil {
		t.Fatal("Load() left an image unresolved")
	}
	if b.Stone.Height != 54 {
		t.Errorf("stone height = %d, expected 54", b.Stone.Height)
	}
	if b.JumpSound.Name != JumpSound || b.Music.Name != BackgroundMusic {
		t.Errorf("sounds = %+v / %+v", b.JumpSound, b.Music)
	}

	for n := 1; n <= 16; n++ {
		name := fmt.Sprintf("%d.png", n)
		if _, err := b.Tiles.Cell(name); err != nil {
			t.Errorf("tile %s: %v", name, err)
		}
	}

	// Floating platform tiles are shorter than the filled blocks
	cell, err := b.Tiles.Cell("14.png")
	if err != nil {
		t.Fatal(err)
	}
	if cell.Frame.H != 93 {
		t.Errorf("14.png height = %d, expected 93", cell.Frame.H)
	}
}

func TestPlayerSheetCoversAnimations(t *testing.T) {
	b, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	// Highest frame index per animation is frames/3 + 1
	last := map[string]int{"Idle": 10, "Run": 8, "Slide": 5, "Jump": 12, "Dead": 10}
	for anim, n := range last {
		for i := 1; i <= n; i++ {
			name := fmt.Sprintf("%s (%d).png", anim, i)
			if _, err := b.PlayerSheet.Cell(name); err != nil {
				t.Errorf("%s: %v", name, err)
			}
		}
	}
}

func TestNewImageValidation(t *testing.T) {
	if _, err := newImage("bad.png", imageSpec{Width: 0, Height: 5}); err == nil {
		t.Error("zero width should fail")
	}
	if _, err := newImage("bad.png", imageSpec{Width: 5, Height: 5, Color: "plaid"}); err == nil {
		t.Error("unknown color should fail")
	}

	img, err := newImage("ok.png", imageSpec{Width: 5, Height: 6, Fill: "▒", Color: "gray"})
	if err != nil {
		t.Fatalf("newImage() failed: %v", err)
	}
	if img.Fill != '▒' {
		t.Errorf("fill = %q", img.Fill)
	}
}
