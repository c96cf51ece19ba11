package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-walk/internal/core"
	"github.com/vovakirdan/tui-walk/internal/engine"
)

func newTestRenderer(cols, rows int) *ScreenRenderer {
	return NewScreenRenderer(core.NewScreen(cols, rows), 600, 600)
}

func TestProject(t *testing.T) {
	r := newTestRenderer(60, 60)

	tests := []struct {
		name     string
		in       core.Rect
		expected core.Rect
	}{
		{"aligned", core.NewRect(10, 10, 100, 100), core.NewRect(1, 1, 10, 10)},
		{"partial cells round outward", core.NewRect(15, 25, 10, 10), core.NewRect(1, 2, 2, 2)},
		{"tiny rect covers one cell", core.NewRect(0, 0, 5, 5), core.NewRect(0, 0, 1, 1)},
		{"negative x floors", core.NewRect(-50, 0, 100, 10), core.NewRect(-5, 0, 10, 1)},
		{"empty rect stays empty", core.NewRect(100, 100, 0, 0), core.NewRect(10, 10, 0, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Project(tc.in); got != tc.expected {
				t.Errorf("Project(%+v) = %+v, expected %+v", tc.in, got, tc.expected)
			}
		})
	}
}

func TestProjectScalesAxesIndependently(t *testing.T) {
	r := newTestRenderer(120, 30)

	got := r.Project(core.NewRect(0, 0, 600, 600))
	if got != core.NewRect(0, 0, 120, 30) {
		t.Errorf("world projects to %+v", got)
	}
	if x, y := r.ProjectPoint(core.Point{X: 300, Y: 300}); x != 60 || y != 15 {
		t.Errorf("ProjectPoint(center) = (%d, %d)", x, y)
	}
}

func TestDrawEntireImage(t *testing.T) {
	r := newTestRenderer(60, 60)
	img := &engine.Image{Name: "stone", Width: 90, Height: 54, Fill: '▒', Color: core.ColorGray}

	r.DrawEntireImage(img, core.Point{X: 100, Y: 546})

	s := r.Screen()
	cell := s.GetCell(10, 55)
	if cell.Rune != '▒' || cell.Color != core.ColorGray {
		t.Errorf("top-left cell = %+v", cell)
	}
	if s.Get(9, 55) != ' ' {
		t.Error("image painted left of its box")
	}
	if s.Get(18, 59) != '▒' {
		t.Error("bottom-right cell not painted")
	}
	if s.Get(19, 59) != ' ' {
		t.Error("image painted right of its box")
	}
}

func TestDrawImageClipsOffScreen(t *testing.T) {
	r := newTestRenderer(10, 10)
	img := &engine.Image{Name: "tiles", Width: 512, Height: 512, Fill: '▓'}

	// Must not panic for boxes hanging off every edge
	r.DrawImage(img, core.NewRect(0, 0, 128, 128), core.NewRect(-300, -300, 1200, 1200))

	for y := 0; y < 10; y++ {
		if row := r.Screen().Row(y); row != strings.Repeat("▓", 10) {
			t.Fatalf("row %d = %q", y, row)
		}
	}
}

func TestStipple(t *testing.T) {
	r := newTestRenderer(6, 6)
	img := &engine.Image{Name: "bg", Width: 600, Height: 600, Fill: '·', Stipple: 3}

	r.DrawEntireImage(img, core.Point{})

	painted := 0
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			if r.Screen().Get(x, y) == '·' {
				painted++
				if (x+y)%3 != 0 {
					t.Errorf("cell (%d, %d) painted off the stipple grid", x, y)
				}
			}
		}
	}
	if painted != 12 {
		t.Errorf("painted %d cells, expected 12", painted)
	}
}

func TestOutlineAndClear(t *testing.T) {
	r := newTestRenderer(60, 60)

	r.DrawOutline(core.NewRect(100, 100, 100, 100))
	s := r.Screen()
	if s.Get(10, 10) != '┌' || s.Get(19, 19) != '┘' {
		t.Fatalf("outline corners = %q %q", s.Get(10, 10), s.Get(19, 19))
	}
	if s.GetCell(10, 10).Color != outlineColor {
		t.Error("outline drawn in the wrong color")
	}

	r.Clear(core.NewRect(0, 0, 600, 600))
	if s.Get(10, 10) != ' ' {
		t.Error("Clear left the outline behind")
	}
}

func TestDrawText(t *testing.T) {
	r := newTestRenderer(60, 60)

	if err := r.DrawText("Frame Rate 60", core.Point{X: 400, Y: 100}); err != nil {
		t.Fatalf("DrawText() failed: %v", err)
	}
	if row := r.Screen().Row(10); !strings.Contains(row, "Frame Rate 60") {
		t.Errorf("row 10 = %q", row)
	}

	if err := r.DrawText("lost", core.Point{X: 0, Y: 700}); err == nil {
		t.Error("DrawText() below the screen should fail")
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(5, 2)
	s.SetColored(0, 0, 'A', core.ColorRed)
	s.SetColored(1, 0, 'B', core.ColorRed)
	s.SetColored(0, 1, 'C', core.ColorDefault)

	out := RenderScreen(s)
	if !strings.Contains(out, "AB") || !strings.Contains(out, "C") {
		t.Errorf("RenderScreen() = %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("RenderScreen() has %d newlines, expected 1", strings.Count(out, "\n"))
	}
}
