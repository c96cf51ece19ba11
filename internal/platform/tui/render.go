package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-walk/internal/core"
	"github.com/vovakirdan/tui-walk/internal/engine"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// Colors used for things that are not images.
const (
	outlineColor = core.ColorBrightRed
	textColor    = core.ColorBrightWhite
)

// ScreenRenderer implements engine.Renderer on a character screen. The whole
// world rectangle is scaled onto the screen, so one cell covers many world
// units and every drawn rectangle covers at least one cell.
type ScreenRenderer struct {
	screen *core.Screen
	worldW int
	worldH int
}

var _ engine.Renderer = (*ScreenRenderer)(nil)

// NewScreenRenderer creates a renderer mapping a worldW x worldH world onto screen.
func NewScreenRenderer(screen *core.Screen, worldW, worldH int) *ScreenRenderer {
	return &ScreenRenderer{
		screen: screen,
		worldW: max(worldW, 1),
		worldH: max(worldH, 1),
	}
}

// Screen returns the screen being drawn into.
func (r *ScreenRenderer) Screen() *core.Screen {
	return r.screen
}

// Project converts a world rectangle to the screen cells it covers.
func (r *ScreenRenderer) Project(rect core.Rect) core.Rect {
	cols, rows := r.screen.Width(), r.screen.Height()
	x0 := floorDiv(rect.X*cols, r.worldW)
	y0 := floorDiv(rect.Y*rows, r.worldH)
	x1 := ceilDiv(rect.Right()*cols, r.worldW)
	y1 := ceilDiv(rect.Bottom()*rows, r.worldH)
	if rect.W > 0 && x1 <= x0 {
		x1 = x0 + 1
	}
	if rect.H > 0 && y1 <= y0 {
		y1 = y0 + 1
	}
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// ProjectPoint converts a world point to the cell containing it.
func (r *ScreenRenderer) ProjectPoint(p core.Point) (x, y int) {
	return floorDiv(p.X*r.screen.Width(), r.worldW), floorDiv(p.Y*r.screen.Height(), r.worldH)
}

// Clear implements engine.Renderer.
func (r *ScreenRenderer) Clear(rect core.Rect) {
	r.screen.DrawRect(r.Project(rect), ' ', core.ColorDefault)
}

// DrawImage implements engine.Renderer. The source region only selects which
// part of the image is shown, so the whole destination gets the image's fill.
func (r *ScreenRenderer) DrawImage(img *engine.Image, _, dst core.Rect) {
	r.paint(img, r.Project(dst))
}

// DrawEntireImage implements engine.Renderer.
func (r *ScreenRenderer) DrawEntireImage(img *engine.Image, pos core.Point) {
	r.paint(img, r.Project(core.RectAt(pos, img.Width, img.Height)))
}

// DrawOutline implements engine.Renderer.
func (r *ScreenRenderer) DrawOutline(rect core.Rect) {
	r.screen.DrawBox(r.Project(rect), outlineColor)
}

// DrawText implements engine.Renderer. The baseline falls on the row
// containing pos.
func (r *ScreenRenderer) DrawText(text string, pos core.Point) error {
	x, y := r.ProjectPoint(pos)
	if y < 0 || y >= r.screen.Height() || x >= r.screen.Width() {
		return fmt.Errorf("tui: text %q at %v is off screen", text, pos)
	}
	r.screen.DrawText(x, y, text, textColor)
	return nil
}

func (r *ScreenRenderer) paint(img *engine.Image, cells core.Rect) {
	x0, x1 := max(cells.Left(), 0), min(cells.Right(), r.screen.Width())
	y0, y1 := max(cells.Top(), 0), min(cells.Bottom(), r.screen.Height())
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if img.Stipple > 1 && (x+y)%img.Stipple != 0 {
				continue
			}
			r.screen.SetColored(x, y, img.Fill, img.Color)
		}
	}
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func ceilDiv(a, b int) int {
	return -floorDiv(-a, b)
}
