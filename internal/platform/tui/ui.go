package tui

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-walk/internal/core"
	"github.com/vovakirdan/tui-walk/internal/engine"
)

// ErrOverlayShown is returned when the new game overlay is already up.
var ErrOverlayShown = errors.New("tui: new game overlay already shown")

// OverlayUI implements engine.UI as a box drawn over the game screen.
// It is driven from a single Bubble Tea update loop.
type OverlayUI struct {
	clicks chan struct{}
}

var _ engine.UI = (*OverlayUI)(nil)

// NewOverlayUI creates a hidden overlay.
func NewOverlayUI() *OverlayUI {
	return &OverlayUI{}
}

// ShowNewGame implements engine.UI.
func (u *OverlayUI) ShowNewGame() (<-chan struct{}, error) {
	if u.clicks != nil {
		return nil, ErrOverlayShown
	}
	u.clicks = make(chan struct{}, 1)
	return u.clicks, nil
}

// Hide implements engine.UI.
func (u *OverlayUI) Hide() error {
	u.clicks = nil
	return nil
}

// Visible reports whether the overlay is shown.
func (u *OverlayUI) Visible() bool {
	return u.clicks != nil
}

// Click presses the overlay's button. It reports false when there is
// nothing to press.
func (u *OverlayUI) Click() bool {
	if u.clicks == nil {
		return false
	}
	select {
	case u.clicks <- struct{}{}:
	default:
		// already pressed, the session has not picked it up yet
	}
	return true
}

// Draw paints the overlay centered on the screen when it is visible.
func (u *OverlayUI) Draw(s *core.Screen, hint string) {
	if !u.Visible() {
		return
	}
	const label = "New Game"
	w := max(len(label), len(hint)) + 4
	h := 4
	box := core.NewRect((s.Width()-w)/2, (s.Height()-h)/2, w, h)
	s.DrawRect(box, ' ', core.ColorDefault)
	s.DrawBox(box, core.ColorBrightYellow)
	s.DrawTextCentered(box.Y+1, label, core.ColorBrightWhite)
	s.DrawTextCentered(box.Y+2, hint, core.ColorGray)
}

// BellAudio implements engine.Audio with the terminal bell. Music has no
// terminal rendition and is only logged.
type BellAudio struct {
	out io.Writer
}

var _ engine.Audio = BellAudio{}

// NewBellAudio rings the bell on out. A nil out only logs.
func NewBellAudio(out io.Writer) BellAudio {
	return BellAudio{out: out}
}

// PlaySound implements engine.Audio.
func (a BellAudio) PlaySound(s engine.Sound) error {
	log.Debug("sound", "name", s.Name)
	if a.out == nil {
		return nil
	}
	_, err := io.WriteString(a.out, "\a")
	return err
}

// PlayLooping implements engine.Audio.
func (a BellAudio) PlayLooping(s engine.Sound) error {
	log.Debug("music", "name", s.Name)
	return nil
}
