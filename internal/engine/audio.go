package engine

// Sound is an opaque handle to decoded audio.
type Sound struct {
	Name string
}

// Audio plays sounds. Implementations must not block the caller.
type Audio interface {
	PlaySound(s Sound) error
	PlayLooping(s Sound) error
}

// SilentAudio discards every sound.
type SilentAudio struct{}

// PlaySound implements Audio.
func (SilentAudio) PlaySound(Sound) error { return nil }

// PlayLooping implements Audio.
func (SilentAudio) PlayLooping(Sound) error { return nil }
