package core

import "time"

// Key represents a logical key, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Key int

const (
	KeyNone        Key = iota
	KeyMoveRight       // Right arrow, L - start running
	KeyCrouch          // Down arrow, S - slide
	KeyJump            // Space, Up, W - jump
	KeyToggleDebug     // Tab - toggle hit-box outlines and frame rate
	keyCount
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyMoveRight:
		return "MoveRight"
	case KeyCrouch:
		return "Crouch"
	case KeyJump:
		return "Jump"
	case KeyToggleDebug:
		return "ToggleDebug"
	default:
		return "Unknown"
	}
}

// KeyState is a per-tick snapshot answering "is logical key K currently held".
// The zero value has no keys held.
type KeyState struct {
	held [keyCount]bool
}

// NewKeyState creates a snapshot with the given keys held.
func NewKeyState(keys ...Key) KeyState {
	var ks KeyState
	for _, k := range keys {
		ks.Set(k)
	}
	return ks
}

// Set marks a key as held.
func (ks *KeyState) Set(k Key) {
	if k <= KeyNone || k >= keyCount {
		return
	}
	ks.held[k] = true
}

// IsPressed returns true if the given key is held in this snapshot.
func (ks KeyState) IsPressed(k Key) bool {
	if k <= KeyNone || k >= keyCount {
		return false
	}
	return ks.held[k]
}

// KeyTracker turns discrete terminal key events into held-key snapshots.
// Terminals only report presses (and auto-repeats), never releases, so a key
// counts as held for a short window after its most recent press.
type KeyTracker struct {
	window   time.Duration
	lastSeen [keyCount]time.Time
}

// NewKeyTracker creates a tracker with the given hold window.
func NewKeyTracker(window time.Duration) *KeyTracker {
	return &KeyTracker{window: window}
}

// Press records a key press at the given time.
func (kt *KeyTracker) Press(k Key, now time.Time) {
	if k <= KeyNone || k >= keyCount {
		return
	}
	kt.lastSeen[k] = now
}

// Snapshot returns the keys considered held at the given time.
func (kt *KeyTracker) Snapshot(now time.Time) KeyState {
	var ks KeyState
	for k := KeyNone + 1; k < keyCount; k++ {
		seen := kt.lastSeen[k]
		if seen.IsZero() {
			continue
		}
		if now.Sub(seen) <= kt.window {
			ks.held[k] = true
		}
	}
	return ks
}

// Reset forgets all recorded presses.
func (kt *KeyTracker) Reset() {
	kt.lastSeen = [keyCount]time.Time{}
}
