package core

import "strings"

// Key is a platform-independent key identifier. Frontends translate their own
// key events into Keys; only the four steering keys have meaning to the game.
type Key int

const (
	KeyNone Key = iota
	KeyW
	KeyA
	KeyS
	KeyD
)

// String returns the lower-case key name.
func (k Key) String() string {
	switch k {
	case KeyW:
		return "w"
	case KeyA:
		return "a"
	case KeyS:
		return "s"
	case KeyD:
		return "d"
	default:
		return "none"
	}
}

// ParseKey maps a key name to a Key. Unknown names map to KeyNone.
func ParseKey(s string) Key {
	switch strings.ToLower(s) {
	case "w":
		return KeyW
	case "a":
		return KeyA
	case "s":
		return KeyS
	case "d":
		return KeyD
	default:
		return KeyNone
	}
}

// EventKind is one of the three event classes the loop dispatches.
type EventKind int

const (
	EventRender EventKind = iota
	EventUpdate
	EventInput
)

func (k EventKind) String() string {
	switch k {
	case EventRender:
		return "render"
	case EventUpdate:
		return "update"
	case EventInput:
		return "input"
	default:
		return "unknown"
	}
}

// Event is delivered by a frontend to the game loop.
// Key is only meaningful for EventInput.
type Event struct {
	Kind EventKind
	Key  Key
}

// RenderEvent, UpdateEvent and InputEvent build events of each kind.
func RenderEvent() Event { return Event{Kind: EventRender} }

func UpdateEvent() Event { return Event{Kind: EventUpdate} }

func InputEvent(k Key) Event { return Event{Kind: EventInput, Key: k} }

// KeyPress is a recorded input: the key and the number of updates that had
// run when it arrived.
type KeyPress struct {
	Tick uint64 `json:"t"`
	Key  Key    `json:"k"`
}
