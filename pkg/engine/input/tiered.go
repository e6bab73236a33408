package input

import (
	"sort"
	"time"

	"treasurehunt/pkg/engine/world"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceTerminal
)

// Action represents a high‑level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Movement
	ActionMoveNorth
	ActionMoveSouth
	ActionMoveWest
	ActionMoveEast

	// Hints
	ActionHintBFS
	ActionHintAStar

	ActionQuit
)

// Intent is the high‑level description of what the player wants to do.
// Dir is only meaningful for movement actions.
type Intent struct {
	Action Action
	Dir    world.Direction
}

// IsMove reports whether the intent moves the player
func (i Intent) IsMove() bool {
	switch i.Action {
	case ActionMoveNorth, ActionMoveSouth, ActionMoveWest, ActionMoveEast:
		return true
	}
	return false
}

// RawInput is the event emitted directly from an input device.
// Code is a device‑specific identifier (e.g. "w", "arrow_up", "1").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the representation after debouncing/deduplication.
// Terminal raw mode and Ebiten's just-pressed query already deliver one
// event per press, so this is a plain copy.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   raw.Code,
	}
}

// bindings maps raw codes to actions.
// Multiple codes may point to the same Action.
var bindings = map[string]Action{
	// Movement (arrows, WASD)
	"arrow_up":    ActionMoveNorth,
	"w":           ActionMoveNorth,
	"arrow_down":  ActionMoveSouth,
	"s":           ActionMoveSouth,
	"arrow_left":  ActionMoveWest,
	"a":           ActionMoveWest,
	"arrow_right": ActionMoveEast,
	"d":           ActionMoveEast,

	// Hints
	"1": ActionHintBFS,
	"2": ActionHintAStar,

	// Quit
	"q":      ActionQuit,
	"escape": ActionQuit,
	"ctrl_c": ActionQuit,
}

var moveDirections = map[Action]world.Direction{
	ActionMoveNorth: world.North,
	ActionMoveSouth: world.South,
	ActionMoveWest:  world.West,
	ActionMoveEast:  world.East,
}

// MapToIntent applies the current bindings to a debounced input and returns
// a high‑level Intent.
func MapToIntent(ev DebouncedInput) Intent {
	act, ok := bindings[ev.Code]
	if !ok {
		return Intent{Action: ActionNone}
	}
	return Intent{Action: act, Dir: moveDirections[act]}
}

// IntentFor is shorthand for mapping a single key code
func IntentFor(code string) Intent {
	return MapToIntent(DebouncedInput{Device: DeviceKeyboard, Code: code})
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionMoveNorth:
		return "Move North"
	case ActionMoveSouth:
		return "Move South"
	case ActionMoveWest:
		return "Move West"
	case ActionMoveEast:
		return "Move East"
	case ActionHintBFS:
		return "BFS Hint"
	case ActionHintAStar:
		return "A* Hint"
	case ActionQuit:
		return "Quit"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Stable ordering of codes within each action.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}
