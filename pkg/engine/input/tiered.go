package input

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceMouse
	DeviceTerminal
)

// Action represents a high‑level intent in the game.
type Action int

const (
	ActionNone Action = iota
	ActionInvalid // Recognised nothing, or a command with bad arguments

	// Board
	ActionSelect
	ActionPlace
	ActionRemove

	// Session
	ActionHint
	ActionSubmit
	ActionReset
	ActionBack
	ActionShare

	// Meta / UI
	ActionHelp
	ActionQuit
)

// Intent is the 4th‑layer, high‑level description of what the player wants to do.
// Slot is 0-based; Key is a journey key or a 1-based position in the journey list.
type Intent struct {
	Action Action
	Key    string
	Item   int
	Slot   int
}

// RawInput is the 1st‑layer event emitted directly from an input device.
// Code is a device‑specific identifier (a typed command line, "KeyH", ...).
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the 2nd‑layer representation after debouncing/deduplication.
// Commands are turn based and each RawInput is already a complete event, but
// the distinct type keeps the layering explicit.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   strings.TrimSpace(raw.Code),
	}
}

// bindings maps command words and key codes to actions (3rd-layer bindings).
// Multiple codes may point to the same Action.
var bindings = map[string]Action{
	// Board
	"select": ActionSelect,
	"play":   ActionSelect,
	"place":  ActionPlace,
	"p":      ActionPlace,
	"put":    ActionPlace,
	"remove": ActionRemove,
	"rm":     ActionRemove,
	"x":      ActionRemove,

	// Session
	"hint":   ActionHint,
	"?":      ActionHint,
	"submit": ActionSubmit,
	"s":      ActionSubmit,
	"enter":  ActionSubmit,
	"reset":  ActionReset,
	"r":      ActionReset,
	"f5":     ActionReset,
	"back":   ActionBack,
	"b":      ActionBack,
	"escape": ActionBack,
	"share":  ActionShare,

	// Help
	"help": ActionHelp,
	"h":    ActionHelp,

	// Quit
	"quit": ActionQuit,
	"q":    ActionQuit,
	"exit": ActionQuit,
}

// argCount is how many arguments each action takes.
var argCount = map[Action]int{
	ActionSelect: 1,
	ActionPlace:  2,
	ActionRemove: 1,
}

// MapToIntent is the 3rd+4th layer: it applies the bindings to a debounced
// input and returns a high‑level Intent. Slot numbers are typed 1-based and
// come out 0-based. A bare number selects that journey.
func MapToIntent(ev DebouncedInput) Intent {
	fields := strings.Fields(strings.ToLower(ev.Code))
	if len(fields) == 0 {
		return Intent{Action: ActionNone}
	}

	if len(fields) == 1 {
		if _, err := strconv.Atoi(fields[0]); err == nil {
			return Intent{Action: ActionSelect, Key: fields[0]}
		}
	}

	act, ok := bindings[fields[0]]
	if !ok {
		return Intent{Action: ActionInvalid}
	}
	args := fields[1:]
	if len(args) != argCount[act] {
		return Intent{Action: ActionInvalid}
	}

	switch act {
	case ActionSelect:
		// Keys are matched case-insensitively later; keep the original spelling.
		orig := strings.Fields(ev.Code)
		return Intent{Action: act, Key: orig[1]}
	case ActionPlace:
		item, err1 := strconv.Atoi(args[0])
		slot, err2 := strconv.Atoi(args[1])
		if err1 != nil || err2 != nil || slot < 1 {
			return Intent{Action: ActionInvalid}
		}
		return Intent{Action: act, Item: item, Slot: slot - 1}
	case ActionRemove:
		item, err := strconv.Atoi(args[0])
		if err != nil {
			return Intent{Action: ActionInvalid}
		}
		return Intent{Action: act, Item: item}
	}
	return Intent{Action: act}
}

// Parse runs a typed command line through every layer.
func Parse(line string) Intent {
	return MapToIntent(NewDebouncedInput(RawInput{
		Device:    DeviceTerminal,
		Code:      line,
		Timestamp: time.Now(),
	}))
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionSelect:
		return "Select"
	case ActionPlace:
		return "Place"
	case ActionRemove:
		return "Remove"
	case ActionHint:
		return "Hint"
	case ActionSubmit:
		return "Submit"
	case ActionReset:
		return "Reset"
	case ActionBack:
		return "Back"
	case ActionShare:
		return "Share"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	case ActionInvalid:
		return "Invalid"
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
	// Ensure stable ordering of codes within each action so UI doesn't flicker.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}
