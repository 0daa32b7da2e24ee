// Package button defines the closed set of logical controller inputs
// and the snapshot type reported by a snapshot producer.
package button

import "fmt"

// Button identifies one logical controller input surface. The set is
// closed and known at build time; decomposed thumbstick directions and
// triggers are first-class members so a mapping table can bind them
// like any physical button.
type Button int32

const (
	// NotSet is the invalid sentinel. A mapping table containing it is
	// rejected at construction.
	NotSet Button = iota

	X
	A
	B
	Y

	TriggerLeft
	TriggerRight

	ShoulderLeft
	ShoulderRight

	LeftStickClick
	RightStickClick

	Start
	Back

	DpadUp
	DpadDown
	DpadLeft
	DpadRight

	LeftThumbUp
	LeftThumbUpRight
	LeftThumbRight
	LeftThumbDownRight
	LeftThumbDown
	LeftThumbDownLeft
	LeftThumbLeft
	LeftThumbUpLeft

	RightThumbUp
	RightThumbUpRight
	RightThumbRight
	RightThumbDownRight
	RightThumbDown
	RightThumbDownLeft
	RightThumbLeft
	RightThumbUpLeft

	maxButton
)

var names = map[Button]string{
	X:                   "X",
	A:                   "A",
	B:                   "B",
	Y:                   "Y",
	TriggerLeft:         "TriggerLeft",
	TriggerRight:        "TriggerRight",
	ShoulderLeft:        "ShoulderLeft",
	ShoulderRight:       "ShoulderRight",
	LeftStickClick:      "LeftStickClick",
	RightStickClick:     "RightStickClick",
	Start:               "Start",
	Back:                "Back",
	DpadUp:              "DpadUp",
	DpadDown:            "DpadDown",
	DpadLeft:            "DpadLeft",
	DpadRight:           "DpadRight",
	LeftThumbUp:         "LeftThumbUp",
	LeftThumbUpRight:    "LeftThumbUpRight",
	LeftThumbRight:      "LeftThumbRight",
	LeftThumbDownRight:  "LeftThumbDownRight",
	LeftThumbDown:       "LeftThumbDown",
	LeftThumbDownLeft:   "LeftThumbDownLeft",
	LeftThumbLeft:       "LeftThumbLeft",
	LeftThumbUpLeft:     "LeftThumbUpLeft",
	RightThumbUp:        "RightThumbUp",
	RightThumbUpRight:   "RightThumbUpRight",
	RightThumbRight:     "RightThumbRight",
	RightThumbDownRight: "RightThumbDownRight",
	RightThumbDown:      "RightThumbDown",
	RightThumbDownLeft:  "RightThumbDownLeft",
	RightThumbLeft:      "RightThumbLeft",
	RightThumbUpLeft:    "RightThumbUpLeft",
}

var byName = func() map[string]Button {
	m := make(map[string]Button, len(names))
	for b, n := range names {
		m[n] = b
	}
	return m
}()

// Valid reports whether b names a real button (not the sentinel and
// within the closed set).
func (b Button) Valid() bool {
	return b > NotSet && b < maxButton
}

func (b Button) String() string {
	if n, ok := names[b]; ok {
		return n
	}
	return fmt.Sprintf("Button(%d)", int32(b))
}

// Parse resolves a button by its canonical name, as used in bindings
// files and the `buttons` command output.
func Parse(name string) (Button, error) {
	if b, ok := byName[name]; ok {
		return b, nil
	}
	return NotSet, fmt.Errorf("unknown button %q", name)
}

// All returns every valid button in declaration order.
func All() []Button {
	out := make([]Button, 0, int(maxButton)-1)
	for b := NotSet + 1; b < maxButton; b++ {
		out = append(out, b)
	}
	return out
}
