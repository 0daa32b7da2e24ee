// Package hostinput synthesizes keyboard and mouse input on the host.
// The Windows implementation injects through user32 SendInput; other
// platforms log the would-be events, which keeps the demo driver
// observable everywhere.
package hostinput

import "log/slog"

// Key is a host virtual-key code (Windows VK_* values; the names below
// cover the set the default bindings use).
type Key uint16

const (
	KeyW      Key = 0x57
	KeyA      Key = 0x41
	KeyS      Key = 0x53
	KeyD      Key = 0x44
	KeyE      Key = 0x45
	KeyQ      Key = 0x51
	KeySpace  Key = 0x20
	KeyEnter  Key = 0x0D
	KeyEscape Key = 0x1B
	KeyShift  Key = 0x10
	KeyCtrl   Key = 0x11
	KeyTab    Key = 0x09
)

var keyNames = map[string]Key{
	"W": KeyW, "A": KeyA, "S": KeyS, "D": KeyD, "E": KeyE, "Q": KeyQ,
	"Space": KeySpace, "Enter": KeyEnter, "Escape": KeyEscape,
	"Shift": KeyShift, "Ctrl": KeyCtrl, "Tab": KeyTab,
}

// ParseKey resolves a key by the name used in bindings files. Unknown
// names return false.
func ParseKey(name string) (Key, bool) {
	k, ok := keyNames[name]
	return k, ok
}

// MouseButton selects a host mouse button.
type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
)

// Sink receives the host-side effects of translated action events.
// Implementations must be cheap relative to the tick period; they run
// inside batch firing.
type Sink interface {
	KeyDown(k Key)
	KeyUp(k Key)
	MouseMove(dx, dy int32)
	MouseDown(b MouseButton)
	MouseUp(b MouseButton)
}

// LogSink reports every event through slog instead of injecting it.
// Used as the non-Windows implementation and for the run command's
// dry-run mode.
type LogSink struct {
	Logger *slog.Logger
}

func (s *LogSink) KeyDown(k Key)           { s.Logger.Info("key down", "vk", uint16(k)) }
func (s *LogSink) KeyUp(k Key)             { s.Logger.Info("key up", "vk", uint16(k)) }
func (s *LogSink) MouseMove(dx, dy int32)  { s.Logger.Debug("mouse move", "dx", dx, "dy", dy) }
func (s *LogSink) MouseDown(b MouseButton) { s.Logger.Info("mouse down", "button", int(b)) }
func (s *LogSink) MouseUp(b MouseButton)   { s.Logger.Info("mouse up", "button", int(b)) }
