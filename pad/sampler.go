package pad

import (
	"errors"
	"log/slog"
	"math"

	"github.com/Zyko0/go-sdl3/sdl"

	"github.com/padbind/padbind/button"
)

// Config tunes the analog decomposition.
type Config struct {
	// Deadzone is the stick radius, as a fraction of full deflection,
	// below which no direction is reported.
	Deadzone float64
	// TriggerThreshold is the trigger travel fraction above which the
	// trigger reports held.
	TriggerThreshold float64
}

// DefaultConfig mirrors the thresholds the original hardware drivers
// settle on for stock pads.
func DefaultConfig() Config {
	return Config{Deadzone: 0.25, TriggerThreshold: 0.30}
}

const axisScale = 32767.0

var digitalButtons = []struct {
	code sdl.GamepadButton
	b    button.Button
}{
	{sdl.GAMEPAD_BUTTON_WEST, button.X},
	{sdl.GAMEPAD_BUTTON_SOUTH, button.A},
	{sdl.GAMEPAD_BUTTON_EAST, button.B},
	{sdl.GAMEPAD_BUTTON_NORTH, button.Y},
	{sdl.GAMEPAD_BUTTON_LEFT_SHOULDER, button.ShoulderLeft},
	{sdl.GAMEPAD_BUTTON_RIGHT_SHOULDER, button.ShoulderRight},
	{sdl.GAMEPAD_BUTTON_LEFT_STICK, button.LeftStickClick},
	{sdl.GAMEPAD_BUTTON_RIGHT_STICK, button.RightStickClick},
	{sdl.GAMEPAD_BUTTON_START, button.Start},
	{sdl.GAMEPAD_BUTTON_BACK, button.Back},
	{sdl.GAMEPAD_BUTTON_DPAD_UP, button.DpadUp},
	{sdl.GAMEPAD_BUTTON_DPAD_DOWN, button.DpadDown},
	{sdl.GAMEPAD_BUTTON_DPAD_LEFT, button.DpadLeft},
	{sdl.GAMEPAD_BUTTON_DPAD_RIGHT, button.DpadRight},
}

// ErrNoGamepad is returned by NewSampler when no pad is connected.
var ErrNoGamepad = errors.New("no gamepad connected")

// Sampler polls one SDL gamepad and reports the set of virtual
// buttons currently held. It owns no timing: the caller's tick loop
// decides the cadence.
type Sampler struct {
	gamepad *sdl.Gamepad
	cfg     Config
	logger  *slog.Logger
}

// NewSampler opens the first connected gamepad. The caller must have
// initialized SDL's gamepad subsystem.
func NewSampler(cfg Config, logger *slog.Logger) (*Sampler, error) {
	sdl.UpdateGamepads()
	ids, err := sdl.GetGamepads()
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, ErrNoGamepad
	}
	g, err := ids[0].OpenGamepad()
	if err != nil {
		return nil, err
	}
	logger.Info("gamepad opened")
	return &Sampler{gamepad: g, cfg: cfg, logger: logger}, nil
}

// Close releases the gamepad handle.
func (s *Sampler) Close() {
	if s.gamepad != nil {
		s.gamepad.Close()
		s.gamepad = nil
	}
}

// Sample returns the snapshot of buttons currently held: exactly the
// held set, duplicate-free, no edge detection.
func (s *Sampler) Sample() button.Snapshot {
	sdl.UpdateGamepads()

	var snap button.Snapshot
	for _, db := range digitalButtons {
		if s.gamepad.Button(db.code) {
			snap = append(snap, db.b)
		}
	}

	if b := s.stickDirection(LeftStick); b != button.NotSet {
		snap = append(snap, b)
	}
	if b := s.stickDirection(RightStick); b != button.NotSet {
		snap = append(snap, b)
	}

	if s.triggerHeld(sdl.GAMEPAD_AXIS_LEFT_TRIGGER) {
		snap = append(snap, button.TriggerLeft)
	}
	if s.triggerHeld(sdl.GAMEPAD_AXIS_RIGHT_TRIGGER) {
		snap = append(snap, button.TriggerRight)
	}
	return snap
}

func (s *Sampler) stickDirection(stick Stick) button.Button {
	xAxis, yAxis := sdl.GAMEPAD_AXIS_LEFTX, sdl.GAMEPAD_AXIS_LEFTY
	if stick == RightStick {
		xAxis, yAxis = sdl.GAMEPAD_AXIS_RIGHTX, sdl.GAMEPAD_AXIS_RIGHTY
	}
	x := float64(s.gamepad.Axis(xAxis)) / axisScale
	// SDL reports Y positive-down; the polar math expects math
	// convention.
	y := -float64(s.gamepad.Axis(yAxis)) / axisScale

	radius, theta := ComputePolar(x, y)
	if radius < s.cfg.Deadzone {
		return button.NotSet
	}
	return ButtonForDirection(DirectionForTheta(theta), stick)
}

func (s *Sampler) triggerHeld(axis sdl.GamepadAxis) bool {
	v := math.Abs(float64(s.gamepad.Axis(axis))) / axisScale
	return v >= s.cfg.TriggerThreshold
}
