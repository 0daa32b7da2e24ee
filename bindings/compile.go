package bindings

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/padbind/padbind/button"
	"github.com/padbind/padbind/hostinput"
	"github.com/padbind/padbind/keymap"
)

// Compile turns the bindings document into a mapping table whose
// callbacks drive the sink. Every fired transition is also logged at
// debug level, which keeps the loop observable without a sink that
// injects.
func (f *File) Compile(sink hostinput.Sink, logger *slog.Logger) ([]keymap.Mapping, error) {
	mappings := make([]keymap.Mapping, 0, len(f.Bindings))
	for i := range f.Bindings {
		m, err := f.Bindings[i].compile(sink, logger)
		if err != nil {
			return nil, fmt.Errorf("binding %d (%s): %w", i, f.Bindings[i].Button, err)
		}
		mappings = append(mappings, m)
	}
	return mappings, nil
}

func (b *Binding) compile(sink hostinput.Sink, logger *slog.Logger) (keymap.Mapping, error) {
	var zero keymap.Mapping

	vb, err := button.Parse(b.Button)
	if err != nil {
		return zero, err
	}
	policy, err := parsePolicy(b.Repeat)
	if err != nil {
		return zero, err
	}
	firstDelay, err := parseDelay(b.FirstRepeatDelay)
	if err != nil {
		return zero, fmt.Errorf("firstRepeatDelay: %w", err)
	}
	repeatDelay, err := parseDelay(b.RepeatDelay)
	if err != nil {
		return zero, fmt.Errorf("repeatDelay: %w", err)
	}

	onDown, onUp, onRepeat, err := b.actions(sink)
	if err != nil {
		return zero, err
	}

	m := keymap.Mapping{
		Button:           vb,
		Repeat:           policy,
		OnDown:           withEventLog(logger, vb, "down", onDown),
		OnUp:             withEventLog(logger, vb, "up", onUp),
		OnRepeat:         withEventLog(logger, vb, "repeat", onRepeat),
		OnReset:          withEventLog(logger, vb, "reset", nil),
		FirstRepeatDelay: firstDelay,
		RepeatDelay:      repeatDelay,
		State:            keymap.NewStateTracker(),
	}
	if b.Group != nil {
		g := keymap.ExclusivityGroup(*b.Group)
		m.Group = &g
	}
	return m, nil
}

// actions resolves the host-side effect of the binding. At most one
// action kind may be set; a binding with none is log-only.
func (b *Binding) actions(sink hostinput.Sink) (onDown, onUp, onRepeat func(), err error) {
	kinds := 0
	if b.Key != "" {
		kinds++
	}
	if b.MouseButton != "" {
		kinds++
	}
	if len(b.MouseMove) != 0 {
		kinds++
	}
	if kinds > 1 {
		return nil, nil, nil, fmt.Errorf("binding sets %d actions, want at most one", kinds)
	}

	switch {
	case b.Key != "":
		k, ok := hostinput.ParseKey(b.Key)
		if !ok {
			return nil, nil, nil, fmt.Errorf("unknown key %q", b.Key)
		}
		// Repeats re-press the key, matching host typematic behavior.
		return func() { sink.KeyDown(k) },
			func() { sink.KeyUp(k) },
			func() { sink.KeyDown(k) },
			nil

	case b.MouseButton != "":
		mb, err := parseMouseButton(b.MouseButton)
		if err != nil {
			return nil, nil, nil, err
		}
		return func() { sink.MouseDown(mb) },
			func() { sink.MouseUp(mb) },
			nil,
			nil

	case len(b.MouseMove) != 0:
		if len(b.MouseMove) != 2 {
			return nil, nil, nil, fmt.Errorf("mouseMove wants [dx, dy], got %d values", len(b.MouseMove))
		}
		dx, dy := b.MouseMove[0], b.MouseMove[1]
		move := func() { sink.MouseMove(dx, dy) }
		return move, nil, move, nil
	}

	// Log-only binding.
	return nil, nil, nil, nil
}

func parseMouseButton(s string) (hostinput.MouseButton, error) {
	switch strings.ToLower(s) {
	case "left":
		return hostinput.MouseLeft, nil
	case "right":
		return hostinput.MouseRight, nil
	case "middle":
		return hostinput.MouseMiddle, nil
	}
	return hostinput.MouseLeft, fmt.Errorf("unknown mouse button %q", s)
}

func withEventLog(logger *slog.Logger, b button.Button, event string, action func()) func() {
	return func() {
		if action != nil {
			action()
		}
		logger.Debug("event", "button", b.String(), "kind", event)
	}
}
