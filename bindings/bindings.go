// Package bindings loads and compiles the declarative binding file
// that names a mapping table: which controller button drives which
// host action, with repeat policy, exclusivity group, and delay
// overrides per entry.
package bindings

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml"
	yaml "gopkg.in/yaml.v3"

	"github.com/padbind/padbind/keymap"
)

// Binding is one entry of the bindings file. Exactly one of Key,
// MouseButton, MouseMove selects the host action; Log bindings carry
// none and only report events.
type Binding struct {
	Button string `json:"button" yaml:"button" toml:"button"`

	Key         string   `json:"key,omitempty" yaml:"key,omitempty" toml:"key,omitempty"`
	MouseButton string   `json:"mouseButton,omitempty" yaml:"mouseButton,omitempty" toml:"mouseButton,omitempty"`
	MouseMove   []int32  `json:"mouseMove,omitempty" yaml:"mouseMove,omitempty" toml:"mouseMove,omitempty"`

	Repeat string  `json:"repeat,omitempty" yaml:"repeat,omitempty" toml:"repeat,omitempty"`
	Group  *uint32 `json:"group,omitempty" yaml:"group,omitempty" toml:"group,omitempty"`

	// Durations in time.ParseDuration syntax ("500ms", "1.2ms").
	FirstRepeatDelay string `json:"firstRepeatDelay,omitempty" yaml:"firstRepeatDelay,omitempty" toml:"firstRepeatDelay,omitempty"`
	RepeatDelay      string `json:"repeatDelay,omitempty" yaml:"repeatDelay,omitempty" toml:"repeatDelay,omitempty"`
}

// File is the full bindings document.
type File struct {
	// TickInterval paces the sample/translate/fire loop.
	TickInterval string `json:"tickInterval,omitempty" yaml:"tickInterval,omitempty" toml:"tickInterval,omitempty"`

	Deadzone         float64 `json:"deadzone,omitempty" yaml:"deadzone,omitempty" toml:"deadzone,omitempty"`
	TriggerThreshold float64 `json:"triggerThreshold,omitempty" yaml:"triggerThreshold,omitempty" toml:"triggerThreshold,omitempty"`

	// Overlay, when set, is the listen address for the event stream.
	Overlay string `json:"overlay,omitempty" yaml:"overlay,omitempty" toml:"overlay,omitempty"`

	Bindings []Binding `json:"bindings" yaml:"bindings" toml:"bindings"`
}

// DefaultTickInterval is used when the file does not set one.
const DefaultTickInterval = 4 * time.Millisecond

// Tick returns the parsed tick interval or the default.
func (f *File) Tick() time.Duration {
	if f.TickInterval == "" {
		return DefaultTickInterval
	}
	d, err := time.ParseDuration(f.TickInterval)
	if err != nil || d <= 0 {
		return DefaultTickInterval
	}
	return d
}

// Load reads and parses a bindings file, choosing the codec by file
// extension (.json, .yaml/.yml, .toml).
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f File
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(data, &f)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &f)
	case ".toml":
		err = toml.Unmarshal(data, &f)
	default:
		return nil, fmt.Errorf("unsupported bindings format %q", filepath.Ext(path))
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &f, nil
}

// Encode renders the file in the given format ("json", "yaml",
// "toml"), for template generation.
func (f *File) Encode(format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case "json":
		return json.MarshalIndent(f, "", "  ")
	case "yaml", "yml":
		return yaml.Marshal(f)
	case "toml":
		return toml.Marshal(f)
	}
	return nil, fmt.Errorf("unsupported format %q", format)
}

func parsePolicy(s string) (keymap.RepeatPolicy, error) {
	switch strings.ToLower(s) {
	case "", "none":
		return keymap.RepeatNone, nil
	case "first-only", "firstonly", "first":
		return keymap.RepeatFirstOnly, nil
	case "infinite":
		return keymap.RepeatInfinite, nil
	}
	return keymap.RepeatNone, fmt.Errorf("unknown repeat policy %q", s)
}

func parseDelay(s string) (*time.Duration, error) {
	if s == "" {
		return nil, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return nil, err
	}
	if d < 0 {
		return nil, errors.New("negative delay")
	}
	return &d, nil
}
