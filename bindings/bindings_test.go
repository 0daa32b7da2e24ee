package bindings_test

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/padbind/padbind/bindings"
	"github.com/padbind/padbind/button"
	"github.com/padbind/padbind/hostinput"
	th "github.com/padbind/padbind/internal/testing"
	"github.com/padbind/padbind/translate"
)

func discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestDefaultCompiles(t *testing.T) {
	th.InstallFakeClock(t)

	file := bindings.Default()
	sink := &hostinput.LogSink{Logger: discard()}
	mappings, err := file.Compile(sink, discard())
	require.NoError(t, err)
	require.Len(t, mappings, len(file.Bindings))

	// The compiled table passes translator validation as-is.
	_, err = translate.New(mappings, nil)
	assert.NoError(t, err)
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bindings.yaml")
	doc := `
tickInterval: 8ms
deadzone: 0.3
bindings:
  - button: A
    key: Space
    repeat: infinite
    group: 111
    firstRepeatDelay: 500ms
  - button: Start
    key: Enter
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	file, err := bindings.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8*time.Millisecond, file.Tick())
	assert.Equal(t, 0.3, file.Deadzone)
	require.Len(t, file.Bindings, 2)
	assert.Equal(t, "A", file.Bindings[0].Button)
	require.NotNil(t, file.Bindings[0].Group)
	assert.Equal(t, uint32(111), *file.Bindings[0].Group)
}

func TestLoadUnknownExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bindings.ini")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	_, err := bindings.Load(path)
	assert.Error(t, err)
}

func TestEncodeRoundTrip(t *testing.T) {
	file := bindings.Default()
	for _, format := range []string{"json", "yaml", "toml"} {
		data, err := file.Encode(format)
		require.NoError(t, err, format)

		path := filepath.Join(t.TempDir(), "bindings."+format)
		require.NoError(t, os.WriteFile(path, data, 0o644))
		loaded, err := bindings.Load(path)
		require.NoError(t, err, format)
		assert.Len(t, loaded.Bindings, len(file.Bindings), format)
	}
}

func TestCompileErrors(t *testing.T) {
	th.InstallFakeClock(t)
	sink := &hostinput.LogSink{Logger: discard()}

	tests := []struct {
		name    string
		binding bindings.Binding
	}{
		{name: "unknown button", binding: bindings.Binding{Button: "Blorp", Key: "W"}},
		{name: "unknown key", binding: bindings.Binding{Button: "A", Key: "NoSuchKey"}},
		{name: "unknown policy", binding: bindings.Binding{Button: "A", Key: "W", Repeat: "sometimes"}},
		{name: "bad delay", binding: bindings.Binding{Button: "A", Key: "W", RepeatDelay: "fast"}},
		{name: "negative delay", binding: bindings.Binding{Button: "A", Key: "W", RepeatDelay: "-5ms"}},
		{name: "two actions", binding: bindings.Binding{Button: "A", Key: "W", MouseButton: "left"}},
		{name: "bad mouse move", binding: bindings.Binding{Button: "A", MouseMove: []int32{1}}},
		{name: "bad mouse button", binding: bindings.Binding{Button: "A", MouseButton: "side"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file := &bindings.File{Bindings: []bindings.Binding{tt.binding}}
			_, err := file.Compile(sink, discard())
			assert.Error(t, err)
		})
	}
}

// Compiled key bindings drive the sink through a full press cycle.
func TestCompiledBindingDrivesSink(t *testing.T) {
	th.InstallFakeClock(t)

	rec := &recordingSink{}
	file := &bindings.File{Bindings: []bindings.Binding{
		{Button: "A", Key: "Space"},
		{Button: "RightThumbUp", MouseMove: []int32{0, -1}},
		{Button: "TriggerRight", MouseButton: "left"},
	}}
	mappings, err := file.Compile(rec, discard())
	require.NoError(t, err)

	tr, err := translate.New(mappings, nil)
	require.NoError(t, err)

	tr.Translate(button.Snapshot{button.A, button.RightThumbUp, button.TriggerRight}).Fire()
	tr.Translate(button.Snapshot{}).Fire()

	assert.Equal(t, []string{
		"keydown:32", "mousemove:0,-1", "mousedown:0",
		"keyup:32", "mouseup:0",
	}, rec.events)
}

func TestTickDefaults(t *testing.T) {
	assert.Equal(t, bindings.DefaultTickInterval, (&bindings.File{}).Tick())
	assert.Equal(t, bindings.DefaultTickInterval, (&bindings.File{TickInterval: "bogus"}).Tick())
	assert.Equal(t, time.Millisecond, (&bindings.File{TickInterval: "1ms"}).Tick())
}

type recordingSink struct {
	events []string
}

func (r *recordingSink) KeyDown(k hostinput.Key) {
	r.events = append(r.events, "keydown:"+strconv.Itoa(int(k)))
}
func (r *recordingSink) KeyUp(k hostinput.Key) {
	r.events = append(r.events, "keyup:"+strconv.Itoa(int(k)))
}
func (r *recordingSink) MouseMove(dx, dy int32) {
	r.events = append(r.events, fmt.Sprintf("mousemove:%d,%d", dx, dy))
}
func (r *recordingSink) MouseDown(b hostinput.MouseButton) {
	r.events = append(r.events, "mousedown:"+strconv.Itoa(int(b)))
}
func (r *recordingSink) MouseUp(b hostinput.MouseButton) {
	r.events = append(r.events, "mouseup:"+strconv.Itoa(int(b)))
}
