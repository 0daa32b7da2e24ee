//go:build windows

package hostinput

import (
	"log/slog"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32          = windows.NewLazySystemDLL("user32.dll")
	procSendInput   = user32.NewProc("SendInput")
	procMapVirtualK = user32.NewProc("MapVirtualKeyW")
)

const (
	inputKeyboard = 1
	inputMouse    = 0

	keyeventfKeyup    = 0x0002
	keyeventfScancode = 0x0008

	mouseeventfMove      = 0x0001
	mouseeventfLeftDown  = 0x0002
	mouseeventfLeftUp    = 0x0004
	mouseeventfRightDown = 0x0008
	mouseeventfRightUp   = 0x0010
	mouseeventfMidDown   = 0x0020
	mouseeventfMidUp     = 0x0040

	mapvkVkToVsc = 0
)

// keybdInput mirrors the KEYBDINPUT layout inside a padded INPUT
// union slot.
type input struct {
	typ uint32
	_   uint32 // alignment to the 8-byte union start on amd64
	ki  keybdInput
	pad [8]byte // union sized for MOUSEINPUT
}

type keybdInput struct {
	vk        uint16
	scan      uint16
	flags     uint32
	time      uint32
	extraInfo uintptr
}

type mouseInput struct {
	dx        int32
	dy        int32
	mouseData uint32
	flags     uint32
	time      uint32
	extraInfo uintptr
}

// SendInputSink injects events through user32 SendInput. Keys are sent
// as scan codes so games reading hardware-level input observe them.
type SendInputSink struct {
	Logger *slog.Logger
}

func (s *SendInputSink) sendKey(k Key, flags uint32) {
	scan, _, _ := procMapVirtualK.Call(uintptr(k), mapvkVkToVsc)
	in := input{
		typ: inputKeyboard,
		ki: keybdInput{
			vk:    uint16(k),
			scan:  uint16(scan),
			flags: flags | keyeventfScancode,
		},
	}
	ret, _, err := procSendInput.Call(1, uintptr(unsafe.Pointer(&in)), unsafe.Sizeof(in))
	if ret == 0 {
		s.Logger.Warn("SendInput failed", "vk", uint16(k), "error", err)
	}
}

func (s *SendInputSink) sendMouse(dx, dy int32, flags uint32) {
	in := input{typ: inputMouse}
	mi := (*mouseInput)(unsafe.Pointer(&in.ki))
	mi.dx = dx
	mi.dy = dy
	mi.flags = flags
	ret, _, err := procSendInput.Call(1, uintptr(unsafe.Pointer(&in)), unsafe.Sizeof(in))
	if ret == 0 {
		s.Logger.Warn("SendInput failed", "flags", flags, "error", err)
	}
}

func (s *SendInputSink) KeyDown(k Key) { s.sendKey(k, 0) }
func (s *SendInputSink) KeyUp(k Key)   { s.sendKey(k, keyeventfKeyup) }

func (s *SendInputSink) MouseMove(dx, dy int32) {
	s.sendMouse(dx, dy, mouseeventfMove)
}

func (s *SendInputSink) MouseDown(b MouseButton) {
	switch b {
	case MouseLeft:
		s.sendMouse(0, 0, mouseeventfLeftDown)
	case MouseRight:
		s.sendMouse(0, 0, mouseeventfRightDown)
	case MouseMiddle:
		s.sendMouse(0, 0, mouseeventfMidDown)
	}
}

func (s *SendInputSink) MouseUp(b MouseButton) {
	switch b {
	case MouseLeft:
		s.sendMouse(0, 0, mouseeventfLeftUp)
	case MouseRight:
		s.sendMouse(0, 0, mouseeventfRightUp)
	case MouseMiddle:
		s.sendMouse(0, 0, mouseeventfMidUp)
	}
}

// NewPlatformSink returns the native injector on Windows.
func NewPlatformSink(logger *slog.Logger) Sink {
	return &SendInputSink{Logger: logger}
}
