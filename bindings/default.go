package bindings

func groupRef(g uint32) *uint32 { return &g }

// Default returns the built-in demo table: face buttons in one
// exclusivity group, left stick as WASD movement in another, right
// stick as mouse look with fast repeats, triggers as mouse buttons.
func Default() *File {
	const (
		faceGroup  = 111
		moveGroup  = 101
		mouseGroup = 102
	)
	return &File{
		TickInterval:     "4ms",
		Deadzone:         0.25,
		TriggerThreshold: 0.30,
		Bindings: []Binding{
			{Button: "A", Key: "Space", Repeat: "infinite", Group: groupRef(faceGroup), FirstRepeatDelay: "500ms"},
			{Button: "B", Key: "E", Repeat: "first-only", Group: groupRef(faceGroup), FirstRepeatDelay: "2s"},
			{Button: "X", Key: "Q", Repeat: "first-only", Group: groupRef(faceGroup), FirstRepeatDelay: "2s"},
			{Button: "Y", Key: "Tab", Repeat: "first-only", Group: groupRef(faceGroup), FirstRepeatDelay: "2s"},

			{Button: "LeftThumbUp", Key: "W", Repeat: "infinite", Group: groupRef(moveGroup)},
			{Button: "LeftThumbDown", Key: "S", Repeat: "infinite", Group: groupRef(moveGroup)},
			{Button: "LeftThumbLeft", Key: "A", Repeat: "infinite", Group: groupRef(moveGroup)},
			{Button: "LeftThumbRight", Key: "D", Repeat: "infinite", Group: groupRef(moveGroup)},

			{Button: "RightThumbUp", MouseMove: []int32{0, -1}, Repeat: "infinite", Group: groupRef(mouseGroup), FirstRepeatDelay: "0s", RepeatDelay: "1200us"},
			{Button: "RightThumbDown", MouseMove: []int32{0, 1}, Repeat: "infinite", Group: groupRef(mouseGroup), FirstRepeatDelay: "0s", RepeatDelay: "1200us"},
			{Button: "RightThumbLeft", MouseMove: []int32{-1, 0}, Repeat: "infinite", Group: groupRef(mouseGroup), FirstRepeatDelay: "0s", RepeatDelay: "1200us"},
			{Button: "RightThumbRight", MouseMove: []int32{1, 0}, Repeat: "infinite", Group: groupRef(mouseGroup), FirstRepeatDelay: "0s", RepeatDelay: "1200us"},

			{Button: "TriggerRight", MouseButton: "left", FirstRepeatDelay: "1ns", RepeatDelay: "1ns"},
			{Button: "TriggerLeft", MouseButton: "right", FirstRepeatDelay: "1ns", RepeatDelay: "1ns"},

			{Button: "Start", Key: "Enter"},
			{Button: "Back", Key: "Escape"},
			{Button: "ShoulderRight"},
			{Button: "ShoulderLeft"},
		},
	}
}
