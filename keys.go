package imgview

// Key identifies a key the viewer understands. Keys the viewer has no
// binding for arrive as KeyOther and are only logged.
type Key uint8

// Keys with bindings.
const (
	KeyOther Key = iota
	KeyH
	KeyV
	KeyR
	KeyL
	KeyI
	KeyQ
	KeyEscape
)

var keyNames = [...]string{
	KeyOther:  "Other",
	KeyH:      "H",
	KeyV:      "V",
	KeyR:      "R",
	KeyL:      "L",
	KeyI:      "I",
	KeyQ:      "Q",
	KeyEscape: "Escape",
}

// String returns the key name.
func (k Key) String() string {
	if int(k) < len(keyNames) {
		return keyNames[k]
	}
	return "Unknown"
}

// Command is what a key press asks the viewer to do.
type Command uint8

// Commands.
const (
	CommandNone Command = iota
	CommandFlipHorizontal
	CommandFlipVertical
	CommandRotate180
	CommandReload
	CommandToggleInfo
	CommandQuit
)

var commandNames = [...]string{
	CommandNone:           "none",
	CommandFlipHorizontal: "flip-horizontal",
	CommandFlipVertical:   "flip-vertical",
	CommandRotate180:      "rotate-180",
	CommandReload:         "reload",
	CommandToggleInfo:     "toggle-info",
	CommandQuit:           "quit",
}

func (c Command) String() string {
	if int(c) < len(commandNames) {
		return commandNames[c]
	}
	return "unknown"
}

// Keymap binds keys to commands.
type Keymap map[Key]Command

// DefaultKeymap returns the standard bindings.
func DefaultKeymap() Keymap {
	return Keymap{
		KeyH:      CommandFlipHorizontal,
		KeyV:      CommandFlipVertical,
		KeyR:      CommandRotate180,
		KeyL:      CommandReload,
		KeyI:      CommandToggleInfo,
		KeyQ:      CommandQuit,
		KeyEscape: CommandQuit,
	}
}

// Action tells the event loop what to do after a key was handled.
type Action struct {
	Redraw bool
	Quit   bool
	// Err is set when the command failed; the displayed image is unchanged.
	Err error
}
