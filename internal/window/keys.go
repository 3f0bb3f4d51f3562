package window

// Key, button and action codes use the GLFW numbering so a platform backed
// by GLFW can convert them with a plain cast.

type Key int

const (
	KeyUnknown      Key = -1
	KeySpace        Key = 32
	KeyA            Key = 65
	KeyD            Key = 68
	KeyS            Key = 83
	KeyW            Key = 87
	KeyEscape       Key = 256
	KeyEnter        Key = 257
	KeyF1           Key = 290
	KeyF2           Key = 291
	KeyF3           Key = 292
	KeyF11          Key = 300
	KeyLeftShift    Key = 340
	KeyLeftControl  Key = 341
	KeyLeftAlt      Key = 342
	KeyLeftSuper    Key = 343
	KeyRightShift   Key = 344
	KeyRightControl Key = 345
	KeyRightAlt     Key = 346
	KeyRightSuper   Key = 347
)

type Action int

const (
	Release Action = 0
	Press   Action = 1
	Repeat  Action = 2
)

type MouseButton int

const (
	MouseButtonLeft   MouseButton = 0
	MouseButtonRight  MouseButton = 1
	MouseButtonMiddle MouseButton = 2
)

type ModifierKey int

const (
	ModShift   ModifierKey = 0x0001
	ModControl ModifierKey = 0x0002
	ModAlt     ModifierKey = 0x0004
	ModSuper   ModifierKey = 0x0008
)
