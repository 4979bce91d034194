package viewer

import "fmt"

// KeyKind classifies a decoded key event.
type KeyKind uint8

const (
	KeyOther KeyKind = iota
	KeyChar
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyQuit
	KeyHalfPageUp
	KeyHalfPageDown
	// KeyResize carries a new terminal size through the key stream.
	KeyResize
)

// Key is a backend-independent key event.
type Key struct {
	Kind KeyKind
	// Rune is set for KeyChar.
	Rune rune
	// Ctrl reports whether Rune is a control character.
	Ctrl bool
	// Name is the canonical key name the event was decoded from.
	Name string
	// Size is set for KeyResize.
	Size Size
}

// ResizeKey builds the event a backend emits when the terminal changes size.
func ResizeKey(width, height int) Key {
	return Key{Kind: KeyResize, Name: "resize", Size: Size{Width: width, Height: height}}
}

func (k Key) String() string {
	switch k.Kind {
	case KeyChar:
		if k.Ctrl {
			return fmt.Sprintf("%d", k.Rune)
		}
		return fmt.Sprintf("%d (%c)", k.Rune, k.Rune)
	case KeyResize:
		return fmt.Sprintf("resize %dx%d", k.Size.Width, k.Size.Height)
	default:
		if k.Name == "" {
			return "unknown"
		}
		return k.Name
	}
}
