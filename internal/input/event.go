package input

import "fmt"

// Kind discriminates raw input events
type Kind uint8

const (
	KindKeyDown Kind = iota + 1
	KindKeyUp
	KindMouseDown
)

func (k Kind) String() string {
	switch k {
	case KindKeyDown:
		return "key_down"
	case KindKeyUp:
		return "key_up"
	case KindMouseDown:
		return "mouse_down"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Button identifies a mouse button
type Button uint8

const (
	ButtonNone Button = iota
	ButtonLeft
	ButtonRight
	ButtonMiddle
)

func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonRight:
		return "right"
	case ButtonMiddle:
		return "middle"
	default:
		return "none"
	}
}

// Event is one raw key or mouse event as delivered by a capture layer
type Event struct {
	Kind   Kind
	Char   rune
	Button Button
}

func KeyDown(r rune) Event {
	return Event{Kind: KindKeyDown, Char: r}
}

func KeyUp(r rune) Event {
	return Event{Kind: KindKeyUp, Char: r}
}

func MouseDown(b Button) Event {
	return Event{Kind: KindMouseDown, Button: b}
}

func (e Event) IsKey() bool {
	return e.Kind == KindKeyDown || e.Kind == KindKeyUp
}

func (e Event) String() string {
	if e.Kind == KindMouseDown {
		return fmt.Sprintf("%s(%s)", e.Kind, e.Button)
	}
	return fmt.Sprintf("%s(%q)", e.Kind, e.Char)
}
