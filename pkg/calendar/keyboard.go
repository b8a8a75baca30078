package calendar

import "sort"

// Key identifies a physical key, using DOM-style key names.
type Key string

const (
	KeyArrowUp    Key = "ArrowUp"
	KeyArrowDown  Key = "ArrowDown"
	KeyArrowLeft  Key = "ArrowLeft"
	KeyArrowRight Key = "ArrowRight"
	KeyEnter      Key = "Enter"
	KeyControl    Key = "Control"
	KeyShift      Key = "Shift"
)

// IsArrow reports whether k is one of the four arrow keys.
func (k Key) IsArrow() bool {
	switch k {
	case KeyArrowUp, KeyArrowDown, KeyArrowLeft, KeyArrowRight:
		return true
	}
	return false
}

// KeyEventType distinguishes key presses from releases.
type KeyEventType int

const (
	KeyDown KeyEventType = iota
	KeyUp
)

// KeyEvent is a raw key event delivered to a date cell.
type KeyEvent struct {
	Key    Key
	Type   KeyEventType
	Repeat bool
}

// Down is shorthand for a non-repeat keydown of k.
func Down(k Key) KeyEvent { return KeyEvent{Key: k, Type: KeyDown} }

// Up is shorthand for a keyup of k.
func Up(k Key) KeyEvent { return KeyEvent{Key: k, Type: KeyUp} }

// ActionKind is what a key event asks the picker to do.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionMove
	ActionPageBackward
	ActionPageForward
	ActionSelect
)

// Action is the result of translating a key event.
type Action struct {
	Kind ActionKind
	Days int // cursor delta for ActionMove
}

// Keyboard tracks held keys for one picker instance and translates key
// events into actions.
type Keyboard struct {
	held map[Key]struct{}
}

// NewKeyboard returns a keyboard with no keys held.
func NewKeyboard() *Keyboard {
	return &Keyboard{held: make(map[Key]struct{})}
}

// Handle records ev in the held set and returns the action it triggers.
// Auto-repeat events are dropped unless they are arrow keys.
func (k *Keyboard) Handle(ev KeyEvent) (Action, bool) {
	if ev.Repeat && !ev.Key.IsArrow() {
		return Action{}, false
	}
	if ev.Type == KeyUp {
		delete(k.held, ev.Key)
		return Action{}, true
	}
	k.held[ev.Key] = struct{}{}

	switch ev.Key {
	case KeyArrowUp:
		return Action{Kind: ActionMove, Days: -7}, true
	case KeyArrowDown:
		return Action{Kind: ActionMove, Days: 7}, true
	case KeyArrowLeft:
		if k.IsHeld(KeyControl) {
			return Action{Kind: ActionPageBackward}, true
		}
		return Action{Kind: ActionMove, Days: -1}, true
	case KeyArrowRight:
		if k.IsHeld(KeyControl) {
			return Action{Kind: ActionPageForward}, true
		}
		return Action{Kind: ActionMove, Days: 1}, true
	case KeyEnter:
		return Action{Kind: ActionSelect}, true
	}
	return Action{}, true
}

// Press marks k as held without producing an action.
func (k *Keyboard) Press(key Key) { k.held[key] = struct{}{} }

// Release marks k as no longer held.
func (k *Keyboard) Release(key Key) { delete(k.held, key) }

// IsHeld reports whether key is currently held.
func (k *Keyboard) IsHeld(key Key) bool {
	_, ok := k.held[key]
	return ok
}

// Modifiers returns the held modifier keys.
func (k *Keyboard) Modifiers() Modifiers {
	return Modifiers{Ctrl: k.IsHeld(KeyControl), Shift: k.IsHeld(KeyShift)}
}

// Held returns the held keys sorted by name.
func (k *Keyboard) Held() []Key {
	keys := make([]Key, 0, len(k.held))
	for key := range k.held {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Reset releases every held key. Call it when the widget loses focus, since
// the matching keyup events will never arrive.
func (k *Keyboard) Reset() {
	for key := range k.held {
		delete(k.held, key)
	}
}
