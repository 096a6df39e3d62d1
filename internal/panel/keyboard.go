package panel

import "github.com/atomicstack/niri-panel/internal/logging/events"

// KeyboardMode mirrors the layer-shell keyboard interactivity modes the bar
// can request.
type KeyboardMode string

const (
	KeyboardNone     KeyboardMode = "none"
	KeyboardOnDemand KeyboardMode = "on-demand"
)

// KeyboardManager counts visible popovers and derives the keyboard mode:
// the bar holds the keyboard while at least one popover is open. UI context
// only.
type KeyboardManager struct {
	active   int
	mode     KeyboardMode
	onChange func(KeyboardMode)
}

func NewKeyboardManager(onChange func(KeyboardMode)) *KeyboardManager {
	return &KeyboardManager{mode: KeyboardNone, onChange: onChange}
}

// Mode returns the current keyboard mode.
func (m *KeyboardManager) Mode() KeyboardMode {
	return m.mode
}

// Active returns how many popovers are visible.
func (m *KeyboardManager) Active() int {
	return m.active
}

// PopoverShown records a popover opening.
func (m *KeyboardManager) PopoverShown() {
	m.active++
	if m.active == 1 {
		m.set(KeyboardOnDemand)
	}
}

// PopoverHidden records a popover closing.
func (m *KeyboardManager) PopoverHidden() {
	if m.active == 0 {
		return
	}
	m.active--
	if m.active == 0 {
		m.set(KeyboardNone)
	}
}

func (m *KeyboardManager) set(mode KeyboardMode) {
	m.mode = mode
	events.Panel.KeyboardMode(string(mode), m.active)
	if m.onChange != nil {
		m.onChange(mode)
	}
}
