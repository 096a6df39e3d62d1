package registry

// Widget identifies one of the fixed panel features that owns a popover. The
// canonical lower-case string form doubles as the wire representation of the
// control protocol and as the registry key.
type Widget int

const (
	Launcher Widget = iota
	Places
	Servers
	Search
	Git
	Secrets
	Sound
	Bluetooth
	Network
	Battery
	Clock
	Power
)

var widgetNames = [...]string{
	Launcher:  "launcher",
	Places:    "places",
	Servers:   "servers",
	Search:    "search",
	Git:       "git",
	Secrets:   "secrets",
	Sound:     "sound",
	Bluetooth: "bluetooth",
	Network:   "network",
	Battery:   "battery",
	Clock:     "clock",
	Power:     "power",
}

// String returns the canonical name used on the wire and in the registry.
func (w Widget) String() string {
	if w < 0 || int(w) >= len(widgetNames) {
		return "unknown"
	}
	return widgetNames[w]
}

// ParseWidget maps a canonical name back to its Widget. Unknown names report
// ok=false; they are a lookup miss, not an error.
func ParseWidget(name string) (Widget, bool) {
	for w, n := range widgetNames {
		if n == name {
			return Widget(w), true
		}
	}
	return 0, false
}

// WidgetNames returns every canonical name in declaration order.
func WidgetNames() []string {
	names := make([]string, len(widgetNames))
	copy(names, widgetNames[:])
	return names
}
