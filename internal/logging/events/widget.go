package events

import "github.com/atomicstack/niri-panel/internal/logging"

type WidgetTracer struct{}

var Widget = WidgetTracer{}

func (WidgetTracer) Shown(name string) {
	logging.Trace("widget.shown", map[string]interface{}{"name": name})
}

func (WidgetTracer) Hidden(name string) {
	logging.Trace("widget.hidden", map[string]interface{}{"name": name})
}

func (WidgetTracer) Action(name, action string) {
	logging.Trace("widget.action", map[string]interface{}{"name": name, "action": action})
}
