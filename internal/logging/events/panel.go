package events

import "github.com/atomicstack/niri-panel/internal/logging"

type PanelTracer struct{}

var Panel = PanelTracer{}

func (PanelTracer) Build(widgets []string) {
	logging.Trace("panel.build", map[string]interface{}{"widgets": widgets})
}

func (PanelTracer) Register(name string) {
	logging.Trace("panel.register", map[string]interface{}{"name": name})
}

func (PanelTracer) KeyboardMode(mode string, active int) {
	logging.Trace("panel.keyboard_mode", map[string]interface{}{"mode": mode, "active": active})
}

func (PanelTracer) Urgent(kind string, id uint64, title string) {
	logging.Trace("panel.urgent", map[string]interface{}{"kind": kind, "id": id, "title": title})
}
