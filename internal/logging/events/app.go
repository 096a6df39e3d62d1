package events

import "github.com/atomicstack/niri-panel/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) ConfigLoaded(path string) {
	logging.Trace("app.config.loaded", map[string]interface{}{"path": path})
}

func (AppTracer) ConfigReloaded(path string) {
	logging.Trace("app.config.reloaded", map[string]interface{}{"path": path})
}

func (AppTracer) Shutdown(reason string) {
	logging.Trace("app.shutdown", map[string]interface{}{"reason": reason})
}
