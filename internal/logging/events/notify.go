package events

import "github.com/atomicstack/niri-panel/internal/logging"

type NotifyTracer struct{}

var Notify = NotifyTracer{}

func (NotifyTracer) Send(id, summary string, urgency byte) {
	logging.Trace("notify.send", map[string]interface{}{"id": id, "summary": summary, "urgency": urgency})
}
