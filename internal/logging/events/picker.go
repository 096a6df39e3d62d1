package events

import "github.com/atomicstack/niri-panel/internal/logging"

type PickerTracer struct{}

var Picker = PickerTracer{}

func (PickerTracer) Open(widgets int) {
	logging.Trace("picker.open", map[string]interface{}{"widgets": widgets})
}

func (PickerTracer) Filter(query string, matches int) {
	logging.Trace("picker.filter", map[string]interface{}{"query": query, "matches": matches})
}

func (PickerTracer) Send(command string) {
	logging.Trace("picker.send", map[string]interface{}{"command": command})
}

func (PickerTracer) Result(command, response string) {
	logging.Trace("picker.result", map[string]interface{}{"command": command, "response": response})
}

func (PickerTracer) Error(command string, err error) {
	if err == nil {
		return
	}
	logging.Trace("picker.error", map[string]interface{}{"command": command, "error": err.Error()})
}
