package events

import "github.com/atomicstack/niri-panel/internal/logging"

type StreamTracer struct{}

var Stream = StreamTracer{}

func (StreamTracer) Start(bin string, args []string) {
	logging.Trace("stream.start", map[string]interface{}{"bin": bin, "args": args})
}

func (StreamTracer) Event(kind string) {
	logging.Trace("stream.event", map[string]interface{}{"kind": kind})
}

func (StreamTracer) Drop(detail string) {
	logging.Trace("stream.drop", map[string]interface{}{"detail": detail})
}

func (StreamTracer) Exit(part, reason string) {
	logging.Trace("stream.exit", map[string]interface{}{"part": part, "reason": reason})
}
