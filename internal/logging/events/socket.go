package events

import "github.com/atomicstack/niri-panel/internal/logging"

type SocketTracer struct{}

type socketDropReason string

const (
	SocketDropEmpty   socketDropReason = "empty"
	SocketDropUnknown socketDropReason = "unknown-verb"
	SocketDropNoArg   socketDropReason = "missing-argument"
)

var Socket = SocketTracer{}

func (SocketTracer) Listen(path string) {
	logging.Trace("socket.listen", map[string]interface{}{"path": path})
}

func (SocketTracer) Accept(conn string) {
	logging.Trace("socket.accept", map[string]interface{}{"conn": conn})
}

func (SocketTracer) Command(conn, command string) {
	logging.Trace("socket.command", map[string]interface{}{"conn": conn, "command": command})
}

func (SocketTracer) Dispatch(verb, argument string, found bool) {
	logging.Trace("socket.dispatch", map[string]interface{}{"verb": verb, "argument": argument, "found": found})
}

func (SocketTracer) Drop(command string, reason socketDropReason) {
	logging.Trace("socket.drop", map[string]interface{}{"command": command, "reason": string(reason)})
}

func (SocketTracer) List(names []string) {
	logging.Trace("socket.list", map[string]interface{}{"names": names})
}
