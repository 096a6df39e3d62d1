package ipc

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"net"
	"strings"
)

// Client is the synchronous side of the control protocol: one command line
// out, one response line back. There is no retry and no timeout; callers
// needing resilience wrap it themselves.
type Client struct {
	// Path overrides the derived socket location when set.
	Path string
}

// SendCommand connects to the control socket, writes the command terminated
// by a newline, and returns the trimmed single-line response.
func (c Client) SendCommand(command string) (string, error) {
	path := SocketPath(c.Path)
	conn, err := net.Dial("unix", path)
	if err != nil {
		return "", fmt.Errorf("connect control socket %s: %w", path, err)
	}
	defer conn.Close()

	if _, err := fmt.Fprintf(conn, "%s\n", command); err != nil {
		return "", fmt.Errorf("send control command: %w", err)
	}

	response, err := bufio.NewReader(conn).ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || response == "") {
		return "", fmt.Errorf("read control response: %w", err)
	}
	return strings.TrimSpace(response), nil
}
