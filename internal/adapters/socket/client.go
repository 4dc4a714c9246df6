package socket

import (
	"bufio"
	"encoding/json"
	"fmt"
	"net"
	"time"

	"github.com/felix-ide/felix/internal/protocol"
)

const dialTimeout = 2 * time.Second

// Client connects to the extraction daemon over a Unix socket.
type Client struct {
	sockPath string
}

// NewClient creates a client that will connect to the given socket path.
func NewClient(sockPath string) *Client {
	return &Client{sockPath: sockPath}
}

// Ping reports whether a daemon is accepting connections on the socket.
func (c *Client) Ping() bool {
	conn, err := net.DialTimeout("unix", c.sockPath, dialTimeout)
	if err != nil {
		return false
	}
	conn.Close()
	return true
}

// Shutdown asks the daemon to terminate.
func (c *Client) Shutdown() error {
	resp, err := c.Call(protocol.Request{Command: protocol.CmdShutdown})
	if err != nil {
		return err
	}
	if !resp.Success {
		return fmt.Errorf("shutdown refused: %s", resp.Message)
	}
	return nil
}

// Call sends one request and reads one response over a fresh connection.
func (c *Client) Call(req protocol.Request) (*protocol.Response, error) {
	conn, err := net.DialTimeout("unix", c.sockPath, dialTimeout)
	if err != nil {
		return nil, fmt.Errorf("dial daemon: %w", err)
	}
	defer conn.Close()

	data, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	data = append(data, '\n')
	if _, err := conn.Write(data); err != nil {
		return nil, fmt.Errorf("write request: %w", err)
	}

	reader := bufio.NewReader(conn)
	line, err := reader.ReadBytes('\n')
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	var resp protocol.Response
	if err := json.Unmarshal(line, &resp); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}
	return &resp, nil
}
