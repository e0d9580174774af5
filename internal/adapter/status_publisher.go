package adapter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/zishang520/engine.io-client-go/transports"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io-client-go/socket"
)

// StatusEvent is the socket.io event carrying status lines.
const StatusEvent = "status"

const connectTimeout = 15 * time.Second

// StatusPublisher streams progress lines to whoever watches a run.
type StatusPublisher interface {
	Publish(message string)
	Close()
}

// SocketIOStatusPublisher emits status lines on a socket.io connection.
type SocketIOStatusPublisher struct {
	client  *socket.Socket
	channel string
}

// NewSocketIOStatusPublisher connects to rawURL and waits for the connection
// to be established. Every message is emitted with channel attached.
func NewSocketIOStatusPublisher(ctx context.Context, rawURL, channel string) (*SocketIOStatusPublisher, error) {
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse URL: %w", err)
	}

	if parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, fmt.Errorf("status url %q needs a scheme and a host", rawURL)
	}

	logger := slog.With("url", rawURL, "channel", channel)

	opts := socket.DefaultOptions()
	opts.SetPath(parsedURL.Path)
	opts.SetTransports(types.NewSet(transports.WebSocket))

	connectChan := make(chan error, 1)

	baseURL := fmt.Sprintf("%s://%s", parsedURL.Scheme, parsedURL.Host)
	manager := socket.NewManager(baseURL, opts)
	io := manager.Socket("/", opts)

	io.Once(types.EventName("connect"), func(...any) {
		logger.Debug("Status channel connected", "sid", io.Id())
		connectChan <- nil
	})

	io.Once(types.EventName("connect_error"), func(errs ...any) {
		connectChan <- connectError(errs)
	})

	io.Connect()

	select {
	case err := <-connectChan:
		if err != nil {
			io.Disconnect()
			return nil, fmt.Errorf("socket.io connection failed: %w", err)
		}

		return &SocketIOStatusPublisher{client: io, channel: channel}, nil
	case <-ctx.Done():
		io.Disconnect()
		return nil, fmt.Errorf("waiting for socket.io connection: %w", ctx.Err())
	case <-time.After(connectTimeout):
		io.Disconnect()
		return nil, fmt.Errorf("timed out after %s waiting for socket.io connection", connectTimeout)
	}
}

// Publish emits message on the status channel.
func (p *SocketIOStatusPublisher) Publish(message string) {
	p.client.Emit(StatusEvent, map[string]any{
		"channel": p.channel,
		"message": message,
	})
}

// Close disconnects from the server.
func (p *SocketIOStatusPublisher) Close() {
	slog.Debug("Closing status channel", "sid", p.client.Id())
	p.client.Disconnect()
}

// LogStatusPublisher writes status lines to the log instead of a socket.
type LogStatusPublisher struct {
	channel string
}

// NewLogStatusPublisher constructs a LogStatusPublisher.
func NewLogStatusPublisher(channel string) *LogStatusPublisher {
	return &LogStatusPublisher{channel: channel}
}

// Publish logs message at debug level.
func (p *LogStatusPublisher) Publish(message string) {
	slog.Debug("Status", "channel", p.channel, "message", message)
}

// Close is a no-op.
func (p *LogStatusPublisher) Close() {}

// connectError turns a connect_error payload into an error. The payload may
// be empty.
func connectError(payload []any) error {
	if len(payload) == 0 {
		return errors.New("status channel refused the connection")
	}

	if err, ok := payload[0].(error); ok && err != nil {
		return err
	}

	return fmt.Errorf("status channel refused the connection: %v", payload[0])
}
