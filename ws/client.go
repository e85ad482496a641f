// Package ws implements the node's WebSocket subscription protocol: a
// topic-keyed callback registry over a single reconnecting connection, with
// optional per-message acknowledgments.
package ws

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/rs/zerolog"
)

const (
	defaultAckTimeout        = 10 * time.Second
	defaultReconnectInterval = 3 * time.Second
	handshakeTimeout         = 10 * time.Second

	// maxPendingAcks bounds the pending-ack table; waiters evicted by
	// capacity or TTL resolve with ErrAckTimeout instead of leaking.
	maxPendingAcks = 1024
)

var (
	// ErrAlreadyConnected is returned by Connect when the receive loop is
	// already running.
	ErrAlreadyConnected = errors.New("ws: already connected")

	// ErrNotConnected is returned when sending before Connect or after
	// Close.
	ErrNotConnected = errors.New("ws: not connected")

	// ErrAckTimeout is returned when the node does not acknowledge a
	// control message within the configured ack timeout.
	ErrAckTimeout = errors.New("ws: acknowledgment timed out")

	// ErrClosed is returned for operations on a closed client.
	ErrClosed = errors.New("ws: client closed")
)

// Handler consumes parsed events for one topic. The concrete payload type
// per topic is documented on parsePayload; the typed Subscribe variants
// (SubscribeConfirmation and friends) avoid the assertion.
type Handler func(payload any)

// ErrorSink receives failures from handler panics and malformed payloads.
// Delivery continues regardless of what the sink does.
type ErrorSink func(topic Topic, err error)

// SubscribeOptions tunes a single Subscribe or Update call.
type SubscribeOptions struct {
	// Ack blocks the call until the node acknowledges the control message.
	Ack bool
	// Async runs the handler in its own goroutine per event, so a slow
	// handler cannot delay delivery to other handlers.
	Async bool
	// Options is the topic filter object forwarded to the node, e.g.
	// {"accounts": [...]} for confirmation subscriptions.
	Options map[string]any
}

type registration struct {
	fn    Handler
	async bool
}

// Client is a subscription session with one node. A Client owns exactly one
// live connection; the registry and pending acknowledgments survive
// reconnects. All methods are safe for concurrent use.
type Client struct {
	url    string
	dialer *websocket.Dialer
	header http.Header
	logger zerolog.Logger
	sink   ErrorSink

	reconnectInterval time.Duration

	conn    *websocket.Conn
	connMu  sync.RWMutex
	writeMu sync.Mutex
	started bool

	handlers   map[Topic][]registration
	subOptions map[Topic]map[string]any
	handlerMu  sync.Mutex

	pending *expirable.LRU[string, chan error]

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithLogger sets the logger; the default discards everything.
func WithLogger(l zerolog.Logger) ClientOption {
	return func(c *Client) { c.logger = l }
}

// WithDialer replaces the websocket dialer.
func WithDialer(d *websocket.Dialer) ClientOption {
	return func(c *Client) { c.dialer = d }
}

// WithHeader sets extra headers sent with the connection handshake.
func WithHeader(h http.Header) ClientOption {
	return func(c *Client) { c.header = h }
}

// WithReconnectInterval sets the delay between reconnection attempts.
func WithReconnectInterval(d time.Duration) ClientOption {
	return func(c *Client) { c.reconnectInterval = d }
}

// WithErrorSink routes handler and payload failures to sink instead of the
// logger.
func WithErrorSink(sink ErrorSink) ClientOption {
	return func(c *Client) { c.sink = sink }
}

// WithAckTimeout bounds how long a Send with ack waits for the node.
func WithAckTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.pending = newPendingTable(d)
	}
}

// New creates a Client for the node WebSocket endpoint at url, e.g.
// "ws://localhost:7078". Call Connect before subscribing.
func New(url string, opts ...ClientOption) *Client {
	ctx, cancel := context.WithCancel(context.Background())
	c := &Client{
		url:               url,
		dialer:            &websocket.Dialer{HandshakeTimeout: handshakeTimeout},
		logger:            zerolog.Nop(),
		reconnectInterval: defaultReconnectInterval,
		handlers:          make(map[Topic][]registration),
		subOptions:        make(map[Topic]map[string]any),
		ctx:               ctx,
		cancel:            cancel,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.pending == nil {
		c.pending = newPendingTable(defaultAckTimeout)
	}
	if c.sink == nil {
		c.sink = func(topic Topic, err error) {
			c.logger.Warn().Str("topic", string(topic)).Err(err).Msg("event handler error")
		}
	}
	return c
}

// newPendingTable builds the bounded ack-waiter table. Eviction, whether by
// TTL or capacity, unblocks the waiter with ErrAckTimeout.
func newPendingTable(ttl time.Duration) *expirable.LRU[string, chan error] {
	onEvict := func(id string, waiter chan error) {
		select {
		case waiter <- ErrAckTimeout:
		default:
		}
	}
	return expirable.NewLRU[string, chan error](maxPendingAcks, onEvict, ttl)
}

// Connect dials the node and starts the receive loop. It must be called
// exactly once; a second call reports ErrAlreadyConnected.
func (c *Client) Connect(ctx context.Context) error {
	c.connMu.Lock()
	if c.started {
		c.connMu.Unlock()
		return ErrAlreadyConnected
	}
	c.started = true
	c.connMu.Unlock()

	conn, _, err := c.dialer.DialContext(ctx, c.url, c.header)
	if err != nil {
		c.connMu.Lock()
		c.started = false
		c.connMu.Unlock()
		return fmt.Errorf("failed to connect: %w", err)
	}

	c.connMu.Lock()
	c.conn = conn
	c.connMu.Unlock()

	c.logger.Info().Str("url", c.url).Msg("websocket connected")
	c.wg.Add(1)
	go c.readLoop()
	return nil
}

// Connected reports whether a live connection exists right now.
func (c *Client) Connected() bool {
	c.connMu.RLock()
	defer c.connMu.RUnlock()
	return c.conn != nil
}

// Close stops the receive loop and closes the connection. Registered
// handlers receive no further events.
func (c *Client) Close() {
	c.cancel()
	c.connMu.Lock()
	if c.conn != nil {
		c.conn.Close()
		c.conn = nil
	}
	c.connMu.Unlock()
	c.wg.Wait()
	c.logger.Info().Str("url", c.url).Msg("websocket closed")
}

// Subscribe sends a subscribe control message for topic and registers
// handler. Handlers accumulate: subscribing twice to the same topic invokes
// both, in registration order. opts may be nil.
func (c *Client) Subscribe(ctx context.Context, topic Topic, handler Handler, opts *SubscribeOptions) error {
	var o SubscribeOptions
	if opts != nil {
		o = *opts
	}

	msg := map[string]any{
		"action": "subscribe",
		"topic":  topic,
	}
	if len(o.Options) > 0 {
		msg["options"] = o.Options
	}
	if err := c.Send(ctx, msg, o.Ack); err != nil {
		return err
	}

	c.handlerMu.Lock()
	c.handlers[topic] = append(c.handlers[topic], registration{fn: handler, async: o.Async})
	c.subOptions[topic] = o.Options
	c.handlerMu.Unlock()

	c.logger.Debug().Str("topic", string(topic)).Bool("ack", o.Ack).Msg("subscribed")
	return nil
}

// Update sends an update control message changing the filter options of an
// existing subscription. The registry is untouched.
func (c *Client) Update(ctx context.Context, topic Topic, opts *SubscribeOptions) error {
	var o SubscribeOptions
	if opts != nil {
		o = *opts
	}

	msg := map[string]any{
		"action": "update",
		"topic":  topic,
	}
	if len(o.Options) > 0 {
		msg["options"] = o.Options
	}
	return c.Send(ctx, msg, o.Ack)
}

// Unsubscribe sends an unsubscribe control message and drops every handler
// registered for topic.
func (c *Client) Unsubscribe(ctx context.Context, topic Topic) error {
	msg := map[string]any{
		"action": "unsubscribe",
		"topic":  topic,
	}
	if err := c.Send(ctx, msg, false); err != nil {
		return err
	}

	c.handlerMu.Lock()
	delete(c.handlers, topic)
	delete(c.subOptions, topic)
	c.handlerMu.Unlock()

	c.logger.Debug().Str("topic", string(topic)).Msg("unsubscribed")
	return nil
}

// Send transmits one control message. With ack set, the message is stamped
// with "ack":true and a fresh correlation id, and Send blocks until the
// node echoes that id, ctx is done, or the ack timeout expires.
func (c *Client) Send(ctx context.Context, msg map[string]any, ack bool) error {
	if !ack {
		return c.write(msg)
	}

	id := uuid.NewString()
	stamped := make(map[string]any, len(msg)+2)
	for k, v := range msg {
		stamped[k] = v
	}
	stamped["ack"] = true
	stamped["id"] = id

	waiter := make(chan error, 1)
	c.pending.Add(id, waiter)

	if err := c.write(stamped); err != nil {
		c.pending.Remove(id)
		return err
	}

	select {
	case err := <-waiter:
		return err
	case <-ctx.Done():
		c.pending.Remove(id)
		return ctx.Err()
	case <-c.ctx.Done():
		return ErrClosed
	}
}

func (c *Client) write(msg map[string]any) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	c.connMu.RLock()
	conn := c.conn
	c.connMu.RUnlock()
	if conn == nil {
		return ErrNotConnected
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return conn.WriteMessage(websocket.TextMessage, data)
}

// frame is the inbound wire shape. Event frames carry topic and message;
// ack frames carry a non-empty ack marker plus the correlation id.
type frame struct {
	Topic   Topic           `json:"topic"`
	Time    string          `json:"time"`
	Message json.RawMessage `json:"message"`
	Ack     json.RawMessage `json:"ack"`
	ID      string          `json:"id"`
}

// readLoop is the single receive loop: one message at a time, in arrival
// order, for the lifetime of the client. Transport errors trigger the
// reconnect loop; nothing else stops it short of Close.
func (c *Client) readLoop() {
	defer c.wg.Done()

	for {
		select {
		case <-c.ctx.Done():
			return
		default:
		}

		c.connMu.RLock()
		conn := c.conn
		c.connMu.RUnlock()
		if conn == nil {
			return
		}

		_, data, err := conn.ReadMessage()
		if err != nil {
			select {
			case <-c.ctx.Done():
				return
			default:
			}
			c.logger.Warn().Err(err).Msg("websocket connection lost, reconnecting")
			if !c.reconnect() {
				return
			}
			continue
		}

		c.dispatch(data)
	}
}

// reconnect redials until it succeeds or the client is closed, then
// re-issues subscribe messages for every registered topic so the node
// resumes pushing events. Returns false only on shutdown.
func (c *Client) reconnect() bool {
	c.connMu.Lock()
	if c.conn != nil {
		c.conn.Close()
		c.conn = nil
	}
	c.connMu.Unlock()

	for {
		select {
		case <-c.ctx.Done():
			return false
		case <-time.After(c.reconnectInterval):
		}

		dialCtx, cancel := context.WithTimeout(c.ctx, handshakeTimeout)
		conn, _, err := c.dialer.DialContext(dialCtx, c.url, c.header)
		cancel()
		if err != nil {
			c.logger.Warn().Err(err).Dur("retryIn", c.reconnectInterval).Msg("reconnect failed")
			continue
		}

		c.connMu.Lock()
		c.conn = conn
		c.connMu.Unlock()
		c.logger.Info().Str("url", c.url).Msg("websocket reconnected")

		c.resubscribe()
		return true
	}
}

func (c *Client) resubscribe() {
	c.handlerMu.Lock()
	topics := make(map[Topic]map[string]any, len(c.subOptions))
	for topic, options := range c.subOptions {
		topics[topic] = options
	}
	c.handlerMu.Unlock()

	for topic, options := range topics {
		msg := map[string]any{
			"action": "subscribe",
			"topic":  topic,
		}
		if len(options) > 0 {
			msg["options"] = options
		}
		if err := c.write(msg); err != nil {
			c.logger.Warn().Str("topic", string(topic)).Err(err).Msg("failed to re-subscribe")
			continue
		}
		c.logger.Debug().Str("topic", string(topic)).Msg("re-subscribed")
	}
}

// dispatch decodes one inbound frame and routes it: acks resolve their
// waiter, events are parsed once and fanned out to the topic's handlers in
// registration order. A bad frame is logged and dropped; it never stops the
// loop.
func (c *Client) dispatch(data []byte) {
	var f frame
	if err := json.Unmarshal(data, &f); err != nil {
		c.logger.Warn().Err(err).Int("len", len(data)).Msg("message parse error")
		return
	}

	if len(f.Ack) > 0 {
		c.resolveAck(f.ID)
		return
	}

	c.handlerMu.Lock()
	regs := make([]registration, len(c.handlers[f.Topic]))
	copy(regs, c.handlers[f.Topic])
	c.handlerMu.Unlock()

	if len(regs) == 0 {
		return
	}

	payload, err := parsePayload(f.Topic, f.Message)
	if err != nil {
		c.logger.Warn().Str("topic", string(f.Topic)).Err(err).Msg("payload parse error")
		c.sink(f.Topic, err)
		return
	}

	for _, reg := range regs {
		if reg.async {
			go c.invoke(f.Topic, reg.fn, payload)
		} else {
			c.invoke(f.Topic, reg.fn, payload)
		}
	}
}

// invoke runs one handler, containing panics so a misbehaving callback
// cannot take down the receive loop.
func (c *Client) invoke(topic Topic, fn Handler, payload any) {
	defer func() {
		if r := recover(); r != nil {
			c.sink(topic, fmt.Errorf("handler panic: %v", r))
		}
	}()
	fn(payload)
}

// resolveAck unblocks the Send waiting on id. Acks with no matching waiter
// are dropped.
func (c *Client) resolveAck(id string) {
	waiter, ok := c.pending.Get(id)
	if !ok {
		c.logger.Debug().Str("id", id).Msg("unmatched ack")
		return
	}
	select {
	case waiter <- nil:
	default:
	}
	c.pending.Remove(id)
}
