package ws

import "context"

// The typed Subscribe variants below pin each topic to its payload type, so
// callers get a concrete argument instead of asserting on any. Events whose
// payload does not match are ignored rather than passed on.

func typed[T any](fn func(*T)) Handler {
	return func(payload any) {
		if v, ok := payload.(*T); ok {
			fn(v)
		}
	}
}

// SubscribeConfirmation subscribes to block confirmations.
func (c *Client) SubscribeConfirmation(ctx context.Context, fn func(*Confirmation), opts *SubscribeOptions) error {
	return c.Subscribe(ctx, TopicConfirmation, typed(fn), opts)
}

// SubscribeVote subscribes to live representative votes.
func (c *Client) SubscribeVote(ctx context.Context, fn func(*Vote), opts *SubscribeOptions) error {
	return c.Subscribe(ctx, TopicVote, typed(fn), opts)
}

// SubscribeStoppedElection subscribes to stopped elections; the handler
// receives the election's block hash.
func (c *Client) SubscribeStoppedElection(ctx context.Context, fn func(string), opts *SubscribeOptions) error {
	return c.Subscribe(ctx, TopicStoppedElection, func(payload any) {
		if hash, ok := payload.(string); ok {
			fn(hash)
		}
	}, opts)
}

// SubscribeActiveDifficulty subscribes to network difficulty changes.
func (c *Client) SubscribeActiveDifficulty(ctx context.Context, fn func(*Difficulty), opts *SubscribeOptions) error {
	return c.Subscribe(ctx, TopicActiveDifficulty, typed(fn), opts)
}

// SubscribeWork subscribes to proof-of-work generation results.
func (c *Client) SubscribeWork(ctx context.Context, fn func(*Work), opts *SubscribeOptions) error {
	return c.Subscribe(ctx, TopicWork, typed(fn), opts)
}

// SubscribeTelemetry subscribes to telemetry received from peers.
func (c *Client) SubscribeTelemetry(ctx context.Context, fn func(*Telemetry), opts *SubscribeOptions) error {
	return c.Subscribe(ctx, TopicTelemetry, typed(fn), opts)
}

// SubscribeNewUnconfirmedBlock subscribes to blocks as they arrive, before
// confirmation.
func (c *Client) SubscribeNewUnconfirmedBlock(ctx context.Context, fn func(*Block), opts *SubscribeOptions) error {
	return c.Subscribe(ctx, TopicNewUnconfirmedBlock, typed(fn), opts)
}

// SubscribeBootstrap subscribes to bootstrap attempt start/exit events.
func (c *Client) SubscribeBootstrap(ctx context.Context, fn func(*Bootstrap), opts *SubscribeOptions) error {
	return c.Subscribe(ctx, TopicBootstrap, typed(fn), opts)
}
