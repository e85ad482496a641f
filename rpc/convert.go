package rpc

import (
	"context"

	"nano"
)

// NanoToRaw converts a nano amount (1 nano = 10^30 raw) into raw.
func (c *Client) NanoToRaw(ctx context.Context, amount *nano.Raw) (*nano.Raw, error) {
	out, err := call[struct {
		Amount nano.Raw `json:"amount"`
	}](ctx, c, "nano_to_raw", map[string]any{"amount": amount})
	if err != nil {
		return nil, err
	}
	return &out.Amount, nil
}

// RawToNano converts a raw amount into nano (10^30 raw).
func (c *Client) RawToNano(ctx context.Context, amount *nano.Raw) (*nano.Raw, error) {
	out, err := call[struct {
		Amount nano.Raw `json:"amount"`
	}](ctx, c, "raw_to_nano", map[string]any{"amount": amount})
	if err != nil {
		return nil, err
	}
	return &out.Amount, nil
}
