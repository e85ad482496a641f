package rpc

import "context"

// DeterministicKey derives a keypair from a seed at the given index.
func (c *Client) DeterministicKey(ctx context.Context, seed string, index int) (*Keypair, error) {
	out, err := call[Keypair](ctx, c, "deterministic_key", map[string]any{
		"seed":  seed,
		"index": index,
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// KeyCreate generates a fresh random keypair.
func (c *Client) KeyCreate(ctx context.Context) (*Keypair, error) {
	out, err := call[Keypair](ctx, c, "key_create", nil)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// KeyExpand derives the public key and account address from a private key.
func (c *Client) KeyExpand(ctx context.Context, key string) (*Keypair, error) {
	out, err := call[Keypair](ctx, c, "key_expand", map[string]any{"key": key})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
