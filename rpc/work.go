package rpc

import "context"

// WorkCancel stops generating work for a block.
func (c *Client) WorkCancel(ctx context.Context, hash string) (bool, error) {
	return c.successCall(ctx, "work_cancel", map[string]any{"hash": hash})
}

// WorkGenerate computes proof of work for the given block hash.
func (c *Client) WorkGenerate(ctx context.Context, hash string) (*WorkInfo, error) {
	out, err := call[WorkInfo](ctx, c, "work_generate", map[string]any{"hash": hash})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// WorkPeerAdd registers address:port as a work peer until node restart.
func (c *Client) WorkPeerAdd(ctx context.Context, address, port string) (bool, error) {
	return c.successCall(ctx, "work_peer_add", map[string]any{
		"address": address,
		"port":    port,
	})
}

// WorkPeers lists the configured work peers.
func (c *Client) WorkPeers(ctx context.Context) ([]string, error) {
	out, err := call[struct {
		WorkPeers []string `json:"work_peers"`
	}](ctx, c, "work_peers", nil)
	return out.WorkPeers, err
}

// WorkPeersClear removes all work peers until node restart.
func (c *Client) WorkPeersClear(ctx context.Context) (bool, error) {
	return c.successCall(ctx, "work_peers_clear")
}

// WorkValidate checks whether work is valid for the given block hash.
func (c *Client) WorkValidate(ctx context.Context, work, hash string) (*ValidationInfo, error) {
	out, err := call[ValidationInfo](ctx, c, "work_validate", map[string]any{
		"work": work,
		"hash": hash,
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
