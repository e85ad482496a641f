package rpc

import (
	"context"

	"nano"
)

// BlockAccount returns the account containing the given block.
func (c *Client) BlockAccount(ctx context.Context, hash string) (string, error) {
	out, err := call[struct {
		Account string `json:"account"`
	}](ctx, c, "block_account", map[string]any{"hash": hash})
	return out.Account, err
}

// BlockConfirm requests confirmation for a block from known online
// representatives.
func (c *Client) BlockConfirm(ctx context.Context, hash string) (bool, error) {
	out, err := call[struct {
		Started nano.BoolString `json:"started"`
	}](ctx, c, "block_confirm", map[string]any{"hash": hash})
	return bool(out.Started), err
}

// BlockCount reports the number of blocks in the ledger and unchecked
// synchronizing blocks.
func (c *Client) BlockCount(ctx context.Context) (*BlockCount, error) {
	out, err := call[BlockCount](ctx, c, "block_count", nil)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// BlockCreateRequest carries the inputs for creating a state block. Exactly
// one of Wallet+Account or Key must identify the signing key.
type BlockCreateRequest struct {
	Balance        *nano.Raw
	Representative string
	Previous       string
	Account        string
	Wallet         string
	Key            string
	Source         string
	Destination    string
	Link           string
	Work           string
}

// BlockCreate builds and signs a new state block for offline publishing.
func (c *Client) BlockCreate(ctx context.Context, req BlockCreateRequest) (*SignedBlock, error) {
	params := map[string]any{
		"json_block":     true,
		"type":           "state",
		"balance":        req.Balance,
		"representative": req.Representative,
		"previous":       req.Previous,
	}
	setIfPresent(params, "account", req.Account)
	setIfPresent(params, "wallet", req.Wallet)
	setIfPresent(params, "key", req.Key)
	setIfPresent(params, "source", req.Source)
	setIfPresent(params, "destination", req.Destination)
	setIfPresent(params, "link", req.Link)
	setIfPresent(params, "work", req.Work)

	out, err := call[SignedBlock](ctx, c, "block_create", params)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// BlockHash returns the hash for the given block contents.
func (c *Client) BlockHash(ctx context.Context, block Block) (string, error) {
	out, err := call[struct {
		Hash string `json:"hash"`
	}](ctx, c, "block_hash", map[string]any{
		"json_block": true,
		"block":      block,
	})
	return out.Hash, err
}

// BlockInfo retrieves a block with its ledger metadata.
func (c *Client) BlockInfo(ctx context.Context, hash string) (*BlockInfo, error) {
	out, err := call[BlockInfo](ctx, c, "block_info", map[string]any{
		"json_block": true,
		"hash":       hash,
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Blocks retrieves the contents of the given blocks.
func (c *Client) Blocks(ctx context.Context, hashes []string) (map[string]Block, error) {
	out, err := call[struct {
		Blocks map[string]Block `json:"blocks"`
	}](ctx, c, "blocks", map[string]any{
		"json_block": true,
		"hashes":     hashes,
	})
	return out.Blocks, err
}

// BlocksInfo retrieves the given blocks with their ledger metadata.
func (c *Client) BlocksInfo(ctx context.Context, hashes []string) (*BlocksInfo, error) {
	out, err := call[BlocksInfo](ctx, c, "blocks_info", map[string]any{
		"json_block": true,
		"hashes":     hashes,
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Chain lists block hashes in the account chain starting at block, walking
// from newer to older blocks. count of -1 walks back to the open block.
func (c *Client) Chain(ctx context.Context, block string, count int) ([]string, error) {
	out, err := call[struct {
		Blocks []string `json:"blocks"`
	}](ctx, c, "chain", map[string]any{
		"block": block,
		"count": count,
	})
	return out.Blocks, err
}

// Successors lists block hashes in the account chain starting at block,
// walking towards the frontier. count of -1 walks all the way.
func (c *Client) Successors(ctx context.Context, block string, count int) ([]string, error) {
	out, err := call[struct {
		Blocks []string `json:"blocks"`
	}](ctx, c, "successors", map[string]any{
		"block": block,
		"count": count,
	})
	return out.Blocks, err
}

// Process publishes a block to the network and returns its hash once the
// node has accepted it.
func (c *Client) Process(ctx context.Context, subtype BlockSubtype, block Block) (string, error) {
	out, err := call[struct {
		Hash string `json:"hash"`
	}](ctx, c, "process", map[string]any{
		"json_block": true,
		"subtype":    subtype,
		"block":      block,
	})
	return out.Hash, err
}

// ProcessAsync publishes a block without waiting for the node to finish
// processing it; the node only reports that processing started.
func (c *Client) ProcessAsync(ctx context.Context, subtype BlockSubtype, block Block) (bool, error) {
	out, err := call[struct {
		Started nano.BoolString `json:"started"`
	}](ctx, c, "process", map[string]any{
		"json_block": true,
		"subtype":    subtype,
		"block":      block,
		"async":      true,
	})
	return bool(out.Started), err
}

// Republish rebroadcasts blocks starting at hash to the network.
func (c *Client) Republish(ctx context.Context, hash string) ([]string, error) {
	out, err := call[struct {
		Blocks []string `json:"blocks"`
	}](ctx, c, "republish", map[string]any{"hash": hash})
	return out.Blocks, err
}

// SignBlock signs the given block contents with a wallet account or an
// explicit private key.
func (c *Client) SignBlock(ctx context.Context, block Block, key string) (string, error) {
	params := map[string]any{
		"json_block": true,
		"block":      block,
	}
	setIfPresent(params, "key", key)

	out, err := call[struct {
		Signature string `json:"signature"`
	}](ctx, c, "sign", params)
	return out.Signature, err
}

// SignHash signs a block identified by hash using the node's wallet.
func (c *Client) SignHash(ctx context.Context, hash string) (string, error) {
	out, err := call[struct {
		Signature string `json:"signature"`
	}](ctx, c, "sign", map[string]any{
		"json_block": true,
		"hash":       hash,
	})
	return out.Signature, err
}

func setIfPresent(params map[string]any, key, value string) {
	if value != "" {
		params[key] = value
	}
}
