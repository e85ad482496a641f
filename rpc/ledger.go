package rpc

import (
	"context"

	"nano"
)

// AvailableSupply returns how many raw are in the public supply.
func (c *Client) AvailableSupply(ctx context.Context) (*nano.Raw, error) {
	out, err := call[struct {
		Available nano.Raw `json:"available"`
	}](ctx, c, "available_supply", nil)
	if err != nil {
		return nil, err
	}
	return &out.Available, nil
}

// FrontierCount reports the number of accounts in the ledger.
func (c *Client) FrontierCount(ctx context.Context) (uint64, error) {
	out, err := call[struct {
		Count nano.UintString `json:"count"`
	}](ctx, c, "frontier_count", nil)
	return uint64(out.Count), err
}

// Frontiers returns the head block for each account, starting at account up
// to count.
func (c *Client) Frontiers(ctx context.Context, account string, count int) (map[string]string, error) {
	out, err := call[struct {
		Frontiers map[string]string `json:"frontiers"`
	}](ctx, c, "frontiers", map[string]any{
		"account": account,
		"count":   count,
	})
	return out.Frontiers, err
}

// Ledger scans ledger accounts starting at account up to count.
func (c *Client) Ledger(ctx context.Context, account string, count int) (map[string]LedgerInfo, error) {
	out, err := call[struct {
		Accounts map[string]LedgerInfo `json:"accounts"`
	}](ctx, c, "ledger", map[string]any{
		"account": account,
		"count":   count,
	})
	return out.Accounts, err
}

// Delegators returns the delegator accounts and balances for a
// representative.
func (c *Client) Delegators(ctx context.Context, account string) (map[string]nano.Raw, error) {
	out, err := call[struct {
		Delegators map[string]nano.Raw `json:"delegators"`
	}](ctx, c, "delegators", map[string]any{"account": account})
	return out.Delegators, err
}

// DelegatorsCount returns the number of delegators for a representative.
func (c *Client) DelegatorsCount(ctx context.Context, account string) (uint64, error) {
	out, err := call[struct {
		Count nano.UintString `json:"count"`
	}](ctx, c, "delegators_count", map[string]any{"account": account})
	return uint64(out.Count), err
}

// Representatives returns each known representative and its voting weight.
func (c *Client) Representatives(ctx context.Context) (map[string]nano.Raw, error) {
	out, err := call[struct {
		Representatives map[string]nano.Raw `json:"representatives"`
	}](ctx, c, "representatives", nil)
	return out.Representatives, err
}

// RepresentativesOnline lists representative accounts that have voted
// recently.
func (c *Client) RepresentativesOnline(ctx context.Context) ([]string, error) {
	out, err := call[struct {
		Representatives []string `json:"representatives"`
	}](ctx, c, "representatives_online", nil)
	return out.Representatives, err
}

// RepresentativesOnlineWeight is RepresentativesOnline with each
// representative's voting weight included.
func (c *Client) RepresentativesOnlineWeight(ctx context.Context) (map[string]Representative, error) {
	out, err := call[struct {
		Representatives map[string]Representative `json:"representatives"`
	}](ctx, c, "representatives_online", map[string]any{"weight": true})
	return out.Representatives, err
}

// ConfirmationActive lists the qualified roots of currently active
// elections.
func (c *Client) ConfirmationActive(ctx context.Context) (*ActiveConfirmations, error) {
	out, err := call[ActiveConfirmations](ctx, c, "confirmation_active", nil)
	if err != nil {
		return nil, err
	}
	if out.Confirmations == nil {
		out.Confirmations = []string{}
	}
	return &out, nil
}

// ConfirmationInfo returns the state of an unconfirmed active election by
// its qualified root.
func (c *Client) ConfirmationInfo(ctx context.Context, root string) (*ConfirmationInfo, error) {
	out, err := call[ConfirmationInfo](ctx, c, "confirmation_info", map[string]any{
		"json_block": true,
		"root":       root,
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ConfirmationQuorum returns the node's election settings and observed
// network stake.
func (c *Client) ConfirmationQuorum(ctx context.Context) (*ConfirmationQuorum, error) {
	out, err := call[ConfirmationQuorum](ctx, c, "confirmation_quorum", nil)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Receivable lists block hashes not yet received by the account.
func (c *Client) Receivable(ctx context.Context, account string) ([]string, error) {
	out, err := call[struct {
		Blocks []string `json:"blocks"`
	}](ctx, c, "receivable", map[string]any{"account": account})
	return out.Blocks, err
}

// ReceivableThreshold is Receivable filtered to blocks worth at least
// threshold raw; the result maps hashes to their amounts.
func (c *Client) ReceivableThreshold(ctx context.Context, account string, threshold *nano.Raw) (map[string]nano.Raw, error) {
	out, err := call[struct {
		Blocks map[string]nano.Raw `json:"blocks"`
	}](ctx, c, "receivable", map[string]any{
		"account":   account,
		"threshold": threshold,
	})
	return out.Blocks, err
}

// ReceivableSource is Receivable with source accounts included; the result
// maps hashes to amount and sender.
func (c *Client) ReceivableSource(ctx context.Context, account string) (map[string]Receivable, error) {
	out, err := call[struct {
		Blocks map[string]Receivable `json:"blocks"`
	}](ctx, c, "receivable", map[string]any{
		"account": account,
		"source":  true,
	})
	return out.Blocks, err
}

// ReceivableExists checks whether the block with the given hash is still
// receivable.
func (c *Client) ReceivableExists(ctx context.Context, hash string) (bool, error) {
	out, err := call[struct {
		Exists nano.BoolString `json:"exists"`
	}](ctx, c, "receivable_exists", map[string]any{"hash": hash})
	return bool(out.Exists), err
}

// Unchecked lists unchecked synchronizing blocks up to count.
func (c *Client) Unchecked(ctx context.Context, count int) ([]Block, error) {
	params := map[string]any{"json_block": true}
	if count > 0 {
		params["count"] = count
	}
	out, err := call[struct {
		Blocks []Block `json:"blocks"`
	}](ctx, c, "unchecked", params)
	return out.Blocks, err
}

// UncheckedClear drops all unchecked synchronizing blocks.
func (c *Client) UncheckedClear(ctx context.Context) (bool, error) {
	return c.successCall(ctx, "unchecked_clear")
}

// UncheckedGet retrieves one unchecked synchronizing block by hash.
func (c *Client) UncheckedGet(ctx context.Context, hash string) (*Block, error) {
	out, err := call[struct {
		Contents Block `json:"contents"`
	}](ctx, c, "unchecked_get", map[string]any{
		"json_block": true,
		"hash":       hash,
	})
	if err != nil {
		return nil, err
	}
	return &out.Contents, nil
}

// UncheckedKeys retrieves unchecked database keys and block contents
// starting from key up to count.
func (c *Client) UncheckedKeys(ctx context.Context, key string, count int) ([]UncheckedBlock, error) {
	params := map[string]any{
		"json_block": true,
		"key":        key,
	}
	if count > 0 {
		params["count"] = count
	}
	out, err := call[struct {
		Unchecked []UncheckedBlock `json:"unchecked"`
	}](ctx, c, "unchecked_keys", params)
	return out.Unchecked, err
}

// Unopened returns the total receivable balance for unopened accounts,
// starting at account up to count; pass "" and 0 for node defaults.
func (c *Client) Unopened(ctx context.Context, account string, count int) (map[string]nano.Raw, error) {
	params := map[string]any{}
	setIfPresent(params, "account", account)
	if count > 0 {
		params["count"] = count
	}
	out, err := call[struct {
		Accounts map[string]nano.Raw `json:"accounts"`
	}](ctx, c, "unopened", params)
	return out.Accounts, err
}
