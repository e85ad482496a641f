package rpc

import (
	"context"

	"nano"
)

// AccountBalance returns how many raw the account owns and how many have
// not yet been received.
func (c *Client) AccountBalance(ctx context.Context, account string) (*AccountBalance, error) {
	out, err := call[AccountBalance](ctx, c, "account_balance", map[string]any{"account": account})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// AccountBlockCount returns the number of blocks in the account's chain.
func (c *Client) AccountBlockCount(ctx context.Context, account string) (uint64, error) {
	out, err := call[struct {
		BlockCount nano.UintString `json:"block_count"`
	}](ctx, c, "account_block_count", map[string]any{"account": account})
	return uint64(out.BlockCount), err
}

// AccountGet returns the account address for a public key.
func (c *Client) AccountGet(ctx context.Context, key string) (string, error) {
	out, err := call[struct {
		Account string `json:"account"`
	}](ctx, c, "account_get", map[string]any{"key": key})
	return out.Account, err
}

// AccountHistory reports send/receive information for an account. count of
// -1 requests the whole history.
func (c *Client) AccountHistory(ctx context.Context, account string, count int) (*AccountHistory, error) {
	out, err := call[AccountHistory](ctx, c, "account_history", map[string]any{
		"account": account,
		"count":   count,
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// AccountInfo returns frontier, open block, change representative block,
// balance, last modified timestamp and block count for an account.
func (c *Client) AccountInfo(ctx context.Context, account string) (*AccountInfo, error) {
	out, err := call[AccountInfo](ctx, c, "account_info", map[string]any{"account": account})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// AccountKey returns the public key for an account.
func (c *Client) AccountKey(ctx context.Context, account string) (string, error) {
	out, err := call[struct {
		Key string `json:"key"`
	}](ctx, c, "account_key", map[string]any{"account": account})
	return out.Key, err
}

// AccountRepresentative returns the representative for an account.
func (c *Client) AccountRepresentative(ctx context.Context, account string) (string, error) {
	out, err := call[struct {
		Representative string `json:"representative"`
	}](ctx, c, "account_representative", map[string]any{"account": account})
	return out.Representative, err
}

// AccountWeight returns the voting weight for an account.
func (c *Client) AccountWeight(ctx context.Context, account string) (*nano.Raw, error) {
	out, err := call[struct {
		Weight nano.Raw `json:"weight"`
	}](ctx, c, "account_weight", map[string]any{"account": account})
	if err != nil {
		return nil, err
	}
	return &out.Weight, nil
}

// AccountsBalances returns balances for a list of accounts.
func (c *Client) AccountsBalances(ctx context.Context, accounts []string) (map[string]AccountBalance, error) {
	out, err := call[struct {
		Balances map[string]AccountBalance `json:"balances"`
	}](ctx, c, "accounts_balances", map[string]any{"accounts": accounts})
	return out.Balances, err
}

// AccountsFrontiers returns the head block hash for each listed account.
func (c *Client) AccountsFrontiers(ctx context.Context, accounts []string) (map[string]string, error) {
	out, err := call[struct {
		Frontiers map[string]string `json:"frontiers"`
	}](ctx, c, "accounts_frontiers", map[string]any{"accounts": accounts})
	return out.Frontiers, err
}

// AccountsPending returns, per account, the confirmed block hashes not yet
// received by that account.
func (c *Client) AccountsPending(ctx context.Context, accounts []string) (map[string][]string, error) {
	out, err := call[struct {
		Blocks map[string][]string `json:"blocks"`
	}](ctx, c, "accounts_pending", map[string]any{"accounts": accounts})
	return out.Blocks, err
}

// AccountsPendingThreshold is AccountsPending filtered to blocks worth at
// least threshold raw; the result maps hashes to their amounts.
func (c *Client) AccountsPendingThreshold(ctx context.Context, accounts []string, threshold *nano.Raw) (map[string]map[string]nano.Raw, error) {
	out, err := call[struct {
		Blocks map[string]map[string]nano.Raw `json:"blocks"`
	}](ctx, c, "accounts_pending", map[string]any{
		"accounts":  accounts,
		"threshold": threshold,
	})
	return out.Blocks, err
}

// AccountsPendingSource is AccountsPending with source accounts included;
// the result maps hashes to amount and sender.
func (c *Client) AccountsPendingSource(ctx context.Context, accounts []string) (map[string]map[string]Receivable, error) {
	out, err := call[struct {
		Blocks map[string]map[string]Receivable `json:"blocks"`
	}](ctx, c, "accounts_pending", map[string]any{
		"accounts": accounts,
		"source":   true,
	})
	return out.Blocks, err
}

// AccountsRepresentatives returns the representative for each listed
// account.
func (c *Client) AccountsRepresentatives(ctx context.Context, accounts []string) (map[string]string, error) {
	out, err := call[struct {
		Representatives map[string]string `json:"representatives"`
	}](ctx, c, "accounts_representatives", map[string]any{"accounts": accounts})
	return out.Representatives, err
}

// ValidateAccountNumber checks whether an account address has a valid
// checksum.
func (c *Client) ValidateAccountNumber(ctx context.Context, account string) (bool, error) {
	out, err := call[struct {
		Valid nano.BoolString `json:"valid"`
	}](ctx, c, "validate_account_number", map[string]any{"account": account})
	return bool(out.Valid), err
}
