package rpc

import (
	"context"

	"nano"
)

// Bootstrap initializes bootstrap to a specific peer address and port.
func (c *Client) Bootstrap(ctx context.Context, address, port string) (bool, error) {
	return c.successCall(ctx, "bootstrap", map[string]any{
		"address": address,
		"port":    port,
	})
}

// BootstrapLazy initializes lazy bootstrap starting from the given block
// hash.
func (c *Client) BootstrapLazy(ctx context.Context, hash string) (*LazyBootstrapInfo, error) {
	out, err := call[LazyBootstrapInfo](ctx, c, "bootstrap_lazy", map[string]any{"hash": hash})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Keepalive tells the node to send a keepalive packet to address:port.
func (c *Client) Keepalive(ctx context.Context, address, port string) (bool, error) {
	out, err := call[struct {
		Started nano.BoolString `json:"started"`
	}](ctx, c, "keepalive", map[string]any{
		"address": address,
		"port":    port,
	})
	return bool(out.Started), err
}

// Peers returns online peers and their protocol network versions.
func (c *Client) Peers(ctx context.Context) (map[string]nano.UintString, error) {
	out, err := call[struct {
		Peers map[string]nano.UintString `json:"peers"`
	}](ctx, c, "peers", nil)
	return out.Peers, err
}

// PeersDetailed is Peers with node ids and connection types included.
func (c *Client) PeersDetailed(ctx context.Context) (map[string]PeerInfo, error) {
	out, err := call[struct {
		Peers map[string]PeerInfo `json:"peers"`
	}](ctx, c, "peers", map[string]any{"peer_details": true})
	return out.Peers, err
}

// StatsClear resets all collected node statistics.
func (c *Client) StatsClear(ctx context.Context) (bool, error) {
	return c.successCall(ctx, "stats_clear")
}

// Stop safely shuts the node down.
func (c *Client) Stop(ctx context.Context) (bool, error) {
	return c.successCall(ctx, "stop")
}

// Telemetry returns a summarized view of metrics across the whole network.
func (c *Client) Telemetry(ctx context.Context) (*Telemetry, error) {
	out, err := call[Telemetry](ctx, c, "telemetry", nil)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// TelemetryRaw returns the unsummarized per-peer telemetry responses.
func (c *Client) TelemetryRaw(ctx context.Context) ([]Telemetry, error) {
	out, err := call[struct {
		Metrics []Telemetry `json:"metrics"`
	}](ctx, c, "telemetry", map[string]any{"raw": true})
	return out.Metrics, err
}

// Uptime returns the node uptime in seconds.
func (c *Client) Uptime(ctx context.Context) (uint64, error) {
	out, err := call[struct {
		Seconds nano.UintString `json:"seconds"`
	}](ctx, c, "uptime", nil)
	return uint64(out.Seconds), err
}

// Version returns version information for RPC, store, protocol and node.
func (c *Client) Version(ctx context.Context) (*VersionInfo, error) {
	out, err := call[VersionInfo](ctx, c, "version", nil)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
