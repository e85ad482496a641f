package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, `{}`))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.RPCURL != DefaultRPCURL {
		t.Errorf("rpcUrl = %q", cfg.RPCURL)
	}
	if cfg.WSURL != DefaultWSURL {
		t.Errorf("wsUrl = %q", cfg.WSURL)
	}
	if cfg.LogLevel != DefaultLogLevel {
		t.Errorf("logLevel = %q", cfg.LogLevel)
	}
	if cfg.AckTimeout != DefaultAckTimeout {
		t.Errorf("ackTimeout = %d", cfg.AckTimeout)
	}
	if cfg.ReconnectInterval != DefaultReconnectInterval {
		t.Errorf("reconnectInterval = %d", cfg.ReconnectInterval)
	}
	if len(cfg.Subscriptions) != 1 || cfg.Subscriptions[0].Topic != "confirmation" {
		t.Errorf("subscriptions = %+v", cfg.Subscriptions)
	}
}

func TestLoadFull(t *testing.T) {
	cfg, err := Load(writeConfig(t, `{
		"rpcUrl": "http://10.0.0.5:7076",
		"wsUrl": "ws://10.0.0.5:7078",
		"logLevel": "debug",
		"ackTimeout": 5000,
		"reconnectInterval": 1000,
		"probe": true,
		"subscriptions": [
			{"topic": "confirmation", "ack": true, "options": {"accounts": ["nano_3arg3asgtigae3xckabaaewkx3bzsh7nwz7jkmjos79ihyaxwphhm6qgjps4"]}},
			{"topic": "telemetry"}
		]
	}`))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.RPCURL != "http://10.0.0.5:7076" || !cfg.Probe {
		t.Errorf("cfg = %+v", cfg)
	}
	if len(cfg.Subscriptions) != 2 {
		t.Fatalf("subscriptions = %+v", cfg.Subscriptions)
	}
	sub := cfg.Subscriptions[0]
	if !sub.Ack {
		t.Error("ack not parsed")
	}
	if _, ok := sub.Options["accounts"]; !ok {
		t.Errorf("options = %v", sub.Options)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("no error for missing file")
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	if _, err := Load(writeConfig(t, `{not json`)); err == nil {
		t.Fatal("no error for invalid JSON")
	}
}

func TestValidateErrors(t *testing.T) {
	cases := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "bad log level",
			content: `{"logLevel": "verbose"}`,
			want:    "logLevel",
		},
		{
			name:    "unknown topic",
			content: `{"subscriptions": [{"topic": "gossip"}]}`,
			want:    "unknown topic",
		},
		{
			name:    "empty topic",
			content: `{"subscriptions": [{"ack": true}]}`,
			want:    "topic is required",
		},
		{
			name:    "duplicate topic",
			content: `{"subscriptions": [{"topic": "vote"}, {"topic": "vote"}]}`,
			want:    "duplicate topic",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tc.content))
			if err == nil {
				t.Fatal("no error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error = %v, want substring %q", err, tc.want)
			}
		})
	}
}
