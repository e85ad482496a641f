package ws

import (
	"encoding/json"
	"testing"
)

func TestParseConfirmation(t *testing.T) {
	message := `{
		"account": "nano_1tgkjkq9r96zd3pkr7edj8e4qbu3wr3ps6ettzse8hmoa37nurua7faupjhc",
		"amount": "15621963968634827029081574961",
		"hash": "F705F9B8B5E2C8ABD7AE103F03E07D3B014D01D0FC40DBDBEB4C806E3227A85F",
		"confirmation_type": "active_quorum",
		"election_info": {
			"duration": "546",
			"time": "1599027957264",
			"tally": "42535295865117307936387010521258262528",
			"request_count": "1",
			"blocks": "1",
			"voters": "88"
		},
		"block": {
			"type": "state",
			"account": "nano_1tgkjkq9r96zd3pkr7edj8e4qbu3wr3ps6ettzse8hmoa37nurua7faupjhc",
			"previous": "4E9003ABD469D1F58A70518234016797FA654B494A2627B8583052629A91689E",
			"representative": "nano_3rw4un6ys57hrb39sy1qx8qy5wukst1iiponztrz9qiz6qqa55kxzx4491or",
			"balance": "50000000000000000000000000000000",
			"link": "F705F9B8B5E2C8ABD7AE103F03E07D3B014D01D0FC40DBDBEB4C806E3227A85F",
			"link_as_account": "nano_3xr7ygwdqrpaoqdtw65z9rs9tgr3bn1x3z41uqfuppa1fwj4hcczyp9q1zfx",
			"signature": "F9A3",
			"work": "a6ac28e81e6a7d4f",
			"subtype": "receive"
		}
	}`

	payload, err := parsePayload(TopicConfirmation, json.RawMessage(message))
	if err != nil {
		t.Fatalf("parsePayload: %v", err)
	}
	conf, ok := payload.(*Confirmation)
	if !ok {
		t.Fatalf("payload type = %T, want *Confirmation", payload)
	}
	if conf.Amount.String() != "15621963968634827029081574961" {
		t.Errorf("amount = %s", conf.Amount.String())
	}
	if conf.ElectionInfo == nil || conf.ElectionInfo.Voters != 88 {
		t.Errorf("election_info = %+v", conf.ElectionInfo)
	}
	if conf.Block.Subtype != "receive" {
		t.Errorf("block subtype = %q", conf.Block.Subtype)
	}
	if conf.Block.Balance.String() != "50000000000000000000000000000000" {
		t.Errorf("block balance = %s", conf.Block.Balance.String())
	}
}

func TestParseStoppedElection(t *testing.T) {
	payload, err := parsePayload(TopicStoppedElection,
		json.RawMessage(`{"hash":"FA6D344ECAB2C5E1C04E62B2BC6EE072938DD47530AB26E0D5A9A384302FBEB3"}`))
	if err != nil {
		t.Fatalf("parsePayload: %v", err)
	}
	hash, ok := payload.(string)
	if !ok {
		t.Fatalf("payload type = %T, want string", payload)
	}
	if hash != "FA6D344ECAB2C5E1C04E62B2BC6EE072938DD47530AB26E0D5A9A384302FBEB3" {
		t.Errorf("hash = %q", hash)
	}
}

func TestParseActiveDifficulty(t *testing.T) {
	message := `{
		"network_minimum": "fffffff800000000",
		"network_current": "fffffffa1fd88a40",
		"multiplier": "1.273557846739298"
	}`

	payload, err := parsePayload(TopicActiveDifficulty, json.RawMessage(message))
	if err != nil {
		t.Fatalf("parsePayload: %v", err)
	}
	diff := payload.(*Difficulty)
	if float64(diff.Multiplier) != 1.273557846739298 {
		t.Errorf("multiplier = %v", diff.Multiplier)
	}
	if diff.NetworkCurrent != "fffffffa1fd88a40" {
		t.Errorf("network_current = %q", diff.NetworkCurrent)
	}
}

func TestParseWork(t *testing.T) {
	completed := `{
		"success": "true",
		"reason": "",
		"duration": "306",
		"request": {
			"hash": "3ECE2684044C0EAF2CA6B1C72F11AFC5B5A75C00CFF993FB17B6E75F78ABF175",
			"difficulty": "ffffffc000000000",
			"multiplier": "1.000000000000000",
			"version": "work_1"
		},
		"result": {
			"source": "192.168.1.101:7000",
			"work": "4352c6e222703c57",
			"difficulty": "ffffffc72e194742",
			"multiplier": "9.021465135037191"
		},
		"bad_peers": ""
	}`

	payload, err := parsePayload(TopicWork, json.RawMessage(completed))
	if err != nil {
		t.Fatalf("parsePayload: %v", err)
	}
	work := payload.(*Work)
	if !bool(work.Success) {
		t.Error("success = false")
	}
	if work.Result == nil || work.Result.Work != "4352c6e222703c57" {
		t.Errorf("result = %+v", work.Result)
	}
	if len(work.BadPeers) != 0 {
		t.Errorf("bad_peers = %v, want empty for \"\"", work.BadPeers)
	}

	cancelled := `{
		"success": "false",
		"reason": "cancelled",
		"duration": "539",
		"request": {
			"hash": "2A4E1CBB1A1A0AC20A81F043D5CF656893F9CE18E01D8FDC87F5BA70F5740103",
			"difficulty": "ffffffc000000000",
			"multiplier": "1.000000000000000",
			"version": "work_1"
		},
		"bad_peers": ["192.168.1.101:7000"]
	}`

	payload, err = parsePayload(TopicWork, json.RawMessage(cancelled))
	if err != nil {
		t.Fatalf("parsePayload: %v", err)
	}
	work = payload.(*Work)
	if bool(work.Success) || work.Reason != "cancelled" {
		t.Errorf("work = %+v", work)
	}
	if work.Result != nil {
		t.Errorf("result = %+v, want nil", work.Result)
	}
	if len(work.BadPeers) != 1 || work.BadPeers[0] != "192.168.1.101:7000" {
		t.Errorf("bad_peers = %v", work.BadPeers)
	}
}

func TestParseTelemetry(t *testing.T) {
	message := `{
		"block_count": "51571901",
		"cemented_count": "51571901",
		"unchecked_count": "0",
		"account_count": "1376750",
		"bandwidth_cap": "10485760",
		"peer_count": "261",
		"protocol_version": "18",
		"uptime": "1223618",
		"genesis_block": "991CF190094C00F0B68E2E5F75F6BEE95A2E0BD93CEAA4A6734DB9F19B728948",
		"major_version": "21",
		"minor_version": "3",
		"patch_version": "0",
		"pre_release_version": "0",
		"maker": "0",
		"timestamp": "1594654710521",
		"active_difficulty": "ffffffcdbf40aa45",
		"node_id": "node_1bbqgqim37d6ibh8mauxs3b6d1gm9sejk9hcb1xk81nmr48dzxzcerpf8zhx",
		"signature": "BB12",
		"address": "::ffff:152.89.106.97",
		"port": "54000"
	}`

	payload, err := parsePayload(TopicTelemetry, json.RawMessage(message))
	if err != nil {
		t.Fatalf("parsePayload: %v", err)
	}
	tel := payload.(*Telemetry)
	if tel.BlockCount != 51571901 {
		t.Errorf("block_count = %d", tel.BlockCount)
	}
	if tel.Port != "54000" {
		t.Errorf("port = %q", tel.Port)
	}
	if tel.MajorVersion != 21 || tel.MinorVersion != 3 {
		t.Errorf("version = %d.%d", tel.MajorVersion, tel.MinorVersion)
	}
}

func TestParseBootstrap(t *testing.T) {
	message := `{
		"reason": "exited",
		"id": "C9FF2347C4DF512A7F6B514CC4A0F79A",
		"mode": "legacy",
		"total": "0",
		"duration": "29"
	}`

	payload, err := parsePayload(TopicBootstrap, json.RawMessage(message))
	if err != nil {
		t.Fatalf("parsePayload: %v", err)
	}
	boot := payload.(*Bootstrap)
	if boot.Reason != "exited" || boot.Mode != "legacy" {
		t.Errorf("bootstrap = %+v", boot)
	}
	if boot.Duration != 29 {
		t.Errorf("duration = %d", boot.Duration)
	}
}

func TestParseUnknownTopicPassthrough(t *testing.T) {
	raw := json.RawMessage(`{"anything":"goes"}`)
	payload, err := parsePayload(Topic("future_topic"), raw)
	if err != nil {
		t.Fatalf("parsePayload: %v", err)
	}
	got, ok := payload.(json.RawMessage)
	if !ok {
		t.Fatalf("payload type = %T, want json.RawMessage", payload)
	}
	if string(got) != string(raw) {
		t.Errorf("payload = %s", got)
	}
}

func TestParseMalformedPayload(t *testing.T) {
	_, err := parsePayload(TopicVote, json.RawMessage(`{"sequence":"NaN"}`))
	if err == nil {
		t.Fatal("no error for malformed vote payload")
	}
}
