package ingestion_test

import (
	"strings"
	"testing"

	"SmartSwap/internal/converter"
	"SmartSwap/internal/ingestion"
)

func rawFromJSON(requestType, data string) ingestion.RawRequest {
	return ingestion.RawRequest{
		Subject:     "swap.requests." + requestType,
		RequestType: requestType,
		Data:        []byte(data),
	}
}

const validBase = `"request_id": "7b2e9d4a-1f63-4c8e-9a57-3d2b8f0c6e11", "origin": "feed-a", "sequence": 7, "timestamp_us": 1700000000000000`

// ============================================================================
// Test: Convert parsing
// ============================================================================

func TestParseConvert(t *testing.T) {
	raw := rawFromJSON("Convert", `{
		`+validBase+`,
		"caller": "network",
		"trader": "alice",
		"beneficiary": "bob",
		"source_token": "usd",
		"target_token": "smart",
		"amount": "115792089237316195423570985008687907853269984665640564039457584007913129639935",
		"min_return": "100"
	}`)

	req, err := ingestion.ParseRawRequest(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	conv, ok := req.(converter.ConvertRequest)
	if !ok {
		t.Fatalf("got %T, want ConvertRequest", req)
	}

	if conv.RequestID().String() != "7b2e9d4a-1f63-4c8e-9a57-3d2b8f0c6e11" {
		t.Errorf("request id: got %s", conv.RequestID())
	}
	if conv.Source() != "feed-a" || conv.SourceSequence() != 7 {
		t.Errorf("ordering key: got %s/%d", conv.Source(), conv.SourceSequence())
	}
	if conv.At().UnixMicro() != 1700000000000000 {
		t.Errorf("timestamp: got %d", conv.At().UnixMicro())
	}
	if conv.Caller != "network" || conv.Trader != "alice" || conv.Beneficiary != "bob" {
		t.Errorf("parties: got %s/%s/%s", conv.Caller, conv.Trader, conv.Beneficiary)
	}
	if conv.SourceToken != "usd" || conv.TargetToken != "smart" {
		t.Errorf("tokens: got %s/%s", conv.SourceToken, conv.TargetToken)
	}
	// The full 256-bit range survives the decimal-string encoding.
	if conv.Amount.Dec() != "115792089237316195423570985008687907853269984665640564039457584007913129639935" {
		t.Errorf("amount: got %s", conv.Amount.Dec())
	}
	if conv.MinReturn == nil || conv.MinReturn.Uint64() != 100 {
		t.Errorf("min return: got %v", conv.MinReturn)
	}
	if conv.Value != nil {
		t.Errorf("value: got %v, want nil", conv.Value)
	}
}

func TestParseConvert_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{
			"malformed json",
			`{not json`,
			"parse Convert",
		},
		{
			"bad request id",
			`{"request_id": "not-a-uuid", "origin": "feed-a", "sequence": 1, "timestamp_us": 1, "amount": "5"}`,
			"parse request_id",
		},
		{
			"missing origin",
			`{"request_id": "7b2e9d4a-1f63-4c8e-9a57-3d2b8f0c6e11", "sequence": 1, "timestamp_us": 1, "amount": "5"}`,
			"missing origin",
		},
		{
			"missing amount",
			`{` + validBase + `}`,
			"missing amount",
		},
		{
			"negative amount",
			`{` + validBase + `, "amount": "-5"}`,
			"parse amount",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ingestion.ParseRawRequest(rawFromJSON("Convert", tt.data))
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("got %v, want %q", err, tt.wantErr)
			}
		})
	}
}

// ============================================================================
// Test: liquidity request parsing
// ============================================================================

func TestParseFund(t *testing.T) {
	raw := rawFromJSON("Fund", `{
		`+validBase+`,
		"provider": "alice",
		"amount": "250",
		"value": "10"
	}`)

	req, err := ingestion.ParseRawRequest(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	fund, ok := req.(converter.FundRequest)
	if !ok {
		t.Fatalf("got %T, want FundRequest", req)
	}
	if fund.Provider != "alice" || fund.Amount.Uint64() != 250 {
		t.Errorf("got %s/%s", fund.Provider, fund.Amount)
	}
	if fund.Value == nil || fund.Value.Uint64() != 10 {
		t.Errorf("value: got %v", fund.Value)
	}
}

func TestParseAddLiquidity(t *testing.T) {
	raw := rawFromJSON("AddLiquidity", `{
		`+validBase+`,
		"provider": "alice",
		"tokens": ["usd", "eur"],
		"amounts": ["100", "200"]
	}`)

	req, err := ingestion.ParseRawRequest(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	al, ok := req.(converter.AddLiquidityRequest)
	if !ok {
		t.Fatalf("got %T, want AddLiquidityRequest", req)
	}
	if len(al.Tokens) != 2 || al.Tokens[1] != "eur" {
		t.Errorf("tokens: got %v", al.Tokens)
	}
	if len(al.Amounts) != 2 || al.Amounts[1].Uint64() != 200 {
		t.Errorf("amounts: got %v", al.Amounts)
	}
	if al.MinReturn != nil {
		t.Errorf("min return: got %v, want nil", al.MinReturn)
	}
}

func TestParseAddLiquidity_LengthMismatch(t *testing.T) {
	raw := rawFromJSON("AddLiquidity", `{
		`+validBase+`,
		"provider": "alice",
		"tokens": ["usd", "eur"],
		"amounts": ["100"]
	}`)
	if _, err := ingestion.ParseRawRequest(raw); err == nil || !strings.Contains(err.Error(), "length mismatch") {
		t.Errorf("got %v, want length mismatch", err)
	}
}

func TestParseRemoveLiquidity(t *testing.T) {
	raw := rawFromJSON("RemoveLiquidity", `{
		`+validBase+`,
		"provider": "alice",
		"amount": "50",
		"tokens": ["usd", "eur"],
		"min_returns": ["1", "2"]
	}`)

	req, err := ingestion.ParseRawRequest(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	rl, ok := req.(converter.RemoveLiquidityRequest)
	if !ok {
		t.Fatalf("got %T, want RemoveLiquidityRequest", req)
	}
	if rl.Amount.Uint64() != 50 || len(rl.MinReturns) != 2 {
		t.Errorf("got %s / %v", rl.Amount, rl.MinReturns)
	}
}

func TestParseRemoveLiquidity_LengthMismatch(t *testing.T) {
	raw := rawFromJSON("RemoveLiquidity", `{
		`+validBase+`,
		"provider": "alice",
		"amount": "50",
		"tokens": ["usd"],
		"min_returns": ["1", "2"]
	}`)
	if _, err := ingestion.ParseRawRequest(raw); err == nil || !strings.Contains(err.Error(), "length mismatch") {
		t.Errorf("got %v, want length mismatch", err)
	}
}

// ============================================================================
// Test: configuration request parsing
// ============================================================================

func TestParseAddReserve(t *testing.T) {
	raw := rawFromJSON("AddReserve", `{
		`+validBase+`,
		"caller": "owner",
		"token": "usd",
		"weight": 500000
	}`)

	req, err := ingestion.ParseRawRequest(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	ar, ok := req.(converter.AddReserveRequest)
	if !ok {
		t.Fatalf("got %T, want AddReserveRequest", req)
	}
	if ar.Token != "usd" || ar.Weight != 500_000 {
		t.Errorf("got %s/%d", ar.Token, ar.Weight)
	}
}

func TestParseAddReserve_MissingToken(t *testing.T) {
	raw := rawFromJSON("AddReserve", `{`+validBase+`, "caller": "owner", "weight": 500000}`)
	if _, err := ingestion.ParseRawRequest(raw); err == nil || !strings.Contains(err.Error(), "missing token") {
		t.Errorf("got %v, want missing token", err)
	}
}

func TestParseSetFeeAndAcceptOwnership(t *testing.T) {
	req, err := ingestion.ParseRawRequest(rawFromJSON("SetFee", `{`+validBase+`, "caller": "owner", "fee": 3000}`))
	if err != nil {
		t.Fatalf("parse SetFee: %v", err)
	}
	sf, ok := req.(converter.SetFeeRequest)
	if !ok || sf.Fee != 3000 {
		t.Errorf("got %T/%v", req, req)
	}

	req, err = ingestion.ParseRawRequest(rawFromJSON("AcceptOwnership", `{`+validBase+`, "caller": "owner"}`))
	if err != nil {
		t.Fatalf("parse AcceptOwnership: %v", err)
	}
	if _, ok := req.(converter.AcceptOwnershipRequest); !ok {
		t.Errorf("got %T, want AcceptOwnershipRequest", req)
	}
}

func TestParseUnknownRequestType(t *testing.T) {
	_, err := ingestion.ParseRawRequest(rawFromJSON("SelfDestruct", `{}`))
	if err == nil || !strings.Contains(err.Error(), "unknown request type") {
		t.Errorf("got %v, want unknown request type", err)
	}
}
