package ingestion_test

import (
	"context"
	"testing"

	"SmartSwap/internal/converter"
	"SmartSwap/internal/ingestion"
	"SmartSwap/internal/reserve"

	"github.com/holiman/uint256"
)

// ============================================================================
// Test: admin request injection
// ============================================================================

func TestInjectAddReserve(t *testing.T) {
	ch := make(chan converter.Request, 1)
	svc := ingestion.NewGRPCIngestService(ch)

	err := svc.InjectAddReserve(context.Background(), "owner", "usd", 500_000)
	if err != nil {
		t.Fatalf("inject: %v", err)
	}

	req := (<-ch).(converter.AddReserveRequest)
	if req.Caller != "owner" || req.Token != "usd" || req.Weight != 500_000 {
		t.Errorf("request: got %+v", req)
	}
	if req.Source() != ingestion.GRPCOrigin {
		t.Errorf("origin: got %s, want %s", req.Source(), ingestion.GRPCOrigin)
	}
	if req.RequestID().String() == "00000000-0000-0000-0000-000000000000" {
		t.Error("request id not assigned")
	}
}

func TestInjectAddReserve_WeightValidation(t *testing.T) {
	ch := make(chan converter.Request, 1)
	svc := ingestion.NewGRPCIngestService(ch)

	if err := svc.InjectAddReserve(context.Background(), "owner", "usd", 0); err == nil {
		t.Error("zero weight accepted")
	}
	if err := svc.InjectAddReserve(context.Background(), "owner", "usd", reserve.WeightResolution+1); err == nil {
		t.Error("weight above resolution accepted")
	}
	if len(ch) != 0 {
		t.Errorf("rejected request reached the channel")
	}
}

func TestInjectConvert(t *testing.T) {
	ch := make(chan converter.Request, 1)
	svc := ingestion.NewGRPCIngestService(ch)

	err := svc.InjectConvert(context.Background(),
		"network", "alice", "bob", "usd", "smart",
		uint256.NewInt(100), nil, nil)
	if err != nil {
		t.Fatalf("inject: %v", err)
	}

	req := (<-ch).(converter.ConvertRequest)
	if req.SourceToken != "usd" || req.TargetToken != "smart" {
		t.Errorf("tokens: got %s/%s", req.SourceToken, req.TargetToken)
	}
	if !req.Amount.Eq(uint256.NewInt(100)) {
		t.Errorf("amount: got %s", req.Amount)
	}
	// Unset optional amounts default to explicit zeros.
	if req.MinReturn == nil || !req.MinReturn.IsZero() {
		t.Errorf("min return: got %v", req.MinReturn)
	}

	if err := svc.InjectConvert(context.Background(),
		"network", "alice", "bob", "usd", "smart", nil, nil, nil); err == nil {
		t.Error("nil amount accepted")
	}
}

func TestInject_CancelledContext(t *testing.T) {
	ch := make(chan converter.Request) // no reader, injection must not block
	svc := ingestion.NewGRPCIngestService(ch)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := svc.InjectSetFee(ctx, "owner", 100); err != context.Canceled {
		t.Errorf("got %v, want context.Canceled", err)
	}
	if err := svc.InjectAcceptOwnership(ctx, "owner"); err != context.Canceled {
		t.Errorf("got %v, want context.Canceled", err)
	}
}
