package converter_test

import (
	"errors"
	"testing"
	"time"

	"SmartSwap/internal/converter"
	"SmartSwap/internal/event"
	"SmartSwap/internal/token"

	"github.com/google/uuid"
)

// processFixture drives engine setup through ProcessRequest so envelopes
// for the configuration phase land in the output channels like they would
// in production.
type processFixture struct {
	eng        *converter.Engine
	bank       *token.Bank
	persist    chan converter.Output
	projection chan converter.Output
	nextSeq    int64
}

func newProcessFixture(t *testing.T) *processFixture {
	t.Helper()

	bank := token.NewBank()
	bank.CreateGoverned(smartToken, ownerAddr)
	gov, err := bank.Governed(smartToken)
	if err != nil {
		t.Fatalf("governed: %v", err)
	}
	if err := gov.TransferOwnership(ownerAddr, engineAddr); err != nil {
		t.Fatalf("transfer ownership: %v", err)
	}
	bank.CreateAsset("usd")
	if err := bank.Mint("usd", engineAddr, u(500)); err != nil {
		t.Fatalf("mint reserve: %v", err)
	}
	if err := bank.Mint(smartToken, trader, u(1000)); err != nil {
		t.Fatalf("mint supply: %v", err)
	}

	f := &processFixture{
		bank:       bank,
		persist:    make(chan converter.Output, 64),
		projection: make(chan converter.Output, 64),
	}
	cfg := converter.Config{EngineAddr: engineAddr, SmartToken: smartToken, Owner: ownerAddr, MaxFee: maxFee}
	resolver := token.StaticResolver{token.RoleNetwork: networkAddr}
	f.eng = converter.New(cfg, bank, nil, resolver, 0, f.persist, f.projection, nil, nil)

	f.process(t, converter.AddReserveRequest{
		Base: f.base(), Caller: ownerAddr, Token: "usd", Weight: 1_000_000,
	})
	f.process(t, converter.AcceptOwnershipRequest{Base: f.base(), Caller: ownerAddr})
	return f
}

// base hands out contiguous per-origin sequences the validator accepts.
func (f *processFixture) base() converter.Base {
	b := converter.Base{
		ID:        uuid.New(),
		Origin:    "test",
		Sequence:  f.nextSeq,
		Timestamp: time.Unix(0, 0).Add(time.Duration(f.nextSeq) * time.Second),
	}
	f.nextSeq++
	return b
}

func (f *processFixture) process(t *testing.T, req converter.Request) {
	t.Helper()
	if err := f.eng.ProcessRequest(req); err != nil {
		t.Fatalf("process %s: %v", req.RequestType(), err)
	}
}

func (f *processFixture) drain() []converter.Output {
	var out []converter.Output
	for {
		select {
		case o := <-f.persist:
			out = append(out, o)
		default:
			return out
		}
	}
}

// ============================================================================
// Test: envelope pipeline
// ============================================================================

func TestProcessRequest_SealsEnvelopeChain(t *testing.T) {
	f := newProcessFixture(t)
	if err := f.bank.Mint("usd", engineAddr, u(50)); err != nil {
		t.Fatalf("deposit: %v", err)
	}

	f.process(t, converter.ConvertRequest{
		Base:        f.base(),
		Caller:      networkAddr,
		Trader:      trader,
		Beneficiary: beneficiary,
		SourceToken: "usd",
		TargetToken: smartToken,
		Amount:      u(50),
	})

	outputs := f.drain()
	// AddReserve, OwnershipAccepted, then Conversion + PriceDataUpdate.
	if len(outputs) != 4 {
		t.Fatalf("outputs: got %d, want 4", len(outputs))
	}

	wantTypes := []event.Type{
		event.TypeReserveAdded,
		event.TypeOwnershipAccepted,
		event.TypeConversion,
		event.TypePriceDataUpdate,
	}
	prevHash := converter.NewStateHasher().GetPrevHash()
	for i, o := range outputs {
		env := o.Envelope
		if env.Sequence != int64(i) {
			t.Errorf("envelope %d: sequence %d", i, env.Sequence)
		}
		if env.Type != wantTypes[i] {
			t.Errorf("envelope %d: type %s, want %s", i, env.Type, wantTypes[i])
		}
		if env.RequestID == "" || env.RequestType == "" {
			t.Errorf("envelope %d: missing request identity", i)
		}
		if env.PrevHash != prevHash {
			t.Errorf("envelope %d: prev hash does not chain", i)
		}
		if env.StateHash == env.PrevHash {
			t.Errorf("envelope %d: state hash equals prev hash", i)
		}
		prevHash = env.StateHash
	}

	if got := f.eng.Sequence(); got != 4 {
		t.Errorf("next sequence: got %d, want 4", got)
	}
}

func TestProcessRequest_ProjectionOutputsMirrorPersistence(t *testing.T) {
	f := newProcessFixture(t)

	persisted := f.drain()
	var projected []converter.Output
	for {
		select {
		case o := <-f.projection:
			projected = append(projected, o)
			continue
		default:
		}
		break
	}

	if len(projected) != len(persisted) {
		t.Fatalf("projection outputs: got %d, want %d", len(projected), len(persisted))
	}
	for i := range persisted {
		if projected[i].Envelope.Sequence != persisted[i].Envelope.Sequence {
			t.Errorf("output %d: projection sequence %d != persisted %d",
				i, projected[i].Envelope.Sequence, persisted[i].Envelope.Sequence)
		}
	}
}

func TestProcessRequest_DuplicateSkipped(t *testing.T) {
	f := newProcessFixture(t)
	if err := f.bank.Mint("usd", engineAddr, u(50)); err != nil {
		t.Fatalf("deposit: %v", err)
	}

	req := converter.ConvertRequest{
		Base:        f.base(),
		Caller:      networkAddr,
		Trader:      trader,
		Beneficiary: beneficiary,
		SourceToken: "usd",
		TargetToken: smartToken,
		Amount:      u(50),
	}
	f.process(t, req)
	f.drain()
	seqBefore := f.eng.Sequence()

	// Redelivery: same request id, same source sequence.
	f.process(t, req)

	if outputs := f.drain(); len(outputs) != 0 {
		t.Errorf("duplicate produced %d outputs", len(outputs))
	}
	if got := f.eng.Sequence(); got != seqBefore {
		t.Errorf("duplicate advanced sequence: %d -> %d", seqBefore, got)
	}
	if got := smartBalance(t, f.bank, beneficiary); !got.Eq(u(100)) {
		t.Errorf("beneficiary: got %s, want 100 (single application)", got)
	}
}

func TestProcessRequest_SequenceGapRejected(t *testing.T) {
	f := newProcessFixture(t)
	f.drain()

	req := converter.SetFeeRequest{Base: f.base(), Caller: ownerAddr, Fee: 100}
	req.Sequence += 10 // simulate missing upstream messages

	if err := f.eng.ProcessRequest(req); err == nil {
		t.Fatal("sequence gap accepted")
	}
	if outputs := f.drain(); len(outputs) != 0 {
		t.Errorf("gapped request produced %d outputs", len(outputs))
	}
	if got := f.eng.Fee(); got != 0 {
		t.Errorf("gapped request mutated fee: %d", got)
	}
}

func TestProcessRequest_RejectedDispatchLeavesStateUntouched(t *testing.T) {
	f := newProcessFixture(t)
	f.drain()
	seqBefore := f.eng.Sequence()

	err := f.eng.ProcessRequest(converter.ConvertRequest{
		Base:        f.base(),
		Caller:      networkAddr,
		Trader:      trader,
		Beneficiary: beneficiary,
		SourceToken: "mystery",
		TargetToken: smartToken,
		Amount:      u(50),
	})
	if !errors.Is(err, converter.ErrInvalidToken) {
		t.Fatalf("got %v, want ErrInvalidToken", err)
	}
	if outputs := f.drain(); len(outputs) != 0 {
		t.Errorf("rejected request produced %d outputs", len(outputs))
	}
	if got := f.eng.Sequence(); got != seqBefore {
		t.Errorf("rejected request advanced sequence: %d -> %d", seqBefore, got)
	}
}

// ============================================================================
// Test: replay
// ============================================================================

func TestReplayEnvelope_RebuildsState(t *testing.T) {
	f := newProcessFixture(t)
	if err := f.bank.Mint("usd", engineAddr, u(50)); err != nil {
		t.Fatalf("deposit: %v", err)
	}
	f.process(t, converter.SetFeeRequest{Base: f.base(), Caller: ownerAddr, Fee: 100})
	f.process(t, converter.ConvertRequest{
		Base:        f.base(),
		Caller:      networkAddr,
		Trader:      trader,
		Beneficiary: beneficiary,
		SourceToken: "usd",
		TargetToken: smartToken,
		Amount:      u(50),
	})
	outputs := f.drain()

	// A cold engine fed the log arrives at the same state.
	cfg := converter.Config{EngineAddr: engineAddr, SmartToken: smartToken, Owner: ownerAddr, MaxFee: maxFee}
	resolver := token.StaticResolver{token.RoleNetwork: networkAddr}
	replayed := converter.New(cfg, token.NewBank(), nil, resolver, 0, nil, nil, nil, nil)

	var lastSupply string
	for _, o := range outputs {
		supply, err := replayed.ReplayEnvelope(o.Envelope)
		if err != nil {
			t.Fatalf("replay sequence %d: %v", o.Envelope.Sequence, err)
		}
		if supply != nil {
			lastSupply = supply.Dec()
		}
	}

	last := outputs[len(outputs)-1].Envelope
	if got := replayed.Sequence(); got != last.Sequence+1 {
		t.Errorf("sequence: got %d, want %d", got, last.Sequence+1)
	}
	if !replayed.Active() {
		t.Error("replayed engine should be active")
	}
	if got := replayed.Fee(); got != 100 {
		t.Errorf("fee: got %d, want 100", got)
	}
	if got, _ := replayed.Registry().BalanceOf("usd"); !got.Eq(u(550)) {
		t.Errorf("usd cache: got %s, want 550", got)
	}
	// Fee 100 ppm on raw 100: trader keeps 99, supply 1099.
	if lastSupply != "1099" {
		t.Errorf("replayed supply: got %s, want 1099", lastSupply)
	}
}

func TestReplayEnvelope_RoundTripsEncodedPayloads(t *testing.T) {
	f := newProcessFixture(t)
	outputs := f.drain()

	for _, o := range outputs {
		decoded, err := event.DecodePayload(o.Envelope.Type, o.Envelope.Payload)
		if err != nil {
			t.Fatalf("decode %s: %v", o.Envelope.Type, err)
		}
		if decoded == nil {
			t.Fatalf("decode %s: nil payload", o.Envelope.Type)
		}
	}
}
