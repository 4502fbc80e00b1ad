package event_test

import (
	"encoding/json"
	"math/big"
	"testing"

	"SmartSwap/internal/event"

	"github.com/holiman/uint256"
)

func TestTypeFromString_RoundTrip(t *testing.T) {
	types := []event.Type{
		event.TypeConversion,
		event.TypePriceDataUpdate,
		event.TypeLiquidityAdded,
		event.TypeLiquidityRemoved,
		event.TypeConversionFeeUpdate,
		event.TypeReserveAdded,
		event.TypeOwnershipAccepted,
	}
	for _, typ := range types {
		got, err := event.TypeFromString(typ.String())
		if err != nil {
			t.Errorf("%s: %v", typ, err)
		}
		if got != typ {
			t.Errorf("%s: round-tripped to %s", typ, got)
		}
	}

	if _, err := event.TypeFromString("Nonsense"); err == nil {
		t.Error("unknown type name accepted")
	}
}

func TestDecodePayload_Conversion(t *testing.T) {
	src := &event.Conversion{
		SourceToken: "usd",
		TargetToken: "smart",
		Trader:      "alice",
		Beneficiary: "bob",
		AmountIn:    uint256.NewInt(1000),
		AmountOut:   uint256.NewInt(970),
		Fee:         big.NewInt(30),
	}
	data, err := json.Marshal(src)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	decoded, err := event.DecodePayload(event.TypeConversion, data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	conv, ok := decoded.(*event.Conversion)
	if !ok {
		t.Fatalf("got %T, want *Conversion", decoded)
	}
	if conv.SourceToken != "usd" || conv.Trader != "alice" {
		t.Errorf("identity fields: got %+v", conv)
	}
	if !conv.AmountOut.Eq(uint256.NewInt(970)) {
		t.Errorf("amount out: got %s", conv.AmountOut)
	}
	if conv.Fee.Cmp(big.NewInt(30)) != 0 {
		t.Errorf("fee: got %s", conv.Fee)
	}
}

func TestDecodePayload_TypeMismatch(t *testing.T) {
	if _, err := event.DecodePayload(event.TypeUnknown, []byte(`{}`)); err == nil {
		t.Error("unknown type decoded")
	}
	if _, err := event.DecodePayload(event.TypeConversion, []byte(`not json`)); err == nil {
		t.Error("malformed payload decoded")
	}
}
