package ingestion

import (
	"encoding/json"
	"fmt"
	"time"

	"SmartSwap/internal/converter"
	"SmartSwap/internal/token"

	"github.com/google/uuid"
	"github.com/holiman/uint256"
)

// ParseRawRequest converts a RawRequest (JSON bytes + request type string)
// into a typed converter request. The shell validates and parses before
// anything reaches the engine loop.
func ParseRawRequest(raw RawRequest) (converter.Request, error) {
	switch raw.RequestType {
	case "Convert":
		return parseConvert(raw.Data)
	case "Fund":
		return parseFund(raw.Data)
	case "Liquidate":
		return parseLiquidate(raw.Data)
	case "AddLiquidity":
		return parseAddLiquidity(raw.Data)
	case "RemoveLiquidity":
		return parseRemoveLiquidity(raw.Data)
	case "AddReserve":
		return parseAddReserve(raw.Data)
	case "SetFee":
		return parseSetFee(raw.Data)
	case "AcceptOwnership":
		return parseAcceptOwnership(raw.Data)
	default:
		return nil, fmt.Errorf("unknown request type: %s", raw.RequestType)
	}
}

// --- JSON wire formats ---
// Field names use snake_case to match upstream producers. Amounts are
// decimal strings; 256-bit values do not survive JSON numbers.

type baseJSON struct {
	RequestID   string `json:"request_id"`
	Origin      string `json:"origin"`
	Sequence    int64  `json:"sequence"`
	TimestampUs int64  `json:"timestamp_us"`
}

func parseBase(j baseJSON) (converter.Base, error) {
	id, err := uuid.Parse(j.RequestID)
	if err != nil {
		return converter.Base{}, fmt.Errorf("parse request_id: %w", err)
	}
	if j.Origin == "" {
		return converter.Base{}, fmt.Errorf("missing origin")
	}
	return converter.Base{
		ID:        id,
		Origin:    j.Origin,
		Sequence:  j.Sequence,
		Timestamp: time.UnixMicro(j.TimestampUs),
	}, nil
}

func parseAmount(s, field string) (*uint256.Int, error) {
	if s == "" {
		return nil, fmt.Errorf("missing %s", field)
	}
	v, err := uint256.FromDecimal(s)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", field, err)
	}
	return v, nil
}

func parseOptionalAmount(s, field string) (*uint256.Int, error) {
	if s == "" {
		return nil, nil
	}
	return parseAmount(s, field)
}

type convertJSON struct {
	baseJSON
	Caller      string `json:"caller"`
	Trader      string `json:"trader"`
	Beneficiary string `json:"beneficiary"`
	SourceToken string `json:"source_token"`
	TargetToken string `json:"target_token"`
	Amount      string `json:"amount"`
	MinReturn   string `json:"min_return,omitempty"`
	Value       string `json:"value,omitempty"`
}

func parseConvert(data []byte) (converter.Request, error) {
	var j convertJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, fmt.Errorf("parse Convert: %w", err)
	}
	base, err := parseBase(j.baseJSON)
	if err != nil {
		return nil, err
	}
	amount, err := parseAmount(j.Amount, "amount")
	if err != nil {
		return nil, err
	}
	minReturn, err := parseOptionalAmount(j.MinReturn, "min_return")
	if err != nil {
		return nil, err
	}
	value, err := parseOptionalAmount(j.Value, "value")
	if err != nil {
		return nil, err
	}
	return converter.ConvertRequest{
		Base:        base,
		Caller:      token.Address(j.Caller),
		Trader:      token.Address(j.Trader),
		Beneficiary: token.Address(j.Beneficiary),
		SourceToken: token.Address(j.SourceToken),
		TargetToken: token.Address(j.TargetToken),
		Amount:      amount,
		MinReturn:   minReturn,
		Value:       value,
	}, nil
}

type fundJSON struct {
	baseJSON
	Provider string `json:"provider"`
	Amount   string `json:"amount"`
	Value    string `json:"value,omitempty"`
}

func parseFund(data []byte) (converter.Request, error) {
	var j fundJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, fmt.Errorf("parse Fund: %w", err)
	}
	base, err := parseBase(j.baseJSON)
	if err != nil {
		return nil, err
	}
	amount, err := parseAmount(j.Amount, "amount")
	if err != nil {
		return nil, err
	}
	value, err := parseOptionalAmount(j.Value, "value")
	if err != nil {
		return nil, err
	}
	return converter.FundRequest{
		Base:     base,
		Provider: token.Address(j.Provider),
		Amount:   amount,
		Value:    value,
	}, nil
}

type liquidateJSON struct {
	baseJSON
	Provider string `json:"provider"`
	Amount   string `json:"amount"`
}

func parseLiquidate(data []byte) (converter.Request, error) {
	var j liquidateJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, fmt.Errorf("parse Liquidate: %w", err)
	}
	base, err := parseBase(j.baseJSON)
	if err != nil {
		return nil, err
	}
	amount, err := parseAmount(j.Amount, "amount")
	if err != nil {
		return nil, err
	}
	return converter.LiquidateRequest{
		Base:     base,
		Provider: token.Address(j.Provider),
		Amount:   amount,
	}, nil
}

type addLiquidityJSON struct {
	baseJSON
	Provider  string   `json:"provider"`
	Tokens    []string `json:"tokens"`
	Amounts   []string `json:"amounts"`
	MinReturn string   `json:"min_return,omitempty"`
	Value     string   `json:"value,omitempty"`
}

func parseAddLiquidity(data []byte) (converter.Request, error) {
	var j addLiquidityJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, fmt.Errorf("parse AddLiquidity: %w", err)
	}
	base, err := parseBase(j.baseJSON)
	if err != nil {
		return nil, err
	}
	if len(j.Tokens) != len(j.Amounts) {
		return nil, fmt.Errorf("tokens/amounts length mismatch: %d vs %d", len(j.Tokens), len(j.Amounts))
	}
	tokens := make([]token.Address, len(j.Tokens))
	amounts := make([]*uint256.Int, len(j.Amounts))
	for i := range j.Tokens {
		tokens[i] = token.Address(j.Tokens[i])
		amounts[i], err = parseAmount(j.Amounts[i], fmt.Sprintf("amounts[%d]", i))
		if err != nil {
			return nil, err
		}
	}
	minReturn, err := parseOptionalAmount(j.MinReturn, "min_return")
	if err != nil {
		return nil, err
	}
	value, err := parseOptionalAmount(j.Value, "value")
	if err != nil {
		return nil, err
	}
	return converter.AddLiquidityRequest{
		Base:      base,
		Provider:  token.Address(j.Provider),
		Tokens:    tokens,
		Amounts:   amounts,
		MinReturn: minReturn,
		Value:     value,
	}, nil
}

type removeLiquidityJSON struct {
	baseJSON
	Provider   string   `json:"provider"`
	Amount     string   `json:"amount"`
	Tokens     []string `json:"tokens"`
	MinReturns []string `json:"min_returns"`
}

func parseRemoveLiquidity(data []byte) (converter.Request, error) {
	var j removeLiquidityJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, fmt.Errorf("parse RemoveLiquidity: %w", err)
	}
	base, err := parseBase(j.baseJSON)
	if err != nil {
		return nil, err
	}
	amount, err := parseAmount(j.Amount, "amount")
	if err != nil {
		return nil, err
	}
	if len(j.Tokens) != len(j.MinReturns) {
		return nil, fmt.Errorf("tokens/min_returns length mismatch: %d vs %d", len(j.Tokens), len(j.MinReturns))
	}
	tokens := make([]token.Address, len(j.Tokens))
	minReturns := make([]*uint256.Int, len(j.MinReturns))
	for i := range j.Tokens {
		tokens[i] = token.Address(j.Tokens[i])
		minReturns[i], err = parseAmount(j.MinReturns[i], fmt.Sprintf("min_returns[%d]", i))
		if err != nil {
			return nil, err
		}
	}
	return converter.RemoveLiquidityRequest{
		Base:       base,
		Provider:   token.Address(j.Provider),
		Amount:     amount,
		Tokens:     tokens,
		MinReturns: minReturns,
	}, nil
}

type addReserveJSON struct {
	baseJSON
	Caller string `json:"caller"`
	Token  string `json:"token"`
	Weight uint32 `json:"weight"`
}

func parseAddReserve(data []byte) (converter.Request, error) {
	var j addReserveJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, fmt.Errorf("parse AddReserve: %w", err)
	}
	base, err := parseBase(j.baseJSON)
	if err != nil {
		return nil, err
	}
	if j.Token == "" {
		return nil, fmt.Errorf("missing token")
	}
	return converter.AddReserveRequest{
		Base:   base,
		Caller: token.Address(j.Caller),
		Token:  token.Address(j.Token),
		Weight: j.Weight,
	}, nil
}

type setFeeJSON struct {
	baseJSON
	Caller string `json:"caller"`
	Fee    uint32 `json:"fee"`
}

func parseSetFee(data []byte) (converter.Request, error) {
	var j setFeeJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, fmt.Errorf("parse SetFee: %w", err)
	}
	base, err := parseBase(j.baseJSON)
	if err != nil {
		return nil, err
	}
	return converter.SetFeeRequest{
		Base:   base,
		Caller: token.Address(j.Caller),
		Fee:    j.Fee,
	}, nil
}

type acceptOwnershipJSON struct {
	baseJSON
	Caller string `json:"caller"`
}

func parseAcceptOwnership(data []byte) (converter.Request, error) {
	var j acceptOwnershipJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, fmt.Errorf("parse AcceptOwnership: %w", err)
	}
	base, err := parseBase(j.baseJSON)
	if err != nil {
		return nil, err
	}
	return converter.AcceptOwnershipRequest{
		Base:   base,
		Caller: token.Address(j.Caller),
	}, nil
}
