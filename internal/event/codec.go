package event

import (
	"encoding/json"
	"fmt"
)

// TypeFromString is the inverse of Type.String, used when reloading the
// event log.
func TypeFromString(s string) (Type, error) {
	switch s {
	case "Conversion":
		return TypeConversion, nil
	case "PriceDataUpdate":
		return TypePriceDataUpdate, nil
	case "LiquidityAdded":
		return TypeLiquidityAdded, nil
	case "LiquidityRemoved":
		return TypeLiquidityRemoved, nil
	case "ConversionFeeUpdate":
		return TypeConversionFeeUpdate, nil
	case "ReserveAdded":
		return TypeReserveAdded, nil
	case "OwnershipAccepted":
		return TypeOwnershipAccepted, nil
	default:
		return TypeUnknown, fmt.Errorf("unknown event type %q", s)
	}
}

// DecodePayload unmarshals a logged payload back into its typed struct.
func DecodePayload(typ Type, data []byte) (interface{}, error) {
	var payload interface{}
	switch typ {
	case TypeConversion:
		payload = &Conversion{}
	case TypePriceDataUpdate:
		payload = &PriceDataUpdate{}
	case TypeLiquidityAdded:
		payload = &LiquidityAdded{}
	case TypeLiquidityRemoved:
		payload = &LiquidityRemoved{}
	case TypeConversionFeeUpdate:
		payload = &ConversionFeeUpdate{}
	case TypeReserveAdded:
		payload = &ReserveAdded{}
	case TypeOwnershipAccepted:
		payload = &OwnershipAccepted{}
	default:
		return nil, fmt.Errorf("cannot decode event type %d", typ)
	}
	if err := json.Unmarshal(data, payload); err != nil {
		return nil, fmt.Errorf("decode %s payload: %w", typ, err)
	}
	return payload, nil
}
