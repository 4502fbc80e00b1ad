package ingestion

import (
	"context"
	"fmt"
	"time"

	"SmartSwap/internal/converter"
	"SmartSwap/internal/reserve"
	"SmartSwap/internal/token"

	"github.com/google/uuid"
	"github.com/holiman/uint256"
)

// GRPCOrigin is the ordering partition assigned to requests injected over
// gRPC. Admin-injected requests use the wall-clock microsecond timestamp
// as their source sequence, so the partition must be separate from the
// NATS producers.
const GRPCOrigin = "grpc-admin"

// GRPCIngestService provides admin/manual request injection via gRPC.
// It is for governance operations and operator intervention, not for
// high-throughput ingestion (use NATS for that).
type GRPCIngestService struct {
	requestChan chan<- converter.Request
}

func NewGRPCIngestService(requestChan chan<- converter.Request) *GRPCIngestService {
	return &GRPCIngestService{requestChan: requestChan}
}

// RequestChan exposes the injection channel so the gRPC transport layer
// can submit fully parsed requests on the same path.
func (s *GRPCIngestService) RequestChan() chan<- converter.Request {
	return s.requestChan
}

func adminBase() converter.Base {
	now := time.Now()
	return converter.Base{
		ID:        uuid.New(),
		Origin:    GRPCOrigin,
		Sequence:  now.UnixMicro(),
		Timestamp: now,
	}
}

// InjectAddReserve manually injects an AddReserve request.
func (s *GRPCIngestService) InjectAddReserve(
	ctx context.Context,
	caller token.Address,
	tok token.Address,
	weight uint32,
) error {
	if weight == 0 || weight > reserve.WeightResolution {
		return fmt.Errorf("weight must be in (0, %d]", reserve.WeightResolution)
	}

	req := converter.AddReserveRequest{
		Base:   adminBase(),
		Caller: caller,
		Token:  tok,
		Weight: weight,
	}

	select {
	case s.requestChan <- req:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// InjectSetFee manually injects a SetFee request.
func (s *GRPCIngestService) InjectSetFee(
	ctx context.Context,
	caller token.Address,
	fee uint32,
) error {
	req := converter.SetFeeRequest{
		Base:   adminBase(),
		Caller: caller,
		Fee:    fee,
	}

	select {
	case s.requestChan <- req:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// InjectAcceptOwnership manually injects the activation handshake.
func (s *GRPCIngestService) InjectAcceptOwnership(
	ctx context.Context,
	caller token.Address,
) error {
	req := converter.AcceptOwnershipRequest{
		Base:   adminBase(),
		Caller: caller,
	}

	select {
	case s.requestChan <- req:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// InjectConvert manually injects a conversion, for operator testing on
// non-production deployments.
func (s *GRPCIngestService) InjectConvert(
	ctx context.Context,
	caller, trader, beneficiary token.Address,
	source, target token.Address,
	amount, minReturn, value *uint256.Int,
) error {
	if amount == nil || amount.IsZero() {
		return fmt.Errorf("amount must be positive")
	}
	if minReturn == nil {
		minReturn = uint256.NewInt(0)
	}
	if value == nil {
		value = uint256.NewInt(0)
	}

	req := converter.ConvertRequest{
		Base:        adminBase(),
		Caller:      caller,
		Trader:      trader,
		Beneficiary: beneficiary,
		SourceToken: source,
		TargetToken: target,
		Amount:      amount,
		MinReturn:   minReturn,
		Value:       value,
	}

	select {
	case s.requestChan <- req:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
