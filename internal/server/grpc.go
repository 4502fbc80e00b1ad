package server

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"net/http"
	"time"

	"SmartSwap/internal/converter"
	"SmartSwap/internal/ingestion"
	"SmartSwap/internal/observability"
	"SmartSwap/internal/persistence"
	"SmartSwap/internal/projection"
	"SmartSwap/internal/query"
	"SmartSwap/internal/token"

	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/holiman/uint256"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	adminv1 "SmartSwap/gen/go/smartswap/admin/v1"
	ingestv1 "SmartSwap/gen/go/smartswap/ingest/v1"
	queryv1 "SmartSwap/gen/go/smartswap/query/v1"
)

// quoteTimeout bounds how long a gateway quote waits for the engine loop.
const quoteTimeout = 2 * time.Second

// GRPCServer wraps the gRPC server and gRPC-Gateway HTTP mux.
type GRPCServer struct {
	grpcServer    *grpc.Server
	httpServer    *http.Server
	grpcAddr      string
	httpAddr      string
	healthChecker *observability.HealthChecker
	log           zerolog.Logger
}

// ServerDeps holds all dependencies needed by the gRPC services.
type ServerDeps struct {
	DB            *sql.DB
	QueryService  *query.Service
	IngestService *ingestion.GRPCIngestService
	SnapshotMgr   *persistence.SnapshotManager
	QuoteChan     chan<- converter.QuoteRequest
	Metrics       *observability.Metrics
	HealthChecker *observability.HealthChecker
	StartTime     time.Time
}

// NewGRPCServer creates a new gRPC server with all services registered.
func NewGRPCServer(grpcAddr, httpAddr string, deps *ServerDeps) *GRPCServer {
	grpcServer := grpc.NewServer()

	queryv1.RegisterQueryServiceServer(grpcServer, &queryServiceImpl{
		qs:        deps.QueryService,
		quoteChan: deps.QuoteChan,
		metrics:   deps.Metrics,
	})
	ingestv1.RegisterIngestServiceServer(grpcServer, &ingestServiceImpl{
		svc: deps.IngestService,
	})
	adminv1.RegisterAdminServiceServer(grpcServer, &adminServiceImpl{
		db:           deps.DB,
		svc:          deps.IngestService,
		snapMgr:      deps.SnapshotMgr,
		queryService: deps.QueryService,
		metrics:      deps.Metrics,
		startTime:    deps.StartTime,
	})

	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	// Reflection for grpcurl / grpcui
	reflection.Register(grpcServer)

	return &GRPCServer{
		grpcServer:    grpcServer,
		grpcAddr:      grpcAddr,
		httpAddr:      httpAddr,
		healthChecker: deps.HealthChecker,
		log:           observability.NewLogger("server"),
	}
}

// StartGRPC starts the gRPC server (blocking).
func (s *GRPCServer) StartGRPC(ctx context.Context) error {
	lis, err := net.Listen("tcp", s.grpcAddr)
	if err != nil {
		return fmt.Errorf("grpc listen: %w", err)
	}

	go func() {
		<-ctx.Done()
		s.log.Info().Msg("gRPC server shutting down")
		s.grpcServer.GracefulStop()
	}()

	s.log.Info().Str("addr", s.grpcAddr).Msg("gRPC server listening")
	return s.grpcServer.Serve(lis)
}

// StartHTTPGateway starts the gRPC-Gateway HTTP reverse proxy (blocking).
// HTTP/JSON is served for tooling, dashboards and curl; gRPC is the
// primary surface.
func (s *GRPCServer) StartHTTPGateway(ctx context.Context) error {
	mux := runtime.NewServeMux()

	opts := []grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}

	if err := queryv1.RegisterQueryServiceHandlerFromEndpoint(ctx, mux, s.grpcAddr, opts); err != nil {
		return fmt.Errorf("register query gateway: %w", err)
	}
	if err := ingestv1.RegisterIngestServiceHandlerFromEndpoint(ctx, mux, s.grpcAddr, opts); err != nil {
		return fmt.Errorf("register ingest gateway: %w", err)
	}
	if err := adminv1.RegisterAdminServiceHandlerFromEndpoint(ctx, mux, s.grpcAddr, opts); err != nil {
		return fmt.Errorf("register admin gateway: %w", err)
	}

	httpMux := http.NewServeMux()
	httpMux.Handle("/metrics", promhttp.Handler())
	if s.healthChecker != nil {
		httpMux.HandleFunc("/healthz", s.healthChecker.LivenessHandler)
		httpMux.HandleFunc("/readyz", s.healthChecker.ReadinessHandler)
	} else {
		httpMux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			fmt.Fprintf(w, `{"status":"ok"}`)
		})
	}
	httpMux.Handle("/", mux)

	s.httpServer = &http.Server{
		Addr:    s.httpAddr,
		Handler: httpMux,
	}

	go func() {
		<-ctx.Done()
		s.log.Info().Msg("HTTP gateway shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.httpServer.Shutdown(shutdownCtx)
	}()

	s.log.Info().
		Str("http_addr", s.httpAddr).
		Str("grpc_addr", s.grpcAddr).
		Msg("HTTP gateway listening")
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// ============================================================================
// QueryService gRPC implementation
// ============================================================================

type queryServiceImpl struct {
	queryv1.UnimplementedQueryServiceServer
	qs        *query.Service
	quoteChan chan<- converter.QuoteRequest
	metrics   *observability.Metrics
}

func (s *queryServiceImpl) GetReserves(ctx context.Context, req *queryv1.GetReservesRequest) (*queryv1.GetReservesResponse, error) {
	reserves, err := s.qs.GetReserves(ctx)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "get reserves: %v", err)
	}

	resp := &queryv1.GetReservesResponse{}
	for _, r := range reserves {
		resp.Reserves = append(resp.Reserves, &queryv1.Reserve{
			Token:       r.Token,
			WeightPpm:   r.Weight,
			Balance:     r.Balance,
			SmartSupply: r.Supply,
		})
		resp.AsOfSequence = r.AsOfSequence
	}
	return resp, nil
}

func (s *queryServiceImpl) GetReserve(ctx context.Context, req *queryv1.GetReserveRequest) (*queryv1.GetReserveResponse, error) {
	if req.Token == "" {
		return nil, status.Error(codes.InvalidArgument, "token is required")
	}

	r, err := s.qs.GetReserve(ctx, req.Token)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "get reserve: %v", err)
	}
	if r == nil {
		return nil, status.Errorf(codes.NotFound, "no reserve for token %s", req.Token)
	}

	return &queryv1.GetReserveResponse{
		Reserve: &queryv1.Reserve{
			Token:       r.Token,
			WeightPpm:   r.Weight,
			Balance:     r.Balance,
			SmartSupply: r.Supply,
		},
		AsOfSequence: r.AsOfSequence,
	}, nil
}

func (s *queryServiceImpl) GetEngineStatus(ctx context.Context, req *queryv1.GetEngineStatusRequest) (*queryv1.GetEngineStatusResponse, error) {
	st, err := s.qs.GetEngineStatus(ctx)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "get engine status: %v", err)
	}

	return &queryv1.GetEngineStatusResponse{
		FeePpm:       st.FeePPM,
		Active:       st.Active,
		AsOfSequence: st.AsOfSequence,
	}, nil
}

func (s *queryServiceImpl) GetReturn(ctx context.Context, req *queryv1.GetReturnRequest) (*queryv1.GetReturnResponse, error) {
	if req.SourceToken == "" || req.TargetToken == "" {
		return nil, status.Error(codes.InvalidArgument, "source_token and target_token are required")
	}

	amount, err := uint256.FromDecimal(req.Amount)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid amount: %v", err)
	}

	quote := converter.QuoteRequest{
		Source: token.Address(req.SourceToken),
		Target: token.Address(req.TargetToken),
		Amount: amount,
		Reply:  make(chan converter.Quote, 1),
	}

	ctx, cancel := context.WithTimeout(ctx, quoteTimeout)
	defer cancel()

	select {
	case s.quoteChan <- quote:
	case <-ctx.Done():
		return nil, status.Error(codes.DeadlineExceeded, "engine busy")
	}

	select {
	case q := <-quote.Reply:
		if q.Err != nil {
			if s.metrics != nil {
				s.metrics.QuoteRequests.WithLabelValues("error").Inc()
			}
			return nil, status.Errorf(codes.FailedPrecondition, "quote: %v", q.Err)
		}
		if s.metrics != nil {
			s.metrics.QuoteRequests.WithLabelValues("ok").Inc()
		}
		return &queryv1.GetReturnResponse{
			Amount: q.Amount.Dec(),
			Fee:    q.Fee.Dec(),
		}, nil
	case <-ctx.Done():
		return nil, status.Error(codes.DeadlineExceeded, "quote timed out")
	}
}

func (s *queryServiceImpl) ListConversions(ctx context.Context, req *queryv1.ListConversionsRequest) (*queryv1.ListConversionsResponse, error) {
	pageSize := int(req.PageSize)
	if pageSize <= 0 || pageSize > 500 {
		pageSize = 100
	}

	var trader *string
	if req.Trader != "" {
		trader = &req.Trader
	}

	var beforeSeq *int64
	if req.BeforeSequence > 0 {
		beforeSeq = &req.BeforeSequence
	}

	history, err := s.qs.GetConversionHistory(ctx, trader, pageSize, beforeSeq)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "get conversions: %v", err)
	}

	resp := &queryv1.ListConversionsResponse{}
	for _, c := range history {
		resp.Conversions = append(resp.Conversions, &queryv1.Conversion{
			Sequence:     c.Sequence,
			SourceToken:  c.SourceToken,
			TargetToken:  c.TargetToken,
			Trader:       c.Trader,
			Beneficiary:  c.Beneficiary,
			AmountIn:     c.AmountIn,
			AmountOut:    c.AmountOut,
			Fee:          c.Fee,
			ExecutedAtUs: c.ExecutedAt.UnixMicro(),
		})
		resp.AsOfSequence = c.AsOfSequence
	}
	return resp, nil
}

func (s *queryServiceImpl) ListLiquidityEvents(ctx context.Context, req *queryv1.ListLiquidityEventsRequest) (*queryv1.ListLiquidityEventsResponse, error) {
	pageSize := int(req.PageSize)
	if pageSize <= 0 || pageSize > 500 {
		pageSize = 100
	}

	var provider *string
	if req.Provider != "" {
		provider = &req.Provider
	}

	var beforeSeq *int64
	if req.BeforeSequence > 0 {
		beforeSeq = &req.BeforeSequence
	}

	events, err := s.qs.GetLiquidityHistory(ctx, provider, pageSize, beforeSeq)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "get liquidity events: %v", err)
	}

	resp := &queryv1.ListLiquidityEventsResponse{}
	for _, e := range events {
		resp.Events = append(resp.Events, &queryv1.LiquidityEvent{
			Sequence:     e.Sequence,
			Kind:         e.Kind,
			Provider:     e.Provider,
			Reserve:      e.Reserve,
			Amount:       e.Amount,
			NewBalance:   e.NewBalance,
			NewSupply:    e.NewSupply,
			ExecutedAtUs: e.ExecutedAt.UnixMicro(),
		})
		resp.AsOfSequence = e.AsOfSequence
	}
	return resp, nil
}

// ============================================================================
// IngestService gRPC implementation
// ============================================================================

type ingestServiceImpl struct {
	ingestv1.UnimplementedIngestServiceServer
	svc *ingestion.GRPCIngestService
}

func (s *ingestServiceImpl) SubmitRequest(ctx context.Context, req *ingestv1.SubmitRequestRequest) (*ingestv1.SubmitRequestResponse, error) {
	if req.RequestType == "" {
		return nil, status.Error(codes.InvalidArgument, "request_type is required")
	}
	if len(req.Payload) == 0 {
		return nil, status.Error(codes.InvalidArgument, "payload is required")
	}

	raw := ingestion.RawRequest{
		Subject:     "grpc",
		RequestType: req.RequestType,
		Data:        req.Payload,
		Received:    time.Now(),
	}

	parsed, err := ingestion.ParseRawRequest(raw)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "parse payload: %v", err)
	}

	// Inject into the request channel (same path as the NATS consumers)
	select {
	case s.svc.RequestChan() <- parsed:
		return &ingestv1.SubmitRequestResponse{
			Accepted:  true,
			RequestId: parsed.RequestID().String(),
		}, nil
	case <-ctx.Done():
		return nil, status.Error(codes.DeadlineExceeded, "context cancelled")
	}
}

// ============================================================================
// AdminService gRPC implementation
// ============================================================================

type adminServiceImpl struct {
	adminv1.UnimplementedAdminServiceServer
	db           *sql.DB
	svc          *ingestion.GRPCIngestService
	snapMgr      *persistence.SnapshotManager
	queryService *query.Service
	metrics      *observability.Metrics
	startTime    time.Time
}

func (s *adminServiceImpl) AddReserve(ctx context.Context, req *adminv1.AddReserveRequest) (*adminv1.AddReserveResponse, error) {
	if req.Caller == "" || req.Token == "" {
		return nil, status.Error(codes.InvalidArgument, "caller and token are required")
	}

	err := s.svc.InjectAddReserve(ctx, token.Address(req.Caller), token.Address(req.Token), req.WeightPpm)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "inject add reserve: %v", err)
	}
	return &adminv1.AddReserveResponse{Accepted: true}, nil
}

func (s *adminServiceImpl) SetConversionFee(ctx context.Context, req *adminv1.SetConversionFeeRequest) (*adminv1.SetConversionFeeResponse, error) {
	if req.Caller == "" {
		return nil, status.Error(codes.InvalidArgument, "caller is required")
	}

	if err := s.svc.InjectSetFee(ctx, token.Address(req.Caller), req.FeePpm); err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "inject set fee: %v", err)
	}
	return &adminv1.SetConversionFeeResponse{Accepted: true}, nil
}

func (s *adminServiceImpl) AcceptTokenOwnership(ctx context.Context, req *adminv1.AcceptTokenOwnershipRequest) (*adminv1.AcceptTokenOwnershipResponse, error) {
	if req.Caller == "" {
		return nil, status.Error(codes.InvalidArgument, "caller is required")
	}

	if err := s.svc.InjectAcceptOwnership(ctx, token.Address(req.Caller)); err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "inject accept ownership: %v", err)
	}
	return &adminv1.AcceptTokenOwnershipResponse{Accepted: true}, nil
}

func (s *adminServiceImpl) RebuildProjections(ctx context.Context, req *adminv1.RebuildProjectionsRequest) (*adminv1.RebuildProjectionsResponse, error) {
	if err := projection.Rebuild(ctx, s.db, s.metrics); err != nil {
		return nil, status.Errorf(codes.Internal, "rebuild failed: %v", err)
	}
	return &adminv1.RebuildProjectionsResponse{Started: true}, nil
}

func (s *adminServiceImpl) GetEventLogInfo(ctx context.Context, req *adminv1.GetEventLogInfoRequest) (*adminv1.GetEventLogInfoResponse, error) {
	latestSeq, err := s.snapMgr.GetLatestSequence(ctx)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "get latest sequence: %v", err)
	}

	return &adminv1.GetEventLogInfoResponse{
		LastSequence: latestSeq,
	}, nil
}

func (s *adminServiceImpl) VerifyIntegrity(ctx context.Context, req *adminv1.VerifyIntegrityRequest) (*adminv1.VerifyIntegrityResponse, error) {
	report, err := s.queryService.VerifyIntegrity(ctx)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "verify integrity: %v", err)
	}

	resp := &adminv1.VerifyIntegrityResponse{
		Passed: report.IsHealthy,
	}

	if !report.IsHealthy {
		if len(report.HashChainBreaks) > 0 {
			resp.FirstBreakSequence = report.HashChainBreaks[0]
		}
		resp.ErrorDetail = fmt.Sprintf("%d hash chain breaks, weight overflow: %v",
			len(report.HashChainBreaks), report.WeightOverflow)
	}

	return resp, nil
}
