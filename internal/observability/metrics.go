package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for SmartSwap.
type Metrics struct {
	// --- Engine Processing ---
	EngineRequestsApplied  *prometheus.CounterVec
	EngineRequestsRejected *prometheus.CounterVec
	EngineRequestDuration  *prometheus.HistogramVec
	EngineStateHashDur     prometheus.Histogram
	EngineSequence         prometheus.Gauge

	// --- Conversion Domain ---
	Conversions         *prometheus.CounterVec
	ConversionVolume    *prometheus.CounterVec
	ConversionFees      *prometheus.CounterVec
	ReserveBalance      *prometheus.GaugeVec
	SmartTokenSupply    prometheus.Gauge
	LiquidityOperations *prometheus.CounterVec
	QuoteRequests       *prometheus.CounterVec

	// --- Latency ---
	IngestToApply     *prometheus.HistogramVec
	ApplyToPersist    prometheus.Histogram
	QueryFreshnessLag *prometheus.HistogramVec
	NATSPullLatency   *prometheus.HistogramVec
	PersistBatchDur   prometheus.Histogram
	ProjectionUpdateDur *prometheus.HistogramVec

	// --- Channel & Backpressure ---
	ChannelSize         *prometheus.GaugeVec
	ChannelCapacity     *prometheus.GaugeVec
	ChannelUtilization  *prometheus.GaugeVec
	ProjectionDrops     *prometheus.CounterVec
	PublishDrops        prometheus.Counter
	PersistBackpressure prometheus.Counter

	// --- Idempotency & Ordering ---
	IdempotencyDuplicates *prometheus.CounterVec
	DedupLRUSize          prometheus.Gauge
	DedupLRUEvictions     prometheus.Counter
	DedupTier2Duration    prometheus.Histogram
	RequestSequenceGap    *prometheus.CounterVec
	RequestOutOfOrder     *prometheus.CounterVec

	// --- Persistence ---
	PersistEventsWritten prometheus.Counter
	PersistBatchSize     prometheus.Histogram
	PersistErrors        *prometheus.CounterVec
	PersistRetry         prometheus.Counter
	PersistLastSequence  prometheus.Gauge

	// --- Snapshot ---
	SnapshotTaken     prometheus.Counter
	SnapshotDuration  prometheus.Histogram
	SnapshotSizeBytes prometheus.Gauge
	SnapshotLastSeq   prometheus.Gauge
	ReplayEventsTotal prometheus.Counter
	ReplayDuration    prometheus.Gauge

	// --- Query API ---
	QueryRequestsTotal *prometheus.CounterVec
	QueryDuration      *prometheus.HistogramVec
	QueryErrors        *prometheus.CounterVec
}

// NewMetrics creates and registers all Prometheus metrics.
func NewMetrics() *Metrics {
	latencyBuckets := []float64{
		0.000001, 0.000005, 0.00001, 0.000025, 0.00005,
		0.0001, 0.00025, 0.0005, 0.001, 0.002, 0.005, 0.01,
	}

	ingestBuckets := []float64{
		0.00001, 0.000025, 0.00005, 0.0001, 0.00025,
		0.0005, 0.001, 0.002, 0.005, 0.01,
	}

	return &Metrics{
		// Engine Processing
		EngineRequestsApplied: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "swap_engine_requests_applied_total",
			Help: "Requests successfully applied by the engine",
		}, []string{"request_type"}),

		EngineRequestsRejected: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "swap_engine_requests_rejected_total",
			Help: "Requests rejected (dedup, gap, validation)",
		}, []string{"request_type", "reason"}),

		EngineRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "swap_engine_request_apply_duration_seconds",
			Help:    "Time to apply a single request in the engine",
			Buckets: latencyBuckets,
		}, []string{"request_type"}),

		EngineStateHashDur: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "swap_engine_state_hash_duration_seconds",
			Help:    "Time to compute state hash",
			Buckets: latencyBuckets,
		}),

		EngineSequence: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "swap_engine_sequence",
			Help: "Current global sequence number",
		}),

		// Conversion Domain
		Conversions: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "swap_conversions_total",
			Help: "Conversions executed",
		}, []string{"source", "target"}),

		ConversionVolume: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "swap_conversion_volume",
			Help: "Input volume converted, in source token units",
		}, []string{"source"}),

		ConversionFees: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "swap_conversion_fees_total",
			Help: "Fees retained, in target token units",
		}, []string{"target"}),

		ReserveBalance: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "swap_reserve_balance",
			Help: "Cached reserve balance",
		}, []string{"reserve"}),

		SmartTokenSupply: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "swap_smart_token_supply",
			Help: "Outstanding smart token supply",
		}),

		LiquidityOperations: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "swap_liquidity_operations_total",
			Help: "Fund/liquidate/add/remove liquidity operations",
		}, []string{"operation"}),

		QuoteRequests: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "swap_quote_requests_total",
			Help: "Read-only return quotes served",
		}, []string{"status"}),

		// Latency
		IngestToApply: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "swap_ingest_to_apply_seconds",
			Help:    "NATS receive to engine apply complete",
			Buckets: ingestBuckets,
		}, []string{"request_type"}),

		ApplyToPersist: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "swap_apply_to_persist_seconds",
			Help:    "Engine emit to Postgres commit",
			Buckets: latencyBuckets,
		}),

		QueryFreshnessLag: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "swap_query_freshness_lag_seconds",
			Help:    "Engine sequence minus projection sequence (in time)",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.2, 0.5, 1.0},
		}, []string{"endpoint"}),

		NATSPullLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "swap_nats_pull_latency_seconds",
			Help:    "NATS pull request latency",
			Buckets: ingestBuckets,
		}, []string{"subject"}),

		PersistBatchDur: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "swap_persist_batch_duration_seconds",
			Help:    "Postgres batch write duration",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
		}),

		ProjectionUpdateDur: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "swap_projection_update_duration_seconds",
			Help:    "Projection table update duration",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1},
		}, []string{"projection"}),

		// Channel & Backpressure
		ChannelSize: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "swap_channel_size",
			Help: "Current items in channel",
		}, []string{"name"}),

		ChannelCapacity: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "swap_channel_capacity",
			Help: "Channel capacity (constant)",
		}, []string{"name"}),

		ChannelUtilization: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "swap_channel_utilization",
			Help: "Channel size / capacity (0.0-1.0)",
		}, []string{"name"}),

		ProjectionDrops: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "swap_projection_drops_total",
			Help: "Events dropped due to full projection channel",
		}, []string{"projection"}),

		PublishDrops: promauto.NewCounter(prometheus.CounterOpts{
			Name: "swap_publish_drops_total",
			Help: "Events dropped due to full publish channel",
		}),

		PersistBackpressure: promauto.NewCounter(prometheus.CounterOpts{
			Name: "swap_persist_backpressure_total",
			Help: "Times the engine blocked on the persist channel",
		}),

		// Idempotency & Ordering
		IdempotencyDuplicates: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "swap_idempotency_duplicates_total",
			Help: "Duplicates caught (lru/postgres)",
		}, []string{"request_type", "tier"}),

		DedupLRUSize: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "swap_dedup_lru_size",
			Help: "Current LRU occupancy",
		}),

		DedupLRUEvictions: promauto.NewCounter(prometheus.CounterOpts{
			Name: "swap_dedup_lru_evictions_total",
			Help: "LRU evictions",
		}),

		DedupTier2Duration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "swap_dedup_tier2_duration_seconds",
			Help:    "Postgres dedup lookup latency",
			Buckets: latencyBuckets,
		}),

		RequestSequenceGap: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "swap_request_sequence_gap_total",
			Help: "Source sequence gaps",
		}, []string{"origin"}),

		RequestOutOfOrder: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "swap_request_out_of_order_total",
			Help: "Out-of-order rejections",
		}, []string{"origin"}),

		// Persistence
		PersistEventsWritten: promauto.NewCounter(prometheus.CounterOpts{
			Name: "swap_persist_events_written_total",
			Help: "Events written to Postgres",
		}),

		PersistBatchSize: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "swap_persist_batch_size",
			Help:    "Events per batch",
			Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500},
		}),

		PersistErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "swap_persist_errors_total",
			Help: "Persistence errors",
		}, []string{"error_type"}),

		PersistRetry: promauto.NewCounter(prometheus.CounterOpts{
			Name: "swap_persist_retry_total",
			Help: "Persistence retries",
		}),

		PersistLastSequence: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "swap_persist_last_sequence",
			Help: "Last persisted sequence",
		}),

		// Snapshot
		SnapshotTaken: promauto.NewCounter(prometheus.CounterOpts{
			Name: "swap_snapshot_taken_total",
			Help: "Snapshots created",
		}),

		SnapshotDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "swap_snapshot_duration_seconds",
			Help:    "Snapshot creation time",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1.0, 5.0, 10.0},
		}),

		SnapshotSizeBytes: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "swap_snapshot_size_bytes",
			Help: "Last snapshot size",
		}),

		SnapshotLastSeq: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "swap_snapshot_last_sequence",
			Help: "Sequence of last snapshot",
		}),

		ReplayEventsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "swap_replay_events_total",
			Help: "Events replayed on startup",
		}),

		ReplayDuration: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "swap_replay_duration_seconds",
			Help: "Total replay time",
		}),

		// Query API
		QueryRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "swap_query_requests_total",
			Help: "Query requests",
		}, []string{"endpoint", "status"}),

		QueryDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "swap_query_duration_seconds",
			Help:    "Query latency",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		}, []string{"endpoint"}),

		QueryErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "swap_query_errors_total",
			Help: "Query errors",
		}, []string{"endpoint", "code"}),
	}
}

// SetChannelMetrics updates channel utilization metrics.
func (m *Metrics) SetChannelMetrics(name string, size, capacity int) {
	m.ChannelSize.WithLabelValues(name).Set(float64(size))
	m.ChannelCapacity.WithLabelValues(name).Set(float64(capacity))
	if capacity > 0 {
		m.ChannelUtilization.WithLabelValues(name).Set(float64(size) / float64(capacity))
	}
}
