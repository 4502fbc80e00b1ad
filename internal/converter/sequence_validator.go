package converter

import (
	"fmt"
)

// SequenceValidator validates source sequences per origin partition.
// Not thread-safe — only accessed from the single-threaded engine loop.
type SequenceValidator struct {
	expectedNextSeq map[string]int64 // origin -> next expected sequence
	metrics         *SequenceMetrics
}

func NewSequenceValidator() *SequenceValidator {
	return &SequenceValidator{
		expectedNextSeq: make(map[string]int64),
		metrics:         NewSequenceMetrics(),
	}
}

// ValidateSequence checks source-sequence ordering for one origin.
func (sv *SequenceValidator) ValidateSequence(
	origin string,
	sourceSequence int64,
	isDuplicate bool,
) error {
	expected := sv.expectedNextSeq[origin]

	if sourceSequence < expected {
		if isDuplicate {
			// Already processed, redelivery is expected
			return nil
		}
		// Out-of-order delivery of a NEW request
		sv.metrics.RecordOutOfOrder(origin)
		return fmt.Errorf("out-of-order request: origin=%s, expected=%d, got=%d",
			origin, expected, sourceSequence)
	}

	if sourceSequence == expected {
		sv.expectedNextSeq[origin] = expected + 1
		return nil
	}

	// sourceSequence > expected - gap detected
	sv.metrics.RecordGap(origin, expected, sourceSequence)
	return fmt.Errorf("sequence gap: origin=%s, expected=%d, got=%d",
		origin, expected, sourceSequence)
}

// GetExpectedSequence returns the next expected sequence for an origin.
func (sv *SequenceValidator) GetExpectedSequence(origin string) int64 {
	return sv.expectedNextSeq[origin]
}

// SetExpectedSequence initializes an origin's expected sequence (used
// during recovery).
func (sv *SequenceValidator) SetExpectedSequence(origin string, seq int64) {
	sv.expectedNextSeq[origin] = seq
}

// Origins returns every origin the validator has seen, for snapshotting.
func (sv *SequenceValidator) Origins() map[string]int64 {
	out := make(map[string]int64, len(sv.expectedNextSeq))
	for origin, seq := range sv.expectedNextSeq {
		out[origin] = seq
	}
	return out
}

// --- Metrics ---

// SequenceMetrics tracks sequence validation stats.
// Not thread-safe — only accessed from the single-threaded engine loop.
type SequenceMetrics struct {
	gaps       map[string]int64 // origin -> gap count
	outOfOrder map[string]int64 // origin -> out-of-order count
}

func NewSequenceMetrics() *SequenceMetrics {
	return &SequenceMetrics{
		gaps:       make(map[string]int64),
		outOfOrder: make(map[string]int64),
	}
}

func (m *SequenceMetrics) RecordGap(origin string, expected, got int64) {
	m.gaps[origin]++
}

func (m *SequenceMetrics) RecordOutOfOrder(origin string) {
	m.outOfOrder[origin]++
}

func (m *SequenceMetrics) GetGaps(origin string) int64 {
	return m.gaps[origin]
}

func (m *SequenceMetrics) GetOutOfOrder(origin string) int64 {
	return m.outOfOrder[origin]
}
