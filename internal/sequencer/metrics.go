package sequencer

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "sequencer"

// Metrics records block build/publish outcomes, per-phase deadline
// buffers, tree-insertion timings, and attestation-collection duration,
// in the teacher's registration style (snow/networking/sender/sender.go
// and snow/networking/router/handler.go both build named
// prometheus.Counter/Histogram sets at Initialize time).
type Metrics struct {
	publishedBlocks           prometheus.Counter
	publishedBlockDurationMs  prometheus.Histogram
	failedBlocks              prometheus.Counter
	treeInsertionMicroseconds prometheus.Histogram
	stateTransitionBufferMs   *prometheus.HistogramVec
	collectingAttestationsMs  prometheus.Histogram
}

// NewMetrics registers the sequencer's metrics against reg. Passing a
// fresh prometheus.NewRegistry() per Sequencer is the teacher's pattern
// for avoiding collisions across multiple chains/instances in one
// process (snow/networking/sender.Initialize takes its own Registerer).
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		publishedBlocks: factory.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "published_blocks_total",
			Help:      "Number of L2 blocks successfully published to the rollup contract.",
		}),
		publishedBlockDurationMs: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "published_block_duration_ms",
			Help:      "Wall-clock duration, in milliseconds, of a successful block build+publish.",
			Buckets:   prometheus.ExponentialBuckets(10, 2, 12),
		}),
		failedBlocks: factory.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "failed_blocks_total",
			Help:      "Number of block build attempts that failed for a reason other than a timing abort.",
		}),
		treeInsertionMicroseconds: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "block_builder_tree_insertion_microseconds",
			Help:      "Duration of the block builder's AddTxs call, in microseconds.",
			Buckets:   prometheus.ExponentialBuckets(50, 2, 14),
		}),
		stateTransitionBufferMs: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "state_transition_buffer_ms",
			Help:      "Milliseconds of slack between a restricted transition's deadline and the time it occurred.",
			Buckets:   prometheus.LinearBuckets(-2000, 250, 20),
		}, []string{"phase"}),
		collectingAttestationsMs: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "collecting_attestations_ms",
			Help:      "Duration of a single attestation-collection call.",
			Buckets:   prometheus.ExponentialBuckets(10, 2, 12),
		}),
	}
}

func (m *Metrics) publishedBlock(durationMs float64) {
	m.publishedBlocks.Inc()
	m.publishedBlockDurationMs.Observe(durationMs)
}

func (m *Metrics) failedBlock() {
	m.failedBlocks.Inc()
}

func (m *Metrics) blockBuilderTreeInsertions(microseconds float64) {
	m.treeInsertionMicroseconds.Observe(microseconds)
}

func (m *Metrics) stateTransitionBuffer(bufferMs float64, phase Phase) {
	m.stateTransitionBufferMs.WithLabelValues(phase.String()).Observe(bufferMs)
}

// attestationTimer returns a function that records an elapsed duration,
// in milliseconds, measured by the caller.
func (m *Metrics) attestationTimer() func(elapsedMs float64) {
	return func(elapsedMs float64) {
		m.collectingAttestationsMs.Observe(elapsedMs)
	}
}
