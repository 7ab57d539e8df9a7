// Package metrics provides Prometheus metrics for the career simulation
// engine.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns all Prometheus metrics for the engine.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Season pipeline metrics.
	playersRepriced prometheus.Counter
	playersRetired  prometheus.Counter
	regensCreated   prometheus.Counter
	skillsDeveloped prometheus.Counter
	chunksProcessed prometheus.Counter
	chunkLatency    prometheus.Histogram

	// Profile cache metrics.
	profileRebuilds       prometheus.Counter
	profileRebuildLatency prometheus.Histogram

	// Store metrics.
	populationSize     prometheus.Gauge
	storeQueryLatency  prometheus.Histogram
	storeCommitLatency prometheus.Histogram

	// Queue and worker metrics.
	queueSize        prometheus.Gauge
	queueCapacity    prometheus.Gauge
	queueUtilization prometheus.Gauge
	queueEnqueues    prometheus.Counter
	queueDequeues    prometheus.Counter
	queueFullDrops   prometheus.Counter
	workerCount      prometheus.Gauge

	// Error counters by component and kind.
	errorsByComponent *prometheus.CounterVec

	// System metrics.
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
	systemGCPauseTime    prometheus.Histogram
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a metrics manager with configuration options.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "careersim",
		subsystem:        "engine",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.playersRepriced = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "players_repriced_total",
		Help: "Players whose financial fields were recomputed",
	})
	m.playersRetired = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "players_retired_total",
		Help: "Players that retired during season processing",
	})
	m.regensCreated = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "regens_created_total",
		Help: "Replacement players generated for retirees",
	})
	m.skillsDeveloped = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "skills_developed_total",
		Help: "Individual skill deltas applied by season development",
	})
	m.chunksProcessed = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "season_chunks_processed_total",
		Help: "Season chunks committed",
	})
	m.chunkLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name:    "season_chunk_duration_milliseconds",
		Help:    "Wall time to process one season chunk",
		Buckets: m.histogramBuckets,
	})

	m.profileRebuilds = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "profile_rebuilds_total",
		Help: "Position profile cache rebuilds",
	})
	m.profileRebuildLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name:    "profile_rebuild_duration_milliseconds",
		Help:    "Wall time to recompute the position profile",
		Buckets: m.histogramBuckets,
	})

	m.populationSize = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "population_size",
		Help: "Players in the population store",
	})
	m.storeQueryLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name:    "store_query_duration_milliseconds",
		Help:    "Population snapshot read latency",
		Buckets: m.histogramBuckets,
	})
	m.storeCommitLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name:    "store_commit_duration_milliseconds",
		Help:    "Chunk commit latency",
		Buckets: m.histogramBuckets,
	})

	m.queueSize = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "queue_size",
		Help: "Season chunks waiting in the queue",
	})
	m.queueCapacity = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "queue_capacity",
		Help: "Configured queue capacity",
	})
	m.queueUtilization = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "queue_utilization",
		Help: "Queue fill ratio 0-1",
	})
	m.queueEnqueues = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "queue_enqueues_total",
		Help: "Chunks enqueued",
	})
	m.queueDequeues = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "queue_dequeues_total",
		Help: "Chunks dequeued",
	})
	m.queueFullDrops = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "queue_full_drops_total",
		Help: "Chunks rejected because the queue was full or closed",
	})
	m.workerCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "worker_count",
		Help: "Season workers running",
	})

	m.errorsByComponent = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "errors_total",
		Help: "Errors by component and kind",
	}, []string{"component", "kind"})

	m.systemMemoryUsage = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace, Subsystem: "system",
		Name: "memory_usage_bytes",
		Help: "Allocated heap bytes",
	})
	m.systemGoroutineCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace, Subsystem: "system",
		Name: "goroutine_count",
		Help: "Live goroutines",
	})
	m.systemGCPauseTime = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace, Subsystem: "system",
		Name:    "gc_pause_milliseconds",
		Help:    "Average GC pause time",
		Buckets: m.histogramBuckets,
	})
}

// RecordPlayerRepriced increments the repriced-players counter.
func RecordPlayerRepriced() { globalManager.playersRepriced.Inc() }

// RecordPlayerRetired increments the retired-players counter.
func RecordPlayerRetired() { globalManager.playersRetired.Inc() }

// RecordRegenCreated increments the regens counter.
func RecordRegenCreated() { globalManager.regensCreated.Inc() }

// RecordSkillsDeveloped adds to the developed-skills counter.
func RecordSkillsDeveloped(n int) { globalManager.skillsDeveloped.Add(float64(n)) }

// RecordChunkProcessed records one committed chunk and its wall time.
func RecordChunkProcessed(latencyMs float64) {
	globalManager.chunksProcessed.Inc()
	globalManager.chunkLatency.Observe(latencyMs)
}

// RecordProfileRebuild records one profile recomputation and its wall time.
func RecordProfileRebuild(latencyMs float64) {
	globalManager.profileRebuilds.Inc()
	globalManager.profileRebuildLatency.Observe(latencyMs)
}

// UpdatePopulationSize sets the population gauge.
func UpdatePopulationSize(n int) { globalManager.populationSize.Set(float64(n)) }

// RecordStoreQueryLatency records a snapshot read latency.
func RecordStoreQueryLatency(latencyMs float64) { globalManager.storeQueryLatency.Observe(latencyMs) }

// RecordStoreCommitLatency records a chunk commit latency.
func RecordStoreCommitLatency(latencyMs float64) { globalManager.storeCommitLatency.Observe(latencyMs) }

// UpdateQueueSize sets the queue size gauge.
func UpdateQueueSize(n int) { globalManager.queueSize.Set(float64(n)) }

// UpdateQueueCapacity sets the queue capacity gauge.
func UpdateQueueCapacity(n int) { globalManager.queueCapacity.Set(float64(n)) }

// UpdateQueueUtilization sets the queue fill ratio gauge.
func UpdateQueueUtilization(ratio float64) { globalManager.queueUtilization.Set(ratio) }

// RecordQueueEnqueue increments the enqueue counter.
func RecordQueueEnqueue() { globalManager.queueEnqueues.Inc() }

// RecordQueueDequeue increments the dequeue counter.
func RecordQueueDequeue() { globalManager.queueDequeues.Inc() }

// RecordQueueFullDrop counts a rejected enqueue.
func RecordQueueFullDrop() { globalManager.queueFullDrops.Inc() }

// UpdateWorkerCount sets the worker gauge.
func UpdateWorkerCount(n int) { globalManager.workerCount.Set(float64(n)) }

// RecordErrorByComponent counts an error by component and kind.
func RecordErrorByComponent(component, kind string) {
	globalManager.errorsByComponent.WithLabelValues(component, kind).Inc()
}

// UpdateSystemMemoryUsage sets the allocated-heap gauge.
func UpdateSystemMemoryUsage(bytes uint64) { globalManager.systemMemoryUsage.Set(float64(bytes)) }

// UpdateSystemGoroutineCount sets the goroutine gauge.
func UpdateSystemGoroutineCount(n int) { globalManager.systemGoroutineCount.Set(float64(n)) }

// RecordSystemGCPauseTime records an average GC pause.
func RecordSystemGCPauseTime(ms float64) { globalManager.systemGCPauseTime.Observe(ms) }

// GetRegistry returns the registry backing the global manager, for
// exposing via promhttp.
func GetRegistry() *prometheus.Registry { return customRegistry }
