package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ConnectionState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "storefront_push_connection_state",
			Help: "Push channel state: 0 disconnected, 1 connecting, 2 connected",
		},
		[]string{"channel"},
	)

	Reconnects = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_push_reconnects_total",
			Help: "Reconnect attempts scheduled after an unexpected close",
		},
		[]string{"channel"},
	)

	FramesReceived = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_push_frames_received_total",
			Help: "Inbound push frames by type",
		},
		[]string{"channel", "type"},
	)

	FramesSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_push_frames_sent_total",
			Help: "Outbound push frames by type",
		},
		[]string{"channel", "type"},
	)

	MalformedFrames = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_push_malformed_frames_total",
			Help: "Inbound frames dropped because they could not be decoded",
		},
		[]string{"channel"},
	)

	DroppedFrames = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_push_dropped_frames_total",
			Help: "Outbound frames dropped while the channel was not open",
		},
		[]string{"channel"},
	)

	RESTDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "storefront_rest_request_duration_seconds",
			Help:    "REST request latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "status"},
	)

	UnreadMessages = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "storefront_chat_unread_messages",
		Help: "Sum of unread counts across loaded chat rooms",
	})

	UnreadNotifications = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "storefront_notifications_unread",
		Help: "Cached unread notification count",
	})

	ArchiveWrites = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_archive_writes_total",
			Help: "Local archive writes by entity and outcome",
		},
		[]string{"entity", "outcome"},
	)

	AdapterRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_adapter_requests_total",
			Help: "Calls served by the presentation adapters",
		},
		[]string{"adapter", "method", "outcome"},
	)
)
