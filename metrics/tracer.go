// Package metrics provides a Prometheus implementation of the quicmux.Tracer.
package metrics

import (
	"errors"
	"net"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/quicmux/quicmux"
	"github.com/quicmux/quicmux/internal/protocol"
)

const metricNamespace = "quicmux"

func getIPVersion(addr net.Addr) string {
	udpAddr, ok := addr.(*net.UDPAddr)
	if !ok {
		return ""
	}
	if udpAddr.IP.To4() != nil {
		return "ipv4"
	}
	return "ipv6"
}

var (
	packetsDropped = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "server_received_packets_dropped_total",
			Help:      "packets dropped without creating state",
		},
		[]string{"ip_version", "reason"},
	)
	versionNegotiationSent = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "server_version_negotiation_sent_total",
			Help:      "version negotiation packets sent",
		},
		[]string{"ip_version"},
	)
	statelessResetsSent = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "server_stateless_resets_sent_total",
			Help:      "stateless reset packets sent",
		},
		[]string{"ip_version"},
	)
	sessionsCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "server_sessions_created_total",
			Help:      "sessions created for new connections",
		},
		[]string{"ip_version"},
	)
	sessionsClosed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "server_sessions_closed_total",
			Help:      "connection IDs moved into time-wait",
		},
	)
)

// NewTracer creates a new tracer using the default Prometheus registerer.
func NewTracer() *quicmux.Tracer {
	return NewTracerWithRegisterer(prometheus.DefaultRegisterer)
}

// NewTracerWithRegisterer creates a new tracer using a given Prometheus registerer.
func NewTracerWithRegisterer(registerer prometheus.Registerer) *quicmux.Tracer {
	for _, c := range [...]prometheus.Collector{
		packetsDropped,
		versionNegotiationSent,
		statelessResetsSent,
		sessionsCreated,
		sessionsClosed,
	} {
		if err := registerer.Register(c); err != nil {
			if ok := errors.As(err, &prometheus.AlreadyRegisteredError{}); !ok {
				panic(err)
			}
		}
	}

	return &quicmux.Tracer{
		DroppedPacket: func(remote net.Addr, reason quicmux.PacketDropReason, _ protocol.ByteCount) {
			tags := getStringSlice()
			defer putStringSlice(tags)

			*tags = append(*tags, getIPVersion(remote))
			*tags = append(*tags, reason.String())
			packetsDropped.WithLabelValues(*tags...).Inc()
		},
		SentVersionNegotiation: func(remote net.Addr, _, _ protocol.ConnectionID) {
			versionNegotiationSent.WithLabelValues(getIPVersion(remote)).Inc()
		},
		SentStatelessReset: func(remote net.Addr, _ protocol.ByteCount) {
			statelessResetsSent.WithLabelValues(getIPVersion(remote)).Inc()
		},
		SessionStarted: func(remote net.Addr, _ protocol.ConnectionID, _ protocol.Version) {
			sessionsCreated.WithLabelValues(getIPVersion(remote)).Inc()
		},
		SessionClosed: func(_ protocol.ConnectionID) {
			sessionsClosed.Inc()
		},
	}
}
