package qlog

import (
	"time"

	"github.com/francoispqt/gojay"
)

type eventDetails interface {
	Name() string
	gojay.MarshalerJSONObject
}

// An event is serialized as a 4-element array: relative time in ms, category,
// event name, and the event data object.
type event struct {
	RelativeTime time.Duration
	eventDetails
}

var _ gojay.MarshalerJSONArray = event{}

func (e event) IsNil() bool { return false }
func (e event) MarshalJSONArray(enc *gojay.Encoder) {
	enc.Float64(float64(e.RelativeTime.Nanoseconds()) / 1e6)
	enc.String("transport")
	enc.String(e.Name())
	enc.Object(e.eventDetails)
}

type eventPacketDropped struct {
	Remote string
	Reason string
	Size   int64
}

var _ eventDetails = eventPacketDropped{}

func (e eventPacketDropped) Name() string { return "packet_dropped" }
func (e eventPacketDropped) IsNil() bool  { return false }
func (e eventPacketDropped) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("remote", e.Remote)
	enc.StringKey("trigger", e.Reason)
	enc.Int64Key("raw_length", e.Size)
}

type eventVersionNegotiationSent struct {
	Remote           string
	DestConnectionID string
	SrcConnectionID  string
}

var _ eventDetails = eventVersionNegotiationSent{}

func (e eventVersionNegotiationSent) Name() string { return "version_negotiation_sent" }
func (e eventVersionNegotiationSent) IsNil() bool  { return false }
func (e eventVersionNegotiationSent) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("remote", e.Remote)
	enc.StringKey("dcid", e.DestConnectionID)
	enc.StringKey("scid", e.SrcConnectionID)
}

type eventStatelessResetSent struct {
	Remote string
	Size   int64
}

var _ eventDetails = eventStatelessResetSent{}

func (e eventStatelessResetSent) Name() string { return "stateless_reset_sent" }
func (e eventStatelessResetSent) IsNil() bool  { return false }
func (e eventStatelessResetSent) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("remote", e.Remote)
	enc.Int64Key("raw_length", e.Size)
}

type eventSessionStarted struct {
	Remote           string
	DestConnectionID string
	Version          string
}

var _ eventDetails = eventSessionStarted{}

func (e eventSessionStarted) Name() string { return "connection_started" }
func (e eventSessionStarted) IsNil() bool  { return false }
func (e eventSessionStarted) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("remote", e.Remote)
	enc.StringKey("dcid", e.DestConnectionID)
	enc.StringKey("version", e.Version)
}

type eventSessionClosed struct {
	ConnectionID string
}

var _ eventDetails = eventSessionClosed{}

func (e eventSessionClosed) Name() string { return "connection_id_retired" }
func (e eventSessionClosed) IsNil() bool  { return false }
func (e eventSessionClosed) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("cid", e.ConnectionID)
}
