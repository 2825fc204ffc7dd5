package models

import (
	"encoding/json"
	"math"
	"time"
)

// SegmentSummary is the serializable view of a stream segment: its absolute counters, their
// per-second rates, and for background summaries a few whole-trace statistics.
//
// Example JSON (abridged):
//
//	{
//	  "traceId": "01ARZ3NDEKTSV4RRFFQ69G5FAV",
//	  "numFrames": 2,
//	  "startTime": 0,
//	  "endTime": 1,
//	  "actorCount": 1,
//	  "replicatedSizeBits": 8,
//	  "sendBunchCountPerChannel": {"Control": 0, "Actor": 0, "File": 0, "Voice": 0},
//	  "perSecond": {"actorCount": 1, "replicatedSizeBytes": 1}
//	}
type SegmentSummary struct {
	TraceID string         `json:"traceId"`
	Query   *ProfileFilter `json:"query,omitempty"`

	StartTime       float64 `json:"startTime"`
	EndTime         float64 `json:"endTime"`
	DurationSeconds float64 `json:"durationSeconds"`
	NumFrames       int     `json:"numFrames"`
	NumEvents       int     `json:"numEvents"`

	ActorCount           int     `json:"actorCount"`
	ActorReplicateTimeMs float64 `json:"actorReplicateTimeMs"`
	PropertyCount        int     `json:"propertyCount"`
	ReplicatedSizeBits   int64   `json:"replicatedSizeBits"`

	RPCCount    int   `json:"rpcCount"`
	RPCSizeBits int64 `json:"rpcSizeBits"`

	SendBunchCount              int              `json:"sendBunchCount"`
	SendBunchSizeBits           int64            `json:"sendBunchSizeBits"`
	SendBunchCountPerChannel    map[string]int   `json:"sendBunchCountPerChannel"`
	SendBunchSizeBitsPerChannel map[string]int64 `json:"sendBunchSizeBitsPerChannel"`

	ExemptSocketCount      int   `json:"exemptSocketCount"`
	ExemptSocketSizeBytes  int64 `json:"exemptSocketSizeBytes"`
	OtherSocketCount       int   `json:"otherSocketCount"`
	OtherSocketSizeBytes   int64 `json:"otherSocketSizeBytes"`
	OutgoingBandwidthBytes int64 `json:"outgoingBandwidthBytes"`

	PerSecond SegmentRates `json:"perSecond"`

	DistinctActorsEstimate         *uint64      `json:"distinctActorsEstimate,omitempty"`
	ActorReplicateTimeMsPercentile *Percentiles `json:"actorReplicateTimeMsPercentile,omitempty"`
	SummarizedAt                   *time.Time   `json:"summarizedAt,omitempty"`
}

// SegmentRates holds the per-second counterparts of the absolute counters.
type SegmentRates struct {
	ActorCount                   Rate            `json:"actorCount"`
	PropertyCount                Rate            `json:"propertyCount"`
	ReplicatedSizeBytes          Rate            `json:"replicatedSizeBytes"`
	RPCCount                     Rate            `json:"rpcCount"`
	RPCSizeBytes                 Rate            `json:"rpcSizeBytes"`
	SendBunchCount               Rate            `json:"sendBunchCount"`
	SendBunchSizeBytes           Rate            `json:"sendBunchSizeBytes"`
	SendBunchCountPerChannel     map[string]Rate `json:"sendBunchCountPerChannel"`
	SendBunchSizeBytesPerChannel map[string]Rate `json:"sendBunchSizeBytesPerChannel"`
	ExemptSocketCount            Rate            `json:"exemptSocketCount"`
	ExemptSocketSizeBytes        Rate            `json:"exemptSocketSizeBytes"`
	OtherSocketCount             Rate            `json:"otherSocketCount"`
	OtherSocketSizeBytes         Rate            `json:"otherSocketSizeBytes"`
	OutgoingBandwidthBytes       Rate            `json:"outgoingBandwidthBytes"`
}

// Percentiles of a distribution.
type Percentiles struct {
	P50 float64 `json:"p50"`
	P95 float64 `json:"p95"`
	P99 float64 `json:"p99"`
}

// ProfileFilter echoes the query a summary was computed for.
type ProfileFilter struct {
	ActorPattern    string `json:"actor,omitempty"`
	PropertyPattern string `json:"property,omitempty"`
	RPCPattern      string `json:"rpc,omitempty"`
	FromFrame       *int   `json:"fromFrame,omitempty"`
	ToFrame         *int   `json:"toFrame,omitempty"`
}

// Rate is a per-second value. A segment spanning no time yields non-finite rates; they are
// serialized as null since JSON has no representation for them.
type Rate float64

func (r Rate) IsFinite() bool {
	f := float64(r)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func (r Rate) MarshalJSON() ([]byte, error) {
	if !r.IsFinite() {
		return []byte("null"), nil
	}
	return json.Marshal(float64(r))
}

func (r *Rate) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*r = Rate(math.NaN())
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*r = Rate(f)
	return nil
}
