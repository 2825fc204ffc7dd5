package rates

import (
	"net-profiler/internal/models"
	"net-profiler/internal/segments"
)

// DefaultPacketOverheadBytes is the per-packet IPv4 + UDP header cost added to socket payloads when
// estimating outgoing bandwidth.
const DefaultPacketOverheadBytes = 28

// Rates are the per-second counterparts of a segment's counters.
//
// A segment whose end time equals its start time has no duration: InverseDuration is +Inf and every
// rate is +Inf, or NaN for zero counters. These values are propagated as is.
type Rates struct {
	InverseDuration float64

	ActorCount         float64
	PropertyCount      float64
	ReplicatedSizeBits float64
	RPCCount           float64
	RPCSizeBits        float64

	SendBunchCount              float64
	SendBunchSizeBits           float64
	SendBunchCountPerChannel    [models.NumChannelKinds]float64
	SendBunchSizeBitsPerChannel [models.NumChannelKinds]float64

	ExemptSocketCount float64
	ExemptSocketSize  float64
	OtherSocketCount  float64
	OtherSocketSize   float64
	OutgoingBandwidth float64
}

// Normalize derives per-second rates from the counters of segment.
func Normalize(segment *segments.StreamSegment, packetOverheadBytes int64) Rates {
	c := segment.Counters()
	inverse := 1 / (c.EndTime - c.StartTime)

	r := Rates{
		InverseDuration:    inverse,
		ActorCount:         float64(c.ActorCount) * inverse,
		PropertyCount:      float64(c.PropertyCount) * inverse,
		ReplicatedSizeBits: float64(c.ReplicatedSizeBits) * inverse,
		RPCCount:           float64(c.RPCCount) * inverse,
		RPCSizeBits:        float64(c.RPCSizeBits) * inverse,
		SendBunchCount:     float64(c.SendBunchCount) * inverse,
		SendBunchSizeBits:  float64(c.SendBunchSizeBits) * inverse,
		ExemptSocketCount:  float64(c.ExemptSocketCount) * inverse,
		ExemptSocketSize:   float64(c.ExemptSocketSize) * inverse,
		OtherSocketCount:   float64(c.OtherSocketCount) * inverse,
		OtherSocketSize:    float64(c.OtherSocketSize) * inverse,
		OutgoingBandwidth:  float64(OutgoingBandwidth(c, packetOverheadBytes)) * inverse,
	}
	for _, channel := range models.ChannelKinds {
		r.SendBunchCountPerChannel[channel] = float64(c.SendBunchCountPerChannel[channel]) * inverse
		r.SendBunchSizeBitsPerChannel[channel] = float64(c.SendBunchSizeBitsPerChannel[channel]) * inverse
	}
	return r
}

// OutgoingBandwidth is the number of bytes put on the wire by all socket sends, headers included.
func OutgoingBandwidth(c segments.Counters, packetOverheadBytes int64) int64 {
	packets := int64(c.ExemptSocketCount + c.OtherSocketCount)
	return c.ExemptSocketSize + c.OtherSocketSize + packetOverheadBytes*packets
}
