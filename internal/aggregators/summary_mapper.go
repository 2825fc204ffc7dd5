package aggregators

import (
	"encoding/binary"

	"net-profiler/internal/models"
	"net-profiler/internal/rates"
	"net-profiler/internal/segments"

	"github.com/axiomhq/hyperloglog"
	"github.com/influxdata/tdigest"
)

const digestCompression = 100

func newSegmentSummary(traceID string, segment *segments.StreamSegment, packetOverheadBytes int64) *models.SegmentSummary {
	c := segment.Counters()
	r := rates.Normalize(segment, packetOverheadBytes)

	summary := &models.SegmentSummary{
		TraceID:                     traceID,
		StartTime:                   c.StartTime,
		EndTime:                     c.EndTime,
		DurationSeconds:             segment.Duration(),
		NumFrames:                   c.NumFrames,
		NumEvents:                   c.NumEvents,
		ActorCount:                  c.ActorCount,
		ActorReplicateTimeMs:        c.ActorReplicateTimeMs,
		PropertyCount:               c.PropertyCount,
		ReplicatedSizeBits:          c.ReplicatedSizeBits,
		RPCCount:                    c.RPCCount,
		RPCSizeBits:                 c.RPCSizeBits,
		SendBunchCount:              c.SendBunchCount,
		SendBunchSizeBits:           c.SendBunchSizeBits,
		SendBunchCountPerChannel:    make(map[string]int, models.NumChannelKinds),
		SendBunchSizeBitsPerChannel: make(map[string]int64, models.NumChannelKinds),
		ExemptSocketCount:           c.ExemptSocketCount,
		ExemptSocketSizeBytes:       c.ExemptSocketSize,
		OtherSocketCount:            c.OtherSocketCount,
		OtherSocketSizeBytes:        c.OtherSocketSize,
		OutgoingBandwidthBytes:      rates.OutgoingBandwidth(c, packetOverheadBytes),
		PerSecond: models.SegmentRates{
			ActorCount:                   models.Rate(r.ActorCount),
			PropertyCount:                models.Rate(r.PropertyCount),
			ReplicatedSizeBytes:          models.Rate(r.ReplicatedSizeBits / 8),
			RPCCount:                     models.Rate(r.RPCCount),
			RPCSizeBytes:                 models.Rate(r.RPCSizeBits / 8),
			SendBunchCount:               models.Rate(r.SendBunchCount),
			SendBunchSizeBytes:           models.Rate(r.SendBunchSizeBits / 8),
			SendBunchCountPerChannel:     make(map[string]models.Rate, models.NumChannelKinds),
			SendBunchSizeBytesPerChannel: make(map[string]models.Rate, models.NumChannelKinds),
			ExemptSocketCount:            models.Rate(r.ExemptSocketCount),
			ExemptSocketSizeBytes:        models.Rate(r.ExemptSocketSize),
			OtherSocketCount:             models.Rate(r.OtherSocketCount),
			OtherSocketSizeBytes:         models.Rate(r.OtherSocketSize),
			OutgoingBandwidthBytes:       models.Rate(r.OutgoingBandwidth),
		},
	}
	for _, channel := range models.ChannelKinds {
		name := channel.String()
		summary.SendBunchCountPerChannel[name] = c.SendBunchCountPerChannel[channel]
		summary.SendBunchSizeBitsPerChannel[name] = c.SendBunchSizeBitsPerChannel[channel]
		summary.PerSecond.SendBunchCountPerChannel[name] = models.Rate(r.SendBunchCountPerChannel[channel])
		summary.PerSecond.SendBunchSizeBytesPerChannel[name] = models.Rate(r.SendBunchSizeBitsPerChannel[channel] / 8)
	}
	return summary
}

// addActorStatistics attaches the whole-trace actor statistics to a background summary: an
// estimate of distinct actor instances and the distribution of per-replication actor time.
func addActorStatistics(summary *models.SegmentSummary, tokens []models.Token) {
	instances := hyperloglog.New14()
	digest := tdigest.NewWithCompression(digestCompression)
	key := make([]byte, 8)

	replications := 0
	for _, token := range tokens {
		actor, ok := token.(*models.ReplicateActor)
		if !ok {
			continue
		}
		binary.LittleEndian.PutUint64(key, uint64(actor.ActorIdentity))
		instances.Insert(key)
		digest.Add(actor.TimeMs, 1)
		replications++
	}

	distinct := instances.Estimate()
	summary.DistinctActorsEstimate = &distinct
	if replications == 0 {
		return
	}
	summary.ActorReplicateTimeMsPercentile = &models.Percentiles{
		P50: digest.Quantile(0.50),
		P95: digest.Quantile(0.95),
		P99: digest.Quantile(0.99),
	}
}
