package reports

import (
	"fmt"

	"net-profiler/internal/models"
	"net-profiler/internal/rates"
	"net-profiler/internal/segments"
)

type reportLine struct {
	label string
	value string
}

// SummaryLines renders the fixed-shape textual summary of a segment: frame and duration data,
// the absolute network counters, then the same counters per second.
func SummaryLines(segment *segments.StreamSegment, packetOverheadBytes int64) []string {
	c := segment.Counters()
	r := rates.Normalize(segment, packetOverheadBytes)
	duration := segment.Duration()

	lines := []string{"Data Summary", ""}
	lines = appendLines(lines,
		reportLine{"Frame Count", FormatCount(float64(c.NumFrames))},
		reportLine{"Duration (ms)", FormatCount(duration * 1000)},
		reportLine{"Duration (sec)", FormatCount(duration)},
	)

	lines = append(lines, "", "", "Network Summary", "")
	lines = appendLines(lines,
		reportLine{"Actor Count", FormatCount(float64(c.ActorCount))},
		reportLine{"Property Count", FormatCount(float64(c.PropertyCount))},
		reportLine{"Replicated Size", FormatSize(float64(c.ReplicatedSizeBits) / 8)},
		reportLine{"RPC Count", FormatCount(float64(c.RPCCount))},
		reportLine{"RPC Size", FormatSize(float64(c.RPCSizeBits) / 8)},
		reportLine{"SendBunch Count", FormatCount(float64(c.SendBunchCount))},
	)
	for _, channel := range models.ChannelKinds {
		lines = appendLines(lines, reportLine{"   " + channel.String(), FormatCount(float64(c.SendBunchCountPerChannel[channel]))})
	}
	lines = appendLines(lines, reportLine{"SendBunch Size", FormatSize(float64(c.SendBunchSizeBits) / 8)})
	for _, channel := range models.ChannelKinds {
		lines = appendLines(lines, reportLine{"   " + channel.String(), FormatSize(float64(c.SendBunchSizeBitsPerChannel[channel]) / 8)})
	}
	lines = appendLines(lines,
		reportLine{"Game Socket Send Count", FormatCount(float64(c.ExemptSocketCount))},
		reportLine{"Game Socket Send Size", FormatSize(float64(c.ExemptSocketSize))},
		reportLine{"Misc Socket Send Count", FormatCount(float64(c.OtherSocketCount))},
		reportLine{"Misc Socket Send Size", FormatSize(float64(c.OtherSocketSize))},
		reportLine{"Outgoing bandwidth", FormatSize(float64(rates.OutgoingBandwidth(c, packetOverheadBytes)))},
	)

	lines = append(lines, "", "", "Network Summary per second", "")
	lines = appendLines(lines,
		reportLine{"Actor Count", FormatCount(r.ActorCount)},
		reportLine{"Property Count", FormatCount(r.PropertyCount)},
		reportLine{"Replicated Size", FormatSize(r.ReplicatedSizeBits / 8)},
		reportLine{"RPC Count", FormatCount(r.RPCCount)},
		reportLine{"RPC Size", FormatSize(r.RPCSizeBits / 8)},
		reportLine{"SendBunch Count", FormatCount(r.SendBunchCount)},
	)
	for _, channel := range models.ChannelKinds {
		lines = appendLines(lines, reportLine{"   " + channel.String(), FormatCount(r.SendBunchCountPerChannel[channel])})
	}
	lines = appendLines(lines, reportLine{"SendBunch Size", FormatSize(r.SendBunchSizeBits / 8)})
	for _, channel := range models.ChannelKinds {
		lines = appendLines(lines, reportLine{"   " + channel.String(), FormatSize(r.SendBunchSizeBitsPerChannel[channel] / 8)})
	}
	lines = appendLines(lines,
		reportLine{"Game Socket Send Count", FormatCount(r.ExemptSocketCount)},
		reportLine{"Game Socket Send Size", FormatSize(r.ExemptSocketSize)},
		reportLine{"Misc Socket Send Count", FormatCount(r.OtherSocketCount)},
		reportLine{"Misc Socket Send Size", FormatSize(r.OtherSocketSize)},
		reportLine{"Outgoing bandwidth", FormatSize(r.OutgoingBandwidth)},
	)
	return lines
}

// appendLines pads labels to a common column so values line up.
func appendLines(lines []string, entries ...reportLine) []string {
	for _, e := range entries {
		lines = append(lines, fmt.Sprintf("%-23s: %s", e.label, e.value))
	}
	return lines
}
