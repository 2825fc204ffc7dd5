package reports

import (
	"fmt"

	"net-profiler/internal/rollups"
)

// PerformanceLines renders a performance rollup as an indented two-level tree:
//
//	name : time ms (potential bytes/sent bytes) (count)
//
// Rollups without resolved names fall back to "#<key>".
func PerformanceLines(rollup *rollups.PerformanceRollup) []string {
	var lines []string
	for _, actor := range rollup.Actors {
		lines = append(lines, fmt.Sprintf("%-32s : %s (%02d/%02d) (%02d)",
			displayName(actor.Name, actor.Key),
			formatFixed(actor.TimeMs, 2),
			bitsToBytes(actor.PotentialSizeBits),
			bitsToBytes(actor.SizeBits),
			actor.Count))

		for _, property := range actor.Properties {
			lines = append(lines, fmt.Sprintf("    %-22s %-8s : %s (%02d/%02d) (%02d)",
				displayName(property.Name, property.PropertyIdentity),
				property.Flags,
				formatFixed(property.TimeMs, 2),
				bitsToBytes(property.PotentialSizeBits),
				bitsToBytes(property.SizeBits),
				property.Count))
		}
	}
	return lines
}

func displayName(name string, key int) string {
	if name == "" {
		return fmt.Sprintf("#%d", key)
	}
	return name
}
