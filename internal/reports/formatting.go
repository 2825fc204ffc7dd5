package reports

import (
	"fmt"
	"math"
	"strconv"
)

const (
	kiloByte = 1024
	megaByte = 1024 * 1024

	columnWidth = 8
)

// FormatSize renders a byte count as Bytes, KByte or MByte (1024-based), one decimal place,
// right-aligned to eight characters.
func FormatSize(sizeInBytes float64) string {
	switch {
	case sizeInBytes > megaByte:
		return fmt.Sprintf("%*s MByte", columnWidth, formatFixed(sizeInBytes/megaByte, 1))
	case sizeInBytes > kiloByte:
		return fmt.Sprintf("%*s KByte", columnWidth, formatFixed(sizeInBytes/kiloByte, 1))
	default:
		return fmt.Sprintf("%*s Bytes", columnWidth, formatFixed(sizeInBytes, 1))
	}
}

// FormatCount renders a count with one decimal place, right-aligned to eight characters.
func FormatCount(count float64) string {
	return fmt.Sprintf("%*s", columnWidth, formatFixed(count, 1))
}

// formatFixed rounds half away from zero before formatting, so 0.25 renders as 0.3.
// Non-finite values render as NaN, +Inf or -Inf.
func formatFixed(v float64, decimals int) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', decimals, 64)
	}
	scale := math.Pow10(decimals)
	return strconv.FormatFloat(math.Round(v*scale)/scale, 'f', decimals, 64)
}

// bitsToBytes rounds a bit count up to whole bytes.
func bitsToBytes(bits int64) int64 {
	return (bits + 7) / 8
}
