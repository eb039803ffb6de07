package util

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

var byteUnits = []string{"KB", "MB", "GB", "TB", "PB", "EB"}

// ContentAddress returns the hex SHA-256 of data, used as a stable object key.
func ContentAddress(data []byte) string {
	sum := sha256.Sum256(data)

	return hex.EncodeToString(sum[:])
}

// FormatBytes renders a size with binary units, e.g. "1.5 KB".
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}

	value := float64(bytes) / unit
	i := 0
	for value >= unit && i < len(byteUnits)-1 {
		value /= unit
		i++
	}

	return fmt.Sprintf("%.1f %s", value, byteUnits[i])
}

// FormatDuration renders a duration rounded to the second, dropping the smallest
// unit above one hour: "45s", "2m30s", "1h30m".
func FormatDuration(duration time.Duration) string {
	duration = duration.Round(time.Second)
	seconds := int(duration / time.Second)

	switch {
	case duration < time.Minute:
		return fmt.Sprintf("%ds", seconds)
	case duration < time.Hour:
		return fmt.Sprintf("%dm%ds", seconds/60, seconds%60)
	default:
		return fmt.Sprintf("%dh%dm", seconds/3600, seconds%3600/60)
	}
}
