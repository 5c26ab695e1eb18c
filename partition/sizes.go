package partition

import (
	"fmt"
)

const (
	BytesPerMB = 1024 * 1024
	BytesPerGB = 1024 * 1024 * 1024
)

// ComputePartitionSize is the fixed size reserved for one installer's
// partition: its content size plus the safety margin.
func ComputePartitionSize(contentBytes, marginMB uint64) uint64 {
	return contentBytes + marginMB*BytesPerMB
}

// FormatSize renders a byte count in the form diskutil accepts for
// partition sizes.
func FormatSize(bytes uint64) string {
	if bytes >= BytesPerGB {
		return fmt.Sprintf("%.1fG", float64(bytes)/BytesPerGB)
	}
	return fmt.Sprintf("%.0fM", float64(bytes)/BytesPerMB)
}
