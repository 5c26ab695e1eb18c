package partition

import (
	"fmt"
)

type PlanTooLargeError struct {
	NeededBytes   uint64
	DiskSizeBytes uint64
}

func (e *PlanTooLargeError) Error() string {
	return fmt.Sprintf(
		"partition plan needs %.1f GB but the disk only has %.1f GB",
		float64(e.NeededBytes)/BytesPerGB,
		float64(e.DiskSizeBytes)/BytesPerGB,
	)
}
