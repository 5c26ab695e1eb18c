package volume

import (
	"fmt"
	"time"
)

// Resolver locates mounted volumes under the mount root, tolerating the
// renaming and mount delays the disk-management utility introduces while
// partitions activate.
type Resolver interface {
	// WaitForMount polls until a volume with the given name is present and
	// confirmed mounted, or maxWait of wall-clock time elapses. The bound is
	// real elapsed time, not iteration count.
	WaitForMount(name string, maxWait time.Duration) bool

	// Resolve finds the real mount path for a volume that may have been
	// renamed: the exact expected path first, then any volume whose name
	// contains the expected name, then any volume matching a meaningful
	// keyword of the installer name.
	Resolve(expectedName, installerName string) (string, error)
}

type NotFoundError struct {
	InstallerName  string
	ExpectedVolume string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("volume for %s not found (expected: %s)", e.InstallerName, e.ExpectedVolume)
}
