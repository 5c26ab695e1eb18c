package diskutil

// Client queries and mutates storage devices through the external
// device-management utility. Read-only queries may be issued freely; the
// single mutating call here (UnmountDisk) is mediated by the callers so that
// only one device-mutating command runs at a time.
type Client interface {
	// List decodes `diskutil list -plist`. A decode failure here is fatal
	// for discovery since no device can be reasoned about at all.
	List() (DiskList, error)

	// Info decodes `diskutil info -plist <id-or-path>`.
	Info(idOrPath string) (DiskInfo, error)

	// IsPathMounted re-queries the utility for a specific path and reports
	// whether it is mounted. The query is bounded to a short timeout; every
	// failure mode (timeout, I/O error, non-zero exit) reads as "not
	// mounted" so polling loops stay resilient to transient errors.
	IsPathMounted(path string) bool

	// UnmountDisk unmounts every volume of a whole disk. A busy device
	// yields *DeviceBusyError with the blocking process identity when
	// diskutil reports one.
	UnmountDisk(diskPath string) error

	// Path returns the resolved utility binary path, for callers that build
	// argv for long-running diskutil operations themselves.
	Path() string
}
