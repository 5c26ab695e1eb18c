package diskutil

// DiskList mirrors the structure of `diskutil list -plist`.
type DiskList struct {
	AllDisks             []string    `plist:"AllDisks"`
	AllDisksAndPartitions []DiskEntry `plist:"AllDisksAndPartitions"`
}

// DiskEntry is one physical disk in the listing, with its child partitions.
type DiskEntry struct {
	DeviceIdentifier string           `plist:"DeviceIdentifier"`
	Content          string           `plist:"Content"`
	MountPoint       string           `plist:"MountPoint"`
	Size             uint64           `plist:"Size"`
	Partitions       []PartitionEntry `plist:"Partitions"`
}

// PartitionEntry is a child volume of a listed disk.
type PartitionEntry struct {
	DeviceIdentifier string `plist:"DeviceIdentifier"`
	Content          string `plist:"Content"`
	MountPoint       string `plist:"MountPoint"`
	VolumeName       string `plist:"VolumeName"`
	Size             uint64 `plist:"Size"`
}

// DiskInfo mirrors the subset of `diskutil info -plist <id-or-path>` this
// system relies on.
type DiskInfo struct {
	DeviceIdentifier string `plist:"DeviceIdentifier"`
	DeviceNode       string `plist:"DeviceNode"`
	Content          string `plist:"Content"`
	MediaName        string `plist:"MediaName"`
	MountPoint       string `plist:"MountPoint"`
	VolumeName       string `plist:"VolumeName"`
	TotalSize        uint64 `plist:"TotalSize"`
	Ejectable        bool   `plist:"Ejectable"`
	Internal         bool   `plist:"Internal"`
	WholeDisk        bool   `plist:"WholeDisk"`
	Removable        bool   `plist:"Removable"`
	Writable         bool   `plist:"Writable"`
}
