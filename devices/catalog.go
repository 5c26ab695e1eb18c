package devices

import (
	"fmt"

	bosherr "github.com/cloudfoundry/bosh-utils/errors"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"

	"github.com/osmedia/multiboot/diskutil"
	"github.com/osmedia/multiboot/i18n"
	"github.com/osmedia/multiboot/partition"
)

// Whole-disk records carrying any other Content tag are partition slices or
// synthesized containers, not physical devices.
var validPartitionSchemes = map[string]bool{
	"GUID_partition_scheme":  true,
	"FDisk_partition_scheme": true,
	"Apple_partition_scheme": true,
}

// Device is a point-in-time view of one physical external disk. It is read
// fresh on every discovery call and never cached; mutable attributes (size,
// mount state) are only trusted for the lifetime of a single call.
type Device struct {
	Path      string
	Name      string
	SizeBytes uint64
	Mounted   bool
}

func (d Device) Label(tr *i18n.Catalog) string {
	name := d.Name
	if name == "" {
		name = tr.T("common.unknown")
	}

	label := fmt.Sprintf("%s (%.1f GB)", name, float64(d.SizeBytes)/partition.BytesPerGB)
	if d.Mounted {
		label += tr.T("disk.mounted_suffix")
	}
	return label
}

type Catalog struct {
	diskutilClient diskutil.Client
	logger         boshlog.Logger
	logTag         string
}

func NewCatalog(diskutilClient diskutil.Client, logger boshlog.Logger) *Catalog {
	return &Catalog{
		diskutilClient: diskutilClient,
		logger:         logger,
		logTag:         "DeviceCatalog",
	}
}

// ListExternal discovers physical external disks. A failing detail query
// drops that one device from the catalog; a failing listing call is fatal
// since nothing downstream can proceed without a device list. An empty
// result is not an error here, the caller decides whether it is.
func (c *Catalog) ListExternal() ([]Device, error) {
	list, err := c.diskutilClient.List()
	if err != nil {
		return nil, bosherr.WrapError(err, "Listing disks")
	}

	var external []Device

	for _, disk := range list.AllDisksAndPartitions {
		if disk.DeviceIdentifier == "" {
			continue
		}
		if disk.Content != "" && !validPartitionSchemes[disk.Content] {
			continue
		}

		mounted := disk.MountPoint != ""
		for _, part := range disk.Partitions {
			if part.MountPoint != "" {
				mounted = true
			}
		}

		info, err := c.diskutilClient.Info(disk.DeviceIdentifier)
		if err != nil {
			c.logger.Debug(c.logTag, "Dropping %s, detail query failed: %s", disk.DeviceIdentifier, err.Error())
			continue
		}

		if !info.Ejectable || info.Internal || !info.WholeDisk {
			continue
		}

		external = append(external, Device{
			Path:      "/dev/" + disk.DeviceIdentifier,
			Name:      info.MediaName,
			SizeBytes: info.TotalSize,
			Mounted:   mounted,
		})
	}

	c.logger.Info(c.logTag, "Found %d external disk(s)", len(external))

	return external, nil
}
