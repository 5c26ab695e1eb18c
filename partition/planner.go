package partition

import (
	"fmt"
	"io"
	"strings"
	"time"

	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	boshsys "github.com/cloudfoundry/bosh-utils/system"

	"github.com/osmedia/multiboot/diskutil"
	"github.com/osmedia/multiboot/i18n"
	"github.com/osmedia/multiboot/installer"
	"github.com/osmedia/multiboot/progress"
)

const (
	partitionEstimate = 60 * time.Second
	restoreEstimate   = 30 * time.Second

	restoreVolumeName = "USB_DISK"
	restoreFileSystem = "ExFAT"
)

// Planner computes and executes the partition layout for a set of
// installers: one JHFS+ volume per installer, fixed sizes for all but the
// last, which absorbs the remaining space.
type Planner struct {
	diskutilClient diskutil.Client
	executor       progress.Executor
	tr             *i18n.Catalog
	out            io.Writer
	logger         boshlog.Logger
	logTag         string
	marginMB       uint64
}

func NewPlanner(
	diskutilClient diskutil.Client,
	executor progress.Executor,
	tr *i18n.Catalog,
	out io.Writer,
	logger boshlog.Logger,
	marginMB uint64,
) *Planner {
	return &Planner{
		diskutilClient: diskutilClient,
		executor:       executor,
		tr:             tr,
		out:            out,
		logger:         logger,
		logTag:         "PartitionPlanner",
		marginMB:       marginMB,
	}
}

// TotalSpaceNeeded is the margin-inclusive space the whole plan requires.
func (p *Planner) TotalSpaceNeeded(installers []installer.Installer) uint64 {
	var total uint64
	for _, inst := range installers {
		total += ComputePartitionSize(inst.SizeBytes, p.marginMB)
	}
	return total
}

// ValidatePlan compares the fixed partitions, every installer but the last,
// to the disk's total size. A plan exactly filling the disk passes; only a
// strictly larger plan fails. A failing size query downgrades to a warning
// since diskutil itself is the authoritative gate.
func (p *Planner) ValidatePlan(diskPath string, installers []installer.Installer) error {
	info, err := p.diskutilClient.Info(diskPath)
	if err != nil {
		p.logger.Warn(p.logTag, "Skipping plan validation for %s: %s", diskPath, err.Error())
		return nil
	}

	needed := p.fixedPartitionsTotal(installers)

	if needed > info.TotalSize {
		return &PlanTooLargeError{NeededBytes: needed, DiskSizeBytes: info.TotalSize}
	}

	p.logger.Info(
		p.logTag,
		"Plan validated: %.1f GB of fixed partitions on a %.1f GB disk",
		float64(needed)/BytesPerGB,
		float64(info.TotalSize)/BytesPerGB,
	)

	return nil
}

// BuildPartitionCommand returns the full diskutil argv for the plan. The
// last volume gets "0b", diskutil's spelling for "whatever is left".
func (p *Planner) BuildPartitionCommand(diskPath string, installers []installer.Installer) []string {
	cmd := []string{p.diskutilClient.Path(), "partitionDisk", diskPath, "GPT"}

	for i, inst := range installers {
		size := "0b"
		if i < len(installers)-1 {
			size = FormatSize(ComputePartitionSize(inst.SizeBytes, p.marginMB))
		}
		cmd = append(cmd, "JHFS+", inst.Volume, size)
	}

	return cmd
}

// RemainingSpaceEstimate renders the space the last partition will receive,
// for display only. Empty when the plan has a single partition or the disk
// size cannot be determined.
func (p *Planner) RemainingSpaceEstimate(diskPath string, installers []installer.Installer) string {
	if len(installers) <= 1 {
		return ""
	}

	info, err := p.diskutilClient.Info(diskPath)
	if err != nil {
		p.logger.Warn(p.logTag, "Estimating remaining space on %s: %s", diskPath, err.Error())
		return ""
	}

	fixed := p.fixedPartitionsTotal(installers)
	remaining := int64(info.TotalSize) - int64(fixed)
	if remaining <= 0 {
		return ""
	}

	if remaining < BytesPerGB {
		return fmt.Sprintf("%.0fM", float64(remaining)/BytesPerMB)
	}
	return fmt.Sprintf("%.1fG", float64(remaining)/BytesPerGB)
}

// Partition validates the plan and runs diskutil partitionDisk under the
// progress executor. A busy disk surfaces as *diskutil.DeviceBusyError with
// the blocking process identity when diskutil names one.
func (p *Planner) Partition(diskPath string, installers []installer.Installer) error {
	fmt.Fprintln(p.out, p.tr.T("disk.partitioning"))

	if err := p.ValidatePlan(diskPath, installers); err != nil {
		return err
	}

	p.printPlan(diskPath, installers)

	argv := p.BuildPartitionCommand(diskPath, installers)
	p.logger.Info(p.logTag, "%s", strings.Join(argv, " "))

	outcome, err := p.executor.RunWithProgress(
		boshsys.Command{Name: argv[0], Args: argv[1:]},
		PartitionRules(p.tr),
		p.tr.T("progress.partitioning"),
		partitionEstimate,
	)
	if err != nil {
		if diskutil.IsBusyOutput(outcome.Output()) {
			name, pid, _ := diskutil.ParseBusyProcess(outcome.Output())
			return &diskutil.DeviceBusyError{
				DiskPath:    diskPath,
				ProcessName: name,
				ProcessID:   pid,
				Output:      outcome.Output(),
			}
		}
		return err
	}

	p.logger.Info(p.logTag, "Partitioning of %s finished", diskPath)

	return nil
}

// Unmount frees the whole disk before partitioning. A busy disk is fatal;
// any other failure downgrades to a warning because diskutil retries the
// unmount itself during partitioning.
func (p *Planner) Unmount(diskPath string) error {
	err := p.diskutilClient.UnmountDisk(diskPath)
	if err == nil {
		return nil
	}

	if _, busy := err.(*diskutil.DeviceBusyError); busy {
		return err
	}

	p.logger.Warn(p.logTag, "Unmounting %s: %s", diskPath, err.Error())
	fmt.Fprintln(p.out, p.tr.T("disk.unmount_warning", "disk", diskPath))
	fmt.Fprintln(p.out, p.tr.T("disk.unmount_warning_more"))

	return nil
}

// Restore erases the disk back to a single empty ExFAT volume. Restore is a
// cleanup path and never fails the run; problems are reported with manual
// recovery instructions instead.
func (p *Planner) Restore(diskPath string) {
	fmt.Fprintln(p.out, p.tr.T("disk.restore", "disk", diskPath))

	if err := p.Unmount(diskPath); err != nil {
		p.reportRestoreFailure(diskPath, err)
		return
	}

	argv := []string{p.diskutilClient.Path(), "eraseDisk", restoreFileSystem, restoreVolumeName, diskPath}

	_, err := p.executor.RunWithProgress(
		boshsys.Command{Name: argv[0], Args: argv[1:]},
		RestoreRules(p.tr),
		p.tr.T("progress.restore"),
		restoreEstimate,
	)
	if err != nil {
		p.reportRestoreFailure(diskPath, err)
		return
	}

	fmt.Fprintln(p.out, p.tr.T("disk.restore_success"))
}

// CheckDiskSpace prints an advisory comparison of the disk size against the
// space the plan needs. Purely informational; diskutil remains the gate.
func (p *Planner) CheckDiskSpace(diskPath string, neededBytes uint64) {
	info, err := p.diskutilClient.Info(diskPath)
	if err != nil {
		p.logger.Warn(p.logTag, "Checking space on %s: %s", diskPath, err.Error())
		fmt.Fprintln(p.out, p.tr.T("disk.cannot_check_space", "error", err.Error()))
		fmt.Fprintln(p.out, p.tr.T("disk.space_may_be_insufficient"))
		return
	}

	sizeGB := fmt.Sprintf("%.1f", float64(info.TotalSize)/BytesPerGB)
	neededGB := fmt.Sprintf("%.1f", float64(neededBytes)/BytesPerGB)

	if info.TotalSize < neededBytes {
		p.logger.Warn(p.logTag, "Disk space short: %s GB available, %s GB needed", sizeGB, neededGB)
		fmt.Fprintln(p.out, p.tr.T("disk.warning_small", "size_gb", sizeGB))
		fmt.Fprintln(p.out, p.tr.T("disk.space_needed", "needed_gb", neededGB))
		fmt.Fprintln(p.out, p.tr.T("disk.space_continue_may_fail"))
		return
	}

	remainingGB := fmt.Sprintf("%.1f", float64(info.TotalSize-neededBytes)/BytesPerGB)
	fmt.Fprintln(p.out, p.tr.T("disk.space_available", "size_gb", sizeGB))
	fmt.Fprintln(p.out, p.tr.T("disk.space_needed", "needed_gb", neededGB))
	fmt.Fprintln(p.out, p.tr.T("disk.space_remaining", "remaining_gb", remainingGB))
}

// PrintSizeSummary lists each installer's content size and its
// margin-inclusive partition size.
func (p *Planner) PrintSizeSummary(installers []installer.Installer) {
	fmt.Fprintln(p.out, p.tr.T("installer.size_summary"))
	for _, inst := range installers {
		withMargin := ComputePartitionSize(inst.SizeBytes, p.marginMB)
		fmt.Fprintln(p.out, p.tr.T(
			"installer.size_summary_line",
			"name", inst.Name,
			"size_gb", fmt.Sprintf("%.1f", float64(inst.SizeBytes)/BytesPerGB),
			"margin_mb", fmt.Sprintf("%d", p.marginMB),
			"total_gb", fmt.Sprintf("%.1f", float64(withMargin)/BytesPerGB),
		))
	}
}

func (p *Planner) fixedPartitionsTotal(installers []installer.Installer) uint64 {
	if len(installers) == 0 {
		return 0
	}

	var total uint64
	for _, inst := range installers[:len(installers)-1] {
		total += ComputePartitionSize(inst.SizeBytes, p.marginMB)
	}
	return total
}

func (p *Planner) printPlan(diskPath string, installers []installer.Installer) {
	remaining := p.RemainingSpaceEstimate(diskPath, installers)

	for i, inst := range installers {
		if i < len(installers)-1 {
			size := FormatSize(ComputePartitionSize(inst.SizeBytes, p.marginMB))
			fmt.Fprintln(p.out, p.tr.T("disk.partition_size", "name", inst.Name, "size", size))
			continue
		}

		if remaining != "" {
			fmt.Fprintln(p.out, p.tr.T("disk.partition_last_remaining", "name", inst.Name, "remaining", remaining))
		} else {
			fmt.Fprintln(p.out, p.tr.T("disk.partition_last_all", "name", inst.Name))
		}
	}
}

func (p *Planner) reportRestoreFailure(diskPath string, err error) {
	p.logger.Error(p.logTag, "Restoring %s: %s", diskPath, err.Error())
	fmt.Fprintln(p.out, p.tr.T("disk.restore_fail", "error", err.Error()))
	fmt.Fprintln(p.out, p.tr.T("disk.restore_manual", "disk", diskPath))
}
