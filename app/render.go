package app

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/osmedia/multiboot/devices"
	"github.com/osmedia/multiboot/diskutil"
	"github.com/osmedia/multiboot/installer"
	"github.com/osmedia/multiboot/installmedia"
	"github.com/osmedia/multiboot/partition"
	"github.com/osmedia/multiboot/ui"
	"github.com/osmedia/multiboot/volume"
)

// reportFailure turns a typed pipeline failure into user-facing prose. The
// core packages return structured errors and never print failure text
// themselves; every message a failure produces is rendered here, once.
func (app *app) reportFailure(err error) {
	var (
		busyErr          *diskutil.DeviceBusyError
		planErr          *partition.PlanTooLargeError
		noDiskErr        *devices.NoneDetectedError
		dirMissingErr    *installer.DirMissingError
		notADirErr       *installer.NotADirectoryError
		noInstallerErr   *installer.NoneFoundError
		toolMissingErr   *installmedia.ToolMissingError
		notExecErr       *installmedia.ToolNotExecutableError
		volTimeoutErr    *installmedia.VolumeTimeoutError
		volNotAccessErr  *installmedia.VolumeNotAccessibleError
		installFailedErr *installmedia.InstallationFailedError
		verifyErr        *installmedia.VerificationFailedError
		volNotFoundErr   *volume.NotFoundError
		retriesErr       *ui.RetriesExceededError
	)

	switch {
	case errors.As(err, &busyErr):
		app.reportDeviceBusy(busyErr)
	case errors.As(err, &planErr):
		app.say("disk.partition_fail_size_large",
			"needed_gb", formatGB(planErr.NeededBytes),
			"disk_gb", formatGB(planErr.DiskSizeBytes),
		)
	case errors.As(err, &noDiskErr):
		app.say("disk.none_detected")
	case errors.As(err, &dirMissingErr):
		app.say("installer.dir_missing", "dir", dirMissingErr.AppDir)
	case errors.As(err, &notADirErr):
		app.say("installer.not_a_dir", "dir", notADirErr.AppDir)
	case errors.As(err, &noInstallerErr):
		app.say("installer.none_found")
		app.say("installer.download_mist")
	case errors.As(err, &toolMissingErr):
		app.say("install_media.tool_missing", "name", toolMissingErr.InstallerName)
		app.say("install_media.tool_expected", "path", toolMissingErr.ToolPath)
	case errors.As(err, &notExecErr):
		app.say("install_media.tool_not_executable", "name", notExecErr.InstallerName)
		app.say("install_media.tool_expected", "path", notExecErr.ToolPath)
	case errors.As(err, &volTimeoutErr):
		app.say("install_media.timeout_volume",
			"volume", volTimeoutErr.Volume,
			"seconds", strconv.Itoa(int(volTimeoutErr.MaxWait.Seconds())),
		)
	case errors.As(err, &volNotFoundErr):
		app.say("install_media.volume_not_found",
			"volume", volNotFoundErr.ExpectedVolume,
			"name", volNotFoundErr.InstallerName,
		)
	case errors.As(err, &volNotAccessErr):
		app.say("install_media.volume_not_accessible",
			"path", volNotAccessErr.Path,
			"name", volNotAccessErr.InstallerName,
		)
	case errors.As(err, &installFailedErr):
		app.reportInstallationFailed(installFailedErr)
	case errors.As(err, &verifyErr):
		app.reportVerificationFailed(verifyErr)
	case errors.As(err, &retriesErr):
		app.say("common.retries_exceeded", "attempts", strconv.Itoa(retriesErr.Attempts))
	default:
		app.say("app.fatal", "error", err.Error())
	}
}

func (app *app) reportDeviceBusy(busyErr *diskutil.DeviceBusyError) {
	app.say("disk.partition_fail_in_use", "disk", busyErr.DiskPath)

	if busyErr.ProcessName != "" {
		app.say("disk.proc_using",
			"process_name", busyErr.ProcessName,
			"process_id", busyErr.ProcessID,
		)
	} else {
		app.say("disk.proc_using_generic")
	}

	app.say("disk.solutions")
	app.say("disk.solution_1")
	app.say("disk.solution_2")
	app.say("disk.solution_3")
	if busyErr.ProcessID != "" {
		app.say("disk.solution_4_kill", "process_id", busyErr.ProcessID)
	}
	app.say("disk.solution_5_wait")
	app.say("disk.partitioning_blocked")
	app.say("disk.rerun_after_free")
}

func (app *app) reportInstallationFailed(failedErr *installmedia.InstallationFailedError) {
	app.say("install_media.fail",
		"name", failedErr.InstallerName,
		"code", strconv.Itoa(failedErr.ExitStatus),
	)

	switch failedErr.Hint {
	case installmedia.HintProcessKilled:
		app.say("install_media.sigkill_help")
	default:
		app.say("install_media.check_mounted_help")
	}

	if failedErr.Output != "" {
		app.say("install_media.error_output", "output", failedErr.Output)
	}
}

func (app *app) reportVerificationFailed(verifyErr *installmedia.VerificationFailedError) {
	app.say("install_media.seems_failed")

	content := app.tr.T("common.empty")
	if len(verifyErr.Listing) > 0 {
		content = strings.Join(verifyErr.Listing, ", ")
	}
	app.say("install_media.current_content", "content", content)
	app.say("install_media.volume_path", "path", verifyErr.Path)
	app.say("install_media.check_manually", "path", verifyErr.Path)
}

func (app *app) say(key string, args ...string) {
	fmt.Fprintln(app.out, app.tr.T(key, args...))
}

func formatGB(bytes uint64) string {
	return fmt.Sprintf("%.1f", float64(bytes)/partition.BytesPerGB)
}
