package installmedia

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"code.cloudfoundry.org/clock"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	boshsys "github.com/cloudfoundry/bosh-utils/system"

	"github.com/osmedia/multiboot/i18n"
	"github.com/osmedia/multiboot/installer"
	"github.com/osmedia/multiboot/progress"
	"github.com/osmedia/multiboot/volume"
)

const (
	toolRelativePath = "Contents/Resources/createinstallmedia"
	executableMask   = 0111

	writeEstimate = 20 * time.Minute

	// The volume needs a moment to settle after the tool exits before its
	// content can be trusted; a failed first verification gets one retry
	// after a longer pause.
	postWriteDelay = 2 * time.Second
	retryDelay     = 3 * time.Second

	// 128 + SIGKILL; the tool's own -9 exits land here too.
	killedExitStatus = 137
)

// Creator writes installation media for each installer in turn, strictly
// sequentially. The first failure aborts the remaining queue since every
// later volume lives on the same possibly half-written device.
type Creator struct {
	fs          boshsys.FileSystem
	resolver    volume.Resolver
	executor    progress.Executor
	verifier    *Verifier
	timeService clock.Clock
	tr          *i18n.Catalog
	out         io.Writer
	logger      boshlog.Logger
	logTag      string

	maxVolumeWait time.Duration
}

func NewCreator(
	fs boshsys.FileSystem,
	resolver volume.Resolver,
	executor progress.Executor,
	verifier *Verifier,
	timeService clock.Clock,
	tr *i18n.Catalog,
	out io.Writer,
	logger boshlog.Logger,
	maxVolumeWait time.Duration,
) *Creator {
	return &Creator{
		fs:            fs,
		resolver:      resolver,
		executor:      executor,
		verifier:      verifier,
		timeService:   timeService,
		tr:            tr,
		out:           out,
		logger:        logger,
		logTag:        "InstallMediaCreator",
		maxVolumeWait: maxVolumeWait,
	}
}

func (c *Creator) Create(installers []installer.Installer) error {
	fmt.Fprintln(c.out, c.tr.T("install_media.creating"))
	fmt.Fprintln(c.out, c.tr.T("install_media.duration_hint"))

	for _, inst := range installers {
		if err := c.createOne(inst); err != nil {
			return err
		}
	}

	return nil
}

func (c *Creator) createOne(inst installer.Installer) error {
	toolPath := filepath.Join(inst.Path, toolRelativePath)

	if !c.fs.FileExists(toolPath) {
		return &ToolMissingError{InstallerName: inst.Name, ToolPath: toolPath}
	}

	stat, err := c.fs.Stat(toolPath)
	if err != nil || stat.Mode().Perm()&executableMask == 0 {
		return &ToolNotExecutableError{InstallerName: inst.Name, ToolPath: toolPath}
	}

	fmt.Fprintln(c.out, c.tr.T("install_media.installing", "name", inst.Name))

	if !c.resolver.WaitForMount(inst.Volume, c.maxVolumeWait) {
		return &VolumeTimeoutError{InstallerName: inst.Name, Volume: inst.Volume, MaxWait: c.maxVolumeWait}
	}

	volPath, err := c.resolver.Resolve(inst.Volume, inst.Name)
	if err != nil {
		return err
	}

	volStat, err := c.fs.Stat(volPath)
	if err != nil || !volStat.IsDir() {
		return &VolumeNotAccessibleError{InstallerName: inst.Name, Path: volPath}
	}

	outcome, err := c.executor.RunWithProgress(
		boshsys.Command{
			Name: toolPath,
			Args: []string{"--volume", volPath, "--applicationpath", inst.Path, "--nointeraction"},
		},
		WriterRules(c.tr),
		c.tr.T("progress.installation"),
		writeEstimate,
	)
	if err != nil {
		return &InstallationFailedError{
			InstallerName: inst.Name,
			ExitStatus:    outcome.ExitStatus,
			Output:        outcome.Output(),
			Hint:          classifyExit(outcome.ExitStatus),
		}
	}

	c.logToolOutput(inst.Name, outcome.Lines)

	c.timeService.Sleep(postWriteDelay)
	if c.verifier.Verify(volPath) {
		fmt.Fprintln(c.out, c.tr.T("install_media.success", "name", inst.Name))
		return nil
	}

	c.logger.Debug(c.logTag, "First verification of %s failed, retrying", volPath)
	c.timeService.Sleep(retryDelay)
	if c.verifier.Verify(volPath) {
		fmt.Fprintln(c.out, c.tr.T("install_media.success", "name", inst.Name))
		return nil
	}

	return &VerificationFailedError{
		InstallerName: inst.Name,
		Path:          volPath,
		Listing:       c.verifier.ListItems(volPath),
	}
}

func classifyExit(exitStatus int) Hint {
	if exitStatus < 0 || exitStatus == killedExitStatus {
		return HintProcessKilled
	}
	return HintCheckMounted
}

// logToolOutput keeps the interesting lines of a successful run in the log:
// the lines naming a phase or a problem, or failing that the tail.
func (c *Creator) logToolOutput(installerName string, lines []string) {
	if len(lines) == 0 {
		return
	}

	keywords := []string{"error", "fail", "success", "complete", "done", "copying", "erasing", "creating", "warning"}

	var important []string
	for _, line := range lines {
		lower := strings.ToLower(line)
		for _, keyword := range keywords {
			if strings.Contains(lower, keyword) {
				important = append(important, line)
				break
			}
		}
	}

	c.logger.Info(c.logTag, "Writer tool for %s exited", installerName)

	if len(important) > 10 {
		important = important[:10]
	}
	if len(important) == 0 {
		start := len(lines) - 5
		if start < 0 {
			start = 0
		}
		important = lines[start:]
	}
	for _, line := range important {
		c.logger.Info(c.logTag, "%s", line)
	}
}
