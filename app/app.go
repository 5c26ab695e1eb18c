package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"code.cloudfoundry.org/clock"
	bosherr "github.com/cloudfoundry/bosh-utils/errors"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	boshsys "github.com/cloudfoundry/bosh-utils/system"

	"github.com/osmedia/multiboot/devices"
	"github.com/osmedia/multiboot/diskutil"
	"github.com/osmedia/multiboot/i18n"
	"github.com/osmedia/multiboot/installer"
	"github.com/osmedia/multiboot/installmedia"
	"github.com/osmedia/multiboot/partition"
	"github.com/osmedia/multiboot/progress"
	"github.com/osmedia/multiboot/ui"
	"github.com/osmedia/multiboot/volume"
)

// ErrCancelled marks a run the user ended on purpose, by answering a
// confirmation with anything but YES or by interrupting the process. It is
// not a failure.
var ErrCancelled = errors.New("cancelled by user")

type App interface {
	Setup(args []string) error
	Run() error
}

type app struct {
	logger boshlog.Logger
	logTag string
	fs     boshsys.FileSystem
	runner boshsys.CmdRunner
	in     io.Reader
	out    io.Writer

	opts   Options
	config Config
	tr     *i18n.Catalog

	diskutilClient diskutil.Client
	catalog        *devices.Catalog
	selector       *devices.Selector
	finder         *installer.Finder
	planner        *partition.Planner
	creator        *installmedia.Creator
	prompter       ui.Prompter
}

func New(
	logger boshlog.Logger,
	fs boshsys.FileSystem,
	runner boshsys.CmdRunner,
	in io.Reader,
	out io.Writer,
) App {
	return &app{
		logger: logger,
		logTag: "App",
		fs:     fs,
		runner: runner,
		in:     in,
		out:    out,
	}
}

func (app *app) Setup(args []string) error {
	var err error

	app.opts, err = ParseOptions(args)
	if err != nil {
		return bosherr.WrapError(err, "Parsing options")
	}

	app.config, err = LoadConfigFromPath(app.fs, app.opts.ConfigPath)
	if err != nil {
		return bosherr.WrapError(err, "Loading config")
	}
	if app.opts.AppDir != "" {
		app.config.AppDir = app.opts.AppDir
	}

	app.tr = i18n.NewCatalog(i18n.DetectLanguage())

	timeService := clock.NewClock()

	app.diskutilClient = diskutil.NewClient(app.runner, timeService, app.logger)
	app.catalog = devices.NewCatalog(app.diskutilClient, app.logger)
	app.prompter = ui.NewConsolePrompter(app.in, app.out, app.config.PromptAttempts)
	app.selector = devices.NewSelector(app.prompter, app.out, app.tr)
	app.finder = installer.NewFinder(app.fs, app.logger)

	executor := progress.NewExecutor(app.runner, ui.NewBar(app.out), app.logger)
	app.planner = partition.NewPlanner(
		app.diskutilClient, executor, app.tr, app.out, app.logger, app.config.MarginSizeMB,
	)

	resolver := volume.NewResolver(app.fs, app.diskutilClient, timeService, app.logger)
	verifier := installmedia.NewVerifier(app.fs, app.logger, app.config.MinVolumeSizeBytes)
	app.creator = installmedia.NewCreator(
		app.fs, resolver, executor, verifier, timeService,
		app.tr, app.out, app.logger, app.config.MaxVolumeWait(),
	)

	return nil
}

// Run executes the pipeline, watching for an interrupt on the side. An
// interrupt is reported as a cancellation with a partially-modified-device
// warning, not as an error.
func (app *app) Run() error {
	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt)
	defer signal.Stop(interrupts)

	done := make(chan error, 1)
	go func() { done <- app.runPipeline() }()

	select {
	case err := <-done:
		return err
	case <-interrupts:
		fmt.Fprintln(app.out)
		fmt.Fprintln(app.out, app.tr.T("common.cancelled"))
		fmt.Fprintln(app.out, app.tr.T("common.cancel_warning_partial"))
		return ErrCancelled
	}
}

func (app *app) runPipeline() error {
	err := app.pipeline()
	if err != nil && !errors.Is(err, ErrCancelled) {
		app.reportFailure(err)
	}
	return err
}

func (app *app) pipeline() error {
	if app.opts.Restore {
		return app.restore()
	}

	fmt.Fprintln(app.out, app.tr.T("installer.search_installers", "dir", app.config.AppDir))
	installers, err := app.finder.Find(app.config.AppDir, installer.DefaultTargets())
	if err != nil {
		return err
	}
	for _, inst := range installers {
		fmt.Fprintln(app.out, app.tr.T("installer.found", "name", inst.Name))
	}

	app.planner.PrintSizeSummary(installers)

	diskPath, err := app.selectDevice()
	if err != nil {
		return err
	}

	if err := app.verifyDiskSafety(diskPath); err != nil {
		return err
	}

	app.planner.CheckDiskSpace(diskPath, app.planner.TotalSpaceNeeded(installers))

	if err := app.confirmErase(diskPath, len(installers)); err != nil {
		return err
	}

	if err := app.planner.Unmount(diskPath); err != nil {
		return err
	}

	if err := app.planner.Partition(diskPath, installers); err != nil {
		return err
	}

	if err := app.creator.Create(installers); err != nil {
		return err
	}

	fmt.Fprintln(app.out, app.tr.T("app.all_done"))

	return nil
}

func (app *app) restore() error {
	diskPath, err := app.selectDevice()
	if err != nil {
		return err
	}

	if err := app.confirmErase(diskPath, 1); err != nil {
		return err
	}

	app.planner.Restore(diskPath)

	return nil
}

func (app *app) selectDevice() (string, error) {
	external, err := app.catalog.ListExternal()
	if err != nil {
		return "", err
	}

	return app.selector.Select(external)
}

// verifyDiskSafety refuses an internal disk without an explicit YES. A
// failing detail query downgrades to a warning; diskutil will still refuse
// genuinely unusable targets.
func (app *app) verifyDiskSafety(diskPath string) error {
	info, err := app.diskutilClient.Info(diskPath)
	if err != nil {
		app.logger.Warn(app.logTag, "Checking %s: %s", diskPath, err.Error())
		fmt.Fprintln(app.out, app.tr.T("disk.cannot_check_disk_info", "error", err.Error()))
		return nil
	}

	if !info.Internal {
		return nil
	}

	fmt.Fprintln(app.out, app.tr.T("disk.internal_warning", "disk", diskPath))
	fmt.Fprintln(app.out, app.tr.T("disk.internal_warning_more"))

	confirmed, err := app.prompter.Confirm(app.tr.T("disk.internal_confirm"), "YES")
	if err != nil {
		return err
	}
	if !confirmed {
		fmt.Fprintln(app.out, app.tr.T("common.cancelled"))
		return ErrCancelled
	}

	return nil
}

func (app *app) confirmErase(diskPath string, numPartitions int) error {
	fmt.Fprintln(app.out, app.tr.T("disk.erase_warning", "disk", diskPath))
	fmt.Fprintln(app.out, app.tr.T("disk.erase_warning_more", "num", fmt.Sprintf("%d", numPartitions)))

	confirmed, err := app.prompter.Confirm(app.tr.T("disk.erase_confirm"), "YES")
	if err != nil {
		return err
	}
	if !confirmed {
		fmt.Fprintln(app.out, app.tr.T("common.cancelled"))
		return ErrCancelled
	}

	return nil
}
