package main

import (
	"errors"
	"fmt"
	"os"

	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	boshsys "github.com/cloudfoundry/bosh-utils/system"

	"github.com/osmedia/multiboot/app"
	"github.com/osmedia/multiboot/i18n"
)

const mainLogTag = "main"

func main() {
	logger := newLogger()
	defer logger.HandlePanic("Main")

	tr := i18n.NewCatalog(i18n.DetectLanguage())

	// Device-level diskutil operations require root; failing late inside
	// partitioning would leave a half-touched disk.
	if os.Geteuid() != 0 {
		fmt.Fprintln(os.Stderr, tr.T("common.needs_root"))
		os.Exit(1)
	}

	fs := boshsys.NewOsFileSystem(logger)
	runner := boshsys.NewExecCmdRunner(logger)

	anApp := app.New(logger, fs, runner, os.Stdin, os.Stdout)

	err := anApp.Setup(os.Args)
	if err != nil {
		logger.Error(mainLogTag, "App setup %s", err.Error())
		fmt.Fprintln(os.Stderr, tr.T("app.fatal", "error", err.Error()))
		os.Exit(1)
	}

	err = anApp.Run()
	if err != nil {
		if errors.Is(err, app.ErrCancelled) {
			os.Exit(0)
		}
		logger.Error(mainLogTag, "App run %s", err.Error())
		os.Exit(1)
	}
}

// newLogger honors -logLevel before the full option parse so setup problems
// themselves are loggable. Anything unparseable falls back to errors only.
func newLogger() boshlog.Logger {
	level := boshlog.LevelError

	opts, err := app.ParseOptions(os.Args)
	if err == nil && opts.LogLevel != "" {
		parsed, err := boshlog.Levelify(opts.LogLevel)
		if err == nil {
			level = parsed
		}
	}

	return boshlog.NewLogger(level)
}
