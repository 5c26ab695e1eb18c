package app

import (
	"flag"
	"io/ioutil"
)

type Options struct {
	ConfigPath string
	LogLevel   string
	AppDir     string
	Restore    bool
}

func ParseOptions(args []string) (Options, error) {
	var opts Options

	flagSet := flag.NewFlagSet("multiboot", flag.ContinueOnError)
	flagSet.SetOutput(ioutil.Discard)
	flagSet.StringVar(&opts.ConfigPath, "config", "", "Path to the configuration file")
	flagSet.StringVar(&opts.LogLevel, "logLevel", "", "Logging level (none, error, warn, info, debug)")
	flagSet.StringVar(&opts.AppDir, "appDir", "", "Directory to scan for installer applications")
	flagSet.BoolVar(&opts.Restore, "restore", false, "Erase the target disk back to a single empty volume")

	err := flagSet.Parse(args[1:])

	return opts, err
}
