// MDFlex is a desktop markdown reader and editor.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"mdflex/internal/app"
	"mdflex/internal/config"
	"mdflex/internal/logger"
)

func main() {
	var (
		readMode   bool
		serve      bool
		port       int
		configPath string
		logLevel   string
		showHelp   bool
	)

	flags := pflag.NewFlagSet("mdflex", pflag.ContinueOnError)
	flags.BoolVarP(&readMode, "read", "r", false, "open read-only and follow the file on disk")
	flags.BoolVar(&serve, "serve", false, "serve a live preview to the browser")
	flags.IntVar(&port, "port", 0, "preview server port (overrides config)")
	flags.StringVarP(&configPath, "config", "c", "", "config file path")
	flags.StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	flags.BoolVarP(&showHelp, "help", "h", false, "show usage")
	flags.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: mdflex [flags] [file.md]\n\n")
		flags.PrintDefaults()
	}

	if err := flags.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}
	if showHelp {
		flags.Usage()
		return
	}

	log := logger.NewConsoleLogger(logger.ParseLevel(logLevel))

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Error("main", err, map[string]interface{}{
			"config": configPath,
		})
		os.Exit(1)
	}
	if port != 0 {
		cfg.PreviewPort = port
	}
	if err := cfg.Validate(); err != nil {
		log.Error("main", err, nil)
		os.Exit(1)
	}

	opts := app.Options{
		Config:      cfg,
		ConfigPath:  configPath,
		InitialFile: flags.Arg(0),
		ReadMode:    readMode,
		Serve:       serve,
	}

	if err := app.NewApplication(opts, log).Run(); err != nil {
		log.Error("main", err, nil)
		os.Exit(1)
	}
}
