package main

import (
	"context"
	"os"

	"github.com/charmbracelet/log"

	"github.com/enfabrica/geet/internal/cli"
	"github.com/enfabrica/geet/internal/config"
)

// These variables are set at build time via -ldflags
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

func main() {
	cli.Version = Version
	cli.Commit = Commit
	cli.BuildDate = BuildDate

	cfg, err := config.Load()
	if err != nil {
		log.Error(err.Error())
		os.Exit(config.ExitConfigurationError)
	}

	app, err := cli.New(cfg, nil, os.Stdout)
	if err != nil {
		// A broken command declaration; fix it at the source.
		log.Error(err.Error())
		os.Exit(config.ExitConfigurationError)
	}

	os.Exit(app.Run(context.Background(), os.Args[1:]))
}
