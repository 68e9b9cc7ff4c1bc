package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/MKhiriev/lexsight/internal/adapter"
	"github.com/MKhiriev/lexsight/internal/client"
	"github.com/MKhiriev/lexsight/internal/config"
	"github.com/MKhiriev/lexsight/internal/logger"
	"github.com/MKhiriev/lexsight/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	var overrides config.ClientConfig
	fs := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	fs.StringVar(&overrides.Adapter.HTTPAddress, "s", "", "server address (e.g. http://localhost:8080)")
	fs.StringVar(&overrides.Session.CookieFile, "session", "", "file keeping the session cookie")
	fs.DurationVar(&overrides.Adapter.RequestTimeout, "timeout", 0, "request timeout (e.g. 2m)")
	_ = fs.Parse(os.Args[1:])

	cfg, err := config.GetClientConfig(overrides)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	if err = os.MkdirAll(filepath.Dir(cfg.Session.LogFile), 0o700); err != nil {
		fmt.Fprintf(os.Stderr, "error creating state directory: %v\n", err)
	}
	log := logger.NewClientLogger("lexsight-client", cfg.Session.LogFile)

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Error().Err(err).Msg("error creating server adapter")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	session := adapter.NewSessionFile(cfg.Session.CookieFile, cfg.Adapter.HTTPAddress)
	app := client.NewApp(serverAdapter, session, buildInfo, os.Stdin, os.Stdout, log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = app.Run(ctx, fs.Args()); err != nil {
		log.Error().Err(err).Msg("command failed")
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}
