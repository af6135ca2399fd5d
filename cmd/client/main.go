package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/mindcraft-client/internal/adapter"
	"github.com/MKhiriev/mindcraft-client/internal/client"
	"github.com/MKhiriev/mindcraft-client/internal/config"
	"github.com/MKhiriev/mindcraft-client/internal/logger"
	"github.com/MKhiriev/mindcraft-client/internal/service"
	"github.com/MKhiriev/mindcraft-client/internal/store"
	"github.com/MKhiriev/mindcraft-client/internal/tui"
	"github.com/MKhiriev/mindcraft-client/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo)

	log, closeLog := logger.NewClientLogger("mindcraft-client")
	defer closeLog()

	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := log.WithContext(context.Background())

	localStorage, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer localStorage.Close()

	session, err := service.LoadSessionStore(ctx, localStorage.SessionRepository)
	if err != nil {
		log.Fatal().Err(err).Msg("load session")
	}
	if cfg.App.Token != "" {
		if err = session.SetToken(ctx, cfg.App.Token); err != nil {
			log.Fatal().Err(err).Msg("save session token")
		}
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, session, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	services := service.NewClientServices(ctx, session, serverAdapter, log)

	ui, err := tui.New(services, tui.Options{
		RefreshInterval: cfg.Workers.RefreshInterval,
		ExportDir:       exportDir(),
		BuildInfo:       buildInfo,
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Error().Err(err).Msg("client run error")
		localStorage.Close()
		closeLog()
		os.Exit(1)
	}
}

// exportDir is the working directory, or the executable's directory when
// the working directory is unknown.
func exportDir() string {
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	if exe, err := os.Executable(); err == nil {
		return filepath.Dir(exe)
	}
	return "."
}
