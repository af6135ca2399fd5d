package client

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/mindcraft-client/internal/logger"
	"github.com/MKhiriev/mindcraft-client/internal/service"
	"github.com/MKhiriev/mindcraft-client/internal/tui"
)

// DefaultDrainTimeout bounds how long shutdown waits for pending accuracy
// events.
const DefaultDrainTimeout = 5 * time.Second

type App struct {
	services     *service.ClientServices
	ui           UserInterface
	logger       *logger.Logger
	drainTimeout time.Duration
}

func NewApp(services *service.ClientServices, ui UserInterface, logger *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("client app: services and ui are required")
	}
	return &App{
		services:     services,
		ui:           ui,
		logger:       logger,
		drainTimeout: DefaultDrainTimeout,
	}, nil
}

// Run shows the UI until the user quits or the process receives SIGTERM,
// then stops background work. Quitting with ctrl+c is a normal exit.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	a.logger.Info().Str("func", "App.Run").Msg("client started")

	err := a.ui.Run(ctx)
	a.shutdown()

	if errors.Is(err, tui.ErrUserQuit) {
		a.logger.Info().Str("func", "App.Run").Msg("client stopped by user")
		return nil
	}
	return err
}

func (a *App) shutdown() {
	a.services.RefreshJob.Stop()

	drained := make(chan struct{})
	go func() {
		a.services.AccuracyRecorder.Wait()
		close(drained)
	}()

	select {
	case <-drained:
	case <-time.After(a.drainTimeout):
		a.logger.Warn().Str("func", "App.shutdown").Msg("pending accuracy events were not delivered")
	}
}
