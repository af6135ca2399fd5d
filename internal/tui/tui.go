package tui

import (
	"context"
	"time"

	"github.com/MKhiriev/mindcraft-client/internal/logger"
	"github.com/MKhiriev/mindcraft-client/internal/service"
	"github.com/MKhiriev/mindcraft-client/models"
	tea "github.com/charmbracelet/bubbletea"
)

// Options tune the terminal UI.
type Options struct {
	// RefreshInterval re-lists documents on the dashboard. Zero disables it.
	RefreshInterval time.Duration
	// ExportDir is where exported notes are written.
	ExportDir string
	BuildInfo models.AppBuildInfo
}

type TUI struct {
	services *service.ClientServices
	opts     Options
	logger   *logger.Logger
}

func New(services *service.ClientServices, opts Options, logger *logger.Logger) (*TUI, error) {
	if opts.ExportDir == "" {
		opts.ExportDir = "."
	}
	return &TUI{services: services, opts: opts, logger: logger}, nil
}

// Pages returns the route table bound to the client services.
func (t *TUI) Pages(ctx context.Context) map[string]PageFactory {
	return map[string]PageFactory{
		RouteUpload: func(RouteParams) tea.Model {
			return NewUploadModel(ctx, t.services.SubmissionService)
		},
		RouteDashboard: func(RouteParams) tea.Model {
			return NewDashboardModel(ctx, t.services.DocumentService, t.services.RefreshJob, t.opts.RefreshInterval)
		},
		RouteNotes: func(p RouteParams) tea.Model {
			return NewNotesModel(ctx, t.services.ArtifactService, p.DocumentID, t.opts.ExportDir)
		},
		RouteQuiz: func(p RouteParams) tea.Model {
			return NewQuizModel(ctx, t.services.ArtifactService, t.services.AccuracyRecorder, p.DocumentID)
		},
		RouteFlashcards: func(p RouteParams) tea.Model {
			return NewFlashcardsModel(ctx, t.services.ArtifactService, p.DocumentID)
		},
	}
}

// Run starts the UI on the upload page and blocks until the user quits or
// ctx is cancelled. A ctrl+c exit returns [ErrUserQuit].
func (t *TUI) Run(ctx context.Context) error {
	root := NewRootModel(t.Pages(ctx), RouteUpload, t.opts.BuildInfo)

	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		t.logger.Err(err).Str("func", "TUI.Run").Msg("terminal ui stopped with error")
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.QuitByUser() {
		return ErrUserQuit
	}
	return nil
}
