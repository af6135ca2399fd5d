package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/mindcraft-client/internal/adapter"
	"github.com/MKhiriev/mindcraft-client/internal/logger"
	"github.com/MKhiriev/mindcraft-client/internal/validators"
	"github.com/MKhiriev/mindcraft-client/models"
)

const (
	pdfContentType = "application/pdf"
	// http.DetectContentType considers at most this many bytes
	sniffLen = 512
)

type clientSubmissionService struct {
	serverAdapter adapter.ServerAdapter
	validator     validators.Validator
	logger        *logger.Logger
}

// NewClientSubmissionService creates a [ClientSubmissionService] backed by
// serverAdapter.
func NewClientSubmissionService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientSubmissionService {
	return &clientSubmissionService{
		serverAdapter: serverAdapter,
		validator:     validators.NewRequestValidator(),
		logger:        logger,
	}
}

func (c *clientSubmissionService) SubmitPDF(ctx context.Context, path string) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return ErrEmptyPDFPath
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrReadingFile, err)
	}
	defer f.Close()

	if err = sniffPDF(f); err != nil {
		return err
	}

	upload := models.PDFUpload{
		FileName: filepath.Base(path),
		Content:  f,
	}
	if err = c.validator.Validate(ctx, upload); err != nil {
		return fmt.Errorf("%w: %w", ErrReadingFile, err)
	}

	ack, err := c.serverAdapter.SubmitPDF(ctx, upload)
	if err != nil {
		c.logger.Err(err).
			Str("func", "clientSubmissionService.SubmitPDF").
			Str("file", filepath.Base(path)).
			Msg("pdf submission failed")
		return fmt.Errorf("error submitting pdf: %w", err)
	}

	c.logger.Info().
		Str("func", "clientSubmissionService.SubmitPDF").
		Int("ack_bytes", len(ack.Raw)).
		Msg("pdf queued for processing")
	return nil
}

func (c *clientSubmissionService) SubmitYoutube(ctx context.Context, url string) error {
	url = strings.TrimSpace(url)
	if err := c.validator.Validate(ctx, models.YoutubeRequest{URL: url}); err != nil {
		if errors.Is(err, validators.ErrEmptyURL) {
			return ErrEmptyYoutubeURL
		}
		return fmt.Errorf("%w: %w", ErrInvalidYoutubeURL, err)
	}

	if _, err := c.serverAdapter.SubmitYoutube(ctx, url); err != nil {
		c.logger.Err(err).
			Str("func", "clientSubmissionService.SubmitYoutube").
			Str("url", url).
			Msg("youtube submission failed")
		return fmt.Errorf("error submitting youtube url: %w", err)
	}

	c.logger.Info().
		Str("func", "clientSubmissionService.SubmitYoutube").
		Msg("youtube link queued for processing")
	return nil
}

// sniffPDF checks the leading bytes of f and rewinds it.
func sniffPDF(f io.ReadSeeker) error {
	head := make([]byte, sniffLen)
	n, err := io.ReadFull(f, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return fmt.Errorf("%w: %w", ErrReadingFile, err)
	}

	if http.DetectContentType(head[:n]) != pdfContentType {
		return ErrNotPDF
	}

	if _, err = f.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("%w: %w", ErrReadingFile, err)
	}
	return nil
}
