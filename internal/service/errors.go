package service

import "errors"

// Submission input errors.
var (
	// ErrEmptyPDFPath is returned when no PDF file was chosen.
	ErrEmptyPDFPath = errors.New("no pdf file selected")

	// ErrEmptyYoutubeURL is returned when the YouTube link is blank.
	ErrEmptyYoutubeURL = errors.New("no youtube url provided")

	// ErrInvalidYoutubeURL is returned when the YouTube link cannot be
	// parsed.
	ErrInvalidYoutubeURL = errors.New("invalid youtube url")

	// ErrNotPDF is returned when the chosen file does not look like a PDF.
	ErrNotPDF = errors.New("file is not a pdf")

	// ErrReadingFile is returned when the chosen file cannot be opened or
	// read.
	ErrReadingFile = errors.New("cannot read file")
)
