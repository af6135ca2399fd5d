// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "io"

// PDFUpload is a single PDF file submitted to POST /process-pdf as the
// multipart field "file".
type PDFUpload struct {
	// FileName is the base name sent in the multipart part header.
	FileName string
	// Content streams the file bytes. The caller owns closing it.
	Content io.Reader
}

// YoutubeRequest is the body of POST /process-youtube.
type YoutubeRequest struct {
	URL string `json:"url"`
}

// AccuracyRequest is the body of POST /accuracy. It mirrors a single quiz
// answer to the backend for analytics.
type AccuracyRequest struct {
	UserID     string `json:"user_id"`
	QuestionID string `json:"question_id"`
	Correct    bool   `json:"correct"`
}

// ProcessingAck is the enqueue acknowledgment returned by the ingestion
// endpoints. The client only cares that the call succeeded; the body is kept
// for logging.
type ProcessingAck struct {
	Raw []byte
}
