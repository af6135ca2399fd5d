// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/mindcraft-client/internal/adapter"
)

// Messages shown for local submission failures.
const (
	MsgNotPDF      = "Selected file is not a PDF"
	MsgReadingFile = "Cannot read selected file"
	MsgInvalidURL  = "Invalid YouTube link"
)

// ErrorMessage returns the text shown to the user for a failed operation.
// Local input errors get a fixed message; everything else is delegated to
// adapter.ErrorMessage, which yields the server detail or "Error". The result
// is never empty.
func ErrorMessage(err error) string {
	switch {
	case errors.Is(err, ErrNotPDF):
		return MsgNotPDF
	case errors.Is(err, ErrReadingFile):
		return MsgReadingFile
	case errors.Is(err, ErrInvalidYoutubeURL):
		return MsgInvalidURL
	}

	return adapter.ErrorMessage(err)
}
