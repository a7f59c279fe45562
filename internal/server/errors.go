package server

import (
	"errors"
	"net/http"

	"github.com/spigell/resume-analyzer/internal/analysis"
	"github.com/spigell/resume-analyzer/internal/extract"
	"github.com/spigell/resume-analyzer/internal/store"
)

var (
	errMissingInput = errors.New("Resume file and job description are required")
	errMissingText  = errors.New("Text is required")
	errNoHistory    = errors.New("analysis history is disabled")
	errBadLimit     = errors.New("limit must be a positive integer")
	errTooLarge     = errors.New("uploaded file is too large")
	errUnreadable   = errors.New("could not read resume file")
)

// httpStatus returns the status code for an error returned by a handler dependency.
func httpStatus(err error) int {
	switch {
	case errors.Is(err, errMissingInput),
		errors.Is(err, errMissingText),
		errors.Is(err, errBadLimit),
		errors.Is(err, errUnreadable),
		errors.Is(err, analysis.ErrEmptyInput),
		errors.Is(err, extract.ErrUnsupportedFileType),
		errors.Is(err, extract.ErrPDFNotSupported):
		return http.StatusBadRequest
	case errors.Is(err, errTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, errNoHistory):
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}
