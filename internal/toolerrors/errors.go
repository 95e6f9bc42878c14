// Package toolerrors classifies errors raised anywhere in the service layer
// into the fixed category taxonomy the tool layer reports to callers, and
// logs each returned error with its category. Panics are not recovered here.
package toolerrors

import (
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/sejmkit/gateway/internal/apierrors"
)

// Category is one of the five error categories exposed in
// EnrichedResponse.Metadata["error_category"].
type Category string

const (
	Validation   Category = "validation"
	NotFound     Category = "not_found"
	Precondition Category = "precondition"
	Unavailable  Category = "unavailable"
	Internal     Category = "internal"
)

// Classify maps err to its reporting category. Unrecognized errors are
// "internal".
func Classify(err error) Category {
	var notFound *apierrors.ActNotFoundError
	var invalidEli *apierrors.InvalidEliError
	var docNotLoaded *apierrors.DocumentNotLoadedError
	var resultSetNotFound *apierrors.ResultSetNotFoundError
	var contentNotAvailable *apierrors.ContentNotAvailableError
	var sectionNotFound *apierrors.SectionNotFoundError
	var unavailable *apierrors.ApiUnavailableError
	var validation *apierrors.ValidationError

	switch {
	case errors.As(err, &notFound):
		return NotFound
	case errors.As(err, &invalidEli):
		return Validation
	case errors.As(err, &docNotLoaded):
		return Precondition
	case errors.As(err, &resultSetNotFound):
		return Precondition
	case errors.As(err, &contentNotAvailable):
		return NotFound
	case errors.As(err, &sectionNotFound):
		return NotFound
	case errors.As(err, &unavailable):
		return Unavailable
	case errors.As(err, &validation):
		return Validation
	default:
		return Internal
	}
}

// Handle runs fn and, on error, logs it at error level (with caller info
// only for Internal) and returns the classified category
// alongside the error so the tool layer can shape an EnrichedResponse.
func Handle(toolName string, fn func() error) (Category, error) {
	err := fn()
	if err == nil {
		return "", nil
	}

	category := Classify(err)
	event := log.Error()
	if category == Internal {
		event = event.Caller()
	}
	event.Str("tool", toolName).Str("error_category", string(category)).Err(err).
		Msg("tool call failed")

	return category, err
}
