package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrTransport marks a failed call to an external service: non-2xx
	// status, an error field embedded in the response body, or a timeout.
	ErrTransport = errors.New("service unreachable")
	// ErrNotFound marks a lookup that returned no candidate with a usable
	// release date. It is a normal outcome, routed to the unresolved queue
	// rather than treated as a crash condition.
	ErrNotFound = errors.New("not found")
	// ErrDateParse marks a release date that was present but unparseable.
	ErrDateParse = errors.New("date parse error")
	// ErrValidation marks rejected user or caller input.
	ErrValidation = errors.New("validation error")
	// ErrConfiguration marks unrecoverable local setup problems.
	ErrConfiguration = errors.New("configuration error")
)

// Wrap builds an error message that includes stage context while tagging it
// with the provided marker for later classification. The marker should be one
// of the exported sentinel errors above.
func Wrap(marker error, stage, operation, message string, err error) error {
	detail := buildDetail(stage, operation, message)
	if marker == nil {
		marker = ErrTransport
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// RoutesToReview reports whether an entry that failed with err belongs on the
// unresolved queue instead of aborting the batch. Transport failures and
// missing candidates are both contained at the entry level.
func RoutesToReview(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, ErrTransport)
}

func buildDetail(stage, operation, message string) string {
	parts := make([]string, 0, 3)
	if stage = strings.TrimSpace(stage); stage != "" {
		parts = append(parts, stage)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "service failure"
	}
	return strings.Join(parts, ": ")
}
