package plan

import (
	"fmt"

	"github.com/lunafit/lunafit/internal/errors"
)

// Sentinel errors surfaced by plan generation. Handlers map them to
// client-visible status codes.
var (
	// ErrNoCandidateTemplates means the template catalog has no template for
	// the requested goal.
	ErrNoCandidateTemplates = errors.NewSentinel("no candidate templates for goal")

	// ErrNoScorableTemplates means scoring produced no usable candidate even
	// after the selection fallbacks.
	ErrNoScorableTemplates = errors.NewSentinel("no scorable templates")
)

// ProfileError reports an invalid field of an incoming generation request.
type ProfileError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ProfileError) Error() string {
	return fmt.Sprintf("invalid profile field %q: %s", e.Field, e.Message)
}

func profileErrorf(field, format string, args ...any) error {
	return &ProfileError{Field: field, Message: fmt.Sprintf(format, args...)}
}
