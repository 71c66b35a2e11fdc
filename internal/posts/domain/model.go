package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidAction is returned for a modify action other than reduce or elaborate.
	ErrInvalidAction = errors.New("invalid action. Use 'reduce' or 'elaborate'")
	// ErrMissingTitle is returned when a project post is requested without a title.
	ErrMissingTitle = errors.New("project title is required")
	// ErrProviderNotConfigured is returned when no generation credential is set.
	ErrProviderNotConfigured = errors.New("text generation provider is not configured")
)

// Action is a modification applied to an existing post.
type Action string

const (
	ActionReduce    Action = "reduce"
	ActionElaborate Action = "elaborate"
)

// ParseAction validates a raw action value.
func ParseAction(s string) (Action, error) {
	switch a := Action(strings.TrimSpace(s)); a {
	case ActionReduce, ActionElaborate:
		return a, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidAction, s)
	}
}

// CommentRequest describes a congratulatory comment on someone else's post.
// CurrentComment, when non-blank, switches generation to refinement mode.
type CommentRequest struct {
	PostText       string
	PostAuthor     string
	Refinement     string
	CurrentComment string
}

// GenerationError reports a failed call to the text generation provider.
type GenerationError struct {
	Op  string
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("error %s: %v", strings.ReplaceAll(e.Op, "_", " "), e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }
