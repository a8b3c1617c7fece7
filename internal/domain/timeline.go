package domain

import (
	"fmt"
	"regexp"
	"time"
)

// DefaultTimelineName is used when no timeline is named on the command line.
const DefaultTimelineName = "default"

var timelineNamePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9 _.-]{0,63}$`)

// Timeline is a named goal tree stored in the workspace.
type Timeline struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidateTimelineName checks that name starts with a letter or digit and
// holds at most 64 letters, digits, spaces, dots, dashes or underscores.
func ValidateTimelineName(name string) error {
	if name == "" {
		return &ValidationError{Reason: "timeline name is required"}
	}
	if !timelineNamePattern.MatchString(name) {
		return &ValidationError{Reason: fmt.Sprintf(
			"timeline name %q must start with a letter or digit and use only letters, digits, spaces, '.', '-' or '_' (max 64)", name)}
	}
	return nil
}

// DisplayID returns the first 8 characters of the ID.
func (t *Timeline) DisplayID() string {
	if len(t.ID) >= 8 {
		return t.ID[:8]
	}
	return t.ID
}
