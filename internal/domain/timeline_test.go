package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTimelineName_Valid(t *testing.T) {
	cases := []string{"default", "Career 2026", "q1.plan", "a", "x_y-z", strings.Repeat("a", 64)}
	for _, name := range cases {
		assert.NoError(t, ValidateTimelineName(name), "should accept %q", name)
	}
}

func TestValidateTimelineName_Invalid(t *testing.T) {
	cases := []string{"", " leading", "-dash", "slash/name", strings.Repeat("a", 65), "tab\tname"}
	for _, name := range cases {
		err := ValidateTimelineName(name)
		require.Error(t, err, "should reject %q", name)
		var vErr *ValidationError
		assert.True(t, errors.As(err, &vErr))
	}
}

func TestTimeline_DisplayID(t *testing.T) {
	assert.Equal(t, "12345678", (&Timeline{ID: "123456789abc"}).DisplayID())
	assert.Equal(t, "abc", (&Timeline{ID: "abc"}).DisplayID())
}
