//go:build unit

package errs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractStackLines(t *testing.T) {
	assert.Nil(t, ExtractStackLines(nil, 5))

	err := Wrap(errors.New("connection reset"), "failed to update spot")
	lines := ExtractStackLines(err, 3)
	assert.Len(t, lines, 3)
	assert.Contains(t, lines[0], "failed to update spot")

	assert.Greater(t, len(ExtractStackLines(err, 0)), 3)
}
