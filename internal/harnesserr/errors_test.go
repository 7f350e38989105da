package harnesserr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/schemaprism/prism/internal/harnesserr"
	"github.com/stretchr/testify/assert"
)

func TestIsSkip(t *testing.T) {
	err := harnesserr.New(harnesserr.InputSkip, "loader", errors.New("bad json"))
	assert.True(t, harnesserr.IsSkip(err))
	assert.False(t, harnesserr.IsFatal(err))
}

func TestIsFatal(t *testing.T) {
	err := harnesserr.New(harnesserr.ConfigFail, "config", errors.New("missing file"))
	assert.True(t, harnesserr.IsFatal(err))

	wrapped := fmt.Errorf("loading config: %w", err)
	assert.True(t, harnesserr.IsFatal(wrapped))
}

func TestUnrelatedErrorIsNeither(t *testing.T) {
	err := errors.New("plain error")
	assert.False(t, harnesserr.IsSkip(err))
	assert.False(t, harnesserr.IsFatal(err))
}
