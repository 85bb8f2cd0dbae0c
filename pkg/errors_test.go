package pkg

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapErrorf(t *testing.T) {
	orig := errors.New("latitude is NaN")
	err := WrapErrorf(orig, ErrBadParamInput, "invalid start point")

	assert.ErrorIs(t, err, orig)
	assert.Equal(t, ErrBadParamInput, ErrorCode(err))
	assert.Contains(t, err.Error(), "invalid start point")
	assert.Contains(t, err.Error(), "latitude is NaN")

	t.Run("plain error has internal code", func(t *testing.T) {
		assert.Equal(t, ErrInternalServerError, ErrorCode(errors.New("boom")))
	})
}
