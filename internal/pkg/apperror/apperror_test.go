package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_StatusByKind(t *testing.T) {
	cases := map[Kind]int{
		KindValidation: http.StatusBadRequest,
		KindConflict:   http.StatusBadRequest,
		KindAuth:       http.StatusUnauthorized,
		KindForbidden:  http.StatusForbidden,
		KindNotFound:   http.StatusNotFound,
		KindInternal:   http.StatusInternalServerError,
	}
	for kind, status := range cases {
		assert.Equal(t, status, New(kind, "X", "x").Status(), string(kind))
	}
}

func TestError_IsSurvivesCopies(t *testing.T) {
	sentinel := NotFound("ROOM_NOT_FOUND", "room not found")

	wrapped := fmt.Errorf("lookup: %w", sentinel.WithDetails(map[string]string{"id": "1"}))
	assert.ErrorIs(t, wrapped, sentinel)
	assert.False(t, errors.Is(wrapped, NotFound("USER_NOT_FOUND", "user not found")))
}

func TestFrom_ForeignErrorIsInternal(t *testing.T) {
	cause := errors.New("connection reset")
	e := From(cause)

	assert.Equal(t, KindInternal, e.Kind)
	assert.ErrorIs(t, e, cause)
	assert.Nil(t, From(nil))
}
