package transport

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/voyago/api/internal/entity"

	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "offer not found", err: entity.ErrOfferNotFound, expected: http.StatusNotFound},
		{name: "booking not found", err: entity.ErrBookingNotFound, expected: http.StatusNotFound},
		{name: "user not found", err: entity.ErrUserNotFound, expected: http.StatusNotFound},
		{name: "unauthorized", err: entity.ErrUnauthorized, expected: http.StatusUnauthorized},
		{name: "bad credentials", err: entity.ErrInvalidCredentials, expected: http.StatusUnauthorized},
		{name: "forbidden", err: entity.ErrForbidden, expected: http.StatusForbidden},
		{name: "email taken", err: entity.ErrEmailTaken, expected: http.StatusBadRequest},
		{name: "not enough capacity", err: entity.ErrNotEnoughCapacity, expected: http.StatusBadRequest},
		{name: "invalid transition", err: entity.ErrInvalidStatusTransition, expected: http.StatusBadRequest},
		{
			name:     "wrapped transition error keeps its status",
			err:      fmt.Errorf("%w: confirmed -> pending", entity.ErrInvalidStatusTransition),
			expected: http.StatusBadRequest,
		},
		{name: "unknown error", err: errors.New("boom"), expected: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, statusFromError(tt.err))
		})
	}
}
