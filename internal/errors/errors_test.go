package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapErrorToHTTP(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"invalid id", ErrInvalidID, http.StatusBadRequest, "INVALID_ID"},
		{"wrapped invalid id", fmt.Errorf("delete cart: %w", ErrInvalidID), http.StatusBadRequest, "INVALID_ID"},
		{"invalid amount", ErrInvalidAmount, http.StatusBadRequest, "INVALID_AMOUNT"},
		{"empty update", ErrEmptyUpdate, http.StatusBadRequest, "EMPTY_UPDATE"},
		{"charge failed", fmt.Errorf("stripe: %w", ErrChargeFailed), http.StatusBadGateway, "CHARGE_FAILED"},
		{"store failure", errors.New("connection reset"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpErr := MapErrorToHTTP(tt.err)
			assert.Equal(t, tt.wantStatus, httpErr.StatusCode)
			assert.Equal(t, tt.wantCode, httpErr.ToErrorResponse().Code)
		})
	}
}

func TestMapErrorToHTTP_HidesInternalDetail(t *testing.T) {
	httpErr := MapErrorToHTTP(errors.New("server selection timeout"))
	assert.Equal(t, "internal server error", httpErr.Error())
}
