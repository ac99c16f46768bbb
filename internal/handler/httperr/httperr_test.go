//go:build unit

package httperr_test

import (
	"errors"
	"net/http"
	"testing"

	"smart-parking/internal/domain/lot"
	"smart-parking/internal/domain/spot"
	"smart-parking/internal/handler/httperr"
	"smart-parking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{name: "validation", err: lot.ErrInvalidCapacity, wantStatus: http.StatusBadRequest, wantMsg: "Total capacity must be at least 1"},
		{name: "wrapped validation", err: errs.Wrap(spot.ErrInvalidStatus, "set status"), wantStatus: http.StatusBadRequest, wantMsg: "Please provide valid status (AVAILABLE, OCCUPIED, or RESERVED)"},
		{name: "unauthenticated", err: errs.ErrInvalidCredentials, wantStatus: http.StatusUnauthorized, wantMsg: "Invalid email or password"},
		{name: "forbidden", err: errs.ErrForbidden, wantStatus: http.StatusForbidden, wantMsg: "Insufficient permissions"},
		{name: "not found", err: errs.ErrLotNotFound, wantStatus: http.StatusNotFound, wantMsg: "Parking lot not found"},
		{name: "conflict is a bad request", err: errs.ErrSpotLabelConflict, wantStatus: http.StatusBadRequest, wantMsg: "Spot number already exists in this parking lot"},
		{name: "anything else", err: errors.New("dial tcp: refused"), wantStatus: http.StatusInternalServerError, wantMsg: "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := httperr.Classify(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}
