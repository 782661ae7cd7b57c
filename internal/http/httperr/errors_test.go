package httperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/go-task-tracker/internal/service"
)

func TestToHTTP_Mapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantDetail string
	}{
		{"nil is a programming error", nil, http.StatusInternalServerError, "internal error"},
		{"invalid argument", service.ErrInvalidArgument, http.StatusBadRequest, "invalid argument"},
		{"permission denied", service.ErrPermissionDenied, http.StatusForbidden, "forbidden"},
		{"not found", service.ErrNotFound, http.StatusNotFound, "not found"},
		{"internal", service.ErrInternal, http.StatusInternalServerError, "internal error"},
		{"unknown error is opaque", errors.New("pq: syntax error at line 3"), http.StatusInternalServerError, "internal error"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			status, resp := ToHTTP(tc.err)
			require.Equal(t, tc.wantStatus, status)
			require.Equal(t, tc.wantDetail, resp.Detail)
		})
	}
}

func TestToHTTP_WrappedSentinels(t *testing.T) {
	err := fmt.Errorf("service/tasks/TaskByID: %w", service.ErrNotFound)

	status, resp := ToHTTP(err)
	require.Equal(t, http.StatusNotFound, status)
	require.Equal(t, "not found", resp.Detail)
}

func TestToHTTP_ValidationError_ReasonSurvives(t *testing.T) {
	err := fmt.Errorf("service/tasks/CreateTask: %w", &service.ValidationError{Reason: "title must not be empty"})

	status, resp := ToHTTP(err)
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, "title must not be empty", resp.Detail)
}

func TestWriteError_Body(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, service.ErrNotFound)

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "not found", body.Detail)
}

func TestWrite_ExplicitStatus(t *testing.T) {
	rec := httptest.NewRecorder()
	Write(rec, http.StatusUnauthorized, DetailUnauthorized)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.JSONEq(t, `{"detail":"Invalid or expired token"}`, rec.Body.String())
}
