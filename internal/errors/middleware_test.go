package errors

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"acctfilter/internal/shared/testutil"
)

func TestErrorMiddleware_Handler(t *testing.T) {
	tests := []struct {
		name       string
		handler    http.HandlerFunc
		wantStatus int
		wantLevel  slog.Level
	}{
		{
			name: "successful request",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("ok"))
			},
			wantStatus: http.StatusOK,
			wantLevel:  slog.LevelInfo,
		},
		{
			name: "client error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
			},
			wantStatus: http.StatusBadRequest,
			wantLevel:  slog.LevelWarn,
		},
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusServiceUnavailable)
			},
			wantStatus: http.StatusServiceUnavailable,
			wantLevel:  slog.LevelError,
		},
		{
			name: "panic is recovered",
			handler: func(w http.ResponseWriter, r *http.Request) {
				panic("kaboom")
			},
			wantStatus: http.StatusInternalServerError,
			wantLevel:  slog.LevelError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, logs := testutil.NewTestLogger(t)
			mw := NewErrorMiddleware(NewErrorHandler(logger, false), logger)

			w := httptest.NewRecorder()
			mw.Handler(tt.handler).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health?verbose=1", nil))

			assert.Equal(t, tt.wantStatus, w.Code)

			var found bool
			for _, rec := range logs.GetRecordsByLevel(tt.wantLevel) {
				if rec.Message != "http request" {
					continue
				}
				found = true
				assert.EqualValues(t, tt.wantStatus, rec.Attrs["status"])
				assert.Equal(t, "/api/health", rec.Attrs["path"])
				assert.Equal(t, "verbose=1", rec.Attrs["query"])
			}
			assert.True(t, found, "request log at %s", tt.wantLevel)
		})
	}
}

func TestProblemDetails_MarshalJSON(t *testing.T) {
	problem := NewProblemDetails(http.StatusBadRequest, TypeUnknownColumn, "Unknown Column", "", "/x").
		WithExtension("parameter", "int_rate_col").
		WithExtension("type", "overridden")

	data, err := json.Marshal(problem)
	require.NoError(t, err)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &body))
	assert.Equal(t, TypeUnknownColumn, body["type"], "standard members win over extensions")
	assert.Equal(t, "int_rate_col", body["parameter"])
	assert.EqualValues(t, http.StatusBadRequest, body["status"])
	assert.NotContains(t, body, "detail")
	assert.Equal(t, "/x", body["instance"])
}

func TestProblemDetails_WithExtensionOnZeroValue(t *testing.T) {
	var problem ProblemDetails
	problem.WithExtension("k", 1)
	assert.Equal(t, 1, problem.Extensions["k"])
}

func TestAppError(t *testing.T) {
	err := NewExportError("failed to encode result.xlsx", os.ErrClosed).WithContext("rows", 3)

	assert.Equal(t, ErrTypeExport, err.Type)
	assert.Equal(t, "[EXPORT] failed to encode result.xlsx: "+os.ErrClosed.Error(), err.Error())
	assert.ErrorIs(t, err, os.ErrClosed)
	assert.Equal(t, 3, err.Context["rows"])

	bare := NewStorageError("disk full", nil)
	assert.Equal(t, "[STORAGE] disk full", bare.Error())
}

func TestAPIErrorConstructors(t *testing.T) {
	invalid := InvalidRequestWithError(os.ErrInvalid)
	assert.Equal(t, http.StatusBadRequest, invalid.StatusCode)
	assert.Equal(t, "INVALID_REQUEST", invalid.ErrorCode)
	assert.Equal(t, os.ErrInvalid.Error(), invalid.Details)

	field := ErrValidation("operation", "unknown")
	require.IsType(t, ValidationErrors{}, field.Details)
	assert.Equal(t, []ValidationError{{Field: "operation", Message: "unknown"}}, field.Details.(ValidationErrors).Errors)

	many := NewValidationErrors([]ValidationError{{Field: "a", Message: "x"}, {Field: "b", Message: "y"}})
	assert.Len(t, many.Details.(ValidationErrors).Errors, 2)
	assert.Equal(t, "Request validation failed", many.Error())
}
