package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOK_WritesBareJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	OK(rec, map[string]string{"beerName": "Galaxy Cat"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"beerName":"Galaxy Cat"}`, rec.Body.String())
}

func TestCreated_SetsLocationWithoutBody(t *testing.T) {
	rec := httptest.NewRecorder()

	Created(rec, "/api/v1/beer/123")

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "/api/v1/beer/123", rec.Header().Get("Location"))
	assert.Empty(t, rec.Body.String())
}

func TestEmptyAndNoContent(t *testing.T) {
	rec := httptest.NewRecorder()
	Empty(rec, http.StatusOK)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())

	rec = httptest.NewRecorder()
	NoContent(rec)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestErrorHelpers(t *testing.T) {
	tests := []struct {
		name        string
		write       func(w http.ResponseWriter)
		wantStatus  int
		wantMessage string
	}{
		{name: "not found default", write: func(w http.ResponseWriter) { NotFound(w, "") }, wantStatus: http.StatusNotFound, wantMessage: "Resource not found"},
		{name: "bad request", write: func(w http.ResponseWriter) { BadRequest(w, "Invalid beer ID") }, wantStatus: http.StatusBadRequest, wantMessage: "Invalid beer ID"},
		{name: "conflict", write: func(w http.ResponseWriter) { Conflict(w, "UPC already exists") }, wantStatus: http.StatusConflict, wantMessage: "UPC already exists"},
		{name: "internal default", write: func(w http.ResponseWriter) { InternalServerError(w, "") }, wantStatus: http.StatusInternalServerError, wantMessage: "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.write(rec)

			assert.Equal(t, tt.wantStatus, rec.Code)
			var body ErrorBody
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantMessage, body.Message)
			assert.Nil(t, body.Errors)
		})
	}
}

func TestValidationError_IncludesFieldErrors(t *testing.T) {
	rec := httptest.NewRecorder()

	ValidationError(rec, map[string]string{"upc": "upc is required"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"message":"Validation failed","errors":{"upc":"upc is required"}}`, rec.Body.String())
}
