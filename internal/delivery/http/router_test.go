package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	_ "go-rest-brewery/docs"
	deliveryHttp "go-rest-brewery/internal/delivery/http"
	"go-rest-brewery/internal/delivery/http/handler"
	"go-rest-brewery/internal/delivery/http/middleware"
	"go-rest-brewery/pkg/validator"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newRouter builds the router without collaborators; only routes that never
// reach a usecase are exercised here.
func newRouter() *mux.Router {
	log := logrus.New()
	log.SetOutput(io.Discard)

	return deliveryHttp.NewRouter(
		handler.NewBeerHandler(nil, validator.NewValidator(), 1000),
		handler.NewAuditLogHandler(nil),
		middleware.NewCORSMiddleware(nil),
		middleware.NewLoggingMiddleware(log),
	).Setup()
}

func TestRouter_HealthCheck(t *testing.T) {
	rec := httptest.NewRecorder()
	newRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_Routes(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		target     string
		wantStatus int
	}{
		{"bad id on get", http.MethodGet, "/api/v1/beer/xyz", http.StatusBadRequest},
		{"bad id on put", http.MethodPut, "/api/v1/beer/xyz", http.StatusBadRequest},
		{"bad id on delete", http.MethodDelete, "/api/v1/beer/xyz", http.StatusBadRequest},
		{"bad id on history", http.MethodGet, "/api/v1/beer/xyz/history", http.StatusBadRequest},
		{"bad list params", http.MethodGet, "/api/v1/beer?pageSize=-3", http.StatusBadRequest},
		{"unsupported method", http.MethodPatch, "/api/v1/beer", http.StatusMethodNotAllowed},
		{"unknown route", http.MethodGet, "/api/v1/wine", http.StatusNotFound},
		{"swagger ui", http.MethodGet, "/swagger/index.html", http.StatusOK},
	}

	router := newRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.target, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestRouter_SwaggerDoc(t *testing.T) {
	rec := httptest.NewRecorder()
	newRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"/beerUpc/{upc}"`)

	var doc struct {
		Definitions map[string]struct {
			Properties map[string]map[string]interface{} `json:"properties"`
		} `json:"definitions"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	for _, name := range []string{"dto.CreateBeerRequest", "dto.UpdateBeerRequest"} {
		assert.Equal(t, "^[0-9]+$", doc.Definitions[name].Properties["upc"]["pattern"], name)
	}
}
