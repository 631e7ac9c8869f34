// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-pubsub-chat/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildRouter creates a minimal chi.Mux with a set of routes for tests.
// It intentionally does not use Handler.Init() to avoid service setup.
func buildRouter() *chi.Mux {
	router := chi.NewRouter()

	router.Post("/api/v0/pubsub/pub", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Post("/api/v0/pubsub/ls", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Get("/api/v0/pubsub/ls", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func TestCheckHTTPMethod_TableTest(t *testing.T) {
	router := buildRouter()

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
		expectedAllow  string
	}{
		{
			name:           "registered method passes through",
			method:         http.MethodPost,
			path:           "/api/v0/pubsub/pub",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "GET on POST-only route",
			method:         http.MethodGet,
			path:           "/api/v0/pubsub/pub",
			expectedStatus: http.StatusMethodNotAllowed,
			expectedAllow:  "POST",
		},
		{
			name:           "DELETE on route with two methods",
			method:         http.MethodDelete,
			path:           "/api/v0/pubsub/ls",
			expectedStatus: http.StatusMethodNotAllowed,
			expectedAllow:  "GET, POST",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectedAllow, rr.Header().Get("Allow"))
		})
	}
}

func TestCheckHTTPMethod_ErrorBody(t *testing.T) {
	router := buildRouter()
	req := httptest.NewRequest(http.MethodPut, "/api/v0/pubsub/pub", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	var body utils.RPCError
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "method PUT not allowed", body.Message)
	assert.Equal(t, "error", body.Type)
}

func TestCheckHTTPMethod_UnknownPathDirectCall(t *testing.T) {
	router := buildRouter()
	handler := CheckHTTPMethod(router)

	rr := httptest.NewRecorder()
	handler(rr, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestCheckHTTPMethod_UnknownPathViaRouter(t *testing.T) {
	router := buildRouter()
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/v0/unknown", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
