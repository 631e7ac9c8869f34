// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/MKhiriev/go-pubsub-chat/internal/app"
	"github.com/MKhiriev/go-pubsub-chat/internal/utils"
	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns an [http.HandlerFunc] that is intended to be
// registered as the router's MethodNotAllowed handler via
// [chi.Mux.MethodNotAllowed].
//
// The RPC API only accepts POST, so a client using another method gets an
// RPC-style JSON error body with status 405 and an Allow header listing the
// methods registered for the path. If no route pattern equals the request
// path, the response is 404.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var foundRoute *chi.Route
		for _, route := range router.Routes() {
			if route.Pattern == r.URL.Path {
				foundRoute = &route
				break
			}
		}

		if foundRoute == nil {
			utils.WriteRPCError(w, app.MsgPageNotFound, http.StatusNotFound)
			return
		}

		if _, ok := foundRoute.Handlers[r.Method]; ok {
			router.ServeHTTP(w, r)
			return
		}

		allowed := make([]string, 0, len(foundRoute.Handlers))
		for method := range foundRoute.Handlers {
			allowed = append(allowed, method)
		}
		sort.Strings(allowed)

		w.Header().Set("Allow", strings.Join(allowed, ", "))
		utils.WriteRPCError(w, fmt.Sprintf(app.MsgMethodNotAllowedFormat, r.Method), http.StatusMethodNotAllowed)
	}
}
