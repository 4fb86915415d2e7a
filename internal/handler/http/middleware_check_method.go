// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 FCS Project Authors

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod is registered as the router's MethodNotAllowed handler via
// [chi.Mux.MethodNotAllowed].
//
// Chi's default is HTTP 405 whenever a path matches a registered route but
// the method is not handled there. This handler answers 404 instead, so a
// caller probing with unsupported methods cannot tell a guarded route from a
// missing one. Requests whose method IS registered fall through to the
// router's normal pipeline.
//
// Only exact pattern matches against the raw request path are considered;
// parameterised segments are not expanded during the lookup.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var matched chi.Route
		for _, route := range router.Routes() {
			if route.Pattern == r.URL.Path {
				matched = route
				break
			}
		}

		if _, ok := matched.Handlers[r.Method]; !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		router.ServeHTTP(w, r)
	}
}
