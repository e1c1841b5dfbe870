// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-engineer-hub/internal/utils"
	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod is installed as the router's MethodNotAllowed handler.
// The API answers an unsupported method on a known path with 404, like an
// unknown path, instead of chi's default 405.
//
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			router.ServeHTTP(w, r)
			return
		}

		_, _ = utils.WriteMessage(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
	}
}
