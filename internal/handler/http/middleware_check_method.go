// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-cipher-chat/internal/utils"
	"github.com/go-chi/chi/v5"
)

// MsgNotFound is the body of every chat request made with a method the
// endpoint does not serve.
const MsgNotFound = "Not found."

// CheckHTTPMethod is the router's MethodNotAllowed handler. The chat
// endpoints each serve one method (read is GET, send is POST); any other
// method gets the relay's JSON 404 instead of chi's 405, so a client cannot
// tell a wrong method from a missing endpoint.
//
// A request whose method is registered for the path, ignoring a trailing
// slash, is handed back to the router.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		path := strings.TrimSuffix(r.URL.Path, "/")

		for _, route := range router.Routes() {
			if strings.TrimSuffix(route.Pattern, "/") != path {
				continue
			}
			if _, ok := route.Handlers[r.Method]; ok {
				router.ServeHTTP(w, r)
				return
			}
			break
		}

		utils.WriteError(w, MsgNotFound, http.StatusNotFound)
	}
}
