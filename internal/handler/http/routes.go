// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)

	router.Group(func(r chi.Router) {
		r.Use(h.channelGate)
		r.Get(h.apiPrefix+"/chat/read", h.read)
		r.With(h.bodyHashing).Post(h.apiPrefix+"/chat/send", h.send)
	})

	router.Get(h.apiPrefix+"/version", h.getServerVersion)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
