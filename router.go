// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package httpapp

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/justinas/alice"
)

// RouterOption tailors the *mux.Router used as an App's root route.
type RouterOption = Option[mux.Router]

// NewRouter creates the root route tree for an App.  Options are applied in order,
// and all option errors are aggregated.
func NewRouter(opts ...RouterOption) (*mux.Router, error) {
	router := mux.NewRouter()
	if err := Options[mux.Router](opts).Apply(router); err != nil {
		return nil, err
	}

	return router, nil
}

// Middleware returns a RouterOption that decorates every matched route with
// the given middleware.  The middleware executes in the order declared here.
func Middleware(m ...func(http.Handler) http.Handler) RouterOption {
	return AsOption[mux.Router](func(router *mux.Router) {
		if len(m) > 0 {
			chain := alice.New()
			for _, f := range m {
				chain = chain.Append(f)
			}

			router.Use(chain.Then)
		}
	})
}

// Handle returns a RouterOption that registers a handler for an exact path.
// If methods are supplied, the route only matches those methods.
func Handle(path string, h http.Handler, methods ...string) RouterOption {
	return AsOption[mux.Router](func(router *mux.Router) {
		route := router.Handle(path, h)
		if len(methods) > 0 {
			route.Methods(methods...)
		}
	})
}

// NotFound returns a RouterOption that sets the handler used when no route matches.
func NotFound(h http.Handler) RouterOption {
	return AsOption[mux.Router](func(router *mux.Router) {
		router.NotFoundHandler = h
	})
}
