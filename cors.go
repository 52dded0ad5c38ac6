// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package httpapp

import (
	"net/http"

	"github.com/rs/cors"
)

// CORSConfig is the unmarshaled cross-origin resource sharing policy for a server.
type CORSConfig struct {
	// AllowedOrigins is the set of origins allowed to make cross-origin requests.
	// A "*" allows all origins.
	AllowedOrigins []string

	// AllowedMethods defaults to GET, POST, and HEAD when unset.
	AllowedMethods []string

	// AllowedHeaders are the non-simple headers clients may send.
	AllowedHeaders []string

	// ExposedHeaders are the response headers clients may read.
	ExposedHeaders []string

	// AllowCredentials indicates whether requests may include credentials.
	AllowCredentials bool

	// MaxAge is how long, in seconds, a preflight result may be cached.
	MaxAge int
}

// Then decorates next with this CORS policy.  If this config is nil, next is
// returned undecorated.
func (cc *CORSConfig) Then(next http.Handler) http.Handler {
	if cc == nil {
		return next
	}

	return cors.New(cors.Options{
		AllowedOrigins:   cc.AllowedOrigins,
		AllowedMethods:   cc.AllowedMethods,
		AllowedHeaders:   cc.AllowedHeaders,
		ExposedHeaders:   cc.ExposedHeaders,
		AllowCredentials: cc.AllowCredentials,
		MaxAge:           cc.MaxAge,
	}).Handler(next)
}
