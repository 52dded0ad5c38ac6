// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package httpapp

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testCORSConfigNil(t *testing.T) {
	var (
		assert = assert.New(t)
		cc     *CORSConfig
		next   = http.NotFoundHandler()
	)

	handler := cc.Then(next)
	response := httptest.NewRecorder()
	request := httptest.NewRequest("GET", "/", nil)
	request.Header.Set("Origin", "http://example.com")
	handler.ServeHTTP(response, request)

	assert.Equal(http.StatusNotFound, response.Code)
	assert.Empty(response.Header().Get("Access-Control-Allow-Origin"))
}

func testCORSConfigAllowed(t *testing.T) {
	var (
		assert = assert.New(t)
		cc     = &CORSConfig{
			AllowedOrigins: []string{"http://example.com"},
			ExposedHeaders: []string{"X-Test"},
		}

		next = http.HandlerFunc(func(response http.ResponseWriter, _ *http.Request) {
			response.WriteHeader(299)
		})
	)

	response := httptest.NewRecorder()
	request := httptest.NewRequest("GET", "/", nil)
	request.Header.Set("Origin", "http://example.com")
	cc.Then(next).ServeHTTP(response, request)

	assert.Equal(299, response.Code)
	assert.Equal("http://example.com", response.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal("X-Test", response.Header().Get("Access-Control-Expose-Headers"))
}

func testCORSConfigDisallowed(t *testing.T) {
	var (
		assert = assert.New(t)
		cc     = &CORSConfig{
			AllowedOrigins: []string{"http://example.com"},
		}

		next = http.HandlerFunc(func(response http.ResponseWriter, _ *http.Request) {
			response.WriteHeader(299)
		})
	)

	response := httptest.NewRecorder()
	request := httptest.NewRequest("GET", "/", nil)
	request.Header.Set("Origin", "http://other.com")
	cc.Then(next).ServeHTTP(response, request)

	// the request is still served, but without CORS headers
	assert.Equal(299, response.Code)
	assert.Empty(response.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSConfig(t *testing.T) {
	t.Run("Nil", testCORSConfigNil)
	t.Run("Allowed", testCORSConfigAllowed)
	t.Run("Disallowed", testCORSConfigDisallowed)
}
