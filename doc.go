// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package httpapp binds an http.Handler to a listener and manages the lifecycle
of the resulting server: binding, readiness, serving, waiting for shutdown,
releasing the listener, and notifying interested parties.

An App is single use:

	router, _ := httpapp.NewRouter(
		httpapp.Handle("/foo", fooHandler, http.MethodGet),
	)

	app, _ := httpapp.New(router, httpapp.WithLogger(logger))
	go app.StartServer(ctx, "127.0.0.1", 8080, httpapp.ServerConfig{}, nil)

	// ... later, from any goroutine
	app.TriggerShutdown()
	<-app.Done()

Lifecycle events are delivered through Hooks.  Subpackage appfx binds an App
to an uber/fx application.
*/
package httpapp
