// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package appfx binds an httpapp.App to the lifecycle of an uber/fx application.

The App starts binding when the fx.App starts, and fx startup fails if the bind
fails.  Stopping the fx.App triggers the App's shutdown and waits for its listener
to be released.  If the App terminates on its own, the enclosing fx.App is shut down.

	fx.New(
		appfx.ForViper(v, "server"),
		appfx.Provide(),
		appfx.Route(httpapp.Handle("/foo", fooHandler)),
	)
*/
package appfx
