// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package httpapptest provides testing utilities for code that binds and serves
with an httpapp.App.
*/
package httpapptest
