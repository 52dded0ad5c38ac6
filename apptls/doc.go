// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package apptls holds the externally configurable TLS settings for an httpapp server.
*/
package apptls
