// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// relay handlers and middleware.
//
// The Msg* constants are the "Message" texts of RPC error bodies. They follow
// the wording of the IPFS HTTP RPC API so a client written against a kubo
// daemon sees the same errors from the relay.
package app

const (
	// MsgTopicRequired is returned when the "arg" query parameter is missing.
	MsgTopicRequired = `argument "topic" is required`

	// MsgDataRequired is returned when a publish request has no "data" file
	// part.
	MsgDataRequired = `argument "data" is required`

	// MsgPageNotFound is returned for unknown RPC commands.
	MsgPageNotFound = "404 page not found"

	// MsgMethodNotAllowedFormat is formatted with the request method.
	MsgMethodNotAllowedFormat = "method %s not allowed"

	// MsgStreamingUnsupported is returned when the response writer cannot
	// flush, so a subscription stream cannot be served.
	MsgStreamingUnsupported = "streaming is not supported"
)
