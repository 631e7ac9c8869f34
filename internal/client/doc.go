// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive chat client runtime.
//
// It wires the pubsub adapter factory, the chat session and the terminal UI
// into a single process lifecycle.
package client
