// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "strings"

const backendHint = " (is the IPFS daemon or the relay running?)"

// humanizeFeedback adds a hint to feedback lines caused by an unreachable
// backend.
func humanizeFeedback(text string) string {
	s := strings.ToLower(text)
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return text + backendHint
	}

	return text
}
