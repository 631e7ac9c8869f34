// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/multiformats/go-multibase"
)

// EncodeMultibase encodes data as base64url multibase ("u" prefix, no
// padding), the encoding the IPFS pubsub API uses for topics and payloads.
func EncodeMultibase(data []byte) string {
	s, err := multibase.Encode(multibase.Base64url, data)
	if err != nil {
		// Base64url is always a supported encoding.
		panic(err)
	}
	return s
}

// DecodeMultibase decodes any multibase string. Daemons that predate
// multibase send plain standard base64, which is accepted as well.
//
// The two forms overlap: an unpadded legacy value whose first character is a
// multibase code and whose remainder decodes under that base ("mAAA") is read
// as multibase. A value ending in "=" padding is decoded as standard base64
// first; no padded multibase string has a length divisible by four, so padded
// values are not ambiguous.
func DecodeMultibase(s string) ([]byte, error) {
	if strings.HasSuffix(s, "=") {
		if legacy, err := base64.StdEncoding.DecodeString(s); err == nil {
			return legacy, nil
		}
	}

	_, data, err := multibase.Decode(s)
	if err == nil {
		return data, nil
	}

	legacy, legacyErr := base64.StdEncoding.DecodeString(s)
	if legacyErr != nil {
		return nil, fmt.Errorf("invalid multibase value: %w", err)
	}
	return legacy, nil
}

// DecodeTopic decodes a multibase topic name. Older daemons and hand-written
// requests send the topic as plain text, which is returned unchanged when it
// is not valid multibase.
func DecodeTopic(s string) string {
	_, data, err := multibase.Decode(s)
	if err != nil {
		return s
	}
	return string(data)
}
