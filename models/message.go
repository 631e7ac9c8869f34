// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RawMessage is a message as received from the pubsub backend, before text
// decoding.
type RawMessage struct {
	// From is the sender's peer id as reported by the backend.
	From string
	// Data is the undecoded payload.
	Data []byte
	// HasData is false when the backend delivered a message without a
	// payload field. Such messages carry nothing to display.
	HasData bool
	// Corrupted is set by the transport when the payload encoding itself was
	// invalid and Data could not be recovered.
	Corrupted bool
}

// PubSubMessage is the JSON object streamed by the IPFS HTTP RPC
// /api/v0/pubsub/sub endpoint, one per line.
//
// Data, Seqno and TopicIDs are multibase strings.
type PubSubMessage struct {
	From     string   `json:"from"`
	Data     *string  `json:"data,omitempty"`
	Seqno    string   `json:"seqno,omitempty"`
	TopicIDs []string `json:"topicIDs,omitempty"`
}
