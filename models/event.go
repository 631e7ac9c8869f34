// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// EventKind tags the variant carried by an [Event].
type EventKind int

const (
	// IncomingText is a message received from the topic, already decoded to text.
	IncomingText EventKind = iota + 1
	// CommandFeedback is a locally produced notice for the user (unknown
	// command, failed send, ...). It never travels over the network.
	CommandFeedback
	// ShutdownRequested asks the UI collaborator to end its loop.
	ShutdownRequested
)

// CorruptedMessageText replaces the text of any received payload that cannot
// be decoded. The message is still shown so the user sees that something
// arrived.
const CorruptedMessageText = "Corrupted message"

// String returns a short lowercase label used in logs.
func (k EventKind) String() string {
	switch k {
	case IncomingText:
		return "incoming_text"
	case CommandFeedback:
		return "command_feedback"
	case ShutdownRequested:
		return "shutdown_requested"
	default:
		return "unknown"
	}
}

// Event is one unit handed from the chat session to its consumer.
// Each event is delivered exactly once, in the order it was produced.
type Event struct {
	Kind EventKind
	// Text is empty for ShutdownRequested.
	Text string
}

// NewIncomingText builds an IncomingText event.
func NewIncomingText(text string) Event {
	return Event{Kind: IncomingText, Text: text}
}

// NewCommandFeedback builds a CommandFeedback event.
func NewCommandFeedback(text string) Event {
	return Event{Kind: CommandFeedback, Text: text}
}

// NewShutdownRequested builds a ShutdownRequested event.
func NewShutdownRequested() Event {
	return Event{Kind: ShutdownRequested}
}
