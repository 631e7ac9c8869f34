// Package http implements the HTTP transport of the local relay.
//
// It serves the pubsub endpoints of the IPFS HTTP RPC API (sub, pub, ls)
// backed by the in-memory relay hub, so the chat client can run against the
// relay exactly as it would against a kubo daemon. Request tracing and access
// logging are handled by middleware before requests reach the handlers.
package http
