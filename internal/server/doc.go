// Package server wires and runs the local relay's HTTP server.
//
// It provides startup, signal handling and graceful shutdown. On shutdown the
// relay hub is closed first so open subscription streams end and the HTTP
// server can drain.
package server
