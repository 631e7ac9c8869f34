package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON serializes the given data to JSON and writes it to the HTTP response.
//
// It sets the "Content-Type" header to "application/json" and writes
// the provided HTTP status code before sending the response body.
//
// If marshaling fails, it responds with 500 Internal Server Error
// and returns a wrapped error.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// RPCError is the error body format of the IPFS HTTP RPC API.
type RPCError struct {
	Message string `json:"Message"`
	Code    int    `json:"Code"`
	Type    string `json:"Type"`
}

// WriteRPCError writes message as an IPFS-style JSON error with statusCode.
func WriteRPCError(w http.ResponseWriter, message string, statusCode int) {
	_, _ = WriteJSON(w, RPCError{Message: message, Code: 0, Type: "error"}, statusCode)
}

// JSONLineWriter writes newline-delimited JSON values to a streaming HTTP
// response, flushing after every value so the peer sees it immediately.
type JSONLineWriter struct {
	enc     *json.Encoder
	flusher http.Flusher
}

// NewJSONLineWriter prepares w for streaming and writes the 200 status.
// It returns an error if w does not support flushing.
func NewJSONLineWriter(w http.ResponseWriter) (*JSONLineWriter, error) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return nil, fmt.Errorf("response writer %T does not support flushing", w)
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Chunked-Output", "1")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	return &JSONLineWriter{enc: json.NewEncoder(w), flusher: flusher}, nil
}

// Write encodes v followed by a newline and flushes it.
func (j *JSONLineWriter) Write(v any) error {
	if err := j.enc.Encode(v); err != nil {
		return fmt.Errorf("error streaming JSON value: %w", err)
	}
	j.flusher.Flush()
	return nil
}
