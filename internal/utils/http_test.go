package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestWriteJSON_Success(t *testing.T) {
	w := httptest.NewRecorder()
	data := map[string]string{"key": "value"}

	n, err := WriteJSON(w, data, http.StatusOK)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if n == 0 {
		t.Error("expected non-zero bytes written")
	}
	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected Content-Type 'application/json', got '%s'", ct)
	}

	expected, _ := json.Marshal(data)
	if w.Body.String() != string(expected) {
		t.Errorf("expected body %s, got %s", expected, w.Body.String())
	}
}

func TestWriteJSON_CustomStatusCode(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, map[string]string{"error": "not found"}, http.StatusNotFound)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if w.Code != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, w.Code)
	}
}

func TestWriteJSON_InvalidData(t *testing.T) {
	w := httptest.NewRecorder()

	// channels cannot be marshaled to JSON
	_, err := WriteJSON(w, make(chan int), http.StatusOK)

	if err == nil {
		t.Fatal("expected error for non-serializable data, got nil")
	}
	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}
}

func TestWriteJSON_NilData(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, nil, http.StatusOK)

	if err != nil {
		t.Fatalf("expected no error for nil data, got: %v", err)
	}
	if w.Body.String() != "null" {
		t.Errorf("expected body 'null', got '%s'", w.Body.String())
	}
}

func TestWriteJSON_EmptyStruct(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, struct{}{}, http.StatusOK)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if w.Body.String() != "{}" {
		t.Errorf("expected body '{}', got '%s'", w.Body.String())
	}
}

func TestWriteJSON_Slice(t *testing.T) {
	w := httptest.NewRecorder()
	data := []int{1, 2, 3}

	_, err := WriteJSON(w, data, http.StatusOK)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	expected, _ := json.Marshal(data)
	if w.Body.String() != string(expected) {
		t.Errorf("expected body %s, got %s", expected, w.Body.String())
	}
}

func TestWriteRPCError(t *testing.T) {
	w := httptest.NewRecorder()

	WriteRPCError(w, "topic is required", http.StatusBadRequest)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}

	var got RPCError
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("expected valid JSON body, got: %v", err)
	}
	if got.Message != "topic is required" || got.Type != "error" {
		t.Errorf("unexpected rpc error body: %+v", got)
	}
}

func TestJSONLineWriter_WritesLines(t *testing.T) {
	w := httptest.NewRecorder()

	lw, err := NewJSONLineWriter(w)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if err = lw.Write(map[string]string{"data": "uaGk"}); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if err = lw.Write(map[string]string{"data": "uYnll"}); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	want := "{\"data\":\"uaGk\"}\n{\"data\":\"uYnll\"}\n"
	if w.Body.String() != want {
		t.Errorf("expected body %q, got %q", want, w.Body.String())
	}
	if !w.Flushed {
		t.Error("expected response to be flushed")
	}
	if w.Header().Get("X-Chunked-Output") != "1" {
		t.Error("expected X-Chunked-Output header")
	}
}

type nonFlushingWriter struct {
	http.ResponseWriter
}

func TestJSONLineWriter_RequiresFlusher(t *testing.T) {
	_, err := NewJSONLineWriter(nonFlushingWriter{httptest.NewRecorder()})
	if err == nil {
		t.Fatal("expected error for writer without http.Flusher")
	}
}
