package storage

import "testing"

func TestEncodeDecodeJSON(t *testing.T) {
	t.Parallel()

	type record struct {
		ID     string `json:"id"`
		Status string `json:"status"`
		Count  int    `json:"count"`
	}

	in := record{ID: "job-1", Status: "completed", Count: 42}

	data, err := EncodeJSON(in)
	if err != nil {
		t.Fatalf("EncodeJSON failed: %v", err)
	}

	var out record
	if err := DecodeJSON(data, &out); err != nil {
		t.Fatalf("DecodeJSON failed: %v", err)
	}

	if out != in {
		t.Errorf("Round trip = %+v, want %+v", out, in)
	}
}

func TestDecodeJSON_Invalid(t *testing.T) {
	t.Parallel()

	var out map[string]string
	if err := DecodeJSON([]byte("{not json"), &out); err == nil {
		t.Error("Expected error for invalid JSON, got nil")
	}
}
