package creds

import (
	"encoding/json"
	"testing"
)

func TestCredentialsUnmarshalJSON(t *testing.T) {
	t.Run("object shape", func(t *testing.T) {
		var c Credentials
		if err := json.Unmarshal([]byte(`{"api_key": "sk-12345"}`), &c); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.APIKey != "sk-12345" {
			t.Errorf("expected api key %q, got %q", "sk-12345", c.APIKey)
		}
	})

	t.Run("bare string shape", func(t *testing.T) {
		var c Credentials
		if err := json.Unmarshal([]byte(`"sk-raw-key"`), &c); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.APIKey != "sk-raw-key" {
			t.Errorf("expected api key %q, got %q", "sk-raw-key", c.APIKey)
		}
	})

	t.Run("object with unknown fields", func(t *testing.T) {
		var c Credentials
		if err := json.Unmarshal([]byte(`{"api_key": "sk-x", "expires": 42}`), &c); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.APIKey != "sk-x" {
			t.Errorf("expected api key %q, got %q", "sk-x", c.APIKey)
		}
	})

	t.Run("invalid payload", func(t *testing.T) {
		var c Credentials
		if err := json.Unmarshal([]byte(`[1, 2]`), &c); err == nil {
			t.Error("expected error for array payload")
		}
	})
}

func TestCredentialsMarshalJSON(t *testing.T) {
	data, err := json.Marshal(Credentials{APIKey: "sk-12345"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != `{"api_key":"sk-12345"}` {
		t.Errorf("unexpected payload: %s", data)
	}
}

func TestCredentialsEmpty(t *testing.T) {
	if !(Credentials{}).Empty() {
		t.Error("zero credentials should be empty")
	}
	if (Credentials{APIKey: "sk-x"}).Empty() {
		t.Error("credentials with a key should not be empty")
	}
}
