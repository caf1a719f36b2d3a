package jsonutil

import (
	"strings"
	"testing"
)

func TestUnmarshalWithContext(t *testing.T) {
	type TestStruct struct {
		Name string `json:"name"`
	}

	tests := []struct {
		name    string
		data    []byte
		wantErr bool
	}{
		{
			name:    "valid JSON",
			data:    []byte(`{"name":"test"}`),
			wantErr: false,
		},
		{
			name:    "invalid JSON",
			data:    []byte(`not json`),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v TestStruct
			err := UnmarshalWithContext(tt.data, &v, "test context")
			if (err != nil) != tt.wantErr {
				t.Errorf("UnmarshalWithContext() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && err != nil && !strings.HasPrefix(err.Error(), "test context: ") {
				t.Errorf("UnmarshalWithContext() error %q lacks context prefix", err)
			}
			if !tt.wantErr && v.Name != "test" {
				t.Errorf("UnmarshalWithContext() v.Name = %q, want %q", v.Name, "test")
			}
		})
	}
}

func TestGetString(t *testing.T) {
	m := map[string]any{
		"str":  "value",
		"num":  42.0,
		"bool": true,
		"nil":  nil,
	}

	tests := []struct {
		key  string
		want string
	}{
		{"str", "value"},
		{"num", ""},
		{"bool", ""},
		{"nil", ""},
		{"missing", ""},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := GetString(m, tt.key); got != tt.want {
				t.Errorf("GetString() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUnmarshalArrayAllowEmpty(t *testing.T) {
	type TestStruct struct {
		ID int `json:"id"`
	}

	tests := []struct {
		name    string
		data    []byte
		wantErr bool
		wantLen int
	}{
		{
			name:    "valid non-empty array",
			data:    []byte(`[{"id":1},{"id":2}]`),
			wantErr: false,
			wantLen: 2,
		},
		{
			name:    "empty array",
			data:    []byte(`[]`),
			wantErr: false,
			wantLen: 0,
		},
		{
			name:    "null",
			data:    []byte(`null`),
			wantErr: false,
			wantLen: 0,
		},
		{
			name:    "object instead of array",
			data:    []byte(`{"detail":"Not Found"}`),
			wantErr: true,
			wantLen: 0,
		},
		{
			name:    "invalid JSON",
			data:    []byte(`not json`),
			wantErr: true,
			wantLen: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := UnmarshalArrayAllowEmpty[TestStruct](tt.data, "test context")
			if (err != nil) != tt.wantErr {
				t.Errorf("UnmarshalArrayAllowEmpty() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if len(got) != tt.wantLen {
				t.Errorf("UnmarshalArrayAllowEmpty() len = %d, want %d", len(got), tt.wantLen)
			}
		})
	}
}

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"detail string", `{"detail":"Term not found."}`, "Term not found."},
		{"detail list", `{"detail":[{"msg":"field required"},{"msg":"str type expected"}]}`, "field required; str type expected"},
		{"message", `{"message":"Term deleted successfully"}`, "Term deleted successfully"},
		{"plain text", "  Internal Server Error\n", "Internal Server Error"},
		{"empty object", `{}`, "{}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ErrorMessage([]byte(tt.body)); got != tt.want {
				t.Errorf("ErrorMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}
