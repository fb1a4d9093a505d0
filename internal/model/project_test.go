package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTechStack_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		expected string
	}{
		{name: "plain string", payload: `"Go, Redis"`, expected: "Go, Redis"},
		{name: "array joined", payload: `["Go", "Redis", "MySQL"]`, expected: "Go, Redis, MySQL"},
		{name: "empty array", payload: `[]`, expected: ""},
		{name: "single element array", payload: `["Go"]`, expected: "Go"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ts TechStack
			assert.NoError(t, json.Unmarshal([]byte(tt.payload), &ts))
			assert.Equal(t, tt.expected, string(ts))
		})
	}
}

func TestTechStack_UnmarshalJSONRejectsObjects(t *testing.T) {
	var ts TechStack
	assert.Error(t, json.Unmarshal([]byte(`{"lang": "Go"}`), &ts))
}
