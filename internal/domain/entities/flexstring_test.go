package entities

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexString_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want FlexString
	}{
		{"string", `{"id":"m1"}`, "m1"},
		{"integer", `{"id":42}`, "42"},
		{"fraction", `{"id":1.5}`, "1.5"},
		{"null", `{"id":null}`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v struct {
				ID FlexString `json:"id"`
			}
			require.NoError(t, json.Unmarshal([]byte(tt.in), &v))
			assert.Equal(t, tt.want, v.ID)
		})
	}
}

func TestFlexString_RejectsObjects(t *testing.T) {
	var v struct {
		ID FlexString `json:"id"`
	}
	assert.Error(t, json.Unmarshal([]byte(`{"id":{"a":1}}`), &v))
	assert.Error(t, json.Unmarshal([]byte(`{"id":true}`), &v))
}
