package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNetAddressSet verifies parsing and validation of host:port values.
func TestNetAddressSet(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    NetAddress
		wantErr bool
	}{
		{"port only", ":8080", NetAddress{Host: "", Port: 8080}, false},
		{"localhost", "localhost:9090", NetAddress{Host: "localhost", Port: 9090}, false},
		{"ip address", "127.0.0.1:8080", NetAddress{Host: "127.0.0.1", Port: 8080}, false},
		{"missing port", "localhost", NetAddress{}, true},
		{"non-numeric port", "localhost:http", NetAddress{}, true},
		{"zero port", "localhost:0", NetAddress{}, true},
		{"bogus host", "not-an-ip:8080", NetAddress{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, addr)
		})
	}
}

// TestNetAddressString verifies the canonical representation, including the
// unset zero value.
func TestNetAddressString(t *testing.T) {
	assert.Empty(t, (&NetAddress{}).String())
	assert.Equal(t, "localhost:8080", (&NetAddress{Host: "localhost", Port: 8080}).String())
	assert.Equal(t, ":8080", (&NetAddress{Port: 8080}).String())
}
