package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_Set_Valid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		host  string
		port  int
	}{
		{"localhost", "localhost:8080", "localhost", 8080},
		{"ip address", "127.0.0.1:9090", "127.0.0.1", 9090},
		{"all interfaces", "0.0.0.0:80", "0.0.0.0", 80},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a NetAddress
			require.NoError(t, a.Set(tt.input))
			assert.Equal(t, tt.host, a.Host)
			assert.Equal(t, tt.port, a.Port)
			assert.Equal(t, tt.input, a.String())
		})
	}
}

func TestNetAddress_Set_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"no port", "localhost"},
		{"non-numeric port", "localhost:http"},
		{"zero port", "localhost:0"},
		{"bad host", "not-an-ip:8080"},
		{"too many parts", "a:b:c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a NetAddress
			require.Error(t, a.Set(tt.input))
		})
	}
}

func TestNetAddress_String_Empty(t *testing.T) {
	var a NetAddress
	assert.Empty(t, a.String())
}
