package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_Set_Valid(t *testing.T) {
	var addr NetAddress
	require.NoError(t, addr.Set("localhost:9090"))
	assert.Equal(t, "localhost", addr.Host)
	assert.Equal(t, 9090, addr.Port)
	assert.Equal(t, "localhost:9090", addr.String())
}

func TestNetAddress_Set_ValidIP(t *testing.T) {
	var addr NetAddress
	require.NoError(t, addr.Set("127.0.0.1:8080"))
	assert.Equal(t, "127.0.0.1", addr.Host)
	assert.Equal(t, 8080, addr.Port)
}

func TestNetAddress_Set_MissingPort(t *testing.T) {
	var addr NetAddress
	assert.Error(t, addr.Set("localhost"))
}

func TestNetAddress_Set_NonNumericPort(t *testing.T) {
	var addr NetAddress
	assert.Error(t, addr.Set("localhost:http"))
}

func TestNetAddress_Set_NegativePort(t *testing.T) {
	var addr NetAddress
	assert.Error(t, addr.Set("localhost:-1"))
}

func TestNetAddress_Set_BadHost(t *testing.T) {
	var addr NetAddress
	assert.Error(t, addr.Set("not-an-ip:8080"))
}

func TestNetAddress_String_Empty(t *testing.T) {
	var addr NetAddress
	assert.Equal(t, "", addr.String())
}
