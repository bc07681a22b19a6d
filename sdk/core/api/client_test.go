package api

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	c := NewClient("http://localhost:8080/api/v1", nil)
	require.IsType(t, &client{}, c)
	require.NotNil(t, c.Connectors())
	require.NotNil(t, c.Processes())
	require.NotNil(t, c.Versions())
	require.NotNil(t, c.Preview())
	require.NotNil(t, c.AI())
}
