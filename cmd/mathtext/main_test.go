package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputRequestBare(t *testing.T) {
	var req outputRequest
	require.NoError(t, req.Set("true"))

	assert.True(t, req.enabled)
	assert.Empty(t, req.path)
}

func TestOutputRequestWithPath(t *testing.T) {
	var req outputRequest
	require.NoError(t, req.Set("out.brf"))

	assert.True(t, req.enabled)
	assert.Equal(t, "out.brf", req.path)
}
