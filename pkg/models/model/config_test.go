package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	for _, s := range []string{"ON", "On", "on", "1", "true"} {
		c, err := NewConfig(s)
		require.NoError(t, err)
		assert.Equal(t, On, c)
	}

	for _, s := range []string{"OFF", "off", "0", "false"} {
		c, err := NewConfig(s)
		require.NoError(t, err)
		assert.Equal(t, Off, c)
	}

	_, err := NewConfig("maybe")
	assert.Error(t, err)
}
