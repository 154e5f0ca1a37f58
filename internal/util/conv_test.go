package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMustParseUint(t *testing.T) {
	assert.Equal(t, uint(42), MustParseUint("42"))
	assert.Equal(t, uint(0), MustParseUint("abc"))
	assert.Equal(t, uint(0), MustParseUint(""))
	assert.Equal(t, uint(0), MustParseUint("-1"))
}

func TestParseBoolSetting(t *testing.T) {
	assert.True(t, ParseBoolSetting("true"))
	assert.False(t, ParseBoolSetting("TRUE"))
	assert.False(t, ParseBoolSetting("false"))
	assert.False(t, ParseBoolSetting(""))
	assert.False(t, ParseBoolSetting("garbage"))
}

func TestFormatBoolSetting(t *testing.T) {
	assert.Equal(t, "true", FormatBoolSetting(true))
	assert.Equal(t, "false", FormatBoolSetting(false))
}
