package util

import (
	"strconv"
)

// MustParseUint converts a path/query parameter to uint, returning 0 on
// malformed input.
func MustParseUint(s string) uint {
	id, _ := strconv.ParseUint(s, 10, 32)
	return uint(id)
}

// ParseBoolSetting interprets a settings value; anything but "true" is false.
func ParseBoolSetting(s string) bool {
	return s == "true"
}

// FormatBoolSetting renders a boolean the way app_settings stores it.
func FormatBoolSetting(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
