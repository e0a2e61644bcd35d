package utils

import (
	"strconv"
	"strings"
)

// MapOccupancyNameToCode maps occupancy names to their upstream codes.
// Input is normalized to lowercase before mapping; numeric input is accepted
// as-is. Returns 0 when the name is unknown.
func MapOccupancyNameToCode(name string) int {
	nameLower := strings.ToLower(strings.TrimSpace(name))

	occupancyMap := map[string]int{
		"single":   1,
		"sgl":      1,
		"s":        1,
		"double":   2,
		"dbl":      2,
		"twin":     2,
		"shared":   2,
		"d":        2,
		"sole-use": 3,
		"sole use": 3,
		"soleuse":  3,
		"sole":     3,
		"private":  3,
	}

	if code, exists := occupancyMap[nameLower]; exists {
		return code
	}
	if code, err := strconv.Atoi(nameLower); err == nil && code > 0 {
		return code
	}
	return 0
}
