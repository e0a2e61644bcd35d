package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"liveaboard-booking/models"
)

// selectionPattern matches [PLAN/]CABIN:OCCUPANCY[xQTY]
var selectionPattern = regexp.MustCompile(`^(?:([^/:]+)/)?([^/:]+):([A-Za-z0-9 -]+?)(?:[x*](\d+))?$`)

// ParseSelection parses a command-line cabin selection following the pattern:
// [RATEPLAN/]CABIN:OCCUPANCY[xQUANTITY]
// Examples: "deluxe:double", "rp-7/deluxe:1x8", "master:sole-use"
func ParseSelection(s string) (models.Selection, error) {
	matches := selectionPattern.FindStringSubmatch(strings.TrimSpace(s))
	if matches == nil {
		return models.Selection{}, fmt.Errorf("invalid selection %q: expected [PLAN/]CABIN:OCCUPANCY[xQTY]", s)
	}

	code := MapOccupancyNameToCode(matches[3])
	if code == 0 {
		return models.Selection{}, fmt.Errorf("invalid selection %q: unknown occupancy %q", s, matches[3])
	}

	sel := models.Selection{
		RatePlanID:  strings.TrimSpace(matches[1]),
		CabinTypeID: strings.TrimSpace(matches[2]),
		Occupancy:   code,
		Quantity:    1,
	}
	if matches[4] != "" {
		qty, err := strconv.Atoi(matches[4])
		if err != nil || qty < 1 {
			return models.Selection{}, fmt.Errorf("invalid selection %q: bad quantity %q", s, matches[4])
		}
		sel.Quantity = qty
	}
	return sel, nil
}
