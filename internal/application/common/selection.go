// Package common holds the operator-selection resolution shared by the
// content and poster composers.
package common

import (
	"fmt"
	"strings"
	"time"

	"mnada/internal/domain/catalog"
	"mnada/internal/domain/locale"
	"mnada/internal/shared/errors"
)

// Selection is a validated operator selection: regions in selection order,
// one crop, an auction date, and a 24-hour start time.
type Selection struct {
	Regions []catalog.Region
	Crop    catalog.Crop
	Date    time.Time
	Time    string
}

// RegionNames renders the regions as plain strings in selection order.
func (s Selection) RegionNames() []string {
	names := make([]string, len(s.Regions))
	for i, r := range s.Regions {
		names[i] = string(r)
	}
	return names
}

// ResolveSelection validates raw operator input and resolves it against
// the catalog. Every failure is a validation error and the composers
// produce no partial output; region names unknown to the catalog are
// accepted (they fall back to derived short codes downstream).
func ResolveSelection(regions []string, crop, date, clock string) (Selection, error) {
	var sel Selection

	if len(regions) == 0 {
		return sel, errors.NewValidationError("at least one region is required")
	}
	for _, r := range regions {
		normalized := catalog.NormalizeRegion(r)
		if normalized == "" {
			return sel, errors.NewValidationError("region name must not be empty")
		}
		sel.Regions = append(sel.Regions, normalized)
	}

	parsedCrop, ok := catalog.ParseCrop(crop)
	if !ok {
		return sel, errors.NewValidationError("a valid crop is required", fmt.Sprintf("unknown crop %q", crop))
	}
	sel.Crop = parsedCrop

	if strings.TrimSpace(date) == "" {
		return sel, errors.NewValidationError("date is required")
	}
	parsedDate, err := locale.ParseDate(date)
	if err != nil {
		return sel, errors.NewValidationError("date must be a valid ISO date", err.Error())
	}
	sel.Date = parsedDate

	if strings.TrimSpace(clock) == "" {
		return sel, errors.NewValidationError("time is required")
	}
	if _, _, err := locale.ParseClock(clock); err != nil {
		return sel, errors.NewValidationError("time must be a valid HH:MM value", err.Error())
	}
	sel.Time = strings.TrimSpace(clock)

	return sel, nil
}
