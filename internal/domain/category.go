package domain

import "github.com/pkg/errors"

// SportCategory is the closed set of sports the site covers
type SportCategory string

const (
	Football   SportCategory = "Football"
	Cricket    SportCategory = "Cricket"
	Basketball SportCategory = "Basketball"
	Tennis     SportCategory = "Tennis"
	All        SportCategory = "All" // Matches every item when filtering
)

// Categories returns the closed set in display order
func Categories() []SportCategory {
	return []SportCategory{Football, Cricket, Basketball, Tennis, All}
}

// Valid reports whether c is one of the fixed categories
func (c SportCategory) Valid() bool {
	switch c {
	case Football, Cricket, Basketball, Tennis, All:
		return true
	}
	return false
}

// ParseSportCategory converts a raw value into a SportCategory, rejecting anything outside the set.
// An empty value means no filter and parses as All.
func ParseSportCategory(raw string) (SportCategory, error) {
	if raw == "" {
		return All, nil
	}
	c := SportCategory(raw)
	if !c.Valid() {
		return "", errors.Wrapf(ErrUnknownCategory, "%q", raw)
	}
	return c, nil
}

// Matches reports whether an item of category item passes a filter set to c
func (c SportCategory) Matches(item SportCategory) bool {
	return c == All || c == item
}
