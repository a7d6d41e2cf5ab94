package fleet

import (
	"fmt"
	"regexp"
	"strings"
)

// platePattern matches the alphanumeric license plates the game issues.
var platePattern = regexp.MustCompile(`^[A-Za-z0-9]+$`)

// NormalizePlate canonicalizes a license plate to its stored form.
// The plate is the natural key joining rentals to vehicles, so every write
// and read path must normalize identically.
func NormalizePlate(plate string) string {
	return strings.ToUpper(strings.TrimSpace(plate))
}

// ValidatePlate reports whether the plate is a non-empty alphanumeric token.
func ValidatePlate(plate string) error {
	plate = strings.TrimSpace(plate)
	if plate == "" {
		return fmt.Errorf("license plate is required")
	}
	if !platePattern.MatchString(plate) {
		return fmt.Errorf("license plate must contain only letters and digits: %s", plate)
	}
	return nil
}
